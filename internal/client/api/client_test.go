package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carmarket/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_ServerTime проверяет запрос времени сервера
func TestClient_ServerTime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/getDateTimeUTC", r.URL.Path)

		_, _ = w.Write([]byte(`{"serverTime": 1700000000000}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ts, err := client.ServerTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), ts)
}

// TestClient_ServerTime_MissingField проверяет ответ без serverTime
func TestClient_ServerTime_MissingField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.ServerTime(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serverTime")
}

// TestClient_Synchronize проверяет успешную синхронизацию
func TestClient_Synchronize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/synchronize", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.SyncRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		require.Len(t, req.News.Users, 1)
		assert.Equal(t, "alice", req.News.Users[0].Username)
		require.Len(t, req.News.Cars, 1)
		assert.Equal(t, "Lada", req.News.Cars[0].Model)

		resp := api.SyncResponse{
			Updated: api.EntityRows{
				Users: []api.UserRow{{Username: "alice", Password: "secret"}},
				Cars:  []api.CarRow{{UUID: req.News.Cars[0].UUID, Model: "Lada", Value: "1000"}},
				UserOwnCar: []api.OwnershipRow{
					{User: "alice", CarID: req.News.Cars[0].UUID},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	req := api.SyncRequest{
		News: api.EntityRows{
			Users: []api.UserRow{{Username: "alice", Password: "secret"}},
			Cars:  []api.CarRow{{UUID: "car-1", Model: "Lada", Value: "1000"}},
			UserOwnCar: []api.OwnershipRow{
				{User: "alice", CarID: "car-1"},
			},
		},
	}

	resp, err := client.Synchronize(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Len(t, resp.Updated.Users, 1)
	assert.Len(t, resp.Updated.Cars, 1)
	assert.Len(t, resp.Updated.UserOwnCar, 1)
	assert.Empty(t, resp.Conflicts)
}

// TestClient_Synchronize_ServerError проверяет обработку ошибок сервера
func TestClient_Synchronize_ServerError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
	}{
		{
			name:       "Internal server error",
			statusCode: http.StatusInternalServerError,
			body:       `{"error": "db unavailable"}`,
		},
		{
			name:       "Bad request",
			statusCode: http.StatusBadRequest,
			body:       `{"error": "malformed change set"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL)

			_, err := client.Synchronize(context.Background(), api.SyncRequest{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "synchronize request failed")
		})
	}
}

// TestClient_Synchronize_Conflicts проверяет передачу списка конфликтов
func TestClient_Synchronize_Conflicts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := api.SyncResponse{
			Conflicts: []api.ConflictRow{
				{Kind: "Users", Key: "alice"},
				{Kind: "UserOwnCar", User: "alice", Car: "car-1"},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.Synchronize(context.Background(), api.SyncRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Conflicts, 2)
	assert.Equal(t, "Users", resp.Conflicts[0].Kind)
	assert.Equal(t, "alice", resp.Conflicts[0].Key)
}

// TestClient_ContextCancellation проверяет отмену запроса через контекст
func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"serverTime": 0}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.ServerTime(ctx)
	require.Error(t, err)
}
