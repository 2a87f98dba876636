package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carmarket/internal/client/iocli"
	"github.com/iudanet/carmarket/internal/client/market"
	"github.com/iudanet/carmarket/internal/client/session"
	"github.com/iudanet/carmarket/internal/client/storage"
	syncsvc "github.com/iudanet/carmarket/internal/client/sync"
	"github.com/iudanet/carmarket/internal/models"
)

// testIO собирает весь вывод команды в один буфер для проверок.
type testIO struct {
	*iocli.IOMock
	out strings.Builder
}

func newTestIO() *testIO {
	io := &testIO{IOMock: &iocli.IOMock{}}
	io.PrintlnFunc = func(a ...any) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				io.out.WriteString(s)
			}
		}
		io.out.WriteString("\n")
	}
	io.PrintfFunc = func(format string, a ...any) {
		io.out.WriteString(fmt.Sprintf(format, a...))
	}
	return io
}

func loggedIn(username string) *SessionStoreMock {
	return &SessionStoreMock{
		GetFunc: func(ctx context.Context) (*session.Session, error) {
			return &session.Session{Username: username, LoginAt: time.Now()}, nil
		},
		SaveFunc:  func(ctx context.Context, sess *session.Session) error { return nil },
		ClearFunc: func(ctx context.Context) error { return nil },
	}
}

func loggedOut() *SessionStoreMock {
	return &SessionStoreMock{
		GetFunc: func(ctx context.Context) (*session.Session, error) {
			return nil, storage.ErrSessionNotFound
		},
		ClearFunc: func(ctx context.Context) error { return storage.ErrSessionNotFound },
	}
}

func TestRunLogin_SavesSession(t *testing.T) {
	ctx := context.Background()
	io := newTestIO()
	io.ReadInputFunc = func(prompt string) (string, error) { return "alice", nil }

	marketMock := &market.ServiceMock{
		LoginFunc: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{Username: username, Active: true}, nil
		},
	}
	sessions := loggedIn("")

	c := New(io, marketMock, nil, sessions)
	require.NoError(t, c.runLogin(ctx))

	saves := sessions.SaveCalls()
	require.Len(t, saves, 1)
	assert.Equal(t, "alice", saves[0].Sess.Username)
	assert.False(t, saves[0].Sess.LoginAt.IsZero())
	assert.Contains(t, io.out.String(), "Logged in as alice")
}

func TestRunLogin_UnknownUser(t *testing.T) {
	ctx := context.Background()
	io := newTestIO()
	io.ReadInputFunc = func(prompt string) (string, error) { return "ghost", nil }

	marketMock := &market.ServiceMock{
		LoginFunc: func(ctx context.Context, username string) (*models.User, error) {
			return nil, storage.ErrNotFound
		},
	}
	sessions := loggedIn("")

	c := New(io, marketMock, nil, sessions)
	err := c.runLogin(ctx)
	require.Error(t, err)
	assert.Empty(t, sessions.SaveCalls())
}

func TestRunLogout_NotLoggedIn(t *testing.T) {
	io := newTestIO()
	c := New(io, nil, nil, loggedOut())

	require.NoError(t, c.runLogout(context.Background()))
	assert.Contains(t, io.out.String(), "Not logged in")
}

func TestRunRegister_PasswordMismatch(t *testing.T) {
	io := newTestIO()
	io.ReadInputFunc = func(prompt string) (string, error) { return "alice", nil }
	passwords := []string{"secret1", "secret2"}
	io.ReadPasswordFunc = func(prompt string) (string, error) {
		p := passwords[0]
		passwords = passwords[1:]
		return p, nil
	}

	marketMock := &market.ServiceMock{}
	c := New(io, marketMock, nil, loggedOut())

	err := c.runRegister(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
	assert.Empty(t, marketMock.RegisterCalls())
}

func TestRunAddCar_FromArgs(t *testing.T) {
	io := newTestIO()
	marketMock := &market.ServiceMock{
		AddCarFunc: func(ctx context.Context, username, model string, value int64) (string, error) {
			return "car-uuid-1", nil
		},
	}
	c := New(io, marketMock, nil, loggedIn("alice"))

	require.NoError(t, c.runAddCar(context.Background(), []string{"lada vesta", "1200000"}))

	calls := marketMock.AddCarCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "alice", calls[0].Username)
	assert.Equal(t, "lada vesta", calls[0].Model)
	assert.Equal(t, int64(1200000), calls[0].Value)
	assert.Contains(t, io.out.String(), "car-uuid-1")
}

func TestRunAddCar_RequiresLogin(t *testing.T) {
	c := New(newTestIO(), &market.ServiceMock{}, nil, loggedOut())

	err := c.runAddCar(context.Background(), []string{"lada", "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestRunAddCar_InvalidValue(t *testing.T) {
	c := New(newTestIO(), &market.ServiceMock{}, nil, loggedIn("alice"))

	err := c.runAddCar(context.Background(), []string{"lada", "not-a-number"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")
}

func TestRunCars_Empty(t *testing.T) {
	io := newTestIO()
	marketMock := &market.ServiceMock{
		CarsFunc: func(ctx context.Context, username string) ([]models.Car, error) {
			return nil, nil
		},
	}
	c := New(io, marketMock, nil, loggedIn("alice"))

	require.NoError(t, c.runCars(context.Background()))
	assert.Contains(t, io.out.String(), "No cars found")
}

func TestRunCars_ListsCars(t *testing.T) {
	io := newTestIO()
	marketMock := &market.ServiceMock{
		CarsFunc: func(ctx context.Context, username string) ([]models.Car, error) {
			return []models.Car{
				{UUID: "id-1", Model: "Lada", Value: 1000, Active: true},
				{UUID: "id-2", Model: "Volga", Value: 2000, Active: true},
			}, nil
		},
	}
	c := New(io, marketMock, nil, loggedIn("alice"))

	require.NoError(t, c.runCars(context.Background()))

	out := io.out.String()
	assert.Contains(t, out, "id-1")
	assert.Contains(t, out, "Volga")
	assert.Contains(t, out, "Total: 2 car(s)")
}

func TestRunDeleteUser_AbortsWithoutConfirmation(t *testing.T) {
	io := newTestIO()
	io.ReadInputFunc = func(prompt string) (string, error) { return "not-alice", nil }

	marketMock := &market.ServiceMock{}
	sessions := loggedIn("alice")
	c := New(io, marketMock, nil, sessions)

	require.NoError(t, c.runDeleteUser(context.Background()))
	assert.Empty(t, marketMock.DeleteUserCalls())
	assert.Empty(t, sessions.ClearCalls())
	assert.Contains(t, io.out.String(), "Aborted")
}

func TestRunDeleteUser_ClearsSession(t *testing.T) {
	io := newTestIO()
	io.ReadInputFunc = func(prompt string) (string, error) { return "alice", nil }

	marketMock := &market.ServiceMock{
		DeleteUserFunc: func(ctx context.Context, username string) error { return nil },
	}
	sessions := loggedIn("alice")
	c := New(io, marketMock, nil, sessions)

	require.NoError(t, c.runDeleteUser(context.Background()))
	require.Len(t, marketMock.DeleteUserCalls(), 1)
	assert.Equal(t, "alice", marketMock.DeleteUserCalls()[0].Username)
	assert.Len(t, sessions.ClearCalls(), 1)
}

func TestRunSync_PrintsResult(t *testing.T) {
	io := newTestIO()
	syncMock := &syncsvc.ServiceMock{
		SyncFunc: func(ctx context.Context) (*syncsvc.Result, error) {
			return &syncsvc.Result{Pushed: 2, Pulled: 5, Inserted: 1, Confirmed: 4}, nil
		},
	}
	c := New(io, nil, syncMock, loggedIn("alice"))

	require.NoError(t, c.runSync(context.Background()))

	out := io.out.String()
	assert.Contains(t, out, "Synchronization completed")
	assert.Contains(t, out, "Pushed to server:   2 row(s)")
	assert.Contains(t, out, "Pulled from server: 5 row(s)")
}

func TestRunSync_Blocked(t *testing.T) {
	io := newTestIO()
	syncMock := &syncsvc.ServiceMock{
		SyncFunc: func(ctx context.Context) (*syncsvc.Result, error) {
			return nil, syncsvc.ErrSyncBlocked
		},
	}
	c := New(io, nil, syncMock, loggedIn("alice"))

	err := c.runSync(context.Background())
	require.ErrorIs(t, err, syncsvc.ErrSyncBlocked)
	assert.Contains(t, io.out.String(), "blocked")
}

func TestRunLastSync(t *testing.T) {
	tests := []struct {
		name   string
		status *market.Status
		want   string
	}{
		{
			name:   "never synced",
			status: &market.Status{Synced: false},
			want:   "Never synchronized",
		},
		{
			name:   "synced",
			status: &market.Status{Synced: true, LastSync: 1700000000000},
			want:   "2023-11-14T22:13:20Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			io := newTestIO()
			marketMock := &market.ServiceMock{
				StatusFunc: func(ctx context.Context) (*market.Status, error) {
					return tt.status, nil
				},
			}
			c := New(io, marketMock, nil, loggedOut())

			require.NoError(t, c.runLastSync(context.Background()))
			assert.Contains(t, io.out.String(), tt.want)
		})
	}
}

func TestRunStatus_WithPendingChanges(t *testing.T) {
	io := newTestIO()
	marketMock := &market.ServiceMock{
		StatusFunc: func(ctx context.Context) (*market.Status, error) {
			return &market.Status{Synced: true, LastSync: 1700000000000}, nil
		},
	}
	syncMock := &syncsvc.ServiceMock{
		PendingChangesFunc: func(ctx context.Context) (models.ChangeSet, error) {
			return models.ChangeSet{
				News: models.EntitySet{Cars: []models.Car{{UUID: "c1"}}},
			}, nil
		},
	}
	c := New(io, marketMock, syncMock, loggedIn("alice"))

	require.NoError(t, c.runStatus(context.Background()))

	out := io.out.String()
	assert.Contains(t, out, "Session: alice")
	assert.Contains(t, out, "Pending: 1 new, 0 modified, 0 deleted")
}

func TestRunStatus_ConflictsReported(t *testing.T) {
	io := newTestIO()
	marketMock := &market.ServiceMock{
		StatusFunc: func(ctx context.Context) (*market.Status, error) {
			return &market.Status{
				Synced:    true,
				LastSync:  1700000000000,
				Conflicts: models.ConflictCounts{Cars: 2},
			}, nil
		},
	}
	syncMock := &syncsvc.ServiceMock{
		PendingChangesFunc: func(ctx context.Context) (models.ChangeSet, error) {
			return models.ChangeSet{}, nil
		},
	}
	c := New(io, marketMock, syncMock, loggedOut())

	require.NoError(t, c.runStatus(context.Background()))

	out := io.out.String()
	assert.Contains(t, out, "not logged in")
	assert.Contains(t, out, "Unresolved conflicts: 2")
}

func TestRun_UnknownCommand(t *testing.T) {
	c := New(newTestIO(), nil, nil, loggedOut())

	err := c.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "1200000", want: 1200000},
		{in: "-5", wantErr: true},
		{in: "12.5", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseValue(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
