package sync

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carmarket/internal/models"
	"github.com/iudanet/carmarket/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newStoreMock возвращает мок с no-op реализациями; тесты доопределяют
// только то, что проверяют.
func newStoreMock() *StoreMock {
	return &StoreMock{
		ActiveConflictsFunc: func(ctx context.Context) (models.ConflictCounts, error) {
			return models.ConflictCounts{}, nil
		},
		SetLastSyncFunc: func(ctx context.Context, ts int64) error { return nil },
		TrackedUsersFunc: func(ctx context.Context) ([]models.TrackedUser, error) {
			return nil, nil
		},
		TrackedCarsFunc: func(ctx context.Context) ([]models.TrackedCar, error) {
			return nil, nil
		},
		TrackedOwnershipFunc: func(ctx context.Context) ([]models.TrackedOwnership, error) {
			return nil, nil
		},
		SaveServerUserFunc: func(ctx context.Context, u models.User, anchor int64, merged bool) error {
			return nil
		},
		SaveServerCarFunc: func(ctx context.Context, c models.Car, anchor int64, merged bool) error {
			return nil
		},
		SaveServerOwnershipFunc: func(ctx context.Context, o models.Ownership, anchor int64, merged bool) error {
			return nil
		},
		ConfirmUserFunc:      func(ctx context.Context, username string) error { return nil },
		ConfirmCarFunc:       func(ctx context.Context, uuid string) error { return nil },
		ConfirmOwnershipFunc: func(ctx context.Context, username, carID string) error { return nil },
		PurgeUserFunc:        func(ctx context.Context, username string) error { return nil },
		PurgeCarFunc:         func(ctx context.Context, uuid string) error { return nil },
		PurgeOwnershipFunc:   func(ctx context.Context, username, carID string) error { return nil },
		RecordUserConflictFunc: func(ctx context.Context, username string) error {
			return nil
		},
		RecordCarConflictFunc: func(ctx context.Context, uuid string) error { return nil },
		RecordOwnershipConflictFunc: func(ctx context.Context, username, carID string) error {
			return nil
		},
	}
}

// При активных конфликтах движок не должен звать транспорт вовсе
func TestSync_BlockedByConflicts(t *testing.T) {
	mockStore := newStoreMock()
	mockStore.ActiveConflictsFunc = func(ctx context.Context) (models.ConflictCounts, error) {
		return models.ConflictCounts{Users: 2, Cars: 1}, nil
	}

	mockTransport := &TransportMock{}

	svc := NewService(mockTransport, mockStore, testLogger())

	_, err := svc.Sync(context.Background())
	require.ErrorIs(t, err, ErrSyncBlocked)

	assert.Empty(t, mockTransport.ServerTimeCalls())
	assert.Empty(t, mockTransport.SynchronizeCalls())
	assert.Empty(t, mockStore.SetLastSyncCalls())
}

// Ошибка транспорта на FetchAnchor обрывает синхронизацию до любых
// локальных изменений
func TestSync_ServerTimeFailure(t *testing.T) {
	mockStore := newStoreMock()

	mockTransport := &TransportMock{
		ServerTimeFunc: func(ctx context.Context) (int64, error) {
			return 0, errors.New("connection refused")
		},
	}

	svc := NewService(mockTransport, mockStore, testLogger())

	_, err := svc.Sync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch server time")

	assert.Empty(t, mockTransport.SynchronizeCalls())
	assert.Empty(t, mockStore.SaveServerUserCalls())
	assert.Empty(t, mockStore.SetLastSyncCalls())
}

func TestSync_FullRound(t *testing.T) {
	const anchor = int64(1700000000000)

	mockStore := newStoreMock()
	mockStore.TrackedUsersFunc = func(ctx context.Context) ([]models.TrackedUser, error) {
		return []models.TrackedUser{
			{User: models.User{Username: "mike", Password: "123", Active: true}, Flags: models.FlagsLocalNew},
		}, nil
	}
	mockStore.TrackedCarsFunc = func(ctx context.Context) ([]models.TrackedCar, error) {
		return []models.TrackedCar{
			{Car: models.Car{UUID: "car-1", Model: "Lada", Value: 1000, Active: true}, Flags: models.FlagsLocalNew},
		}, nil
	}
	mockStore.TrackedOwnershipFunc = func(ctx context.Context) ([]models.TrackedOwnership, error) {
		return []models.TrackedOwnership{
			{Ownership: models.Ownership{Username: "mike", CarID: "car-1", Active: true}, Flags: models.FlagsLocalNew},
		}, nil
	}

	mockTransport := &TransportMock{
		ServerTimeFunc: func(ctx context.Context) (int64, error) {
			return anchor, nil
		},
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			// Всё локальное ушло как news
			require.Len(t, req.News.Users, 1)
			require.Len(t, req.News.Cars, 1)
			require.Len(t, req.News.UserOwnCar, 1)
			assert.Empty(t, req.Modified.Users)
			assert.Empty(t, req.Deleted.Users)

			// Сервер подтверждает наши строки и приносит новую ("lane")
			return &api.SyncResponse{
				Updated: api.EntityRows{
					Users: []api.UserRow{
						{Username: "mike", Password: "123"},
						{Username: "lane", Password: "555"},
					},
					Cars: []api.CarRow{
						{UUID: "car-1", Model: "Lada", Value: "1000"},
					},
					UserOwnCar: []api.OwnershipRow{
						{User: "mike", CarID: "car-1"},
					},
				},
			}, nil
		},
	}

	svc := NewService(mockTransport, mockStore, testLogger())

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Pushed)
	assert.Equal(t, 4, result.Pulled)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 3, result.Confirmed)
	assert.Zero(t, result.Updated)
	assert.Zero(t, result.Deleted)
	assert.Zero(t, result.Conflicts)

	// Scenario C: "lane" вставлен как server-origin с якорным timestamp
	inserts := mockStore.SaveServerUserCalls()
	require.Len(t, inserts, 1)
	assert.Equal(t, "lane", inserts[0].U.Username)
	assert.Equal(t, anchor, inserts[0].Anchor)
	assert.False(t, inserts[0].Merged)

	// Наши строки подтверждены
	require.Len(t, mockStore.ConfirmUserCalls(), 1)
	assert.Equal(t, "mike", mockStore.ConfirmUserCalls()[0].Username)
	require.Len(t, mockStore.ConfirmCarCalls(), 1)
	require.Len(t, mockStore.ConfirmOwnershipCalls(), 1)

	// Якорь закоммичен временем сервера
	require.Len(t, mockStore.SetLastSyncCalls(), 1)
	assert.Equal(t, anchor, mockStore.SetLastSyncCalls()[0].Ts)
}

func TestSync_ReconcileUpdateAndDelete(t *testing.T) {
	const anchor = int64(42)

	mockStore := newStoreMock()
	mockStore.TrackedUsersFunc = func(ctx context.Context) ([]models.TrackedUser, error) {
		return []models.TrackedUser{
			{User: models.User{Username: "sarah", Password: "987", Active: true}, Flags: models.FlagsLocalModified},
		}, nil
	}
	mockStore.TrackedCarsFunc = func(ctx context.Context) ([]models.TrackedCar, error) {
		return []models.TrackedCar{
			{Car: models.Car{UUID: "stale-car", Model: "Moskvich", Value: 1, Active: true}, Flags: models.FlagsServerClean},
		}, nil
	}

	mockTransport := &TransportMock{
		ServerTimeFunc: func(ctx context.Context) (int64, error) { return anchor, nil },
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			// Сервер принял другую версию sarah, а stale-car забыл
			return &api.SyncResponse{
				Updated: api.EntityRows{
					Users: []api.UserRow{{Username: "sarah", Password: "server-wins"}},
				},
			}, nil
		},
	}

	svc := NewService(mockTransport, mockStore, testLogger())

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Deleted)
	assert.Zero(t, result.Inserted)
	assert.Zero(t, result.Confirmed)

	// Обновление помечено как merged
	updates := mockStore.SaveServerUserCalls()
	require.Len(t, updates, 1)
	assert.Equal(t, "server-wins", updates[0].U.Password)
	assert.True(t, updates[0].Merged)

	// Неизвестная серверу машина вычищена физически
	purges := mockStore.PurgeCarCalls()
	require.Len(t, purges, 1)
	assert.Equal(t, "stale-car", purges[0].UUID)
}

// Конфликты от сервера записываются в conflict-таблицы, но якорь всё
// равно коммитится
func TestSync_RecordsServerConflicts(t *testing.T) {
	const anchor = int64(7)

	mockStore := newStoreMock()
	recorded := false
	mockStore.RecordUserConflictFunc = func(ctx context.Context, username string) error {
		recorded = true
		return nil
	}
	mockStore.ActiveConflictsFunc = func(ctx context.Context) (models.ConflictCounts, error) {
		if recorded {
			return models.ConflictCounts{Users: 1}, nil
		}
		return models.ConflictCounts{}, nil
	}

	mockTransport := &TransportMock{
		ServerTimeFunc: func(ctx context.Context) (int64, error) { return anchor, nil },
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			return &api.SyncResponse{
				Conflicts: []api.ConflictRow{
					{Kind: "Users", Key: "sarah"},
				},
			}, nil
		},
	}

	svc := NewService(mockTransport, mockStore, testLogger())

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Conflicts)

	require.Len(t, mockStore.RecordUserConflictCalls(), 1)
	assert.Equal(t, "sarah", mockStore.RecordUserConflictCalls()[0].Username)

	// Якорь закоммичен несмотря на конфликты после мержа
	require.Len(t, mockStore.SetLastSyncCalls(), 1)
	assert.Equal(t, anchor, mockStore.SetLastSyncCalls()[0].Ts)
}

func TestSync_SynchronizeFailure(t *testing.T) {
	mockStore := newStoreMock()

	mockTransport := &TransportMock{
		ServerTimeFunc: func(ctx context.Context) (int64, error) { return 1, nil },
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			return nil, errors.New("gateway timeout")
		},
	}

	svc := NewService(mockTransport, mockStore, testLogger())

	_, err := svc.Sync(context.Background())
	require.Error(t, err)

	// Ничего не изменено и якорь не сдвинут
	assert.Empty(t, mockStore.SaveServerUserCalls())
	assert.Empty(t, mockStore.PurgeUserCalls())
	assert.Empty(t, mockStore.SetLastSyncCalls())
}

func TestPendingChanges(t *testing.T) {
	mockStore := newStoreMock()
	mockStore.TrackedUsersFunc = func(ctx context.Context) ([]models.TrackedUser, error) {
		return []models.TrackedUser{
			{User: models.User{Username: "mike", Active: true}, Flags: models.FlagsLocalNew},
			{User: models.User{Username: "clean", Active: true}, Flags: models.FlagsServerClean},
		}, nil
	}

	svc := NewService(&TransportMock{}, mockStore, testLogger())

	cs, err := svc.PendingChanges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cs.Len())
	require.Len(t, cs.News.Users, 1)
	assert.Equal(t, "mike", cs.News.Users[0].Username)
}
