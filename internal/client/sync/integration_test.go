package sync

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carmarket/internal/client/storage"
	"github.com/iudanet/carmarket/internal/client/storage/sqlite"
	"github.com/iudanet/carmarket/internal/models"
	"github.com/iudanet/carmarket/pkg/api"
)

// echoTransport отвечает так, как ответил бы сервер, принявший весь
// change-set без конфликтов: авторитетный список = news + modified
// плюс строки, известные только серверу.
func echoTransport(t *testing.T, anchor int64, extra api.EntityRows) *TransportMock {
	t.Helper()

	return &TransportMock{
		ServerTimeFunc: func(ctx context.Context) (int64, error) { return anchor, nil },
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			resp := &api.SyncResponse{Updated: extra}
			resp.Updated.Users = append(resp.Updated.Users, req.News.Users...)
			resp.Updated.Users = append(resp.Updated.Users, req.Modified.Users...)
			resp.Updated.Cars = append(resp.Updated.Cars, req.News.Cars...)
			resp.Updated.Cars = append(resp.Updated.Cars, req.Modified.Cars...)
			resp.Updated.UserOwnCar = append(resp.Updated.UserOwnCar, req.News.UserOwnCar...)
			resp.Updated.UserOwnCar = append(resp.Updated.UserOwnCar, req.Modified.UserOwnCar...)
			return resp, nil
		},
	}
}

func setupTestStore(t *testing.T) *sqlite.Storage {
	t.Helper()

	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// Полный круг против настоящего sqlite-хранилища: локальные строки
// подтверждаются, серверная строка появляется, якорь коммитится.
func TestSync_EndToEnd(t *testing.T) {
	const anchor = int64(1700000000000)
	ctx := context.Background()

	store := setupTestStore(t)

	require.NoError(t, store.CreateUser(ctx, "mike", "123"))
	carID, err := store.AddCar(ctx, "mike", &models.Car{Model: "Lada", Value: 1000})
	require.NoError(t, err)

	// Scenario C: сервер приносит пользователя, которого у нас нет
	transport := echoTransport(t, anchor, api.EntityRows{
		Users: []api.UserRow{{Username: "lane", Password: "555"}},
	})

	svc := NewService(transport, store, testLogger())

	result, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Pushed)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 3, result.Confirmed)

	// "lane" появился как server-origin строка
	lane, err := store.GetUser(ctx, "lane")
	require.NoError(t, err)
	assert.Equal(t, "555", lane.Password)

	tracked, err := store.TrackedUsers(ctx)
	require.NoError(t, err)
	require.Len(t, tracked, 2)
	for _, tu := range tracked {
		assert.Equal(t, models.FlagsServerClean, tu.Flags, "user %s", tu.Username)
	}

	// Якорь равен времени сервера
	ts, err := store.LastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, anchor, ts)

	// Машина тоже подтверждена сервером
	trackedCars, err := store.TrackedCars(ctx)
	require.NoError(t, err)
	require.Len(t, trackedCars, 1)
	assert.Equal(t, carID, trackedCars[0].UUID)
	assert.Equal(t, models.FlagsServerClean, trackedCars[0].Flags)

	// После синхронизации change-set пуст
	cs, err := svc.PendingChanges(ctx)
	require.NoError(t, err)
	assert.True(t, cs.Empty())
}

// Повторный reconcile того же серверного состояния ничего не меняет
func TestSync_ReconcileIdempotent(t *testing.T) {
	ctx := context.Background()

	store := setupTestStore(t)

	require.NoError(t, store.CreateUser(ctx, "mike", "123"))
	carID, err := store.AddCar(ctx, "mike", &models.Car{Model: "Lada", Value: 1000})
	require.NoError(t, err)

	serverState := api.EntityRows{
		Users:      []api.UserRow{{Username: "mike", Password: "123"}},
		Cars:       []api.CarRow{{UUID: carID, Model: "Lada", Value: strconv.FormatInt(1000, 10)}},
		UserOwnCar: []api.OwnershipRow{{User: "mike", CarID: carID}},
	}
	transport := &TransportMock{
		ServerTimeFunc: func(ctx context.Context) (int64, error) { return 10, nil },
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			return &api.SyncResponse{Updated: serverState}, nil
		},
	}

	svc := NewService(transport, store, testLogger())

	_, err = svc.Sync(ctx)
	require.NoError(t, err)

	firstUsers, err := store.TrackedUsers(ctx)
	require.NoError(t, err)
	firstCars, err := store.TrackedCars(ctx)
	require.NoError(t, err)

	// Второй проход по тому же состоянию
	result, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Inserted)
	assert.Zero(t, result.Updated)
	assert.Zero(t, result.Deleted)
	assert.Equal(t, 3, result.Confirmed)

	secondUsers, err := store.TrackedUsers(ctx)
	require.NoError(t, err)
	secondCars, err := store.TrackedCars(ctx)
	require.NoError(t, err)

	assert.Equal(t, firstUsers, secondUsers)
	assert.Equal(t, firstCars, secondCars)
}

// Локальное удаление доставляется на сервер, надгробие выметается
func TestSync_DeletePropagation(t *testing.T) {
	ctx := context.Background()

	store := setupTestStore(t)

	// Пользователь известен серверу
	require.NoError(t, store.SaveServerUser(ctx, models.User{
		Username: "mike", Password: "123", Active: true, ModifiedAt: 1,
	}, 1, false))
	require.NoError(t, store.DeleteUser(ctx, "mike"))

	// Сервер принял удаление: авторитетный список пуст
	pushedDelete := false
	transport := &TransportMock{
		ServerTimeFunc: func(ctx context.Context) (int64, error) { return 20, nil },
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			if len(req.Deleted.Users) == 1 && req.Deleted.Users[0].Username == "mike" {
				pushedDelete = true
			}
			return &api.SyncResponse{}, nil
		},
	}

	svc := NewService(transport, store, testLogger())

	result, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, pushedDelete)
	assert.Equal(t, 1, result.Deleted)

	// Ни авторитетной строки, ни надгробия не осталось
	tracked, err := store.TrackedUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, tracked)
}

// Записанный конфликт блокирует следующую синхронизацию
func TestSync_ConflictBlocksNextRun(t *testing.T) {
	ctx := context.Background()

	store := setupTestStore(t)

	transport := &TransportMock{
		ServerTimeFunc: func(ctx context.Context) (int64, error) { return 30, nil },
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			return &api.SyncResponse{
				Conflicts: []api.ConflictRow{{Kind: "Users", Key: "mike"}},
			}, nil
		},
	}

	svc := NewService(transport, store, testLogger())

	result, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Conflicts)

	// Якорь тем не менее закоммичен
	ts, err := store.LastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(30), ts)

	// Следующий запуск блокируется записанным конфликтом
	_, err = svc.Sync(ctx)
	require.ErrorIs(t, err, ErrSyncBlocked)
}

func TestLastSync_NeverSyncedSentinel(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.LastSync(context.Background())
	assert.ErrorIs(t, err, storage.ErrNeverSynced)
}

// Сервер удалил одного из совладельцев машины, но сама машина и ребро
// второго совладельца остались в авторитетном списке. Каскад от
// удаления пользователя снимает их локально, и reconcile обязан
// увидеть это и вставить их заново.
func TestSync_UserCascadeKeepsCoOwnedCar(t *testing.T) {
	const anchor = int64(1700000000000)
	ctx := context.Background()

	store := setupTestStore(t)

	// Всё состояние пришло с сервера в прошлой синхронизации
	require.NoError(t, store.SaveServerUser(ctx,
		models.User{Username: "uma", Password: "1", Active: true}, 10, false))
	require.NoError(t, store.SaveServerUser(ctx,
		models.User{Username: "vera", Password: "2", Active: true}, 10, false))
	require.NoError(t, store.SaveServerCar(ctx,
		models.Car{UUID: "car-1", Model: "Lada", Value: 1000, Active: true}, 10, false))
	require.NoError(t, store.SaveServerOwnership(ctx,
		models.Ownership{Username: "uma", CarID: "car-1", Active: true}, 10, false))
	require.NoError(t, store.SaveServerOwnership(ctx,
		models.Ownership{Username: "vera", CarID: "car-1", Active: true}, 10, false))

	// Сервер удалил uma и её ребро; vera, car-1 и ребро vera остались
	transport := echoTransport(t, anchor, api.EntityRows{
		Users:      []api.UserRow{{Username: "vera", Password: "2"}},
		Cars:       []api.CarRow{{UUID: "car-1", Model: "Lada", Value: "1000"}},
		UserOwnCar: []api.OwnershipRow{{User: "vera", CarID: "car-1"}},
	})

	svc := NewService(transport, store, testLogger())

	result, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)   // uma
	assert.Equal(t, 1, result.Confirmed) // vera
	// car-1 и ребро vera сняты каскадом и вставлены заново
	assert.Equal(t, 2, result.Inserted)

	_, err = store.GetUser(ctx, "uma")
	require.ErrorIs(t, err, storage.ErrNotFound)

	car, err := store.GetCar(ctx, "car-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), car.Value)

	cars, err := store.TrackedCars(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, models.FlagsServerClean, cars[0].Flags)

	edges, err := store.TrackedOwnership(ctx)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "vera", edges[0].Username)
	assert.Equal(t, models.FlagsServerClean, edges[0].Flags)

	ts, err := store.LastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, anchor, ts)
}
