package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carmarket/internal/client/storage"
	"github.com/iudanet/carmarket/internal/models"
)

func TestAddCar(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, "alice", "secret"))

	id, err := s.AddCar(ctx, "alice", &models.Car{Model: "Lada", Value: 1000})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	car, err := s.GetCar(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Lada", car.Model)
	assert.Equal(t, int64(1000), car.Value)
	assert.True(t, car.Active)

	// Машина и связь владения рождаются локально новыми
	assert.Equal(t, models.FlagsLocalNew, carFlags(t, ctx, s, id))

	ef, ok := edgeFlags(t, ctx, s, "alice", id)
	require.True(t, ok)
	assert.Equal(t, models.FlagsLocalNew, ef)
}

func TestAddCar_OwnerNotFound(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.AddCar(context.Background(), "ghost", &models.Car{Model: "Lada", Value: 1})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserCars(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, "alice", "secret"))
	require.NoError(t, s.CreateUser(ctx, "bob", "secret"))

	_, err := s.AddCar(ctx, "alice", &models.Car{Model: "Lada", Value: 1})
	require.NoError(t, err)
	_, err = s.AddCar(ctx, "alice", &models.Car{Model: "Volga", Value: 2})
	require.NoError(t, err)
	_, err = s.AddCar(ctx, "bob", &models.Car{Model: "Moskvich", Value: 3})
	require.NoError(t, err)

	cars, err := s.UserCars(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, cars, 2)

	names := []string{cars[0].Model, cars[1].Model}
	assert.Contains(t, names, "Lada")
	assert.Contains(t, names, "Volga")
}

func TestUpdateCar(t *testing.T) {
	tests := []struct {
		name      string
		synced    bool
		wantFlags models.ShadowFlags
	}{
		{
			name:      "never synced stays new",
			synced:    false,
			wantFlags: models.FlagsLocalNew,
		},
		{
			name:      "synced becomes modified",
			synced:    true,
			wantFlags: models.FlagsLocalModified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, cleanup := setupTestStorage(t)
			defer cleanup()
			ctx := context.Background()

			var id string
			if tt.synced {
				id = uuid.NewString()
				require.NoError(t, s.SaveServerCar(ctx, models.Car{
					UUID: id, Model: "Lada", Value: 1, Active: true, ModifiedAt: 1,
				}, 1, false))
			} else {
				require.NoError(t, s.CreateUser(ctx, "alice", "secret"))
				var err error
				id, err = s.AddCar(ctx, "alice", &models.Car{Model: "Lada", Value: 1})
				require.NoError(t, err)
			}

			require.NoError(t, s.UpdateCar(ctx, &models.Car{UUID: id, Model: "Lada 2107", Value: 5000}))

			car, err := s.GetCar(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, "Lada 2107", car.Model)
			assert.Equal(t, int64(5000), car.Value)

			assert.Equal(t, tt.wantFlags, carFlags(t, ctx, s, id))
		})
	}
}

func TestUpdateCar_NotFound(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.UpdateCar(context.Background(), &models.Car{UUID: uuid.NewString(), Model: "X", Value: 1})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteCar_NeverSynced(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, "alice", "secret"))
	id, err := s.AddCar(ctx, "alice", &models.Car{Model: "Lada", Value: 1})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCar(ctx, id))

	_, err = s.GetCar(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Ни машины, ни связи владения не остаётся
	tracked, err := s.TrackedCars(ctx)
	require.NoError(t, err)
	assert.Empty(t, tracked)

	_, ok := edgeFlags(t, ctx, s, "alice", id)
	assert.False(t, ok)
}

func TestDeleteCar_Synced(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	id := uuid.NewString()
	require.NoError(t, s.SaveServerCar(ctx, models.Car{
		UUID: id, Model: "Lada", Value: 1, Active: true, ModifiedAt: 1,
	}, 1, false))
	require.NoError(t, s.SaveServerUser(ctx, models.User{
		Username: "alice", Password: "pw", Active: true, ModifiedAt: 1,
	}, 1, false))
	require.NoError(t, s.SaveServerOwnership(ctx, models.Ownership{
		Username: "alice", CarID: id, Active: true, ModifiedAt: 1,
	}, 1, false))

	require.NoError(t, s.DeleteCar(ctx, id))

	_, err := s.GetCar(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Надгробия и на машине, и на связи владения
	assert.Equal(t, models.ClassDeleted, carFlags(t, ctx, s, id).Class())

	ef, ok := edgeFlags(t, ctx, s, "alice", id)
	require.True(t, ok)
	assert.Equal(t, models.ClassDeleted, ef.Class())
}

func TestSaveServerCar(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	id := uuid.NewString()
	require.NoError(t, s.SaveServerCar(ctx, models.Car{
		UUID: id, Model: "Lada", Value: 1, Active: true, ModifiedAt: 7,
	}, 7, false))

	car, err := s.GetCar(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), car.ModifiedAt)
	assert.Equal(t, models.FlagsServerClean, carFlags(t, ctx, s, id))
}

func TestConfirmAndPurgeCar(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, "alice", "secret"))
	id, err := s.AddCar(ctx, "alice", &models.Car{Model: "Lada", Value: 1})
	require.NoError(t, err)

	require.NoError(t, s.ConfirmCar(ctx, id))
	assert.Equal(t, models.FlagsServerClean, carFlags(t, ctx, s, id))

	require.NoError(t, s.PurgeCar(ctx, id))
	tracked, err := s.TrackedCars(ctx)
	require.NoError(t, err)
	assert.Empty(t, tracked)

	// После purge машины shadow-строки нет: подтверждение — ErrNotFound
	err = s.ConfirmCar(ctx, id)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
