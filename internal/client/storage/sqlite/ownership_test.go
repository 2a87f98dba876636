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

func TestOwnershipsOf(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, "alice", "secret"))
	id1, err := s.AddCar(ctx, "alice", &models.Car{Model: "Lada", Value: 1})
	require.NoError(t, err)
	id2, err := s.AddCar(ctx, "alice", &models.Car{Model: "Volga", Value: 2})
	require.NoError(t, err)

	edges, err := s.OwnershipsOf(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, edges, 2)

	cars := []string{edges[0].CarID, edges[1].CarID}
	assert.Contains(t, cars, id1)
	assert.Contains(t, cars, id2)
	for _, e := range edges {
		assert.Equal(t, "alice", e.Username)
		assert.True(t, e.Active)
	}
}

func TestDeleteOwnership_NeverSynced(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, "alice", "secret"))
	id, err := s.AddCar(ctx, "alice", &models.Car{Model: "Lada", Value: 1})
	require.NoError(t, err)

	require.NoError(t, s.DeleteOwnership(ctx, "alice", id))

	// Машина остаётся, связь исчезает без следа
	_, err = s.GetCar(ctx, id)
	require.NoError(t, err)

	_, ok := edgeFlags(t, ctx, s, "alice", id)
	assert.False(t, ok)
}

func TestDeleteOwnership_Synced(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	id := uuid.NewString()
	require.NoError(t, s.SaveServerOwnership(ctx, models.Ownership{
		Username: "alice", CarID: id, Active: true, ModifiedAt: 1,
	}, 1, false))

	require.NoError(t, s.DeleteOwnership(ctx, "alice", id))

	ef, ok := edgeFlags(t, ctx, s, "alice", id)
	require.True(t, ok)
	assert.Equal(t, models.ClassDeleted, ef.Class())

	edges, err := s.OwnershipsOf(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestDeleteOwnership_NotFound(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.DeleteOwnership(context.Background(), "ghost", uuid.NewString())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSaveServerOwnership(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	id := uuid.NewString()
	require.NoError(t, s.SaveServerOwnership(ctx, models.Ownership{
		Username: "alice", CarID: id, Active: true, ModifiedAt: 9,
	}, 9, false))

	ef, ok := edgeFlags(t, ctx, s, "alice", id)
	require.True(t, ok)
	assert.Equal(t, models.FlagsServerClean, ef)

	require.NoError(t, s.SaveServerOwnership(ctx, models.Ownership{
		Username: "alice", CarID: id, Active: true, ModifiedAt: 10,
	}, 10, true))

	ef, _ = edgeFlags(t, ctx, s, "alice", id)
	assert.Equal(t, models.FlagsServerMerged, ef)
}

func TestConfirmAndPurgeOwnership(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, "alice", "secret"))
	id, err := s.AddCar(ctx, "alice", &models.Car{Model: "Lada", Value: 1})
	require.NoError(t, err)

	require.NoError(t, s.ConfirmOwnership(ctx, "alice", id))
	ef, ok := edgeFlags(t, ctx, s, "alice", id)
	require.True(t, ok)
	assert.Equal(t, models.FlagsServerClean, ef)

	require.NoError(t, s.PurgeOwnership(ctx, "alice", id))
	_, ok = edgeFlags(t, ctx, s, "alice", id)
	assert.False(t, ok)

	// Ребра больше нет: подтверждение — ErrNotFound, не тихий no-op
	err = s.ConfirmOwnership(ctx, "alice", id)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
