package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/carmarket/internal/client/storage"
)

func TestLastSync_NeverSynced(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.LastSync(context.Background())
	assert.ErrorIs(t, err, storage.ErrNeverSynced)
}

func TestSetLastSync(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, s.SetLastSync(ctx, 1700000000000))

	ts, err := s.LastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), ts)

	// Повторная установка перезаписывает якорь
	require.NoError(t, s.SetLastSync(ctx, 1700000001000))

	ts, err = s.LastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000001000), ts)
}

func TestActiveConflicts_Empty(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	counts, err := s.ActiveConflicts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, counts.Total())
}

func TestRecordConflicts(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	carID := uuid.NewString()

	require.NoError(t, s.RecordUserConflict(ctx, "alice"))
	require.NoError(t, s.RecordCarConflict(ctx, carID))
	require.NoError(t, s.RecordOwnershipConflict(ctx, "alice", carID))

	counts, err := s.ActiveConflicts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Users)
	assert.Equal(t, 1, counts.Cars)
	assert.Equal(t, 1, counts.Ownership)
	assert.Equal(t, 3, counts.Total())

	// Повторная запись того же конфликта не плодит дублей
	require.NoError(t, s.RecordUserConflict(ctx, "alice"))

	counts, err = s.ActiveConflicts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Users)
}
