package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MemoryDefault(t *testing.T) {
	t.Parallel()

	db, err := Open(context.Background(), "")
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, Close(db))
	assert.Error(t, sqlDB.Ping())
}

func TestOpen_FailedPingReleasesHandle(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db, err := Open(ctx, MemoryDSN)
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "ping sqlite")
}
