// Package testutils provides shared test helpers: in-memory Redis, SQLite and fixtures
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/uzochukwuV/massacombat/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	client, _, cleanup := CreateTestRedis(t)
	return client, cleanup
}

// CreateTestRedis also returns the server so tests can inspect keys or move time
// forward for expiring entries
func CreateTestRedis(t *testing.T) (redis.Client, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		_ = client.Close()
		mr.Close()
	}

	return client, mr, cleanup
}
