package guard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzochukwuV/massacombat/internal/errors"
	"github.com/uzochukwuV/massacombat/internal/pkg/guard"
	"github.com/uzochukwuV/massacombat/internal/testutils"
)

func exerciseGuard(t *testing.T, g guard.Guard) {
	ctx := context.Background()

	release, err := g.Acquire(ctx, "battle-1")
	require.NoError(t, err)

	_, err = g.Acquire(ctx, "battle-1")
	assert.True(t, errors.HasReason(err, errors.ReasonReentrant))
	assert.Equal(t, errors.CodeAborted, errors.GetCode(err))

	other, err := g.Acquire(ctx, "battle-2")
	require.NoError(t, err)
	other(ctx)

	release(ctx)
	release(ctx)

	again, err := g.Acquire(ctx, "battle-1")
	require.NoError(t, err)
	again(ctx)

	_, err = g.Acquire(ctx, "")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLocal(t *testing.T) {
	exerciseGuard(t, guard.NewLocal())
}

func TestRedis(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	g, err := guard.NewRedis(&guard.RedisConfig{Client: client})
	require.NoError(t, err)
	exerciseGuard(t, g)
}

func TestRedisReleaseOnlyOwnToken(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	g, err := guard.NewRedis(&guard.RedisConfig{Client: client, TTL: time.Second})
	require.NoError(t, err)

	stale, err := g.Acquire(ctx, "battle-1")
	require.NoError(t, err)

	// the first hold expires and someone else takes the battle
	mr.FastForward(2 * time.Second)
	fresh, err := g.Acquire(ctx, "battle-1")
	require.NoError(t, err)

	stale(ctx)
	assert.True(t, mr.Exists(guard.LockKey("battle-1")))

	fresh(ctx)
	assert.False(t, mr.Exists(guard.LockKey("battle-1")))
}

func TestDo(t *testing.T) {
	g := guard.NewLocal()
	ctx := context.Background()

	err := guard.Do(ctx, g, "battle-1", func() error {
		_, err := g.Acquire(ctx, "battle-1")
		return err
	})
	assert.True(t, errors.HasReason(err, errors.ReasonReentrant))

	ran := false
	require.NoError(t, guard.Do(ctx, g, "battle-1", func() error {
		ran = true
		return nil
	}))
	assert.True(t, ran)
}

func TestDoAllHoldsEveryKey(t *testing.T) {
	g := guard.NewLocal()
	ctx := context.Background()
	keys := []string{guard.CharacterKey("char-b"), guard.CharacterKey("char-a"), guard.CharacterKey("char-a")}

	err := guard.DoAll(ctx, g, keys, func() error {
		for _, key := range keys {
			_, err := g.Acquire(ctx, key)
			assert.True(t, errors.HasReason(err, errors.ReasonReentrant), key)
		}
		return nil
	})
	require.NoError(t, err)

	for _, key := range keys {
		release, err := g.Acquire(ctx, key)
		require.NoError(t, err)
		release(ctx)
	}
}

func TestDoAllReleasesWhenAKeyIsHeld(t *testing.T) {
	g := guard.NewLocal()
	ctx := context.Background()

	held, err := g.Acquire(ctx, guard.CharacterKey("char-b"))
	require.NoError(t, err)
	defer held(ctx)

	ran := false
	err = guard.DoAll(ctx, g, []string{guard.CharacterKey("char-b"), guard.CharacterKey("char-a")}, func() error {
		ran = true
		return nil
	})
	assert.True(t, errors.HasReason(err, errors.ReasonReentrant))
	assert.False(t, ran)

	release, err := g.Acquire(ctx, guard.CharacterKey("char-a"))
	require.NoError(t, err)
	release(ctx)
}

func TestRedisConfigValidation(t *testing.T) {
	_, err := guard.NewRedis(&guard.RedisConfig{})
	assert.True(t, errors.IsInvalidArgument(err))

	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()
	_, err = guard.NewRedis(&guard.RedisConfig{Client: client, TTL: -time.Second})
	assert.True(t, errors.IsInvalidArgument(err))
}
