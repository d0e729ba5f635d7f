package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzochukwuV/massacombat/internal/errors"
)

func TestSeed(t *testing.T) {
	caller := []byte{0xde, 0xad, 0xbe, 0xef}

	t.Run("same inputs give the same seed", func(t *testing.T) {
		assert.Equal(t, Seed("battle-1", 1700000000, caller), Seed("battle-1", 1700000000, caller))
	})

	t.Run("any input change moves the seed", func(t *testing.T) {
		base := Seed("battle-1", 1700000000, caller)
		assert.NotEqual(t, base, Seed("battle-2", 1700000000, caller))
		assert.NotEqual(t, base, Seed("battle-1", 1700000001, caller))
		assert.NotEqual(t, base, Seed("battle-1", 1700000000, []byte{0xde, 0xad, 0xbe, 0xee}))
	})

	t.Run("never zero", func(t *testing.T) {
		assert.Equal(t, seedSalt, Seed("", int64(seedSalt^fnvOffset), nil))
	})
}

func TestXorShift(t *testing.T) {
	t.Run("replays from a persisted state", func(t *testing.T) {
		a := NewXorShift(12345)
		for i := 0; i < 10; i++ {
			a.Next()
		}
		b := NewXorShift(a.State())
		c := NewXorShift(a.State())
		for i := 0; i < 100; i++ {
			assert.Equal(t, b.Next(), c.Next())
		}
	})

	t.Run("zero seed is replaced", func(t *testing.T) {
		x := NewXorShift(0)
		assert.Equal(t, seedSalt, x.State())
		assert.NotZero(t, x.Next())
	})

	t.Run("between stays in range", func(t *testing.T) {
		x := NewXorShift(99)
		for i := 0; i < 1000; i++ {
			v := x.Between(10, 20)
			assert.GreaterOrEqual(t, v, uint64(10))
			assert.LessOrEqual(t, v, uint64(20))
		}
	})

	t.Run("between with empty range does not draw", func(t *testing.T) {
		x := NewXorShift(99)
		assert.Equal(t, uint64(7), x.Between(7, 7))
		assert.Equal(t, uint64(9), x.Between(9, 3))
		assert.Equal(t, uint64(99), x.State())
	})

	t.Run("range uniform of zero", func(t *testing.T) {
		x := NewXorShift(99)
		assert.Zero(t, x.RangeUniform(0))
	})

	t.Run("chance bounds", func(t *testing.T) {
		x := NewXorShift(5)
		for i := 0; i < 100; i++ {
			assert.False(t, x.Chance(0))
			assert.True(t, x.Chance(100))
		}
		assert.Equal(t, uint64(5), x.State())
	})

	t.Run("roll implements a die", func(t *testing.T) {
		x := NewXorShift(77)
		rolls, err := x.RollN(50, 4)
		require.NoError(t, err)
		for _, r := range rolls {
			assert.GreaterOrEqual(t, r, 1)
			assert.LessOrEqual(t, r, 4)
		}
	})

	t.Run("roll rejects bad sizes", func(t *testing.T) {
		x := NewXorShift(77)
		_, err := x.Roll(0)
		assert.True(t, errors.IsInvalidArgument(err))
		_, err = x.RollN(-1, 6)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
