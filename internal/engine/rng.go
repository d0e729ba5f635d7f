package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/uzochukwuV/massacombat/internal/errors"
)

const (
	// seedSalt is mixed into every seed and replaces a zero state, which
	// xorshift can never leave.
	seedSalt uint64 = 0x9E3779B97F4A7C15

	fnvOffset uint64 = 0xcbf29ce484222325
	fnvPrime  uint64 = 0x100000001b3
)

// Source is the randomness a turn consumes. Implementations must be deterministic
// for a given starting state.
type Source interface {
	dice.Roller

	// Between returns a uniform value in [min, max]; min >= max returns min
	Between(min, max uint64) uint64
	// Chance reports success for a percentage roll
	Chance(percent uint64) bool
	// State returns the state to persist back onto the battle
	State() uint64
}

// SourceFactory builds a Source resuming from a persisted seed
type SourceFactory func(seed uint64) Source

// NewXorShiftSource is the production SourceFactory
func NewXorShiftSource(seed uint64) Source {
	return NewXorShift(seed)
}

// Seed derives the starting state of a battle's generator from its id, the creation
// timestamp, and the caller's address bytes. Identical inputs always give the same seed.
func Seed(battleID string, timestamp int64, caller []byte) uint64 {
	s := uint64(timestamp) ^ seedSalt
	for i, b := range caller {
		s ^= uint64(b) << (uint(i%8) * 8)
	}

	h := fnvOffset
	for i := 0; i < len(battleID); i++ {
		h ^= uint64(battleID[i])
		h *= fnvPrime
	}
	s ^= h

	if s == 0 {
		return seedSalt
	}
	return s
}

// XorShift is a 64-bit xorshift generator (shifts 13, 7, 17)
type XorShift struct {
	state uint64
}

// NewXorShift resumes a generator from a persisted state
func NewXorShift(seed uint64) *XorShift {
	if seed == 0 {
		seed = seedSalt
	}
	return &XorShift{state: seed}
}

var _ Source = (*XorShift)(nil)

// Next advances the generator and returns the new state
func (x *XorShift) Next() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

// State returns the current generator state
func (x *XorShift) State() uint64 {
	return x.state
}

// RangeUniform returns Next() mod max, or 0 when max is 0
func (x *XorShift) RangeUniform(max uint64) uint64 {
	if max == 0 {
		return 0
	}
	return x.Next() % max
}

// Between returns a value in [min, max] inclusive
func (x *XorShift) Between(min, max uint64) uint64 {
	if min >= max {
		return min
	}
	return min + x.RangeUniform(max-min+1)
}

// Chance rolls 1..100 and succeeds when the roll is at most percent
func (x *XorShift) Chance(percent uint64) bool {
	if percent >= 100 {
		return true
	}
	if percent == 0 {
		return false
	}
	return x.Between(1, 100) <= percent
}

// Roll returns a value in 1..size
func (x *XorShift) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return int(x.Between(1, uint64(size))), nil
}

// RollN rolls count dice of the given size
func (x *XorShift) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("die count must not be negative, got %d", count)
	}
	rolls := make([]int, count)
	for i := range rolls {
		r, err := x.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls[i] = r
	}
	return rolls, nil
}
