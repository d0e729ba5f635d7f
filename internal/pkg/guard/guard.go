// Package guard serializes mutating calls per battle. A call that finds the
// battle already held fails immediately instead of waiting.
package guard

//go:generate mockgen -destination=mock/mock.go -package=guardmock github.com/uzochukwuV/massacombat/internal/pkg/guard Guard

import (
	"context"
	"sort"
	"sync"

	"github.com/uzochukwuV/massacombat/internal/errors"
)

// Release gives the battle back. Calling it more than once is harmless.
type Release func(ctx context.Context)

// Guard hands out exclusive holds on battle IDs
type Guard interface {
	// Acquire takes the hold on key
	// Returns errors.Aborted with reason Reentrant if the key is already held
	Acquire(ctx context.Context, key string) (Release, error)
}

// Do runs fn while holding key
func Do(ctx context.Context, g Guard, key string, fn func() error) error {
	release, err := g.Acquire(ctx, key)
	if err != nil {
		return err
	}
	defer release(ctx)
	return fn()
}

// characterKeyPrefix keeps character holds apart from battle holds
const characterKeyPrefix = "character:"

// CharacterKey is the key every writer of a character holds while it writes
func CharacterKey(characterID string) string {
	return characterKeyPrefix + characterID
}

// DoAll runs fn while holding every key. Keys are taken in sorted order with
// duplicates dropped, and the ones already taken are released if any fails.
func DoAll(ctx context.Context, g Guard, keys []string, fn func() error) error {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	var releases []Release
	defer func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i](ctx)
		}
	}()

	for i, key := range sorted {
		if i > 0 && key == sorted[i-1] {
			continue
		}
		release, err := g.Acquire(ctx, key)
		if err != nil {
			return err
		}
		releases = append(releases, release)
	}
	return fn()
}

// Local is an in-process Guard
type Local struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocal creates an in-process guard
func NewLocal() *Local {
	return &Local{held: make(map[string]struct{})}
}

// Acquire takes the hold on key
func (g *Local) Acquire(_ context.Context, key string) (Release, error) {
	if key == "" {
		return nil, errors.InvalidArgument("guard key cannot be empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.held[key]; ok {
		return nil, errors.Reentrant(key)
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func(context.Context) {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}
