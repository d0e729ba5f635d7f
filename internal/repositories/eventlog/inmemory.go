package eventlog

import (
	"context"
	"sync"

	"github.com/uzochukwuV/massacombat/internal/errors"
)

type inMemoryRepository struct {
	mu   sync.RWMutex
	logs map[string][]Entry
}

// NewInMemory creates an event log held in process memory
func NewInMemory() Repository {
	return &inMemoryRepository{logs: make(map[string][]Entry)}
}

func (r *inMemoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if input.BattleID == "" {
		return nil, errors.InvalidArgument(errBattleIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs[input.BattleID] = append(r.logs[input.BattleID], input.Entries...)
	return &AppendOutput{Length: int64(len(r.logs[input.BattleID]))}, nil
}

func (r *inMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.BattleID == "" {
		return nil, errors.InvalidArgument(errBattleIDEmpty)
	}
	if input.Offset < 0 {
		return nil, errors.InvalidArgumentf("offset %d cannot be negative", input.Offset)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.logs[input.BattleID]
	if input.Offset >= int64(len(log)) {
		return &ListOutput{Entries: []Entry{}}, nil
	}
	entries := make([]Entry, len(log)-int(input.Offset))
	copy(entries, log[input.Offset:])
	return &ListOutput{Entries: entries}, nil
}
