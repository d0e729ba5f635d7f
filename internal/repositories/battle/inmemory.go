package battle

import (
	"context"
	"sort"
	"sync"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

type inMemoryRepository struct {
	mu      sync.RWMutex
	battles map[string]entities.Battle
}

// NewInMemory creates a battle repository held in process memory.
// Stored values are copies, so callers can never mutate a stored battle in place.
func NewInMemory() Repository {
	return &inMemoryRepository{
		battles: make(map[string]entities.Battle),
	}
}

func (r *inMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateBattle(input.Battle); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.battles[input.Battle.ID]; ok {
		return nil, errors.AlreadyExistsf("battle %s already exists", input.Battle.ID).
			WithReason(errors.ReasonBattleExists)
	}
	r.battles[input.Battle.ID] = *input.Battle

	return &CreateOutput{Battle: input.Battle}, nil
}

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBattleIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.battles[input.ID]
	if !ok {
		return nil, errors.NotFoundf("battle %s not found", input.ID).
			WithReason(errors.ReasonBattleNotFound)
	}
	return &GetOutput{Battle: &b}, nil
}

func (r *inMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateBattle(input.Battle); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.battles[input.Battle.ID]; !ok {
		return nil, errors.NotFoundf("battle %s not found", input.Battle.ID).
			WithReason(errors.ReasonBattleNotFound)
	}
	r.battles[input.Battle.ID] = *input.Battle

	return &UpdateOutput{Battle: input.Battle}, nil
}

func (r *inMemoryRepository) ListByCharacter(_ context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDNone)
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	r.mu.RLock()
	var matches []entities.Battle
	for _, b := range r.battles {
		if b.Player1.CharacterID == input.CharacterID || b.Player2.CharacterID == input.CharacterID {
			matches = append(matches, b)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].StartTimestamp != matches[j].StartTimestamp {
			return matches[i].StartTimestamp > matches[j].StartTimestamp
		}
		return matches[i].ID > matches[j].ID
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	ids := make([]string, 0, len(matches))
	for _, b := range matches {
		ids = append(ids, b.ID)
	}
	return &ListByCharacterOutput{BattleIDs: ids}, nil
}
