package character

import (
	"context"
	"sort"
	"sync"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

type inMemoryRepository struct {
	mu          sync.RWMutex
	characters  map[string]entities.Character
	settlements map[string]Settlement
}

// NewInMemory creates a character repository held in process memory
func NewInMemory() Repository {
	return &inMemoryRepository{
		characters:  make(map[string]entities.Character),
		settlements: make(map[string]Settlement),
	}
}

func (r *inMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[input.Character.ID]; ok {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID).
			WithReason(errors.ReasonCharacterExists)
	}
	r.characters[input.Character.ID] = *input.Character

	return &CreateOutput{Character: input.Character}, nil
}

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.characters[input.ID]
	if !ok {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID).
			WithReason(errors.ReasonCharacterNotFound)
	}
	return &GetOutput{Character: &c}, nil
}

func (r *inMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[input.Character.ID]; !ok {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.ID).
			WithReason(errors.ReasonCharacterNotFound)
	}
	r.characters[input.Character.ID] = *input.Character

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *inMemoryRepository) ListByOwner(_ context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var characters []*entities.Character
	for _, c := range r.characters {
		if c.Owner == input.Owner {
			c := c
			characters = append(characters, &c)
		}
	}
	sortByID(characters)

	return &ListByOwnerOutput{Characters: characters}, nil
}

func (r *inMemoryRepository) ApplySettlement(_ context.Context, input ApplySettlementInput) (*ApplySettlementOutput, error) {
	if err := validateSettlement(input); err != nil {
		return nil, err
	}
	s := input.Settlement

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.settlements[s.BattleID]; ok {
		return nil, settlementExists(s.BattleID)
	}
	for _, c := range input.Characters {
		if _, ok := r.characters[c.ID]; !ok {
			return nil, errors.NotFoundf("character with ID %s not found", c.ID).
				WithReason(errors.ReasonCharacterNotFound)
		}
	}

	for _, c := range input.Characters {
		r.characters[c.ID] = *c
	}
	r.settlements[s.BattleID] = copySettlement(s)

	return &ApplySettlementOutput{Settlement: s}, nil
}

func (r *inMemoryRepository) GetSettlement(_ context.Context, input GetSettlementInput) (*GetSettlementOutput, error) {
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.settlements[input.BattleID]
	if !ok {
		return nil, settlementNotFound(input.BattleID)
	}
	out := copySettlement(&s)
	return &GetSettlementOutput{Settlement: &out}, nil
}

func copySettlement(s *Settlement) Settlement {
	prior := make(map[string]uint32, len(s.PriorMMR))
	for id, mmr := range s.PriorMMR {
		prior[id] = mmr
	}
	return Settlement{BattleID: s.BattleID, PriorMMR: prior}
}

func sortByID(characters []*entities.Character) {
	sort.Slice(characters, func(i, j int) bool {
		return characters[i].ID < characters[j].ID
	})
}
