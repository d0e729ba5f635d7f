package equipment

import (
	"context"
	"sort"
	"sync"

	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

type inMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Equipment
}

// NewInMemory creates an equipment repository held in process memory
func NewInMemory() Repository {
	return &inMemoryRepository{items: make(map[string]entities.Equipment)}
}

func (r *inMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateEquipment(input.Equipment); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[input.Equipment.ID]; ok {
		return nil, errors.AlreadyExistsf("equipment with ID %s already exists", input.Equipment.ID)
	}
	r.items[input.Equipment.ID] = *input.Equipment
	return &CreateOutput{Equipment: input.Equipment}, nil
}

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEquipmentIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[input.ID]
	if !ok {
		return nil, notFound(input.ID)
	}
	return &GetOutput{Equipment: &e}, nil
}

func (r *inMemoryRepository) GetMany(_ context.Context, input GetManyInput) (*GetManyOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*entities.Equipment
	for _, id := range nonEmpty(input.IDs) {
		e, ok := r.items[id]
		if !ok {
			return nil, notFound(id)
		}
		items = append(items, &e)
	}
	return &GetManyOutput{Equipment: items}, nil
}

func (r *inMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*entities.Equipment
	for _, e := range r.items {
		if input.Slot != nil && e.Slot != *input.Slot {
			continue
		}
		e := e
		items = append(items, &e)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return &ListOutput{Equipment: items}, nil
}
