// Package equipment provides the interface for item persistence
package equipment

//go:generate mockgen -destination=mock/mock_repository.go -package=equipmentmock github.com/uzochukwuV/massacombat/internal/repositories/equipment Repository

import (
	"context"

	"github.com/uzochukwuV/massacombat/internal/entities"
)

// Repository defines the interface for item persistence
type Repository interface {
	// Create stores a new item
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if an item with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an item by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the item doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetMany retrieves several items at once, skipping empty IDs
	// Returns errors.NotFound if any requested item doesn't exist
	GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error)

	// List returns every item ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating an item
type CreateInput struct {
	Equipment *entities.Equipment
}

// CreateOutput defines the output for creating an item
type CreateOutput struct {
	Equipment *entities.Equipment
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Equipment *entities.Equipment
}

// GetManyInput defines the input for getting several items
type GetManyInput struct {
	IDs []string
}

// GetManyOutput holds the found items in request order
type GetManyOutput struct {
	Equipment []*entities.Equipment
}

// ListInput defines the input for listing items
type ListInput struct {
	Slot *entities.EquipmentSlot
}

// ListOutput defines the output for listing items
type ListOutput struct {
	Equipment []*entities.Equipment
}
