// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/uzochukwuV/massacombat/internal/repositories/character Repository

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/uzochukwuV/massacombat/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// ListByOwner retrieves every character a wallet owns
	// Returns errors.Internal for storage failures
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// ApplySettlement replaces a finished battle's characters and records the
	// settlement in a single atomic write
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the battle was already applied
	// Returns errors.NotFound if a character doesn't exist
	// Returns errors.Internal for storage failures
	ApplySettlement(ctx context.Context, input ApplySettlementInput) (*ApplySettlementOutput, error)

	// GetSettlement retrieves the record of a battle applied to its characters
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the battle has not been applied
	// Returns errors.Internal for storage failures
	GetSettlement(ctx context.Context, input GetSettlementInput) (*GetSettlementOutput, error)
}

// Settlement records that a battle's result was written to its characters
type Settlement struct {
	BattleID string `json:"battle_id"`
	// PriorMMR holds each character's rating before the battle, by character ID
	PriorMMR map[string]uint32 `json:"prior_mmr"`
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// ListByOwnerInput defines the input for listing a wallet's characters
type ListByOwnerInput struct {
	Owner common.Address
}

// ListByOwnerOutput defines the output for listing a wallet's characters
type ListByOwnerOutput struct {
	Characters []*entities.Character
}

// ApplySettlementInput defines the input for applying a battle to its characters
type ApplySettlementInput struct {
	Settlement *Settlement
	Characters []*entities.Character
}

// ApplySettlementOutput defines the output for applying a battle to its characters
type ApplySettlementOutput struct {
	Settlement *Settlement
}

// GetSettlementInput defines the input for getting a battle's settlement record
type GetSettlementInput struct {
	BattleID string
}

// GetSettlementOutput defines the output for getting a battle's settlement record
type GetSettlementOutput struct {
	Settlement *Settlement
}
