// Package battle provides the interface for battle persistence
package battle

//go:generate mockgen -destination=mock/mock_repository.go -package=battlemock github.com/uzochukwuV/massacombat/internal/repositories/battle Repository

import (
	"context"

	"github.com/uzochukwuV/massacombat/internal/entities"
)

// Repository stores whole battles. A battle is always written as one value, so a
// reader never observes a partially applied turn.
type Repository interface {
	// Create stores a new battle
	// Returns errors.InvalidArgument for a missing battle or id
	// Returns errors.AlreadyExists if the id is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a battle by id
	// Returns errors.NotFound if the battle doesn't exist
	// Returns errors.DataLoss if the stored record is corrupt
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing battle
	// Returns errors.NotFound if the battle doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// ListByCharacter returns the ids of battles a character has fought, newest first
	ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error)
}

// CreateInput defines the input for creating a battle
type CreateInput struct {
	Battle *entities.Battle
}

// CreateOutput defines the output for creating a battle
type CreateOutput struct {
	Battle *entities.Battle
}

// GetInput defines the input for getting a battle
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a battle
type GetOutput struct {
	Battle *entities.Battle
}

// UpdateInput defines the input for updating a battle
type UpdateInput struct {
	Battle *entities.Battle
}

// UpdateOutput defines the output for updating a battle
type UpdateOutput struct {
	Battle *entities.Battle
}

// ListByCharacterInput defines the input for listing a character's battles
type ListByCharacterInput struct {
	CharacterID string
	Limit       int
}

// ListByCharacterOutput defines the output for listing a character's battles
type ListByCharacterOutput struct {
	BattleIDs []string
}
