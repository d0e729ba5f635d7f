// Package engine resolves battles: turn damage, status effects, skills, the wildcard
// event, and rating settlement. It never performs I/O; callers load state, hand it
// in, and persist what comes back.
package engine

import (
	"context"
)

// Engine is the battle rules engine.
// Every method mutates the battle it is given only when it returns a nil error.
type Engine interface {
	// StartBattle builds a new active battle between two fighters
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// ResolveTurn runs one action for the player whose turn it is
	ResolveTurn(ctx context.Context, input *ResolveTurnInput) (*ResolveTurnOutput, error)

	// DecideWildcard records one player's answer to a pending wildcard
	DecideWildcard(ctx context.Context, input *DecideWildcardInput) (*DecideWildcardOutput, error)
	// TimeoutWildcard resolves a wildcard whose deadline has passed
	TimeoutWildcard(ctx context.Context, input *TimeoutWildcardInput) (*TimeoutWildcardOutput, error)

	// Settle computes the rating and record changes for a completed battle
	Settle(ctx context.Context, input *SettleInput) (*SettleOutput, error)
}
