// Package eventlog stores the append-only, human readable log of what happened in a battle
package eventlog

//go:generate mockgen -destination=mock/mock_repository.go -package=eventlogmock github.com/uzochukwuV/massacombat/internal/repositories/eventlog Repository

import (
	"context"
)

// Entry is one log line
type Entry struct {
	Timestamp int64  `json:"ts"`
	Turn      uint32 `json:"turn"`
	Message   string `json:"msg"`
}

// Repository defines the interface for battle event logs
type Repository interface {
	// Append adds entries to the end of a battle's log
	// Returns errors.InvalidArgument for an empty battle ID
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns the log in the order it was written. A battle with no
	// entries yields an empty list rather than NotFound.
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AppendInput defines the input for appending entries
type AppendInput struct {
	BattleID string
	Entries  []Entry
}

// AppendOutput defines the output for appending entries
type AppendOutput struct {
	Length int64
}

// ListInput defines the input for listing entries
type ListInput struct {
	BattleID string
	// Offset skips that many entries so pollers only fetch what is new
	Offset int64
}

// ListOutput defines the output for listing entries
type ListOutput struct {
	Entries []Entry
}
