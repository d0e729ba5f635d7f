// Package leaderboard persists ranked standings derived from finalized battles
package leaderboard

//go:generate mockgen -destination=mock/mock_repository.go -package=leaderboardmock github.com/uzochukwuV/massacombat/internal/repositories/leaderboard Repository

import (
	"context"
	"time"
)

// DefaultMMR is the rating a character enters the board with
const DefaultMMR = 1000

// Standing is one row of the leaderboard
type Standing struct {
	CharacterID string `gorm:"primaryKey;size:64"`
	Owner       string `gorm:"index;size:42"`
	MMR         uint32 `gorm:"index"`
	Wins        uint32
	Losses      uint32
	Ties        uint32
	WinStreak   uint32
	UpdatedAt   time.Time
}

// TableName pins the table name
func (Standing) TableName() string {
	return "standings"
}

// SettledBattle marks a battle whose ratings and results are on the board
type SettledBattle struct {
	BattleID  string `gorm:"primaryKey;size:64"`
	CreatedAt time.Time
}

// TableName pins the table name
func (SettledBattle) TableName() string {
	return "settled_battles"
}

// Repository defines the leaderboard operations the finalize step needs
type Repository interface {
	// UpdateMMR writes new ratings for every entry in one transaction,
	// creating rows for characters seen for the first time
	UpdateMMR(ctx context.Context, input UpdateMMRInput) (*UpdateMMROutput, error)

	// RecordResult bumps the win, loss or tie counter of one character
	RecordResult(ctx context.Context, input RecordResultInput) (*RecordResultOutput, error)

	// SettleBattle writes a battle's ratings and results in one transaction.
	// A battle already on the board is left alone and reported as not applied.
	SettleBattle(ctx context.Context, input SettleBattleInput) (*SettleBattleOutput, error)

	// Top returns the highest rated characters
	Top(ctx context.Context, input TopInput) (*TopOutput, error)

	// Get returns one character's standing
	// Returns errors.NotFound if the character has never been ranked
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// MMRUpdate is the new rating of one character
type MMRUpdate struct {
	CharacterID string
	Owner       string
	MMR         uint32
}

// UpdateMMRInput defines the input for UpdateMMR
type UpdateMMRInput struct {
	Updates []MMRUpdate
}

// UpdateMMROutput defines the output for UpdateMMR
type UpdateMMROutput struct{}

// Result is the outcome being recorded
type Result uint8

// Results
const (
	ResultLoss Result = iota
	ResultTie
	ResultWin
)

// RecordResultInput defines the input for RecordResult
type RecordResultInput struct {
	CharacterID string
	Owner       string
	Result      Result
}

// RecordResultOutput defines the output for RecordResult
type RecordResultOutput struct {
	Standing *Standing
}

// SettleBattleInput defines the input for SettleBattle
type SettleBattleInput struct {
	BattleID string
	Updates  []MMRUpdate
	Results  []RecordResultInput
}

// SettleBattleOutput defines the output for SettleBattle
type SettleBattleOutput struct {
	// Applied is false when the battle had already been settled
	Applied bool
}

// TopInput defines the input for Top
type TopInput struct {
	Limit int
}

// TopOutput defines the output for Top
type TopOutput struct {
	Standings []Standing
}

// GetInput defines the input for Get
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for Get
type GetOutput struct {
	Standing *Standing
}
