package leaderboard

import (
	"context"
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/uzochukwuV/massacombat/internal/errors"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100

	errCharacterIDEmpty = "character ID cannot be empty"
)

type sqlRepository struct {
	db *gorm.DB
}

// Config contains configuration for the SQL leaderboard
type Config struct {
	DB *gorm.DB
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// New creates a gorm backed leaderboard and migrates its schema
func New(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.DB.AutoMigrate(&Standing{}, &SettledBattle{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate leaderboard schema")
	}
	return &sqlRepository{db: cfg.DB}, nil
}

// OpenSQLite opens the SQLite database at dsn
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", dsn)
	}
	return db, nil
}

func (r *sqlRepository) UpdateMMR(ctx context.Context, input UpdateMMRInput) (*UpdateMMROutput, error) {
	if err := validateUpdates(input.Updates); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return upsertMMR(tx, input.Updates)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update ratings")
	}

	slog.DebugContext(ctx, "updated leaderboard ratings", "count", len(input.Updates))
	return &UpdateMMROutput{}, nil
}

func (r *sqlRepository) RecordResult(ctx context.Context, input RecordResultInput) (*RecordResultOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var s *Standing
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		s, err = recordResult(tx, input)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record result for %s", input.CharacterID)
	}

	return &RecordResultOutput{Standing: s}, nil
}

func (r *sqlRepository) SettleBattle(ctx context.Context, input SettleBattleInput) (*SettleBattleOutput, error) {
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID cannot be empty")
	}
	if err := validateUpdates(input.Updates); err != nil {
		return nil, err
	}
	for _, res := range input.Results {
		if res.CharacterID == "" {
			return nil, errors.InvalidArgument(errCharacterIDEmpty)
		}
	}

	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		marker := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&SettledBattle{BattleID: input.BattleID})
		if marker.Error != nil {
			return marker.Error
		}
		if marker.RowsAffected == 0 {
			return nil
		}

		if err := upsertMMR(tx, input.Updates); err != nil {
			return err
		}
		for _, res := range input.Results {
			if _, err := recordResult(tx, res); err != nil {
				return err
			}
		}
		applied = true
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to settle battle %s", input.BattleID)
	}

	slog.DebugContext(ctx, "settled battle on leaderboard",
		"battle_id", input.BattleID,
		"applied", applied)
	return &SettleBattleOutput{Applied: applied}, nil
}

func validateUpdates(updates []MMRUpdate) error {
	for _, u := range updates {
		if u.CharacterID == "" {
			return errors.InvalidArgument(errCharacterIDEmpty)
		}
	}
	return nil
}

func upsertMMR(tx *gorm.DB, updates []MMRUpdate) error {
	for _, u := range updates {
		row := Standing{CharacterID: u.CharacterID, Owner: u.Owner, MMR: u.MMR}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "character_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"owner", "mmr", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func recordResult(tx *gorm.DB, input RecordResultInput) (*Standing, error) {
	var s Standing
	if err := tx.Where("character_id = ?", input.CharacterID).First(&s).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		s = Standing{CharacterID: input.CharacterID, MMR: DefaultMMR}
	}
	if input.Owner != "" {
		s.Owner = input.Owner
	}

	switch input.Result {
	case ResultWin:
		s.Wins++
		s.WinStreak++
	case ResultLoss:
		s.Losses++
		s.WinStreak = 0
	default:
		s.Ties++
		s.WinStreak = 0
	}
	if err := tx.Save(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqlRepository) Top(ctx context.Context, input TopInput) (*TopOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	var standings []Standing
	if err := r.db.WithContext(ctx).Model(&Standing{}).
		Order("mmr DESC").
		Order("wins DESC").
		Order("character_id ASC").
		Limit(limit).
		Find(&standings).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load leaderboard")
	}
	return &TopOutput{Standings: standings}, nil
}

func (r *sqlRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var s Standing
	if err := r.db.WithContext(ctx).Where("character_id = ?", input.CharacterID).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFoundf("character %s is not ranked", input.CharacterID).
				WithReason(errors.ReasonCharacterNotFound)
		}
		return nil, errors.Wrapf(err, "failed to get standing for %s", input.CharacterID)
	}
	return &GetOutput{Standing: &s}, nil
}
