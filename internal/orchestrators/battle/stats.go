package battle

import (
	"context"

	"github.com/uzochukwuV/massacombat/internal/engine"
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	characterrepo "github.com/uzochukwuV/massacombat/internal/repositories/character"
	equipmentrepo "github.com/uzochukwuV/massacombat/internal/repositories/equipment"
)

// StatsProvider loads a character with its equipment-adjusted stats
type StatsProvider interface {
	Fighter(ctx context.Context, characterID string) (*engine.Fighter, error)
}

type repoStatsProvider struct {
	characters characterrepo.Repository
	equipment  equipmentrepo.Repository
}

// NewStatsProvider builds fighters from the character and equipment stores
func NewStatsProvider(characters characterrepo.Repository, equipment equipmentrepo.Repository) StatsProvider {
	return &repoStatsProvider{characters: characters, equipment: equipment}
}

func (p *repoStatsProvider) Fighter(ctx context.Context, characterID string) (*engine.Fighter, error) {
	out, err := p.characters.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, err
	}
	c := out.Character

	items, err := p.equipment.GetMany(ctx, equipmentrepo.GetManyInput{
		IDs: []string{c.WeaponID, c.ArmorID, c.AccessoryID},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load equipment for %s", characterID)
	}

	return &engine.Fighter{
		Character: c,
		Stats:     engine.EffectiveStats(c, items.Equipment...),
	}, nil
}

// equipmentIDs lists what a character has on, for log lines
func equipmentIDs(c *entities.Character) []string {
	var ids []string
	for _, id := range []string{c.WeaponID, c.ArmorID, c.AccessoryID} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
