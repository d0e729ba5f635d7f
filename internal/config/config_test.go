package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzochukwuV/massacombat/internal/config"
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, config.StorageMemory, cfg.Storage)
	assert.Equal(t, uint8(10), cfg.WildcardChance)
	assert.Equal(t, 5*time.Minute, cfg.WildcardWindow)
	assert.Equal(t, uint32(100), cfg.MaxTurns)
	assert.False(t, cfg.AllowSelfBattle)
	assert.Equal(t, 10*time.Second, cfg.GuardTTL)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"grpc_port: 6000\nstorage: redis\nwildcard_chance: 25\nmax_turns: 40\n"), 0o600))

	t.Setenv("BATTLE_GRPC_PORT", "7000")
	t.Setenv("BATTLE_ALLOW_SELF_BATTLE", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.GRPCPort)
	assert.Equal(t, config.StorageRedis, cfg.Storage)
	assert.Equal(t, uint8(25), cfg.WildcardChance)
	assert.Equal(t, uint32(40), cfg.MaxTurns)
	assert.True(t, cfg.AllowSelfBattle)
}

func TestLoadRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown storage", env: map[string]string{"BATTLE_STORAGE": "postgres"}},
		{name: "wildcard chance", env: map[string]string{"BATTLE_WILDCARD_CHANCE": "101"}},
		{name: "zero max turns", env: map[string]string{"BATTLE_MAX_TURNS": "0"}},
		{name: "log format", env: map[string]string{"BATTLE_LOG_FORMAT": "xml"}},
		{name: "port", env: map[string]string{"BATTLE_GRPC_PORT": "70000"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.Load("")
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestEmbeddedCatalog(t *testing.T) {
	cat, err := config.LoadCatalog("")
	require.NoError(t, err)

	require.Len(t, cat.Classes, 5)
	warrior := cat.Classes[entities.ClassWarrior]
	assert.Equal(t, uint32(120), warrior.HP)
	assert.Equal(t, uint32(10), warrior.DamageMin)
	assert.Equal(t, uint32(20), warrior.DamageMax)
	assert.Equal(t, []entities.SkillID{entities.SkillPowerStrike}, warrior.StartingSkills)
	assert.Equal(t, []entities.SkillID{entities.SkillShieldWall}, cat.Classes[entities.ClassTank].StartingSkills)

	require.NotEmpty(t, cat.Equipment)
	assert.Equal(t, "iron-sword", cat.Equipment[0].ID)
	assert.Equal(t, entities.SlotWeapon, cat.Equipment[0].Slot)
}

func TestParseCatalogErrors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "not yaml", doc: "classes: [\n"},
		{name: "no classes", doc: "equipment: []\n"},
		{name: "unknown class", doc: "classes:\n  - {name: bard, hp: 10}\n"},
		{name: "unknown skill", doc: "classes:\n  - {name: mage, hp: 10, starting_skills: [fireball]}\n"},
		{name: "inverted damage", doc: "classes:\n  - {name: mage, hp: 10, damage_min: 9, damage_max: 3}\n"},
		{name: "duplicate class", doc: "classes:\n  - {name: mage, hp: 10}\n  - {name: mage, hp: 12}\n"},
		{name: "bad slot", doc: "classes:\n  - {name: mage, hp: 10}\nequipment:\n  - {id: x, name: X, slot: boots}\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.ParseCatalog([]byte(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestParseCatalogUnknownClassReason(t *testing.T) {
	_, err := config.ParseCatalog([]byte("classes:\n  - {name: bard, hp: 10}\n"))
	assert.True(t, errors.HasReason(err, errors.ReasonUnknownClass))
}
