package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzochukwuV/massacombat/internal/entities"
	battlerepo "github.com/uzochukwuV/massacombat/internal/repositories/battle"
	characterrepo "github.com/uzochukwuV/massacombat/internal/repositories/character"
	"github.com/uzochukwuV/massacombat/internal/testutils"
)

func newTestChecker(t *testing.T) (*storeChecker, func(key string) bool) {
	client, mr, cleanup := testutils.CreateTestRedis(t)
	t.Cleanup(cleanup)

	battles, err := battlerepo.NewRedis(&battlerepo.RedisConfig{Client: client})
	require.NoError(t, err)
	characters, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = characters.Create(ctx, characterrepo.CreateInput{
		Character: testutils.CreateTestCharacter("char-a", testutils.AliceAddress),
	})
	require.NoError(t, err)
	_, err = battles.Create(ctx, battlerepo.CreateInput{Battle: &entities.Battle{
		ID:          "battle-1",
		Player1:     entities.BattlePlayer{CharacterID: "char-a", CurrentHP: 10, MaxHP: 10},
		Player2:     entities.BattlePlayer{CharacterID: "char-b", CurrentHP: 10, MaxHP: 10},
		CurrentTurn: 1,
		State:       entities.BattleStateActive,
	}})
	require.NoError(t, err)

	require.NoError(t, mr.Set("battle:broken", "\x07garbage"))
	require.NoError(t, mr.Set("character:bad", "{not json"))
	require.NoError(t, mr.Set("battle:lock:battle-1", "token"))

	return &storeChecker{client: client, battles: battles, characters: characters}, mr.Exists
}

func TestCheckStoreReportsCorruptKeys(t *testing.T) {
	checker, _ := newTestChecker(t)

	checked, corrupt, err := checker.scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, checked)
	assert.ElementsMatch(t, []string{"battle:broken", "character:bad"}, corrupt)
}

func TestCheckStoreDeletesAfterConfirmation(t *testing.T) {
	checker, exists := newTestChecker(t)

	var out bytes.Buffer
	err := checker.run(context.Background(), strings.NewReader("yes\n"), &out, true)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "found 2 corrupt entries")
	assert.False(t, exists("battle:broken"))
	assert.False(t, exists("character:bad"))
	assert.True(t, exists("battle:battle-1"))
	assert.True(t, exists("character:char-a"))
}

func TestCheckStoreKeepsKeysWithoutConfirmation(t *testing.T) {
	checker, exists := newTestChecker(t)

	var out bytes.Buffer
	err := checker.run(context.Background(), strings.NewReader("no\n"), &out, true)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Aborted")
	assert.True(t, exists("battle:broken"))
}
