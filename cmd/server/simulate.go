package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/uzochukwuV/massacombat/internal/config"
	"github.com/uzochukwuV/massacombat/internal/engine"
	"github.com/uzochukwuV/massacombat/internal/entities"
	"github.com/uzochukwuV/massacombat/internal/errors"
	battleorch "github.com/uzochukwuV/massacombat/internal/orchestrators/battle"
	characterorch "github.com/uzochukwuV/massacombat/internal/orchestrators/character"
	"github.com/uzochukwuV/massacombat/internal/pkg/clock"
	"github.com/uzochukwuV/massacombat/internal/pkg/idgen"
	"github.com/uzochukwuV/massacombat/internal/repositories/leaderboard"
)

// simulationEpoch is the fixed start time of every simulated battle
const simulationEpoch = 1_700_000_000

var (
	simSeed     uint64
	simClass1   string
	simClass2   string
	simWeapon1  string
	simWeapon2  string
	simAcceptWC uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one battle locally with in-memory storage",
	Long: `Mint two characters, fight until one falls and settle the result without a server.
The same seed and classes always produce the same battle.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 1, "Seed for actions and battle randomness")
	simulateCmd.Flags().StringVar(&simClass1, "class1", "warrior", "Class of the first character")
	simulateCmd.Flags().StringVar(&simClass2, "class2", "assassin", "Class of the second character")
	simulateCmd.Flags().StringVar(&simWeapon1, "weapon1", "", "Catalog weapon for the first character")
	simulateCmd.Flags().StringVar(&simWeapon2, "weapon2", "", "Catalog weapon for the second character")
	simulateCmd.Flags().Uint64Var(&simAcceptWC, "accept-wildcards", 50, "Percent chance each player accepts a wildcard")
}

// simulationSpec describes one simulated fight
type simulationSpec struct {
	Seed            uint64
	Classes         [2]entities.Class
	Weapons         [2]string
	AcceptWildcards uint64
}

// simulationResult is what a finished simulation produced
type simulationResult struct {
	Battle     *entities.Battle
	Settlement *engine.Settlement
	Turns      int
	Standings  []leaderboard.Standing
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cat, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	var spec simulationSpec
	for i, name := range []string{simClass1, simClass2} {
		class, ok := entities.ParseClass(name)
		if !ok {
			return fmt.Errorf("unknown class %q", name)
		}
		spec.Classes[i] = class
	}
	spec.Seed = simSeed
	spec.Weapons = [2]string{simWeapon1, simWeapon2}
	spec.AcceptWildcards = simAcceptWC

	setupSlog("warn", "text")
	_, err = simulate(cmd.Context(), cfg, cat, spec, os.Stdout)
	return err
}

// simulate runs one battle on in-memory storage and writes a transcript to out
func simulate(ctx context.Context, cfg *config.Config, cat *config.Catalog, spec simulationSpec, out io.Writer) (*simulationResult, error) {
	local := *cfg
	local.Storage = config.StorageMemory

	db, err := leaderboard.OpenSQLite("file::memory:")
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to access sqlite handle")
	}
	sqlDB.SetMaxOpenConns(1)
	defer func() {
		_ = sqlDB.Close() // nolint:errcheck // in-memory database
	}()

	clk := clock.NewFixed(time.Unix(simulationEpoch, 0))
	svc, err := newServices(ctx, &local, cat, appOptions{
		clock:       clk,
		battleIDs:   idgen.NewSequential("battle"),
		characterID: idgen.NewSequential("char"),
		newSource: func(seed uint64) engine.Source {
			return engine.NewXorShiftSource(seed ^ spec.Seed)
		},
		db: db,
	})
	if err != nil {
		return nil, err
	}
	defer svc.Close()

	owners := [2]common.Address{
		common.BigToAddress(new(big.Int).SetUint64(spec.Seed*2 + 1)),
		common.BigToAddress(new(big.Int).SetUint64(spec.Seed*2 + 2)),
	}
	chars := make(map[string]*entities.Character, 2)
	var ids [2]string
	for i := range ids {
		minted, err := svc.characters.Mint(ctx, &characterorch.MintInput{
			Owner: owners[i],
			Name:  fmt.Sprintf("%s-%d", spec.Classes[i], i+1),
			Class: spec.Classes[i],
		})
		if err != nil {
			return nil, err
		}
		c := minted.Character
		if spec.Weapons[i] != "" {
			equipped, err := svc.characters.EquipItem(ctx, &characterorch.EquipItemInput{
				CharacterID: c.ID,
				Slot:        entities.SlotWeapon,
				EquipmentID: spec.Weapons[i],
				Caller:      owners[i],
			})
			if err != nil {
				return nil, err
			}
			c = equipped.Character
		}
		ids[i] = c.ID
		chars[c.ID] = c
	}
	ownerOf := map[string]common.Address{ids[0]: owners[0], ids[1]: owners[1]}

	created, err := svc.battles.CreateBattle(ctx, &battleorch.CreateBattleInput{
		Character1ID: ids[0],
		Character2ID: ids[1],
		Caller:       owners[0],
	})
	if err != nil {
		return nil, err
	}
	b := created.Battle
	fmt.Fprintf(out, "%s: %s vs %s\n", b.ID, ids[0], ids[1])

	actions := engine.NewXorShift(spec.Seed)
	result := &simulationResult{}
	for b.State != entities.BattleStateCompleted {
		if result.Turns > int(local.MaxTurns)*2 {
			return nil, errors.Internalf("battle %s did not finish after %d turns", b.ID, result.Turns)
		}
		clk.Advance(time.Second)

		if b.State == entities.BattleStateWildcard {
			b, err = decideWildcard(ctx, svc.battles, b, ownerOf, actions, spec.AcceptWildcards, out)
			if err != nil {
				return nil, err
			}
			continue
		}

		attacker := b.Player(b.CurrentTurn)
		input := &battleorch.ExecuteTurnInput{
			BattleID:    b.ID,
			CharacterID: attacker.CharacterID,
			Stance:      entities.Stance(actions.Between(0, uint64(entities.StanceCounter))),
			Caller:      ownerOf[attacker.CharacterID],
		}
		if slot, ok := pickSkill(attacker, chars[attacker.CharacterID], actions); ok {
			input.UseSkill = true
			input.SkillSlot = slot
		}

		turn, err := svc.battles.ExecuteTurn(ctx, input)
		if err != nil {
			return nil, err
		}
		result.Turns++
		b = turn.Battle
		for _, line := range turn.Result.Events {
			fmt.Fprintf(out, "  [%d] %s\n", turn.Result.TurnNumber, line)
		}
	}

	settled, err := svc.battles.FinalizeBattle(ctx, &battleorch.FinalizeBattleInput{BattleID: b.ID})
	if err != nil {
		return nil, err
	}
	result.Battle = settled.Battle
	result.Settlement = settled.Settlement

	winner := settled.Settlement.WinnerID
	if winner == "" {
		winner = "tie"
	}
	fmt.Fprintf(out, "winner: %s after %d turns\n", winner, result.Turns)
	for _, e := range []engine.SettlementEntry{settled.Settlement.Player1, settled.Settlement.Player2} {
		fmt.Fprintf(out, "  %s MMR %d -> %d (%+d) XP +%d\n", e.CharacterID, e.OldMMR, e.NewMMR, e.Delta, e.XP)
	}

	board, err := svc.battles.GetLeaderboard(ctx, &battleorch.GetLeaderboardInput{Limit: 10})
	if err != nil {
		return nil, err
	}
	result.Standings = board.Standings

	return result, nil
}

// pickSkill chooses a usable equipped skill about half the time
func pickSkill(p *entities.BattlePlayer, c *entities.Character, src engine.Source) (uint8, bool) {
	if !src.Chance(50) {
		return 0, false
	}
	for slot := uint8(0); slot < entities.SkillSlotCount; slot++ {
		id, ok := c.SkillInSlot(slot)
		if ok && engine.CanUseSkill(p, c, id) {
			return slot, true
		}
	}
	return 0, false
}

func decideWildcard(
	ctx context.Context,
	battles battleorch.Service,
	b *entities.Battle,
	ownerOf map[string]common.Address,
	src engine.Source,
	acceptChance uint64,
	out io.Writer,
) (*entities.Battle, error) {
	fmt.Fprintf(out, "  wildcard: %s\n", b.Wildcard.Type)
	for _, p := range []*entities.BattlePlayer{&b.Player1, &b.Player2} {
		decided, err := battles.DecideWildcard(ctx, &battleorch.DecideWildcardInput{
			BattleID:    b.ID,
			CharacterID: p.CharacterID,
			Accept:      src.Chance(acceptChance),
			Caller:      ownerOf[p.CharacterID],
		})
		if err != nil {
			return nil, err
		}
		if decided.Resolution.Resolved {
			for _, line := range decided.Resolution.Events {
				fmt.Fprintf(out, "  %s\n", line)
			}
			return decided.Battle, nil
		}
	}
	return nil, errors.Internalf("wildcard on %s did not resolve", b.ID)
}
