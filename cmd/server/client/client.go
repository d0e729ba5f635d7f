// Package client provides commands that call a running battle server
package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1alpha1 "github.com/uzochukwuV/massacombat/internal/api/v1alpha1"
	"github.com/uzochukwuV/massacombat/internal/entities"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	callerHex  string

	// dialOptions apply to every connection the client commands open
	dialOptions = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the battle API",
	Long:  `Client commands make real gRPC requests against a running battle server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&callerHex, "caller", "", "Caller address (0x...)")

	// Character commands
	ClientCmd.AddCommand(mintCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(equipItemCmd)

	// Battle commands
	ClientCmd.AddCommand(createBattleCmd)
	ClientCmd.AddCommand(executeTurnCmd)
	ClientCmd.AddCommand(decideWildcardCmd)
	ClientCmd.AddCommand(timeoutWildcardCmd)
	ClientCmd.AddCommand(finalizeCmd)
	ClientCmd.AddCommand(getBattleCmd)
	ClientCmd.AddCommand(eventsCmd)
	ClientCmd.AddCommand(leaderboardCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr, dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createBattleClient creates a battle service client
func createBattleClient() (apiv1alpha1.BattleServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return apiv1alpha1.NewBattleServiceClient(conn), cleanup, nil
}

// createCharacterClient creates a character service client
func createCharacterClient() (apiv1alpha1.CharacterServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return apiv1alpha1.NewCharacterServiceClient(conn), cleanup, nil
}

// caller parses the --caller flag
func caller() (common.Address, error) {
	if !common.IsHexAddress(callerHex) {
		return common.Address{}, fmt.Errorf("--caller must be a hex address, got %q", callerHex)
	}
	return common.HexToAddress(callerHex), nil
}

func parseStance(name string) (entities.Stance, error) {
	for s := entities.StanceNeutral; s <= entities.StanceCounter; s++ {
		if s.String() == strings.ToLower(name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown stance %q", name)
}

func printBattle(w io.Writer, b *entities.Battle) {
	fmt.Fprintf(w, "Battle %s\n", b.ID)
	fmt.Fprintf(w, "  State: %s  Turn: %d  Next: player %d\n", b.State, b.TurnNumber, b.CurrentTurn)
	for side := uint8(1); side <= 2; side++ {
		p := b.Player(side)
		fmt.Fprintf(w, "  P%d %-20s HP %4d/%-4d Energy %3d Combo %d Stance %s\n",
			side, p.CharacterID, p.CurrentHP, p.MaxHP, p.Energy, p.ComboCount, p.Stance)
	}
	if b.Wildcard.Active {
		fmt.Fprintf(w, "  Wildcard: %s (deadline %s)\n",
			b.Wildcard.Type, time.Unix(b.Wildcard.Deadline, 0).Format(time.RFC3339))
	}
	if b.State == entities.BattleStateCompleted {
		winner := b.WinnerID
		if winner == "" {
			winner = "tie"
		}
		fmt.Fprintf(w, "  Winner: %s  Finalized: %t\n", winner, b.Finalized)
	}
}

func printCharacter(w io.Writer, c *entities.Character) {
	fmt.Fprintf(w, "Character %s (%s)\n", c.ID, c.Name)
	fmt.Fprintf(w, "  Owner: %s\n", c.Owner.Hex())
	fmt.Fprintf(w, "  Class: %s  Level: %d  XP: %d  MMR: %d\n", c.Class, c.Level, c.XP, c.MMR)
	fmt.Fprintf(w, "  HP: %d/%d  Damage: %d-%d  Crit: %d%%  Dodge: %d%%\n",
		c.HP, c.MaxHP, c.DamageMin, c.DamageMax, c.CritChance, c.DodgeChance)
	fmt.Fprintf(w, "  Skills: %v  Learned: %v\n", c.SkillSlots, c.LearnedSkills.IDs())
	fmt.Fprintf(w, "  Record: %dW %dL (streak %d)\n", c.TotalWins, c.TotalLosses, c.WinStreak)
}
