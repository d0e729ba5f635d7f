package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/uzochukwuV/massacombat/internal/api/v1alpha1"
	"github.com/uzochukwuV/massacombat/internal/engine"
)

var (
	battleID  string
	skillSlot int
	accept    bool
	limit     uint32
	offset    uint32
)

var createBattleCmd = &cobra.Command{
	Use:   "create-battle [character1-id] [character2-id]",
	Short: "Start a battle; the caller must own the first character",
	Args:  cobra.ExactArgs(2),
	RunE:  createBattle,
}

var executeTurnCmd = &cobra.Command{
	Use:   "execute-turn [battle-id] [character-id] [stance]",
	Short: "Play a turn with a stance and optionally a skill slot",
	Long: `Play the current turn. Stances: neutral, aggressive, defensive, counter.

  execute-turn battle-1 char-1 aggressive --skill 0`,
	Args: cobra.ExactArgs(3),
	RunE: executeTurn,
}

var decideWildcardCmd = &cobra.Command{
	Use:   "decide-wildcard [battle-id] [character-id]",
	Short: "Accept or reject the pending wildcard",
	Args:  cobra.ExactArgs(2),
	RunE:  decideWildcard,
}

var timeoutWildcardCmd = &cobra.Command{
	Use:   "timeout-wildcard [battle-id]",
	Short: "Close a wildcard whose deadline has passed",
	Args:  cobra.ExactArgs(1),
	RunE:  timeoutWildcard,
}

var finalizeCmd = &cobra.Command{
	Use:   "finalize [battle-id]",
	Short: "Settle ratings and experience for a completed battle",
	Args:  cobra.ExactArgs(1),
	RunE:  finalizeBattle,
}

var getBattleCmd = &cobra.Command{
	Use:   "get-battle [battle-id]",
	Short: "Show a battle",
	Args:  cobra.ExactArgs(1),
	RunE:  getBattle,
}

var eventsCmd = &cobra.Command{
	Use:   "events [battle-id]",
	Short: "Print a battle's event log",
	Args:  cobra.ExactArgs(1),
	RunE:  listEvents,
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the top rated characters",
	Args:  cobra.NoArgs,
	RunE:  getLeaderboard,
}

func init() {
	createBattleCmd.Flags().StringVar(&battleID, "id", "", "Battle ID (generated when empty)")
	executeTurnCmd.Flags().IntVar(&skillSlot, "skill", -1, "Skill slot to use (0-2), -1 for a plain attack")
	decideWildcardCmd.Flags().BoolVar(&accept, "accept", false, "Accept the wildcard")
	eventsCmd.Flags().Uint32Var(&offset, "offset", 0, "Skip the first entries")
	leaderboardCmd.Flags().Uint32Var(&limit, "limit", 10, "Number of standings")
}

func createBattle(cmd *cobra.Command, args []string) error {
	from, err := caller()
	if err != nil {
		return err
	}

	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateBattle(ctx, &apiv1alpha1.CreateBattleRequest{
		BattleID:     battleID,
		Character1ID: args[0],
		Character2ID: args[1],
		Caller:       from,
	})
	if err != nil {
		return fmt.Errorf("failed to create battle: %w", err)
	}

	printBattle(cmd.OutOrStdout(), resp.Battle)
	return nil
}

func executeTurn(cmd *cobra.Command, args []string) error {
	from, err := caller()
	if err != nil {
		return err
	}
	stance, err := parseStance(args[2])
	if err != nil {
		return err
	}
	if skillSlot > 2 {
		return fmt.Errorf("--skill must be between -1 and 2")
	}

	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &apiv1alpha1.ExecuteTurnRequest{
		BattleID:    args[0],
		CharacterID: args[1],
		Stance:      stance,
		Caller:      from,
	}
	if skillSlot >= 0 {
		req.UseSkill = true
		req.SkillSlot = uint8(skillSlot)
	}

	resp, err := client.ExecuteTurn(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to execute turn: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Turn %d (%s):\n", resp.Turn.TurnNumber, engine.TurnOutcome(resp.Turn.Outcome))
	for _, line := range resp.Turn.Events {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", line)
	}
	printBattle(cmd.OutOrStdout(), resp.Battle)
	return nil
}

func decideWildcard(cmd *cobra.Command, args []string) error {
	from, err := caller()
	if err != nil {
		return err
	}

	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.DecideWildcard(ctx, &apiv1alpha1.DecideWildcardRequest{
		BattleID:    args[0],
		CharacterID: args[1],
		Accept:      accept,
		Caller:      from,
	})
	if err != nil {
		return fmt.Errorf("failed to decide wildcard: %w", err)
	}

	printResolution(cmd.OutOrStdout(), resp.Resolution)
	printBattle(cmd.OutOrStdout(), resp.Battle)
	return nil
}

func timeoutWildcard(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.TimeoutWildcard(ctx, &apiv1alpha1.TimeoutWildcardRequest{BattleID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to time out wildcard: %w", err)
	}

	printResolution(cmd.OutOrStdout(), resp.Resolution)
	printBattle(cmd.OutOrStdout(), resp.Battle)
	return nil
}

func finalizeBattle(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.FinalizeBattle(ctx, &apiv1alpha1.FinalizeBattleRequest{BattleID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to finalize battle: %w", err)
	}

	s := resp.Settlement
	fmt.Fprintf(cmd.OutOrStdout(), "Settlement for %s (winner: %s)\n", s.BattleID, orTie(s.WinnerID))
	for _, e := range []apiv1alpha1.SettlementEntry{s.Player1, s.Player2} {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-20s MMR %d -> %d (%+d)  XP +%d\n", e.CharacterID, e.OldMMR, e.NewMMR, e.Delta, e.XP)
	}
	return nil
}

func getBattle(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetBattle(ctx, &apiv1alpha1.GetBattleRequest{BattleID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get battle: %w", err)
	}

	printBattle(cmd.OutOrStdout(), resp.Battle)
	return nil
}

func listEvents(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListEvents(ctx, &apiv1alpha1.ListEventsRequest{BattleID: args[0], Offset: offset})
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	for _, e := range resp.Entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  turn %-3d %s\n", time.Unix(e.Timestamp, 0).Format(time.RFC3339), e.Turn, e.Message)
	}
	return nil
}

func getLeaderboard(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetLeaderboard(ctx, &apiv1alpha1.GetLeaderboardRequest{Limit: limit})
	if err != nil {
		return fmt.Errorf("failed to get leaderboard: %w", err)
	}

	for i, s := range resp.Standings {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d. %-20s MMR %-5d %dW %dL %dT streak %d\n",
			i+1, s.CharacterID, s.MMR, s.Wins, s.Losses, s.Ties, s.WinStreak)
	}
	return nil
}

func printResolution(w io.Writer, res apiv1alpha1.WildcardResolution) {
	if !res.Resolved {
		fmt.Fprintf(w, "Wildcard %s waiting on the other player\n", res.Type)
		return
	}
	fmt.Fprintf(w, "Wildcard %s resolved, applied: %s\n", res.Type, strconv.FormatBool(res.Applied))
	for _, line := range res.Events {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

func orTie(winnerID string) string {
	if winnerID == "" {
		return "tie"
	}
	return winnerID
}
