package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/uzochukwuV/massacombat/internal/api/v1alpha1"
	"github.com/uzochukwuV/massacombat/internal/entities"
)

var mintCmd = &cobra.Command{
	Use:   "mint [name] [class]",
	Short: "Mint a character for the caller",
	Long: `Mint a level one character. Classes: warrior, assassin, mage, tank, trickster.

  mint Aria assassin --caller 0xabc...`,
	Args: cobra.ExactArgs(2),
	RunE: mintCharacter,
}

var getCharacterCmd = &cobra.Command{
	Use:   "get-character [character-id]",
	Short: "Show a character",
	Args:  cobra.ExactArgs(1),
	RunE:  getCharacter,
}

var equipItemCmd = &cobra.Command{
	Use:   "equip [character-id] [slot] [equipment-id]",
	Short: "Equip an item; an empty equipment id clears the slot",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  equipItem,
}

func mintCharacter(cmd *cobra.Command, args []string) error {
	owner, err := caller()
	if err != nil {
		return err
	}
	class, ok := entities.ParseClass(args[1])
	if !ok {
		return fmt.Errorf("unknown class %q", args[1])
	}

	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.MintCharacter(ctx, &apiv1alpha1.MintCharacterRequest{
		Owner: owner,
		Name:  args[0],
		Class: class,
	})
	if err != nil {
		return fmt.Errorf("failed to mint character: %w", err)
	}

	printCharacter(cmd.OutOrStdout(), resp.Character)
	return nil
}

func getCharacter(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCharacter(ctx, &apiv1alpha1.GetCharacterRequest{CharacterID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	printCharacter(cmd.OutOrStdout(), resp.Character)
	return nil
}

func equipItem(cmd *cobra.Command, args []string) error {
	owner, err := caller()
	if err != nil {
		return err
	}

	var slot entities.EquipmentSlot
	switch args[1] {
	case "weapon":
		slot = entities.SlotWeapon
	case "armor":
		slot = entities.SlotArmor
	case "accessory":
		slot = entities.SlotAccessory
	default:
		return fmt.Errorf("unknown slot %q", args[1])
	}
	var equipmentID string
	if len(args) == 3 {
		equipmentID = args[2]
	}

	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.EquipItem(ctx, &apiv1alpha1.EquipItemRequest{
		CharacterID: args[0],
		Slot:        slot,
		EquipmentID: equipmentID,
		Caller:      owner,
	})
	if err != nil {
		return fmt.Errorf("failed to equip item: %w", err)
	}

	printCharacter(cmd.OutOrStdout(), resp.Character)
	return nil
}
