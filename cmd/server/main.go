// Package main is the entry point for the battle server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uzochukwuV/massacombat/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "massacombat",
	Short: "Turn-based PvP battle server",
	Long:  `massacombat resolves turn-based battles between player-owned characters over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (env BATTLE_* overrides it)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(checkStoreCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
