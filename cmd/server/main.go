// Package main is the entry point for the arcanum gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arcanum-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "arcanum-api",
	Short: "Arcanum character sheet gRPC server",
	Long:  `Arcanum serves bilingual D&D 5e character sheets: creation, live play state and the ruleset catalog.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file read before the environment")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
