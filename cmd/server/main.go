// Package main is the entry point for the pokedex API server and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-api/cmd/server/client"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "pokedex-api",
	Short: "Pokédex API server",
	Long: `Pokédex API serves a searchable catalog of the original 151 Pokémon,
backed by PokeAPI, over a JSON HTTP API, a websocket live search and gRPC.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./pokedex.yaml when present)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
