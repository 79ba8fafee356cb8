package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-api/internal/engine/search"
	"github.com/KirkDiggler/pokedex-api/internal/engine/typechart"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Offline search and matchup tools",
}

var queryParseCmd = &cobra.Command{
	Use:     "parse <search words...>",
	Short:   "Show how a search string is interpreted",
	Example: `  pokedex-api query parse weak to water`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := search.Parse(strings.Join(args, " "))
		return printJSON(cmd, map[string]any{
			"query":   q,
			"summary": q.String(),
		})
	},
}

var queryWeaknessesCmd = &cobra.Command{
	Use:     "weaknesses <type>[+<type>]",
	Short:   "Show the static type chart matchups of a type combination",
	Example: `  pokedex-api query weaknesses water+flying`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var types []pokemon.TypeName
		for _, raw := range strings.Split(strings.ToLower(args[0]), "+") {
			if !pokemon.IsTypeName(raw) {
				return fmt.Errorf("unknown type %q", raw)
			}
			types = append(types, pokemon.TypeName(raw))
		}
		if len(types) > 2 {
			return fmt.Errorf("expected one or two types, got %d", len(types))
		}

		return printJSON(cmd, typechart.Weaknesses(types))
	},
}

func init() {
	queryCmd.AddCommand(queryParseCmd)
	queryCmd.AddCommand(queryWeaknessesCmd)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
