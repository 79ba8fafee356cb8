// Package client provides commands that exercise a running server over gRPC
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/handlers/grpc/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// list flags
	listSort    string
	listDir     string
	listPage    int
	listPerPage int
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Query a running Pokédex server over gRPC",
}

var listCmd = &cobra.Command{
	Use:   "list [search words...]",
	Short: "List the catalog, optionally filtered by a search",
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.PokedexServiceClient.ListPokemon, map[string]any{
			"q":        strings.Join(args, " "),
			"sort":     listSort,
			"dir":      listDir,
			"page":     listPage,
			"per_page": listPerPage,
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id or name>",
	Short: "Show one Pokémon with weaknesses and evolutions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.PokedexServiceClient.GetPokemon, map[string]any{
			"id_or_name": args[0],
		})
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <search words...>",
	Short: "Ask the server how it reads a search string",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.PokedexServiceClient.ParseQuery, map[string]any{
			"q": strings.Join(args, " "),
		})
	},
}

var weaknessesCmd = &cobra.Command{
	Use:   "weaknesses <type> [type]",
	Short: "Show the matchups of a one or two type combination",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		types := make([]any, len(args))
		for i, a := range args {
			types[i] = a
		}
		return call(cmd, v1alpha1.PokedexServiceClient.GetTypeWeaknesses, map[string]any{
			"types": types,
		})
	},
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	listCmd.Flags().StringVar(&listSort, "sort", "number", "sort key (number|name)")
	listCmd.Flags().StringVar(&listDir, "dir", "asc", "sort direction (asc|desc)")
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number")
	listCmd.Flags().IntVar(&listPerPage, "per-page", 24, "results per page")

	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(parseCmd)
	ClientCmd.AddCommand(weaknessesCmd)
}

type rpc func(v1alpha1.PokedexServiceClient, context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

// call sends one request and prints the response as indented JSON
func call(cmd *cobra.Command, method rpc, fields map[string]any) error {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := method(v1alpha1.NewPokedexServiceClient(conn), ctx, req)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
