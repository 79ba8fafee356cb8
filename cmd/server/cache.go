package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-api/internal/config"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/repositories/apicache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the PokeAPI response cache",
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove every cached PokeAPI response",
	Long: `Remove every cached PokeAPI response from the configured backend.
Only the redis backend outlives a server process, so purging the memory
backend is a no-op.`,
	RunE: runCachePurge,
}

func init() {
	cachePurgeCmd.Flags().String("redis", "", "redis endpoint (overrides config)")
	cachePurgeCmd.Flags().String("cache-backend", "", "response cache backend (memory|redis)")
	cacheCmd.AddCommand(cachePurgeCmd)
}

func runCachePurge(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Cache.Backend != config.CacheBackendRedis {
		fmt.Fprintln(cmd.OutOrStdout(), "cache backend is memory; nothing to purge")
		return nil
	}

	cache, closeCache, err := newCache(cfg, clock.New())
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer closeCache()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.PokeAPI.Timeout)
	defer cancel()

	out, err := cache.Purge(ctx, &apicache.PurgeInput{})
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached responses from %s\n", out.Removed, cfg.Cache.Redis.Endpoint)
	return nil
}
