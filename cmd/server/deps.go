package main

import (
	"log/slog"

	"github.com/KirkDiggler/pokedex-api/internal/clients/external"
	"github.com/KirkDiggler/pokedex-api/internal/config"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/redis"
	"github.com/KirkDiggler/pokedex-api/internal/repositories/apicache"
)

// newCache builds the configured response cache. The returned func releases
// any connection it opened.
func newCache(cfg *config.Config, clk clock.Clock) (apicache.Repository, func(), error) {
	if cfg.Cache.Backend != config.CacheBackendRedis {
		return apicache.NewInMemory(clk), func() {}, nil
	}

	rdb, err := redis.NewClient(cfg.Cache.Redis.Endpoint, &redis.Options{
		PoolSize: cfg.Cache.Redis.PoolSize,
		UseTLS:   cfg.Cache.Redis.UseTLS,
	})
	if err != nil {
		return nil, nil, err
	}

	repo, err := apicache.NewRedis(&apicache.RedisConfig{Client: rdb})
	if err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}

	return repo, func() { _ = rdb.Close() }, nil
}

// newService wires the PokeAPI client and the orchestrator
func newService(cfg *config.Config, cache apicache.Repository, clk clock.Clock, logger *slog.Logger) (pokedex.Service, error) {
	pokeClient, err := external.New(&external.Config{
		BaseURL:     cfg.PokeAPI.BaseURL,
		HTTPTimeout: cfg.PokeAPI.Timeout,
		Cache:       cache,
		CacheTTL:    cfg.PokeAPI.CacheTTL,
		Logger:      logger.With("component", "pokeapi"),
	})
	if err != nil {
		return nil, err
	}

	return pokedex.NewOrchestrator(&pokedex.Config{
		Client:          pokeClient,
		Clock:           clk,
		Logger:          logger.With("component", "pokedex"),
		MaxID:           cfg.Catalog.MaxID,
		CatalogTTL:      cfg.Catalog.TTL,
		Concurrency:     cfg.PokeAPI.Concurrency,
		RelationsSource: cfg.PokeAPI.RelationsSource,
		PerPage:         cfg.Search.PerPage,
	})
}
