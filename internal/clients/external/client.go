// Package external is the PokeAPI client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/pokedex-api/internal/clients/external Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/repositories/apicache"
)

// DefaultBaseURL is the public PokeAPI root. Absolute URLs PokeAPI hands back
// under this root are re-targeted at the configured base.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

const (
	maxBodyBytes  = 8 << 20
	maxErrorBytes = 512
)

// Client defines the read-only PokeAPI calls the catalog needs
type Client interface {
	// ListPokemonRefs returns the name/url references of a dex range
	ListPokemonRefs(ctx context.Context, limit, offset int) ([]NamedResource, error)

	// GetPokemon fetches one Pokémon by id or lowercase name
	GetPokemon(ctx context.Context, idOrName string) (*PokemonData, error)

	// GetSpecies fetches the species record holding flavor text and the
	// evolution chain reference
	GetSpecies(ctx context.Context, id int) (*SpeciesData, error)

	// GetTypeRelations fetches the incoming damage relations of one type
	GetTypeRelations(ctx context.Context, name pokemon.TypeName) (*pokemon.DamageRelations, error)

	// GetEvolutionChain fetches a chain by the URL found on a species
	GetEvolutionChain(ctx context.Context, chainURL string) (*EvolutionChainData, error)
}

// Config contains configuration options for the PokeAPI client.
type Config struct {
	// BaseURL of the API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 10 seconds)
	HTTPTimeout time.Duration
	// Cache stores raw responses (optional, no caching when nil)
	Cache apicache.Repository
	// CacheTTL for cached responses (optional, defaults to 1 hour)
	CacheTTL time.Duration
	// HTTPClient overrides the transport (optional)
	HTTPClient *http.Client
	// Logger (optional, defaults to slog.Default)
	Logger *slog.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 10 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = time.Hour
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateURL("base_url", cfg.BaseURL, vb)
	errors.ValidatePositiveDuration("http_timeout", cfg.HTTPTimeout, vb)
	errors.ValidatePositiveDuration("cache_ttl", cfg.CacheTTL, vb)
	return vb.Build()
}

type client struct {
	baseURL  string
	http     *http.Client
	cache    apicache.Repository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:  cfg.BaseURL,
		http:     httpClient,
		cache:    cfg.Cache,
		cacheTTL: cfg.CacheTTL,
		logger:   cfg.Logger,
	}, nil
}

func (c *client) ListPokemonRefs(ctx context.Context, limit, offset int) ([]NamedResource, error) {
	if limit <= 0 {
		return nil, errors.InvalidArgumentf("limit must be positive, got %d", limit)
	}

	var list ListData
	path := fmt.Sprintf("/pokemon?limit=%d&offset=%d", limit, offset)
	if err := c.fetchJSON(ctx, path, &list); err != nil {
		return nil, err
	}

	c.logger.Debug("listed pokemon references", "count", len(list.Results), "limit", limit, "offset", offset)
	return list.Results, nil
}

func (c *client) GetPokemon(ctx context.Context, idOrName string) (*PokemonData, error) {
	safe := strings.ToLower(strings.TrimSpace(idOrName))
	if safe == "" {
		return nil, errors.InvalidArgument("pokemon id or name is required")
	}

	var p PokemonData
	if err := c.fetchJSON(ctx, "/pokemon/"+url.PathEscape(safe), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *client) GetSpecies(ctx context.Context, id int) (*SpeciesData, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("species id must be positive, got %d", id)
	}

	var s SpeciesData
	if err := c.fetchJSON(ctx, "/pokemon-species/"+strconv.Itoa(id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *client) GetTypeRelations(ctx context.Context, name pokemon.TypeName) (*pokemon.DamageRelations, error) {
	key := strings.ToLower(strings.TrimSpace(string(name)))
	if key == "" {
		return nil, errors.InvalidArgument("type name is required")
	}

	var t TypeData
	if err := c.fetchJSON(ctx, "/type/"+url.PathEscape(key), &t); err != nil {
		return nil, err
	}

	rel := ToDamageRelations(&t)
	return &rel, nil
}

func (c *client) GetEvolutionChain(ctx context.Context, chainURL string) (*EvolutionChainData, error) {
	if chainURL == "" {
		return nil, errors.InvalidArgument("evolution chain url is required")
	}

	var chain EvolutionChainData
	if err := c.fetchJSON(ctx, chainURL, &chain); err != nil {
		return nil, err
	}
	return &chain, nil
}

// resolve turns a path or an absolute PokeAPI URL into a URL under baseURL
func (c *client) resolve(pathOrURL string) string {
	pathOrURL = strings.TrimPrefix(pathOrURL, DefaultBaseURL)
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL
	}
	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.baseURL + pathOrURL
}

// fetchJSON reads through the response cache. Cache failures are logged and
// never fail the request.
func (c *client) fetchJSON(ctx context.Context, pathOrURL string, out any) error {
	target := c.resolve(pathOrURL)

	if body, ok := c.cached(ctx, target); ok {
		if err := json.Unmarshal(body, out); err == nil {
			return nil
		}
		c.logger.Warn("discarding undecodable cached response", "url", target)
	}

	body, err := c.get(ctx, target)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, fmt.Sprintf("failed to decode PokeAPI response for %s", target)).
			WithMeta("url", target)
	}

	if c.cache != nil {
		if _, err := c.cache.Set(ctx, &apicache.SetInput{URL: target, Body: body, TTL: c.cacheTTL}); err != nil {
			c.logger.Warn("failed to cache PokeAPI response", "url", target, "error", err)
		}
	}

	return nil
}

func (c *client) cached(ctx context.Context, target string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	out, err := c.cache.Get(ctx, &apicache.GetInput{URL: target})
	if err != nil {
		if !errors.IsNotFound(err) {
			c.logger.Warn("response cache read failed", "url", target, "error", err)
		}
		return nil, false
	}
	return out.Body, true
}

func (c *client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to build PokeAPI request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrapf(ctxErr, "PokeAPI request cancelled for %s", target)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("PokeAPI request failed for %s", target)).
			WithMeta("url", target)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("PokeAPI request", "url", target, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))

		code := errors.CodeUnavailable
		if resp.StatusCode == http.StatusNotFound {
			code = errors.CodeNotFound
		}
		return nil, errors.Newf(code, "PokeAPI error %d for %s", resp.StatusCode, target).
			WithMeta("url", target).
			WithMeta("status", resp.StatusCode).
			WithMeta("body", strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to read PokeAPI response for %s", target)).
			WithMeta("url", target)
	}
	return body, nil
}
