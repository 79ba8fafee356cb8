// Package pokedex implements the catalog orchestrator: listing with search,
// sort and pagination, and enriched detail lookups
package pokedex

//go:generate mockgen -destination=mock/mock_service.go -package=pokedexmock github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/pokedex-api/internal/clients/external"
	"github.com/KirkDiggler/pokedex-api/internal/engine/search"
	"github.com/KirkDiggler/pokedex-api/internal/engine/typechart"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/workpool"
)

// Relation sources
const (
	RelationsLive   = "live"
	RelationsStatic = "static"
)

const (
	// DefaultCatalogTTL matches PokeAPI's hourly revalidation
	DefaultCatalogTTL = time.Hour
)

// Service defines the catalog operations exposed to the transports
type Service interface {
	// ListPokemon filters, sorts and pages the catalog
	ListPokemon(ctx context.Context, input *ListPokemonInput) (*ListPokemonOutput, error)

	// GetPokemon returns one entry enriched with flavor text, weaknesses and
	// evolutions
	GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error)

	// ParseQuery classifies a search string without touching the catalog
	ParseQuery(ctx context.Context, input *ParseQueryInput) (*ParseQueryOutput, error)

	// TypeWeaknesses computes the matchup table of a one or two type
	// combination from the static chart
	TypeWeaknesses(ctx context.Context, input *TypeWeaknessesInput) (*TypeWeaknessesOutput, error)
}

// Config holds the dependencies for the pokedex orchestrator
type Config struct {
	Client external.Client

	// Optional; zero values take defaults
	Clock           clock.Clock
	Logger          *slog.Logger
	MaxID           int
	CatalogTTL      time.Duration
	Concurrency     int
	RelationsSource string
	PerPage         int
}

// Validate ensures all required dependencies are provided and fills defaults
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}

	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.MaxID == 0 {
		c.MaxID = pokemon.Gen1MaxID
	}
	if c.CatalogTTL == 0 {
		c.CatalogTTL = DefaultCatalogTTL
	}
	if c.Concurrency == 0 {
		c.Concurrency = workpool.DefaultWorkers
	}
	if c.RelationsSource == "" {
		c.RelationsSource = RelationsLive
	}
	if c.PerPage == 0 {
		c.PerPage = search.DefaultPerPage
	}

	errors.ValidateRange("MaxID", c.MaxID, 1, 10000, vb)
	errors.ValidatePositiveDuration("CatalogTTL", c.CatalogTTL, vb)
	errors.ValidateRange("Concurrency", c.Concurrency, 1, 64, vb)
	errors.ValidateEnum("RelationsSource", c.RelationsSource, []string{RelationsLive, RelationsStatic}, vb)
	errors.ValidateRange("PerPage", c.PerPage, 1, 500, vb)

	return vb.Build()
}

type orchestrator struct {
	client      external.Client
	clock       clock.Clock
	logger      *slog.Logger
	maxID       int
	catalogTTL  time.Duration
	concurrency int
	static      bool
	perPage     int

	catalogMu      sync.RWMutex
	catalogItems   []pokemon.Pokemon
	catalogExpires time.Time
	catalogGroup   singleflight.Group

	relations     sync.Map
	relationGroup singleflight.Group
}

// NewOrchestrator creates a new pokedex orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:      cfg.Client,
		clock:       cfg.Clock,
		logger:      cfg.Logger,
		maxID:       cfg.MaxID,
		catalogTTL:  cfg.CatalogTTL,
		concurrency: cfg.Concurrency,
		static:      cfg.RelationsSource == RelationsStatic,
		perPage:     cfg.PerPage,
	}, nil
}

func (o *orchestrator) ListPokemon(ctx context.Context, input *ListPokemonInput) (*ListPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	items, err := o.catalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	perPage := input.PerPage
	if perPage <= 0 {
		perPage = o.perPage
	}

	filtered := search.Filter(items, input.Query)
	sorted := search.Sort(filtered, search.ParseSortKey(input.Sort), search.ParseSortDir(input.Dir))

	return &ListPokemonOutput{
		Page:  search.Paginate(sorted, input.Page, perPage),
		Query: search.Parse(input.Query),
	}, nil
}

func (o *orchestrator) ParseQuery(_ context.Context, input *ParseQueryInput) (*ParseQueryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &ParseQueryOutput{Query: search.Parse(input.Query)}, nil
}

func (o *orchestrator) TypeWeaknesses(_ context.Context, input *TypeWeaknessesInput) (*TypeWeaknessesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	types, err := normalizeTypes(input.Types)
	if err != nil {
		return nil, err
	}

	group := typechart.Weaknesses(types)
	return &TypeWeaknessesOutput{
		Types:      types,
		Weaknesses: &group,
	}, nil
}

// normalizeTypes accepts one or two distinct known types
func normalizeTypes(raw []string) ([]pokemon.TypeName, error) {
	if len(raw) == 0 || len(raw) > 2 {
		return nil, errors.InvalidArgumentf("expected one or two types, got %d", len(raw))
	}

	out := make([]pokemon.TypeName, 0, len(raw))
	for _, r := range raw {
		name := strings.ToLower(strings.TrimSpace(r))
		if !pokemon.IsTypeName(name) {
			return nil, errors.InvalidArgumentf("unknown type %q", r)
		}
		t := pokemon.TypeName(name)
		if len(out) == 1 && out[0] == t {
			return nil, errors.InvalidArgumentf("duplicate type %q", r)
		}
		out = append(out, t)
	}
	return out, nil
}
