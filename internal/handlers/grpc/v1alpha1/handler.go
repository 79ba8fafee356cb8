// Package v1alpha1 handles the grpc service interface
package v1alpha1

import (
	"context"
	"encoding/json"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Service pokedex.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Service == nil {
		return errors.InvalidArgument("pokedex service is required")
	}
	return nil
}

// Handler implements the pokedex gRPC service
type Handler struct {
	service pokedex.Service
}

var _ PokedexServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.Service}, nil
}

// ListPokemon returns one page of the catalog.
// Request fields: q, sort, dir, page, per_page.
func (h *Handler) ListPokemon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.service.ListPokemon(ctx, &pokedex.ListPokemonInput{
		Query:   stringField(req, "q"),
		Sort:    stringField(req, "sort"),
		Dir:     stringField(req, "dir"),
		Page:    intField(req, "page"),
		PerPage: intField(req, "per_page"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	page := output.Page
	return toStruct(map[string]any{
		"items":       page.Items,
		"total":       page.Total,
		"total_pages": page.TotalPages,
		"page":        page.Page,
		"per_page":    page.PerPage,
		"query":       output.Query,
	})
}

// GetPokemon returns one enriched entry. Request field: id_or_name.
func (h *Handler) GetPokemon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	idOrName := stringField(req, "id_or_name")
	if strings.TrimSpace(idOrName) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id_or_name is required"))
	}

	output, err := h.service.GetPokemon(ctx, &pokedex.GetPokemonInput{IDOrName: idOrName})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(output.Pokemon)
}

// ParseQuery classifies a search string. Request field: q.
func (h *Handler) ParseQuery(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.service.ParseQuery(ctx, &pokedex.ParseQueryInput{Query: stringField(req, "q")})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		"query":   output.Query,
		"summary": output.Query.String(),
	})
}

// GetTypeWeaknesses returns the matchup table of one or two types.
// Request field: types, a list of type names.
func (h *Handler) GetTypeWeaknesses(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var types []string
	for _, v := range req.GetFields()["types"].GetListValue().GetValues() {
		types = append(types, v.GetStringValue())
	}

	output, err := h.service.TypeWeaknesses(ctx, &pokedex.TypeWeaknessesInput{Types: types})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		"types":      output.Types,
		"weaknesses": output.Weaknesses,
	})
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func intField(req *structpb.Struct, name string) int {
	return int(req.GetFields()[name].GetNumberValue())
}

// toStruct renders a response through its JSON tags so gRPC and HTTP
// clients see the same field names
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response"))
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response"))
	}
	return out, nil
}
