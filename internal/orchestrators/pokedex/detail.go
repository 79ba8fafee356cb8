package pokedex

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokedex-api/internal/clients/external"
	"github.com/KirkDiggler/pokedex-api/internal/engine/evolution"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

func (o *orchestrator) GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	idOrName := strings.ToLower(strings.TrimSpace(input.IDOrName))
	if idOrName == "" {
		return nil, errors.InvalidArgument("pokemon id or name is required")
	}

	raw, err := o.client.GetPokemon(ctx, idOrName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %s", idOrName)
	}

	detail := external.ToPokemonDetail(raw)

	var (
		weaknesses *pokemon.WeaknessGroup
		flavor     string
		stages     []pokemon.EvolutionStage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := o.weaknesses(gctx, detail.Types)
		if err != nil {
			return err
		}
		weaknesses = w
		return nil
	})
	g.Go(func() error {
		flavor, stages = o.speciesEnrichment(gctx, detail.ID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail.Weaknesses = weaknesses
	detail.FlavorText = flavor
	detail.Evolutions = stages

	return &GetPokemonOutput{Pokemon: detail}, nil
}

// speciesEnrichment loads flavor text and evolutions. Both are optional, so
// failures are logged and leave the fields empty.
func (o *orchestrator) speciesEnrichment(ctx context.Context, id int) (string, []pokemon.EvolutionStage) {
	species, err := o.client.GetSpecies(ctx, id)
	if err != nil {
		o.logger.Warn("species enrichment unavailable", "pokemon_id", id, "error", err)
		return "", nil
	}

	flavor := external.EnglishFlavorText(species)

	chainURL := external.EvolutionChainURL(species)
	if chainURL == "" {
		return flavor, []pokemon.EvolutionStage{}
	}

	chain, err := o.client.GetEvolutionChain(ctx, chainURL)
	if err != nil {
		o.logger.Warn("evolution chain unavailable", "pokemon_id", id, "url", chainURL, "error", err)
		return flavor, nil
	}

	return flavor, evolution.Resolve(external.ToEvolutionNode(chain), o.maxID)
}
