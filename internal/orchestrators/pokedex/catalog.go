package pokedex

import (
	"context"

	"github.com/KirkDiggler/pokedex-api/internal/clients/external"
	"github.com/KirkDiggler/pokedex-api/internal/engine/search"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/workpool"
)

const catalogKey = "catalog"

// catalog returns the memoized list, reloading it once the TTL has passed.
// Concurrent callers during a reload share one enumeration. The returned
// slice is shared and must not be modified.
func (o *orchestrator) catalog(ctx context.Context) ([]pokemon.Pokemon, error) {
	if items, ok := o.cachedCatalog(); ok {
		return items, nil
	}

	v, err, shared := o.catalogGroup.Do(catalogKey, func() (any, error) {
		if items, ok := o.cachedCatalog(); ok {
			return items, nil
		}

		// a cancelled first caller must not fail the callers sharing this load
		items, err := o.loadCatalog(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		o.catalogMu.Lock()
		o.catalogItems = items
		o.catalogExpires = o.clock.Now().Add(o.catalogTTL)
		o.catalogMu.Unlock()

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		o.logger.Debug("joined in-flight catalog load")
	}
	return v.([]pokemon.Pokemon), nil
}

func (o *orchestrator) cachedCatalog() ([]pokemon.Pokemon, bool) {
	o.catalogMu.RLock()
	defer o.catalogMu.RUnlock()

	if o.catalogItems == nil || !o.clock.Now().Before(o.catalogExpires) {
		return nil, false
	}
	return o.catalogItems, true
}

// loadCatalog enumerates the dex range and fetches every entry through the
// bounded worker pool. Any single failure fails the whole load.
func (o *orchestrator) loadCatalog(ctx context.Context) ([]pokemon.Pokemon, error) {
	start := o.clock.Now()

	refs, err := o.client.ListPokemonRefs(ctx, o.maxID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pokemon")
	}

	items, err := workpool.Map(ctx, refs, o.concurrency, func(ctx context.Context, ref external.NamedResource) (pokemon.Pokemon, error) {
		raw, err := o.client.GetPokemon(ctx, ref.Name)
		if err != nil {
			return pokemon.Pokemon{}, errors.Wrapf(err, "failed to fetch %s", ref.Name)
		}
		return external.ToPokemon(raw), nil
	})
	if err != nil {
		o.logger.Error("catalog load failed", "error", err)
		return nil, err
	}

	sorted := search.Sort(items, search.SortByNumber, search.SortAsc)

	o.logger.Info("catalog loaded",
		"count", len(sorted),
		"workers", o.concurrency,
		"duration", o.clock.Now().Sub(start))

	return sorted, nil
}
