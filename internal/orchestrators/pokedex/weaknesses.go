package pokedex

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokedex-api/internal/engine/typechart"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

// weaknesses combines the damage relations of every type the entry carries.
// A failed lookup for any type fails the whole computation.
func (o *orchestrator) weaknesses(ctx context.Context, types []pokemon.TypeName) (*pokemon.WeaknessGroup, error) {
	rels := make([]pokemon.DamageRelations, len(types))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range types {
		g.Go(func() error {
			rel, err := o.relationsFor(gctx, t)
			if err != nil {
				return err
			}
			rels[i] = rel
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to compute weaknesses")
	}

	mult := typechart.Neutral()
	for _, rel := range rels {
		mult.Apply(rel)
	}

	group := typechart.Partition(mult)
	return &group, nil
}

// relationsFor returns a type's relations, fetched at most once per process.
// Failed fetches are not remembered.
func (o *orchestrator) relationsFor(ctx context.Context, t pokemon.TypeName) (pokemon.DamageRelations, error) {
	if o.static {
		return typechart.Relations(t), nil
	}

	if v, ok := o.relations.Load(t); ok {
		return v.(pokemon.DamageRelations), nil
	}

	v, err, _ := o.relationGroup.Do(string(t), func() (any, error) {
		if v, ok := o.relations.Load(t); ok {
			return v, nil
		}

		rel, err := o.client.GetTypeRelations(context.WithoutCancel(ctx), t)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch relations for %s", t)
		}

		o.relations.Store(t, *rel)
		return *rel, nil
	})
	if err != nil {
		return pokemon.DamageRelations{}, err
	}
	return v.(pokemon.DamageRelations), nil
}
