// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex-api/internal/clients/external"
	externalmock "github.com/KirkDiggler/pokedex-api/internal/clients/external/mock"
	"github.com/KirkDiggler/pokedex-api/internal/engine/typechart"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

// RawPokemon builds the upstream record for a catalog entry
func RawPokemon(p pokemon.Pokemon) *external.PokemonData {
	image := p.Image
	slots := make([]external.TypeSlot, len(p.Types))
	for i, t := range p.Types {
		slots[i] = external.TypeSlot{Slot: i + 1, Type: external.NamedResource{Name: string(t)}}
	}
	return &external.PokemonData{
		ID:      p.ID,
		Name:    p.Name,
		Types:   slots,
		Sprites: external.Sprites{Other: external.OtherSprites{OfficialArtwork: external.SpriteSet{FrontDefault: &image}}},
		Stats: []external.StatSlot{
			{BaseStat: 35, Stat: external.NamedResource{Name: pokemon.StatHP}},
		},
		Abilities: []external.AbilitySlot{{Ability: external.NamedResource{Name: "static"}}},
		Height:    4,
		Weight:    60,
	}
}

// ExpectCatalog serves list references and every entry of catalog, once
func ExpectCatalog(mockClient *externalmock.MockClient, catalog []pokemon.Pokemon, maxID int) {
	refs := make([]external.NamedResource, len(catalog))
	byName := make(map[string]pokemon.Pokemon, len(catalog))
	for i, p := range catalog {
		refs[i] = external.NamedResource{Name: p.Name}
		byName[p.Name] = p
	}

	mockClient.EXPECT().
		ListPokemonRefs(gomock.Any(), maxID, 0).
		Return(refs, nil)

	mockClient.EXPECT().
		GetPokemon(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (*external.PokemonData, error) {
			p, ok := byName[name]
			if !ok {
				return nil, errors.NotFoundf("pokemon %s not found", name)
			}
			return RawPokemon(p), nil
		}).
		Times(len(catalog))
}

// ExpectTypeRelations answers relation lookups from the static chart
func ExpectTypeRelations(mockClient *externalmock.MockClient) *gomock.Call {
	return mockClient.EXPECT().
		GetTypeRelations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t pokemon.TypeName) (*pokemon.DamageRelations, error) {
			rel := typechart.Relations(t)
			return &rel, nil
		})
}
