package pokedex_test

import (
	"context"
	"sync"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex-api/internal/clients/external"
	"github.com/KirkDiggler/pokedex-api/internal/engine/typechart"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/testutils/mocks"
)

const eeveeChainURL = "https://pokeapi.co/api/v2/evolution-chain/67/"

func speciesLink(name, id string, next ...external.ChainLink) external.ChainLink {
	return external.ChainLink{
		Species:   external.NamedResource{Name: name, URL: "https://pokeapi.co/api/v2/pokemon-species/" + id + "/"},
		EvolvesTo: next,
	}
}

func eeveeChain() *external.EvolutionChainData {
	return &external.EvolutionChainData{
		ID: 67,
		Chain: speciesLink("eevee", "133",
			speciesLink("vaporeon", "134"),
			speciesLink("jolteon", "135"),
			speciesLink("flareon", "136"),
			speciesLink("espeon", "196"),
			speciesLink("sylveon", "700"),
		),
	}
}

func eeveeSpecies() *external.SpeciesData {
	return &external.SpeciesData{
		ID: 133,
		FlavorTextEntries: []external.FlavorTextEntry{
			{FlavorText: "Its genetic code is\nirregular.", Language: external.NamedResource{Name: "en"}},
		},
		EvolutionChain: &external.ResourceReference{URL: eeveeChainURL},
	}
}

var eevee = pokemon.Pokemon{ID: 133, Name: "eevee", Types: []pokemon.TypeName{pokemon.TypeNormal}, Image: "eevee.png"}

func (s *OrchestratorTestSuite) TestGetPokemonEnriched() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "eevee").Return(mocks.RawPokemon(eevee), nil)
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), 133).Return(eeveeSpecies(), nil)
	s.mockClient.EXPECT().GetEvolutionChain(gomock.Any(), eeveeChainURL).Return(eeveeChain(), nil)
	mocks.ExpectTypeRelations(s.mockClient).Times(1)

	out, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{IDOrName: " Eevee "})
	s.Require().NoError(err)

	detail := out.Pokemon
	s.Equal(133, detail.ID)
	s.Equal("eevee.png", detail.Image)
	s.Equal("Its genetic code is irregular.", detail.FlavorText)

	expected := typechart.Weaknesses([]pokemon.TypeName{pokemon.TypeNormal})
	s.Equal(&expected, detail.Weaknesses)
	s.Equal([]pokemon.TypeName{pokemon.TypeGhost}, detail.Weaknesses.ImmuneTo)

	s.Equal([]pokemon.EvolutionStage{
		{Stage: 0, Options: []pokemon.EvolutionOption{{ID: 133, Name: "eevee"}}},
		{Stage: 1, Options: []pokemon.EvolutionOption{
			{ID: 134, Name: "vaporeon"},
			{ID: 135, Name: "jolteon"},
			{ID: 136, Name: "flareon"},
		}},
	}, detail.Evolutions)
}

func (s *OrchestratorTestSuite) TestGetPokemonValidation() {
	_, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{IDOrName: "  "})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.GetPokemon(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetPokemonNotFound() {
	s.mockClient.EXPECT().
		GetPokemon(gomock.Any(), "missingno").
		Return(nil, errors.NotFound("PokeAPI error 404 for /pokemon/missingno"))

	_, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{IDOrName: "missingno"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSpeciesFailureIsBestEffort() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "133").Return(mocks.RawPokemon(eevee), nil)
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), 133).Return(nil, errors.Unavailable("PokeAPI error 500"))
	mocks.ExpectTypeRelations(s.mockClient).Times(1)

	out, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{IDOrName: "133"})
	s.Require().NoError(err)
	s.Empty(out.Pokemon.FlavorText)
	s.Nil(out.Pokemon.Evolutions)
	s.NotNil(out.Pokemon.Weaknesses)
}

func (s *OrchestratorTestSuite) TestEvolutionFailureKeepsFlavorText() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "eevee").Return(mocks.RawPokemon(eevee), nil)
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), 133).Return(eeveeSpecies(), nil)
	s.mockClient.EXPECT().GetEvolutionChain(gomock.Any(), eeveeChainURL).Return(nil, errors.Unavailable("timeout"))
	mocks.ExpectTypeRelations(s.mockClient).Times(1)

	out, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{IDOrName: "eevee"})
	s.Require().NoError(err)
	s.Equal("Its genetic code is irregular.", out.Pokemon.FlavorText)
	s.Nil(out.Pokemon.Evolutions)
}

func (s *OrchestratorTestSuite) TestSpeciesWithoutChainHasNoEvolutions() {
	species := eeveeSpecies()
	species.EvolutionChain = nil

	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "eevee").Return(mocks.RawPokemon(eevee), nil)
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), 133).Return(species, nil)
	mocks.ExpectTypeRelations(s.mockClient).Times(1)

	out, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{IDOrName: "eevee"})
	s.Require().NoError(err)
	s.NotNil(out.Pokemon.Evolutions)
	s.Empty(out.Pokemon.Evolutions)
}

func (s *OrchestratorTestSuite) TestRelationFailureFailsRequest() {
	charizard := pokemon.Pokemon{ID: 6, Name: "charizard", Types: []pokemon.TypeName{pokemon.TypeFire, pokemon.TypeFlying}}

	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "charizard").Return(mocks.RawPokemon(charizard), nil)
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), 6).Return(nil, errors.NotFound("species")).AnyTimes()
	s.mockClient.EXPECT().
		GetTypeRelations(gomock.Any(), pokemon.TypeFire).
		DoAndReturn(func(context.Context, pokemon.TypeName) (*pokemon.DamageRelations, error) {
			rel := typechart.Relations(pokemon.TypeFire)
			return &rel, nil
		}).
		AnyTimes()
	s.mockClient.EXPECT().
		GetTypeRelations(gomock.Any(), pokemon.TypeFlying).
		Return(nil, errors.Unavailable("PokeAPI error 503 for /type/flying")).
		Times(2)

	_, err := s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{IDOrName: "charizard"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))

	// the failure is not remembered, so the next request fetches again
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "charizard").Return(mocks.RawPokemon(charizard), nil)
	_, err = s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{IDOrName: "charizard"})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestConcurrentRelationLookupsShareOneFetch() {
	charmander := pokemon.Pokemon{ID: 4, Name: "charmander", Types: []pokemon.TypeName{pokemon.TypeFire}}

	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "charmander").Return(mocks.RawPokemon(charmander), nil).AnyTimes()
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), 4).Return(nil, errors.NotFound("species")).AnyTimes()
	s.mockClient.EXPECT().
		GetTypeRelations(gomock.Any(), pokemon.TypeFire).
		DoAndReturn(func(context.Context, pokemon.TypeName) (*pokemon.DamageRelations, error) {
			time.Sleep(30 * time.Millisecond)
			rel := typechart.Relations(pokemon.TypeFire)
			return &rel, nil
		}).
		Times(1)

	var wg sync.WaitGroup
	results := make([]*pokedex.GetPokemonOutput, 12)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = s.orchestrator.GetPokemon(s.ctx, &pokedex.GetPokemonInput{IDOrName: "charmander"})
		}()
	}
	wg.Wait()

	expected := typechart.Weaknesses([]pokemon.TypeName{pokemon.TypeFire})
	for i := range results {
		s.Require().NoError(errs[i])
		s.Equal(&expected, results[i].Pokemon.Weaknesses)
	}
}

func (s *OrchestratorTestSuite) TestStaticRelationsNeverCallUpstream() {
	orch, err := pokedex.NewOrchestrator(&pokedex.Config{
		Client:          s.mockClient,
		RelationsSource: pokedex.RelationsStatic,
	})
	s.Require().NoError(err)

	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "eevee").Return(mocks.RawPokemon(eevee), nil)
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), 133).Return(nil, errors.NotFound("species"))

	out, err := orch.GetPokemon(s.ctx, &pokedex.GetPokemonInput{IDOrName: "eevee"})
	s.Require().NoError(err)
	s.Equal([]pokemon.TypeName{pokemon.TypeGhost}, out.Pokemon.Weaknesses.ImmuneTo)
}
