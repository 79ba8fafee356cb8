package evolution_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-api/internal/engine/evolution"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

func species(id int, name string, evolvesTo ...*evolution.Node) *evolution.Node {
	return &evolution.Node{
		SpeciesName: name,
		SpeciesURL:  fmt.Sprintf("https://pokeapi.co/api/v2/pokemon-species/%d/", id),
		EvolvesTo:   evolvesTo,
	}
}

type ResolverTestSuite struct {
	suite.Suite
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) TestLinearChain() {
	chain := species(1, "bulbasaur",
		species(2, "ivysaur",
			species(3, "venusaur")))

	stages := evolution.Resolve(chain, pokemon.Gen1MaxID)

	expected := []pokemon.EvolutionStage{
		{Stage: 0, Options: []pokemon.EvolutionOption{{ID: 1, Name: "bulbasaur"}}},
		{Stage: 1, Options: []pokemon.EvolutionOption{{ID: 2, Name: "ivysaur"}}},
		{Stage: 2, Options: []pokemon.EvolutionOption{{ID: 3, Name: "venusaur"}}},
	}
	if diff := cmp.Diff(expected, stages); diff != "" {
		s.Failf("unexpected stages", "(-want +got):\n%s", diff)
	}
	s.True(pokemon.IsLinear(stages))
}

func (s *ResolverTestSuite) TestBranchingChainFiltersLaterGenerations() {
	// Eevee branches into gen 1 and later-generation evolutions
	chain := species(133, "eevee",
		species(134, "vaporeon"),
		species(135, "jolteon"),
		species(136, "flareon"),
		species(196, "espeon"),
		species(197, "umbreon"),
		species(700, "sylveon"),
	)

	stages := evolution.Resolve(chain, pokemon.Gen1MaxID)

	s.Require().Len(stages, 2)
	s.Equal(0, stages[0].Stage)
	s.Equal([]pokemon.EvolutionOption{{ID: 133, Name: "eevee"}}, stages[0].Options)
	s.Equal(1, stages[1].Stage)
	s.Equal([]pokemon.EvolutionOption{
		{ID: 134, Name: "vaporeon"},
		{ID: 135, Name: "jolteon"},
		{ID: 136, Name: "flareon"},
	}, stages[1].Options)
	s.False(pokemon.IsLinear(stages))
}

func (s *ResolverTestSuite) TestPrunedPreEvolutionReindexes() {
	// Pichu (172) precedes Pikachu; once filtered the base must become stage 0
	chain := species(172, "pichu",
		species(25, "pikachu",
			species(26, "raichu")))

	stages := evolution.Resolve(chain, pokemon.Gen1MaxID)

	s.Require().Len(stages, 2)
	s.Equal(0, stages[0].Stage)
	s.Equal(25, stages[0].Options[0].ID)
	s.Equal(1, stages[1].Stage)
	s.Equal(26, stages[1].Options[0].ID)
}

func (s *ResolverTestSuite) TestPrunedMiddleStageLeavesNoGap() {
	chain := species(1, "base",
		species(200, "middle",
			species(3, "final")))

	stages := evolution.Resolve(chain, 151)

	s.Require().Len(stages, 2)
	s.Equal(0, stages[0].Stage)
	s.Equal(1, stages[1].Stage)
	s.Equal("final", stages[1].Options[0].Name)
}

func (s *ResolverTestSuite) TestSameDepthAcrossBranchesSharesStage() {
	chain := species(43, "oddish",
		species(44, "gloom",
			species(45, "vileplume"),
			species(182, "bellossom")),
	)
	// A second branch at depth 1 whose child lands at depth 2
	chain.EvolvesTo = append(chain.EvolvesTo, species(10, "other", species(11, "other-final")))

	stages := evolution.Resolve(chain, pokemon.Gen1MaxID)

	s.Require().Len(stages, 3)
	s.Equal([]pokemon.EvolutionOption{{ID: 44, Name: "gloom"}, {ID: 10, Name: "other"}}, stages[1].Options)
	s.Equal([]pokemon.EvolutionOption{{ID: 45, Name: "vileplume"}, {ID: 11, Name: "other-final"}}, stages[2].Options)
}

func (s *ResolverTestSuite) TestDuplicateIDsMergeWithLastName() {
	chain := species(1, "first",
		species(2, "two-a"),
		species(2, "two-b"),
		species(3, "three"),
	)

	stages := evolution.Resolve(chain, pokemon.Gen1MaxID)

	s.Require().Len(stages, 2)
	s.Equal([]pokemon.EvolutionOption{
		{ID: 2, Name: "two-b"},
		{ID: 3, Name: "three"},
	}, stages[1].Options)
}

func (s *ResolverTestSuite) TestUnparsableIDsAreDropped() {
	chain := &evolution.Node{
		SpeciesName: "broken",
		SpeciesURL:  "https://pokeapi.co/api/v2/pokemon-species/not-a-number/",
		EvolvesTo:   []*evolution.Node{species(5, "charmeleon")},
	}

	stages := evolution.Resolve(chain, pokemon.Gen1MaxID)

	s.Require().Len(stages, 1)
	s.Equal(0, stages[0].Stage)
	s.Equal("charmeleon", stages[0].Options[0].Name)
}

func (s *ResolverTestSuite) TestEverythingDroppedYieldsEmpty() {
	testCases := []struct {
		name  string
		chain *evolution.Node
	}{
		{name: "nil root", chain: nil},
		{name: "all out of range", chain: species(387, "turtwig", species(388, "grotle"))},
		{name: "all unparsable", chain: &evolution.Node{SpeciesName: "x", SpeciesURL: ""}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			stages := evolution.Resolve(tc.chain, pokemon.Gen1MaxID)
			s.NotNil(stages)
			s.Empty(stages)
		})
	}
}

func (s *ResolverTestSuite) TestStagesAreAlwaysContiguous() {
	chain := species(300, "a",
		species(2, "b",
			species(400, "c",
				species(4, "d"),
				species(500, "e"))),
		species(600, "f",
			species(7, "g")))

	for _, maxID := range []int{1, 3, 5, 151, 1000} {
		stages := evolution.Resolve(chain, maxID)
		for i, st := range stages {
			s.Equal(i, st.Stage, "maxID %d", maxID)
			s.NotEmpty(st.Options)
		}
	}
}

func (s *ResolverTestSuite) TestSpeciesID() {
	testCases := []struct {
		url    string
		id     int
		wantOK bool
	}{
		{url: "https://pokeapi.co/api/v2/pokemon-species/25/", id: 25, wantOK: true},
		{url: "https://pokeapi.co/api/v2/pokemon-species/151", id: 151, wantOK: true},
		{url: "https://pokeapi.co/api/v2/pokemon-species/mew/", wantOK: false},
		{url: "", wantOK: false},
	}

	for _, tc := range testCases {
		s.Run(tc.url, func() {
			id, ok := evolution.SpeciesID(tc.url)
			s.Equal(tc.wantOK, ok)
			s.Equal(tc.id, id)
		})
	}
}
