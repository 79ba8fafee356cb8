package external_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex-api/internal/clients/external"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/repositories/apicache"
	apicachemock "github.com/KirkDiggler/pokedex-api/internal/repositories/apicache/mock"
	"github.com/KirkDiggler/pokedex-api/internal/testutils"
)

type ClientTestSuite struct {
	suite.Suite
	api    *testutils.FakePokeAPI
	cache  *apicache.InMemoryRepository
	client external.Client
	ctx    context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.api = testutils.NewFakePokeAPI(s.T())
	s.cache = apicache.NewInMemory(clock.New())
	s.ctx = context.Background()

	client, err := external.New(&external.Config{
		BaseURL: s.api.URL(),
		Cache:   s.cache,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TestConfigValidate() {
	cfg := &external.Config{}
	s.Require().NoError(cfg.Validate())
	s.Equal(external.DefaultBaseURL, cfg.BaseURL)
	s.Equal(10*time.Second, cfg.HTTPTimeout)
	s.Equal(time.Hour, cfg.CacheTTL)
	s.NotNil(cfg.Logger)

	bad := &external.Config{BaseURL: "not a url"}
	s.True(errors.IsInvalidArgument(bad.Validate()))

	var nilCfg *external.Config
	s.Error(nilCfg.Validate())
}

func (s *ClientTestSuite) TestListPokemonRefs() {
	refs, err := s.client.ListPokemonRefs(s.ctx, pokemon.Gen1MaxID, 0)
	s.Require().NoError(err)
	s.Len(refs, len(testutils.SampleCatalog()))
	s.Equal("bulbasaur", refs[0].Name)

	_, err = s.client.ListPokemonRefs(s.ctx, 0, 0)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestGetPokemon() {
	p, err := s.client.GetPokemon(s.ctx, "  Charizard ")
	s.Require().NoError(err)
	s.Equal(6, p.ID)

	item := external.ToPokemon(p)
	s.Equal([]pokemon.TypeName{pokemon.TypeFire, pokemon.TypeFlying}, item.Types)

	byID, err := s.client.GetPokemon(s.ctx, "6")
	s.Require().NoError(err)
	s.Equal("charizard", byID.Name)
}

func (s *ClientTestSuite) TestGetPokemonValidation() {
	_, err := s.client.GetPokemon(s.ctx, "   ")
	s.True(errors.IsInvalidArgument(err))
	s.Equal(0, s.api.TotalHits())
}

func (s *ClientTestSuite) TestNotFound() {
	_, err := s.client.GetPokemon(s.ctx, "missingno")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	target := s.api.URL() + "/pokemon/missingno"
	s.Equal("PokeAPI error 404 for "+target, errors.GetMessage(err))
	s.Equal(target, errors.GetMeta(err)["url"])
	s.Equal(http.StatusNotFound, errors.GetMeta(err)["status"])
}

func (s *ClientTestSuite) TestUpstreamFailureIsUnavailable() {
	s.api.FailPath("/type/fire", http.StatusInternalServerError)

	_, err := s.client.GetTypeRelations(s.ctx, pokemon.TypeFire)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Contains(errors.GetMessage(err), "PokeAPI error 500")
}

func (s *ClientTestSuite) TestDecodeFailureIsInternal() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	client, err := external.New(&external.Config{BaseURL: srv.URL})
	s.Require().NoError(err)

	_, err = client.GetSpecies(s.ctx, 1)
	s.True(errors.IsInternal(err))
}

func (s *ClientTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.client.GetPokemon(ctx, "pikachu")
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *ClientTestSuite) TestResponsesAreCached() {
	for i := 0; i < 3; i++ {
		_, err := s.client.GetTypeRelations(s.ctx, pokemon.TypeWater)
		s.Require().NoError(err)
	}

	s.Equal(1, s.api.Hits("/type/water"))

	_, err := s.cache.Purge(s.ctx, &apicache.PurgeInput{})
	s.Require().NoError(err)

	_, err = s.client.GetTypeRelations(s.ctx, pokemon.TypeWater)
	s.Require().NoError(err)
	s.Equal(2, s.api.Hits("/type/water"))
}

func (s *ClientTestSuite) TestErrorsAreNotCached() {
	s.api.FailPath("/pokemon/pikachu", http.StatusBadGateway)
	_, err := s.client.GetPokemon(s.ctx, "pikachu")
	s.Require().Error(err)

	_, err = s.client.GetPokemon(s.ctx, "pikachu")
	s.Require().Error(err)
	s.Equal(2, s.api.Hits("/pokemon/pikachu"))
}

func (s *ClientTestSuite) TestCacheFailureFallsThrough() {
	ctrl := gomock.NewController(s.T())
	cache := apicachemock.NewMockRepository(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.Internal("redis down"))
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil, errors.Internal("redis down"))

	client, err := external.New(&external.Config{BaseURL: s.api.URL(), Cache: cache})
	s.Require().NoError(err)

	p, err := client.GetPokemon(s.ctx, "eevee")
	s.Require().NoError(err)
	s.Equal(133, p.ID)
}

func (s *ClientTestSuite) TestCachedGarbageIsRefetched() {
	target := s.api.URL() + "/pokemon/eevee"
	_, err := s.cache.Set(s.ctx, &apicache.SetInput{URL: target, Body: []byte("garbage"), TTL: time.Hour})
	s.Require().NoError(err)

	p, err := s.client.GetPokemon(s.ctx, "eevee")
	s.Require().NoError(err)
	s.Equal(133, p.ID)
	s.Equal(1, s.api.Hits("/pokemon/eevee"))
}

func (s *ClientTestSuite) TestSpeciesAndEvolutionChain() {
	species, err := s.client.GetSpecies(s.ctx, 1)
	s.Require().NoError(err)

	s.Equal("A strange seed was planted on its back at birth.", external.EnglishFlavorText(species))

	chainURL := external.EvolutionChainURL(species)
	s.Equal("https://pokeapi.co/api/v2/evolution-chain/1/", chainURL)

	chain, err := s.client.GetEvolutionChain(s.ctx, chainURL)
	s.Require().NoError(err)
	s.Equal("bulbasaur", chain.Chain.Species.Name)
	s.Equal(1, s.api.Hits("/evolution-chain/1/"))

	_, err = s.client.GetEvolutionChain(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestSpeciesWithoutEnglishText() {
	species, err := s.client.GetSpecies(s.ctx, 4)
	s.Require().NoError(err)
	s.Empty(external.EnglishFlavorText(species))
	s.Empty(external.EvolutionChainURL(species))

	_, err = s.client.GetSpecies(s.ctx, 0)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestGetTypeRelations() {
	rel, err := s.client.GetTypeRelations(s.ctx, pokemon.TypeFlying)
	s.Require().NoError(err)

	s.ElementsMatch([]pokemon.TypeName{pokemon.TypeElectric, pokemon.TypeIce, pokemon.TypeRock}, rel.DoubleDamageFrom)
	s.ElementsMatch([]pokemon.TypeName{pokemon.TypeGround}, rel.NoDamageFrom)

	_, err = s.client.GetTypeRelations(s.ctx, "shadow")
	s.True(errors.IsNotFound(err))
}
