package v1_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex-api/internal/engine/search"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	v1 "github.com/KirkDiggler/pokedex-api/internal/handlers/http/v1"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
	pokedexmock "github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex/mock"
)

type liveFrame struct {
	Seq     int64 `json:"seq"`
	Results *struct {
		Items []pokemon.Pokemon `json:"items"`
		Total int               `json:"total"`
		Query search.Query      `json:"query"`
	} `json:"results"`
	Error *struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	} `json:"error"`
}

type LiveSearchTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *pokedexmock.MockService
	server      *httptest.Server
}

func TestLiveSearchSuite(t *testing.T) {
	suite.Run(t, new(LiveSearchTestSuite))
}

func (s *LiveSearchTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = pokedexmock.NewMockService(s.ctrl)

	srv, err := v1.NewServer(&v1.Config{
		Service:  s.mockService,
		Debounce: 40 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.server = httptest.NewServer(srv.Handler())
}

func (s *LiveSearchTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *LiveSearchTestSuite) dial() *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/api/search/live"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	s.NotEmpty(resp.Header.Get(v1.RequestIDHeader))
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

func (s *LiveSearchTestSuite) readFrame(conn *websocket.Conn) liveFrame {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var frame liveFrame
	s.Require().NoError(conn.ReadJSON(&frame))
	return frame
}

func listOutput(q string, items ...pokemon.Pokemon) *pokedex.ListPokemonOutput {
	return &pokedex.ListPokemonOutput{
		Page:  search.Paginate(items, 1, 24),
		Query: search.Parse(q),
	}
}

func (s *LiveSearchTestSuite) TestBurstOfKeystrokesRunsOnlyTheLast() {
	var calls atomic.Int32
	s.mockService.EXPECT().
		ListPokemon(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *pokedex.ListPokemonInput) (*pokedex.ListPokemonOutput, error) {
			calls.Add(1)
			return listOutput(input.Query, pokemon.Pokemon{ID: 25, Name: "pikachu"}), nil
		}).
		Times(1)

	conn := s.dial()
	for _, q := range []string{"p", "pi", "pik", "pika"} {
		s.Require().NoError(conn.WriteJSON(map[string]any{"q": q}))
	}

	frame := s.readFrame(conn)
	s.Equal(int64(4), frame.Seq)
	s.Require().NotNil(frame.Results)
	s.Equal(search.Query{Kind: search.KindIDOrName, Value: "pika"}, frame.Results.Query)
	s.Equal(1, frame.Results.Total)
	s.Equal(int32(1), calls.Load())
}

func (s *LiveSearchTestSuite) TestPausedTypingRunsEachQuery() {
	s.mockService.EXPECT().
		ListPokemon(gomock.Any(), &pokedex.ListPokemonInput{Query: "fire", Sort: "name", PerPage: 5}).
		Return(listOutput("fire", pokemon.Pokemon{ID: 4, Name: "charmander"}), nil)
	s.mockService.EXPECT().
		ListPokemon(gomock.Any(), &pokedex.ListPokemonInput{Query: "water", Page: 2}).
		Return(listOutput("water"), nil)

	conn := s.dial()

	s.Require().NoError(conn.WriteJSON(map[string]any{"q": "fire", "sort": "name", "per_page": 5}))
	first := s.readFrame(conn)
	s.Equal(int64(1), first.Seq)
	s.Require().NotNil(first.Results)
	s.Len(first.Results.Items, 1)

	s.Require().NoError(conn.WriteJSON(map[string]any{"q": "water", "page": 2}))
	second := s.readFrame(conn)
	s.Equal(int64(2), second.Seq)
	s.Require().NotNil(second.Results)
	s.Empty(second.Results.Items)
}

func (s *LiveSearchTestSuite) TestErrorsAreReportedInBand() {
	s.mockService.EXPECT().
		ListPokemon(gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(errors.Unavailable("PokeAPI error 503"), "failed to load catalog"))

	conn := s.dial()
	s.Require().NoError(conn.WriteJSON(map[string]any{"q": "mew"}))

	frame := s.readFrame(conn)
	s.Nil(frame.Results)
	s.Require().NotNil(frame.Error)
	s.Equal("UNAVAILABLE", frame.Error.Code)
	s.Equal("failed to load catalog", frame.Error.Error)
}

func (s *LiveSearchTestSuite) TestPlainHTTPIsRejected() {
	resp, err := s.server.Client().Get(s.server.URL + "/api/search/live")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(400, resp.StatusCode)
}
