package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/KirkDiggler/pokedex-api/internal/engine/search"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
)

// listResponse is one page of the catalog plus how the query was read
type listResponse struct {
	search.Page[pokemon.Pokemon]
	Query search.Query `json:"query"`
}

type parseResponse struct {
	Query   search.Query `json:"query"`
	Summary string       `json:"summary"`
}

type weaknessesResponse struct {
	Types      []pokemon.TypeName     `json:"types"`
	Weaknesses *pokemon.WeaknessGroup `json:"weaknesses"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListPokemon(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	out, err := s.service.ListPokemon(r.Context(), &pokedex.ListPokemonInput{
		Query:   q.Get("q"),
		Sort:    q.Get("sort"),
		Dir:     q.Get("dir"),
		Page:    intParam(q.Get("page")),
		PerPage: intParam(q.Get("per_page")),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", listCacheControl)
	s.writeJSON(w, http.StatusOK, listResponse{Page: out.Page, Query: out.Query})
}

func (s *Server) handleGetPokemon(w http.ResponseWriter, r *http.Request) {
	out, err := s.service.GetPokemon(r.Context(), &pokedex.GetPokemonInput{
		IDOrName: r.PathValue("idOrName"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, out.Pokemon)
}

func (s *Server) handleParseQuery(w http.ResponseWriter, r *http.Request) {
	out, err := s.service.ParseQuery(r.Context(), &pokedex.ParseQueryInput{
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, parseResponse{Query: out.Query, Summary: out.Query.String()})
}

// handleTypeWeaknesses accepts "fire" or a dual type joined by '+', e.g.
// "water+flying"
func (s *Server) handleTypeWeaknesses(w http.ResponseWriter, r *http.Request) {
	out, err := s.service.TypeWeaknesses(r.Context(), &pokedex.TypeWeaknessesInput{
		Types: strings.Split(r.PathValue("types"), "+"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, weaknessesResponse{Types: out.Types, Weaknesses: out.Weaknesses})
}

// intParam reads an optional integer parameter; anything unparsable is 0 and
// falls back to the default downstream
func intParam(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
