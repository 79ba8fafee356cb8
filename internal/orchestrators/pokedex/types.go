package pokedex

import (
	"github.com/KirkDiggler/pokedex-api/internal/engine/search"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// ListPokemonInput carries the raw query string parameters
type ListPokemonInput struct {
	Query   string
	Sort    string
	Dir     string
	Page    int
	PerPage int
}

// ListPokemonOutput is one page of results plus the parsed intent
type ListPokemonOutput struct {
	Page  search.Page[pokemon.Pokemon]
	Query search.Query
}

// GetPokemonInput identifies one entry by dex number or name
type GetPokemonInput struct {
	IDOrName string
}

// GetPokemonOutput is the enriched entry
type GetPokemonOutput struct {
	Pokemon *pokemon.PokemonDetail
}

// ParseQueryInput is a raw search string
type ParseQueryInput struct {
	Query string
}

// ParseQueryOutput is the classified intent
type ParseQueryOutput struct {
	Query search.Query
}

// TypeWeaknessesInput names one or two defending types
type TypeWeaknessesInput struct {
	Types []string
}

// TypeWeaknessesOutput is the matchup table for the combination
type TypeWeaknessesOutput struct {
	Types      []pokemon.TypeName
	Weaknesses *pokemon.WeaknessGroup
}
