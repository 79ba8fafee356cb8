package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// SortKey selects the sort field
type SortKey string

// Sort keys
const (
	SortByNumber SortKey = "number"
	SortByName   SortKey = "name"
)

// SortDir selects the sort direction
type SortDir string

// Sort directions
const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// ParseSortKey maps a raw value to a SortKey, defaulting to number
func ParseSortKey(raw string) SortKey {
	if SortKey(NormalizeQuery(raw)) == SortByName {
		return SortByName
	}
	return SortByNumber
}

// ParseSortDir maps a raw value to a SortDir, defaulting to asc
func ParseSortDir(raw string) SortDir {
	if SortDir(NormalizeQuery(raw)) == SortDesc {
		return SortDesc
	}
	return SortAsc
}

// Sort returns a sorted copy of list. Descending order reverses the fully
// sorted ascending result so ties keep a consistent relative order.
func Sort(list []pokemon.Pokemon, key SortKey, dir SortDir) []pokemon.Pokemon {
	sorted := make([]pokemon.Pokemon, len(list))
	copy(sorted, list)

	switch key {
	case SortByName:
		// collate.Collator is not safe for concurrent use
		col := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return col.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ID < sorted[j].ID
		})
	}

	if dir == SortDesc {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}

	return sorted
}
