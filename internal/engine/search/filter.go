package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/pokedex-api/internal/engine/typechart"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// typePrefixPattern is the shape of a partially typed type name, e.g. "gra"
var typePrefixPattern = regexp.MustCompile(`^[a-z]{2,}$`)

// Filter returns the entries matching the raw query. The input slice is not
// modified and repeated calls with the same query return the same result.
//
// When a plain name search finds nothing and the query is an unambiguous
// prefix of a single type, the search is retried as that type.
func Filter(list []pokemon.Pokemon, raw string) []pokemon.Pokemon {
	q := Parse(raw)
	out := Match(list, q)
	if len(out) > 0 || q.Kind != KindIDOrName {
		return out
	}

	inferred, ok := InferTypePrefix(NormalizeQuery(raw))
	if !ok {
		return out
	}

	return Match(list, Query{Kind: KindType, Types: []pokemon.TypeName{inferred}, Mode: ModeAny})
}

// InferTypePrefix returns the single type that normalized begins, if exactly
// one does and normalized is at least two letters
func InferTypePrefix(normalized string) (pokemon.TypeName, bool) {
	if !typePrefixPattern.MatchString(normalized) {
		return "", false
	}

	var match pokemon.TypeName
	count := 0
	for _, t := range pokemon.AllTypes {
		if strings.HasPrefix(string(t), normalized) {
			match = t
			count++
		}
	}
	if count != 1 {
		return "", false
	}
	return match, true
}

// Match applies an already-parsed query without any fallback
func Match(list []pokemon.Pokemon, q Query) []pokemon.Pokemon {
	out := make([]pokemon.Pokemon, 0, len(list))
	for i := range list {
		if Matches(&list[i], q) {
			out = append(out, list[i])
		}
	}
	return out
}

// Matches reports whether one entry satisfies the query
func Matches(p *pokemon.Pokemon, q Query) bool {
	switch q.Kind {
	case KindEmpty:
		return true
	case KindIDOrName:
		return matchesIDOrName(p, q)
	case KindType:
		return matchesTypes(p, q.Types, q.Mode)
	case KindWeakTo:
		return matchesMultiplier(p, q.Types, func(m float64) bool { return m > 1 })
	case KindResists:
		return matchesMultiplier(p, q.Types, func(m float64) bool { return m < 1 })
	default:
		return false
	}
}

func matchesIDOrName(p *pokemon.Pokemon, q Query) bool {
	if q.IsNumber() {
		id, err := strconv.Atoi(strings.TrimPrefix(q.Value, "#"))
		if err != nil {
			return false
		}
		return p.ID == id
	}
	return strings.Contains(strings.ToLower(p.Name), q.Value)
}

// matchesTypes treats an empty type list as matching everything
func matchesTypes(p *pokemon.Pokemon, types []pokemon.TypeName, mode Mode) bool {
	if len(types) == 0 {
		return true
	}

	if mode == ModeAll {
		for _, t := range types {
			if !p.HasType(t) {
				return false
			}
		}
		return true
	}

	for _, t := range types {
		if p.HasType(t) {
			return true
		}
	}
	return false
}

// matchesMultiplier treats an empty type list as matching nothing
func matchesMultiplier(p *pokemon.Pokemon, attackers []pokemon.TypeName, accept func(float64) bool) bool {
	if len(attackers) == 0 {
		return false
	}

	mult := typechart.DefensiveMultipliers(p.Types)
	for _, attacker := range attackers {
		m, ok := mult[attacker]
		if ok && accept(m) {
			return true
		}
	}
	return false
}
