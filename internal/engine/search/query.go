// Package search turns free-text catalog queries into structured intents and
// runs the filter, sort and paginate pipeline over the catalog
package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// Kind tags which intent a Query carries
type Kind string

// Query kinds
const (
	KindEmpty    Kind = "empty"
	KindIDOrName Kind = "id_or_name"
	KindType     Kind = "type"
	KindWeakTo   Kind = "weak_to"
	KindResists  Kind = "resists"
)

// Mode selects any/all matching for a type intent
type Mode string

// Type match modes
const (
	ModeAny Mode = "any"
	ModeAll Mode = "all"
)

var (
	numberQueryPattern = regexp.MustCompile(`^#?(\d{1,4})$`)
	punctuationPattern = regexp.MustCompile(`[^\w\s#-]`)
)

var (
	weakTokens   = map[string]bool{"weak": true, "weakto": true}
	resistTokens = map[string]bool{"resist": true, "resists": true, "resistant": true, "resists-to": true}
)

// Query is the parsed intent of one search string. Only the fields relevant
// to Kind are populated:
//   - KindIDOrName: Value
//   - KindType: Types and Mode
//   - KindWeakTo, KindResists: Types
type Query struct {
	Kind  Kind               `json:"kind"`
	Value string             `json:"value,omitempty"`
	Types []pokemon.TypeName `json:"types,omitempty"`
	Mode  Mode               `json:"mode,omitempty"`
}

// IsNumber reports whether an id-or-name query is a dex number search
func (q Query) IsNumber() bool {
	return q.Kind == KindIDOrName && numberQueryPattern.MatchString(q.Value)
}

// String renders the intent for logs
func (q Query) String() string {
	switch q.Kind {
	case KindEmpty:
		return "empty"
	case KindIDOrName:
		return fmt.Sprintf("idOrName(%q)", q.Value)
	case KindType:
		return fmt.Sprintf("type(%s, %s)", joinTypes(q.Types), q.Mode)
	case KindWeakTo:
		return fmt.Sprintf("weakTo(%s)", joinTypes(q.Types))
	case KindResists:
		return fmt.Sprintf("resists(%s)", joinTypes(q.Types))
	default:
		return fmt.Sprintf("unknown(%s)", q.Kind)
	}
}

// NormalizeQuery trims and lowercases raw input
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Parse classifies a free-text query into exactly one intent.
//
// Explicit intent words win over bare type tokens, so "weak to fire" is a
// weakness search rather than a fire filter. Two or more bare types mean the
// entry must carry all of them.
func Parse(input string) Query {
	raw := NormalizeQuery(input)
	if raw == "" {
		return Query{Kind: KindEmpty}
	}

	if m := numberQueryPattern.FindStringSubmatch(raw); m != nil {
		return Query{Kind: KindIDOrName, Value: m[1]}
	}

	tokens := strings.Fields(punctuationPattern.ReplaceAllString(raw, " "))

	weakIntent, resistIntent := false, false
	for _, tok := range tokens {
		if weakTokens[tok] {
			weakIntent = true
		}
		if resistTokens[tok] {
			resistIntent = true
		}
	}

	types := extractTypes(tokens)

	switch {
	case weakIntent && len(types) > 0:
		return Query{Kind: KindWeakTo, Types: types}
	case resistIntent && len(types) > 0:
		return Query{Kind: KindResists, Types: types}
	case len(types) > 0:
		mode := ModeAny
		if len(types) >= 2 {
			mode = ModeAll
		}
		return Query{Kind: KindType, Types: types, Mode: mode}
	}

	return Query{Kind: KindIDOrName, Value: raw}
}

// extractTypes returns known type tokens in first-appearance order without
// duplicates; anything else is ignored
func extractTypes(tokens []string) []pokemon.TypeName {
	var found []pokemon.TypeName
	seen := make(map[pokemon.TypeName]bool)
	for _, tok := range tokens {
		if !pokemon.IsTypeName(tok) {
			continue
		}
		t := pokemon.TypeName(tok)
		if seen[t] {
			continue
		}
		seen[t] = true
		found = append(found, t)
	}
	return found
}

func joinTypes(types []pokemon.TypeName) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
