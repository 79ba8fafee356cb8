package external

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/KirkDiggler/pokedex-api/internal/engine/evolution"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// SpriteFallbackURL is the last-resort image for an id
const SpriteFallbackURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png"

var (
	flavorControlPattern = regexp.MustCompile(`[\f\n\r]`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// PickImage prefers official artwork, then dream world, then the default
// sprite, then the static sprite repository
func PickImage(p *PokemonData) string {
	for _, candidate := range []*string{
		p.Sprites.Other.OfficialArtwork.FrontDefault,
		p.Sprites.Other.DreamWorld.FrontDefault,
		p.Sprites.FrontDefault,
	} {
		if candidate != nil && *candidate != "" {
			return *candidate
		}
	}
	return fmt.Sprintf(SpriteFallbackURL, p.ID)
}

// typeNames returns the types in slot order
func typeNames(p *PokemonData) []pokemon.TypeName {
	slots := make([]TypeSlot, len(p.Types))
	copy(slots, p.Types)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	out := make([]pokemon.TypeName, len(slots))
	for i, s := range slots {
		out[i] = pokemon.TypeName(strings.ToLower(s.Type.Name))
	}
	return out
}

// ToPokemon converts the raw record to a list item
func ToPokemon(p *PokemonData) pokemon.Pokemon {
	return pokemon.Pokemon{
		ID:    p.ID,
		Name:  strings.ToLower(p.Name),
		Types: typeNames(p),
		Image: PickImage(p),
	}
}

// ToPokemonDetail converts the raw record to an unenriched detail
func ToPokemonDetail(p *PokemonData) *pokemon.PokemonDetail {
	stats := make([]pokemon.Stat, len(p.Stats))
	for i, s := range p.Stats {
		stats[i] = pokemon.Stat{Name: s.Stat.Name, Value: s.BaseStat}
	}

	abilities := make([]string, len(p.Abilities))
	for i, a := range p.Abilities {
		abilities[i] = a.Ability.Name
	}

	return &pokemon.PokemonDetail{
		Pokemon:   ToPokemon(p),
		Stats:     stats,
		Abilities: abilities,
		Height:    p.Height,
		Weight:    p.Weight,
	}
}

// CleanFlavorText flattens the control characters PokeAPI keeps from the
// games' text boxes and collapses whitespace
func CleanFlavorText(s string) string {
	s = flavorControlPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// EnglishFlavorText returns the first English entry, cleaned, or ""
func EnglishFlavorText(s *SpeciesData) string {
	for _, e := range s.FlavorTextEntries {
		if e.Language.Name == "en" {
			return CleanFlavorText(e.FlavorText)
		}
	}
	return ""
}

// EvolutionChainURL returns the species' chain reference or ""
func EvolutionChainURL(s *SpeciesData) string {
	if s.EvolutionChain == nil {
		return ""
	}
	return s.EvolutionChain.URL
}

// ToEvolutionNode converts the chain into the resolver's tree, iteratively
func ToEvolutionNode(c *EvolutionChainData) *evolution.Node {
	type pending struct {
		link *ChainLink
		node *evolution.Node
	}

	root := &evolution.Node{SpeciesName: c.Chain.Species.Name, SpeciesURL: c.Chain.Species.URL}
	stack := []pending{{link: &c.Chain, node: root}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cur.node.EvolvesTo = make([]*evolution.Node, len(cur.link.EvolvesTo))
		for i := range cur.link.EvolvesTo {
			child := &cur.link.EvolvesTo[i]
			n := &evolution.Node{SpeciesName: child.Species.Name, SpeciesURL: child.Species.URL}
			cur.node.EvolvesTo[i] = n
			stack = append(stack, pending{link: child, node: n})
		}
	}
	return root
}

// ToDamageRelations keeps names as served; unknown types are ignored later
func ToDamageRelations(t *TypeData) pokemon.DamageRelations {
	return pokemon.DamageRelations{
		DoubleDamageFrom: resourceTypes(t.DamageRelations.DoubleDamageFrom),
		HalfDamageFrom:   resourceTypes(t.DamageRelations.HalfDamageFrom),
		NoDamageFrom:     resourceTypes(t.DamageRelations.NoDamageFrom),
	}
}

func resourceTypes(rs []NamedResource) []pokemon.TypeName {
	out := make([]pokemon.TypeName, len(rs))
	for i, r := range rs {
		out[i] = pokemon.TypeName(r.Name)
	}
	return out
}
