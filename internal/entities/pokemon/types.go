// Package pokemon holds the catalog domain types shared by the engine,
// orchestrators and handlers
package pokemon

// Pokemon is the list view of a catalog entry
type Pokemon struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Types []TypeName `json:"types"`
	Image string     `json:"image"`
}

// HasType reports whether the Pokémon carries the given type
func (p *Pokemon) HasType(t TypeName) bool {
	for _, own := range p.Types {
		if own == t {
			return true
		}
	}
	return false
}

// Stat is a single named base stat
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PokemonDetail is the enriched detail view.
// Height is in decimetres and Weight in hectograms, as served upstream.
type PokemonDetail struct {
	Pokemon
	Stats     []Stat   `json:"stats"`
	Abilities []string `json:"abilities"`
	Height    int      `json:"height"`
	Weight    int      `json:"weight"`

	// Optional enrichment; empty values mean "not available"
	FlavorText string           `json:"flavor_text,omitempty"`
	Weaknesses *WeaknessGroup   `json:"weaknesses,omitempty"`
	Evolutions []EvolutionStage `json:"evolutions,omitempty"`
}

// TypeMultiplier pairs an attacking type with its combined multiplier
type TypeMultiplier struct {
	Type       TypeName `json:"type"`
	Multiplier float64  `json:"multiplier"`
}

// WeaknessGroup partitions the attacking types by how hard they hit.
// Neutral (1x) types appear in none of the lists.
type WeaknessGroup struct {
	WeakTo      []TypeMultiplier `json:"weak_to"`
	ResistantTo []TypeMultiplier `json:"resistant_to"`
	ImmuneTo    []TypeName       `json:"immune_to"`
}

// DamageRelations is the one-way "damage from" view of a single type
type DamageRelations struct {
	DoubleDamageFrom []TypeName `json:"double_damage_from"`
	HalfDamageFrom   []TypeName `json:"half_damage_from"`
	NoDamageFrom     []TypeName `json:"no_damage_from"`
}

// EvolutionOption is one species that can appear at a stage
type EvolutionOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EvolutionStage groups the branch alternatives at one evolutionary depth
type EvolutionStage struct {
	Stage   int               `json:"stage"`
	Options []EvolutionOption `json:"options"`
}

// IsLinear reports whether an evolution sequence is a single unbranched line
func IsLinear(stages []EvolutionStage) bool {
	for _, s := range stages {
		if len(s.Options) != 1 {
			return false
		}
	}
	return len(stages) > 0
}
