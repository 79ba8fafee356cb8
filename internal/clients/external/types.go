package external

// NamedResource is PokeAPI's {name, url} reference
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListData is one page of the /pokemon listing
type ListData struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// PokemonData is the subset of /pokemon/{idOrName} the catalog uses
type PokemonData struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Types     []TypeSlot    `json:"types"`
	Sprites   Sprites       `json:"sprites"`
	Stats     []StatSlot    `json:"stats"`
	Abilities []AbilitySlot `json:"abilities"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
}

// TypeSlot orders a Pokémon's types
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatSlot is one base stat
type StatSlot struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// AbilitySlot is one ability
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
}

// Sprites holds the image URLs; any of them may be null
type Sprites struct {
	FrontDefault *string      `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites holds the alternate artwork sets
type OtherSprites struct {
	OfficialArtwork SpriteSet `json:"official-artwork"`
	DreamWorld      SpriteSet `json:"dream_world"`
}

// SpriteSet is a single artwork set
type SpriteSet struct {
	FrontDefault *string `json:"front_default"`
}

// SpeciesData is the subset of /pokemon-species/{id} used for enrichment
type SpeciesData struct {
	ID                int                `json:"id"`
	Name              string             `json:"name"`
	FlavorTextEntries []FlavorTextEntry  `json:"flavor_text_entries"`
	EvolutionChain    *ResourceReference `json:"evolution_chain"`
}

// FlavorTextEntry is one localized dex entry
type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
}

// ResourceReference is PokeAPI's unnamed {url} reference
type ResourceReference struct {
	URL string `json:"url"`
}

// TypeData is the subset of /type/{name} used for weaknesses
type TypeData struct {
	ID              int                 `json:"id"`
	Name            string              `json:"name"`
	DamageRelations DamageRelationsData `json:"damage_relations"`
}

// DamageRelationsData lists the incoming damage relations of a type
type DamageRelationsData struct {
	DoubleDamageFrom []NamedResource `json:"double_damage_from"`
	HalfDamageFrom   []NamedResource `json:"half_damage_from"`
	NoDamageFrom     []NamedResource `json:"no_damage_from"`
}

// EvolutionChainData is an /evolution-chain/{id} payload
type EvolutionChainData struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one node of the evolution tree
type ChainLink struct {
	Species   NamedResource `json:"species"`
	EvolvesTo []ChainLink   `json:"evolves_to"`
}
