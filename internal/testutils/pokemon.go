package testutils

import (
	"fmt"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

func entry(id int, name string, types ...pokemon.TypeName) pokemon.Pokemon {
	return pokemon.Pokemon{
		ID:    id,
		Name:  name,
		Types: types,
		Image: fmt.Sprintf("https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/%d.png", id),
	}
}

// SampleCatalog returns a representative slice of the first-generation dex,
// deliberately out of id order
func SampleCatalog() []pokemon.Pokemon {
	return []pokemon.Pokemon{
		entry(25, "pikachu", pokemon.TypeElectric),
		entry(1, "bulbasaur", pokemon.TypeGrass, pokemon.TypePoison),
		entry(2, "ivysaur", pokemon.TypeGrass, pokemon.TypePoison),
		entry(3, "venusaur", pokemon.TypeGrass, pokemon.TypePoison),
		entry(4, "charmander", pokemon.TypeFire),
		entry(5, "charmeleon", pokemon.TypeFire),
		entry(6, "charizard", pokemon.TypeFire, pokemon.TypeFlying),
		entry(7, "squirtle", pokemon.TypeWater),
		entry(8, "wartortle", pokemon.TypeWater),
		entry(9, "blastoise", pokemon.TypeWater),
		entry(12, "butterfree", pokemon.TypeBug, pokemon.TypeFlying),
		entry(16, "pidgey", pokemon.TypeNormal, pokemon.TypeFlying),
		entry(26, "raichu", pokemon.TypeElectric),
		entry(37, "vulpix", pokemon.TypeFire),
		entry(43, "oddish", pokemon.TypeGrass, pokemon.TypePoison),
		entry(58, "growlithe", pokemon.TypeFire),
		entry(69, "bellsprout", pokemon.TypeGrass, pokemon.TypePoison),
		entry(74, "geodude", pokemon.TypeRock, pokemon.TypeGround),
		entry(92, "gastly", pokemon.TypeGhost, pokemon.TypePoison),
		entry(102, "exeggcute", pokemon.TypeGrass, pokemon.TypePsychic),
		entry(114, "tangela", pokemon.TypeGrass),
		entry(125, "electabuzz", pokemon.TypeElectric),
		entry(130, "gyarados", pokemon.TypeWater, pokemon.TypeFlying),
		entry(131, "lapras", pokemon.TypeWater, pokemon.TypeIce),
		entry(133, "eevee", pokemon.TypeNormal),
		entry(143, "snorlax", pokemon.TypeNormal),
		entry(150, "mewtwo", pokemon.TypePsychic),
		entry(151, "mew", pokemon.TypePsychic),
	}
}

// NumberedCatalog returns n placeholder entries with ids 1..n in order
func NumberedCatalog(n int) []pokemon.Pokemon {
	out := make([]pokemon.Pokemon, n)
	for i := range out {
		out[i] = entry(i+1, fmt.Sprintf("pokemon-%03d", i+1), pokemon.TypeNormal)
	}
	return out
}

// IDs extracts ids in order, for compact assertions
func IDs(list []pokemon.Pokemon) []int {
	ids := make([]int, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	return ids
}
