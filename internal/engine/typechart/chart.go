// Package typechart holds the static type-effectiveness table and the
// defensive multiplier math built on top of it
package typechart

import (
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// attacker -> defender -> multiplier; absent entries are neutral (1x)
var chart = map[pokemon.TypeName]map[pokemon.TypeName]float64{
	pokemon.TypeNormal: {
		pokemon.TypeRock:  0.5,
		pokemon.TypeSteel: 0.5,

		pokemon.TypeGhost: 0,
	},
	pokemon.TypeFire: {
		pokemon.TypeGrass: 2,
		pokemon.TypeIce:   2,
		pokemon.TypeBug:   2,
		pokemon.TypeSteel: 2,

		pokemon.TypeFire:   0.5,
		pokemon.TypeWater:  0.5,
		pokemon.TypeRock:   0.5,
		pokemon.TypeDragon: 0.5,
	},
	pokemon.TypeWater: {
		pokemon.TypeFire:   2,
		pokemon.TypeGround: 2,
		pokemon.TypeRock:   2,

		pokemon.TypeWater:  0.5,
		pokemon.TypeGrass:  0.5,
		pokemon.TypeDragon: 0.5,
	},
	pokemon.TypeElectric: {
		pokemon.TypeWater:  2,
		pokemon.TypeFlying: 2,

		pokemon.TypeElectric: 0.5,
		pokemon.TypeGrass:    0.5,
		pokemon.TypeDragon:   0.5,

		pokemon.TypeGround: 0,
	},
	pokemon.TypeGrass: {
		pokemon.TypeWater:  2,
		pokemon.TypeGround: 2,
		pokemon.TypeRock:   2,

		pokemon.TypeFire:   0.5,
		pokemon.TypeGrass:  0.5,
		pokemon.TypePoison: 0.5,
		pokemon.TypeFlying: 0.5,
		pokemon.TypeBug:    0.5,
		pokemon.TypeDragon: 0.5,
		pokemon.TypeSteel:  0.5,
	},
	pokemon.TypeIce: {
		pokemon.TypeGrass:  2,
		pokemon.TypeGround: 2,
		pokemon.TypeFlying: 2,
		pokemon.TypeDragon: 2,

		pokemon.TypeFire:  0.5,
		pokemon.TypeWater: 0.5,
		pokemon.TypeIce:   0.5,
		pokemon.TypeSteel: 0.5,
	},
	pokemon.TypeFighting: {
		pokemon.TypeNormal: 2,
		pokemon.TypeIce:    2,
		pokemon.TypeRock:   2,
		pokemon.TypeDark:   2,
		pokemon.TypeSteel:  2,

		pokemon.TypePoison:  0.5,
		pokemon.TypeFlying:  0.5,
		pokemon.TypePsychic: 0.5,
		pokemon.TypeBug:     0.5,
		pokemon.TypeFairy:   0.5,

		pokemon.TypeGhost: 0,
	},
	pokemon.TypePoison: {
		pokemon.TypeGrass: 2,
		pokemon.TypeFairy: 2,

		pokemon.TypePoison: 0.5,
		pokemon.TypeGround: 0.5,
		pokemon.TypeRock:   0.5,
		pokemon.TypeGhost:  0.5,

		pokemon.TypeSteel: 0,
	},
	pokemon.TypeGround: {
		pokemon.TypeFire:     2,
		pokemon.TypeElectric: 2,
		pokemon.TypePoison:   2,
		pokemon.TypeRock:     2,
		pokemon.TypeSteel:    2,

		pokemon.TypeGrass: 0.5,
		pokemon.TypeBug:   0.5,

		pokemon.TypeFlying: 0,
	},
	pokemon.TypeFlying: {
		pokemon.TypeGrass:    2,
		pokemon.TypeFighting: 2,
		pokemon.TypeBug:      2,

		pokemon.TypeElectric: 0.5,
		pokemon.TypeRock:     0.5,
		pokemon.TypeSteel:    0.5,
	},
	pokemon.TypePsychic: {
		pokemon.TypeFighting: 2,
		pokemon.TypePoison:   2,

		pokemon.TypePsychic: 0.5,
		pokemon.TypeSteel:   0.5,

		pokemon.TypeDark: 0,
	},
	pokemon.TypeBug: {
		pokemon.TypeGrass:   2,
		pokemon.TypePsychic: 2,
		pokemon.TypeDark:    2,

		pokemon.TypeFire:     0.5,
		pokemon.TypeFighting: 0.5,
		pokemon.TypePoison:   0.5,
		pokemon.TypeFlying:   0.5,
		pokemon.TypeGhost:    0.5,
		pokemon.TypeSteel:    0.5,
		pokemon.TypeFairy:    0.5,
	},
	pokemon.TypeRock: {
		pokemon.TypeFire:   2,
		pokemon.TypeIce:    2,
		pokemon.TypeFlying: 2,
		pokemon.TypeBug:    2,

		pokemon.TypeFighting: 0.5,
		pokemon.TypeGround:   0.5,
		pokemon.TypeSteel:    0.5,
	},
	pokemon.TypeGhost: {
		pokemon.TypePsychic: 2,
		pokemon.TypeGhost:   2,

		pokemon.TypeDark: 0.5,

		pokemon.TypeNormal: 0,
	},
	pokemon.TypeDragon: {
		pokemon.TypeDragon: 2,

		pokemon.TypeSteel: 0.5,

		pokemon.TypeFairy: 0,
	},
	pokemon.TypeDark: {
		pokemon.TypePsychic: 2,
		pokemon.TypeGhost:   2,

		pokemon.TypeFighting: 0.5,
		pokemon.TypeDark:     0.5,
		pokemon.TypeFairy:    0.5,
	},
	pokemon.TypeSteel: {
		pokemon.TypeIce:   2,
		pokemon.TypeRock:  2,
		pokemon.TypeFairy: 2,

		pokemon.TypeFire:     0.5,
		pokemon.TypeWater:    0.5,
		pokemon.TypeElectric: 0.5,
		pokemon.TypeSteel:    0.5,
	},
	pokemon.TypeFairy: {
		pokemon.TypeFighting: 2,
		pokemon.TypeDragon:   2,
		pokemon.TypeDark:     2,

		pokemon.TypeFire:   0.5,
		pokemon.TypePoison: 0.5,
		pokemon.TypeSteel:  0.5,
	},
}

// Multiplier returns the damage multiplier of attacker against a single
// defending type. Unknown pairs are neutral.
func Multiplier(attacker, defender pokemon.TypeName) float64 {
	if m, ok := chart[attacker][defender]; ok {
		return m
	}
	return 1
}
