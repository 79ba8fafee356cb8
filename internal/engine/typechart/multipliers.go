package typechart

import (
	"sort"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// Multipliers maps every attacking type to its combined multiplier
type Multipliers map[pokemon.TypeName]float64

// Neutral returns a Multipliers with every attacking type at 1x
func Neutral() Multipliers {
	out := make(Multipliers, len(pokemon.AllTypes))
	for _, t := range pokemon.AllTypes {
		out[t] = 1
	}
	return out
}

// DefensiveMultipliers combines the chart across every defending type.
// Dual types stack multiplicatively, so a 2x against each half is 4x overall.
func DefensiveMultipliers(defenders []pokemon.TypeName) Multipliers {
	out := Neutral()
	for _, attacker := range pokemon.AllTypes {
		mult := 1.0
		for _, defender := range defenders {
			mult *= Multiplier(attacker, defender)
		}
		out[attacker] = mult
	}
	return out
}

// Relations expresses the chart as the damage-from sets for one defending
// type, in the same shape the upstream type endpoint serves
func Relations(defender pokemon.TypeName) pokemon.DamageRelations {
	rel := pokemon.DamageRelations{
		DoubleDamageFrom: []pokemon.TypeName{},
		HalfDamageFrom:   []pokemon.TypeName{},
		NoDamageFrom:     []pokemon.TypeName{},
	}
	if !defender.IsValid() {
		return rel
	}

	for _, attacker := range pokemon.AllTypes {
		switch Multiplier(attacker, defender) {
		case 2:
			rel.DoubleDamageFrom = append(rel.DoubleDamageFrom, attacker)
		case 0.5:
			rel.HalfDamageFrom = append(rel.HalfDamageFrom, attacker)
		case 0:
			rel.NoDamageFrom = append(rel.NoDamageFrom, attacker)
		}
	}
	return rel
}

// Apply folds one type's damage relations into mult in place. Names outside
// the 18 known types are ignored.
func (m Multipliers) Apply(rel pokemon.DamageRelations) {
	for _, t := range rel.DoubleDamageFrom {
		if _, ok := m[t]; ok {
			m[t] *= 2
		}
	}
	for _, t := range rel.HalfDamageFrom {
		if _, ok := m[t]; ok {
			m[t] *= 0.5
		}
	}
	for _, t := range rel.NoDamageFrom {
		if _, ok := m[t]; ok {
			m[t] = 0
		}
	}
}

// Partition splits multipliers into weak/resistant/immune groups.
// WeakTo is sorted by multiplier descending and ResistantTo ascending; ties
// keep canonical type order. Neutral types are omitted.
func Partition(mult Multipliers) pokemon.WeaknessGroup {
	group := pokemon.WeaknessGroup{
		WeakTo:      []pokemon.TypeMultiplier{},
		ResistantTo: []pokemon.TypeMultiplier{},
		ImmuneTo:    []pokemon.TypeName{},
	}

	for _, t := range pokemon.AllTypes {
		m, ok := mult[t]
		if !ok {
			continue
		}
		switch {
		case m == 0:
			group.ImmuneTo = append(group.ImmuneTo, t)
		case m > 1:
			group.WeakTo = append(group.WeakTo, pokemon.TypeMultiplier{Type: t, Multiplier: m})
		case m < 1:
			group.ResistantTo = append(group.ResistantTo, pokemon.TypeMultiplier{Type: t, Multiplier: m})
		}
	}

	sort.SliceStable(group.WeakTo, func(i, j int) bool {
		return group.WeakTo[i].Multiplier > group.WeakTo[j].Multiplier
	})
	sort.SliceStable(group.ResistantTo, func(i, j int) bool {
		return group.ResistantTo[i].Multiplier < group.ResistantTo[j].Multiplier
	})

	return group
}

// Weaknesses is the static-chart weakness group for a set of defending types
func Weaknesses(defenders []pokemon.TypeName) pokemon.WeaknessGroup {
	return Partition(DefensiveMultipliers(defenders))
}
