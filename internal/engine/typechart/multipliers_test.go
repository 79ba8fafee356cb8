package typechart_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-api/internal/engine/typechart"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

type TypeChartTestSuite struct {
	suite.Suite
}

func TestTypeChartSuite(t *testing.T) {
	suite.Run(t, new(TypeChartTestSuite))
}

func (s *TypeChartTestSuite) TestSingleTypeMatchesChart() {
	for _, defender := range pokemon.AllTypes {
		mult := typechart.DefensiveMultipliers([]pokemon.TypeName{defender})
		s.Len(mult, len(pokemon.AllTypes))

		for _, attacker := range pokemon.AllTypes {
			s.Equal(typechart.Multiplier(attacker, defender), mult[attacker],
				"%s attacking %s", attacker, defender)
		}
	}
}

func (s *TypeChartTestSuite) TestDualTypeComposesMultiplicatively() {
	for _, d1 := range pokemon.AllTypes {
		for _, d2 := range pokemon.AllTypes {
			mult := typechart.DefensiveMultipliers([]pokemon.TypeName{d1, d2})
			for _, attacker := range pokemon.AllTypes {
				expected := typechart.Multiplier(attacker, d1) * typechart.Multiplier(attacker, d2)
				s.Equal(expected, mult[attacker], "%s attacking %s/%s", attacker, d1, d2)
			}
		}
	}
}

func (s *TypeChartTestSuite) TestKnownMatchups() {
	testCases := []struct {
		name      string
		defenders []pokemon.TypeName
		attacker  pokemon.TypeName
		expected  float64
	}{
		{
			name:      "electric into water/flying is 4x",
			defenders: []pokemon.TypeName{pokemon.TypeWater, pokemon.TypeFlying},
			attacker:  pokemon.TypeElectric,
			expected:  4,
		},
		{
			name:      "ground into flying is immune",
			defenders: []pokemon.TypeName{pokemon.TypeFlying},
			attacker:  pokemon.TypeGround,
			expected:  0,
		},
		{
			name:      "grass into grass/poison is 0.25x",
			defenders: []pokemon.TypeName{pokemon.TypeGrass, pokemon.TypePoison},
			attacker:  pokemon.TypeGrass,
			expected:  0.25,
		},
		{
			name:      "normal into ghost/poison is immune",
			defenders: []pokemon.TypeName{pokemon.TypeGhost, pokemon.TypePoison},
			attacker:  pokemon.TypeNormal,
			expected:  0,
		},
		{
			name:      "fighting into normal is 2x",
			defenders: []pokemon.TypeName{pokemon.TypeNormal},
			attacker:  pokemon.TypeFighting,
			expected:  2,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			mult := typechart.DefensiveMultipliers(tc.defenders)
			s.Equal(tc.expected, mult[tc.attacker])
		})
	}
}

func (s *TypeChartTestSuite) TestEmptyDefendersAreNeutral() {
	mult := typechart.DefensiveMultipliers(nil)
	for _, attacker := range pokemon.AllTypes {
		s.Equal(1.0, mult[attacker])
	}
}

func (s *TypeChartTestSuite) TestUnknownDefenderIsNeutral() {
	mult := typechart.DefensiveMultipliers([]pokemon.TypeName{"shadow"})
	for _, attacker := range pokemon.AllTypes {
		s.Equal(1.0, mult[attacker])
	}
}

func (s *TypeChartTestSuite) TestRelationsAgreeWithChart() {
	// Folding damage-from relations must reproduce the table-driven result
	// for every single and dual type.
	for _, d1 := range pokemon.AllTypes {
		for _, d2 := range pokemon.AllTypes {
			defenders := []pokemon.TypeName{d1}
			if d2 != d1 {
				defenders = append(defenders, d2)
			}

			folded := typechart.Neutral()
			for _, d := range defenders {
				folded.Apply(typechart.Relations(d))
			}

			s.Equal(typechart.Weaknesses(defenders), typechart.Partition(folded), "%v", defenders)
		}
	}
}

func (s *TypeChartTestSuite) TestApplyIgnoresUnknownTypes() {
	mult := typechart.Neutral()
	mult.Apply(pokemon.DamageRelations{
		DoubleDamageFrom: []pokemon.TypeName{"stellar", pokemon.TypeFire},
	})

	s.Len(mult, len(pokemon.AllTypes))
	s.Equal(2.0, mult[pokemon.TypeFire])
}

func (s *TypeChartTestSuite) TestPartition() {
	// Charizard: fire/flying
	group := typechart.Weaknesses([]pokemon.TypeName{pokemon.TypeFire, pokemon.TypeFlying})

	s.Require().NotEmpty(group.WeakTo)
	s.Equal(pokemon.TypeMultiplier{Type: pokemon.TypeRock, Multiplier: 4}, group.WeakTo[0])
	s.Equal([]pokemon.TypeMultiplier{
		{Type: pokemon.TypeRock, Multiplier: 4},
		{Type: pokemon.TypeWater, Multiplier: 2},
		{Type: pokemon.TypeElectric, Multiplier: 2},
	}, group.WeakTo)

	s.Equal([]pokemon.TypeName{pokemon.TypeGround}, group.ImmuneTo)

	s.Require().NotEmpty(group.ResistantTo)
	s.Equal(pokemon.TypeMultiplier{Type: pokemon.TypeGrass, Multiplier: 0.25}, group.ResistantTo[0])
	s.Equal(pokemon.TypeMultiplier{Type: pokemon.TypeBug, Multiplier: 0.25}, group.ResistantTo[1])
	for i := 1; i < len(group.ResistantTo); i++ {
		s.LessOrEqual(group.ResistantTo[i-1].Multiplier, group.ResistantTo[i].Multiplier)
	}
}

func (s *TypeChartTestSuite) TestPartitionIsDisjoint() {
	for _, d1 := range pokemon.AllTypes {
		for _, d2 := range pokemon.AllTypes {
			group := typechart.Weaknesses([]pokemon.TypeName{d1, d2})
			seen := make(map[pokemon.TypeName]int)
			for _, w := range group.WeakTo {
				seen[w.Type]++
			}
			for _, r := range group.ResistantTo {
				seen[r.Type]++
			}
			for _, i := range group.ImmuneTo {
				seen[i]++
			}
			for t, n := range seen {
				s.Equal(1, n, "%s appears in more than one partition for %s/%s", t, d1, d2)
			}
		}
	}
}
