// Package evolution flattens evolution-chain trees into contiguous stages
package evolution

import (
	"regexp"
	"strconv"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// speciesIDPattern matches the trailing numeric segment of a species URL
var speciesIDPattern = regexp.MustCompile(`/(\d+)/?$`)

// Node is one species in a raw evolution chain
type Node struct {
	SpeciesName string
	SpeciesURL  string
	EvolvesTo   []*Node
}

// queued pairs a node with the stage it was discovered at
type queued struct {
	node  *Node
	stage int
}

// SpeciesID extracts the numeric id from a species reference URL
func SpeciesID(url string) (int, bool) {
	m := speciesIDPattern.FindStringSubmatch(url)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

// Resolve walks the chain breadth first and returns stages limited to ids in
// [1, maxID]. Nodes at the same depth always share a stage, stages left empty
// by the filter are dropped, and the survivors are re-indexed 0..M-1.
func Resolve(root *Node, maxID int) []pokemon.EvolutionStage {
	if root == nil {
		return []pokemon.EvolutionStage{}
	}

	var stages []*stageBuilder
	queue := []queued{{node: root, stage: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		for len(stages) <= item.stage {
			stages = append(stages, newStageBuilder())
		}

		if id, ok := SpeciesID(item.node.SpeciesURL); ok {
			stages[item.stage].merge(pokemon.EvolutionOption{ID: id, Name: item.node.SpeciesName})
		}

		for _, child := range item.node.EvolvesTo {
			if child == nil {
				continue
			}
			queue = append(queue, queued{node: child, stage: item.stage + 1})
		}
	}

	out := make([]pokemon.EvolutionStage, 0, len(stages))
	for _, b := range stages {
		options := b.filter(maxID)
		if len(options) == 0 {
			continue
		}
		out = append(out, pokemon.EvolutionStage{
			Stage:   len(out),
			Options: options,
		})
	}

	return out
}

// stageBuilder collects options for one depth, de-duplicated by id
type stageBuilder struct {
	order []int
	byID  map[int]pokemon.EvolutionOption
}

func newStageBuilder() *stageBuilder {
	return &stageBuilder{byID: make(map[int]pokemon.EvolutionOption)}
}

// merge keeps the first position for an id; the last-seen name wins
func (b *stageBuilder) merge(opt pokemon.EvolutionOption) {
	if _, exists := b.byID[opt.ID]; !exists {
		b.order = append(b.order, opt.ID)
	}
	b.byID[opt.ID] = opt
}

func (b *stageBuilder) filter(maxID int) []pokemon.EvolutionOption {
	options := make([]pokemon.EvolutionOption, 0, len(b.order))
	for _, id := range b.order {
		if id < 1 || id > maxID {
			continue
		}
		options = append(options, b.byID[id])
	}
	return options
}
