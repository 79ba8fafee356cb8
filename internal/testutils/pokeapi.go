package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/KirkDiggler/pokedex-api/internal/engine/typechart"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
)

// FakePokeAPI serves the SampleCatalog in PokeAPI's JSON shapes. Chain and
// species URLs it returns point at the public host, as the real API does.
type FakePokeAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	hits     map[string]int
	failures map[string]int
	byID     map[int]pokemon.Pokemon
	byName   map[string]pokemon.Pokemon
	chains   map[int]any
	chainOf  map[int]int
	flavor   map[int]string
}

// NewFakePokeAPI starts the server and registers its shutdown with t
func NewFakePokeAPI(t *testing.T) *FakePokeAPI {
	f := &FakePokeAPI{
		hits:     make(map[string]int),
		failures: make(map[string]int),
		byID:     make(map[int]pokemon.Pokemon),
		byName:   make(map[string]pokemon.Pokemon),
		chains:   make(map[int]any),
		chainOf:  make(map[int]int),
		flavor:   make(map[int]string),
	}
	for _, p := range SampleCatalog() {
		f.byID[p.ID] = p
		f.byName[p.Name] = p
	}

	f.flavor[1] = "A strange seed was\nplanted on its\fback at birth."
	f.flavor[25] = "When several of\nthese POKéMON\ngather, their\felectricity could\nbuild and cause\nlightning storms."

	// bulbasaur line
	f.addChain(1, chainLink("bulbasaur", 1, chainLink("ivysaur", 2, chainLink("venusaur", 3))))
	// pichu is outside the sample but inside gen 2, so it is filtered
	f.addChain(10, chainLink("pichu", 172, chainLink("pikachu", 25, chainLink("raichu", 26))))
	// eevee branches, most of them outside gen 1
	f.addChain(67, chainLink("eevee", 133,
		chainLink("vaporeon", 134), chainLink("jolteon", 135), chainLink("flareon", 136),
		chainLink("espeon", 196), chainLink("umbreon", 197), chainLink("sylveon", 700),
	))

	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the API root to configure the client with
func (f *FakePokeAPI) URL() string {
	return f.Server.URL
}

// Hits reports how many requests reached path (without query)
func (f *FakePokeAPI) Hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

// TotalHits reports how many requests reached the server
func (f *FakePokeAPI) TotalHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.hits {
		total += n
	}
	return total
}

// FailPath makes every request to path answer with status
func (f *FakePokeAPI) FailPath(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = status
}

func chainLink(name string, id int, next ...any) map[string]any {
	if next == nil {
		next = []any{}
	}
	return map[string]any{
		"species": map[string]any{
			"name": name,
			"url":  fmt.Sprintf("https://pokeapi.co/api/v2/pokemon-species/%d/", id),
		},
		"evolves_to": next,
	}
}

func (f *FakePokeAPI) addChain(chainID int, root map[string]any) {
	f.chains[chainID] = map[string]any{"id": chainID, "chain": root}

	stack := []map[string]any{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		parts := strings.Split(strings.Trim(n["species"].(map[string]any)["url"].(string), "/"), "/")
		id, _ := strconv.Atoi(parts[len(parts)-1])
		f.chainOf[id] = chainID

		for _, child := range n["evolves_to"].([]any) {
			stack = append(stack, child.(map[string]any))
		}
	}
}

func (f *FakePokeAPI) serve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	f.mu.Lock()
	f.hits[path]++
	status, failing := f.failures[path]
	f.mu.Unlock()

	if failing {
		http.Error(w, "injected failure", status)
		return
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	var body any
	found := false

	switch {
	case len(segments) == 1 && segments[0] == "pokemon":
		body, found = f.list(r), true
	case len(segments) == 2 && segments[0] == "pokemon":
		body, found = f.pokemon(segments[1])
	case len(segments) == 2 && segments[0] == "pokemon-species":
		body, found = f.species(segments[1])
	case len(segments) == 2 && segments[0] == "type":
		body, found = typeBody(segments[1])
	case len(segments) == 2 && segments[0] == "evolution-chain":
		id, _ := strconv.Atoi(segments[1])
		body, found = f.chains[id]
	}

	if !found {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func (f *FakePokeAPI) list(r *http.Request) any {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	ids := make([]int, 0, len(f.byID))
	for id := range f.byID {
		if id > offset && (limit <= 0 || id <= offset+limit) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	results := make([]any, len(ids))
	for i, id := range ids {
		results[i] = map[string]any{
			"name": f.byID[id].Name,
			"url":  fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", id),
		}
	}
	return map[string]any{"count": len(results), "results": results}
}

func (f *FakePokeAPI) lookup(idOrName string) (pokemon.Pokemon, bool) {
	if id, err := strconv.Atoi(idOrName); err == nil {
		p, ok := f.byID[id]
		return p, ok
	}
	p, ok := f.byName[idOrName]
	return p, ok
}

func (f *FakePokeAPI) pokemon(idOrName string) (any, bool) {
	p, ok := f.lookup(idOrName)
	if !ok {
		return nil, false
	}

	types := make([]any, len(p.Types))
	// served in reverse so clients must honour the slot number
	for i, t := range p.Types {
		types[len(p.Types)-1-i] = map[string]any{
			"slot": i + 1,
			"type": map[string]any{"name": string(t), "url": "https://pokeapi.co/api/v2/type/" + string(t) + "/"},
		}
	}

	artwork := any(p.Image)
	if p.ID == 151 {
		// exercise the sprite fallback
		artwork = nil
	}

	return map[string]any{
		"id":     p.ID,
		"name":   p.Name,
		"height": 7,
		"weight": 69,
		"types":  types,
		"sprites": map[string]any{
			"front_default": nil,
			"other": map[string]any{
				"official-artwork": map[string]any{"front_default": artwork},
				"dream_world":      map[string]any{"front_default": nil},
			},
		},
		"stats": []any{
			map[string]any{"base_stat": 45, "stat": map[string]any{"name": pokemon.StatHP}},
			map[string]any{"base_stat": 49, "stat": map[string]any{"name": pokemon.StatAttack}},
		},
		"abilities": []any{
			map[string]any{"ability": map[string]any{"name": "overgrow"}, "is_hidden": false},
		},
	}, true
}

func (f *FakePokeAPI) species(id string) (any, bool) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, false
	}
	p, ok := f.byID[n]
	if !ok {
		return nil, false
	}

	entries := []any{
		map[string]any{"flavor_text": "Texto en español.", "language": map[string]any{"name": "es"}},
	}
	if text, ok := f.flavor[n]; ok {
		entries = append(entries,
			map[string]any{"flavor_text": text, "language": map[string]any{"name": "en"}},
			map[string]any{"flavor_text": "A later English entry.", "language": map[string]any{"name": "en"}},
		)
	}

	body := map[string]any{
		"id":                  n,
		"name":                p.Name,
		"flavor_text_entries": entries,
		"evolution_chain":     nil,
	}
	if chainID, ok := f.chainOf[n]; ok {
		body["evolution_chain"] = map[string]any{
			"url": fmt.Sprintf("https://pokeapi.co/api/v2/evolution-chain/%d/", chainID),
		}
	}
	return body, true
}

func typeBody(name string) (any, bool) {
	if !pokemon.IsTypeName(name) {
		return nil, false
	}

	rel := typechart.Relations(pokemon.TypeName(name))
	refs := func(types []pokemon.TypeName) []any {
		out := make([]any, len(types))
		for i, t := range types {
			out[i] = map[string]any{"name": string(t), "url": "https://pokeapi.co/api/v2/type/" + string(t) + "/"}
		}
		return out
	}

	return map[string]any{
		"name": name,
		"damage_relations": map[string]any{
			"double_damage_from": refs(rel.DoubleDamageFrom),
			"half_damage_from":   refs(rel.HalfDamageFrom),
			"no_damage_from":     refs(rel.NoDamageFrom),
		},
	}, true
}
