package scenario

import (
	"fmt"
	"slices"
	"sort"
)

// graph holds the loaded scenario set with precomputed indices.
type graph struct {
	scenarios []Scenario
	byID      map[int]*Scenario
	nodes     map[int]map[string]*Node
	choices   map[int]*Choice
}

// g is the package-level graph singleton, set by init() in seed.go and
// rebuilt by Register. Read-only once play begins, so it is shared across
// attempts without locking.
var g *graph

// buildGraph constructs the graph and its indices from a scenario set.
// The set must already have passed validateScenarios.
func buildGraph(scenarios []Scenario) *graph {
	gr := &graph{
		scenarios: scenarios,
		byID:      make(map[int]*Scenario, len(scenarios)),
		nodes:     make(map[int]map[string]*Node),
		choices:   make(map[int]*Choice),
	}

	// Sort before indexing: the maps hold pointers into the slice, so any
	// reorder after the fact would leave them aimed at the wrong structs.
	sort.Slice(gr.scenarios, func(i, j int) bool {
		return gr.scenarios[i].ID < gr.scenarios[j].ID
	})

	for i := range gr.scenarios {
		sc := &gr.scenarios[i]
		gr.byID[sc.ID] = sc

		nodeIdx := make(map[string]*Node, len(sc.Nodes))
		for j := range sc.Nodes {
			n := &sc.Nodes[j]
			n.ScenarioID = sc.ID
			nodeIdx[n.Key] = n
			for k := range n.Choices {
				c := &n.Choices[k]
				c.ScenarioID = sc.ID
				c.NodeKey = n.Key
				gr.choices[c.ID] = c
			}
		}
		gr.nodes[sc.ID] = nodeIdx
	}

	return gr
}

// Get returns a scenario by ID.
func Get(id int) (Scenario, error) {
	sc, ok := g.byID[id]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario not found: %d", id)
	}
	return *sc, nil
}

// All returns all loaded scenarios ordered by ID.
func All() []Scenario {
	return slices.Clone(g.scenarios)
}

// GetNode returns a node by scenario ID and node key.
func GetNode(scenarioID int, key string) (Node, error) {
	n, ok := g.nodes[scenarioID][key]
	if !ok {
		return Node{}, fmt.Errorf("node not found: scenario %d key %q", scenarioID, key)
	}
	return *n, nil
}

// StartNode returns the entry node of a scenario.
func StartNode(scenarioID int) (Node, error) {
	return GetNode(scenarioID, StartKey)
}

// ChoicesForNode returns the choices attached to a node in authored order.
// Returns nil for unknown nodes.
func ChoicesForNode(scenarioID int, key string) []Choice {
	n, ok := g.nodes[scenarioID][key]
	if !ok {
		return nil
	}
	return slices.Clone(n.Choices)
}

// GetChoice returns a choice by its global ID.
func GetChoice(id int) (Choice, error) {
	c, ok := g.choices[id]
	if !ok {
		return Choice{}, fmt.Errorf("choice not found: %d", id)
	}
	return *c, nil
}

// Register validates additional scenarios against the loaded set and, on
// success, rebuilds the graph with them included. Intended for external
// scenario packs loaded at startup, before any attempt begins.
func Register(scenarios ...Scenario) error {
	combined := append(slices.Clone(g.scenarios), scenarios...)
	if err := validateScenarios(combined); err != nil {
		return err
	}
	g = buildGraph(combined)
	return nil
}

// Validate checks the loaded graph for structural issues.
func Validate() error {
	return validateScenarios(g.scenarios)
}
