package scenario

import (
	"fmt"
	"strings"
)

// validateScenarios performs all structural checks on the given scenario set.
// Returns a combined error describing all problems found, or nil if valid.
// Scenarios that fail here must never become startable: the seed panics at
// init and external packs are rejected before registration.
func validateScenarios(scenarios []Scenario) error {
	var errs []string

	scenarioIDs := make(map[int]bool, len(scenarios))
	choiceIDs := make(map[int]bool)

	for _, sc := range scenarios {
		if sc.ID <= 0 {
			errs = append(errs, fmt.Sprintf("scenario %q: ID must be > 0, got %d", sc.Title, sc.ID))
		}
		if scenarioIDs[sc.ID] {
			errs = append(errs, fmt.Sprintf("duplicate scenario ID: %d", sc.ID))
		}
		scenarioIDs[sc.ID] = true
		if sc.Title == "" {
			errs = append(errs, fmt.Sprintf("scenario %d: empty title", sc.ID))
		}

		// Node keys must be unique within the scenario.
		nodeKeys := make(map[string]bool, len(sc.Nodes))
		for _, n := range sc.Nodes {
			if n.Key == "" {
				errs = append(errs, fmt.Sprintf("scenario %d: node with empty key", sc.ID))
				continue
			}
			if nodeKeys[n.Key] {
				errs = append(errs, fmt.Sprintf("scenario %d: duplicate node key %q", sc.ID, n.Key))
			}
			nodeKeys[n.Key] = true
		}

		if !nodeKeys[StartKey] {
			errs = append(errs, fmt.Sprintf("scenario %d: no %q node", sc.ID, StartKey))
		}

		hasEnding := false
		for _, n := range sc.Nodes {
			if n.IsEnding {
				hasEnding = true
			}
			for _, c := range n.Choices {
				if choiceIDs[c.ID] {
					errs = append(errs, fmt.Sprintf("duplicate choice ID: %d", c.ID))
				}
				choiceIDs[c.ID] = true
				if c.Label == "" {
					errs = append(errs, fmt.Sprintf("scenario %d node %q: choice %d has empty label", sc.ID, n.Key, c.ID))
				}
				if !nodeKeys[c.NextNodeKey] {
					errs = append(errs, fmt.Sprintf("scenario %d node %q: choice %d targets nonexistent node %q", sc.ID, n.Key, c.ID, c.NextNodeKey))
				}
				if c.IsBestPractice && c.IsValidAlternative {
					errs = append(errs, fmt.Sprintf("scenario %d node %q: choice %d flagged both best-practice and valid-alternative", sc.ID, n.Key, c.ID))
				}
			}
		}
		if !hasEnding {
			errs = append(errs, fmt.Sprintf("scenario %d: no ending node", sc.ID))
		}

		// Every node must be reachable from "start" by following choices.
		for _, key := range unreachableNodes(sc, nodeKeys) {
			errs = append(errs, fmt.Sprintf("scenario %d: node %q unreachable from %q", sc.ID, key, StartKey))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("scenario validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// unreachableNodes walks the graph from "start" and returns the keys of
// nodes no choice path reaches. Cycles are allowed (retry loops are a valid
// authoring device); only disconnected nodes are flagged.
func unreachableNodes(sc Scenario, nodeKeys map[string]bool) []string {
	if !nodeKeys[StartKey] {
		return nil // already reported as a missing start node
	}

	byKey := make(map[string]*Node, len(sc.Nodes))
	for i := range sc.Nodes {
		byKey[sc.Nodes[i].Key] = &sc.Nodes[i]
	}

	visited := map[string]bool{StartKey: true}
	queue := []string{StartKey}
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		n := byKey[key]
		if n == nil {
			continue
		}
		for _, c := range n.Choices {
			if !visited[c.NextNodeKey] && nodeKeys[c.NextNodeKey] {
				visited[c.NextNodeKey] = true
				queue = append(queue, c.NextNodeKey)
			}
		}
	}

	var unreachable []string
	for _, n := range sc.Nodes {
		if !visited[n.Key] {
			unreachable = append(unreachable, n.Key)
		}
	}
	return unreachable
}
