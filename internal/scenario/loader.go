package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// packSchema is the JSON Schema every external scenario pack file must
// satisfy before structural validation runs. Shape errors are caught here;
// graph errors (dangling edges, unreachable nodes) by validateScenarios.
const packSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["id", "title", "nodes"],
	"properties": {
		"id": {"type": "integer", "minimum": 1},
		"title": {"type": "string", "minLength": 1},
		"category": {"type": "string"},
		"difficulty": {"enum": ["intro", "standard", "complex"]},
		"estimated_mins": {"type": "integer", "minimum": 0},
		"nodes": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["key", "content"],
				"properties": {
					"key": {"type": "string", "minLength": 1},
					"content": {"type": "string", "minLength": 1},
					"question": {"type": "string"},
					"is_ending": {"type": "boolean"},
					"client_status_impact": {"type": "integer", "minimum": -100, "maximum": 100},
					"wellbeing_impact": {"type": "integer", "minimum": -100, "maximum": 100},
					"choices": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["id", "label", "next_node_key"],
							"properties": {
								"id": {"type": "integer", "minimum": 1},
								"label": {"type": "string", "minLength": 1},
								"next_node_key": {"type": "string", "minLength": 1},
								"is_best_practice": {"type": "boolean"},
								"is_valid_alternative": {"type": "boolean"},
								"feedback": {"type": "string"}
							}
						}
					}
				}
			}
		}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledPackSchema compiles the pack schema on first use.
func compiledPackSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(packSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://scenario-pack.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://scenario-pack.json")
	})
	return compiledSchema, compileErr
}

// packFile mirrors the JSON shape of an authored scenario pack.
type packFile struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Category      string     `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedMins int        `json:"estimated_mins"`
	Nodes         []struct {
		Key                string `json:"key"`
		Content            string `json:"content"`
		Question           string `json:"question"`
		IsEnding           bool   `json:"is_ending"`
		ClientStatusImpact int    `json:"client_status_impact"`
		WellbeingImpact    int    `json:"wellbeing_impact"`
		Choices            []struct {
			ID                 int    `json:"id"`
			Label              string `json:"label"`
			NextNodeKey        string `json:"next_node_key"`
			IsBestPractice     bool   `json:"is_best_practice"`
			IsValidAlternative bool   `json:"is_valid_alternative"`
			Feedback           string `json:"feedback"`
		} `json:"choices"`
	} `json:"nodes"`
}

// LoadFile parses a scenario pack file, validates it against the pack
// schema, and returns the scenario. The result still needs Register to
// pass structural validation against the loaded set.
func LoadFile(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read pack %s: %w", path, err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Scenario{}, fmt.Errorf("pack %s: invalid JSON: %w", path, err)
	}

	schema, err := compiledPackSchema()
	if err != nil {
		return Scenario{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return Scenario{}, fmt.Errorf("pack %s: schema validation failed: %w", path, err)
	}

	var pf packFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return Scenario{}, fmt.Errorf("pack %s: decode: %w", path, err)
	}
	return pf.toScenario(), nil
}

// LoadAndRegister loads each pack file and registers the scenarios,
// rejecting the whole batch if any file or the combined graph is invalid.
func LoadAndRegister(paths ...string) error {
	scenarios := make([]Scenario, 0, len(paths))
	for _, p := range paths {
		sc, err := LoadFile(p)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, sc)
	}
	return Register(scenarios...)
}

func (pf packFile) toScenario() Scenario {
	sc := Scenario{
		ID:            pf.ID,
		Title:         pf.Title,
		Category:      pf.Category,
		Difficulty:    pf.Difficulty,
		EstimatedMins: pf.EstimatedMins,
	}
	if sc.Difficulty == "" {
		sc.Difficulty = DifficultyStandard
	}
	for _, n := range pf.Nodes {
		node := Node{
			Key:                n.Key,
			Content:            n.Content,
			Question:           n.Question,
			IsEnding:           n.IsEnding,
			ClientStatusImpact: n.ClientStatusImpact,
			WellbeingImpact:    n.WellbeingImpact,
		}
		for _, c := range n.Choices {
			node.Choices = append(node.Choices, Choice{
				ID:                 c.ID,
				Label:              c.Label,
				NextNodeKey:        c.NextNodeKey,
				IsBestPractice:     c.IsBestPractice,
				IsValidAlternative: c.IsValidAlternative,
				Feedback:           c.Feedback,
			})
		}
		sc.Nodes = append(sc.Nodes, node)
	}
	return sc
}
