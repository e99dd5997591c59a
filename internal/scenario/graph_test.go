package scenario

import (
	"strings"
	"testing"
)

func TestSeedLibraryLoads(t *testing.T) {
	all := All()
	if len(all) < 3 {
		t.Fatalf("library has %d scenarios, want at least 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("All() not ordered by ID: %d before %d", all[i-1].ID, all[i].ID)
		}
	}
	if err := Validate(); err != nil {
		t.Errorf("loaded graph invalid: %v", err)
	}
}

func TestGet(t *testing.T) {
	sc, err := Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if sc.Title == "" {
		t.Error("scenario 1 has empty title")
	}

	if _, err := Get(999); err == nil {
		t.Error("Get(999) succeeded for unknown scenario")
	}
}

func TestGetNode(t *testing.T) {
	n, err := GetNode(1, StartKey)
	if err != nil {
		t.Fatalf("GetNode(1, start): %v", err)
	}
	if n.ScenarioID != 1 {
		t.Errorf("ScenarioID = %d, want 1", n.ScenarioID)
	}
	if len(n.Choices) == 0 {
		t.Error("start node has no choices")
	}
	if n.IsEnding {
		t.Error("start node flagged as ending")
	}

	if _, err := GetNode(1, "no_such_node"); err == nil {
		t.Error("GetNode succeeded for unknown key")
	}
	if _, err := GetNode(999, StartKey); err == nil {
		t.Error("GetNode succeeded for unknown scenario")
	}
}

func TestStartNode(t *testing.T) {
	n, err := StartNode(2)
	if err != nil {
		t.Fatalf("StartNode(2): %v", err)
	}
	if n.Key != StartKey {
		t.Errorf("Key = %q, want %q", n.Key, StartKey)
	}
}

func TestGetChoice(t *testing.T) {
	c, err := GetChoice(101)
	if err != nil {
		t.Fatalf("GetChoice(101): %v", err)
	}
	if c.ScenarioID != 1 {
		t.Errorf("ScenarioID = %d, want 1", c.ScenarioID)
	}
	if c.NodeKey != StartKey {
		t.Errorf("NodeKey = %q, want %q", c.NodeKey, StartKey)
	}
	if c.Classification() != BestPractice {
		t.Errorf("Classification = %q, want %q", c.Classification(), BestPractice)
	}

	if _, err := GetChoice(99999); err == nil {
		t.Error("GetChoice succeeded for unknown ID")
	}
}

func TestChoicesForNode(t *testing.T) {
	choices := ChoicesForNode(1, StartKey)
	if len(choices) != 3 {
		t.Fatalf("start node has %d choices, want 3", len(choices))
	}
	// Authored order is presentation order.
	if choices[0].ID != 101 || choices[1].ID != 102 || choices[2].ID != 103 {
		t.Errorf("choice order = [%d %d %d], want [101 102 103]",
			choices[0].ID, choices[1].ID, choices[2].ID)
	}

	if got := ChoicesForNode(1, "no_such_node"); got != nil {
		t.Errorf("unknown node returned %d choices, want nil", len(got))
	}
}

func TestEveryEndingHasNoChoices(t *testing.T) {
	for _, sc := range All() {
		for _, n := range sc.Nodes {
			if n.IsEnding && len(n.Choices) > 0 {
				t.Errorf("scenario %d node %q: ending node has %d choices", sc.ID, n.Key, len(n.Choices))
			}
		}
	}
}

func TestRegisterRejectsConflicts(t *testing.T) {
	before := len(All())

	// Colliding with a seed scenario ID must leave the graph untouched.
	err := Register(Scenario{
		ID:    1,
		Title: "Impostor",
		Nodes: []Node{
			{Key: StartKey, Choices: []Choice{{ID: 7001, Label: "x", NextNodeKey: "end"}}},
			{Key: "end", IsEnding: true},
		},
	})
	if err == nil {
		t.Fatal("Register accepted a duplicate scenario ID")
	}
	if !strings.Contains(err.Error(), "duplicate scenario ID") {
		t.Errorf("err = %v, want duplicate scenario ID", err)
	}
	if len(All()) != before {
		t.Errorf("failed Register changed the graph: %d scenarios, want %d", len(All()), before)
	}
}

func TestRegisterAddsScenario(t *testing.T) {
	err := Register(Scenario{
		ID:         80,
		Title:      "Registered",
		Category:   "fixture",
		Difficulty: DifficultyIntro,
		Nodes: []Node{
			{
				Key:     StartKey,
				Content: "A registered situation.",
				Choices: []Choice{{ID: 8001, Label: "Finish", NextNodeKey: "end", IsBestPractice: true}},
			},
			{Key: "end", Content: "Done.", IsEnding: true},
		},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	sc, err := Get(80)
	if err != nil {
		t.Fatalf("Get(80): %v", err)
	}
	if sc.Title != "Registered" {
		t.Errorf("Title = %q, want %q", sc.Title, "Registered")
	}
	if _, err := GetChoice(8001); err != nil {
		t.Errorf("GetChoice(8001): %v", err)
	}
}

// Registration order is whatever the command line supplies; lookups must
// not depend on the combined set already being ascending by ID.
func TestRegisterDescendingIDs(t *testing.T) {
	fixture := func(id int, title, ending string, choiceID int) Scenario {
		return Scenario{
			ID:         id,
			Title:      title,
			Category:   "fixture",
			Difficulty: DifficultyIntro,
			Nodes: []Node{
				{
					Key:     StartKey,
					Content: title + " begins.",
					Choices: []Choice{{ID: choiceID, Label: "Finish", NextNodeKey: ending, IsBestPractice: true}},
				},
				{Key: ending, Content: title + " ends.", IsEnding: true},
			},
		}
	}

	// Higher ID first, then lower.
	if err := Register(fixture(85, "High", "high_end", 8501)); err != nil {
		t.Fatalf("Register(85): %v", err)
	}
	if err := Register(fixture(82, "Low", "low_end", 8201)); err != nil {
		t.Fatalf("Register(82): %v", err)
	}

	high, err := Get(85)
	if err != nil {
		t.Fatalf("Get(85): %v", err)
	}
	if high.ID != 85 || high.Title != "High" {
		t.Errorf("Get(85) = ID %d %q, want ID 85 %q", high.ID, high.Title, "High")
	}
	low, err := Get(82)
	if err != nil {
		t.Fatalf("Get(82): %v", err)
	}
	if low.ID != 82 || low.Title != "Low" {
		t.Errorf("Get(82) = ID %d %q, want ID 82 %q", low.ID, low.Title, "Low")
	}

	// Node and choice indices must agree with the scenario index.
	n, err := GetNode(85, "high_end")
	if err != nil {
		t.Fatalf("GetNode(85, high_end): %v", err)
	}
	if n.ScenarioID != 85 {
		t.Errorf("node ScenarioID = %d, want 85", n.ScenarioID)
	}
	c, err := GetChoice(8201)
	if err != nil {
		t.Fatalf("GetChoice(8201): %v", err)
	}
	if c.ScenarioID != 82 || c.NextNodeKey != "low_end" {
		t.Errorf("choice 8201 = scenario %d target %q, want scenario 82 target %q",
			c.ScenarioID, c.NextNodeKey, "low_end")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		best, valid bool
		want        Classification
	}{
		{true, false, BestPractice},
		{false, true, ValidAlternative},
		{false, false, Suboptimal},
	}
	for _, c := range cases {
		if got := Classify(c.best, c.valid); got != c.want {
			t.Errorf("Classify(%v, %v) = %q, want %q", c.best, c.valid, got, c.want)
		}
	}
}
