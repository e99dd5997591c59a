package scenario

import (
	"strings"
	"testing"
)

// minimal returns the smallest scenario that passes validation. Tests mutate
// a copy to introduce one defect at a time.
func minimal() Scenario {
	return Scenario{
		ID:    50,
		Title: "Minimal",
		Nodes: []Node{
			{
				Key:     StartKey,
				Content: "Something happens.",
				Choices: []Choice{
					{ID: 5001, Label: "Act", NextNodeKey: "end", IsBestPractice: true},
				},
			},
			{Key: "end", Content: "It is over.", IsEnding: true},
		},
	}
}

func TestValidateMinimalScenario(t *testing.T) {
	if err := validateScenarios([]Scenario{minimal()}); err != nil {
		t.Fatalf("minimal scenario rejected: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Scenario)
		want   string
	}{
		{
			name:   "zero ID",
			mutate: func(sc *Scenario) { sc.ID = 0 },
			want:   "ID must be > 0",
		},
		{
			name:   "empty title",
			mutate: func(sc *Scenario) { sc.Title = "" },
			want:   "empty title",
		},
		{
			name:   "missing start node",
			mutate: func(sc *Scenario) { sc.Nodes[0].Key = "opening" },
			want:   `no "start" node`,
		},
		{
			name: "duplicate node key",
			mutate: func(sc *Scenario) {
				sc.Nodes = append(sc.Nodes, Node{Key: "end", Content: "again", IsEnding: true})
			},
			want: "duplicate node key",
		},
		{
			name:   "dangling choice target",
			mutate: func(sc *Scenario) { sc.Nodes[0].Choices[0].NextNodeKey = "nowhere" },
			want:   "nonexistent node",
		},
		{
			name:   "empty choice label",
			mutate: func(sc *Scenario) { sc.Nodes[0].Choices[0].Label = "" },
			want:   "empty label",
		},
		{
			name: "both classification flags",
			mutate: func(sc *Scenario) {
				sc.Nodes[0].Choices[0].IsValidAlternative = true
			},
			want: "flagged both",
		},
		{
			name:   "no ending node",
			mutate: func(sc *Scenario) { sc.Nodes[1].IsEnding = false },
			want:   "no ending node",
		},
		{
			name: "unreachable node",
			mutate: func(sc *Scenario) {
				sc.Nodes = append(sc.Nodes, Node{Key: "island", Content: "isolated", IsEnding: true})
			},
			want: "unreachable",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sc := minimal()
			c.mutate(&sc)
			err := validateScenarios([]Scenario{sc})
			if err == nil {
				t.Fatal("defective scenario accepted")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Errorf("error %q does not mention %q", err, c.want)
			}
		})
	}
}

func TestValidateDuplicateScenarioID(t *testing.T) {
	a := minimal()
	b := minimal()
	b.Nodes[0].Choices[0].ID = 5002 // keep choice IDs distinct
	err := validateScenarios([]Scenario{a, b})
	if err == nil || !strings.Contains(err.Error(), "duplicate scenario ID") {
		t.Errorf("err = %v, want duplicate scenario ID", err)
	}
}

func TestValidateDuplicateChoiceIDAcrossScenarios(t *testing.T) {
	a := minimal()
	b := minimal()
	b.ID = 51
	err := validateScenarios([]Scenario{a, b})
	if err == nil || !strings.Contains(err.Error(), "duplicate choice ID") {
		t.Errorf("err = %v, want duplicate choice ID", err)
	}
}

// Retry loops are a legitimate authoring device: a choice may point back at
// an earlier node without tripping the reachability check.
func TestValidateAllowsCycles(t *testing.T) {
	sc := minimal()
	sc.Nodes[0].Choices = append(sc.Nodes[0].Choices, Choice{
		ID: 5003, Label: "Hesitate", NextNodeKey: StartKey,
	})
	if err := validateScenarios([]Scenario{sc}); err != nil {
		t.Fatalf("cycle rejected: %v", err)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	sc := minimal()
	sc.Title = ""
	sc.Nodes[0].Choices[0].Label = ""
	sc.Nodes[1].IsEnding = false

	err := validateScenarios([]Scenario{sc})
	if err == nil {
		t.Fatal("defective scenario accepted")
	}
	for _, want := range []string{"empty title", "empty label", "no ending node"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("combined error missing %q: %v", want, err)
		}
	}
}
