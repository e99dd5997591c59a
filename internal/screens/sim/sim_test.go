package sim

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hollisv/caresim/internal/engine"
	"github.com/hollisv/caresim/internal/store"
)

func testLearner() *store.Learner {
	return &store.Learner{ID: 1, Name: "asha", Organization: "northside"}
}

func testAttempt(nodeKey string) *store.Attempt {
	return &store.Attempt{
		ID:             1,
		LearnerID:      1,
		ScenarioID:     1,
		CurrentNodeKey: nodeKey,
		ClientStatus:   engine.MeterBaseline,
		Wellbeing:      engine.MeterBaseline,
	}
}

func TestNewPositionsOnCurrentNode(t *testing.T) {
	m := New(nil, testLearner(), testAttempt("start"))

	if m.node.Key != "start" {
		t.Errorf("node.Key = %q, want %q", m.node.Key, "start")
	}
	if len(m.menu.Items) != 3 {
		t.Errorf("len(menu.Items) = %d, want 3", len(m.menu.Items))
	}
	if m.phase != phaseChoosing {
		t.Errorf("phase = %v, want phaseChoosing", m.phase)
	}
}

func TestNewUnknownNodeClearsMenu(t *testing.T) {
	m := New(nil, testLearner(), testAttempt("vanished"))

	if m.err == nil {
		t.Fatal("expected error for unknown node key")
	}
	if len(m.menu.Items) != 0 {
		t.Errorf("len(menu.Items) = %d, want 0", len(m.menu.Items))
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command from enter on an empty menu")
	}
}

func TestAdvanceToUnknownNodeClearsMenu(t *testing.T) {
	m := New(nil, testLearner(), testAttempt("start"))
	if len(m.menu.Items) == 0 {
		t.Fatal("expected choices on the start node")
	}

	m.attempt.CurrentNodeKey = "vanished"
	m.enterNode(m.attempt.CurrentNodeKey)

	if m.err == nil {
		t.Fatal("expected error for unknown node key")
	}
	if len(m.menu.Items) != 0 {
		t.Errorf("len(menu.Items) = %d, want 0", len(m.menu.Items))
	}
	if m.result != nil {
		t.Error("expected stale feedback result to be cleared")
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command from enter after a failed advance")
	}
}
