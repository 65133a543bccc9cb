package nav

import (
	"errors"
	"testing"
)

func lookupOf(names ...string) SceneLookup {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return LookupFunc(func(name string) bool { return set[name] })
}

func TestNavigator_InitialState(t *testing.T) {
	n := New(lookupOf("hall"))

	if name, ok := n.Current(); ok || name != "" {
		t.Errorf("Current() = (%q, %v), expected no current scene", name, ok)
	}
	if n.CanGoBack() {
		t.Error("Expected CanGoBack to be false initially")
	}
}

func TestNavigator_GoTo(t *testing.T) {
	n := New(lookupOf("hall", "kitchen"))

	if err := n.GoTo("hall"); err != nil {
		t.Fatalf("GoTo failed: %v", err)
	}
	if name, ok := n.Current(); !ok || name != "hall" {
		t.Errorf("Current() = (%q, %v), expected ('hall', true)", name, ok)
	}
	// The first entry comes from the unset state, so nothing is pushed.
	if len(n.History()) != 0 {
		t.Errorf("Expected empty history after first GoTo, got %v", n.History())
	}

	if err := n.GoTo("kitchen"); err != nil {
		t.Fatalf("GoTo failed: %v", err)
	}
	history := n.History()
	if len(history) != 1 || history[0] != "hall" {
		t.Errorf("Expected history ['hall'], got %v", history)
	}
}

func TestNavigator_GoTo_Unknown(t *testing.T) {
	n := New(lookupOf("hall"))
	n.Reset("hall")

	err := n.GoTo("attic")
	if !errors.Is(err, ErrSceneNotFound) {
		t.Fatalf("Expected ErrSceneNotFound, got %v", err)
	}
	if name, _ := n.Current(); name != "hall" {
		t.Errorf("Expected current scene to stay 'hall', got '%s'", name)
	}
	if len(n.History()) != 0 {
		t.Errorf("Expected history unchanged, got %v", n.History())
	}
}

func TestNavigator_GoTo_SelfLoop(t *testing.T) {
	// Navigating to the current scene is a regular forward step.
	n := New(lookupOf("hall"))
	n.Reset("hall")

	if err := n.GoTo("hall"); err != nil {
		t.Fatalf("GoTo failed: %v", err)
	}
	history := n.History()
	if len(history) != 1 || history[0] != "hall" {
		t.Errorf("Expected history ['hall'] after self-loop, got %v", history)
	}

	back, err := n.Back()
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if back != "hall" {
		t.Errorf("Back() = %s, expected hall", back)
	}
}

func TestNavigator_Back(t *testing.T) {
	n := New(lookupOf("hall", "kitchen", "attic"))
	n.Reset("hall")
	if err := n.GoTo("kitchen"); err != nil {
		t.Fatalf("GoTo failed: %v", err)
	}
	if err := n.GoTo("attic"); err != nil {
		t.Fatalf("GoTo failed: %v", err)
	}

	back, err := n.Back()
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if back != "kitchen" {
		t.Errorf("Back() = %s, expected kitchen", back)
	}
	history := n.History()
	if len(history) != 1 || history[0] != "hall" {
		t.Errorf("Expected history ['hall'], got %v", history)
	}

	back, err = n.Back()
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if back != "hall" {
		t.Errorf("Back() = %s, expected hall", back)
	}
	if n.CanGoBack() {
		t.Error("Expected CanGoBack to be false after popping everything")
	}
}

func TestNavigator_Back_EmptyHistory(t *testing.T) {
	n := New(lookupOf("hall"))
	n.Reset("hall")

	if _, err := n.Back(); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("Expected ErrNoHistory, got %v", err)
	}
	if name, _ := n.Current(); name != "hall" {
		t.Errorf("Expected current scene to stay 'hall', got '%s'", name)
	}
}

func TestNavigator_Reset(t *testing.T) {
	n := New(lookupOf("hall", "kitchen"))
	n.Reset("hall")
	if err := n.GoTo("kitchen"); err != nil {
		t.Fatalf("GoTo failed: %v", err)
	}

	n.Reset("hall")

	if name, ok := n.Current(); !ok || name != "hall" {
		t.Errorf("Current() = (%q, %v), expected ('hall', true)", name, ok)
	}
	if len(n.History()) != 0 {
		t.Errorf("Expected history cleared by Reset, got %v", n.History())
	}
}

func TestNavigator_HistoryInvariant(t *testing.T) {
	// After a reset, history length equals successful GoTo calls minus
	// successful Back calls, and failed calls change nothing.
	n := New(lookupOf("a", "b", "c"))
	n.Reset("a")

	goTos, backs := 0, 0
	steps := []struct {
		op   string
		name string
		ok   bool
	}{
		{"goto", "b", true},
		{"goto", "c", true},
		{"goto", "missing", false},
		{"back", "", true},
		{"goto", "b", true},
		{"back", "", true},
		{"back", "", true},
		{"back", "", false},
	}

	for i, step := range steps {
		var err error
		switch step.op {
		case "goto":
			err = n.GoTo(step.name)
			if err == nil {
				goTos++
			}
		case "back":
			_, err = n.Back()
			if err == nil {
				backs++
			}
		}
		if (err == nil) != step.ok {
			t.Fatalf("step %d (%s %s): err = %v, expected ok=%v", i, step.op, step.name, err, step.ok)
		}
		if len(n.History()) != goTos-backs {
			t.Fatalf("step %d: history length %d, expected %d", i, len(n.History()), goTos-backs)
		}
	}
}

func TestNavigator_History_ReturnsCopy(t *testing.T) {
	n := New(lookupOf("hall", "kitchen"))
	n.Reset("hall")
	if err := n.GoTo("kitchen"); err != nil {
		t.Fatalf("GoTo failed: %v", err)
	}

	history := n.History()
	history[0] = "changed"

	if n.History()[0] != "hall" {
		t.Error("Expected History to return a copy")
	}
}

func TestLookupFunc(t *testing.T) {
	lookup := LookupFunc(func(name string) bool { return name == "yes" })

	if !lookup.Has("yes") {
		t.Error("Expected Has('yes') to be true")
	}
	if lookup.Has("no") {
		t.Error("Expected Has('no') to be false")
	}
}
