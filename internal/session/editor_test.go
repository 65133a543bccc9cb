package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/imagenav/imagenav/internal/model"
	"github.com/imagenav/imagenav/internal/nav"
	"github.com/imagenav/imagenav/internal/project"
)

func TestEditor_OpenOrLoadScene(t *testing.T) {
	e := NewEditor()

	if _, err := e.OpenOrLoadScene("hall", "hall.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}

	if e.CurrentName() != "hall" {
		t.Errorf("Expected current scene 'hall', got '%s'", e.CurrentName())
	}
	if len(e.History()) != 0 {
		t.Errorf("Expected empty history, got %v", e.History())
	}
	if e.SceneCount() != 1 {
		t.Errorf("Expected 1 scene, got %d", e.SceneCount())
	}
}

func TestEditor_OpenOrLoadScene_KeepsCurrent(t *testing.T) {
	// Loading another background while a scene is current must not navigate:
	// the author may be preparing a target for a future hotspot.
	e := NewEditor()
	if _, err := e.OpenOrLoadScene("hall", "hall.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}

	if _, err := e.OpenOrLoadScene("kitchen", "kitchen.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}

	if e.CurrentName() != "hall" {
		t.Errorf("Expected current scene to stay 'hall', got '%s'", e.CurrentName())
	}
	if _, ok := e.Scene("kitchen"); !ok {
		t.Error("Expected 'kitchen' to be created")
	}
	if len(e.History()) != 0 {
		t.Errorf("Expected history unchanged, got %v", e.History())
	}
}

func TestEditor_BeginHotspotDraw(t *testing.T) {
	e := NewEditor()

	if err := e.BeginHotspotDraw(); !errors.Is(err, ErrNoActiveScene) {
		t.Errorf("Expected ErrNoActiveScene before any scene, got %v", err)
	}

	if _, err := e.OpenOrLoadScene("hall", "hall.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}
	if err := e.BeginHotspotDraw(); err != nil {
		t.Errorf("Expected drawing to be allowed with a current scene, got %v", err)
	}
}

func TestEditor_CommitHotspot(t *testing.T) {
	e := NewEditor()
	if _, err := e.OpenOrLoadScene("hall", "hall.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}

	h, err := e.CommitHotspot(model.Rect{X: 10, Y: 10, W: 50, H: 50}, "kitchen", "kitchen.png")
	if err != nil {
		t.Fatalf("CommitHotspot failed: %v", err)
	}

	// The target scene is auto-created as a stub.
	kitchen, ok := e.Scene("kitchen")
	if !ok {
		t.Fatal("Expected 'kitchen' to be auto-created")
	}
	if kitchen.Background != "kitchen.png" {
		t.Errorf("Expected stub background 'kitchen.png', got '%s'", kitchen.Background)
	}
	if len(kitchen.Buttons) != 0 {
		t.Errorf("Expected stub to have no hotspots, got %d", len(kitchen.Buttons))
	}

	hall, _ := e.Scene("hall")
	if len(hall.Buttons) != 1 {
		t.Fatalf("Expected 1 hotspot on 'hall', got %d", len(hall.Buttons))
	}
	if hall.Buttons[0].Target != "kitchen" {
		t.Errorf("Expected target 'kitchen', got '%s'", hall.Buttons[0].Target)
	}

	// Activating the new hotspot navigates and records history.
	if err := e.ActivateHotspot(h); err != nil {
		t.Fatalf("ActivateHotspot failed: %v", err)
	}
	if e.CurrentName() != "kitchen" {
		t.Errorf("Expected current scene 'kitchen', got '%s'", e.CurrentName())
	}
	history := e.History()
	if len(history) != 1 || history[0] != "hall" {
		t.Errorf("Expected history ['hall'], got %v", history)
	}
}

func TestEditor_CommitHotspot_NormalizesRect(t *testing.T) {
	e := NewEditor()
	if _, err := e.OpenOrLoadScene("hall", "hall.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}

	h, err := e.CommitHotspot(model.Rect{X: 60, Y: 60, W: -50, H: -50}, "kitchen", "kitchen.png")
	if err != nil {
		t.Fatalf("CommitHotspot failed: %v", err)
	}

	expected := model.Rect{X: 10, Y: 10, W: 50, H: 50}
	if h.Coords != expected {
		t.Errorf("Expected normalized coords %v, got %v", expected, h.Coords)
	}
}

func TestEditor_CommitHotspot_NoActiveScene(t *testing.T) {
	e := NewEditor()

	_, err := e.CommitHotspot(model.Rect{W: 10, H: 10}, "kitchen", "kitchen.png")
	if !errors.Is(err, ErrNoActiveScene) {
		t.Fatalf("Expected ErrNoActiveScene, got %v", err)
	}
	if e.SceneCount() != 0 {
		t.Errorf("Expected no scenes to be created, got %d", e.SceneCount())
	}
}

func TestEditor_GoBack(t *testing.T) {
	e := NewEditor()
	if _, err := e.OpenOrLoadScene("hall", "hall.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}
	h, err := e.CommitHotspot(model.Rect{X: 10, Y: 10, W: 50, H: 50}, "kitchen", "kitchen.png")
	if err != nil {
		t.Fatalf("CommitHotspot failed: %v", err)
	}
	if err := e.ActivateHotspot(h); err != nil {
		t.Fatalf("ActivateHotspot failed: %v", err)
	}

	name, err := e.GoBack()
	if err != nil {
		t.Fatalf("GoBack failed: %v", err)
	}
	if name != "hall" || e.CurrentName() != "hall" {
		t.Errorf("Expected to land on 'hall', got '%s'", e.CurrentName())
	}
	if len(e.History()) != 0 {
		t.Errorf("Expected empty history, got %v", e.History())
	}

	if _, err := e.GoBack(); !errors.Is(err, nav.ErrNoHistory) {
		t.Fatalf("Expected ErrNoHistory, got %v", err)
	}
	if e.CurrentName() != "hall" {
		t.Errorf("Expected current scene to stay 'hall', got '%s'", e.CurrentName())
	}
}

func TestEditor_ActivateHotspot_MissingTarget(t *testing.T) {
	e := NewEditor()
	if _, err := e.OpenOrLoadScene("hall", "hall.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}

	err := e.ActivateHotspot(model.Hotspot{Target: "attic"})
	if !errors.Is(err, nav.ErrSceneNotFound) {
		t.Fatalf("Expected ErrSceneNotFound, got %v", err)
	}
	if e.CurrentName() != "hall" {
		t.Errorf("Expected current scene to stay 'hall', got '%s'", e.CurrentName())
	}
}

func TestEditor_GoToScene(t *testing.T) {
	e := NewEditor()
	if _, err := e.OpenOrLoadScene("hall", "hall.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}
	if _, err := e.OpenOrLoadScene("kitchen", "kitchen.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}

	if err := e.GoToScene("kitchen"); err != nil {
		t.Fatalf("GoToScene failed: %v", err)
	}
	if e.CurrentName() != "kitchen" {
		t.Errorf("Expected current scene 'kitchen', got '%s'", e.CurrentName())
	}
	history := e.History()
	if len(history) != 1 || history[0] != "hall" {
		t.Errorf("Expected history ['hall'], got %v", history)
	}
}

func TestEditor_SaveLoad(t *testing.T) {
	e := NewEditor()
	if _, err := e.OpenOrLoadScene("hall", "hall.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}
	if _, err := e.CommitHotspot(model.Rect{X: 1, Y: 2, W: 3, H: 4}, "kitchen", "kitchen.png"); err != nil {
		t.Fatalf("CommitHotspot failed: %v", err)
	}

	var buf bytes.Buffer
	if err := e.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := NewEditor()
	if err := loaded.Load(&buf); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	names := loaded.SceneNames()
	if len(names) != 2 || names[0] != "hall" || names[1] != "kitchen" {
		t.Errorf("Expected scenes [hall kitchen], got %v", names)
	}
	if loaded.CurrentName() != "hall" {
		t.Errorf("Expected first scene 'hall' to be current, got '%s'", loaded.CurrentName())
	}
	if len(loaded.History()) != 0 {
		t.Errorf("Expected empty history after load, got %v", loaded.History())
	}

	hall, _ := loaded.Scene("hall")
	if len(hall.Buttons) != 1 || hall.Buttons[0].Target != "kitchen" {
		t.Errorf("Expected hall's hotspot to survive the round trip, got %v", hall.Buttons)
	}
}

func TestEditor_Save_EmptyProject(t *testing.T) {
	e := NewEditor()

	var buf bytes.Buffer
	if err := e.Save(&buf); !errors.Is(err, project.ErrEmptyProject) {
		t.Errorf("Expected ErrEmptyProject, got %v", err)
	}
}

func TestEditor_Load_MalformedRetainsPrior(t *testing.T) {
	e := NewEditor()
	if _, err := e.OpenOrLoadScene("hall", "hall.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}

	err := e.Load(strings.NewReader(`{"scenes": {}}`))
	if !errors.Is(err, project.ErrMalformedProject) {
		t.Fatalf("Expected ErrMalformedProject, got %v", err)
	}

	// The prior project and navigation state survive the failed load.
	if e.CurrentName() != "hall" {
		t.Errorf("Expected current scene to stay 'hall', got '%s'", e.CurrentName())
	}
	if _, ok := e.Scene("hall"); !ok {
		t.Error("Expected prior project to be retained")
	}
}

func TestEditor_Load_ResetsHistory(t *testing.T) {
	e := NewEditor()
	if _, err := e.OpenOrLoadScene("hall", "hall.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}
	if _, err := e.OpenOrLoadScene("kitchen", "kitchen.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}
	if err := e.GoToScene("kitchen"); err != nil {
		t.Fatalf("GoToScene failed: %v", err)
	}

	doc := `{"scenes": {"attic": {"background": "attic.png", "buttons": []}}}`
	if err := e.Load(strings.NewReader(doc)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if e.CurrentName() != "attic" {
		t.Errorf("Expected current scene 'attic', got '%s'", e.CurrentName())
	}
	if len(e.History()) != 0 {
		t.Errorf("Expected history cleared by load, got %v", e.History())
	}
	if _, ok := e.Scene("hall"); ok {
		t.Error("Expected the old project to be replaced wholesale")
	}
}

func TestEditor_ChangeCallback(t *testing.T) {
	e := NewEditor()
	fired := 0
	e.SetChangeCallback(func() { fired++ })

	if _, err := e.OpenOrLoadScene("hall", "hall.png"); err != nil {
		t.Fatalf("OpenOrLoadScene failed: %v", err)
	}
	if fired != 1 {
		t.Errorf("Expected 1 callback after open, got %d", fired)
	}

	// Failed operations never fire the callback.
	if err := e.GoToScene("missing"); err == nil {
		t.Fatal("Expected GoToScene to fail")
	}
	if fired != 1 {
		t.Errorf("Expected no callback on failure, got %d", fired)
	}

	if _, err := e.CommitHotspot(model.Rect{W: 5, H: 5}, "kitchen", "kitchen.png"); err != nil {
		t.Fatalf("CommitHotspot failed: %v", err)
	}
	if fired != 2 {
		t.Errorf("Expected 2 callbacks after commit, got %d", fired)
	}
}
