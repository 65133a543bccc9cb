package project

import (
	"errors"
	"strings"
	"testing"

	"github.com/imagenav/imagenav/internal/model"
)

func TestStore_EnsureScene(t *testing.T) {
	st := NewStore()

	s, err := st.EnsureScene("hall", "hall.png")
	if err != nil {
		t.Fatalf("EnsureScene failed: %v", err)
	}
	if s.Name != "hall" {
		t.Errorf("Expected scene name 'hall', got '%s'", s.Name)
	}
	if s.Background != "hall.png" {
		t.Errorf("Expected background 'hall.png', got '%s'", s.Background)
	}
	if !st.Has("hall") {
		t.Error("Expected store to contain 'hall'")
	}
	if st.Len() != 1 {
		t.Errorf("Expected 1 scene, got %d", st.Len())
	}
}

func TestStore_EnsureScene_Idempotent(t *testing.T) {
	st := NewStore()

	first, err := st.EnsureScene("a", "bg1.png")
	if err != nil {
		t.Fatalf("EnsureScene failed: %v", err)
	}
	if _, err := st.AddHotspot("a", model.Hotspot{Coords: model.Rect{W: 10, H: 10}, Target: "b"}); err != nil {
		t.Fatalf("AddHotspot failed: %v", err)
	}

	// Ensuring the same name with a different background reuses the scene
	// unchanged: the background stays and the hotspot list is untouched.
	second, err := st.EnsureScene("a", "bg2.png")
	if err != nil {
		t.Fatalf("EnsureScene failed on existing scene: %v", err)
	}
	if second != first {
		t.Error("Expected the existing scene to be returned")
	}
	if second.Background != "bg1.png" {
		t.Errorf("Expected background to stay 'bg1.png', got '%s'", second.Background)
	}
	if len(second.Buttons) != 1 {
		t.Errorf("Expected hotspot list to be unaffected, got %d hotspots", len(second.Buttons))
	}
	if st.Len() != 1 {
		t.Errorf("Expected 1 scene after repeat ensure, got %d", st.Len())
	}
}

func TestStore_EnsureScene_EmptyName(t *testing.T) {
	st := NewStore()

	if _, err := st.EnsureScene("", "bg.png"); !errors.Is(err, ErrInvalidSceneName) {
		t.Errorf("Expected ErrInvalidSceneName, got %v", err)
	}
	if st.Len() != 0 {
		t.Errorf("Expected store to stay empty, got %d scenes", st.Len())
	}
}

func TestStore_AddHotspot(t *testing.T) {
	st := NewStore()
	if _, err := st.EnsureScene("hall", "hall.png"); err != nil {
		t.Fatalf("EnsureScene failed: %v", err)
	}

	h, err := st.AddHotspot("hall", model.Hotspot{
		Coords: model.Rect{X: 10, Y: 10, W: 50, H: 50},
		Target: "kitchen",
	})
	if err != nil {
		t.Fatalf("AddHotspot failed: %v", err)
	}
	if h.ID == "" {
		t.Error("Expected a runtime ID to be assigned")
	}
	if !strings.HasPrefix(h.ID, HotspotIDPrefix) {
		t.Errorf("Expected ID to start with %q, got '%s'", HotspotIDPrefix, h.ID)
	}

	scene, _ := st.Scene("hall")
	if len(scene.Buttons) != 1 {
		t.Fatalf("Expected 1 hotspot on the scene, got %d", len(scene.Buttons))
	}
	if scene.Buttons[0].Target != "kitchen" {
		t.Errorf("Expected target 'kitchen', got '%s'", scene.Buttons[0].Target)
	}
}

func TestStore_AddHotspot_UnknownScene(t *testing.T) {
	st := NewStore()

	_, err := st.AddHotspot("nowhere", model.Hotspot{Target: "hall"})
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestStore_Names_InsertionOrder(t *testing.T) {
	st := NewStore()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := st.EnsureScene(name, name+".png"); err != nil {
			t.Fatalf("EnsureScene(%s) failed: %v", name, err)
		}
	}
	// A repeated ensure must not move the scene.
	if _, err := st.EnsureScene("zeta", "other.png"); err != nil {
		t.Fatalf("EnsureScene failed: %v", err)
	}

	names := st.Names()
	expected := []string{"zeta", "alpha", "mid"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Names()[%d] = %s, expected %s", i, names[i], name)
		}
	}
	if st.First() != "zeta" {
		t.Errorf("First() = %s, expected zeta", st.First())
	}
}

func TestStore_First_Empty(t *testing.T) {
	st := NewStore()
	if first := st.First(); first != "" {
		t.Errorf("First() on empty store = %q, expected empty string", first)
	}
}
