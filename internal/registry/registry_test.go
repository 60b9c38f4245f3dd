package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset() error { return nil }
func (g *stubGame) Advance(core.Frame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Draw(core.Canvas) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Bounds() (w, h float64) { return 100, 50 }

func stubFactory(id, title string) Factory {
	return func() Game { return &stubGame{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_alpha", stubFactory("test_alpha", "Alpha"))

	if !Exists("test_alpha") {
		t.Fatal("expected test_alpha to be registered")
	}

	g, err := Create("test_alpha")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "test_alpha" || g.Title() != "Alpha" {
		t.Errorf("unexpected game %q/%q", g.ID(), g.Title())
	}

	other, _ := Create("test_alpha")
	if other == g {
		t.Error("Create must return a new instance each call")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("test_missing")
	if err == nil {
		t.Fatal("expected error for unknown game")
	}
	if !strings.Contains(err.Error(), "test_missing") {
		t.Errorf("error should name the game, got %v", err)
	}
	if Exists("test_missing") {
		t.Error("Exists reported an unregistered game")
	}
}

func TestListSorted(t *testing.T) {
	Register("test_zulu", stubFactory("test_zulu", "Zulu"))
	Register("test_bravo", stubFactory("test_bravo", "Bravo"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("list not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "test_bravo" {
			found = true
			if info.Title != "Bravo" {
				t.Errorf("expected title Bravo, got %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("test_bravo missing from List")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", stubFactory("test_dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test_dup", stubFactory("test_dup", "Dup"))
}
