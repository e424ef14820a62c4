package registry

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz_test_b", func() Game { return &stubGame{id: "zz_test_b"} })
	Register("zz_test_a", func() Game { return &stubGame{id: "zz_test_a"} })

	if !Exists("zz_test_a") {
		t.Fatal("expected zz_test_a to exist")
	}
	if Exists("zz_test_missing") {
		t.Error("unexpected zz_test_missing")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "zz_test_a" && info.Title != "Stub zz_test_a" {
			t.Errorf("Title = %q", info.Title)
		}
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "zz_test_a":
			ia = i
		case "zz_test_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() not sorted by ID: %v", ids)
	}

	g, err := Create("zz_test_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_test_b" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := Create("zz_test_missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_test_dup", func() Game { return &stubGame{id: "zz_test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_test_dup", func() Game { return &stubGame{id: "zz_test_dup"} })
}
