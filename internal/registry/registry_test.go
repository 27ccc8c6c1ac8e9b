package registry

import (
	"testing"

	"github.com/vovakirdan/escapezone/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if got := Title("zz_stub_a"); got != "Stub zz_stub_a" {
		t.Errorf("Title() = %q", got)
	}
	if got := Title("missing"); got != "missing" {
		t.Errorf("Title() for unknown id = %q, expected id back", got)
	}

	list := List()
	ia, ib := -1, -1
	for i, info := range list {
		switch info.ID {
		case "zz_stub_a":
			ia = i
		case "zz_stub_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() should contain both stubs sorted by ID, got %v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() should fail for unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
