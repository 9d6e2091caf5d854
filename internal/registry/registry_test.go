package registry

import (
	"testing"

	"github.com/vovakirdan/mergetile/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return s.title }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("stub", func() Game {
		return &stubGame{id: "stub", title: "Stub Game"}
	})

	if !Exists("stub") {
		t.Fatal("registered game not found by Exists")
	}

	var info *GameInfo
	for _, g := range List() {
		if g.ID == "stub" {
			entry := g
			info = &entry
		}
	}
	if info == nil {
		t.Fatal("registered game missing from List")
	}
	if info.Title != "Stub Game" {
		t.Errorf("List title = %q, want %q", info.Title, "Stub Game")
	}

	g, err := Create("stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub" {
		t.Errorf("created game ID = %q, want %q", g.ID(), "stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create with unknown ID should fail")
	}
	if Exists("no-such-game") {
		t.Error("Exists reported an unregistered game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()

	Register("dup", func() Game { return &stubGame{id: "dup", title: "Dup"} })
	Register("dup", func() Game { return &stubGame{id: "dup", title: "Dup"} })
}
