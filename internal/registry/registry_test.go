package registry

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/vovakirdan/highscore/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string {
	return g.id
}

func (g stubGame) Title() string {
	return "Stub " + g.id
}

func (g stubGame) Reset(core.RuntimeConfig) {}

func (g stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g stubGame) Render(*core.Screen) {}

func (g stubGame) State() core.GameState {
	return core.GameState{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return stubGame{"test_b"} })
	Register("test_a", func() Game { return stubGame{"test_a"} })

	testutil.AssertEqual(t, "exists", Exists("test_a"), true)
	testutil.AssertEqual(t, "missing", Exists("test_missing"), false)

	g, err := Create("test_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	testutil.AssertEqual(t, "id", g.ID(), "test_b")

	_, err = Create("test_missing")
	testutil.AssertErrorContains(t, err, "unknown game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error %v is not ErrUnknownGame", err)
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "test_a" || info.ID == "test_b" {
			ids = append(ids, info.ID)
			testutil.AssertEqual(t, "title", info.Title, "Stub "+info.ID)
		}
	}
	testutil.AssertEqual(t, "listed", len(ids), 2)
	testutil.AssertEqual(t, "sorted", ids[0], "test_a")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return stubGame{"test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test_dup", func() Game { return stubGame{"test_dup"} })
}

type describedGame struct{ stubGame }

func (describedGame) Blurb() string {
	return "Dig for points."
}

func TestRegisterReadsBlurb(t *testing.T) {
	Register("test_described", func() Game { return describedGame{stubGame{"test_described"}} })

	for _, info := range List() {
		if info.ID == "test_described" {
			testutil.AssertEqual(t, "blurb", info.Blurb, "Dig for points.")
			return
		}
	}
	t.Error("described game not listed")
}
