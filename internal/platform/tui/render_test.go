package tui

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/vovakirdan/highscore/internal/core"
)

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDarkGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "≈≈≈", core.ColorBrightBlue)
	s.DrawTextColored(3, 0, "♣", core.ColorDarkGreen)
	s.DrawText(0, 2, "Score: 5")

	out := RenderScreen(s)

	testutil.AssertEqual(t, "rows", strings.Count(out, "\n"), 2)
	for _, want := range []string{"≈≈≈", "♣", "Score: 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
}
