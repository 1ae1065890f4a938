package highscore

import (
	"fmt"
	"math"

	"github.com/vovakirdan/highscore/internal/core"
	"github.com/vovakirdan/highscore/internal/games/highscore/level"
)

const (
	hudHeight   = 2
	minScreenH  = hudHeight + level.Size + 2
	sidePanelW  = 24
	panelMargin = 2
)

// minScreenW is the narrowest screen that fits the board box.
func minScreenW(cellWidth int) int {
	return level.Size*max(1, cellWidth) + 2
}

// Freshness bands used for shading.
const (
	lushAbove = 0.66
	wornAbove = 0.33
)

// glyph is how one tile is drawn: a main rune, the rune repeated across
// the rest of the cell, and a color.
type glyph struct {
	main  rune
	fill  rune
	color core.Color
}

// tileGlyph picks the glyph for a tile from its kind and freshness.
func tileGlyph(t level.Tile) glyph {
	f := float64(t.Freshness)
	band := 3 // dead
	switch {
	case f >= lushAbove:
		band = 0
	case f >= wornAbove:
		band = 1
	case f > 0:
		band = 2
	}

	switch t.Kind {
	case level.KindGrass:
		return [...]glyph{
			{'"', '"', core.ColorBrightGreen},
			{',', ',', core.ColorGreen},
			{'.', '.', core.ColorOlive},
			{'.', ' ', core.ColorBrown},
		}[band]
	case level.KindWater:
		return [...]glyph{
			{'≈', '≈', core.ColorBrightBlue},
			{'~', '~', core.ColorBlue},
			{'-', '-', core.ColorDeepBlue},
			{'_', '_', core.ColorSilt},
		}[band]
	case level.KindTree:
		return [...]glyph{
			{'♣', ' ', core.ColorBrightGreen},
			{'♣', ' ', core.ColorDarkGreen},
			{'¥', ' ', core.ColorOrange},
			{'|', ' ', core.ColorBrown},
		}[band]
	case level.KindRock:
		if t.CanWalk {
			return glyph{'∙', ' ', core.ColorDarkGray}
		}
		return [...]glyph{
			{'▲', ' ', core.ColorBrightWhite},
			{'▲', ' ', core.ColorWhite},
			{'▲', ' ', core.ColorGray},
			{'▲', ' ', core.ColorGray},
		}[band]
	default:
		return glyph{' ', ' ', core.ColorDefault}
	}
}

// playerGlyph is the rune for the player facing dir.
func playerGlyph(dir level.Vec) rune {
	switch dir {
	case level.North:
		return '↑'
	case level.West:
		return '←'
	case level.East:
		return '→'
	default:
		return '↓'
	}
}

// visible reports whether the tile at (row, col) is inside the spotlight.
func (g *Game) visible(row, col int) bool {
	r := g.cfg.Board.SpotlightRadius
	if r <= 0 {
		return true
	}
	return float64(core.DistSq(col, row, level.Center, level.Center)) < r*r
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", minScreenW(g.cfg.Board.CellWidth), minScreenH))
		return
	}

	boardRect := g.boardRect(dst)
	g.renderBoard(dst, boardRect)
	g.renderSidePanel(dst, boardRect)

	switch {
	case g.gameOver && g.finished:
		line2 := "Press R to play again"
		if g.rank >= 0 {
			line2 = fmt.Sprintf("Rank #%d! Press R to play again", g.rank+1)
		}
		g.renderOverlay(dst, fmt.Sprintf("Final Score: %d", g.score), line2)
	case g.gameOver:
		g.renderOverlay(dst, "Time's up!", fmt.Sprintf("Score: %d", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardRect is the box around the board, centered unless a side panel fits.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	cw := max(1, g.cfg.Board.CellWidth)
	w := level.Size*cw + 2
	h := level.Size + 2

	total := w
	if dst.Width() >= w+panelMargin+sidePanelW {
		total = w + panelMargin + sidePanelW
	}
	x := max(0, (dst.Width()-total)/2)
	return core.NewRect(x, hudHeight, w, h)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	secs := (g.ticksLeft + rate - 1) / rate

	hud := fmt.Sprintf(" %s | Score: %d  Time: %d:%02d", g.Title(), g.score, secs/60, secs%60)
	if g.board != nil {
		t := g.board.Tile(g.board.ResolveTile(g.facing))
		hud += fmt.Sprintf("  Facing: %s %d%%", t.Kind, int(math.Round(float64(t.Freshness)*100)))
	}
	if g.drilling {
		hud += "  DRILLING"
	}
	if g.lastEvent != "" {
		hud += "  [" + g.lastEvent + "]"
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the tiles inside r with the player at the centre.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r)
	cw := max(1, g.cfg.Board.CellWidth)

	g.board.Each(func(row, col int, _ level.TileRef, t level.Tile) {
		x := r.X + 1 + col*cw
		y := r.Y + 1 + row
		if !g.visible(row, col) {
			return
		}

		gl := tileGlyph(t)
		if row == level.Center && col == level.Center {
			gl = glyph{playerGlyph(g.facing), ' ', core.ColorBrightYellow}
			if g.drilling && (g.tick/6)%2 == 0 {
				gl.main = '✱'
			}
		}

		dst.SetColored(x, y, gl.main, gl.color)
		for i := 1; i < cw; i++ {
			dst.SetColored(x+i, y, gl.fill, gl.color)
		}
	})
}

// renderSidePanel draws the legend and the slot leaderboard to the right of
// the board when there is room.
func (g *Game) renderSidePanel(dst *core.Screen, board core.Rect) {
	x := board.Right() + panelMargin
	if x+sidePanelW > dst.Width() {
		return
	}
	y := board.Y

	dst.DrawTextColored(x, y, "Slot "+g.Slot(), core.ColorCyan)
	y += 2

	dst.DrawText(x, y, "Top scores")
	y++
	if len(g.leaderboard) == 0 {
		dst.DrawTextColored(x, y, "  none yet", core.ColorGray)
		y++
	}
	for i, e := range g.leaderboard {
		color := core.ColorDefault
		if g.finished && i == g.rank {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, y, fmt.Sprintf("%2d. %-12s %5d", i+1, e.Name, e.Score), color)
		y++
	}
	y++

	legend := []struct {
		kind level.Kind
		text string
	}{
		{level.KindGrass, "grass"},
		{level.KindWater, "water (shared)"},
		{level.KindTree, "tree"},
		{level.KindRock, "rock"},
	}
	for _, l := range legend {
		if y >= board.Bottom() {
			return
		}
		gl := tileGlyph(level.Tile{Kind: l.kind, Freshness: 1})
		dst.SetColored(x, y, gl.main, gl.color)
		pts := g.cfg.Scoring.PointsFor(l.kind.String())
		dst.DrawText(x+2, y, fmt.Sprintf("%-14s %2d pt", l.text, pts))
		y++
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	n := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(n+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+2, box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawText(box.X+2, box.Y+3, line2)
}
