package level

import (
	"fmt"
	"math"
)

const (
	// Size is the width and height of the board in tiles.
	Size = 20
	// TileCount is the number of tiles on a board.
	TileCount = Size * Size
	// Center is the row and column of the cell the player stands on.
	Center = Size / 2

	// tileSpacing is the world distance between neighbouring tiles.
	tileSpacing = 2.0
	// scrollThreshold is the magnitude an axis needs to count as moving.
	scrollThreshold = 0.1
)

// TileRef addresses a tile in a Level's arena. It stays valid for the
// lifetime of the level regardless of scrolling.
type TileRef int

// Level owns every tile of a board and the row-major grid that places them.
type Level struct {
	arena []Tile
	grid  [Size][Size]TileRef
}

// Build creates a level from a row-major index map of kind tags.
// It panics if the map does not hold exactly TileCount known tags; maps are
// program data, not user input.
func Build(indices []int) *Level {
	if len(indices) != TileCount {
		panic(fmt.Sprintf("level: index map has %d entries, want %d", len(indices), TileCount))
	}

	l := &Level{arena: make([]Tile, 0, TileCount)}
	for row := range Size {
		for col := range Size {
			tag := indices[row*Size+col]
			kind, ok := KindFromTag(tag)
			if !ok {
				panic(fmt.Sprintf("level: unknown kind tag %d at row %d col %d", tag, row, col))
			}

			t := newTile(kind, row)
			t.Pos = gridPos(row, col)
			l.arena = append(l.arena, t)
			l.grid[row][col] = TileRef(len(l.arena) - 1)
		}
	}
	return l
}

// BuildSaved creates a level from saved entries and restores each tile's
// wear by applying -(1 - saved freshness) right after construction.
// It panics on a wrong entry count or unknown kind; use Load to get a
// validated board from untrusted sources.
func BuildSaved(entries []Entry) *Level {
	if len(entries) != TileCount {
		panic(fmt.Sprintf("level: saved board has %d entries, want %d", len(entries), TileCount))
	}

	indices := make([]int, TileCount)
	for i, e := range entries {
		indices[i] = e.Kind
	}

	l := Build(indices)
	for i, e := range entries {
		l.ApplyFreshness(l.grid[i/Size][i%Size], -(1.0 - float64(e.Freshness)))
	}
	return l
}

// Default returns a level built from the built-in map.
func Default() *Level {
	return Build(DefaultMap())
}

// gridPos is the world position of a freshly built tile.
func gridPos(row, col int) Vec {
	return Vec{
		X: float64(col)*tileSpacing - (Size - 1),
		Z: float64(row)*tileSpacing - (Size - 1),
	}
}

// Tile returns a copy of the referenced tile.
func (l *Level) Tile(ref TileRef) Tile {
	return l.arena[ref]
}

// At returns the reference of the tile currently at (row, col).
func (l *Level) At(row, col int) TileRef {
	return l.grid[row][col]
}

// CenterRef returns the tile under the player.
func (l *Level) CenterRef() TileRef {
	return l.grid[Center][Center]
}

// Count returns the number of tiles placed on the grid.
func (l *Level) Count() int {
	n := 0
	for row := range l.grid {
		n += len(l.grid[row])
	}
	return n
}

// Each calls fn for every tile in row-major order.
func (l *Level) Each(fn func(row, col int, ref TileRef, t Tile)) {
	for row := range Size {
		for col := range Size {
			ref := l.grid[row][col]
			fn(row, col, ref, l.arena[ref])
		}
	}
}

// Tiles returns a row-major snapshot of every tile.
func (l *Level) Tiles() []Tile {
	out := make([]Tile, 0, TileCount)
	l.Each(func(_, _ int, _ TileRef, t Tile) {
		out = append(out, t)
	})
	return out
}

// ResolveTile returns the tile next to the player in the direction of move.
// move must be a single-cell cardinal vector; anything else is a caller bug
// and panics instead of reading outside the intended neighbourhood.
func (l *Level) ResolveTile(move Vec) TileRef {
	dCol, dRow, ok := move.Cell()
	if !ok {
		panic(fmt.Sprintf("level: resolve needs a single-cell cardinal move, got %v", move))
	}
	return l.grid[Center+dRow][Center+dCol]
}

// CanMove reports whether the tile in the direction of move is walkable.
func (l *Level) CanMove(move Vec) bool {
	return l.arena[l.ResolveTile(move)].CanWalk
}

// ApplyFreshness adds amount to a tile's freshness, clamped to [0, 1].
// Rocks become walkable once their freshness drops below 0.1.
func (l *Level) ApplyFreshness(ref TileRef, amount float64) {
	l.arena[ref].applyFreshness(amount)
}

// BroadcastWater applies amount to every water tile. All water shares one
// lake level.
func (l *Level) BroadcastWater(amount float64) {
	for i := range l.arena {
		if l.arena[i].Kind == KindWater {
			l.arena[i].applyFreshness(amount)
		}
	}
}

// Scroll shifts the board contents by one cell along a single axis,
// wrapping the tile that falls off one edge around to the other.
//
// +X moves every row right (the rightmost tile becomes column 0), -X moves
// them left. +Z moves the rows down (the bottom row becomes row 0), -Z moves
// them up. Exactly one axis must be nonzero; a diagonal or zero shift
// panics. Tiles keep their kind and freshness; only placement and world
// position change.
func (l *Level) Scroll(shift Vec) {
	horizontal := math.Abs(shift.X) > scrollThreshold
	vertical := math.Abs(shift.Z) > scrollThreshold
	if horizontal == vertical {
		panic(fmt.Sprintf("level: scroll needs exactly one nonzero axis, got %v", shift))
	}

	if horizontal {
		l.scrollRows(shift.X > 0)
		return
	}
	l.scrollColumns(shift.Z > 0)
}

// scrollRows rotates every row by one cell.
func (l *Level) scrollRows(right bool) {
	for row := range Size {
		r := &l.grid[row]
		if right {
			last := r[Size-1]
			copy(r[1:], r[:Size-1])
			r[0] = last
			l.arena[last].Pos = l.arena[r[1]].Pos.Add(Vec{X: -tileSpacing})
		} else {
			first := r[0]
			copy(r[:Size-1], r[1:])
			r[Size-1] = first
			l.arena[first].Pos = l.arena[r[Size-2]].Pos.Add(Vec{X: tileSpacing})
		}
	}
}

// scrollColumns rotates the list of rows by one.
func (l *Level) scrollColumns(down bool) {
	if down {
		bottom := l.grid[Size-1]
		copy(l.grid[1:], l.grid[:Size-1])
		l.grid[0] = bottom
		for col, ref := range bottom {
			l.arena[ref].Pos = l.arena[l.grid[1][col]].Pos.Add(Vec{Z: -tileSpacing})
		}
		return
	}

	top := l.grid[0]
	copy(l.grid[:Size-1], l.grid[1:])
	l.grid[Size-1] = top
	for col, ref := range top {
		l.arena[ref].Pos = l.arena[l.grid[Size-2][col]].Pos.Add(Vec{Z: tileSpacing})
	}
}
