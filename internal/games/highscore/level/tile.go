// Package level holds the High Score board: a fixed 20x20 toroidal grid of
// terrain tiles, the queries the player makes against it, freshness
// bookkeeping and the line-oriented save format.
//
// The package has no UI or storage dependencies. Tiles live in an arena
// owned by the Level and are addressed by TileRef, so a reference taken
// before a scroll still names the same tile afterwards.
package level

import (
	"fmt"
	"math"
)

// Kind identifies the terrain of a tile. The numeric value is the tag used
// in index maps and save files.
type Kind uint8

const (
	KindAir Kind = iota
	KindGrass
	KindWater
	KindTree
	KindRock
)

// kindCount is the number of valid kinds.
const kindCount = 5

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAir:
		return "air"
	case KindGrass:
		return "grass"
	case KindWater:
		return "water"
	case KindTree:
		return "tree"
	case KindRock:
		return "rock"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// KindFromTag converts a map/save tag to a Kind.
func KindFromTag(tag int) (Kind, bool) {
	if tag < 0 || tag >= kindCount {
		return 0, false
	}
	return Kind(tag), true
}

// rockWalkableBelow is the freshness under which a rock is drilled flat.
const rockWalkableBelow = 0.1

// Tile is one cell of the board.
//
// Freshness is stored as float32 so that values written by Encode parse
// back to the identical value.
type Tile struct {
	Kind          Kind
	Freshness     float32
	CanWalk       bool
	OriginalIndex int     // tag of the source map entry
	BaseAngle     float64 // cosmetic rotation for trees and rocks
	Pos           Vec     // world position, recomputed on scroll
}

// newTile returns a tile of the given kind with its per-kind defaults.
// row is the grid row the tile is built on; it seeds the cosmetic angle.
func newTile(kind Kind, row int) Tile {
	t := Tile{Kind: kind, OriginalIndex: int(kind)}

	switch kind {
	case KindAir:
		t.Freshness = 0
	case KindGrass:
		t.Freshness = 1
		t.CanWalk = true
	case KindWater:
		t.Freshness = 1
	case KindTree, KindRock:
		t.Freshness = 1
		t.BaseAngle = math.Mod(float64(row), 3) * math.Pi
	}

	return t
}

// applyFreshness adds amount to the tile's freshness, clamped to [0, 1],
// and refreshes any kind-specific state derived from it.
func (t *Tile) applyFreshness(amount float64) {
	f := float64(t.Freshness) + amount
	switch {
	case f < 0:
		f = 0
	case f > 1:
		f = 1
	}
	t.Freshness = float32(f)

	switch t.Kind {
	case KindRock:
		t.CanWalk = t.Freshness < rockWalkableBelow
	}
}

// Entry is the persisted form of a tile: its kind tag and freshness.
type Entry struct {
	Kind      int
	Freshness float32
}

// Valid reports whether the entry names a known kind and an in-range
// freshness.
func (e Entry) Valid() bool {
	_, ok := KindFromTag(e.Kind)
	return ok && e.Freshness >= 0 && e.Freshness <= 1
}
