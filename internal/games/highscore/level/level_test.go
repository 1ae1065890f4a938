package level

import (
	"math"
	"testing"

	"github.com/pixil98/go-testutil"
)

// mustPanic fails the test unless fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// crossMap returns an all-grass map with the given kinds around the center.
func crossMap(north, south, west, east Kind) []int {
	m := Uniform(KindGrass)
	m[(Center-1)*Size+Center] = int(north)
	m[(Center+1)*Size+Center] = int(south)
	m[Center*Size+Center-1] = int(west)
	m[Center*Size+Center+1] = int(east)
	return m
}

func TestBuildDefault(t *testing.T) {
	l := Default()

	testutil.AssertEqual(t, "tile count", l.Count(), TileCount)
	testutil.AssertEqual(t, "tiles snapshot", len(l.Tiles()), TileCount)

	center := l.Tile(l.CenterRef())
	if center.Kind != KindGrass || !center.CanWalk {
		t.Errorf("center tile = %v walkable=%v, expected walkable grass", center.Kind, center.CanWalk)
	}

	// Corners of the built-in map
	if k := l.Tile(l.At(0, 3)).Kind; k != KindWater {
		t.Errorf("tile (0,3) = %v, expected water", k)
	}
	if k := l.Tile(l.At(19, 19)).Kind; k != KindRock {
		t.Errorf("tile (19,19) = %v, expected rock", k)
	}
}

func TestBuildKindDefaults(t *testing.T) {
	tests := []struct {
		kind      Kind
		freshness float32
		canWalk   bool
	}{
		{KindAir, 0, false},
		{KindGrass, 1, true},
		{KindWater, 1, false},
		{KindTree, 1, false},
		{KindRock, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			l := Build(Uniform(tc.kind))
			tile := l.Tile(l.At(4, 7))
			if tile.Kind != tc.kind {
				t.Errorf("Kind = %v, expected %v", tile.Kind, tc.kind)
			}
			if tile.Freshness != tc.freshness {
				t.Errorf("Freshness = %v, expected %v", tile.Freshness, tc.freshness)
			}
			if tile.CanWalk != tc.canWalk {
				t.Errorf("CanWalk = %v, expected %v", tile.CanWalk, tc.canWalk)
			}
			if tile.OriginalIndex != int(tc.kind) {
				t.Errorf("OriginalIndex = %d, expected %d", tile.OriginalIndex, tc.kind)
			}
		})
	}
}

func TestBuildBaseAngle(t *testing.T) {
	l := Build(Uniform(KindTree))

	for row := range 6 {
		want := math.Mod(float64(row), 3) * math.Pi
		if got := l.Tile(l.At(row, 0)).BaseAngle; got != want {
			t.Errorf("row %d BaseAngle = %v, expected %v", row, got, want)
		}
	}

	grass := Build(Uniform(KindGrass))
	if a := grass.Tile(grass.At(1, 0)).BaseAngle; a != 0 {
		t.Errorf("grass should have no base angle, got %v", a)
	}
}

func TestBuildPositions(t *testing.T) {
	l := Build(Uniform(KindGrass))

	if p := l.Tile(l.At(0, 0)).Pos; p != V(-19, 0, -19) {
		t.Errorf("top-left position = %v, expected (-19, 0, -19)", p)
	}
	if p := l.Tile(l.At(19, 19)).Pos; p != V(19, 0, 19) {
		t.Errorf("bottom-right position = %v, expected (19, 0, 19)", p)
	}
}

func TestBuildRejectsBadMaps(t *testing.T) {
	mustPanic(t, "short map", func() { Build(make([]int, TileCount-1)) })
	mustPanic(t, "long map", func() { Build(make([]int, TileCount+1)) })

	bad := Uniform(KindGrass)
	bad[37] = 5
	mustPanic(t, "unknown tag", func() { Build(bad) })
}

func TestResolveTileAndCanMove(t *testing.T) {
	l := Build(crossMap(KindWater, KindRock, KindTree, KindGrass))

	tests := []struct {
		name string
		move Vec
		kind Kind
		walk bool
	}{
		{"north", North, KindWater, false},
		{"south", South, KindRock, false},
		{"west", West, KindTree, false},
		{"east", East, KindGrass, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ref := l.ResolveTile(tc.move)
			tile := l.Tile(ref)
			if tile.Kind != tc.kind {
				t.Errorf("ResolveTile(%v) kind = %v, expected %v", tc.move, tile.Kind, tc.kind)
			}
			if l.CanMove(tc.move) != tile.CanWalk {
				t.Errorf("CanMove(%v) disagrees with ResolveTile().CanWalk", tc.move)
			}
			if l.CanMove(tc.move) != tc.walk {
				t.Errorf("CanMove(%v) = %v, expected %v", tc.move, l.CanMove(tc.move), tc.walk)
			}
		})
	}
}

func TestResolveTileRejectsOutOfContract(t *testing.T) {
	l := Default()

	mustPanic(t, "two cells", func() { l.ResolveTile(V(2, 0, 0)) })
	mustPanic(t, "diagonal", func() { l.ResolveTile(V(1, 0, 1)) })
	mustPanic(t, "zero", func() { l.ResolveTile(Vec{}) })
	mustPanic(t, "vertical axis", func() { l.ResolveTile(V(0, 1, 0)) })
	mustPanic(t, "far", func() { l.CanMove(V(0, 0, -11)) })
}

func TestApplyFreshnessClamps(t *testing.T) {
	l := Build(Uniform(KindGrass))
	ref := l.At(3, 3)

	amounts := []float64{-0.3, -0.3, -0.3, -0.3, 0.2, 5, -0.05, -10, 0.7}
	for i, a := range amounts {
		l.ApplyFreshness(ref, a)
		f := l.Tile(ref).Freshness
		if f < 0 || f > 1 {
			t.Fatalf("after update %d freshness = %v, out of [0, 1]", i, f)
		}
	}

	if f := l.Tile(ref).Freshness; math.Abs(float64(f)-0.7) > 1e-6 {
		t.Errorf("final freshness = %v, expected 0.7", f)
	}
}

func TestRockDrillScenario(t *testing.T) {
	l := Build(Uniform(KindRock))
	ref := l.At(Center, Center+1)

	for i := range 10 {
		l.ApplyFreshness(ref, -0.95)
		tile := l.Tile(ref)

		if tile.Freshness < 0 || tile.Freshness > 1 {
			t.Fatalf("call %d: freshness %v out of range", i+1, tile.Freshness)
		}
		if tile.CanWalk != (tile.Freshness < 0.1) {
			t.Errorf("call %d: CanWalk = %v with freshness %v", i+1, tile.CanWalk, tile.Freshness)
		}
		if !tile.CanWalk {
			t.Errorf("call %d: rock should be walkable once freshness drops below 0.1", i+1)
		}
		if i >= 4 && tile.Freshness != 0 {
			t.Errorf("call %d: freshness = %v, expected clamp at 0", i+1, tile.Freshness)
		}
	}

	// Regrowing the rock blocks it again
	l.ApplyFreshness(ref, 0.5)
	if l.Tile(ref).CanWalk {
		t.Error("rock with freshness 0.5 should not be walkable")
	}
}

func TestBroadcastWater(t *testing.T) {
	l := Default()
	before := l.Tiles()

	l.BroadcastWater(-0.25)
	after := l.Tiles()

	for i := range before {
		b, a := before[i], after[i]
		if b.Kind == KindWater {
			want := float32(math.Max(float64(b.Freshness)-0.25, 0))
			if math.Abs(float64(a.Freshness-want)) > 1e-6 {
				t.Errorf("water tile %d freshness = %v, expected %v", i, a.Freshness, want)
			}
			continue
		}
		if a != b {
			t.Errorf("non-water tile %d changed: %+v -> %+v", i, b, a)
		}
	}

	// Clamped at the bottom, every water tile ends equal
	l.BroadcastWater(-3)
	l.Each(func(_, _ int, _ TileRef, tile Tile) {
		if tile.Kind == KindWater && tile.Freshness != 0 {
			t.Errorf("water freshness = %v after large drain, expected 0", tile.Freshness)
		}
	})
}
