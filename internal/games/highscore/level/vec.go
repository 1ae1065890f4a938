package level

import (
	"fmt"
	"math"
)

// Vec is a world-space vector. Y is up; the board lies in the X/Z plane
// with +X to the east and +Z to the south.
type Vec struct {
	X, Y, Z float64
}

// Cardinal unit moves.
var (
	North = Vec{Z: -1}
	South = Vec{Z: 1}
	West  = Vec{X: -1}
	East  = Vec{X: 1}
)

// V is a convenience constructor for Vec.
func V(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Neg returns -v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Scale returns v * s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// String formats the vector as (x, y, z).
func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Cell returns the grid offset of a single-cell cardinal move.
// ok is false unless exactly one of X and Z is ±1 and the rest are zero.
func (v Vec) Cell() (dCol, dRow int, ok bool) {
	if v.Y != 0 {
		return 0, 0, false
	}
	switch {
	case v.Z == 0 && math.Abs(v.X) == 1:
		return int(v.X), 0, true
	case v.X == 0 && math.Abs(v.Z) == 1:
		return 0, int(v.Z), true
	}
	return 0, 0, false
}

// IsCardinal reports whether v is one of North, South, West or East.
func (v Vec) IsCardinal() bool {
	_, _, ok := v.Cell()
	return ok
}
