/*
Package point provides the 2D point algebra used throughout arcweld: fuzzy
equality under a fixed tolerance, a total order, a quantised map key, and
the distance/angle primitives the chain assembler and arc fitter build on.

All tolerances here are the fixed geometric epsilon (1e-5), not the
user-configurable residual tolerance used by package weld. Do not collapse
the two; see weld's package doc for why they're kept separate.
*/
package point

import "math"

// Epsilon is the fixed tolerance used for fuzzy point equality and for
// quantising coordinates into a hashable grid key. It is a different knob
// from weld.Config.Resolution.
const Epsilon = 1e-5

// Point is a 2D coordinate pair.
type Point struct {
	X, Y float64
}

// New returns a Point with the given coordinates.
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether a and b are the same point within Epsilon on both
// coordinates independently.
func Equal(a, b Point) bool {
	return math.Abs(a.X-b.X) < Epsilon && math.Abs(a.Y-b.Y) < Epsilon
}

// Less orders points lexicographically on X then Y by exact float
// comparison. It is not consistent with Equal: two points that compare
// Equal but differ in their coordinates are still ordered by Less.
func Less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Key is a hashable, quantised form of a Point suitable for use as a Go map
// key. Two fuzzy-equal points (per Equal) quantise to the same Key or, when
// they straddle a grid cell boundary, to Keys that differ by 1 on one or
// both axes.
type Key struct {
	X, Y int64
}

// Quantize maps p onto the Epsilon grid by rounding each coordinate to the
// nearest multiple of Epsilon.
func Quantize(p Point) Key {
	return Key{
		X: int64(math.Round(p.X / Epsilon)),
		Y: int64(math.Round(p.Y / Epsilon)),
	}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleTo returns atan2(a.y-b.y, a.x-b.x), in (-π, π].
func AngleTo(a, b Point) float64 {
	return math.Atan2(a.Y-b.Y, a.X-b.X)
}

// PolarFrom returns the polar angle of p about center, normalised to
// [0, 2π).
func PolarFrom(center, p Point) float64 {
	theta := math.Atan2(p.Y-center.Y, p.X-center.X)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// RadialDistance returns the shorter arc-length along the circle of radius
// r between the polar angles of p and q about center: the smaller of
// |θp-θq| and 2π-|θp-θq|, scaled by r.
func RadialDistance(center Point, r float64, p, q Point) float64 {
	thetaP := PolarFrom(center, p)
	thetaQ := PolarFrom(center, q)
	delta := math.Abs(thetaP - thetaQ)
	if delta > math.Pi {
		delta = 2*math.Pi - delta
	}
	return delta * r
}
