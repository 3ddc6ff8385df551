package weld

import "github.com/TimothyStiles/arcweld/point"

// MakeCircle solves for the unique circumscribed circle through three
// non-collinear points using the determinant form. It reports ok=false
// ("no circle") if the points are collinear within collinearTolerance, or
// if the resulting radius exceeds maxRadius.
func MakeCircle(p1, p2, p3 point.Point, maxRadius float64) (center point.Point, radius float64, ok bool) {
	a := p1.X*(p2.Y-p3.Y) - p1.Y*(p2.X-p3.X) + p2.X*p3.Y - p3.X*p2.Y
	if a < 0 {
		a = -a
	}
	if a < collinearTolerance {
		return point.Point{}, 0, false
	}

	d := 2 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))

	sq1 := p1.X*p1.X + p1.Y*p1.Y
	sq2 := p2.X*p2.X + p2.Y*p2.Y
	sq3 := p3.X*p3.X + p3.Y*p3.Y

	ux := (sq1*(p2.Y-p3.Y) + sq2*(p3.Y-p1.Y) + sq3*(p1.Y-p2.Y)) / d
	uy := (sq1*(p3.X-p2.X) + sq2*(p1.X-p3.X) + sq3*(p2.X-p1.X)) / d

	center = point.New(ux, uy)
	radius = point.Dist(center, p1)
	if radius > maxRadius {
		return point.Point{}, 0, false
	}
	return center, radius, true
}

// PerpendicularFoot computes the foot of the perpendicular from c onto the
// segment p1->p2, reporting ok=false ("no interior foot") if the foot
// would fall outside the segment's interior (within collinearTolerance of
// either endpoint).
func PerpendicularFoot(p1, p2, c point.Point) (foot point.Point, ok bool) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return point.Point{}, false
	}

	t := ((c.X-p1.X)*dx + (c.Y-p1.Y)*dy) / lengthSq
	if t <= collinearTolerance || t >= 1-collinearTolerance {
		return point.Point{}, false
	}

	return point.New(p1.X+t*dx, p1.Y+t*dy), true
}

// CheckChainCircle validates a candidate circle (center, radius) against
// the chain window c[a..b] inclusive: every point after a must sit within
// resolution of the circle, and every interior perpendicular foot between
// consecutive window points must as well. Point a is not re-checked, since
// it generated the circle.
func CheckChainCircle(c []point.Point, a, b int, center point.Point, radius, resolution float64) bool {
	for i := a + 1; i <= b; i++ {
		if absFloat(radius-point.Dist(center, c[i])) > resolution {
			return false
		}
	}

	for i := a; i < b; i++ {
		foot, ok := PerpendicularFoot(c[i], c[i+1], center)
		if !ok {
			continue
		}
		if absFloat(radius-point.Dist(center, foot)) > resolution {
			return false
		}
	}

	return true
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
