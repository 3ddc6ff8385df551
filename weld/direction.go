package weld

import (
	"math"

	"github.com/TimothyStiles/arcweld/point"
)

// ArcDirection resolves the sweep direction of a candidate arc from three
// window points (start, mid, end) and returns the output start/end angles
// in degrees, with the convention that sweep is always written as
// counter-clockwise from startAngle to endAngle. It reports ok=false if
// the direction cannot be determined (start and end polar angles equal,
// or mid matches neither the CW nor the CCW range).
func ArcDirection(center point.Point, start, mid, end point.Point) (startAngle, endAngle float64, ok bool) {
	thetaS := point.PolarFrom(center, start)
	thetaM := point.PolarFrom(center, mid)
	thetaE := point.PolarFrom(center, end)

	var ccw bool
	switch {
	case thetaE > thetaS:
		switch {
		case thetaM > thetaS && thetaM < thetaE:
			ccw = true
		case thetaM < thetaS || thetaM > thetaE:
			ccw = false
		default:
			return 0, 0, false
		}
	case thetaS > thetaE:
		switch {
		case thetaM > thetaS || thetaM < thetaE:
			ccw = true
		case thetaM < thetaS && thetaM > thetaE:
			ccw = false
		default:
			return 0, 0, false
		}
	default:
		return 0, 0, false
	}

	if !ccw {
		thetaS, thetaE = thetaE, thetaS
	}

	return thetaS * 180 / math.Pi, thetaE * 180 / math.Pi, true
}
