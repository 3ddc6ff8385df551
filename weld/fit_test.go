package weld

import (
	"math"
	"testing"

	"github.com/TimothyStiles/arcweld/chain"
	"github.com/TimothyStiles/arcweld/entity"
	"github.com/TimothyStiles/arcweld/point"
)

func defaultCfg() Config {
	return DefaultConfig()
}

func countKinds(entities []entity.Entity) map[entity.Kind]int {
	counts := map[entity.Kind]int{}
	for _, e := range entities {
		counts[e.Kind]++
	}
	return counts
}

// S1 — straight line pass-through.
func TestFitStraightLinePassThrough(t *testing.T) {
	c := chain.Chain{point.New(0, 0), point.New(1, 0), point.New(2, 0), point.New(3, 0)}
	out, err := Fit(c, defaultCfg())
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d entities, want 3 lines: %+v", len(out), out)
	}
	for _, e := range out {
		if e.Kind != entity.KindLine {
			t.Errorf("entity %+v is not a Line", e)
		}
	}
}

func circlePoints(center point.Point, radius, startRad, endRad float64, n int) []point.Point {
	pts := make([]point.Point, n)
	for i := 0; i < n; i++ {
		theta := startRad + (endRad-startRad)*float64(i)/float64(n-1)
		pts[i] = point.New(center.X+radius*math.Cos(theta), center.Y+radius*math.Sin(theta))
	}
	return pts
}

// S2 — quarter arc.
func TestFitQuarterArc(t *testing.T) {
	pts := circlePoints(point.New(0, 0), 1, 0, math.Pi/2, 9)
	out, err := Fit(chain.Chain(pts), defaultCfg())
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if len(out) != 1 || out[0].Kind != entity.KindArc {
		t.Fatalf("got %+v, want a single Arc", out)
	}
	arc := out[0].Arc
	if math.Abs(arc.Radius-1) > 0.05 {
		t.Errorf("Radius = %v, want ~1", arc.Radius)
	}
	if point.Dist(arc.Center, point.New(0, 0)) > 0.05 {
		t.Errorf("Center = %v, want ~(0,0)", arc.Center)
	}
	if math.Abs(arc.StartAngle-0) > 1 {
		t.Errorf("StartAngle = %v, want ~0", arc.StartAngle)
	}
	if math.Abs(arc.EndAngle-90) > 1 {
		t.Errorf("EndAngle = %v, want ~90", arc.EndAngle)
	}
}

// S3 — full circle.
func TestFitFullCircle(t *testing.T) {
	pts := circlePoints(point.New(0, 0), 1, 0, 2*math.Pi, 17)
	// Close exactly back onto the first point, as a real closed polygon would.
	pts[len(pts)-1] = pts[0]
	out, err := Fit(chain.Chain(pts), defaultCfg())
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if len(out) != 1 || out[0].Kind != entity.KindCircle {
		t.Fatalf("got %+v, want a single Circle", out)
	}
	circ := out[0].Circle
	if math.Abs(circ.Radius-1) > 0.05 {
		t.Errorf("Radius = %v, want ~1", circ.Radius)
	}
}

// S4 — arc followed by line.
func TestFitArcFollowedByLine(t *testing.T) {
	arcPts := circlePoints(point.New(0, 0), 1, 0, math.Pi/2, 9)
	last := arcPts[len(arcPts)-1]
	// Tangent direction at θ=π/2 is (-1, 0); continue collinearly from there.
	tangent := point.New(-1, 0)
	linePts := []point.Point{
		last,
		point.New(last.X+tangent.X, last.Y+tangent.Y),
		point.New(last.X+2*tangent.X, last.Y+2*tangent.Y),
	}
	full := append(append([]point.Point{}, arcPts...), linePts[1:]...)

	out, err := Fit(chain.Chain(full), defaultCfg())
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	counts := countKinds(out)
	if counts[entity.KindArc] < 1 {
		t.Errorf("expected at least one Arc in output: %+v", out)
	}
	if counts[entity.KindLine] < 1 {
		t.Errorf("expected at least one Line in output: %+v", out)
	}
}

// Three collinear points must not produce a circle.
func TestMakeCircleRejectsCollinear(t *testing.T) {
	_, _, ok := MakeCircle(point.New(0, 0), point.New(1, 0), point.New(2, 0), 100000)
	if ok {
		t.Error("MakeCircle should reject collinear points")
	}
}

func TestMakeCircleRejectsOversizeRadius(t *testing.T) {
	// A very gentle arc implies a huge radius.
	_, _, ok := MakeCircle(point.New(0, 0), point.New(1000, 0.001), point.New(2000, 0), 1000)
	if ok {
		t.Error("MakeCircle should reject a circle exceeding maxRadius")
	}
}

func TestFitChainOfTwoEmitsOneLine(t *testing.T) {
	out, err := Fit(chain.Chain{point.New(0, 0), point.New(1, 1)}, defaultCfg())
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if len(out) != 1 || out[0].Kind != entity.KindLine {
		t.Fatalf("got %+v, want a single Line", out)
	}
}

func TestFitShortChainNeverArcs(t *testing.T) {
	// min_segments-1 segments (2 segments, 3 points) can never produce an arc:
	// with the default MinSegments=3, the window never reaches enough points
	// to attempt a second growth step before the chain ends.
	cfg := defaultCfg()
	pts := circlePoints(point.New(0, 0), 1, 0, math.Pi/6, 3)
	out, err := Fit(chain.Chain(pts), cfg)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	for _, e := range out {
		if e.Kind == entity.KindArc || e.Kind == entity.KindCircle {
			t.Errorf("did not expect an Arc/Circle from a %d-segment chain: %+v", len(pts)-1, out)
		}
	}
}

// S6 — noisy arc within tolerance.
func TestFitNoisyArcWithinTolerance(t *testing.T) {
	base := circlePoints(point.New(0, 0), 1, 0, math.Pi/2, 9)
	noise := []float64{0.01, -0.015, 0.02, -0.02, 0.005, -0.01, 0.015, -0.005, 0.0}
	pts := make([]point.Point, len(base))
	for i, p := range base {
		r := 1 + noise[i]
		theta := math.Atan2(p.Y, p.X)
		pts[i] = point.New(r*math.Cos(theta), r*math.Sin(theta))
	}

	out, err := Fit(chain.Chain(pts), defaultCfg())
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if len(out) != 1 || out[0].Kind != entity.KindArc {
		t.Fatalf("got %+v, want a single Arc despite noise within tolerance", out)
	}
}

func TestFitRejectsInvalidMinSegments(t *testing.T) {
	cfg := Config{Resolution: 0.05, MaxRadius: 1000, MinSegments: 2}
	_, err := Fit(chain.Chain{point.New(0, 0), point.New(1, 0), point.New(2, 0)}, cfg)
	if err == nil {
		t.Fatal("expected a ConfigError for min_segments < 3")
	}
	if _, ok := err.(ConfigError); !ok {
		t.Fatalf("expected ConfigError, got %T", err)
	}
}

func TestFitRejectsShortChain(t *testing.T) {
	_, err := Fit(chain.Chain{point.New(0, 0)}, defaultCfg())
	if err == nil {
		t.Fatal("expected a ConfigError for a chain shorter than 2 points")
	}
	if _, ok := err.(ConfigError); !ok {
		t.Fatalf("expected ConfigError, got %T", err)
	}
}

// Monotone progress / segment accounting: every segment in the input chain
// must be covered by exactly the entities the fitter emits, in order.
func TestFitSegmentAccounting(t *testing.T) {
	pts := circlePoints(point.New(0, 0), 1, 0, math.Pi/2, 9)
	pts = append(pts, point.New(pts[len(pts)-1].X-1, pts[len(pts)-1].Y))
	out, err := Fit(chain.Chain(pts), defaultCfg())
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected at least one output entity")
	}
	first := out[0]
	if first.Kind != entity.KindArc && first.Kind != entity.KindCircle && first.Kind != entity.KindLine {
		t.Fatalf("unexpected first entity kind: %v", first.Kind)
	}
}
