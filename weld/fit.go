package weld

import (
	"github.com/TimothyStiles/arcweld/chain"
	"github.com/TimothyStiles/arcweld/entity"
	"github.com/TimothyStiles/arcweld/point"
)

// candidateArc is the (center, radius, start, end) tuple the greedy fitter
// grows as more chain points are appended; at most one is live at a time.
type candidateArc struct {
	center               point.Point
	radius               float64
	startAngle, endAngle float64
}

// Fit walks a chain and emits a sequence of Arc, Circle, or Line entities
// covering every one of its segments exactly once.
//
// The fitter is greedy-longest: it extends the current candidate arc as
// long as the residual test in CheckChainCircle passes, and on failure
// retreats the window start to i-1 so the just-failed point becomes the
// second point of the next window, preserving every segment's geometric
// contribution (see DESIGN.md). Arc-length is deliberately never
// re-verified against the accumulated chord length; the fitter prefers
// emitting long arcs and full circles over rejecting ambiguous runs.
func Fit(c chain.Chain, cfg Config) ([]entity.Entity, error) {
	if cfg.MinSegments < 3 {
		return nil, ConfigError{Msg: "min_segments must be >= 3"}
	}
	n := len(c)
	if n < 2 {
		return nil, ConfigError{Msg: "chain must have at least 2 points"}
	}
	if n == 2 {
		return []entity.Entity{entity.NewLine(c[0], c[1])}, nil
	}

	m := cfg.MinSegments
	a := 0
	i := m
	var current *candidateArc
	var out []entity.Entity

	for i < n {
		last := c[i-1]
		p := c[i]

		if point.Equal(last, p) {
			i++
			continue
		}

		if current != nil && point.Equal(c[a], p) {
			out = append(out, entity.NewCircle(current.center, current.radius))
			a = i + 1
			i = a + m
			current = nil
			continue
		}

		if grown := tryGrow(c, a, i, p, cfg); grown != nil {
			current = grown
			i++
			continue
		}

		if current != nil {
			out = append(out, entity.NewArc(current.center, current.radius, current.startAngle, current.endAngle))
			a = i - 1
			i = a + m
			current = nil
			continue
		}

		out = append(out, entity.NewLine(c[a], c[a+1]))
		a++
		if i-a >= m {
			continue
		}
		i++
	}

	if current != nil {
		out = append(out, entity.NewArc(current.center, current.radius, current.startAngle, current.endAngle))
	} else {
		for k := a; k < n-1; k++ {
			out = append(out, entity.NewLine(c[k], c[k+1]))
		}
	}

	return out, nil
}

// tryGrow attempts to extend the candidate window [a..i] to include point
// p (== c[i]), returning the new candidate arc on success or nil on
// failure (no circle, residual check failed, or direction unresolved).
func tryGrow(c chain.Chain, a, i int, p point.Point, cfg Config) *candidateArc {
	circleMidIdx := a + (i-a-2)/2 + 1
	center, radius, ok := MakeCircle(c[a], c[circleMidIdx], p, cfg.MaxRadius)
	if !ok {
		return nil
	}

	if !CheckChainCircle(c, a, i, center, radius, cfg.Resolution) {
		return nil
	}

	dirMidIdx := a + (i-a-1)/2 + 1
	startAngle, endAngle, ok := ArcDirection(center, c[a], c[dirMidIdx], p)
	if !ok {
		return nil
	}

	return &candidateArc{center: center, radius: radius, startAngle: startAngle, endAngle: endAngle}
}
