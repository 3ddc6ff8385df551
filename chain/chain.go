/*
Package chain stitches loose directed line segments into maximal forward
chains by matching each segment's endpoint to another segment's start
point under fuzzy equality (see point.Equal).

Chain assembly is forward-only: a chain is extended from its head as long
as some segment starts where the current tail ends, but a chain is never
extended backward from an arbitrary start point. This is intentional but
asymmetric, and merging chains whose tail meets another chain's head is an
open design point this package does not implement (see DESIGN.md).
*/
package chain

import (
	"github.com/TimothyStiles/arcweld/entity"
	"github.com/TimothyStiles/arcweld/point"
)

// Chain is a directed ordered sequence of points: point[i] -> point[i+1]
// represents a directed segment. A Chain is maximal: no unconsumed input
// line extends either of its endpoints forward.
type Chain []point.Point

type edge struct {
	from, to point.Point
}

// Assemble groups lines into maximal forward chains. Chains are started
// from the remaining segment with the smallest start point (point.Less),
// so the result is deterministic for a given input. Two chains never
// share a segment. If the same start point appears on two or more input
// lines, later lines overwrite earlier ones in the successor index (Go's
// native map assignment semantics) and the overwritten lines appear in no
// chain — an implementation-defined tie-break with the property that
// every resulting chain is still a valid traversal of some subset of the
// input lines. Every other input line appears in exactly one chain.
func Assemble(lines []entity.Line) []Chain {
	successor := make(map[point.Key]edge, len(lines))
	for _, l := range lines {
		successor[point.Quantize(l.A)] = edge{from: l.A, to: l.B}
	}

	var chains []Chain
	for len(successor) > 0 {
		var start point.Key
		var e edge
		first := true
		for k, v := range successor {
			if first || point.Less(v.from, e.from) {
				start, e = k, v
				first = false
			}
		}
		delete(successor, start)

		c := Chain{e.from, e.to}
		tail := e.to
		for {
			// Fuzzy-equal points can quantise to adjacent grid cells, so
			// search the tail's cell and its eight neighbours.
			base := point.Quantize(tail)
			var key point.Key
			var next edge
			found := false
			for dx := int64(-1); dx <= 1 && !found; dx++ {
				for dy := int64(-1); dy <= 1 && !found; dy++ {
					k := point.Key{X: base.X + dx, Y: base.Y + dy}
					if cand, ok := successor[k]; ok && point.Equal(cand.from, tail) {
						key, next, found = k, cand, true
					}
				}
			}
			if !found {
				break
			}
			delete(successor, key)
			c = append(c, next.to)
			tail = next.to
		}
		chains = append(chains, c)
	}

	return chains
}
