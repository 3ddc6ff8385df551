/*
Package pipeline sequences the full weld pipeline for one document: parse,
assert all-Line input, assemble chains, fit each chain, concatenate the
results in chain-extraction order, and serialize. No state persists across
calls, matching the teacher's top-level convertCommand sequencing stripped
of the glob/goroutine fan-out that a two-positional-argument CLI doesn't
need.
*/
package pipeline

import (
	"fmt"
	"io"

	"github.com/TimothyStiles/arcweld/chain"
	"github.com/TimothyStiles/arcweld/dxfio"
	"github.com/TimothyStiles/arcweld/entity"
	"github.com/TimothyStiles/arcweld/weld"
)

// UnsupportedInputError reports that a drawing passed to the fitter
// contains an entity other than Line. Only documents composed entirely of
// Line entities can be welded. Feeding a previously-welded document (which
// now contains Arc/Circle entities) back through Weld fails earlier, with
// the dxfio.SyntaxError that dxfio.Parse returns for any non-LINE entity.
type UnsupportedInputError struct {
	Kind entity.Kind
}

func (e UnsupportedInputError) Error() string {
	return fmt.Sprintf("pipeline: unsupported input entity kind %v, expected LINE", e.Kind)
}

// Weld reads a drawing from r, welds it per cfg, and writes the result to
// w.
func Weld(r io.Reader, w io.Writer, cfg weld.Config) error {
	d, err := dxfio.Parse(r)
	if err != nil {
		return err
	}

	lines, err := asLines(d)
	if err != nil {
		return err
	}

	chains := chain.Assemble(lines)

	var out entity.Drawing
	for _, c := range chains {
		fitted, err := weld.Fit(c, cfg)
		if err != nil {
			return err
		}
		out.Entities = append(out.Entities, fitted...)
	}

	return dxfio.Write(w, out)
}

func asLines(d entity.Drawing) ([]entity.Line, error) {
	lines := make([]entity.Line, 0, len(d.Entities))
	for _, e := range d.Entities {
		if e.Kind != entity.KindLine {
			return nil, UnsupportedInputError{Kind: e.Kind}
		}
		lines = append(lines, e.Line)
	}
	return lines, nil
}
