package dxfio

import (
	"io"
	"strconv"
	"strings"

	"github.com/TimothyStiles/arcweld/entity"
)

// defaultLayer is the fixed layer name stamped onto every emitted entity.
// Layers are not otherwise modeled; see spec's Non-goals.
const defaultLayer = "0"

// Write serialises d as a minimal well-formed tagged ASCII document: an
// empty BLOCKS section, an ENTITIES section containing d's entities in
// order, and an OBJECTS section containing one empty DICTIONARY,
// terminated by (0, EOF).
func Write(w io.Writer, d entity.Drawing) error {
	b := &strings.Builder{}

	writeRecord(b, 0, "SECTION")
	writeRecord(b, 2, "BLOCKS")
	writeRecord(b, 0, "ENDSEC")

	writeRecord(b, 0, "SECTION")
	writeRecord(b, 2, "ENTITIES")
	for _, ent := range d.Entities {
		writeEntity(b, ent)
	}
	writeRecord(b, 0, "ENDSEC")

	writeRecord(b, 0, "SECTION")
	writeRecord(b, 2, "OBJECTS")
	writeRecord(b, 0, "DICTIONARY")
	writeRecord(b, 0, "ENDSEC")

	writeRecord(b, 0, "EOF")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeEntity(b *strings.Builder, ent entity.Entity) {
	switch ent.Kind {
	case entity.KindLine:
		writeRecord(b, 0, "LINE")
		writeRecord(b, 8, defaultLayer)
		writeFloat(b, 10, ent.Line.A.X)
		writeFloat(b, 20, ent.Line.A.Y)
		writeFloat(b, 11, ent.Line.B.X)
		writeFloat(b, 21, ent.Line.B.Y)
	case entity.KindArc:
		writeRecord(b, 0, "ARC")
		writeRecord(b, 8, defaultLayer)
		writeFloat(b, 10, ent.Arc.Center.X)
		writeFloat(b, 20, ent.Arc.Center.Y)
		writeFloat(b, 40, ent.Arc.Radius)
		writeFloat(b, 50, ent.Arc.StartAngle)
		writeFloat(b, 51, ent.Arc.EndAngle)
	case entity.KindCircle:
		writeRecord(b, 0, "CIRCLE")
		writeRecord(b, 8, defaultLayer)
		writeFloat(b, 10, ent.Circle.Center.X)
		writeFloat(b, 20, ent.Circle.Center.Y)
		writeFloat(b, 40, ent.Circle.Radius)
	}
}

func writeRecord(b *strings.Builder, tag int, value string) {
	b.WriteString("  ")
	b.WriteString(strconv.Itoa(tag))
	b.WriteByte('\n')
	b.WriteString(value)
	b.WriteByte('\n')
}

func writeFloat(b *strings.Builder, tag int, v float64) {
	writeRecord(b, tag, strconv.FormatFloat(v, 'g', -1, 64))
}
