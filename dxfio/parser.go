/*
Package dxfio implements the tagged-ASCII CAD interchange codec arcweld
reads and writes: a small, restricted dialect of the DXF group-code format
carrying only LINE entities on input and LINE/ARC/CIRCLE entities on
output.

The parser is a small state machine over (tag, value) pairs, structured
the way the teacher's genbank.Parser is: a buffered reader, a running line
counter for error context, and dedicated functions per grammar production
(parseSection, skipSection, parseEntities, parseLineEntity) instead of a
single monolithic loop.
*/
package dxfio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TimothyStiles/arcweld/entity"
	"github.com/TimothyStiles/arcweld/point"
)

// A Parser stores state while parsing a tagged ASCII drawing.
type Parser struct {
	reader   *bufio.Reader
	line     uint
	currLine string
}

// NewParser instantiates a new Parser reading from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

func (p *Parser) makeSyntaxError(msg string, innerError ...error) SyntaxError {
	res := SyntaxError{Line: p.line, Context: p.currLine, Msg: msg}
	if len(innerError) > 0 {
		res.InnerErr = innerError[0]
	}
	return res
}

// readLine reads the next physical line from the underlying reader,
// stripping its trailing newline.
func (p *Parser) readLine() (string, error) {
	res, err := p.reader.ReadString('\n')
	if err != nil && !(err == io.EOF && res != "") {
		return "", err
	}
	p.line++
	trimmed := strings.TrimRight(res, "\r\n")
	p.currLine = trimmed
	return trimmed, nil
}

// nextNonEmptyLine skips blank lines and returns the next trimmed
// non-empty one.
func (p *Parser) nextNonEmptyLine() (string, error) {
	for {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed, nil
		}
	}
}

// readRecord reads one (tag, value) pair: an integer tag line (possibly
// indented) followed by the next non-empty trimmed value line.
func (p *Parser) readRecord() (tag int, value string, err error) {
	tagLine, err := p.nextNonEmptyLine()
	if err == io.EOF {
		return 0, "", p.makeSyntaxError("unexpected end of stream, expected a tag")
	} else if err != nil {
		return 0, "", fmt.Errorf("dxfio: reading tag: %w", err)
	}

	tag, convErr := strconv.Atoi(strings.TrimSpace(tagLine))
	if convErr != nil {
		return 0, "", p.makeSyntaxError(fmt.Sprintf("malformed tag %q", tagLine), convErr)
	}

	value, err = p.nextNonEmptyLine()
	if err == io.EOF {
		return 0, "", p.makeSyntaxError("unexpected end of stream, expected a value")
	} else if err != nil {
		return 0, "", fmt.Errorf("dxfio: reading value: %w", err)
	}

	return tag, value, nil
}

// Parse reads a full drawing from the Parser's underlying reader. Only
// LINE entities inside the ENTITIES section are recognised; every other
// section is skipped whole, and any non-LINE entity encountered inside
// ENTITIES is a hard error.
func (p *Parser) Parse() (entity.Drawing, error) {
	var d entity.Drawing

	for {
		tag, value, err := p.readRecord()
		if err != nil {
			return d, err
		}
		if tag != 0 {
			return d, p.makeSyntaxError(fmt.Sprintf("expected a (0, ...) record outside any section, got (%d, %q)", tag, value))
		}

		switch value {
		case "EOF":
			return d, nil
		case "SECTION":
			if err := p.parseSection(&d); err != nil {
				return d, err
			}
		default:
			return d, p.makeSyntaxError(fmt.Sprintf("expected SECTION or EOF, got %q", value))
		}
	}
}

func (p *Parser) parseSection(d *entity.Drawing) error {
	tag, name, err := p.readRecord()
	if err != nil {
		return err
	}
	if tag != 2 {
		return p.makeSyntaxError(fmt.Sprintf("expected (2, name) section header, got tag %d", tag))
	}

	if name != "ENTITIES" {
		return p.skipSection()
	}
	return p.parseEntities(d)
}

// skipSection consumes records until the matching ENDSEC.
func (p *Parser) skipSection() error {
	for {
		tag, value, err := p.readRecord()
		if err != nil {
			return err
		}
		if tag == 0 && value == "ENDSEC" {
			return nil
		}
	}
}

// parseEntities consumes the body of an ENTITIES section, dispatching on
// each entity's (0, TYPE) header.
func (p *Parser) parseEntities(d *entity.Drawing) error {
	tag, value, err := p.readRecord()
	if err != nil {
		return err
	}

	for {
		if tag != 0 {
			return p.makeSyntaxError(fmt.Sprintf("expected a (0, ...) record inside ENTITIES, got tag %d", tag))
		}

		switch value {
		case "ENDSEC":
			return nil
		case "LINE":
			var ent entity.Entity
			ent, tag, value, err = p.parseLineEntity()
			if err != nil {
				return err
			}
			d.Entities = append(d.Entities, ent)
		default:
			return p.makeSyntaxError(fmt.Sprintf("unsupported entity type %q", value))
		}
	}
}

// parseLineEntity accumulates a LINE entity's tag->value fields until the
// next (0, ...) record, which it returns unconsumed so the caller can
// dispatch on it directly.
func (p *Parser) parseLineEntity() (ent entity.Entity, nextTag int, nextValue string, err error) {
	fields := map[int]string{}
	for {
		tag, value, err := p.readRecord()
		if err != nil {
			return entity.Entity{}, 0, "", err
		}
		if tag == 0 {
			ent, buildErr := p.buildLine(fields)
			return ent, tag, value, buildErr
		}
		fields[tag] = value
	}
}

func (p *Parser) buildLine(fields map[int]string) (entity.Entity, error) {
	x1, err := p.requireFloat(fields, 10)
	if err != nil {
		return entity.Entity{}, err
	}
	y1, err := p.requireFloat(fields, 20)
	if err != nil {
		return entity.Entity{}, err
	}
	x2, err := p.requireFloat(fields, 11)
	if err != nil {
		return entity.Entity{}, err
	}
	y2, err := p.requireFloat(fields, 21)
	if err != nil {
		return entity.Entity{}, err
	}
	return entity.NewLine(point.New(x1, y1), point.New(x2, y2)), nil
}

func (p *Parser) requireFloat(fields map[int]string, tag int) (float64, error) {
	raw, ok := fields[tag]
	if !ok {
		return 0, p.makeSyntaxError(fmt.Sprintf("LINE entity missing required tag %d", tag))
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, p.makeSyntaxError(fmt.Sprintf("LINE tag %d has non-numeric value %q", tag, raw), err)
	}
	return v, nil
}

// Parse is a convenience wrapper constructing a Parser over r and parsing
// it in one call.
func Parse(r io.Reader) (entity.Drawing, error) {
	return NewParser(r).Parse()
}
