package dxfio

import "fmt"

// A SyntaxError denotes a malformed record, an unexpected section
// structure, an unsupported entity type, a missing required tag on a LINE,
// or an unexpected end of stream while reading a tagged ASCII drawing.
type SyntaxError struct {
	Line     uint
	Context  string
	Msg      string
	InnerErr error
}

// Error returns a human-readable message identifying the offending line.
func (se SyntaxError) Error() string {
	msg := se.Msg
	if se.InnerErr != nil {
		msg = fmt.Errorf("%v: %w", msg, se.InnerErr).Error()
	}
	return fmt.Sprintf("dxfio: syntax error at line %v: %v (context: %q)", se.Line, msg, se.Context)
}

// Unwrap returns the wrapped error, if any.
func (se SyntaxError) Unwrap() error {
	return se.InnerErr
}
