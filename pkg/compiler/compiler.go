package compiler

import (
	"strings"

	"github.com/arthur-debert/wieldy/pkg/errors"
)

// Markup delimiters.
const (
	// RawLineMarker starts a line that is copied to the output as is.
	RawLineMarker = "`"
	// ChainOperator nests the statement after it inside the one before it.
	ChainOperator = `\-\`
	// InlineOpen and InlineClose wrap the inline content of a tag.
	InlineOpen  = "<"
	InlineClose = ">"
	// SelfClosingMarker makes a tag self-closing when it ends a line.
	SelfClosingMarker = "/"

	ExpressionOpen  = "{{"
	ExpressionClose = "}}"
	ScriptOpen      = "<%"
	ScriptClose     = "%>"
)

// state is the whole of a compilation in progress. It is created by Compile
// and never shared.
type state struct {
	remaining string
	out       strings.Builder
	open      []openTag

	// indent is the indentation unit, set by the first indented line.
	indent    string
	level     int
	prevLevel int

	// line is the 1-based number of the last physical line read.
	line     int
	compress bool
}

func newState(text string, compress bool) *state {
	return &state{remaining: text, compress: compress}
}

// Compile converts wieldy markup to HTML. With compress set the output has no
// indentation and no line breaks.
//
// Malformed inline content or template expressions abort the compilation
// with an error whose code tells the kind of problem; ErrorLine reports the
// line it was found on.
func Compile(text string, compress bool) (string, error) {
	s := newState(text, compress)
	for s.remaining != "" {
		s.updateLevel()
		s.closeOutOfScope()
		if err := s.processLine(); err != nil {
			return "", err
		}
	}
	s.closeAll()
	return s.out.String(), nil
}

// ErrorLine returns the 1-based line number attached to a compile error.
func ErrorLine(err error) (int, bool) {
	line, ok := errors.GetErrorDetails(err)["line"].(int)
	return line, ok
}
