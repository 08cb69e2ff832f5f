package compiler

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/wieldy/pkg/errors"
)

type marker struct{ open, close string }

// expressionMarkers are the template expression delimiters an attribute value
// may start with. Such values are consumed whole, whatever they contain.
var expressionMarkers = [...]marker{
	{ExpressionOpen, ExpressionClose},
	{ScriptOpen, ScriptClose},
}

// ParseAttributes consumes the name=value pairs at the start of rest and
// returns them rendered as ` name="value"` fragments, together with whatever
// follows them (usually inline content).
//
// Values are not quoted in the markup, so the end of a value is found by
// looking for the next '=' and backing up to the whitespace before it. When
// no such whitespace exists the rest of the line is left unparsed. The last
// value runs up to inline content or the end of the line. line is only used
// in error messages.
func ParseAttributes(rest string, line int) ([]string, string, error) {
	var attrs []string

	for {
		rest = strings.TrimSpace(rest)

		eq := strings.IndexByte(rest, '=')
		if eq < 0 {
			break
		}
		lt := strings.Index(rest, InlineOpen)
		if lt >= 0 && lt < eq {
			break
		}

		value := rest[eq+1:]
		var attr string

		if m, ok := expressionAt(value); ok {
			end := strings.Index(value[len(m.open):], m.close)
			if end < 0 {
				return nil, "", errors.Newf(errors.ErrUnmatchedExpression,
					"unmatched '%s' found on line %d", m.open, line).
					WithDetail("line", line)
			}
			end += eq + 1 + len(m.open) + len(m.close)
			attr, rest = rest[:end], rest[end:]
		} else if value == "" {
			attr, rest = rest, ""
		} else if next := strings.IndexByte(value, '='); next < 0 {
			if lt >= 0 {
				attr, rest = rest[:lt], rest[lt:]
			} else {
				attr, rest = rest, ""
			}
		} else {
			boundary := strings.LastIndexAny(value[:next], whitespace)
			if boundary < 0 {
				break
			}
			end := eq + 1 + boundary
			attr, rest = rest[:end], rest[end:]
		}

		attrs = append(attrs, renderAttribute(attr))
	}

	return attrs, strings.TrimSpace(rest), nil
}

func expressionAt(value string) (marker, bool) {
	for _, m := range expressionMarkers {
		if strings.HasPrefix(value, m.open) {
			return m, true
		}
	}
	return marker{}, false
}

func renderAttribute(attr string) string {
	attr = strings.TrimSpace(attr)
	eq := strings.IndexByte(attr, '=')
	return fmt.Sprintf(` %s="%s"`, attr[:eq], attr[eq+1:])
}
