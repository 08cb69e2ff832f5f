package compiler

import "strings"

// DefaultTag is used when a selector starts with an id or a class.
const DefaultTag = "div"

const (
	idPrefix    = '#'
	classPrefix = '.'
)

// Selector is the parsed form of the first token of a line.
type Selector struct {
	Tag     string
	ID      string
	Classes []string
}

// ParseSelector splits a selector such as span.note#intro.wide into its tag,
// id and classes. Classes keep their order; when several ids are given the
// last one wins.
func ParseSelector(token string) Selector {
	var sel Selector

	if token != "" && (token[0] == idPrefix || token[0] == classPrefix) {
		sel.Tag = DefaultTag
	} else if i := strings.IndexAny(token, "#."); i >= 0 {
		sel.Tag = token[:i]
		token = token[i:]
	} else {
		sel.Tag = token
		token = ""
	}

	for token != "" {
		end := strings.IndexAny(token[1:], "#.")
		if end < 0 {
			end = len(token)
		} else {
			end++
		}

		value := token[1:end]
		if value != "" {
			switch token[0] {
			case idPrefix:
				sel.ID = value
			case classPrefix:
				sel.Classes = append(sel.Classes, value)
			}
		}
		token = token[end:]
	}

	return sel
}
