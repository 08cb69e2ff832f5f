package compiler

import "strings"

// openTag is an element whose closing tag has not been written yet.
type openTag struct {
	level int
	name  string
}

// updateLevel computes the nesting level of the line at the head of the
// remaining text. The first indented line of a document defines the
// indentation unit; later lines count how many whole units they start with.
// Whitespace left over after the last whole unit is ignored.
func (s *state) updateLevel() {
	s.prevLevel = s.level

	ws := LeadingWhitespace(s.remaining)
	switch {
	case ws == "":
		s.level = 0
	case s.indent == "":
		s.indent = ws
		s.level = 1
	default:
		s.level = countIndent(ws, s.indent)
	}
}

func countIndent(ws, unit string) int {
	n := 0
	for strings.HasPrefix(ws, unit) {
		ws = ws[len(unit):]
		n++
	}
	return n
}

// closeOutOfScope closes every open tag that is not an ancestor of the
// current line.
func (s *state) closeOutOfScope() {
	if s.level > s.prevLevel {
		return
	}
	for len(s.open) > 0 && s.open[len(s.open)-1].level >= s.level {
		s.closeTag()
	}
}

func (s *state) closeAll() {
	for len(s.open) > 0 {
		s.closeTag()
	}
}

func (s *state) closeTag() {
	t := s.open[len(s.open)-1]
	s.open = s.open[:len(s.open)-1]
	s.writeLine(t.level, "</"+t.name+">")
}
