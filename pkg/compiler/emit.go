package compiler

import (
	"fmt"
	"strings"
)

// element holds what one tag statement compiles to. A fresh one is built for
// every statement on a line.
type element struct {
	Selector
	Attributes   []string
	InnerText    string
	HasInnerText bool
	SelfClosing  bool
}

func (e element) openingTag() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.Tag)
	if e.ID != "" {
		fmt.Fprintf(&b, ` id="%s"`, e.ID)
	}
	if len(e.Classes) > 0 {
		fmt.Fprintf(&b, ` class="%s"`, strings.Join(e.Classes, " "))
	}
	for _, attr := range e.Attributes {
		b.WriteString(attr)
	}
	return b.String()
}

// emit writes e at the current level. Only elements without inline content
// stay open; they are closed later by the nesting tracker.
func (s *state) emit(e element) {
	tag := e.openingTag()
	switch {
	case e.SelfClosing:
		s.writeLine(s.level, tag+" />")
	case e.HasInnerText:
		s.writeLine(s.level, tag+">"+e.InnerText+"</"+e.Tag+">")
	default:
		s.writeLine(s.level, tag+">")
		s.open = append(s.open, openTag{level: s.level, name: e.Tag})
	}
}

// writeLine writes html indented to level. Compressed output gets neither
// indentation nor line breaks.
func (s *state) writeLine(level int, html string) {
	if !s.compress {
		s.out.WriteString(strings.Repeat(s.indent, level))
	}
	s.out.WriteString(html)
	if !s.compress {
		s.out.WriteByte('\n')
	}
}
