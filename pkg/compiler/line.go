package compiler

import (
	"strings"

	"github.com/arthur-debert/wieldy/pkg/errors"
)

// nextPhysicalLine removes the first line from the remaining text and returns
// it trimmed.
func (s *state) nextPhysicalLine() string {
	var line string
	if i := strings.IndexByte(s.remaining, '\n'); i >= 0 {
		line, s.remaining = s.remaining[:i], s.remaining[i+1:]
	} else {
		line, s.remaining = s.remaining, ""
	}
	s.line++
	return strings.TrimSpace(line)
}

// processLine compiles the next logical line. A logical line is usually one
// physical line, but inline content left open at the end of a line pulls in
// the following lines until its brackets balance.
func (s *state) processLine() error {
	line := s.nextPhysicalLine()
	if line == "" {
		return nil
	}

	if strings.HasPrefix(line, RawLineMarker) {
		s.writeLine(s.level, strings.TrimSpace(line[len(RawLineMarker):]))
		return nil
	}

	pieces := strings.Split(line, ChainOperator)
	for _, piece := range pieces[:len(pieces)-1] {
		if piece = strings.TrimSpace(piece); piece != "" {
			e, _, err := s.parseStatement(piece)
			if err != nil {
				return err
			}
			s.emit(e)
		}
		s.prevLevel = s.level
		s.level++
	}

	last := strings.TrimSpace(pieces[len(pieces)-1])
	if last == "" {
		return nil
	}
	e, rest, err := s.parseStatement(last)
	if err != nil {
		return err
	}

	switch {
	case strings.HasPrefix(rest, InlineOpen):
		text, err := s.readInlineContent(rest)
		if err != nil {
			return err
		}
		e.InnerText, e.HasInnerText = text, true
	case strings.HasPrefix(rest, SelfClosingMarker) && strings.HasSuffix(rest, SelfClosingMarker):
		e.SelfClosing = true
	}

	s.emit(e)
	return nil
}

// parseStatement parses one selector with its attributes and returns the
// text that follows them.
func (s *state) parseStatement(text string) (element, string, error) {
	selector := SelectorFromLine(text)
	attrs, rest, err := ParseAttributes(text[len(selector):], s.line)
	if err != nil {
		return element{}, "", err
	}
	return element{Selector: ParseSelector(selector), Attributes: attrs}, rest, nil
}

// readInlineContent returns the text between the outermost brackets of
// inline content starting with text, reading more lines while the brackets
// are unbalanced.
func (s *state) readInlineContent(text string) (string, error) {
	start := s.line

	balance := TagNestLevel(text)
	if balance < 0 {
		return "", errors.Newf(errors.ErrExcessCloser,
			"too many '%s' found on line %d", InlineClose, start).
			WithDetail("line", start)
	}

	for balance > 0 {
		if s.remaining == "" {
			return "", errors.Newf(errors.ErrUnmatchedOpener,
				"unmatched '%s' found on line %d", InlineOpen, start).
				WithDetail("line", start)
		}
		text += " " + s.nextPhysicalLine()
		balance = TagNestLevel(text)
	}

	text = strings.TrimSpace(text)
	return text[len(InlineOpen) : len(text)-len(InlineClose)], nil
}
