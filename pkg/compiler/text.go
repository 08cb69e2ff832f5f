package compiler

import "strings"

// whitespace lists the characters that separate tokens on a line.
const whitespace = " \t"

// RemoveGroupedText removes every substring enclosed by token, the enclosing
// tokens included. Spans alternate between kept and dropped, starting with a
// kept span, so an unterminated group swallows the rest of the text.
func RemoveGroupedText(text, token string) string {
	if token == "" {
		return text
	}

	var b strings.Builder
	keep := true
	for {
		i := strings.Index(text, token)
		if i < 0 {
			if keep {
				b.WriteString(text)
			}
			return b.String()
		}
		if keep {
			b.WriteString(text[:i])
		}
		text = text[i+len(token):]
		keep = !keep
	}
}

// SelectorFromLine returns the line up to its first space or tab.
func SelectorFromLine(line string) string {
	if i := strings.IndexAny(line, whitespace); i >= 0 {
		return line[:i]
	}
	return line
}

// NestLevel counts open minus close delimiters in text, consuming whichever
// delimiter comes first at each step. The result is a running balance, not a
// validity check: a negative value means closers outnumber openers.
func NestLevel(text, open, close string) int {
	if open == "" || close == "" {
		return 0
	}

	level := 0
	for {
		oi := strings.Index(text, open)
		ci := strings.Index(text, close)

		switch {
		case oi < 0 && ci < 0:
			return level
		case oi >= 0 && (ci < 0 || oi <= ci):
			level++
			text = text[oi+len(open):]
		default:
			level--
			text = text[ci+len(close):]
		}
	}
}

// TagNestLevel is NestLevel with the inline content delimiters < and >.
func TagNestLevel(text string) int {
	return NestLevel(text, InlineOpen, InlineClose)
}

// LeadingWhitespace returns the run of spaces and tabs text starts with.
func LeadingWhitespace(text string) string {
	i := 0
	for i < len(text) && strings.IndexByte(whitespace, text[i]) >= 0 {
		i++
	}
	return text[:i]
}
