package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmit(t *testing.T) {
	t.Run("self-closing with id, classes and attributes", func(t *testing.T) {
		s := newState("", false)

		s.emit(element{
			Selector:    Selector{Tag: "input", ID: "name-input", Classes: []string{"class1", "class2"}},
			Attributes:  []string{` type="text"`, ` value="Value"`},
			SelfClosing: true,
		})

		assert.Equal(t, `<input id="name-input" class="class1 class2" type="text" value="Value" />`+"\n", s.out.String())
		assert.Empty(t, s.open)
	})

	t.Run("inline text compressed", func(t *testing.T) {
		s := newState("", true)

		s.emit(element{
			Selector:     Selector{Tag: "span"},
			InnerText:    "<%= val1 %>",
			HasInnerText: true,
		})

		assert.Equal(t, "<span><%= val1 %></span>", s.out.String())
		assert.Empty(t, s.open)
	})

	t.Run("open tag is pushed at the current level", func(t *testing.T) {
		s := newState("", false)
		s.indent = "  "
		s.level = 2

		s.emit(element{Selector: Selector{Tag: "section", Classes: []string{"wide"}}})

		assert.Equal(t, "    <section class=\"wide\">\n", s.out.String())
		assert.Equal(t, []openTag{{2, "section"}}, s.open)
	})

	t.Run("empty inline text still closes the tag", func(t *testing.T) {
		s := newState("", false)

		s.emit(element{Selector: Selector{Tag: "td"}, HasInnerText: true})

		assert.Equal(t, "<td></td>\n", s.out.String())
		assert.Empty(t, s.open)
	})
}

func TestOpeningTag(t *testing.T) {
	e := element{
		Selector:   Selector{Tag: "a", ID: "home", Classes: []string{"nav", "active"}},
		Attributes: []string{` href="/"`},
	}

	assert.Equal(t, `<a id="home" class="nav active" href="/"`, e.openingTag())
}
