package compiler_test

import (
	"testing"

	"github.com/arthur-debert/wieldy/pkg/compiler"
	"github.com/stretchr/testify/assert"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		token string
		want  compiler.Selector
	}{
		{"div", compiler.Selector{Tag: "div"}},
		{"span.class1#id.class2", compiler.Selector{Tag: "span", ID: "id", Classes: []string{"class1", "class2"}}},
		{"#id.class", compiler.Selector{Tag: "div", ID: "id", Classes: []string{"class"}}},
		{".a.b.c", compiler.Selector{Tag: "div", Classes: []string{"a", "b", "c"}}},
		{"p#first#second", compiler.Selector{Tag: "p", ID: "second"}},
		{"section#main", compiler.Selector{Tag: "section", ID: "main"}},
		{"li.", compiler.Selector{Tag: "li"}},
		{"ul..x", compiler.Selector{Tag: "ul", Classes: []string{"x"}}},
		{"#", compiler.Selector{Tag: "div"}},
		{"my-widget.is-active", compiler.Selector{Tag: "my-widget", Classes: []string{"is-active"}}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, compiler.ParseSelector(tt.token))
		})
	}
}
