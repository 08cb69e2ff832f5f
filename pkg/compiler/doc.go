// Package compiler turns wieldy markup into HTML.
//
// A wieldy document is a sequence of lines. Each line starts with a selector
// (tag, #id and .classes), optionally followed by name=value attributes and by
// inline content wrapped in angle brackets:
//
//	div.card#main
//	  a href=# target=_blank <Read <b>more</b>>
//	  br /
//	  `<!-- copied verbatim -->
//
// Nesting follows indentation. The first indented line fixes the indentation
// unit for the rest of the document. Several tags can be nested on one line
// with the chaining operator:
//
//	ul \-\ li \-\ a href=/ <Home>
//
// Compile performs a single pass over the input and keeps no state between
// calls, so documents can be compiled concurrently.
package compiler
