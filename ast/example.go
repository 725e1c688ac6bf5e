package ast

import (
	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/dropbox/stone/token"
)

// Example is a labeled, materialized sample value of the enclosing struct or
// union:
//
//	'example' IDENT STRING? NEWLINE
//	  INDENT (IDENT '=' ExampleValue NEWLINE)+ DEDENT
type Example struct {
	Pos, EndPos plex.Position
	Label       Ident             `"example" @@`
	Description *String           `(@@)?`
	Bindings    []*ExampleBinding `Newline Indent (@@)+ Dedent`
}

func (n *Example) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *Example) End() token.Pos   { return wrapPos(n.EndPos) }

// ExampleBinding assigns one field or tag name to its example value.
type ExampleBinding struct {
	Pos, EndPos plex.Position
	Field       Ident        `@@ "="`
	Value       ExampleValue `@@ Newline`
}

func (n *ExampleBinding) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *ExampleBinding) End() token.Pos   { return wrapPos(n.EndPos) }

// ExampleValue is either a literal or a cross-reference to another example by label:
//
//	Literal | IDENT
type ExampleValue struct {
	Pos, EndPos plex.Position
	Literal     *Literal `( @@`
	Ref         *Ident   `| @@ )`
}

func (n *ExampleValue) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *ExampleValue) End() token.Pos   { return wrapPos(n.EndPos) }
