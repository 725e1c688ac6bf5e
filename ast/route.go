package ast

import (
	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/dropbox/stone/token"
)

// RouteDef is an API endpoint definition:
//
//	'route' IDENT '(' TypeRef ',' TypeRef ',' TypeRef ')' NEWLINE
//	  (INDENT Doc? AttrsBlock? DEDENT)?
type RouteDef struct {
	Pos, EndPos plex.Position
	Name        Ident       `"route" @@ "("`
	Request     TypeRef     `@@ ","`
	Response    TypeRef     `@@ ","`
	Error       TypeRef     `@@ ")"`
	Doc         *Doc        `Newline (Indent (@@)?`
	Attrs       *AttrsBlock `(@@)? Dedent)?`
}

func (n *RouteDef) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *RouteDef) End() token.Pos   { return wrapPos(n.EndPos) }

// AttrsBlock is a free-form key/value attribute bag attached to a route:
//
//	'attrs' NEWLINE INDENT (IDENT '=' Literal NEWLINE)+ DEDENT
type AttrsBlock struct {
	Pos, EndPos plex.Position
	Attrs       []*AttrAssign `"attrs" Newline Indent (@@)+ Dedent`
}

func (n *AttrsBlock) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *AttrsBlock) End() token.Pos   { return wrapPos(n.EndPos) }

// AttrAssign is one "key = literal" binding inside an AttrsBlock.
type AttrAssign struct {
	Pos, EndPos plex.Position
	Key         Ident   `@@ "="`
	Value       Literal `@@ Newline`
}

func (n *AttrAssign) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *AttrAssign) End() token.Pos   { return wrapPos(n.EndPos) }
