package ast

import (
	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/dropbox/stone/token"
)

// StructDef is a product type definition:
//
//	'struct' IDENT ('extends' IDENT)? ':'? NEWLINE
//	  INDENT Doc? SubtypesBlock? Field* Example* DEDENT
type StructDef struct {
	Pos, EndPos plex.Position
	Name        Ident          `"struct" @@`
	Extends     *Ident         `("extends" @@)?`
	Doc         *Doc           `":"? Newline Indent (@@)?`
	Subtypes    *SubtypesBlock `(@@)?`
	Fields      []*Field       `(@@)*`
	Examples    []*Example     `(@@)* Dedent`
}

func (n *StructDef) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *StructDef) End() token.Pos   { return wrapPos(n.EndPos) }

// Field is a named, typed struct member:
//
//	IDENT TypeRef ('=' DefaultValue)? NEWLINE (INDENT Doc DEDENT)?
type Field struct {
	Pos, EndPos plex.Position
	Name        Ident         `(?! "example") @@`
	Type        TypeRef       `@@`
	Default     *DefaultValue `("=" @@)?`
	Doc         *Doc          `Newline (Indent @@ Dedent)?`
}

// DefaultValue is a field's '=' right-hand side: ordinarily a scalar
// Literal, but a union-typed field's only legal default is the bare name of
// one of that union's Void tags (spec.md §4.3 R6) - so this accepts either:
//
//	DefaultValue := Literal | IDENT
type DefaultValue struct {
	Pos, EndPos plex.Position
	Lit         *Literal `( @@`
	Ref         *Ident   `| @@ )`
}

func (n *DefaultValue) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *DefaultValue) End() token.Pos   { return wrapPos(n.EndPos) }

func (n *Field) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *Field) End() token.Pos   { return wrapPos(n.EndPos) }

// SubtypesBlock enumerates the concrete descendants of a struct:
//
//	'union' ('*')? NEWLINE INDENT (IDENT TypeRef NEWLINE)+ DEDENT
type SubtypesBlock struct {
	Pos, EndPos plex.Position
	CatchAll    bool             `"union" @"*"?`
	Entries     []*SubtypeEntry  `Newline Indent (@@)+ Dedent`
}

func (n *SubtypesBlock) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *SubtypesBlock) End() token.Pos   { return wrapPos(n.EndPos) }

// SubtypeEntry binds one tag name to the struct that implements it.
type SubtypeEntry struct {
	Pos, EndPos plex.Position
	Tag         Ident   `@@`
	Type        TypeRef `@@ Newline`
}

func (n *SubtypeEntry) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *SubtypeEntry) End() token.Pos   { return wrapPos(n.EndPos) }
