package ast

import (
	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/dropbox/stone/token"
)

// UnionDef is a tagged sum type definition:
//
//	'union' IDENT ('extends' IDENT)? NEWLINE
//	  INDENT Doc? Tag* Example* DEDENT
type UnionDef struct {
	Pos, EndPos plex.Position
	Name        Ident      `"union" @@`
	Extends     *Ident     `("extends" @@)?`
	Doc         *Doc       `Newline Indent (@@)?`
	Tags        []*Tag     `(@@)*`
	Examples    []*Example `(@@)* Dedent`
}

func (n *UnionDef) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *UnionDef) End() token.Pos   { return wrapPos(n.EndPos) }

// Tag is one named variant of a union:
//
//	IDENT (TypeRef)? ('*')? NEWLINE (INDENT Doc DEDENT)?
type Tag struct {
	Pos, EndPos plex.Position
	Name        Ident    `(?! "example") @@`
	Type        *TypeRef `(@@)?`
	CatchAll    bool     `@"*"?`
	Doc         *Doc     `Newline (Indent @@ Dedent)?`
}

func (n *Tag) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *Tag) End() token.Pos   { return wrapPos(n.EndPos) }
