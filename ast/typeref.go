package ast

import (
	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/dropbox/stone/token"
)

// TypeRef is a syntactic, unresolved reference to a type: IDENT ('.' IDENT)?
// Args? '?'?. When Second is non-nil the reference is namespace-qualified
// (First.Second); otherwise First is the bare type name.
type TypeRef struct {
	Pos, EndPos plex.Position
	First       Ident  `@@`
	Second      *Ident `("." @@)?`
	Args        *Args  `@@?`
	Nullable    bool   `@"?"?`
}

func (n *TypeRef) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *TypeRef) End() token.Pos   { return wrapPos(n.EndPos) }

// Qualifier returns the namespace prefix, if this reference was written
// "ns.Type", and ok=true; otherwise "".
func (n *TypeRef) Qualifier() (string, bool) {
	if n.Second == nil {
		return "", false
	}

	return n.First.Value, true
}

// Name returns the bare type name part of the reference, irrespective of
// whether it carries a namespace qualifier.
func (n *TypeRef) Name() string {
	if n.Second != nil {
		return n.Second.Value
	}

	return n.First.Value
}

// Args is the parenthesized, possibly empty argument list of a TypeRef:
// '(' (Arg (',' Arg)*)? ')'.
type Args struct {
	Pos, EndPos plex.Position
	List        []*Arg `"(" (@@ ("," @@)*)? ")"`
}

func (n *Args) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *Args) End() token.Pos   { return wrapPos(n.EndPos) }

// Arg is one attribute argument inside a TypeRef's parenthesized list: a
// named literal attribute ("name=literal", e.g. a primitive constraint), a
// bare literal, or a bare nested type reference (List's positional element
// type, e.g. "List(String)"):
//
//	Arg := (IDENT '=')? (Literal | TypeRef)
//
// Lit and Type are mutually exclusive; exactly one is non-nil.
type Arg struct {
	Pos, EndPos plex.Position
	Name        *Ident   `(@@ "=")?`
	Lit         *Literal `( @@`
	Type        *TypeRef `| @@ )`
}

func (n *Arg) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *Arg) End() token.Pos   { return wrapPos(n.EndPos) }
