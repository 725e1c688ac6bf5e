package ast

import (
	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/dropbox/stone/token"
)

// File is the root grammar production: 'namespace' IDENT NEWLINE Doc?
// Import* Def*. One file
// declares exactly one namespace (spec.md §2); several files may contribute
// to the same namespace (resolve phase R1 merges them).
type File struct {
	Pos, EndPos plex.Position
	Namespace   Ident     `"namespace" @@ Newline`
	Doc         *Doc      `(@@)?`
	Imports     []*Import `@@*`
	Defs        []*Def    `@@*`

	// Name is set by parser.Parse to the caller-supplied source name, for
	// diagnostics that predate any token (e.g. "file declares no namespace").
	Name string
}

func (n *File) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *File) End() token.Pos   { return wrapPos(n.EndPos) }

// Import is a single 'import' statement naming another namespace.
type Import struct {
	Pos, EndPos plex.Position
	Name        Ident `"import" @@ Newline`
}

func (n *Import) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *Import) End() token.Pos   { return wrapPos(n.EndPos) }

// Def is one of the four top-level definition kinds: Alias | Struct | Union | Route.
type Def struct {
	Pos, EndPos plex.Position
	Alias       *AliasDef  `( @@`
	Struct      *StructDef `| @@`
	Union       *UnionDef  `| @@`
	Route       *RouteDef  `| @@ )`
}

func (n *Def) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *Def) End() token.Pos   { return wrapPos(n.EndPos) }

// Name returns the identifier of whichever alternative is populated.
func (n *Def) Name() string {
	switch {
	case n.Alias != nil:
		return n.Alias.Name.Value
	case n.Struct != nil:
		return n.Struct.Name.Value
	case n.Union != nil:
		return n.Union.Name.Value
	case n.Route != nil:
		return n.Route.Name.Value
	default:
		return ""
	}
}

// AliasDef is a named shorthand for a type reference: 'alias' IDENT '=' TypeRef NEWLINE.
type AliasDef struct {
	Pos, EndPos plex.Position
	Name        Ident   `"alias" @@ "="`
	Target      TypeRef `@@ Newline`
}

func (n *AliasDef) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *AliasDef) End() token.Pos   { return wrapPos(n.EndPos) }
