// Copyright 2021 Torben Schinke
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast is the untyped syntax tree for a single Stone source file,
// one Go struct per grammar production of spec.md §4.2:
//
//	File        := 'namespace' IDENT NEWLINE Doc? Import* Def*
//	Import      := 'import' IDENT NEWLINE
//	Def         := Alias | Struct | Union | Route
//	Alias       := 'alias' IDENT '=' TypeRef NEWLINE
//	Struct      := 'struct' IDENT ('extends' IDENT)? ':'? NEWLINE
//	                INDENT Doc? SubtypesBlock? Field* Example* DEDENT
//	SubtypesBlock := 'union' ('*')? NEWLINE INDENT (IDENT TypeRef NEWLINE)+ DEDENT
//	Field       := IDENT TypeRef ('=' DefaultValue)? NEWLINE (INDENT Doc DEDENT)?
//	DefaultValue:= Literal | IDENT
//	Union       := 'union' IDENT ('extends' IDENT)? NEWLINE
//	                INDENT Doc? Tag* Example* DEDENT
//	Tag         := IDENT (TypeRef)? ('*')? NEWLINE (INDENT Doc DEDENT)?
//	Route       := 'route' IDENT '(' TypeRef ',' TypeRef ',' TypeRef ')' NEWLINE
//	                (INDENT Doc? AttrsBlock? DEDENT)?
//	AttrsBlock  := 'attrs' NEWLINE INDENT (IDENT '=' Literal NEWLINE)+ DEDENT
//	TypeRef     := IDENT ('.' IDENT)? Args? '?'?
//	Args        := '(' (Arg (',' Arg)*)? ')'
//	Arg         := (IDENT '=')? (Literal | TypeRef)
//	Literal     := INT | FLOAT | STRING | 'true' | 'false' | 'null'
//	Doc         := STRING NEWLINE
//	Example     := 'example' IDENT STRING? NEWLINE
//	                INDENT (IDENT '=' ExampleValue NEWLINE)+ DEDENT
//	ExampleValue:= Literal | IDENT
//
// Grammar is expressed with participle/v2 struct tags over the custom
// lexer.Definition in package lexer, the way the teacher's ast package
// expresses its own DDD grammar over a participle stateful lexer. No
// TypeRef is resolved and no semantic rule (extends meaning, catch-all
// uniqueness, ...) is enforced here; that is package resolve's job.
package ast

import (
	plex "github.com/alecthomas/participle/v2/lexer"

	"github.com/dropbox/stone/token"
)

func wrapPos(p plex.Position) token.Pos {
	return token.Pos{File: p.Filename, Line: p.Line, Col: p.Column, Offset: p.Offset}
}

// Ident is a bare identifier.
type Ident struct {
	Pos, EndPos plex.Position
	Value       string `@Ident`
}

func (n *Ident) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *Ident) End() token.Pos   { return wrapPos(n.EndPos) }
func (n *Ident) String() string   { return n.Value }

// String is a quoted string literal.
type String struct {
	Pos, EndPos plex.Position
	Value       string `@StringLiteral`
}

func (n *String) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *String) End() token.Pos   { return wrapPos(n.EndPos) }

// Int is an integer literal.
type Int struct {
	Pos, EndPos plex.Position
	Value       int64 `@IntLiteral`
}

func (n *Int) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *Int) End() token.Pos   { return wrapPos(n.EndPos) }

// Capture parses the decimal digit run the lexer handed us into an int64.
func (n *Int) Capture(values []string) error {
	var v int64

	for _, c := range values[0] {
		v = v*10 + int64(c-'0')
	}

	n.Value = v

	return nil
}

// Float is a floating point literal.
type Float struct {
	Pos, EndPos plex.Position
	Value       float64 `@FloatLiteral`
}

func (n *Float) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *Float) End() token.Pos   { return wrapPos(n.EndPos) }

// Doc is a single docstring line, used by struct/union/field/tag bodies.
type Doc struct {
	Pos, EndPos plex.Position
	Text        string `@StringLiteral Newline`
}

func (n *Doc) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *Doc) End() token.Pos   { return wrapPos(n.EndPos) }

// Literal is one of the scalar literal forms admitted by spec.md's grammar.
type Literal struct {
	Pos, EndPos plex.Position
	Int         *Int    `( @@`
	Float       *Float  `| @@`
	Str         *String `| @@`
	True        bool    `| @"true"`
	False       bool    `| @"false"`
	Null        bool    `| @"null" )`
}

func (n *Literal) Begin() token.Pos { return wrapPos(n.Pos) }
func (n *Literal) End() token.Pos   { return wrapPos(n.EndPos) }
