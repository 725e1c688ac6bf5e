// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package lexer turns Stone source text into an indentation-aware token
// stream. INDENT/DEDENT/NEWLINE tokens are synthesized from leading
// whitespace, the way Python-family lexers do, since Stone's grammar
// (spec.md §4.1) is significant-whitespace.
package lexer

import "github.com/dropbox/stone/token"

// Type identifies the kind of a Token. The zero value is never produced by the
// Lexer.
type Type int

const (
	_ Type = iota
	// Ident covers identifiers, keywords (namespace, import, alias, struct,
	// union, route, extends, attrs, example) and the literal keywords
	// true/false/null: the lexer does not distinguish keywords from ordinary
	// identifiers, exactly as the teacher's stateful lexer left keyword
	// recognition to the grammar's literal-string matching instead of the
	// lexer itself.
	Ident
	IntLiteral
	FloatLiteral
	StringLiteral
	// Punct covers single punctuation runes: ( ) , . = ? * :
	Punct
	Newline
	Indent
	Dedent
	EOF
)

func (t Type) String() string {
	switch t {
	case Ident:
		return "Ident"
	case IntLiteral:
		return "IntLiteral"
	case FloatLiteral:
		return "FloatLiteral"
	case StringLiteral:
		return "StringLiteral"
	case Punct:
		return "Punct"
	case Newline:
		return "Newline"
	case Indent:
		return "Indent"
	case Dedent:
		return "Dedent"
	case EOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// sentinel Values used for the structural tokens, so that no legal Stone
// identifier can ever collide with one (identifiers never contain NUL).
const (
	newlineValue = "\x00NEWLINE\x00"
	indentValue  = "\x00INDENT\x00"
	dedentValue  = "\x00DEDENT\x00"
)

// A Token is one lexical unit of a Stone source file.
type Token struct {
	Type  Type
	Value string
	token.Position
}
