// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package lexer

import (
	"io"
	"io/ioutil"

	plex "github.com/alecthomas/participle/v2/lexer"
)

// Definition adapts Lexer to participle's lexer.Definition, the way the
// teacher's parser.Parse wires a hand-assembled lexer into
// participle.Build via participle.Lexer(...). Unlike the teacher's
// stateful.MustSimple regex lexer, Definition can't be expressed as a set of
// regex rules because significant indentation requires a running column
// stack - so it wraps our own Lexer instead.
type Definition struct{}

// StoneLexer is the shared Definition instance handed to participle.Build.
var StoneLexer plex.Definition = Definition{}

func (Definition) Symbols() map[string]plex.TokenType {
	return map[string]plex.TokenType{
		"EOF":           plex.TokenType(EOF),
		"Ident":         plex.TokenType(Ident),
		"IntLiteral":    plex.TokenType(IntLiteral),
		"FloatLiteral":  plex.TokenType(FloatLiteral),
		"StringLiteral": plex.TokenType(StringLiteral),
		"Punct":         plex.TokenType(Punct),
		"Newline":       plex.TokenType(Newline),
		"Indent":        plex.TokenType(Indent),
		"Dedent":        plex.TokenType(Dedent),
	}
}

func (Definition) Lex(filename string, r io.Reader) (plex.Lexer, error) {
	buf, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return &adapter{l: NewLexer(filename, string(buf))}, nil
}

// adapter makes our Lexer satisfy participle's lexer.Lexer interface.
type adapter struct {
	l *Lexer
}

func (a *adapter) Next() (plex.Token, error) {
	tok, err := a.l.Token()
	if err == io.EOF {
		return plex.Token{Type: plex.EOF}, nil
	}

	if err != nil {
		return plex.Token{}, err
	}

	if tok.Type == EOF {
		return plex.Token{
			Type:  plex.EOF,
			Value: tok.Value,
			Pos: plex.Position{
				Filename: tok.Begin().File,
				Offset:   tok.Begin().Offset,
				Line:     tok.Begin().Line,
				Column:   tok.Begin().Col,
			},
		}, nil
	}

	return plex.Token{
		Type:  plex.TokenType(tok.Type),
		Value: tok.Value,
		Pos: plex.Position{
			Filename: tok.Begin().File,
			Offset:   tok.Begin().Offset,
			Line:     tok.Begin().Line,
			Column:   tok.Begin().Col,
		},
	}, nil
}
