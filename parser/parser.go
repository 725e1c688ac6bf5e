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

// Package parser turns Stone source text into an ast.File, the way the
// teacher's parser package wires a lexer into participle.Build and exposes a
// single Parse entrypoint.
package parser

import (
	"bytes"
	"sync"

	"github.com/alecthomas/participle/v2"

	"github.com/dropbox/stone/ast"
	"github.com/dropbox/stone/lexer"
)

var (
	buildOnce sync.Once
	built     *participle.Parser[ast.File]
	buildErr  error
)

func grammar() (*participle.Parser[ast.File], error) {
	buildOnce.Do(func() {
		built, buildErr = participle.Build[ast.File](
			participle.Lexer(lexer.StoneLexer),
			participle.UseLookahead(4),
		)
	})

	return built, buildErr
}

// Parse parses the Stone source src, whose source name (for diagnostics) is
// fname, into an untyped ast.File. No semantic validation - including
// namespace uniqueness, type resolution and attribute checking - happens
// here; see package resolve for that.
func Parse(fname, src string) (*ast.File, error) {
	p, err := grammar()
	if err != nil {
		return nil, err
	}

	file := &ast.File{Name: fname}

	if err := p.Parse(fname, bytes.NewReader([]byte(src)), file); err != nil {
		return nil, err
	}

	return file, nil
}
