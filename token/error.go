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

package token

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	plex "github.com/alecthomas/participle/v2/lexer"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ErrDetail is one annotated location inside a PosError's explanation.
type ErrDetail struct {
	Node    Node
	Message string
}

func NewErrDetail(node Node, msg string) ErrDetail {
	return ErrDetail{Node: node, Message: msg}
}

// PosError is a positional compiler error carrying an error Kind and zero or more
// supporting details, in the style of the teacher's token.PosError.
type PosError struct {
	Kind    Kind
	Details []ErrDetail
	Cause   error
	Hint    string
}

// NewPosError creates a PosError rooted at node with the given kind and message.
func NewPosError(kind Kind, node Node, msg string, details ...ErrDetail) *PosError {
	d := append([]ErrDetail{{Node: node, Message: msg}}, details...)

	return &PosError{Kind: kind, Details: d}
}

func (p *PosError) SetCause(err error) *PosError {
	p.Cause = err
	return p
}

func (p *PosError) SetHint(hint string) *PosError {
	p.Hint = hint
	return p
}

func (p *PosError) Unwrap() error {
	return p.Cause
}

func (p *PosError) firstDetail() ErrDetail {
	if len(p.Details) > 0 {
		return p.Details[0]
	}

	return ErrDetail{}
}

func (p *PosError) Error() string {
	if p.Cause == nil {
		return p.firstDetail().Message
	}

	return p.firstDetail().Message + ": " + p.Cause.Error()
}

// Diagnostic turns a PosError into the one Diagnostic record spec.md §6 expects.
func (p *PosError) Diagnostic(severity Severity) Diagnostic {
	d := p.firstDetail()

	return NewDiagnostic(severity, p.Kind, d.Node, p.Error())
}

// Explain returns a multi-line, source-annotated rendering of err, colorizing
// the severity label when w looks like a terminal; nothing is written to w (matching the vjache-cie pattern
// of gating github.com/fatih/color through github.com/mattn/go-isatty).
func Explain(w io.Writer, severity Severity, err error, sources map[string]string) string {
	sb := &strings.Builder{}

	label := string(severity) + ": "

	if f, ok := w.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
		c := color.New(color.FgRed, color.Bold)
		if severity == SeverityWarning {
			c = color.New(color.FgYellow, color.Bold)
		}

		label = c.Sprint(strings.TrimSuffix(label, ": ")) + ": "
	}

	sb.WriteString(label)

	var posErr *PosError
	if errors.As(err, &posErr) {
		sb.WriteString(posErr.Error())
		sb.WriteString("\n")
		sb.WriteString(explainDetails(posErr, sources))

		return sb.String()
	}

	var partErr participle.Error
	if errors.As(err, &partErr) {
		adapted := NewPosError(KindSyntactic, adapterNode{partErr.Position()}, partErr.Message())
		sb.WriteString(adapted.Error())
		sb.WriteString("\n")
		sb.WriteString(explainDetails(adapted, sources))

		return sb.String()
	}

	sb.WriteString(err.Error())
	sb.WriteString("\n")

	return sb.String()
}

func explainDetails(p *PosError, sources map[string]string) string {
	indent := 0
	for _, d := range p.Details {
		l := len(strconv.Itoa(d.Node.Begin().Line))
		if l > indent {
			indent = l
		}
	}

	sb := &strings.Builder{}

	for i, d := range p.Details {
		lines := splitLines(sources[d.Node.Begin().File])
		line := lineAt(lines, d.Node.Begin())

		if i == 0 || d.Node.Begin().File != p.Details[i-1].Node.Begin().File {
			sb.WriteString(d.Node.Begin().String())
			sb.WriteString("\n")
		}

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"d |", d.Node.Begin().Line))
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |", ""))

		width := d.Node.End().Col - d.Node.Begin().Col
		if width <= 1 {
			width = 1
		}

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(d.Node.Begin().Col-1)+"s", ""))
		sb.WriteString(strings.Repeat("^", width))
		sb.WriteString(" ")
		sb.WriteString(d.Message)
		sb.WriteString("\n")
	}

	if p.Hint != "" {
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s = hint: %s\n", "", p.Hint))
	}

	return sb.String()
}

func splitLines(src string) []string {
	if src == "" {
		return nil
	}

	return strings.Split(src, "\n")
}

func lineAt(lines []string, pos Pos) string {
	idx := pos.Line - 1
	if idx < 0 || idx >= len(lines) {
		return ""
	}

	return lines[idx]
}

type adapterNode struct {
	pos plex.Position
}

func (a adapterNode) Begin() Pos {
	return Pos{File: a.pos.Filename, Line: a.pos.Line, Col: a.pos.Column, Offset: a.pos.Offset}
}

func (a adapterNode) End() Pos {
	return Pos{File: a.pos.Filename, Line: a.pos.Line, Col: a.pos.Column, Offset: a.pos.Offset}
}
