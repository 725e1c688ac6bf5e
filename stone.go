// Package stone is the facade a CLI driver calls: it wires the parser and
// resolver together into one entry point, Compile, the way the teacher's
// root dyml package wired parser.Parse and its own Unmarshal into a single
// public surface over an otherwise multi-package pipeline.
package stone

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/dropbox/stone/ast"
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/parser"
	"github.com/dropbox/stone/resolve"
	"github.com/dropbox/stone/token"
)

// Source is one input file: a name (for diagnostics, not filesystem
// access) and its already-read bytes. stone.Compile never opens a file
// descriptor itself (spec.md §5).
type Source struct {
	Name    string
	Content []byte
}

// Compile parses and resolves sources into a frozen *ir.Api. On success err
// is nil and diags holds only warnings, if any. On failure api is nil,
// diags holds every diagnostic collected across every source in source
// order, and err is non-nil - no partial IR is ever returned.
func Compile(sources []Source) (*ir.Api, []token.Diagnostic, error) {
	files := make([]*ast.File, 0, len(sources))

	var diags []token.Diagnostic

	for _, src := range sources {
		file, err := parser.Parse(src.Name, string(src.Content))
		if err != nil {
			perr := token.NewPosError(token.KindSyntactic, adaptParseErr(src.Name, err), err.Error())
			diags = append(diags, perr.Diagnostic(token.SeverityError))

			continue
		}

		files = append(files, file)
	}

	if token.HasErrors(diags) {
		return nil, diags, errParseFailed
	}

	api, rdiags, err := resolve.Resolve(files)
	diags = append(diags, rdiags...)

	if err != nil {
		return nil, diags, err
	}

	return api, diags, nil
}

var errParseFailed = parseFailedError{}

type parseFailedError struct{}

func (parseFailedError) Error() string { return "stone: parsing failed, see diagnostics" }

// adaptParseErr recovers a best-effort token.Node for a raw parser error
// that never reached a concrete ast node, anchoring the diagnostic at the
// start of the offending file.
func adaptParseErr(name string, _ error) token.Node {
	return token.NewNode(token.Pos{File: name, Line: 1, Col: 1}, token.Pos{File: name, Line: 1, Col: 1})
}

// DefaultHeaderPattern and DefaultSpecPattern are the glob suffix patterns
// ClassifySource consults when a caller does not supply its own.
const (
	DefaultHeaderPattern = "*.stoneh"
	DefaultSpecPattern   = "*.stone"
)

// SourceKind classifies a Source by name, for callers that want to group
// headers separately from full spec files before calling Compile. Stone's
// own Compile does not care about the distinction - both kinds are parsed
// and resolved identically - this is purely a convenience for a CLI driver.
type SourceKind int

const (
	// KindUnclassified is returned when name matches neither pattern; this
	// is not an error; spec.md §6 is explicit that "file extension is
	// informational" and correctness derives from content.
	KindUnclassified SourceKind = iota
	KindHeader
	KindSpec
)

// ClassifySource reports whether name looks like a header or a full spec
// file, matching headerPattern/specPattern as doublestar glob patterns
// (e.g. "*.stoneh", "**/*.stone"). Empty patterns fall back to
// DefaultHeaderPattern/DefaultSpecPattern.
func ClassifySource(name, headerPattern, specPattern string) SourceKind {
	if headerPattern == "" {
		headerPattern = DefaultHeaderPattern
	}

	if specPattern == "" {
		specPattern = DefaultSpecPattern
	}

	if ok, _ := doublestar.Match(headerPattern, name); ok {
		return KindHeader
	}

	if ok, _ := doublestar.Match(specPattern, name); ok {
		return KindSpec
	}

	return KindUnclassified
}
