// Package resolve is the semantic analyzer: it merges a set of parsed
// ast.File values into a frozen ir.Api, running phases R1 through R10 in
// the style of the teacher's parser.validate* helpers - token.PosError
// carrying an ErrDetail chain - but accumulating every error of a phase
// instead of returning on the first one, per spec.md §4.3's "the resolver
// accumulates errors within a phase ... and aborts before the next phase".
package resolve

import (
	"sort"

	"github.com/dropbox/stone/ast"
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/token"
)

// Resolver holds the working state threaded through phases R1-R10. It is
// built fresh for every Resolve call; there is no reuse across runs.
type Resolver struct {
	api   *ir.Api
	diags []token.Diagnostic

	// files is the Resolve call's input, in caller-supplied order.
	files []*ast.File

	// nsFiles groups the input files by their declared namespace name
	// (R1), in first-seen namespace order.
	nsFiles map[string][]*ast.File
	nsOrder []string

	// structAst/unionAst/aliasAst/routeAst record, for every ir shell
	// object created in R2, the ast
	// node it was built from, so later phases can walk its body without
	// a second name lookup.
	structAst map[*ir.Struct]*ast.StructDef
	unionAst  map[*ir.Union]*ast.UnionDef
	aliasAst  map[*ir.Alias]*ast.AliasDef
	routeAst  map[*ir.Route]*ast.RouteDef

	// fieldAst/tagAst mirror structAst et al. one level down, for Field
	// and Tag bodies.
	fieldAst map[*ir.StructField]*ast.Field
	tagAst   map[*ir.UnionTag]*ast.Tag

	// aliasResolving/aliasDone implement transitive alias resolution with
	// cycle detection (R3): resolving an alias that is itself mid-resolve
	// is a cycle.
	aliasResolving map[*ir.Alias]bool
	aliasDone      map[*ir.Alias]bool

	// exampleIndex holds every *ir.Example shell R7 creates, keyed by the
	// owning struct/union def name within a namespace plus label, for
	// cross-reference lookup.
	exampleIndex map[exampleKey]*ir.Example

	// exampleAst mirrors exampleIndex one level down: the ast.Example body
	// behind each materialized *ir.Example, so a later check (cycle
	// detection) can anchor a diagnostic without a second name lookup.
	exampleAst map[*ir.Example]*ast.Example
}

type exampleKey struct {
	namespace string
	typeName  string
	label     string
}

// Resolve merges files into a frozen ir.Api. On success err is nil and
// diags contains only warnings, if any. On failure api is nil, diags
// contains every accumulated diagnostic in source order, and err is
// non-nil.
func Resolve(files []*ast.File) (*ir.Api, []token.Diagnostic, error) {
	r := &Resolver{
		api:            ir.NewApi(),
		files:          files,
		nsFiles:        make(map[string][]*ast.File),
		structAst:      make(map[*ir.Struct]*ast.StructDef),
		unionAst:       make(map[*ir.Union]*ast.UnionDef),
		aliasAst:       make(map[*ir.Alias]*ast.AliasDef),
		routeAst:       make(map[*ir.Route]*ast.RouteDef),
		fieldAst:       make(map[*ir.StructField]*ast.Field),
		tagAst:         make(map[*ir.UnionTag]*ast.Tag),
		aliasResolving: make(map[*ir.Alias]bool),
		aliasDone:      make(map[*ir.Alias]bool),
		exampleIndex:   make(map[exampleKey]*ir.Example),
		exampleAst:     make(map[*ir.Example]*ast.Example),
	}

	phases := []func(){
		r.r1AggregateNamespaces,
		r.r2RegisterNames,
		r.r3ResolveTypeRefs,
		r.r4WireInheritance,
		r.r5ValidateSubtypes,
		r.r6ValidateFieldsAndTags,
		r.r7ResolveExamples,
		r.r8ValidateRoutes,
		r.r9CheckValueContainment,
		r.r10Linearize,
	}

	for _, phase := range phases {
		before := len(r.diags)

		phase()

		if token.HasErrors(r.diags[before:]) {
			sortDiagnostics(r.diags)
			return nil, r.diags, errCompileFailed
		}
	}

	sortDiagnostics(r.diags)

	if token.HasErrors(r.diags) {
		return nil, r.diags, errCompileFailed
	}

	return r.api, r.diags, nil
}

var errCompileFailed = compileFailedError{}

type compileFailedError struct{}

func (compileFailedError) Error() string { return "stone: compilation failed, see diagnostics" }

func (r *Resolver) errorf(kind token.Kind, node token.Node, msg string, details ...token.ErrDetail) {
	perr := token.NewPosError(kind, node, msg, details...)
	r.diags = append(r.diags, perr.Diagnostic(token.SeverityError))
}

func (r *Resolver) warnf(kind token.Kind, node token.Node, msg string) {
	perr := token.NewPosError(kind, node, msg)
	r.diags = append(r.diags, perr.Diagnostic(token.SeverityWarning))
}

// sortDiagnostics orders diagnostics by file then line then column, the
// "source order within file and across files in input order" contract of
// spec.md §7 - input order is approximated by filename since phases may
// interleave namespaces.
func sortDiagnostics(diags []token.Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.File != b.File {
			return a.File < b.File
		}

		if a.Line != b.Line {
			return a.Line < b.Line
		}

		return a.Column < b.Column
	})
}
