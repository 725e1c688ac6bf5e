package resolve_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropbox/stone/ast"
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/parser"
	"github.com/dropbox/stone/resolve"
	"github.com/dropbox/stone/token"
)

func parseAll(t *testing.T, sources map[string]string) []*ast.File {
	t.Helper()

	var files []*ast.File

	for name, src := range sources {
		f, err := parser.Parse(name, src)
		require.NoError(t, err, name)
		files = append(files, f)
	}

	return files
}

func TestResolveSimpleNamespace(t *testing.T) {
	files := parseAll(t, map[string]string{
		"users.stone": `namespace users

alias UserId = UInt64

struct User
    id UserId
    name String

struct Admin extends User
    permissions List(String)

union Role
    basic
    admin String
        "The admin's department."

route get_user(UserId, User, Void)
    attrs
        deprecated = true
`,
	})

	api, diags, err := resolve.Resolve(files)
	require.NoError(t, err)
	require.NotNil(t, api)

	for _, d := range diags {
		assert.NotEqual(t, "error", string(d.Severity))
	}

	ns := api.Namespace("users")
	require.NotNil(t, ns)

	userDef, ok := ns.Lookup("User")
	require.True(t, ok)
	user := userDef.(*ir.Struct)
	assert.Len(t, user.Fields, 2)

	adminDef, ok := ns.Lookup("Admin")
	require.True(t, ok)
	admin := adminDef.(*ir.Struct)
	assert.Same(t, user, admin.Super)
	assert.Len(t, admin.AllFields(), 3)

	routeDef, ok := ns.Lookup("get_user")
	require.True(t, ok)
	route := routeDef.(*ir.Route)
	assert.True(t, route.Deprecated)

	foundWarning := false
	for _, d := range diags {
		if string(d.Severity) == "warning" {
			foundWarning = true
		}
	}
	assert.True(t, foundWarning, "expected a deprecation warning diagnostic")
}

func TestResolveRedefinitionIsAnError(t *testing.T) {
	files := parseAll(t, map[string]string{
		"dup.stone": `namespace dup

struct Thing
    id UInt64

struct Thing
    id UInt64
`,
	})

	api, diags, err := resolve.Resolve(files)
	require.Error(t, err)
	assert.Nil(t, api)
	assert.True(t, hasErrorKind(diags, "redefinition"))
}

func TestResolveUnresolvedTypeRefIsAnError(t *testing.T) {
	files := parseAll(t, map[string]string{
		"bad.stone": `namespace bad

struct Thing
    owner Nonexistent
`,
	})

	_, diags, err := resolve.Resolve(files)
	require.Error(t, err)
	assert.True(t, hasErrorKind(diags, "unresolved_reference"))
}

func TestResolveValueContainmentCycleIsAnError(t *testing.T) {
	files := parseAll(t, map[string]string{
		"cyclic.stone": `namespace cyclic

struct Node
    child Node
`,
	})

	_, diags, err := resolve.Resolve(files)
	require.Error(t, err)
	assert.True(t, hasErrorKind(diags, "value_containment_cycle"))
}

func TestResolveNullableFieldBreaksContainmentCycle(t *testing.T) {
	files := parseAll(t, map[string]string{
		"tree.stone": `namespace tree

struct Node
    child Node?
`,
	})

	api, _, err := resolve.Resolve(files)
	require.NoError(t, err)
	require.NotNil(t, api)
}

func TestResolveListBreaksContainmentCycle(t *testing.T) {
	files := parseAll(t, map[string]string{
		"forest.stone": `namespace forest

struct Node
    children List(Node)
`,
	})

	api, _, err := resolve.Resolve(files)
	require.NoError(t, err)
	require.NotNil(t, api)
}

func TestResolveEnumeratedSubtypesRequireDescendantToEnumerateToo(t *testing.T) {
	files := parseAll(t, map[string]string{
		"subtypes.stone": `namespace subtypes

struct Shape
    union
        circle Circle
        square Square

    kind String

struct Circle extends Shape
    union
        unit UnitCircle

    radius Float64

struct UnitCircle extends Circle
    label String

struct Square extends Shape
    side Float64
`,
	})

	_, diags, err := resolve.Resolve(files)
	require.NoError(t, err)

	for _, d := range diags {
		assert.NotEqual(t, "error", string(d.Severity), d.Message)
	}
}

func TestResolveExamplesCrossReference(t *testing.T) {
	files := parseAll(t, map[string]string{
		"examples.stone": `namespace examples

struct Address
    city String

    example home
        city = "Berlin"

struct Person
    home Address

    example alice
        home = home
`,
	})

	api, _, err := resolve.Resolve(files)
	require.NoError(t, err)

	ns := api.Namespace("examples")
	personDef, _ := ns.Lookup("Person")
	person := personDef.(*ir.Struct)
	require.Len(t, person.Examples, 1)

	binding, ok := person.Examples[0].Get("home")
	require.True(t, ok)

	ref, ok := binding.(ir.ExampleRefValue)
	require.True(t, ok)
	assert.Equal(t, "home", ref.Example.Label)
}

// TestResolveDiagnosticsMatchGolden pins the full diagnostic stream for a
// source with several distinct failures, so a change to message wording,
// kind, or ordering shows up as an explicit unified diff instead of a
// string-contains assertion that would silently tolerate drift.
func TestResolveDiagnosticsMatchGolden(t *testing.T) {
	files := parseAll(t, map[string]string{
		"golden.stone": `namespace golden

struct Thing
    id UInt64

struct Thing
    id UInt64

struct Other
    id UInt64

struct Other
    id UInt64
`,
	})

	_, diags, err := resolve.Resolve(files)
	require.Error(t, err)

	// Both redefinitions surface together: R2 accumulates every error in
	// its own phase before the pipeline aborts ahead of R3.
	want := `golden.stone:6:1: error[redefinition]: "Thing" is already defined in namespace "golden"
golden.stone:12:1: error[redefinition]: "Other" is already defined in namespace "golden"
`

	assertNoDiff(t, want, formatDiagnostics(diags))
}

func formatDiagnostics(diags []token.Diagnostic) string {
	var sb strings.Builder

	for _, d := range diags {
		fmt.Fprintf(&sb, "%s:%d:%d: %s[%s]: %s\n", d.File, d.Line, d.Column, d.Severity, d.Kind, d.Message)
	}

	return sb.String()
}

// assertNoDiff fails with a unified diff between want and got, in the style
// of the teacher pack's difflib-based golden-file comparisons, rather than a
// flat "not equal" report that hides where two long diagnostic streams
// actually diverge.
func assertNoDiff(t *testing.T, want, got string) {
	t.Helper()

	if want == got {
		return
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	}

	text, _ := difflib.GetUnifiedDiffString(diff)
	t.Fatalf("diagnostics mismatch:\n%s", text)
}

func hasErrorKind(diags []token.Diagnostic, kind string) bool {
	for _, d := range diags {
		if d.Severity == token.SeverityError && string(d.Kind) == kind {
			return true
		}
	}

	return false
}
