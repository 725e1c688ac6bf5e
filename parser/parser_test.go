package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleNamespace = `namespace users

alias UserId = UInt64

struct User
    "A registered user."

    id UserId
    name String
    nickname String?
        "Shown in place of name when set."

    example default
        id = 1
        name = "Ada"
`

func TestParseNamespaceAndAlias(t *testing.T) {
	file, err := Parse("users.stone", simpleNamespace)
	require.NoError(t, err)
	require.NotNil(t, file)

	assert.Equal(t, "users", file.Namespace.Value)
	require.Len(t, file.Defs, 2)

	alias := file.Defs[0].Alias
	require.NotNil(t, alias)
	assert.Equal(t, "UserId", alias.Name.Value)
	assert.Equal(t, "UInt64", alias.Target.Name())

	st := file.Defs[1].Struct
	require.NotNil(t, st)
	assert.Equal(t, "User", st.Name.Value)
	require.Len(t, st.Fields, 3)
	assert.Equal(t, "id", st.Fields[0].Name.Value)
	assert.True(t, st.Fields[2].Type.Nullable)
	require.Len(t, st.Examples, 1)
	assert.Equal(t, "default", st.Examples[0].Label.Value)
}

const unionAndRoute = `namespace files

union Error
    not_found
    conflict String
        "The path already exists."
    other*

route get_metadata(GetArg, Metadata, Error)
    "Looks up metadata for a path."

    attrs
        style = "rpc"
        deprecated = false
`

func TestParseUnionAndRoute(t *testing.T) {
	file, err := Parse("files.stone", unionAndRoute)
	require.NoError(t, err)
	require.Len(t, file.Defs, 2)

	u := file.Defs[0].Union
	require.NotNil(t, u)
	require.Len(t, u.Tags, 3)
	assert.Equal(t, "not_found", u.Tags[0].Name.Value)
	assert.Nil(t, u.Tags[0].Type)
	assert.True(t, u.Tags[2].CatchAll)

	r := file.Defs[1].Route
	require.NotNil(t, r)
	assert.Equal(t, "get_metadata", r.Name.Value)
	require.NotNil(t, r.Attrs)
	require.Len(t, r.Attrs.Attrs, 2)
	assert.Equal(t, "style", r.Attrs.Attrs[0].Key.Value)
}

func TestParseRejectsMixedIndentation(t *testing.T) {
	_, err := Parse("bad.stone", "namespace bad\n\nstruct S\n\t name String\n    age UInt64\n")
	assert.Error(t, err)
}
