package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructAllFieldsInheritsSupertypeFirst(t *testing.T) {
	base := &Struct{DefName: "Basic", Fields: []*StructField{{Name: "id"}, {Name: "email"}}}
	derived := &Struct{DefName: "Account", Super: base, Fields: []*StructField{{Name: "name"}}}

	names := fieldNames(derived.AllFields())
	assert.Equal(t, []string{"id", "email", "name"}, names)
}

func fieldNames(fields []*StructField) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}

	return out
}

func TestUnionAllTagsWalksSubtypeChain(t *testing.T) {
	leaf := &Union{DefName: "Leaf", Tags: []*UnionTag{{Name: "leaf_only"}}}
	mid := &Union{DefName: "Mid", Subtype: leaf, Tags: []*UnionTag{{Name: "mid_tag", CatchAll: true}}}
	root := &Union{DefName: "Root", Subtype: mid, Tags: []*UnionTag{{Name: "root_tag"}}}

	names := tagNames(root.AllTags())
	assert.Equal(t, []string{"root_tag", "mid_tag", "leaf_only"}, names)

	catchAll, ok := root.CatchAllTag()
	assert.True(t, ok)
	assert.Equal(t, "mid_tag", catchAll.Name)
}

func tagNames(tags []*UnionTag) []string {
	out := make([]string, len(tags))
	for i, tg := range tags {
		out[i] = tg.Name
	}

	return out
}

func TestRouteReferencedTypesUnwrapsSingleList(t *testing.T) {
	metadata := &Struct{DefName: "Metadata"}
	errType := &Union{DefName: "Error"}

	r := &Route{
		Request:  &List{Elem: metadata},
		Response: Void{},
		Error:    errType,
	}

	refs := r.ReferencedTypes()
	assert.Len(t, refs, 2)
	assert.Same(t, metadata, refs[0])
	assert.Same(t, errType, refs[1])
}

func TestApiNamespacePreservesInsertionOrder(t *testing.T) {
	api := NewApi()
	api.Namespace("b")
	api.Namespace("a")
	api.Namespace("b")

	assert.Equal(t, []string{"b", "a"}, api.Order)
}
