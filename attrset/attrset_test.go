package attrset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestAttrsPreservesInsertionOrder(t *testing.T) {
	a := New()
	a.Set("style", "rpc")
	a.Set("deprecated", false)
	a.Set("version", "v1.2.0")

	assert.Equal(t, []string{"style", "deprecated", "version"}, a.Keys())

	v, ok := a.Get("deprecated")
	assert.True(t, ok)
	assert.Equal(t, false, v)
}

func TestAttrsSetOverwritesInPlace(t *testing.T) {
	a := New()
	a.Set("a", 1)
	a.Set("b", 2)

	overwrote := a.Set("a", 3)

	assert.True(t, overwrote)
	assert.Equal(t, []string{"a", "b"}, a.Keys())

	v, _ := a.Get("a")
	assert.Equal(t, 3, v)
}

func TestAttrsMergePrioritizesOther(t *testing.T) {
	base := New()
	base.Set("a", 1)
	base.Set("b", 2)

	other := New()
	other.Set("b", 20)
	other.Set("c", 30)

	merged := base.Merge(other)

	assert.Equal(t, []string{"a", "b", "c"}, merged.Keys())

	v, _ := merged.Get("b")
	assert.Equal(t, 20, v)
}

func TestAttrsMarshalYAMLPreservesOrder(t *testing.T) {
	a := New()
	a.Set("style", "rpc")
	a.Set("deprecated", true)

	out, err := yaml.Marshal(a)
	assert.NoError(t, err)
	assert.Equal(t, "style: rpc\ndeprecated: true\n", string(out))
}
