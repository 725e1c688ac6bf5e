// Package attrset is an insertion-ordered string-keyed collection, used
// wherever Stone attaches a free-form attribute bag to an IR node (route
// `attrs`, primitive type arguments). Order is
// part of the observable IR (spec.md §6, "stable identifiers"), so a plain
// Go map - whose iteration order is deliberately randomized - cannot back
// it; this is the same problem the teacher's parser.AttributeList solves
// for DDD route attributes, generalized here to arbitrary literal values
// instead of strings only.
package attrset

import "gopkg.in/yaml.v3"

// Value is a resolved attribute literal: one of int64, float64, string,
// bool, or nil (the 'null' literal).
type Value interface{}

// Attr is a single key/value binding, in the order its key was first added.
type Attr struct {
	Key   string
	Value Value
}

// Attrs holds an ordered sequence of unique-keyed Attr bindings.
type Attrs struct {
	entries []Attr
}

// New returns an empty Attrs.
func New() *Attrs {
	return &Attrs{}
}

// Len returns the number of bindings.
func (a *Attrs) Len() int {
	if a == nil {
		return 0
	}

	return len(a.entries)
}

// Set adds key=value, or overwrites the existing value for key in place if
// already present. Returns true if an existing binding was overwritten.
func (a *Attrs) Set(key string, value Value) bool {
	for i := range a.entries {
		if a.entries[i].Key == key {
			a.entries[i].Value = value
			return true
		}
	}

	a.entries = append(a.entries, Attr{Key: key, Value: value})

	return false
}

// Get returns the value bound to key, and whether it was present.
func (a *Attrs) Get(key string) (Value, bool) {
	if a == nil {
		return nil, false
	}

	for _, e := range a.entries {
		if e.Key == key {
			return e.Value, true
		}
	}

	return nil, false
}

// Keys returns the bound keys in insertion order.
func (a *Attrs) Keys() []string {
	if a == nil {
		return nil
	}

	keys := make([]string, len(a.entries))
	for i, e := range a.entries {
		keys[i] = e.Key
	}

	return keys
}

// All returns the bindings in insertion order. Callers must not mutate the
// returned slice.
func (a *Attrs) All() []Attr {
	if a == nil {
		return nil
	}

	return a.entries
}

// Merge returns a new Attrs containing a's bindings overlaid by other's -
// other wins on key collision - preserving a's ordering for keys only in a,
// followed by other's new keys in its own order. Mirrors the teacher's
// AttributeList.Merge ("Attributes in other will be prioritized").
func (a *Attrs) Merge(other *Attrs) *Attrs {
	result := New()

	for _, e := range a.All() {
		result.Set(e.Key, e.Value)
	}

	for _, e := range other.All() {
		result.Set(e.Key, e.Value)
	}

	return result
}

// MarshalYAML renders Attrs as an ordered mapping node, so gopkg.in/yaml.v3
// preserves declaration order instead of the alphabetizing it would apply
// to a plain Go map.
func (a *Attrs) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, e := range a.All() {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(e.Key); err != nil {
			return nil, err
		}

		valNode := &yaml.Node{}
		if err := valNode.Encode(e.Value); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, keyNode, valNode)
	}

	return node, nil
}
