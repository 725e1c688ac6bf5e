package ir

// Union is a resolved tagged sum type.
//
// Inheritance direction is inverted relative to Struct: when a Stone source
// writes "union U extends Y", U becomes the supertype and Y the subtype
// (spec.md §4.3 R4 - "this union is a supertype of Y"). Subtype holds that
// Y, so that AllTags walks down the chain collecting each subtype's own
// tags into the (conceptually broader) supertype's tag set.
type Union struct {
	Namespace string
	DefName   string
	Doc       string

	Subtype *Union

	Tags []*UnionTag

	Examples []*Example

	linearIndex int
}

func (u *Union) Name() string { return u.DefName }

// AllTags returns this union's own tags followed by every tag contributed
// by its subtype chain.
func (u *Union) AllTags() []*UnionTag {
	if u.Subtype == nil {
		return append([]*UnionTag(nil), u.Tags...)
	}

	return append(append([]*UnionTag(nil), u.Tags...), u.Subtype.AllTags()...)
}

// CatchAllTag returns the single catch-all tag across this union and its
// whole subtype chain, if one exists.
func (u *Union) CatchAllTag() (*UnionTag, bool) {
	for _, t := range u.AllTags() {
		if t.CatchAll {
			return t, true
		}
	}

	return nil, false
}

func (u *Union) LinearIndex() int     { return u.linearIndex }
func (u *Union) SetLinearIndex(i int) { u.linearIndex = i }

// UnionTag is a single named variant of a union.
type UnionTag struct {
	Name     string
	Type     DataType // Void for a pure symbol tag
	Doc      string
	CatchAll bool
}
