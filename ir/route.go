package ir

import "github.com/dropbox/stone/attrset"

// Route is a resolved API endpoint: a name, its request/response/error
// types, a free-form attribute bag, and a docstring.
type Route struct {
	Namespace string
	DefName   string
	Doc       string

	Request  DataType
	Response DataType
	Error    DataType

	Attrs *attrset.Attrs

	// Deprecated is set when the route's attrs block carries
	// "deprecated=true" (spec.md's deprecation-annotations addition,
	// scoped to routes).
	Deprecated bool
}

func (r *Route) Name() string { return r.DefName }

// ReferencedTypes returns the user-defined types (Struct or Union) this
// route's request, response, and error slots mention - unwrapping a single
// level of List, per spec.md §4.4 ("if a reference is List(T), returns T if
// user-defined"). Primitive, Void, and Any slots are skipped.
func (r *Route) ReferencedTypes() []DataType {
	var out []DataType

	for _, dt := range []DataType{r.Request, r.Response, r.Error} {
		if l, ok := dt.(*List); ok {
			dt = l.Elem
		}

		switch dt.(type) {
		case *Struct, *Union:
			out = append(out, dt)
		}
	}

	return out
}
