package ir

// Def is the common interface of the four top-level definition kinds a
// Namespace holds: *Alias, *Struct, *Union, *Route.
type Def interface {
	Name() string
}

// Namespace is a logical group of definitions contributed by one or more
// source files.
type Namespace struct {
	Name string

	// Defs holds every definition in this namespace, in the order R2
	// (name registration) first saw it.
	Defs []Def

	// ByName indexes Defs by name for O(1) lookup.
	ByName map[string]Def

	// Imports holds the namespaces this one's "import" statements named.
	Imports []*Namespace

	// Docs collects the namespace-level docstring (the string right after
	// the "namespace" line) of each source file contributing to this
	// namespace, in input file order (spec.md's "collected docstrings"
	// attribute). Docstrings of defs, fields and tags are not included.
	Docs []string

	// Linearized holds Defs filtered to *Struct/*Union and reordered by
	// resolve phase R10: dependency order, a type never precedes one it
	// references by value or by inheritance.
	Linearized []Def

	// Routes holds every *Route in this namespace, in declaration order.
	Routes []*Route
}

// Lookup returns the definition named name in this namespace, if any.
func (n *Namespace) Lookup(name string) (Def, bool) {
	d, ok := n.ByName[name]
	return d, ok
}

// TypesReferencedByRoutes returns, in route declaration order, every
// Struct/Union any of this namespace's routes mentions in its request,
// response, or error slot (spec.md §4.4), duplicates included.
func (n *Namespace) TypesReferencedByRoutes() []DataType {
	var out []DataType

	for _, rt := range n.Routes {
		out = append(out, rt.ReferencedTypes()...)
	}

	return out
}

// Linearization returns the frozen result of resolve phase R10: this
// namespace's Struct/Union defs in dependency order, re-exposed as
// DataType so a backend can walk it without re-deriving the order itself.
func (n *Namespace) Linearization() []DataType {
	out := make([]DataType, 0, len(n.Linearized))

	for _, d := range n.Linearized {
		if dt, ok := d.(DataType); ok {
			out = append(out, dt)
		}
	}

	return out
}

// Api is the top-level container: every resolved namespace, keyed by name.
type Api struct {
	Namespaces map[string]*Namespace

	// Order preserves the sequence namespaces were first encountered in,
	// since Go map iteration order is unspecified and diagnostics/output
	// must be reproducible.
	Order []string
}

// NewApi returns an empty Api ready for resolve to populate.
func NewApi() *Api {
	return &Api{Namespaces: make(map[string]*Namespace)}
}

// Namespace returns the namespace named name, creating and registering an
// empty one (appending to Order) if it does not exist yet.
func (a *Api) Namespace(name string) *Namespace {
	if ns, ok := a.Namespaces[name]; ok {
		return ns
	}

	ns := &Namespace{Name: name, ByName: make(map[string]Def)}
	a.Namespaces[name] = ns
	a.Order = append(a.Order, name)

	return ns
}
