package resolve

import "github.com/dropbox/stone/ir"

// linearizable is the subset of ir.Def that carries a linear index.
type linearizable interface {
	ir.Def
	SetLinearIndex(int)
}

// r10Linearize orders each namespace's struct/union defs so that no type
// precedes one it depends on by value or by inheritance (spec.md §4.4), via
// a depth-first postorder over the local dependency graph, visiting roots
// in the order R2 first registered them so the result is deterministic and
// changes minimally as source is edited.
func (r *Resolver) r10Linearize() {
	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		var order []ir.Def
		visited := map[ir.Def]bool{}
		visiting := map[ir.Def]bool{}

		var dfs func(d ir.Def)
		dfs = func(d ir.Def) {
			if visited[d] || visiting[d] {
				return
			}

			visiting[d] = true

			for _, dep := range localDeps(d, ns.Name) {
				dfs(dep)
			}

			visiting[d] = false
			visited[d] = true
			order = append(order, d)
		}

		for _, def := range ns.Defs {
			switch def.(type) {
			case *ir.Struct, *ir.Union:
				dfs(def)
			}
		}

		ns.Linearized = order

		for i, d := range order {
			if lz, ok := d.(linearizable); ok {
				lz.SetLinearIndex(i)
			}
		}
	}
}

func localDeps(d ir.Def, namespace string) []ir.Def {
	var deps []ir.Def

	switch v := d.(type) {
	case *ir.Struct:
		if v.Super != nil && v.Super.Namespace == namespace {
			deps = append(deps, v.Super)
		}

		for _, f := range v.Fields {
			deps = append(deps, localDataTypeDep(f.Type, namespace)...)
		}
	case *ir.Union:
		if v.Subtype != nil && v.Subtype.Namespace == namespace {
			deps = append(deps, v.Subtype)
		}

		for _, t := range v.Tags {
			deps = append(deps, localDataTypeDep(t.Type, namespace)...)
		}
	}

	return deps
}

func localDataTypeDep(typ ir.DataType, namespace string) []ir.Def {
	if l, ok := typ.(*ir.List); ok {
		typ = l.Elem
	}

	switch t := typ.(type) {
	case *ir.Struct:
		if t.Namespace == namespace {
			return []ir.Def{t}
		}
	case *ir.Union:
		if t.Namespace == namespace {
			return []ir.Def{t}
		}
	}

	return nil
}
