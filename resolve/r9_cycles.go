package resolve

import (
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/token"
)

// r9CheckValueContainment rejects a def that contains itself by value with
// no way to terminate: a non-nullable, non-Union-typed field or tag whose
// type is a Struct reached in a cycle back to the starting def. A nullable field, a List, or a reference that
// resolves to a Union all break the cycle - a Union can always terminate
// through one of its other tags - so none of them contributes an edge to
// this graph.
func (r *Resolver) r9CheckValueContainment() {
	graph := map[ir.Def][]ir.Def{}

	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		for _, def := range ns.Defs {
			switch d := def.(type) {
			case *ir.Struct:
				graph[d] = structContainmentEdges(d)
			case *ir.Union:
				graph[d] = unionContainmentEdges(d)
			}
		}
	}

	visited := map[ir.Def]bool{}

	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		for _, def := range ns.Defs {
			switch def.(type) {
			case *ir.Struct, *ir.Union:
			default:
				continue
			}

			if visited[def] {
				continue
			}

			if path := findCycle(def, graph, nil, map[ir.Def]bool{}); path != nil {
				for _, n := range path {
					visited[n] = true
				}

				r.reportContainmentCycle(path)
			}
		}
	}
}

func structContainmentEdges(s *ir.Struct) []ir.Def {
	var edges []ir.Def

	for _, f := range s.Fields {
		if f.Nullable {
			continue
		}

		if t, ok := f.Type.(*ir.Struct); ok {
			edges = append(edges, t)
		}
	}

	return edges
}

func unionContainmentEdges(u *ir.Union) []ir.Def {
	var edges []ir.Def

	for _, t := range u.Tags {
		if target, ok := t.Type.(*ir.Struct); ok {
			edges = append(edges, target)
		}
	}

	return edges
}

// findCycle does a DFS from start, returning the cyclic path if one is
// reachable, or nil if start's whole reachable subgraph is acyclic.
func findCycle(start ir.Def, graph map[ir.Def][]ir.Def, path []ir.Def, onPath map[ir.Def]bool) []ir.Def {
	if onPath[start] {
		for i, n := range path {
			if n == start {
				return append(path[i:], start)
			}
		}

		return []ir.Def{start, start}
	}

	path = append(path, start)
	onPath[start] = true

	for _, next := range graph[start] {
		if found := findCycle(next, graph, path, onPath); found != nil {
			return found
		}
	}

	delete(onPath, start)

	return nil
}

func (r *Resolver) reportContainmentCycle(path []ir.Def) {
	head := path[0]

	var node token.Node

	switch d := head.(type) {
	case *ir.Struct:
		node = r.structAst[d]
	case *ir.Union:
		node = r.unionAst[d]
	default:
		return
	}

	msg := "\"" + head.Name() + "\" contains itself by value with no way to terminate ("
	for i, n := range path {
		if i > 0 {
			msg += " -> "
		}

		msg += n.Name()
	}

	msg += ")"

	r.errorf(token.KindValueContainment, node, msg)
}
