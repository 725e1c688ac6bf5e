package resolve

import (
	"github.com/dropbox/stone/ast"
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/token"
)

// r7ResolveExamples materializes every struct/union "example" block into an
// ir.Example, in two passes: first every example gets a shell registered in
// r.exampleIndex (so a forward reference to an example declared later in
// the same or another namespace resolves), then each shell's bindings are
// filled in against that now-complete index.
func (r *Resolver) r7ResolveExamples() {
	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		for _, def := range ns.Defs {
			switch d := def.(type) {
			case *ir.Struct:
				r.shellStructExamples(d)
			case *ir.Union:
				r.shellUnionExamples(d)
			}
		}
	}

	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		for _, def := range ns.Defs {
			switch d := def.(type) {
			case *ir.Struct:
				r.fillStructExamples(d)
			case *ir.Union:
				r.fillUnionExamples(d)
			}
		}
	}

	r.checkExampleCycles()
}

func (r *Resolver) shellStructExamples(s *ir.Struct) {
	astNode := r.structAst[s]

	for _, ex := range astNode.Examples {
		shell := &ir.Example{Namespace: s.Namespace, TypeName: s.DefName, Label: ex.Label.Value}
		if ex.Description != nil {
			shell.Description = ex.Description.Value
		}

		key := exampleKey{namespace: s.Namespace, typeName: s.DefName, label: ex.Label.Value}
		if _, dup := r.exampleIndex[key]; dup {
			r.errorf(token.KindExample, ex,
				"example \""+ex.Label.Value+"\" is already defined on struct \""+s.DefName+"\"")

			continue
		}

		r.exampleIndex[key] = shell
		r.exampleAst[shell] = ex
		s.Examples = append(s.Examples, shell)
	}
}

func (r *Resolver) shellUnionExamples(u *ir.Union) {
	astNode := r.unionAst[u]

	for _, ex := range astNode.Examples {
		shell := &ir.Example{Namespace: u.Namespace, TypeName: u.DefName, Label: ex.Label.Value}
		if ex.Description != nil {
			shell.Description = ex.Description.Value
		}

		key := exampleKey{namespace: u.Namespace, typeName: u.DefName, label: ex.Label.Value}
		if _, dup := r.exampleIndex[key]; dup {
			r.errorf(token.KindExample, ex,
				"example \""+ex.Label.Value+"\" is already defined on union \""+u.DefName+"\"")

			continue
		}

		r.exampleIndex[key] = shell
		r.exampleAst[shell] = ex
		u.Examples = append(u.Examples, shell)
	}
}

func (r *Resolver) fillStructExamples(s *ir.Struct) {
	astNode := r.structAst[s]

	for i, ex := range astNode.Examples {
		if i >= len(s.Examples) {
			break
		}

		shell := s.Examples[i]
		fields := s.AllFields()

		for _, b := range ex.Bindings {
			var field *ir.StructField

			for _, f := range fields {
				if f.Name == b.Field.Value {
					field = f
					break
				}
			}

			if field == nil {
				r.errorf(token.KindExample, b,
					"\""+b.Field.Value+"\" is not a field of struct \""+s.DefName+"\"")

				continue
			}

			val := r.resolveExampleValue(b.Value, field.Type)
			if val == nil {
				continue
			}

			shell.Bindings = append(shell.Bindings, &ir.ExampleBinding{Field: field.Name, Value: val})
		}

		for _, f := range fields {
			if f.Nullable || f.Default != nil {
				continue
			}

			if _, bound := shell.Get(f.Name); !bound {
				r.errorf(token.KindExample, ex,
					"example \""+shell.Label+"\" of struct \""+s.DefName+"\" is missing required field \""+f.Name+"\"")
			}
		}
	}
}

func (r *Resolver) fillUnionExamples(u *ir.Union) {
	astNode := r.unionAst[u]
	tags := u.AllTags()

	for i, ex := range astNode.Examples {
		if i >= len(u.Examples) {
			break
		}

		shell := u.Examples[i]

		if len(ex.Bindings) != 1 {
			r.errorf(token.KindExample, ex,
				"a union example must bind exactly one tag")

			continue
		}

		b := ex.Bindings[0]

		var tag *ir.UnionTag

		for _, t := range tags {
			if t.Name == b.Field.Value {
				tag = t
				break
			}
		}

		if tag == nil {
			r.errorf(token.KindExample, b,
				"\""+b.Field.Value+"\" is not a tag of union \""+u.DefName+"\"")

			continue
		}

		shell.Tag = tag.Name

		if _, isVoid := tag.Type.(ir.Void); isVoid {
			continue
		}

		shell.TagValue = r.resolveExampleValue(b.Value, tag.Type)
	}
}

func (r *Resolver) resolveExampleValue(v ast.ExampleValue, typ ir.DataType) ir.Value {
	if v.Literal != nil {
		return ir.ScalarValue{Literal: toIRLiteral(*v.Literal)}
	}

	nsName, typeName, ok := dataTypeKey(typ)
	if !ok {
		r.errorf(token.KindExample, &v,
			"\""+v.Ref.Value+"\" cannot reference an example here; the target type has no examples")

		return nil
	}

	key := exampleKey{namespace: nsName, typeName: typeName, label: v.Ref.Value}

	target, ok := r.exampleIndex[key]
	if !ok {
		r.errorf(token.KindExample, &v,
			"\""+v.Ref.Value+"\" is not a known example of \""+typeName+"\"")

		return nil
	}

	return ir.ExampleRefValue{Example: target}
}

// checkExampleCycles rejects examples that reference each other in a cycle
// through "field = other_example" bindings - spec.md §4.3 R7 requires
// cross-example references to form a DAG, evaluated bottom-up, so a cycle
// here has no well-founded value.
func (r *Resolver) checkExampleCycles() {
	var all []*ir.Example

	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		for _, def := range ns.Defs {
			switch d := def.(type) {
			case *ir.Struct:
				all = append(all, d.Examples...)
			case *ir.Union:
				all = append(all, d.Examples...)
			}
		}
	}

	visited := map[*ir.Example]bool{}

	for _, ex := range all {
		if visited[ex] {
			continue
		}

		if path := findExampleCycle(ex, nil, map[*ir.Example]bool{}); path != nil {
			for _, n := range path {
				visited[n] = true
			}

			r.reportExampleCycle(path)
		}
	}
}

func exampleRefs(ex *ir.Example) []*ir.Example {
	var refs []*ir.Example

	for _, b := range ex.Bindings {
		if rv, ok := b.Value.(ir.ExampleRefValue); ok {
			refs = append(refs, rv.Example)
		}
	}

	if rv, ok := ex.TagValue.(ir.ExampleRefValue); ok {
		refs = append(refs, rv.Example)
	}

	return refs
}

func findExampleCycle(start *ir.Example, path []*ir.Example, onPath map[*ir.Example]bool) []*ir.Example {
	if onPath[start] {
		for i, n := range path {
			if n == start {
				return append(path[i:], start)
			}
		}

		return []*ir.Example{start, start}
	}

	path = append(path, start)
	onPath[start] = true

	for _, next := range exampleRefs(start) {
		if found := findExampleCycle(next, path, onPath); found != nil {
			return found
		}
	}

	delete(onPath, start)

	return nil
}

func (r *Resolver) reportExampleCycle(path []*ir.Example) {
	head := path[0]

	msg := "example \"" + head.Label + "\" of \"" + head.TypeName + "\" cross-references itself with no well-founded order ("
	for i, ex := range path {
		if i > 0 {
			msg += " -> "
		}

		msg += ex.TypeName + "." + ex.Label
	}

	msg += ")"

	r.errorf(token.KindExample, r.exampleAst[head], msg)
}

// dataTypeKey unwraps a single List level and returns the (namespace,
// type name) a struct/union DataType resolves to, for indexing into
// r.exampleIndex.
func dataTypeKey(typ ir.DataType) (string, string, bool) {
	if l, ok := typ.(*ir.List); ok {
		typ = l.Elem
	}

	switch t := typ.(type) {
	case *ir.Struct:
		return t.Namespace, t.DefName, true
	case *ir.Union:
		return t.Namespace, t.DefName, true
	default:
		return "", "", false
	}
}
