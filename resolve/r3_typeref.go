package resolve

import (
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/token"
)

// r3ResolveTypeRefs walks every TypeRef occurring in alias right-hand
// sides, field types, tag types, route triples, and enumerated-subtype
// entries, resolving each against its namespace.
func (r *Resolver) r3ResolveTypeRefs() {
	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		for _, def := range ns.Defs {
			switch d := def.(type) {
			case *ir.Alias:
				r.resolveAliasTarget(d)
			case *ir.Struct:
				r.resolveStructBody(ns, d)
			case *ir.Union:
				r.resolveUnionBody(ns, d)
			case *ir.Route:
				r.resolveRouteTypes(ns, d)
			}
		}
	}
}

func (r *Resolver) resolveStructBody(ns *ir.Namespace, s *ir.Struct) {
	astNode := r.structAst[s]
	s.Doc = docText(astNode.Doc)

	for _, f := range astNode.Fields {
		dt := r.resolveTypeRef(ns, &f.Type)

		field := &ir.StructField{
			Name:     f.Name.Value,
			Type:     dt,
			Nullable: f.Type.Nullable,
			Doc:      docText(f.Doc),
		}

		s.Fields = append(s.Fields, field)
		r.fieldAst[field] = f
	}

	if astNode.Subtypes == nil {
		return
	}

	table := &ir.SubtypeTable{CatchAll: astNode.Subtypes.CatchAll}

	for _, entry := range astNode.Subtypes.Entries {
		dt := r.resolveTypeRef(ns, &entry.Type)

		target, ok := dt.(*ir.Struct)
		if dt != nil && !ok {
			r.errorf(token.KindKindMismatch, entry,
				"subtype entry \""+entry.Tag.Value+"\" must reference a struct")

			continue
		}

		table.Entries = append(table.Entries, &ir.SubtypeEntry{Tag: entry.Tag.Value, Type: target})
	}

	s.Subtypes = table
}

func (r *Resolver) resolveUnionBody(ns *ir.Namespace, u *ir.Union) {
	astNode := r.unionAst[u]
	u.Doc = docText(astNode.Doc)

	for _, t := range astNode.Tags {
		var dt ir.DataType = ir.Void{}
		if t.Type != nil {
			dt = r.resolveTypeRef(ns, t.Type)
		}

		tag := &ir.UnionTag{
			Name:     t.Name.Value,
			Type:     dt,
			Doc:      docText(t.Doc),
			CatchAll: t.CatchAll,
		}

		u.Tags = append(u.Tags, tag)
		r.tagAst[tag] = t
	}
}

func (r *Resolver) resolveRouteTypes(ns *ir.Namespace, rt *ir.Route) {
	astNode := r.routeAst[rt]
	rt.Doc = docText(astNode.Doc)
	rt.Request = r.resolveTypeRef(ns, &astNode.Request)
	rt.Response = r.resolveTypeRef(ns, &astNode.Response)
	rt.Error = r.resolveTypeRef(ns, &astNode.Error)
}
