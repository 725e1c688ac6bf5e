package resolve

import (
	"github.com/dropbox/stone/ast"
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/token"
)

// r6ValidateFieldsAndTags enforces per-member invariants that depend on a
// def's resolved type shape: unique field/tag names (including whatever a
// supertype or subtype chain already contributes), at most one catch-all
// tag across a union's whole subtype chain, and that a field's default
// value is actually a value of its declared type (spec.md §4.3 R6).
func (r *Resolver) r6ValidateFieldsAndTags() {
	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		for _, def := range ns.Defs {
			switch d := def.(type) {
			case *ir.Struct:
				r.validateStructFields(d)
			case *ir.Union:
				r.validateUnionTags(d)
			}
		}
	}
}

func (r *Resolver) validateStructFields(s *ir.Struct) {
	seen := map[string]bool{}
	if s.Super != nil {
		for _, f := range s.Super.AllFields() {
			seen[f.Name] = true
		}
	}

	for _, f := range s.Fields {
		fieldAst := r.fieldAst[f]

		if seen[f.Name] {
			r.errorf(token.KindRedefinition, fieldAst,
				"field \""+f.Name+"\" is already defined on struct \""+s.DefName+"\" or an ancestor")
		}

		seen[f.Name] = true

		if fieldAst.Default != nil {
			if f.Nullable {
				r.errorf(token.KindDefaultNullable, fieldAst.Default,
					"nullable field \""+f.Name+"\" cannot carry an explicit default; omit it or drop the \"?\"")

				continue
			}

			f.Default = r.resolveFieldDefault(fieldAst, f.Type)
		}
	}
}

func (r *Resolver) resolveFieldDefault(fieldAst *ast.Field, typ ir.DataType) *ir.Literal {
	dv := fieldAst.Default

	if dv.Ref != nil {
		u, ok := typ.(*ir.Union)
		if !ok {
			r.errorf(token.KindDefaultNullable, dv,
				"a bare identifier default is only valid for a union-typed field")

			return nil
		}

		for _, tag := range u.AllTags() {
			if tag.Name == dv.Ref.Value {
				if _, isVoid := tag.Type.(ir.Void); !isVoid {
					r.errorf(token.KindDefaultNullable, dv,
						"tag \""+dv.Ref.Value+"\" is not a Void tag and cannot be a bare default")

					return nil
				}

				lit := ir.StringLiteral(dv.Ref.Value)

				return &lit
			}
		}

		r.errorf(token.KindUnresolvedRef, dv,
			"\""+dv.Ref.Value+"\" is not a tag of union \""+u.DefName+"\"")

		return nil
	}

	lit := toIRLiteral(*dv.Lit)

	if !literalMatchesType(lit, typ) {
		r.errorf(token.KindKindMismatch, dv,
			"default value does not match the field's declared type")

		return nil
	}

	return &lit
}

func literalMatchesType(lit ir.Literal, typ ir.DataType) bool {
	if lit.IsNull {
		return true
	}

	p, ok := typ.(ir.Primitive)
	if !ok {
		return false
	}

	switch p.Kind {
	case ir.Int32, ir.Int64, ir.UInt32, ir.UInt64:
		return lit.Int != nil
	case ir.Float32, ir.Float64:
		return lit.Float != nil || lit.Int != nil
	case ir.String, ir.Binary, ir.Timestamp:
		return lit.Str != nil
	case ir.Boolean:
		return lit.Bool != nil
	default:
		return false
	}
}

func (r *Resolver) validateUnionTags(u *ir.Union) {
	seen := map[string]bool{}
	if u.Subtype != nil {
		for _, t := range u.Subtype.AllTags() {
			seen[t.Name] = true
		}
	}

	catchAlls := 0
	if u.Subtype != nil {
		if _, ok := u.Subtype.CatchAllTag(); ok {
			catchAlls++
		}
	}

	for _, t := range u.Tags {
		tagAst := r.tagAst[t]

		if seen[t.Name] {
			r.errorf(token.KindRedefinition, tagAst,
				"tag \""+t.Name+"\" is already defined on union \""+u.DefName+"\" or its subtype chain")
		}

		seen[t.Name] = true

		if t.CatchAll {
			catchAlls++
		}
	}

	if catchAlls > 1 {
		r.errorf(token.KindRedefinition, r.unionAst[u],
			"union \""+u.DefName+"\" has more than one catch-all tag across its subtype chain")
	}
}
