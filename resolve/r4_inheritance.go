package resolve

import (
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/token"
)

// r4WireInheritance links each struct to its supertype and each union to
// its subtype, then rejects any cyclic chain.
//
// Union inheritance direction is deliberately the mirror of struct
// inheritance - see ir.Union's doc comment.
func (r *Resolver) r4WireInheritance() {
	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		for _, def := range ns.Defs {
			switch d := def.(type) {
			case *ir.Struct:
				r.wireStructSuper(ns, d)
			case *ir.Union:
				r.wireUnionSubtype(ns, d)
			}
		}
	}

	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		for _, def := range ns.Defs {
			switch d := def.(type) {
			case *ir.Struct:
				if structHasCycle(d) {
					r.errorf(token.KindInheritance, r.structAst[d],
						"struct \""+d.DefName+"\" has a cyclic inheritance chain")
				}
			case *ir.Union:
				if unionHasCycle(d) {
					r.errorf(token.KindInheritance, r.unionAst[d],
						"union \""+d.DefName+"\" has a cyclic subtype chain")
				}
			}
		}
	}
}

func (r *Resolver) wireStructSuper(ns *ir.Namespace, s *ir.Struct) {
	astNode := r.structAst[s]
	if astNode.Extends == nil {
		return
	}

	target, ok := ns.Lookup(astNode.Extends.Value)
	if !ok {
		r.errorf(token.KindUnresolvedRef, astNode.Extends,
			"\""+astNode.Extends.Value+"\" is not defined")

		return
	}

	super, ok := target.(*ir.Struct)
	if !ok {
		r.errorf(token.KindKindMismatch, astNode.Extends,
			"\""+astNode.Extends.Value+"\" is not a struct")

		return
	}

	s.Super = super
}

func (r *Resolver) wireUnionSubtype(ns *ir.Namespace, u *ir.Union) {
	astNode := r.unionAst[u]
	if astNode.Extends == nil {
		return
	}

	target, ok := ns.Lookup(astNode.Extends.Value)
	if !ok {
		r.errorf(token.KindUnresolvedRef, astNode.Extends,
			"\""+astNode.Extends.Value+"\" is not defined")

		return
	}

	sub, ok := target.(*ir.Union)
	if !ok {
		r.errorf(token.KindKindMismatch, astNode.Extends,
			"\""+astNode.Extends.Value+"\" is not a union")

		return
	}

	u.Subtype = sub
}

func structHasCycle(s *ir.Struct) bool {
	seen := map[*ir.Struct]bool{}

	for cur := s; cur != nil; cur = cur.Super {
		if seen[cur] {
			return true
		}

		seen[cur] = true
	}

	return false
}

func unionHasCycle(u *ir.Union) bool {
	seen := map[*ir.Union]bool{}

	for cur := u; cur != nil; cur = cur.Subtype {
		if seen[cur] {
			return true
		}

		seen[cur] = true
	}

	return false
}
