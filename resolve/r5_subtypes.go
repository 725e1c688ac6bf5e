package resolve

import (
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/token"
)

// r5ValidateSubtypes enforces the enumerated-subtypes invariants of
// spec.md §4.3 R5: every entry in a struct's subtypes block must name an
// actual descendant, and - the two mirror-image halves of the same
// constraint - whichever struct in a supertype chain has further concrete
// descendants below it must itself carry an enumeration of them, whether
// that struct is the one written in source or one reached transitively.
func (r *Resolver) r5ValidateSubtypes() {
	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		children := map[*ir.Struct][]*ir.Struct{}

		for _, def := range ns.Defs {
			s, ok := def.(*ir.Struct)
			if !ok || s.Super == nil {
				continue
			}

			children[s.Super] = append(children[s.Super], s)
		}

		for _, def := range ns.Defs {
			s, ok := def.(*ir.Struct)
			if !ok || s.Subtypes == nil {
				continue
			}

			r.validateSubtypeTable(s, children)
		}
	}
}

func (r *Resolver) validateSubtypeTable(s *ir.Struct, children map[*ir.Struct][]*ir.Struct) {
	astNode := r.structAst[s]
	seenTags := map[string]bool{}

	fieldNames := map[string]bool{}
	for _, f := range s.AllFields() {
		fieldNames[f.Name] = true
	}

	for i, entry := range s.Subtypes.Entries {
		entryAst := astNode.Subtypes.Entries[i]

		if seenTags[entry.Tag] {
			r.errorf(token.KindRedefinition, entryAst,
				"subtype tag \""+entry.Tag+"\" is already used on struct \""+s.DefName+"\"")
		}

		seenTags[entry.Tag] = true

		if fieldNames[entry.Tag] {
			r.errorf(token.KindRedefinition, entryAst,
				"subtype tag \""+entry.Tag+"\" collides with field name \""+entry.Tag+"\"")
		}

		if entry.Type == nil {
			continue
		}

		if !isDescendantOf(entry.Type, s) {
			r.errorf(token.KindKindMismatch, entryAst,
				"\""+entry.Type.DefName+"\" does not extend \""+s.DefName+"\"")
		}

		if kids := children[entry.Type]; len(kids) > 0 && entry.Type.Subtypes == nil {
			r.errorf(token.KindInheritance, entryAst,
				"\""+entry.Type.DefName+"\" has further concrete descendants and must itself enumerate subtypes")
		}
	}
}

func isDescendantOf(s, ancestor *ir.Struct) bool {
	for cur := s.Super; cur != nil; cur = cur.Super {
		if cur == ancestor {
			return true
		}
	}

	return false
}
