package resolve

import (
	"github.com/dropbox/stone/ast"
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/token"
)

// resolveTypeRef resolves a single ast.TypeRef against ns, returning nil
// (after recording a diagnostic) if it cannot be settled. Builtin names are
// tried first for an unqualified reference, "shadowed by nothing" (spec.md
// §4.3 R3); only then is the local symbol table, or - for a qualified
// "ns.Type" reference - the named import's table, consulted.
func (r *Resolver) resolveTypeRef(ns *ir.Namespace, ref *ast.TypeRef) ir.DataType {
	name := ref.Name()

	if qualifier, qualified := ref.Qualifier(); qualified {
		target := lookupImport(ns, qualifier)
		if target == nil {
			r.errorf(token.KindUnresolvedRef, ref,
				"namespace \""+qualifier+"\" is not imported here")

			return nil
		}

		def, ok := target.Lookup(name)
		if !ok {
			r.errorf(token.KindUnresolvedRef, ref,
				"\""+name+"\" is not defined in namespace \""+qualifier+"\"")

			return nil
		}

		return r.userDefToDataType(def, ref)
	}

	if kind, ok := builtinPrimitives[name]; ok {
		return r.buildPrimitive(kind, ref)
	}

	switch name {
	case builtinList:
		return r.buildList(ns, ref)
	case builtinVoid:
		return ir.Void{}
	case builtinAny:
		return ir.Any{}
	}

	def, ok := ns.Lookup(name)
	if !ok {
		r.errorf(token.KindUnresolvedRef, ref,
			"\""+name+"\" is not defined in namespace \""+ns.Name+"\"")

		return nil
	}

	return r.userDefToDataType(def, ref)
}

func lookupImport(ns *ir.Namespace, qualifier string) *ir.Namespace {
	for _, imp := range ns.Imports {
		if imp.Name == qualifier {
			return imp
		}
	}

	return nil
}

func (r *Resolver) userDefToDataType(def ir.Def, ref *ast.TypeRef) ir.DataType {
	switch v := def.(type) {
	case *ir.Alias:
		return r.resolveAliasTarget(v)
	case *ir.Struct:
		return v
	case *ir.Union:
		return v
	case *ir.Route:
		r.errorf(token.KindKindMismatch, ref, "\""+def.Name()+"\" is a route, not a type")
		return nil
	default:
		return nil
	}
}

// resolveAliasTarget resolves a's right-hand side, memoizing the result and
// detecting alias cycles (spec.md §4.3 R3: "an alias cycle is an error").
func (r *Resolver) resolveAliasTarget(a *ir.Alias) ir.DataType {
	if r.aliasDone[a] {
		return a.Target
	}

	astNode := r.aliasAst[a]

	if r.aliasResolving[a] {
		r.errorf(token.KindUnresolvedRef, astNode,
			"alias cycle detected involving \""+a.DefName+"\"")
		r.aliasDone[a] = true

		return nil
	}

	r.aliasResolving[a] = true

	ns := r.api.Namespace(a.Namespace)
	dt := r.resolveTypeRef(ns, &astNode.Target)

	a.Target = dt
	r.aliasResolving[a] = false
	r.aliasDone[a] = true

	return dt
}

func docText(d *ast.Doc) string {
	if d == nil {
		return ""
	}

	return d.Text
}
