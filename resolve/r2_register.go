package resolve

import (
	"github.com/dropbox/stone/ast"
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/token"
)

// r2RegisterNames walks every namespace's top-level definitions and inserts
// each Alias/Struct/Union/Route name into that namespace's symbol table.
// Only shells are created here - name and kind - so that a TypeRef
// appearing anywhere in the namespace can resolve to a stable pointer
// regardless of declaration order; bodies are filled in by later phases.
func (r *Resolver) r2RegisterNames() {
	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		for _, f := range r.nsFiles[name] {
			for _, def := range f.Defs {
				r.registerDef(ns, def)
			}
		}
	}
}

func (r *Resolver) registerDef(ns *ir.Namespace, def *ast.Def) {
	name := def.Name()

	if existing, ok := ns.ByName[name]; ok {
		r.errorf(token.KindRedefinition, def,
			"\""+name+"\" is already defined in namespace \""+ns.Name+"\"",
			token.NewErrDetail(defNode(existing, r), "first defined here"))

		return
	}

	switch {
	case def.Alias != nil:
		shell := &ir.Alias{Namespace: ns.Name, DefName: name}
		r.aliasAst[shell] = def.Alias
		ns.ByName[name] = shell
		ns.Defs = append(ns.Defs, shell)

	case def.Struct != nil:
		shell := &ir.Struct{Namespace: ns.Name, DefName: name}
		r.structAst[shell] = def.Struct
		ns.ByName[name] = shell
		ns.Defs = append(ns.Defs, shell)

	case def.Union != nil:
		shell := &ir.Union{Namespace: ns.Name, DefName: name}
		r.unionAst[shell] = def.Union
		ns.ByName[name] = shell
		ns.Defs = append(ns.Defs, shell)

	case def.Route != nil:
		shell := &ir.Route{Namespace: ns.Name, DefName: name}
		r.routeAst[shell] = def.Route
		ns.ByName[name] = shell
		ns.Defs = append(ns.Defs, shell)
		ns.Routes = append(ns.Routes, shell)
	}
}

// defNode returns the token.Node to anchor a "first defined here" detail
// at, recovering the original ast node for an already-registered ir.Def.
func defNode(d ir.Def, r *Resolver) token.Node {
	switch v := d.(type) {
	case *ir.Alias:
		return r.aliasAst[v]
	case *ir.Struct:
		return r.structAst[v]
	case *ir.Union:
		return r.unionAst[v]
	case *ir.Route:
		return r.routeAst[v]
	default:
		return nil
	}
}
