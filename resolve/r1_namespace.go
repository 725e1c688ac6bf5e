package resolve

import (
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/token"
)

// r1AggregateNamespaces groups every parsed file by its declared namespace,
// registers each namespace with the IR, collects namespace-level
// docstrings, and checks that every "import" target names a namespace
// actually present among the input files.
func (r *Resolver) r1AggregateNamespaces() {
	for _, f := range r.files {
		name := f.Namespace.Value

		if _, ok := r.nsFiles[name]; !ok {
			r.nsOrder = append(r.nsOrder, name)
			r.api.Namespace(name)
		}

		r.nsFiles[name] = append(r.nsFiles[name], f)

		if f.Doc != nil {
			ns := r.api.Namespace(name)
			ns.Docs = append(ns.Docs, f.Doc.Text)
		}
	}

	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		for _, f := range r.nsFiles[name] {
			for _, imp := range f.Imports {
				target := imp.Name.Value
				if _, ok := r.nsFiles[target]; !ok {
					r.errorf(token.KindUnresolvedRef, imp,
						"import of undefined namespace \""+target+"\"")

					continue
				}

				if !hasNamespace(ns.Imports, target) {
					ns.Imports = append(ns.Imports, r.api.Namespace(target))
				}
			}
		}
	}
}

func hasNamespace(imports []*ir.Namespace, target string) bool {
	for _, ns := range imports {
		if ns.Name == target {
			return true
		}
	}

	return false
}
