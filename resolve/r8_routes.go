package resolve

import (
	"golang.org/x/mod/semver"

	"github.com/dropbox/stone/attrset"
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/token"
)

// r8ValidateRoutes builds each route's attribute bag from its ast attrs
// block and lifts the well-known "deprecated" key into ir.Route.Deprecated,
// the routes-only deprecation-annotations addition.
func (r *Resolver) r8ValidateRoutes() {
	for _, name := range r.nsOrder {
		ns := r.api.Namespace(name)

		for _, rt := range ns.Routes {
			r.buildRouteAttrs(rt)
		}
	}
}

func (r *Resolver) buildRouteAttrs(rt *ir.Route) {
	astNode := r.routeAst[rt]
	attrs := attrset.New()

	if astNode.Attrs != nil {
		for _, a := range astNode.Attrs.Attrs {
			if attrs.Set(a.Key.Value, literalValue(a.Value)) {
				r.warnf(token.KindRedefinition, a,
					"attribute \""+a.Key.Value+"\" repeated; keeping the last value")
			}
		}
	}

	rt.Attrs = attrs

	if v, ok := attrs.Get("deprecated"); ok {
		b, isBool := v.(bool)
		if !isBool {
			r.errorf(token.KindTypeAttribute, astNode,
				"route attribute \"deprecated\" must be true or false")
		} else {
			rt.Deprecated = b

			if b {
				r.warnf(token.KindTypeAttribute, astNode,
					"route \""+rt.DefName+"\" is deprecated")
			}
		}
	}

	if v, ok := attrs.Get("version"); ok {
		s, isStr := v.(string)
		if !isStr || !semver.IsValid(s) {
			r.errorf(token.KindTypeAttribute, astNode,
				"route attribute \"version\" must be a valid semantic version")
		}
	}
}
