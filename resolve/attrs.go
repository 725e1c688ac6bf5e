package resolve

import (
	"fmt"
	"regexp"

	"github.com/dropbox/stone/ast"
	"github.com/dropbox/stone/attrset"
	"github.com/dropbox/stone/ir"
	"github.com/dropbox/stone/token"
)

// literalValue converts a parsed ast.Literal into the attrset.Value it
// represents.
func literalValue(lit ast.Literal) attrset.Value {
	switch {
	case lit.Int != nil:
		return lit.Int.Value
	case lit.Float != nil:
		return lit.Float.Value
	case lit.Str != nil:
		return lit.Str.Value
	case lit.True:
		return true
	case lit.False:
		return false
	default:
		return nil
	}
}

// toIRLiteral converts a parsed ast.Literal into its frozen ir.Literal form.
func toIRLiteral(lit ast.Literal) ir.Literal {
	switch {
	case lit.Int != nil:
		return ir.IntLiteral(lit.Int.Value)
	case lit.Float != nil:
		return ir.FloatLiteral(lit.Float.Value)
	case lit.Str != nil:
		return ir.StringLiteral(lit.Str.Value)
	case lit.True:
		return ir.BoolLiteral(true)
	case lit.False:
		return ir.BoolLiteral(false)
	default:
		return ir.NullLiteral()
	}
}

var attrsAllowedFor = map[ir.PrimitiveKind]map[string]bool{
	ir.Int32:     {"min_value": true, "max_value": true},
	ir.Int64:     {"min_value": true, "max_value": true},
	ir.UInt32:    {"min_value": true, "max_value": true},
	ir.UInt64:    {"min_value": true, "max_value": true},
	ir.Float32:   {"min_value": true, "max_value": true},
	ir.Float64:   {"min_value": true, "max_value": true},
	ir.String:    {"min_length": true, "max_length": true, "pattern": true},
	ir.Binary:    {"min_length": true, "max_length": true},
	ir.Boolean:   {},
	ir.Timestamp: {"format": true},
}

// buildPrimitive builds a Primitive DataType from ref's attribute
// arguments, validating them against kind's allowed attribute set.
func (r *Resolver) buildPrimitive(kind ir.PrimitiveKind, ref *ast.TypeRef) ir.DataType {
	attrs := attrset.New()

	if ref.Args != nil {
		for _, arg := range ref.Args.List {
			if arg.Name == nil {
				r.errorf(token.KindTypeAttribute, arg, "a "+kind.String()+" attribute must be named")
				continue
			}

			if arg.Lit == nil {
				r.errorf(token.KindTypeAttribute, arg,
					"attribute \""+arg.Name.Value+"\" must be a literal")

				continue
			}

			attrs.Set(arg.Name.Value, literalValue(*arg.Lit))
		}
	}

	if err := validatePrimitiveAttrs(kind, attrs); err != nil {
		r.errorf(token.KindTypeAttribute, ref, err.Error())
	}

	if kind == ir.Timestamp {
		if v, ok := attrs.Get("format"); !ok {
			r.errorf(token.KindTypeAttribute, ref, "Timestamp requires a \"format\" attribute")
		} else if s, _ := v.(string); s == "" {
			r.errorf(token.KindTypeAttribute, ref, "Timestamp \"format\" attribute must be non-empty")
		}
	}

	return ir.Primitive{Kind: kind, Attrs: attrs}
}

func validatePrimitiveAttrs(kind ir.PrimitiveKind, attrs *attrset.Attrs) error {
	allowed := attrsAllowedFor[kind]

	for _, key := range attrs.Keys() {
		if !allowed[key] {
			return fmt.Errorf("attribute %q is not valid for %s", key, kind)
		}
	}

	if err := checkOrdered(attrs, "min_value", "max_value"); err != nil {
		return err
	}

	if err := checkOrdered(attrs, "min_length", "max_length"); err != nil {
		return err
	}

	if pat, ok := attrs.Get("pattern"); ok {
		s, _ := pat.(string)
		if _, err := regexp.Compile(s); err != nil {
			return fmt.Errorf("pattern does not compile: %w", err)
		}
	}

	return nil
}

func checkOrdered(attrs *attrset.Attrs, minKey, maxKey string) error {
	minV, minOK := attrs.Get(minKey)
	maxV, maxOK := attrs.Get(maxKey)

	if !minOK || !maxOK {
		return nil
	}

	if toFloat(maxV) < toFloat(minV) {
		return fmt.Errorf("%s must be <= %s", minKey, maxKey)
	}

	return nil
}

func toFloat(v attrset.Value) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

// buildList builds a List DataType: a mandatory positional element-type
// argument, followed by optional named min_items/max_items integer
// attributes.
func (r *Resolver) buildList(ns *ir.Namespace, ref *ast.TypeRef) ir.DataType {
	if ref.Args == nil || len(ref.Args.List) == 0 {
		r.errorf(token.KindKindMismatch, ref, "List requires an element type argument")
		return nil
	}

	first := ref.Args.List[0]
	if first.Type == nil {
		r.errorf(token.KindKindMismatch, first, "List's first argument must be a type, not a literal")
		return nil
	}

	elem := r.resolveTypeRef(ns, first.Type)
	list := &ir.List{Elem: elem}

	for _, arg := range ref.Args.List[1:] {
		if arg.Name == nil || arg.Lit == nil {
			r.errorf(token.KindTypeAttribute, arg, "List attributes must be named literals")
			continue
		}

		iv, ok := literalValue(*arg.Lit).(int64)
		if !ok {
			r.errorf(token.KindTypeAttribute, arg, "\""+arg.Name.Value+"\" must be an integer literal")
			continue
		}

		v := iv

		switch arg.Name.Value {
		case "min_items":
			list.MinItems = &v
		case "max_items":
			list.MaxItems = &v
		default:
			r.errorf(token.KindTypeAttribute, arg, "unknown List attribute \""+arg.Name.Value+"\"")
		}
	}

	if list.MinItems != nil && list.MaxItems != nil && *list.MaxItems < *list.MinItems {
		r.errorf(token.KindTypeAttribute, ref, "min_items must be <= max_items")
	}

	return list
}
