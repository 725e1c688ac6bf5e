package resolve

import "github.com/dropbox/stone/ir"

// builtinPrimitives maps the reserved scalar type names to their
// PrimitiveKind. They are "shadowed by nothing" (spec.md §4.3 R3): a
// user-defined type of the same name is simply unreachable by that name.
var builtinPrimitives = map[string]ir.PrimitiveKind{
	"Binary":    ir.Binary,
	"Boolean":   ir.Boolean,
	"Float32":   ir.Float32,
	"Float64":   ir.Float64,
	"Int32":     ir.Int32,
	"Int64":     ir.Int64,
	"UInt32":    ir.UInt32,
	"UInt64":    ir.UInt64,
	"String":    ir.String,
	"Timestamp": ir.Timestamp,
}

const (
	builtinList = "List"
	builtinVoid = "Void"
	builtinAny  = "Any"
)

func isReservedTypeName(name string) bool {
	if _, ok := builtinPrimitives[name]; ok {
		return true
	}

	return name == builtinList || name == builtinVoid || name == builtinAny
}
