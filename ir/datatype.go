// Package ir is the frozen, resolved intermediate representation that
// package resolve builds from parsed ast.File values and that backends (out
// of scope) consume. Nothing in this package is mutated once resolve hands
// it back to a caller; see the "Pre-resolution vs post-resolution graph"
// design note - the ast package is the pending layer, ir is the resolved
// one, and no node ever travels back from ir to ast.
package ir

import "github.com/dropbox/stone/attrset"

// DataType is the closed set of resolved type shapes a TypeRef can settle
// on: Primitive, List, *Struct, *Union, Void, or Any. It is a tagged
// variant, not an open interface - callers switch on the concrete type
// rather than calling methods that branch internally.
type DataType interface {
	isDataType()
}

// PrimitiveKind enumerates the built-in scalar kinds.
type PrimitiveKind int

const (
	Binary PrimitiveKind = iota
	Boolean
	Float32
	Float64
	Int32
	Int64
	UInt32
	UInt64
	String
	Timestamp
)

func (k PrimitiveKind) String() string {
	switch k {
	case Binary:
		return "Binary"
	case Boolean:
		return "Boolean"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case UInt32:
		return "UInt32"
	case UInt64:
		return "UInt64"
	case String:
		return "String"
	case Timestamp:
		return "Timestamp"
	default:
		return "?"
	}
}

// Primitive is a built-in scalar, optionally constrained by attribute
// arguments (min/max value or length, pattern, timestamp format).
type Primitive struct {
	Kind  PrimitiveKind
	Attrs *attrset.Attrs
}

func (Primitive) isDataType() {}

// List is a homogeneous sequence type with optional item-count bounds.
type List struct {
	Elem     DataType
	MinItems *int64
	MaxItems *int64
}

func (*List) isDataType() {}

// Void carries no data; it names a pure symbol, used by union tags and as a
// route's request/response/error type.
type Void struct{}

func (Void) isDataType() {}

// Any opts a field or route slot out of the static type system; its
// contents are only validated (if at all) by whatever reads it downstream.
type Any struct{}

func (Any) isDataType() {}

func (*Struct) isDataType() {}
func (*Union) isDataType()  {}
