package ir

// Literal is a resolved scalar value: one of int64, float64, string, bool,
// or nil (the 'null' literal). It backs field defaults, primitive
// attribute arguments, and the scalar leaves of a materialized example.
type Literal struct {
	Int    *int64
	Float  *float64
	Str    *string
	Bool   *bool
	IsNull bool
}

func IntLiteral(v int64) Literal       { return Literal{Int: &v} }
func FloatLiteral(v float64) Literal   { return Literal{Float: &v} }
func StringLiteral(v string) Literal   { return Literal{Str: &v} }
func BoolLiteral(v bool) Literal       { return Literal{Bool: &v} }
func NullLiteral() Literal             { return Literal{IsNull: true} }

// Value returns the Go-native scalar this literal holds, or nil for null.
func (l Literal) Value() interface{} {
	switch {
	case l.Int != nil:
		return *l.Int
	case l.Float != nil:
		return *l.Float
	case l.Str != nil:
		return *l.Str
	case l.Bool != nil:
		return *l.Bool
	default:
		return nil
	}
}
