package ir

// Struct is a resolved product type: an ordered field list plus an optional
// supertype and an optional enumerated-subtype table.
type Struct struct {
	Namespace string
	DefName   string
	Doc       string

	// Super is the direct supertype this struct extends, or nil.
	Super *Struct

	// Fields are the fields declared directly on this struct, in source
	// order, not including anything inherited from Super.
	Fields []*StructField

	// Subtypes enumerates this struct's concrete descendants, if its body
	// declared a "union" subtypes block; nil otherwise.
	Subtypes *SubtypeTable

	Examples []*Example

	// linearIndex is this struct's position in its namespace's dependency
	// linearization (resolve phase R10); 0 until computed.
	linearIndex int
}

func (s *Struct) Name() string { return s.DefName }

// AllFields returns the supertype chain's fields followed by this struct's
// own, i.e. inherited fields first, in declaration order per level - the
// shape spec.md §4.4 requires callers see.
func (s *Struct) AllFields() []*StructField {
	if s.Super == nil {
		return append([]*StructField(nil), s.Fields...)
	}

	return append(s.Super.AllFields(), s.Fields...)
}

// DeclaredFields returns only the fields this struct declares itself,
// excluding anything contributed by Super.
func (s *Struct) DeclaredFields() []*StructField {
	return append([]*StructField(nil), s.Fields...)
}

// LinearIndex is this struct's position in its namespace's R10
// linearization order.
func (s *Struct) LinearIndex() int { return s.linearIndex }

// SetLinearIndex is called exactly once by resolve's R10 phase.
func (s *Struct) SetLinearIndex(i int) { s.linearIndex = i }

// StructField is a single named, typed slot on a struct.
type StructField struct {
	Name     string
	Type     DataType
	Nullable bool
	Default  *Literal
	Doc      string
}

// SubtypeTable enumerates a struct's concrete descendants and whether an
// unrecognized tag should be absorbed by a catch-all entry during
// deserialization.
type SubtypeTable struct {
	CatchAll bool
	Entries  []*SubtypeEntry
}

// SubtypeEntry binds one tag name to the struct that implements it.
type SubtypeEntry struct {
	Tag  string
	Type *Struct
}
