// SPDX-FileCopyrightText: © 2021 The dyml authors <https://github.com/golangee/dyml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package token

// Severity classifies a Diagnostic as specified in spec.md §6.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Kind names the taxonomy of error kinds from spec.md §7, so callers can switch
// on category instead of matching message text.
type Kind string

const (
	KindLexical           Kind = "lexical"
	KindSyntactic         Kind = "syntactic"
	KindRedefinition      Kind = "redefinition"
	KindUnresolvedRef     Kind = "unresolved_reference"
	KindKindMismatch      Kind = "kind_mismatch"
	KindInheritance       Kind = "inheritance"
	KindTypeAttribute     Kind = "type_attribute"
	KindDefaultNullable   Kind = "default_nullability"
	KindExample           Kind = "example"
	KindValueContainment  Kind = "value_containment_cycle"
)

// A Diagnostic is one record of the compiler's diagnostic stream (spec.md §6).
type Diagnostic struct {
	Severity Severity `yaml:"severity"`
	Kind     Kind     `yaml:"kind,omitempty"`
	File     string   `yaml:"file"`
	Line     int      `yaml:"line"`
	Column   int      `yaml:"column"`
	Message  string   `yaml:"message"`
}

// NewDiagnostic builds a Diagnostic anchored at node's start position.
func NewDiagnostic(severity Severity, kind Kind, node Node, message string) Diagnostic {
	pos := node.Begin()

	return Diagnostic{
		Severity: severity,
		Kind:     kind,
		File:     pos.File,
		Line:     pos.Line,
		Column:   pos.Col,
		Message:  message,
	}
}

// HasErrors reports whether diags contains at least one error-severity entry.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}

	return false
}
