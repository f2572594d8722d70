// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages.
package shared

import (
	"regexp"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// ID Value Objects
// ═══════════════════════════════════════════════════════════════════════════

// ID represents an entity identifier (UUID in string form).
type ID string

// IsValid checks that the ID is non-empty.
func (id ID) IsValid() bool {
	return strings.TrimSpace(string(id)) != ""
}

// String returns the string representation.
func (id ID) String() string {
	return string(id)
}

// ═══════════════════════════════════════════════════════════════════════════
// Email
// ═══════════════════════════════════════════════════════════════════════════

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email represents a unique contact address of a person.
type Email string

// IsValid checks the email format.
func (e Email) IsValid() bool {
	s := string(e)
	return len(s) <= 120 && emailRegex.MatchString(s)
}

// Normalize returns a lowercased, trimmed version of the address.
func (e Email) Normalize() Email {
	return Email(strings.ToLower(strings.TrimSpace(string(e))))
}

// String returns the string representation.
func (e Email) String() string {
	return string(e)
}

// ═══════════════════════════════════════════════════════════════════════════
// Grade Level
// ═══════════════════════════════════════════════════════════════════════════

// GradeLevel is the free-form grade label used by students and groups
// (e.g., "parvulos", "prejardin", "jardin", "transicion").
type GradeLevel string

// IsValid checks that the label is within the persisted length bounds.
func (g GradeLevel) IsValid() bool {
	s := strings.TrimSpace(string(g))
	return len(s) >= 1 && len(s) <= 50
}

// String returns the string representation.
func (g GradeLevel) String() string {
	return string(g)
}

// ═══════════════════════════════════════════════════════════════════════════
// Academic Period
// ═══════════════════════════════════════════════════════════════════════════

// Period is an academic sub-term used to bucket grades for averaging.
type Period int

// IsValid checks that the period number is positive.
func (p Period) IsValid() bool {
	return p > 0
}

// Int returns the underlying int value.
func (p Period) Int() int {
	return int(p)
}
