// Package person contains the identity model shared by every other
// domain: administrators, teachers, guardians, and applicant accounts.
package person

import (
	"errors"
	"strings"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Role determines what a person is allowed to do.
type Role string

const (
	// RoleAdministrator manages people, groups, and admission decisions.
	RoleAdministrator Role = "administrator"
	// RoleTeacher leads groups and records grades and observations.
	RoleTeacher Role = "teacher"
	// RoleGuardian is a parent or caretaker of enrolled students.
	RoleGuardian Role = "guardian"
	// RoleApplicant is a prospective guardian moving through admission.
	RoleApplicant Role = "applicant"
)

// IsValid checks that the role is one of the recognized values.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleTeacher, RoleGuardian, RoleApplicant:
		return true
	default:
		return false
	}
}

// ParseRole parses a string into a Role, case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: PERSON
// ══════════════════════════════════════════════════════════════════════════════

// Person is an identity record. Credentials are stored as a bcrypt hash;
// plaintext never leaves the credential issuing flow.
type Person struct {
	// ID is the internal unique identifier (UUID in string form).
	ID string

	// Name is the display name of the person.
	Name string

	// Email is the unique contact address used for login.
	Email shared.Email

	// PasswordHash is the bcrypt hash of the current credential.
	PasswordHash string

	// Role determines permissions.
	Role Role

	// Active marks whether the account may log in.
	Active bool

	// MustChangePassword is set while a temporary credential is in force.
	MustChangePassword bool

	// TemporaryHash is the bcrypt hash of the outstanding temporary
	// credential, empty once consumed.
	TemporaryHash string

	// CreatedAt is when the record was created.
	CreatedAt time.Time

	// UpdatedAt is when the record was last modified.
	UpdatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidRole - the role name is not recognized.
	ErrInvalidRole = shared.NewDomainError("person", "Validate", shared.ErrInvalidInput, "invalid role")

	// ErrInvalidEmail - the email address is malformed.
	ErrInvalidEmail = shared.NewDomainError("person", "Validate", shared.ErrInvalidFormat, "invalid email address")

	// ErrInvalidName - the display name is empty or too long.
	ErrInvalidName = shared.NewDomainError("person", "Validate", shared.ErrEmptyValue, "name must be 1-100 chars")

	// ErrPersonNotFound - no person with the given id or email.
	ErrPersonNotFound = shared.NewDomainError("person", "Find", shared.ErrNotFound, "person not found")

	// ErrEmailTaken - another person already uses the email.
	ErrEmailTaken = shared.NewDomainError("person", "Create", shared.ErrAlreadyExists, "a person with that email already exists")

	// ErrPersonInactive - the account is disabled.
	ErrPersonInactive = shared.NewDomainError("person", "CheckStatus", shared.ErrInvalidState, "person account is disabled")

	// ErrNotATeacher - the referenced person does not hold the teacher role.
	ErrNotATeacher = shared.NewDomainError("person", "CheckRole", shared.ErrInvalidInput, "person must have the teacher role")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewPersonParams contains parameters for creating a new person.
type NewPersonParams struct {
	ID           string
	Name         string
	Email        shared.Email
	PasswordHash string
	Role         Role
}

// NewPerson creates a new person with field validation. Accounts start active.
func NewPerson(params NewPersonParams) (*Person, error) {
	if params.ID == "" {
		return nil, errors.New("person id is required")
	}

	name := strings.TrimSpace(params.Name)
	if len(name) == 0 || len(name) > 100 {
		return nil, ErrInvalidName
	}

	email := params.Email.Normalize()
	if !email.IsValid() {
		return nil, ErrInvalidEmail
	}

	if !params.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	now := time.Now().UTC()

	return &Person{
		ID:           params.ID,
		Name:         name,
		Email:        email,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// Rename updates the display name.
func (p *Person) Rename(name string) error {
	name = strings.TrimSpace(name)
	if len(name) == 0 || len(name) > 100 {
		return ErrInvalidName
	}
	p.Name = name
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// SetActive toggles the active flag.
func (p *Person) SetActive(active bool) {
	p.Active = active
	p.UpdatedAt = time.Now().UTC()
}

// IssueTemporaryCredential stores the hash of a freshly generated
// temporary credential and flags the account for a forced password change.
func (p *Person) IssueTemporaryCredential(hash string) {
	p.TemporaryHash = hash
	p.PasswordHash = hash
	p.MustChangePassword = true
	p.UpdatedAt = time.Now().UTC()
}

// SetPassword replaces the credential hash and clears any outstanding
// temporary credential.
func (p *Person) SetPassword(hash string) {
	p.PasswordHash = hash
	p.TemporaryHash = ""
	p.MustChangePassword = false
	p.UpdatedAt = time.Now().UTC()
}

// ══════════════════════════════════════════════════════════════════════════════
// CALLER CONTEXT
// ══════════════════════════════════════════════════════════════════════════════

// Caller is the authenticated identity performing an operation, as
// supplied by the excluded API layer. Role checks are evaluated once at
// command entry against this value.
type Caller struct {
	PersonID string
	Role     Role
}

// IsTeacher reports whether the caller holds the teacher role.
func (c Caller) IsTeacher() bool {
	return c.Role == RoleTeacher
}

// IsAdministrator reports whether the caller holds the administrator role.
func (c Caller) IsAdministrator() bool {
	return c.Role == RoleAdministrator
}
