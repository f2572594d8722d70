package person

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

func TestNewPerson(t *testing.T) {
	p, err := NewPerson(NewPersonParams{
		ID:           "p1",
		Name:         "  Maria Lopez  ",
		Email:        "Maria@Example.com",
		PasswordHash: "$2a$10$hash",
		Role:         RoleGuardian,
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria Lopez", p.Name)
	assert.Equal(t, shared.Email("maria@example.com"), p.Email)
	assert.Equal(t, RoleGuardian, p.Role)
	assert.True(t, p.Active)
	assert.False(t, p.MustChangePassword)
}

func TestNewPerson_Validation(t *testing.T) {
	_, err := NewPerson(NewPersonParams{ID: "", Name: "X", Email: "x@example.com", Role: RoleTeacher})
	assert.Error(t, err)

	_, err = NewPerson(NewPersonParams{ID: "p1", Name: "", Email: "x@example.com", Role: RoleTeacher})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewPerson(NewPersonParams{ID: "p1", Name: strings.Repeat("x", 101), Email: "x@example.com", Role: RoleTeacher})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewPerson(NewPersonParams{ID: "p1", Name: "X", Email: "not-an-email", Role: RoleTeacher})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewPerson(NewPersonParams{ID: "p1", Name: "X", Email: "x@example.com", Role: Role("janitor")})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("  Teacher ")
	require.NoError(t, err)
	assert.Equal(t, RoleTeacher, r)

	_, err = ParseRole("janitor")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestPerson_CredentialLifecycle(t *testing.T) {
	p, err := NewPerson(NewPersonParams{
		ID: "p1", Name: "Ana", Email: "ana@example.com", Role: RoleApplicant,
	})
	require.NoError(t, err)

	// Issuing a temporary credential forces a password change on login.
	p.IssueTemporaryCredential("temp-hash")
	assert.Equal(t, "temp-hash", p.PasswordHash)
	assert.Equal(t, "temp-hash", p.TemporaryHash)
	assert.True(t, p.MustChangePassword)

	// Setting a real password consumes the temporary credential.
	p.SetPassword("real-hash")
	assert.Equal(t, "real-hash", p.PasswordHash)
	assert.Empty(t, p.TemporaryHash)
	assert.False(t, p.MustChangePassword)
}

func TestPerson_Rename(t *testing.T) {
	p, _ := NewPerson(NewPersonParams{ID: "p1", Name: "Ana", Email: "ana@example.com", Role: RoleTeacher})

	require.NoError(t, p.Rename("Ana Maria"))
	assert.Equal(t, "Ana Maria", p.Name)

	assert.ErrorIs(t, p.Rename("   "), ErrInvalidName)
}

func TestCaller_RoleChecks(t *testing.T) {
	assert.True(t, Caller{Role: RoleTeacher}.IsTeacher())
	assert.False(t, Caller{Role: RoleTeacher}.IsAdministrator())
	assert.True(t, Caller{Role: RoleAdministrator}.IsAdministrator())
	assert.False(t, Caller{}.IsTeacher())
}
