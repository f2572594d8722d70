package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prospectParams() NewStudentParams {
	return NewStudentParams{
		ID:          "s1",
		Name:        "Sofia",
		Surname:     "Lopez",
		GradeLevel:  "jardin",
		ApplicantID: "a1",
	}
}

func TestNewStudent_Prospect(t *testing.T) {
	s, err := NewStudent(prospectParams())
	require.NoError(t, err)

	assert.Equal(t, StatusActive, s.Status)
	assert.Equal(t, "a1", s.ApplicantID)
	assert.Empty(t, s.GuardianID)
	assert.Empty(t, s.GroupID)
}

func TestNewStudent_RejectsBothLinks(t *testing.T) {
	p := prospectParams()
	p.GuardianID = "p1"
	_, err := NewStudent(p)
	assert.Error(t, err)
}

func TestNewStudent_Validation(t *testing.T) {
	p := prospectParams()
	p.Name = "  "
	_, err := NewStudent(p)
	assert.ErrorIs(t, err, ErrInvalidName)

	p = prospectParams()
	p.Surname = ""
	_, err = NewStudent(p)
	assert.ErrorIs(t, err, ErrInvalidName)

	p = prospectParams()
	p.GradeLevel = ""
	_, err = NewStudent(p)
	assert.Error(t, err)
}

func TestStudent_Enroll(t *testing.T) {
	s, _ := NewStudent(prospectParams())

	require.NoError(t, s.Enroll("guardian1"))
	assert.Equal(t, "guardian1", s.GuardianID)
	assert.Empty(t, s.ApplicantID)
}

func TestStudent_AssignGroup_RequiresGuardian(t *testing.T) {
	s, _ := NewStudent(prospectParams())
	s.ApplicantID = ""

	assert.ErrorIs(t, s.AssignGroup("g1"), ErrNoGuardian)
}

func TestStudent_AssignGroup_RejectsProspect(t *testing.T) {
	s, _ := NewStudent(prospectParams())
	s.GuardianID = "guardian1"

	assert.ErrorIs(t, s.AssignGroup("g1"), ErrStillProspect)
}

func TestStudent_AssignAndUnassignGroup(t *testing.T) {
	s, _ := NewStudent(prospectParams())
	require.NoError(t, s.Enroll("guardian1"))

	require.NoError(t, s.AssignGroup("g1"))
	assert.Equal(t, "g1", s.GroupID)

	s.UnassignGroup()
	assert.Empty(t, s.GroupID)
}

func TestStudent_SetStatus(t *testing.T) {
	s, _ := NewStudent(prospectParams())

	require.NoError(t, s.SetStatus(StatusWithdrawn))
	assert.Equal(t, StatusWithdrawn, s.Status)

	assert.ErrorIs(t, s.SetStatus(Status("expelled")), ErrInvalidStatus)
}

func TestStudent_FullName(t *testing.T) {
	s, _ := NewStudent(prospectParams())
	assert.Equal(t, "Sofia Lopez", s.FullName())
}
