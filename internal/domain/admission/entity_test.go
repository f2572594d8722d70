package admission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicant(t *testing.T) {
	a, err := NewApplicant("a1", "p1")
	require.NoError(t, err)

	assert.Equal(t, StateUnreviewed, a.State)
	assert.Nil(t, a.InterviewDate)
}

func TestNewApplicant_RequiresIDs(t *testing.T) {
	_, err := NewApplicant("", "p1")
	assert.Error(t, err)

	_, err = NewApplicant("a1", "")
	assert.Error(t, err)
}

func TestParseState(t *testing.T) {
	s, err := ParseState("  Approved ")
	require.NoError(t, err)
	assert.Equal(t, StateApproved, s)

	_, err = ParseState("limbo")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestApplicant_SetState(t *testing.T) {
	a, _ := NewApplicant("a1", "p1")

	require.NoError(t, a.SetState(StateReviewed))
	assert.Equal(t, StateReviewed, a.State)

	require.NoError(t, a.SetState(StateRejected))
	assert.Equal(t, StateRejected, a.State)

	// Moving back is allowed; the pipeline has no one-way transitions.
	require.NoError(t, a.SetState(StateUnreviewed))
	assert.Equal(t, StateUnreviewed, a.State)
}

func TestApplicant_SetState_Idempotent(t *testing.T) {
	a, _ := NewApplicant("a1", "p1")

	require.NoError(t, a.SetState(StateReviewed))
	require.NoError(t, a.SetState(StateReviewed))
	assert.Equal(t, StateReviewed, a.State)
}

func TestApplicant_SetState_Invalid(t *testing.T) {
	a, _ := NewApplicant("a1", "p1")
	assert.ErrorIs(t, a.SetState(State("limbo")), ErrInvalidState)
	assert.Equal(t, StateUnreviewed, a.State)
}

func TestApplicant_ScheduleInterview(t *testing.T) {
	a, _ := NewApplicant("a1", "p1")
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	a.ScheduleInterview(date)

	assert.Equal(t, StateAwaitingInterview, a.State)
	require.NotNil(t, a.InterviewDate)
	assert.Equal(t, date, *a.InterviewDate)
}

func TestApplicant_ScheduleInterview_ForcesStateFromAnywhere(t *testing.T) {
	a, _ := NewApplicant("a1", "p1")
	require.NoError(t, a.SetState(StateApproved))

	a.ScheduleInterview(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, StateAwaitingInterview, a.State)
}

func TestApplicant_InterviewDateSurvivesTransitions(t *testing.T) {
	a, _ := NewApplicant("a1", "p1")
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	a.ScheduleInterview(date)

	require.NoError(t, a.SetState(StateApproved))

	require.NotNil(t, a.InterviewDate)
	assert.Equal(t, date, *a.InterviewDate)
}

func TestForm_Validate(t *testing.T) {
	valid := Form{
		ApplicantID:   "a1",
		GuardianName:  "Maria",
		ChildName:     "Sofia",
		GuardianEmail: "maria@example.com",
	}
	assert.NoError(t, valid.Validate())

	noApplicant := valid
	noApplicant.ApplicantID = ""
	assert.Error(t, noApplicant.Validate())

	noGuardian := valid
	noGuardian.GuardianName = "   "
	assert.Error(t, noGuardian.Validate())

	noChild := valid
	noChild.ChildName = ""
	assert.Error(t, noChild.Validate())

	badEmail := valid
	badEmail.GuardianEmail = "not-an-email"
	assert.Error(t, badEmail.Validate())
}

func TestForm_GuardianFullName(t *testing.T) {
	f := Form{GuardianName: "Maria", GuardianSurname: "Lopez"}
	assert.Equal(t, "Maria Lopez", f.GuardianFullName())

	noSurname := Form{GuardianName: "Maria"}
	assert.Equal(t, "Maria", noSurname.GuardianFullName())
}
