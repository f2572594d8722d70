package summons

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseParams(t Type) NewSummonsParams {
	return NewSummonsParams{
		ID:          "sum1",
		Type:        t,
		ScheduledAt: time.Date(2026, 5, 4, 14, 0, 0, 0, time.UTC),
		Reason:      "Quarterly progress review",
	}
}

func TestNewSummons_Individual(t *testing.T) {
	p := baseParams(TypeIndividual)
	p.GuardianIDs = []string{"g1"}
	p.TeacherIDs = []string{"t1"}

	s, err := NewSummons(p)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, s.Status)
	assert.Equal(t, []string{"g1"}, s.GuardianIDs)
	assert.Equal(t, []string{"t1"}, s.TeacherIDs)
	assert.Empty(t, s.ApplicantIDs)
}

func TestNewSummons_Group(t *testing.T) {
	p := baseParams(TypeGroup)
	p.GuardianIDs = []string{"g1", "g2", "g3"}
	p.TeacherIDs = []string{"t1"}

	s, err := NewSummons(p)
	require.NoError(t, err)
	assert.Len(t, s.GuardianIDs, 3)
}

func TestNewSummons_ApplicantReview(t *testing.T) {
	p := baseParams(TypeApplicantReview)
	p.ApplicantIDs = []string{"a1"}

	s, err := NewSummons(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, s.ApplicantIDs)
}

func TestNewSummons_CardinalityRules(t *testing.T) {
	// individual: exactly 1 guardian, exactly 1 teacher, no applicants
	p := baseParams(TypeIndividual)
	p.GuardianIDs = []string{"g1", "g2"}
	p.TeacherIDs = []string{"t1"}
	_, err := NewSummons(p)
	assert.Error(t, err)

	p = baseParams(TypeIndividual)
	p.GuardianIDs = []string{"g1"}
	_, err = NewSummons(p)
	assert.Error(t, err)

	p = baseParams(TypeIndividual)
	p.GuardianIDs = []string{"g1"}
	p.TeacherIDs = []string{"t1"}
	p.ApplicantIDs = []string{"a1"}
	_, err = NewSummons(p)
	assert.Error(t, err)

	// group: at least 1 guardian, exactly 1 teacher
	p = baseParams(TypeGroup)
	p.TeacherIDs = []string{"t1"}
	_, err = NewSummons(p)
	assert.Error(t, err)

	p = baseParams(TypeGroup)
	p.GuardianIDs = []string{"g1"}
	p.TeacherIDs = []string{"t1", "t2"}
	_, err = NewSummons(p)
	assert.Error(t, err)

	// applicant_review: exactly 1 applicant, nobody else
	p = baseParams(TypeApplicantReview)
	_, err = NewSummons(p)
	assert.Error(t, err)

	p = baseParams(TypeApplicantReview)
	p.ApplicantIDs = []string{"a1"}
	p.GuardianIDs = []string{"g1"}
	_, err = NewSummons(p)
	assert.Error(t, err)
}

func TestNewSummons_Validation(t *testing.T) {
	p := baseParams(Type("audit"))
	_, err := NewSummons(p)
	assert.ErrorIs(t, err, ErrInvalidType)

	p = baseParams(TypeIndividual)
	p.Reason = "   "
	_, err = NewSummons(p)
	assert.ErrorIs(t, err, ErrEmptyReason)
}

func TestNewSummons_CopiesParticipantSlices(t *testing.T) {
	guardians := []string{"g1"}
	p := baseParams(TypeIndividual)
	p.GuardianIDs = guardians
	p.TeacherIDs = []string{"t1"}

	s, err := NewSummons(p)
	require.NoError(t, err)

	guardians[0] = "mutated"
	assert.Equal(t, "g1", s.GuardianIDs[0])
}

func TestSummons_SetStatus(t *testing.T) {
	p := baseParams(TypeIndividual)
	p.GuardianIDs = []string{"g1"}
	p.TeacherIDs = []string{"t1"}
	s, _ := NewSummons(p)

	require.NoError(t, s.SetStatus(StatusHeld))
	assert.Equal(t, StatusHeld, s.Status)

	// Any recognized status is reachable from any other.
	require.NoError(t, s.SetStatus(StatusPostponed))
	require.NoError(t, s.SetStatus(StatusCancelled))
	require.NoError(t, s.SetStatus(StatusPending))

	assert.ErrorIs(t, s.SetStatus(Status("forgotten")), ErrInvalidStatus)
}

func TestParseTypeAndStatus(t *testing.T) {
	ty, err := ParseType(" Applicant_Review ")
	require.NoError(t, err)
	assert.Equal(t, TypeApplicantReview, ty)

	st, err := ParseStatus("HELD")
	require.NoError(t, err)
	assert.Equal(t, StatusHeld, st)

	_, err = ParseType("audit")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = ParseStatus("forgotten")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
