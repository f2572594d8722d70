package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/summons"
)

func newCreateSummonsHandler(t *testing.T) (*CreateSummonsHandler, *fakeSummonsRepo) {
	t.Helper()
	summonsRepo := &fakeSummonsRepo{}
	personRepo := &fakePersonRepo{}
	applicantRepo := &fakeApplicantRepo{}

	seedPerson(t, personRepo, "guardian1", person.RoleGuardian)
	seedPerson(t, personRepo, "guardian2", person.RoleGuardian)
	seedPerson(t, personRepo, "t1", person.RoleTeacher)
	seedApplicant(t, applicantRepo, "a1", "pa1")

	h := NewCreateSummonsHandler(summonsRepo, personRepo, applicantRepo, shared.NopPublisher{})
	return h, summonsRepo
}

func TestCreateSummons_Individual(t *testing.T) {
	h, repo := newCreateSummonsHandler(t)

	s, err := h.Handle(context.Background(), CreateSummonsCommand{
		Type:        "individual",
		ScheduledAt: time.Date(2026, 5, 4, 14, 0, 0, 0, time.UTC),
		Reason:      "Progress review",
		GuardianIDs: []string{"guardian1"},
		TeacherIDs:  []string{"t1"},
	})
	require.NoError(t, err)

	assert.Equal(t, summons.StatusPending, s.Status)
	assert.Len(t, repo.summonses, 1)
}

func TestCreateSummons_Group(t *testing.T) {
	h, _ := newCreateSummonsHandler(t)

	s, err := h.Handle(context.Background(), CreateSummonsCommand{
		Type:        "group",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Reason:      "Semester kickoff",
		GuardianIDs: []string{"guardian1", "guardian2"},
		TeacherIDs:  []string{"t1"},
	})
	require.NoError(t, err)
	assert.Len(t, s.GuardianIDs, 2)
}

func TestCreateSummons_ApplicantReview(t *testing.T) {
	h, _ := newCreateSummonsHandler(t)

	s, err := h.Handle(context.Background(), CreateSummonsCommand{
		Type:         "applicant_review",
		ScheduledAt:  time.Now().Add(24 * time.Hour),
		Reason:       "Admission interview",
		ApplicantIDs: []string{"a1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, s.ApplicantIDs)
}

func TestCreateSummons_CardinalityViolation(t *testing.T) {
	h, repo := newCreateSummonsHandler(t)

	_, err := h.Handle(context.Background(), CreateSummonsCommand{
		Type:        "individual",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Reason:      "Progress review",
		GuardianIDs: []string{"guardian1", "guardian2"},
		TeacherIDs:  []string{"t1"},
	})
	assert.True(t, shared.IsValidation(err))
	assert.Empty(t, repo.summonses)
}

func TestCreateSummons_UnresolvedParticipant(t *testing.T) {
	h, repo := newCreateSummonsHandler(t)

	_, err := h.Handle(context.Background(), CreateSummonsCommand{
		Type:        "individual",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Reason:      "Progress review",
		GuardianIDs: []string{"ghost"},
		TeacherIDs:  []string{"t1"},
	})
	assert.True(t, shared.IsNotFound(err))
	assert.Empty(t, repo.summonses)
}

func TestCreateSummons_InvalidType(t *testing.T) {
	h, _ := newCreateSummonsHandler(t)

	_, err := h.Handle(context.Background(), CreateSummonsCommand{
		Type:        "audit",
		ScheduledAt: time.Now(),
		Reason:      "why not",
	})
	assert.ErrorIs(t, err, summons.ErrInvalidType)
}

func TestChangeSummonsStatus(t *testing.T) {
	repo := &fakeSummonsRepo{}
	s, err := summons.NewSummons(summons.NewSummonsParams{
		ID:          "sum1",
		Type:        summons.TypeIndividual,
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Reason:      "Progress review",
		GuardianIDs: []string{"g1"},
		TeacherIDs:  []string{"t1"},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), s))

	h := NewChangeSummonsStatusHandler(repo, shared.NopPublisher{})

	updated, err := h.Handle(context.Background(), ChangeSummonsStatusCommand{
		SummonsID: "sum1",
		NewStatus: "Held",
	})
	require.NoError(t, err)
	assert.Equal(t, summons.StatusHeld, updated.Status)
}

func TestChangeSummonsStatus_InvalidStatus(t *testing.T) {
	h := NewChangeSummonsStatusHandler(&fakeSummonsRepo{}, shared.NopPublisher{})

	_, err := h.Handle(context.Background(), ChangeSummonsStatusCommand{
		SummonsID: "sum1",
		NewStatus: "forgotten",
	})
	assert.ErrorIs(t, err, summons.ErrInvalidStatus)
}

func TestChangeSummonsStatus_NotFound(t *testing.T) {
	h := NewChangeSummonsStatusHandler(&fakeSummonsRepo{}, shared.NopPublisher{})

	_, err := h.Handle(context.Background(), ChangeSummonsStatusCommand{
		SummonsID: "ghost",
		NewStatus: "held",
	})
	assert.True(t, shared.IsNotFound(err))
}
