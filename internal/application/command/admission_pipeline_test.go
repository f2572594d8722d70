package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

func seedApplicant(t *testing.T, applicantRepo *fakeApplicantRepo, id, personID string) *admission.Applicant {
	t.Helper()
	a, err := admission.NewApplicant(id, personID)
	require.NoError(t, err)
	require.NoError(t, applicantRepo.Create(context.Background(), a))
	return a
}

func TestChangeApplicantState(t *testing.T) {
	applicantRepo := &fakeApplicantRepo{}
	seedApplicant(t, applicantRepo, "a1", "p1")
	h := NewChangeApplicantStateHandler(applicantRepo, shared.NopPublisher{})

	a, err := h.Handle(context.Background(), ChangeApplicantStateCommand{
		ApplicantID: "a1",
		NewState:    "Reviewed",
	})
	require.NoError(t, err)
	assert.Equal(t, admission.StateReviewed, a.State)

	// Re-applying the same state succeeds.
	a, err = h.Handle(context.Background(), ChangeApplicantStateCommand{
		ApplicantID: "a1",
		NewState:    "reviewed",
	})
	require.NoError(t, err)
	assert.Equal(t, admission.StateReviewed, a.State)
}

func TestChangeApplicantState_InvalidState(t *testing.T) {
	applicantRepo := &fakeApplicantRepo{}
	seedApplicant(t, applicantRepo, "a1", "p1")
	h := NewChangeApplicantStateHandler(applicantRepo, shared.NopPublisher{})

	_, err := h.Handle(context.Background(), ChangeApplicantStateCommand{
		ApplicantID: "a1",
		NewState:    "limbo",
	})
	assert.ErrorIs(t, err, admission.ErrInvalidState)
}

func TestChangeApplicantState_NotFound(t *testing.T) {
	h := NewChangeApplicantStateHandler(&fakeApplicantRepo{}, shared.NopPublisher{})

	_, err := h.Handle(context.Background(), ChangeApplicantStateCommand{
		ApplicantID: "missing",
		NewState:    "reviewed",
	})
	assert.True(t, shared.IsNotFound(err))

	// Not-found wins over a bad state name: the applicant is resolved
	// before the state is parsed.
	_, err = h.Handle(context.Background(), ChangeApplicantStateCommand{
		ApplicantID: "missing",
		NewState:    "limbo",
	})
	assert.True(t, shared.IsNotFound(err))
	assert.NotErrorIs(t, err, admission.ErrInvalidState)
}

func TestScheduleInterview(t *testing.T) {
	applicantRepo := &fakeApplicantRepo{}
	a := seedApplicant(t, applicantRepo, "a1", "p1")
	require.NoError(t, a.SetState(admission.StateApproved))

	h := NewScheduleInterviewHandler(applicantRepo, shared.NopPublisher{})
	date := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	updated, err := h.Handle(context.Background(), ScheduleInterviewCommand{
		ApplicantID: "a1",
		Date:        date,
	})
	require.NoError(t, err)

	assert.Equal(t, admission.StateAwaitingInterview, updated.State)
	require.NotNil(t, updated.InterviewDate)
	assert.Equal(t, date, *updated.InterviewDate)
}

func TestRequestTemporaryCredential_NewEmail(t *testing.T) {
	personRepo := &fakePersonRepo{}
	applicantRepo := &fakeApplicantRepo{}
	h := NewRequestTemporaryCredentialHandler(personRepo, applicantRepo,
		fakeHasher{}, fakeGenerator{}, shared.NopTxRunner{}, shared.NopPublisher{})

	res, err := h.Handle(context.Background(), RequestTemporaryCredentialCommand{
		Email: "New@Example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "temp-credential", res.TemporaryCredential)
	assert.Equal(t, person.RoleApplicant, res.Person.Role)
	assert.True(t, res.Person.MustChangePassword)
	assert.Equal(t, res.Person.ID, res.Applicant.PersonID)
	assert.Len(t, applicantRepo.applicants, 1)
}

func TestRequestTemporaryCredential_ExistingAccountRotates(t *testing.T) {
	personRepo := &fakePersonRepo{}
	applicantRepo := &fakeApplicantRepo{}

	existing, err := person.NewPerson(person.NewPersonParams{
		ID: "p1", Name: "Maria", Email: "maria@example.com",
		PasswordHash: "hash:old", Role: person.RoleApplicant,
	})
	require.NoError(t, err)
	require.NoError(t, personRepo.Create(context.Background(), existing))
	seedApplicant(t, applicantRepo, "a1", "p1")

	h := NewRequestTemporaryCredentialHandler(personRepo, applicantRepo,
		fakeHasher{}, fakeGenerator{next: "fresh-secret"}, shared.NopTxRunner{}, shared.NopPublisher{})

	res, err := h.Handle(context.Background(), RequestTemporaryCredentialCommand{
		Email: "maria@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "fresh-secret", res.TemporaryCredential)
	assert.Equal(t, "p1", res.Person.ID)
	assert.Equal(t, "a1", res.Applicant.ID)
	assert.Equal(t, "hash:fresh-secret", res.Person.PasswordHash)
	assert.True(t, res.Person.MustChangePassword)

	// No second person or application was created.
	assert.Len(t, personRepo.people, 1)
	assert.Len(t, applicantRepo.applicants, 1)
}

func TestRequestTemporaryCredential_ExistingAccountWithoutApplication(t *testing.T) {
	personRepo := &fakePersonRepo{}
	applicantRepo := &fakeApplicantRepo{}

	existing, err := person.NewPerson(person.NewPersonParams{
		ID: "p1", Name: "Maria", Email: "maria@example.com", Role: person.RoleApplicant,
	})
	require.NoError(t, err)
	require.NoError(t, personRepo.Create(context.Background(), existing))

	h := NewRequestTemporaryCredentialHandler(personRepo, applicantRepo,
		fakeHasher{}, fakeGenerator{}, shared.NopTxRunner{}, shared.NopPublisher{})

	res, err := h.Handle(context.Background(), RequestTemporaryCredentialCommand{
		Email: "maria@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", res.Applicant.PersonID)
	assert.Len(t, applicantRepo.applicants, 1)
}

func TestRequestTemporaryCredential_InvalidEmail(t *testing.T) {
	h := NewRequestTemporaryCredentialHandler(&fakePersonRepo{}, &fakeApplicantRepo{},
		fakeHasher{}, fakeGenerator{}, shared.NopTxRunner{}, shared.NopPublisher{})

	_, err := h.Handle(context.Background(), RequestTemporaryCredentialCommand{Email: "nope"})
	assert.ErrorIs(t, err, person.ErrInvalidEmail)
}
