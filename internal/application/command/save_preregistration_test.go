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

func newSavePreregistrationFixture(t *testing.T) (*SavePreregistrationHandler, *fakeApplicantRepo, *fakeFormRepo, *fakePersonRepo) {
	t.Helper()
	applicantRepo := &fakeApplicantRepo{}
	formRepo := newFakeFormRepo()
	personRepo := &fakePersonRepo{}

	seedPerson(t, personRepo, "p1", person.RoleApplicant)
	seedApplicant(t, applicantRepo, "a1", "p1")

	h := NewSavePreregistrationHandler(applicantRepo, formRepo, personRepo,
		shared.NopTxRunner{}, shared.NopPublisher{})
	return h, applicantRepo, formRepo, personRepo
}

func validFormCommand() SavePreregistrationCommand {
	return SavePreregistrationCommand{
		ApplicantID:     "a1",
		GuardianName:    "Maria",
		GuardianSurname: "Lopez",
		GuardianPhone:   "3001234567",
		GuardianEmail:   "Maria@Example.com",
		ChildName:       "Sofia",
		ChildSurname:    "Lopez",
		DesiredGrade:    "jardin",
		BirthDate:       time.Date(2022, 8, 15, 0, 0, 0, 0, time.UTC),
		CivilRegistry:   "CR-12345",
		Allergies:       "peanuts",
	}
}

func TestSavePreregistration_CreatesForm(t *testing.T) {
	h, _, formRepo, personRepo := newSavePreregistrationFixture(t)

	res, err := h.Handle(context.Background(), validFormCommand())
	require.NoError(t, err)

	assert.Equal(t, admission.StateUnreviewed, res.State)
	assert.Equal(t, shared.Email("maria@example.com"), res.Form.GuardianEmail)
	assert.NotEmpty(t, res.Form.ID)

	saved, err := formRepo.GetByApplicantID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "Sofia", saved.ChildName)

	// The guardian account is renamed after the form data.
	p, err := personRepo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Maria Lopez", p.Name)
}

func TestSavePreregistration_ResubmissionUpdatesInPlace(t *testing.T) {
	h, _, formRepo, _ := newSavePreregistrationFixture(t)

	first, err := h.Handle(context.Background(), validFormCommand())
	require.NoError(t, err)

	cmd := validFormCommand()
	cmd.ChildName = "Valentina"
	second, err := h.Handle(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, first.Form.ID, second.Form.ID)

	saved, _ := formRepo.GetByApplicantID(context.Background(), "a1")
	assert.Equal(t, "Valentina", saved.ChildName)
	assert.Len(t, formRepo.forms, 1)
}

func TestSavePreregistration_ResetsReviewQueue(t *testing.T) {
	h, applicantRepo, _, _ := newSavePreregistrationFixture(t)

	a, err := applicantRepo.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	require.NoError(t, a.SetState(admission.StateReviewed))

	res, err := h.Handle(context.Background(), validFormCommand())
	require.NoError(t, err)
	assert.Equal(t, admission.StateUnreviewed, res.State)
}

func TestSavePreregistration_Validation(t *testing.T) {
	h, _, formRepo, _ := newSavePreregistrationFixture(t)

	cmd := validFormCommand()
	cmd.GuardianEmail = "not-an-email"
	_, err := h.Handle(context.Background(), cmd)
	assert.True(t, shared.IsValidation(err))
	assert.Empty(t, formRepo.forms)

	cmd = validFormCommand()
	cmd.ChildName = "  "
	_, err = h.Handle(context.Background(), cmd)
	assert.True(t, shared.IsValidation(err))
}

func TestSavePreregistration_UnknownApplicant(t *testing.T) {
	h, _, _, _ := newSavePreregistrationFixture(t)

	cmd := validFormCommand()
	cmd.ApplicantID = "ghost"
	_, err := h.Handle(context.Background(), cmd)
	assert.True(t, shared.IsNotFound(err))
}
