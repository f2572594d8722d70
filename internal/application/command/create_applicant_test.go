package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

func newCreateApplicantHandler() (*CreateApplicantHandler, *fakePersonRepo, *fakeApplicantRepo, *fakeStudentRepo) {
	personRepo := &fakePersonRepo{}
	applicantRepo := &fakeApplicantRepo{}
	studentRepo := &fakeStudentRepo{}
	h := NewCreateApplicantHandler(personRepo, applicantRepo, studentRepo,
		fakeHasher{}, fakeGenerator{}, shared.NopTxRunner{}, shared.NopPublisher{})
	return h, personRepo, applicantRepo, studentRepo
}

func TestCreateApplicant(t *testing.T) {
	h, personRepo, applicantRepo, studentRepo := newCreateApplicantHandler()

	res, err := h.Handle(context.Background(), CreateApplicantCommand{
		Name:  "Maria Lopez",
		Email: "Maria@Example.com",
		Children: []ChildParams{
			{Name: "Sofia", Surname: "Lopez", GradeLevel: "jardin"},
			{Name: "Diego", Surname: "Lopez", GradeLevel: "parvulos", CivilRegistry: "CR-99"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, admission.StateUnreviewed, res.Applicant.State)
	assert.Equal(t, person.RoleApplicant, res.Person.Role)
	assert.Equal(t, shared.Email("maria@example.com"), res.Person.Email)
	assert.True(t, res.Person.MustChangePassword)
	assert.Equal(t, "temp-credential", res.TemporaryCredential)

	require.Len(t, res.Students, 2)
	assert.Equal(t, "Sofia", res.Students[0].Name)
	assert.Equal(t, res.Applicant.ID, res.Students[0].ApplicantID)
	assert.Empty(t, res.Students[0].GuardianID)

	assert.Len(t, personRepo.people, 1)
	assert.Len(t, applicantRepo.applicants, 1)
	assert.Len(t, studentRepo.students, 2)
}

func TestCreateApplicant_RequiresChildren(t *testing.T) {
	h, _, _, _ := newCreateApplicantHandler()

	_, err := h.Handle(context.Background(), CreateApplicantCommand{
		Name:  "Maria Lopez",
		Email: "maria@example.com",
	})
	assert.ErrorIs(t, err, admission.ErrNoChildren)
}

func TestCreateApplicant_RejectsInvalidEmail(t *testing.T) {
	h, _, _, _ := newCreateApplicantHandler()

	_, err := h.Handle(context.Background(), CreateApplicantCommand{
		Name:     "Maria Lopez",
		Email:    "not-an-email",
		Children: []ChildParams{{Name: "Sofia", Surname: "Lopez", GradeLevel: "jardin"}},
	})
	assert.ErrorIs(t, err, person.ErrInvalidEmail)
}

func TestCreateApplicant_RejectsTakenEmail(t *testing.T) {
	h, personRepo, _, _ := newCreateApplicantHandler()

	existing, err := person.NewPerson(person.NewPersonParams{
		ID: "p0", Name: "Someone", Email: "maria@example.com", Role: person.RoleGuardian,
	})
	require.NoError(t, err)
	require.NoError(t, personRepo.Create(context.Background(), existing))

	_, err = h.Handle(context.Background(), CreateApplicantCommand{
		Name:     "Maria Lopez",
		Email:    "MARIA@example.com",
		Children: []ChildParams{{Name: "Sofia", Surname: "Lopez", GradeLevel: "jardin"}},
	})
	assert.ErrorIs(t, err, person.ErrEmailTaken)
}

func TestCreateApplicant_BadChildAbortsEverything(t *testing.T) {
	h, personRepo, applicantRepo, studentRepo := newCreateApplicantHandler()

	_, err := h.Handle(context.Background(), CreateApplicantCommand{
		Name:  "Maria Lopez",
		Email: "maria@example.com",
		Children: []ChildParams{
			{Name: "Sofia", Surname: "Lopez", GradeLevel: "jardin"},
			{Name: "", Surname: "Lopez", GradeLevel: "jardin"},
		},
	})
	require.Error(t, err)

	assert.Empty(t, personRepo.people)
	assert.Empty(t, applicantRepo.applicants)
	assert.Empty(t, studentRepo.students)
}
