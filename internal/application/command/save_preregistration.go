package command

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// SAVE PREREGISTRATION COMMAND
// Upserts the public pre-registration form of an applicant. Saving the
// form resets the applicant to unreviewed and renames the guardian
// account after the form's guardian data.
// ══════════════════════════════════════════════════════════════════════════════

// SavePreregistrationCommand carries the full form contents.
type SavePreregistrationCommand struct {
	ApplicantID string

	GuardianName    string
	GuardianSurname string
	GuardianPhone   string
	GuardianEmail   string

	ChildName     string
	ChildSurname  string
	DesiredGrade  string
	BirthDate     time.Time
	CivilRegistry string

	Allergies         string
	MedicalConditions string
	Medications       string
}

// SavePreregistrationResult reports the applicant state after saving.
type SavePreregistrationResult struct {
	Form          *admission.Form
	State         admission.State
	InterviewDate *time.Time
}

// SavePreregistrationHandler handles the SavePreregistrationCommand.
type SavePreregistrationHandler struct {
	applicantRepo admission.Repository
	formRepo      admission.FormRepository
	personRepo    person.Repository
	tx            shared.TxRunner
	publisher     shared.EventPublisher
}

// NewSavePreregistrationHandler creates a new SavePreregistrationHandler.
func NewSavePreregistrationHandler(
	applicantRepo admission.Repository,
	formRepo admission.FormRepository,
	personRepo person.Repository,
	tx shared.TxRunner,
	publisher shared.EventPublisher,
) *SavePreregistrationHandler {
	return &SavePreregistrationHandler{
		applicantRepo: applicantRepo,
		formRepo:      formRepo,
		personRepo:    personRepo,
		tx:            tx,
		publisher:     publisher,
	}
}

// Handle executes the form save.
func (h *SavePreregistrationHandler) Handle(ctx context.Context, cmd SavePreregistrationCommand) (*SavePreregistrationResult, error) {
	applicant, err := h.applicantRepo.GetByID(ctx, cmd.ApplicantID)
	if err != nil {
		return nil, err
	}

	form, err := h.formRepo.GetByApplicantID(ctx, applicant.ID)
	switch {
	case err == nil:
		// Resubmission updates the existing form in place.
	case errors.Is(err, shared.ErrNotFound):
		form = &admission.Form{
			ID:          uuid.NewString(),
			ApplicantID: applicant.ID,
			CreatedAt:   time.Now().UTC(),
		}
	default:
		return nil, err
	}

	form.GuardianName = cmd.GuardianName
	form.GuardianSurname = cmd.GuardianSurname
	form.GuardianPhone = cmd.GuardianPhone
	form.GuardianEmail = shared.Email(cmd.GuardianEmail).Normalize()
	form.ChildName = cmd.ChildName
	form.ChildSurname = cmd.ChildSurname
	form.DesiredGrade = shared.GradeLevel(cmd.DesiredGrade)
	form.BirthDate = cmd.BirthDate
	form.CivilRegistry = cmd.CivilRegistry
	form.Allergies = cmd.Allergies
	form.MedicalConditions = cmd.MedicalConditions
	form.Medications = cmd.Medications
	form.UpdatedAt = time.Now().UTC()

	if err := form.Validate(); err != nil {
		return nil, err
	}

	err = h.tx.InTx(ctx, func(ctx context.Context) error {
		if err := h.formRepo.Save(ctx, form); err != nil {
			return err
		}

		// A saved form puts the file back in the review queue.
		if err := applicant.SetState(admission.StateUnreviewed); err != nil {
			return err
		}
		if err := h.applicantRepo.Update(ctx, applicant); err != nil {
			return err
		}

		p, err := h.personRepo.GetByID(ctx, applicant.PersonID)
		if err != nil {
			return err
		}
		if err := p.Rename(form.GuardianFullName()); err != nil {
			return err
		}
		return h.personRepo.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventFormSubmitted, applicant.ID, nil))

	return &SavePreregistrationResult{
		Form:          form,
		State:         applicant.State,
		InterviewDate: applicant.InterviewDate,
	}, nil
}
