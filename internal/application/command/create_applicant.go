// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE APPLICANT COMMAND
// Registers a prospective guardian with at least one child. Creates the
// person account, the application in the unreviewed state, and one
// prospect student per child - all inside one transaction.
// ══════════════════════════════════════════════════════════════════════════════

// ChildParams describes one prospective child on the application.
type ChildParams struct {
	Name          string
	Surname       string
	GradeLevel    string
	CivilRegistry string
}

// CreateApplicantCommand contains the data to register an applicant.
type CreateApplicantCommand struct {
	// Name is the guardian's display name.
	Name string

	// Email is the guardian's unique contact address.
	Email string

	// Children are the prospective students; at least one is required.
	Children []ChildParams
}

// Validate validates the command.
func (c CreateApplicantCommand) Validate() error {
	if len(c.Children) == 0 {
		return admission.ErrNoChildren
	}
	if !shared.Email(c.Email).Normalize().IsValid() {
		return person.ErrInvalidEmail
	}
	if c.Name == "" {
		return errors.New("create_applicant: name is required")
	}
	return nil
}

// CreateApplicantResult contains the composed applicant aggregate.
type CreateApplicantResult struct {
	// Applicant is the created application record.
	Applicant *admission.Applicant

	// Person is the guardian account behind it.
	Person *person.Person

	// Students are the prospect children, in input order.
	Students []*student.Student

	// TemporaryCredential is the one-time plaintext credential for
	// out-of-band delivery. It is never stored in plaintext.
	TemporaryCredential string
}

// CreateApplicantHandler handles the CreateApplicantCommand.
type CreateApplicantHandler struct {
	personRepo    person.Repository
	applicantRepo admission.Repository
	studentRepo   student.Repository
	hasher        person.CredentialHasher
	credentials   person.CredentialGenerator
	tx            shared.TxRunner
	publisher     shared.EventPublisher
}

// NewCreateApplicantHandler creates a new CreateApplicantHandler.
func NewCreateApplicantHandler(
	personRepo person.Repository,
	applicantRepo admission.Repository,
	studentRepo student.Repository,
	hasher person.CredentialHasher,
	credentials person.CredentialGenerator,
	tx shared.TxRunner,
	publisher shared.EventPublisher,
) *CreateApplicantHandler {
	return &CreateApplicantHandler{
		personRepo:    personRepo,
		applicantRepo: applicantRepo,
		studentRepo:   studentRepo,
		hasher:        hasher,
		credentials:   credentials,
		tx:            tx,
		publisher:     publisher,
	}
}

// Handle executes the create applicant command.
func (h *CreateApplicantHandler) Handle(ctx context.Context, cmd CreateApplicantCommand) (*CreateApplicantResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	email := shared.Email(cmd.Email).Normalize()
	exists, err := h.personRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("create_applicant: checking email: %w", err)
	}
	if exists {
		return nil, person.ErrEmailTaken
	}

	plain, err := h.credentials.Generate(person.TemporaryCredentialLength)
	if err != nil {
		return nil, fmt.Errorf("create_applicant: generating credential: %w", err)
	}
	hash, err := h.hasher.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("create_applicant: hashing credential: %w", err)
	}

	p, err := person.NewPerson(person.NewPersonParams{
		ID:           uuid.NewString(),
		Name:         cmd.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         person.RoleApplicant,
	})
	if err != nil {
		return nil, err
	}
	p.IssueTemporaryCredential(hash)

	applicant, err := admission.NewApplicant(uuid.NewString(), p.ID)
	if err != nil {
		return nil, err
	}

	students := make([]*student.Student, 0, len(cmd.Children))
	for _, child := range cmd.Children {
		s, err := student.NewStudent(student.NewStudentParams{
			ID:            uuid.NewString(),
			Name:          child.Name,
			Surname:       child.Surname,
			GradeLevel:    shared.GradeLevel(child.GradeLevel),
			CivilRegistry: child.CivilRegistry,
			ApplicantID:   applicant.ID,
		})
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}

	err = h.tx.InTx(ctx, func(ctx context.Context) error {
		if err := h.personRepo.Create(ctx, p); err != nil {
			return err
		}
		if err := h.applicantRepo.Create(ctx, applicant); err != nil {
			return err
		}
		for _, s := range students {
			if err := h.studentRepo.Create(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventApplicantCreated, applicant.ID, map[string]interface{}{
		"person_id": p.ID,
		"email":     email.String(),
		"children":  len(students),
	}))

	return &CreateApplicantResult{
		Applicant:           applicant,
		Person:              p,
		Students:            students,
		TemporaryCredential: plain,
	}, nil
}
