package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// REQUEST TEMPORARY CREDENTIAL COMMAND
// Idempotent entry point of the public pre-registration flow. A known
// email gets its credential rotated (and an application created if the
// account has none); an unknown email gets a fresh person + application
// pair. The plaintext credential is returned exactly once for
// out-of-band delivery.
// ══════════════════════════════════════════════════════════════════════════════

// RequestTemporaryCredentialCommand carries the requesting email.
type RequestTemporaryCredentialCommand struct {
	Email string
	Name  string // optional display name for newly created accounts
}

// RequestTemporaryCredentialResult contains the applicant and the
// one-time plaintext credential.
type RequestTemporaryCredentialResult struct {
	Applicant           *admission.Applicant
	Person              *person.Person
	TemporaryCredential string
}

// RequestTemporaryCredentialHandler handles the command.
type RequestTemporaryCredentialHandler struct {
	personRepo    person.Repository
	applicantRepo admission.Repository
	hasher        person.CredentialHasher
	credentials   person.CredentialGenerator
	tx            shared.TxRunner
	publisher     shared.EventPublisher
}

// NewRequestTemporaryCredentialHandler creates a new handler.
func NewRequestTemporaryCredentialHandler(
	personRepo person.Repository,
	applicantRepo admission.Repository,
	hasher person.CredentialHasher,
	credentials person.CredentialGenerator,
	tx shared.TxRunner,
	publisher shared.EventPublisher,
) *RequestTemporaryCredentialHandler {
	return &RequestTemporaryCredentialHandler{
		personRepo:    personRepo,
		applicantRepo: applicantRepo,
		hasher:        hasher,
		credentials:   credentials,
		tx:            tx,
		publisher:     publisher,
	}
}

// Handle executes the credential request.
func (h *RequestTemporaryCredentialHandler) Handle(ctx context.Context, cmd RequestTemporaryCredentialCommand) (*RequestTemporaryCredentialResult, error) {
	email := shared.Email(cmd.Email).Normalize()
	if !email.IsValid() {
		return nil, person.ErrInvalidEmail
	}

	plain, err := h.credentials.Generate(person.TemporaryCredentialLength)
	if err != nil {
		return nil, fmt.Errorf("request_temporary_credential: generating credential: %w", err)
	}
	hash, err := h.hasher.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("request_temporary_credential: hashing credential: %w", err)
	}

	var (
		p         *person.Person
		applicant *admission.Applicant
	)

	err = h.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		p, err = h.personRepo.GetByEmail(ctx, email)
		switch {
		case err == nil:
			// Existing account: rotate the credential.
			p.IssueTemporaryCredential(hash)
			if err := h.personRepo.Update(ctx, p); err != nil {
				return err
			}
		case errors.Is(err, shared.ErrNotFound):
			name := cmd.Name
			if name == "" {
				name = email.String()
			}
			p, err = person.NewPerson(person.NewPersonParams{
				ID:           uuid.NewString(),
				Name:         name,
				Email:        email,
				PasswordHash: hash,
				Role:         person.RoleApplicant,
			})
			if err != nil {
				return err
			}
			p.IssueTemporaryCredential(hash)
			if err := h.personRepo.Create(ctx, p); err != nil {
				return err
			}
		default:
			return err
		}

		applicant, err = h.applicantRepo.GetByPersonID(ctx, p.ID)
		if errors.Is(err, shared.ErrNotFound) {
			applicant, err = admission.NewApplicant(uuid.NewString(), p.ID)
			if err != nil {
				return err
			}
			return h.applicantRepo.Create(ctx, applicant)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventCredentialIssued, applicant.ID, map[string]interface{}{
		"person_id": p.ID,
	}))

	return &RequestTemporaryCredentialResult{
		Applicant:           applicant,
		Person:              p,
		TemporaryCredential: plain,
	}, nil
}
