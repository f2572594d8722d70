// Package auth contains the login and credential lifecycle flows:
// regular login, first login with a temporary credential, and password
// change.
package auth

import (
	"context"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// MinPasswordLength is the minimum accepted length for a chosen password.
const MinPasswordLength = 6

var (
	// ErrInvalidCredentials - email/password pair does not match.
	ErrInvalidCredentials = shared.NewDomainError("auth", "Login", shared.ErrUnauthorized, "invalid credentials")

	// ErrPasswordTooShort - chosen password below the minimum length.
	ErrPasswordTooShort = shared.NewDomainError("auth", "ChangePassword", shared.ErrValidation, "password must be at least 6 characters")

	// ErrNoTemporaryCredential - first login attempted without an
	// outstanding temporary credential.
	ErrNoTemporaryCredential = shared.NewDomainError("auth", "FirstLogin", shared.ErrInvalidState, "no temporary credential outstanding")
)

// TokenIssuer mints signed access tokens. The implementation lives in
// infrastructure (JWT).
type TokenIssuer interface {
	// Issue returns a signed token for the person.
	Issue(personID string, role person.Role, ttl time.Duration) (string, error)
}

// Session is the outcome of a successful authentication.
type Session struct {
	// PersonID identifies the authenticated person.
	PersonID string

	// Name is the display name at login time.
	Name string

	// Role determines permissions.
	Role person.Role

	// Token is the signed access token.
	Token string

	// MustChangePassword is set when the person logged in with a
	// temporary credential and has to choose a password before anything
	// else.
	MustChangePassword bool
}

// Service implements the authentication flows.
type Service struct {
	personRepo person.Repository
	hasher     person.CredentialHasher
	tokens     TokenIssuer
	tokenTTL   time.Duration
}

// NewService creates an auth Service.
func NewService(personRepo person.Repository, hasher person.CredentialHasher, tokens TokenIssuer, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{
		personRepo: personRepo,
		hasher:     hasher,
		tokens:     tokens,
		tokenTTL:   tokenTTL,
	}
}

// Login authenticates with email and password. A disabled account and a
// wrong password both fail; the caller cannot tell which, the account
// state is not leaked.
func (s *Service) Login(ctx context.Context, email shared.Email, password string) (*Session, error) {
	p, err := s.personRepo.GetByEmail(ctx, email.Normalize())
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !p.Active {
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(p.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(p.ID, p.Role, s.tokenTTL)
	if err != nil {
		return nil, shared.WrapError("auth", "Login", shared.ErrExternalService, "failed to issue token", err)
	}

	return &Session{
		PersonID:           p.ID,
		Name:               p.Name,
		Role:               p.Role,
		Token:              token,
		MustChangePassword: p.MustChangePassword,
	}, nil
}

// FirstLogin consumes a temporary credential: the person proves they
// hold it and chooses a real password in one step.
func (s *Service) FirstLogin(ctx context.Context, email shared.Email, temporary, newPassword string) (*Session, error) {
	p, err := s.personRepo.GetByEmail(ctx, email.Normalize())
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !p.Active {
		return nil, ErrInvalidCredentials
	}
	if p.TemporaryHash == "" {
		return nil, ErrNoTemporaryCredential
	}
	if err := s.hasher.Compare(p.TemporaryHash, temporary); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.setPassword(ctx, p, newPassword); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(p.ID, p.Role, s.tokenTTL)
	if err != nil {
		return nil, shared.WrapError("auth", "FirstLogin", shared.ErrExternalService, "failed to issue token", err)
	}

	return &Session{
		PersonID: p.ID,
		Name:     p.Name,
		Role:     p.Role,
		Token:    token,
	}, nil
}

// ChangePassword replaces the password after verifying the current one.
func (s *Service) ChangePassword(ctx context.Context, personID, current, newPassword string) error {
	p, err := s.personRepo.GetByID(ctx, personID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(p.PasswordHash, current); err != nil {
		return ErrInvalidCredentials
	}

	return s.setPassword(ctx, p, newPassword)
}

func (s *Service) setPassword(ctx context.Context, p *person.Person, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return shared.WrapError("auth", "ChangePassword", shared.ErrExternalService, "failed to hash password", err)
	}

	p.SetPassword(hash)
	return s.personRepo.Update(ctx, p)
}
