package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

var (
	// ErrTokenInvalid - the token failed signature or claims validation.
	ErrTokenInvalid = shared.NewDomainError("auth", "Verify", shared.ErrUnauthorized, "invalid token")

	// ErrTokenExpired - the token is past its expiry.
	ErrTokenExpired = shared.NewDomainError("auth", "Verify", shared.ErrUnauthorized, "token expired")
)

// Claims are the validated claims of an access token.
type Claims struct {
	// PersonID is the subject of the token.
	PersonID string

	// Role is the role the person held when the token was issued.
	Role person.Role

	// ExpiresAt is the token expiry in UTC.
	ExpiresAt time.Time
}

// accessClaims is the wire form used for signing and parsing.
type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// JWTIssuer signs and verifies HS256 access tokens.
type JWTIssuer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTIssuer creates an issuer. The secret must be non-empty.
func NewJWTIssuer(secret, issuer string) (*JWTIssuer, error) {
	if secret == "" {
		return nil, shared.NewDomainError("auth", "NewJWTIssuer", shared.ErrInvalidInput, "token secret is required")
	}
	if issuer == "" {
		issuer = "academia-records-hub"
	}
	return &JWTIssuer{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// Issue returns a signed token for the person.
func (i *JWTIssuer) Issue(personID string, role person.Role, ttl time.Duration) (string, error) {
	now := i.now().UTC()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   personID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: string(role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", shared.WrapError("auth", "Issue", shared.ErrExternalService, "failed to sign token", err)
	}
	return signed, nil
}

// Verify parses and validates a token string.
func (i *JWTIssuer) Verify(tokenString string) (*Claims, error) {
	var parsed accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &parsed, func(token *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(i.issuer),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if parsed.Subject == "" {
		return nil, ErrTokenInvalid
	}
	role, err := person.ParseRole(parsed.Role)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims := &Claims{
		PersonID: parsed.Subject,
		Role:     role,
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time.UTC()
	}
	return claims, nil
}
