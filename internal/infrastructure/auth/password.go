// Package auth provides the credential hashing, temporary credential
// generation, and token signing implementations.
package auth

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// credentialAlphabet excludes visually ambiguous characters (0/O, 1/l/I)
// since temporary credentials are read out loud or copied by hand.
const credentialAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// BcryptHasher implements person.CredentialHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher. A cost outside bcrypt's accepted
// range falls back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of the plain credential.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", shared.WrapError("auth", "Hash", shared.ErrExternalService, "bcrypt hash failed", err)
	}
	return string(hash), nil
}

// Compare reports whether plain matches the stored hash. A mismatch is
// returned as an error, same as any bcrypt failure.
func (h *BcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

var _ person.CredentialHasher = (*BcryptHasher)(nil)

// RandomGenerator implements person.CredentialGenerator with crypto/rand.
type RandomGenerator struct{}

// NewRandomGenerator creates a generator.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// Generate returns a random credential of the requested length drawn
// from the credential alphabet.
func (g *RandomGenerator) Generate(length int) (string, error) {
	if length <= 0 {
		length = person.TemporaryCredentialLength
	}

	max := big.NewInt(int64(len(credentialAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", shared.WrapError("auth", "Generate", shared.ErrExternalService, "random source failed", err)
		}
		out[i] = credentialAlphabet[n.Int64()]
	}
	return string(out), nil
}

var _ person.CredentialGenerator = (*RandomGenerator)(nil)
