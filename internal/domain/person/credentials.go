package person

// CredentialHasher hashes and verifies credentials. The implementation
// lives in infrastructure (bcrypt).
type CredentialHasher interface {
	// Hash returns the one-way hash of a plaintext credential.
	Hash(plain string) (string, error)

	// Compare checks a plaintext credential against a stored hash.
	// Returns a non-nil error on mismatch.
	Compare(hash, plain string) error
}

// CredentialGenerator supplies one-time alphanumeric credentials for
// temporary-credential flows. Treated as a black box returning a string
// of the requested length from a fixed alphabet.
type CredentialGenerator interface {
	Generate(length int) (string, error)
}

// TemporaryCredentialLength is the length of generated one-time
// credentials handed out for first login.
const TemporaryCredentialLength = 12
