package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when hashing an empty password
var ErrEmptyPassword = errors.New("password is empty")

// CredentialVerifier checks a plaintext password against a stored hash
type CredentialVerifier interface {
	Verify(plaintext, hash string) bool
}

// PasswordHasher produces a salted hash for storage
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// BcryptVerifier hashes and verifies passwords with bcrypt. Every Hash call
// draws a fresh salt.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a verifier hashing at the given cost. Costs
// outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash returns the bcrypt hash of plaintext
func (b *BcryptVerifier) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. Malformed hashes are a mismatch.
func (b *BcryptVerifier) Verify(plaintext, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
