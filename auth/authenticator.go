package auth

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrBadCredentials is returned when the subject is unknown or the password does not match
	ErrBadCredentials = errors.New("bad credentials")

	// ErrAccountDisabled is returned when the account exists but may not sign in
	ErrAccountDisabled = errors.New("account disabled")

	// ErrUnknownSubject is returned by a DetailsLoader when no account has the subject
	ErrUnknownSubject = errors.New("unknown subject")
)

// DetailsLoader loads account details by subject
type DetailsLoader interface {
	LoadBySubject(ctx context.Context, subject string) (Authenticatable, error)
}

// DetailsLoaderFunc adapts a function to DetailsLoader
type DetailsLoaderFunc func(ctx context.Context, subject string) (Authenticatable, error)

// LoadBySubject calls f
func (f DetailsLoaderFunc) LoadBySubject(ctx context.Context, subject string) (Authenticatable, error) {
	return f(ctx, subject)
}

// CredentialAuthenticator authenticates a subject/password pair
type CredentialAuthenticator struct {
	loader   DetailsLoader
	verifier CredentialVerifier
}

// NewCredentialAuthenticator creates a new credential authenticator
func NewCredentialAuthenticator(loader DetailsLoader, verifier CredentialVerifier) *CredentialAuthenticator {
	return &CredentialAuthenticator{loader: loader, verifier: verifier}
}

// Authenticate loads the account and verifies the password against its hash
func (a *CredentialAuthenticator) Authenticate(ctx context.Context, subject, password string) (Authenticatable, error) {
	details, err := a.loader.LoadBySubject(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCredentials, err)
	}
	if !details.IsEnabled() {
		return nil, ErrAccountDisabled
	}
	if !a.verifier.Verify(password, details.HashedPassword()) {
		return nil, ErrBadCredentials
	}
	return details, nil
}
