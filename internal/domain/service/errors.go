package service

import "github.com/pkg/errors"

// Credential and token failure kinds. Callers tell them apart with errors.Is;
// the HTTP boundary collapses the token kinds into a single unauthorized answer.
var (
	// ErrCredentialFormat means a stored password hash is not recognizable.
	ErrCredentialFormat = errors.New("credential hash has an unsupported format")

	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired     = errors.New("token has expired")
	ErrMalformedClaims  = errors.New("token claims are malformed")

	// ErrConfiguration means the signing or hashing setup cannot be used.
	ErrConfiguration = errors.New("invalid auth configuration")

	ErrEmptySubject = errors.New("token subject must not be empty")
	ErrInvalidTTL   = errors.New("token ttl must be positive")
)
