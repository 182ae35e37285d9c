package service

import "time"

// TokenClaims is the verified content of an access token.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless, signed bearer tokens.
type TokenService interface {
	// Issue creates a token for subject that expires after the configured default TTL.
	Issue(subject string) (string, error)

	// IssueWithTTL creates a token for subject that expires after ttl.
	IssueWithTTL(subject string, ttl time.Duration) (string, error)

	// Verify checks the signature and expiry of token and returns its claims.
	// Failures wrap ErrInvalidSignature, ErrTokenExpired or ErrMalformedClaims.
	Verify(token string) (*TokenClaims, error)
}
