package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"medbotanica/config"
	"medbotanica/internal/domain/service"
)

// Only HMAC methods are accepted since a single shared secret signs and verifies.
var supportedMethods = map[string]jwt.SigningMethod{
	jwt.SigningMethodHS256.Alg(): jwt.SigningMethodHS256,
	jwt.SigningMethodHS384.Alg(): jwt.SigningMethodHS384,
	jwt.SigningMethodHS512.Alg(): jwt.SigningMethodHS512,
}

// JWTOption customizes a jwtService.
type JWTOption func(*jwtService)

// WithClock replaces time.Now for issuing and verifying tokens.
func WithClock(now func() time.Time) JWTOption {
	return func(s *jwtService) {
		s.now = now
	}
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// All fields are set at construction and never modified, so it is safe for concurrent use.
type jwtService struct {
	secret     []byte
	method     jwt.SigningMethod
	defaultTTL time.Duration
	now        func() time.Time
	parser     *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// Configuration problems are reported as service.ErrConfiguration so the
// application fails at start-up instead of on the first request.
func NewJWTService(cfg *config.Config, opts ...JWTOption) (service.TokenService, error) {
	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return nil, errors.Wrap(service.ErrConfiguration, "jwt secret must be provided")
	}

	method, ok := supportedMethods[strings.ToUpper(cfg.JWT.Algorithm)]
	if !ok {
		return nil, errors.Wrapf(service.ErrConfiguration, "unsupported jwt algorithm %q", cfg.JWT.Algorithm)
	}

	if cfg.JWT.ExpMinutes <= 0 {
		return nil, errors.Wrapf(service.ErrConfiguration, "jwt expiry must be positive, got %d minutes", cfg.JWT.ExpMinutes)
	}

	s := &jwtService{
		secret:     []byte(cfg.JWT.Secret),
		method:     method,
		defaultTTL: time.Duration(cfg.JWT.ExpMinutes) * time.Minute,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)

	return s, nil
}

// Issue creates a token for subject using the configured default TTL.
func (s *jwtService) Issue(subject string) (string, error) {
	return s.IssueWithTTL(subject, s.defaultTTL)
}

// IssueWithTTL creates a signed token whose exp claim is now+ttl.
// Every token gets a random jti, so two tokens for the same subject never collide.
func (s *jwtService) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.WithStack(service.ErrEmptySubject)
	}
	if ttl <= 0 {
		return "", errors.WithStack(service.ErrInvalidTTL)
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses token, checks its signature and expiry, and returns the claims.
func (s *jwtService) Verify(token string) (*service.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, classifyParseError(err)
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrMalformedClaims, "sub claim is missing")
	}

	out := &service.TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

// classifyParseError maps jwt parse failures onto the domain failure kinds.
// The signature is checked before the claims, so an expired token here was
// correctly signed.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing),
		errors.Is(err, jwt.ErrTokenInvalidClaims):
		return errors.Wrap(service.ErrMalformedClaims, err.Error())
	default:
		// Anything that fails before claim validation.
		return errors.Wrap(service.ErrInvalidSignature, err.Error())
	}
}
