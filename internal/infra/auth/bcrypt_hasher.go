// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"medbotanica/config"
	"medbotanica/internal/domain/service"
)

// MaxPasswordBytes is the longest input bcrypt takes into account.
const MaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds the hasher from the auth configuration.
// A zero cost selects bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost returns a hasher using the given bcrypt cost.
func NewBcryptHasherWithCost(cost int) (service.PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Wrapf(service.ErrConfiguration, "bcrypt cost %d outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// Bytes past MaxPasswordBytes are dropped before hashing.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(hashed), nil
}

// Verify compares a plaintext password with a bcrypt hash in constant time.
func (h *bcryptHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errors.Wrap(service.ErrCredentialFormat, err.Error())
	}
}

// truncatePassword cuts password to MaxPasswordBytes. When the input is valid
// UTF-8 up to the limit, the cut backs off so a multi-byte rune is never split;
// otherwise it falls at exactly MaxPasswordBytes, as bcrypt itself would.
func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) <= MaxPasswordBytes {
		return b
	}

	cut := MaxPasswordBytes
	for back := 0; back < utf8.UTFMax-1 && !utf8.RuneStart(b[cut]); back++ {
		cut--
	}
	if !utf8.RuneStart(b[cut]) || !utf8.Valid(b[:cut]) {
		return b[:MaxPasswordBytes]
	}

	return b[:cut]
}
