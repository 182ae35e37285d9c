package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
	Role     string `json:"role" validate:"omitempty,oneof=user contributor"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signup{Email: "a@example.com", Password: "longenough"}))
	require.NoError(t, v.Validate(&signup{Email: "a@example.com", Password: "longenough", Role: "contributor"}))

	err := v.Validate(&signup{Email: "nope", Password: "short", Role: "admin"})
	require.Error(t, err)

	described := Describe(err)
	assert.Contains(t, described, "email: email")
	assert.Contains(t, described, "password: min=8")
	assert.Contains(t, described, "role: oneof=user contributor")
}

func TestValidator_MaxBytesCountsBytes(t *testing.T) {
	v := New()

	// 72 ASCII characters fit exactly.
	require.NoError(t, v.Validate(&signup{Email: "a@example.com", Password: strings.Repeat("a", 72)}))

	// 40 two-byte runes are 40 characters but 80 bytes.
	err := v.Validate(&signup{Email: "a@example.com", Password: strings.Repeat("é", 40)})
	require.Error(t, err)
	assert.Equal(t, "password: maxbytes=72", Describe(err))
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Empty(t, Describe(assert.AnError))
}
