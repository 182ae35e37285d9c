package auth

import (
	"strings"
	"testing"

	"medbotanica/config"
	"medbotanica/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) service.PasswordHasher {
	t.Helper()

	// Lowest cost keeps the suite fast.
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	return hasher
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := newTestHasher(t)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	ok, err := hasher.Verify(password, hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_VerifyMismatch(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	for _, candidate := range []string{"WrongPassword123!", "", "strongpass123!", "StrongPass123"} {
		ok, err := hasher.Verify(candidate, hash)
		assert.NoError(t, err, candidate)
		assert.False(t, ok, candidate)
	}
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := newTestHasher(t)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, hash := range []string{first, second} {
		ok, err := hasher.Verify("same-password", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("")
	require.NoError(t, err)

	ok, err := hasher.Verify("", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("x", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_TruncatesLongInput(t *testing.T) {
	hasher := newTestHasher(t)

	long := strings.Repeat("a", 100)
	hash, err := hasher.Hash(long)
	require.NoError(t, err)

	for _, candidate := range []string{long, strings.Repeat("a", MaxPasswordBytes), strings.Repeat("a", MaxPasswordBytes) + "different tail"} {
		ok, err := hasher.Verify(candidate, hash)
		require.NoError(t, err)
		assert.True(t, ok, "len=%d", len(candidate))
	}

	ok, err := hasher.Verify(strings.Repeat("a", MaxPasswordBytes-1), hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := newTestHasher(t)

	for _, hash := range []string{"", "invalid_hash", "$9z$10$abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ01"} {
		ok, err := hasher.Verify("password", hash)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, service.ErrCredentialFormat), "hash %q: %v", hash, err)
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher, err := NewBcryptHasherWithCost(customCost)
	require.NoError(t, err)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestNewBcryptHasher_FromConfig(t *testing.T) {
	hasher, err := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}})
	require.NoError(t, err)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)

	_, err = NewBcryptHasher(&config.Config{})
	assert.NoError(t, err)
}

func TestNewBcryptHasher_InvalidCost(t *testing.T) {
	for _, cost := range []int{-1, bcrypt.MinCost - 1, bcrypt.MaxCost + 1} {
		hasher, err := NewBcryptHasherWithCost(cost)
		assert.Nil(t, hasher)
		assert.True(t, errors.Is(err, service.ErrConfiguration), "cost %d", cost)
	}
}

func TestTruncatePassword(t *testing.T) {
	assert.Equal(t, []byte("short"), truncatePassword("short"))
	assert.Len(t, truncatePassword(strings.Repeat("b", 80)), MaxPasswordBytes)

	// 71 ASCII bytes followed by a 2-byte rune: the rune would straddle the limit.
	straddling := strings.Repeat("c", 71) + "é" + "tail"
	got := truncatePassword(straddling)
	assert.Len(t, got, 71)
	assert.Equal(t, strings.Repeat("c", 71), string(got))

	// A 4-byte rune starting at byte 70 is dropped whole.
	assert.Equal(t, strings.Repeat("d", 70), string(truncatePassword(strings.Repeat("d", 70)+"😀tail")))

	// Invalid UTF-8 never backs off past a few bytes: cut at the limit.
	continuation := "a" + strings.Repeat("\x80", 100)
	assert.Equal(t, []byte(continuation[:MaxPasswordBytes]), truncatePassword(continuation))
	assert.Len(t, truncatePassword(strings.Repeat("\x80", 100)), MaxPasswordBytes)
}

func TestBcryptHasher_InvalidUTF8KeepsFirstBytes(t *testing.T) {
	hasher := newTestHasher(t)

	password := strings.Repeat("\x80", 100)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	ok, err := hasher.Verify("", hash)
	require.NoError(t, err)
	assert.False(t, ok, "invalid UTF-8 input must not collapse to the empty password")

	ok, err = hasher.Verify(strings.Repeat("\x80", MaxPasswordBytes), hash)
	require.NoError(t, err)
	assert.True(t, ok)
}
