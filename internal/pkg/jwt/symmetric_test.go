package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct{ now time.Time }

func (s stubClock) Now() time.Time { return s.now }

type stubUUID struct{ id string }

func (s stubUUID) Generate() string { return s.id }

var testSecret = []byte(strings.Repeat("s", 64))

func newTestJWT(t *testing.T, now time.Time) *Symmetric {
	t.Helper()

	j, err := NewHS512(Config{
		Secret:     testSecret,
		Issuer:     "identity",
		Audiences:  []string{"identity"},
		TTLMinutes: time.Hour,
		Clock:      stubClock{now: now},
		UUID:       stubUUID{id: "jti-1"},
	})
	require.NoError(t, err)

	return j
}

func TestHS512RoundTrip(t *testing.T) {
	j := newTestJWT(t, time.Now())

	token, err := j.Generate(42, "jane@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.UserIdentifier)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "jti-1", claims.ID)
}

func TestHS512PhoneIdentifier(t *testing.T) {
	j := newTestJWT(t, time.Now())

	token, err := j.Generate(7, "+15550001111")
	require.NoError(t, err)

	claims, err := j.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "+15550001111", claims.UserIdentifier)
}

func TestHS512Expired(t *testing.T) {
	j := newTestJWT(t, time.Now().Add(-2*time.Hour))

	token, err := j.Generate(42, "jane@example.com")
	require.NoError(t, err)

	_, err = j.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHS512TamperedToken(t *testing.T) {
	j := newTestJWT(t, time.Now())

	token, err := j.Generate(42, "jane@example.com")
	require.NoError(t, err)

	_, err = j.Verify(token + "x")
	assert.Error(t, err)
}

func TestHS512SecretTooShort(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("short")})
	assert.ErrorIs(t, err, ErrSigningKeyTooShort)
}
