package codec

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consoleiam/admin-console/internal/core/domain"
	"github.com/consoleiam/admin-console/internal/testutil"
)

func newTestCodec(opts ...Option) *Codec {
	return New(append([]Option{WithClock(testutil.Clock)}, opts...)...)
}

func TestDecode_WellFormed(t *testing.T) {
	c := newTestCodec()
	token := testutil.Token(t, testutil.Claims(
		[]string{"USER_MGMT:read", "USER_MGMT:update"},
		[]string{"admin", "tenant_admin"},
	))

	claims, err := c.Decode(token)
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", claims.Subject)
	assert.Equal(t, "42", claims.UserID.String())
	assert.Equal(t, "ada", claims.Username)
	assert.Equal(t, []string{"admin", "tenant_admin"}, claims.Roles)
	assert.Equal(t, []string{"USER_MGMT:read", "USER_MGMT:update"}, claims.Permissions)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, testutil.Now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestDecode_SignedJWT(t *testing.T) {
	c := newTestCodec()
	token := testutil.SignedToken(t, testutil.Claims([]string{"ROLE_MGMT:read"}, nil), "secret")

	claims, err := c.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_MGMT:read"}, claims.Permissions)
}

func TestDecode_WrongSegmentCount(t *testing.T) {
	c := newTestCodec()
	for _, in := range []string{"", "abc", "a.b", "a.b.c.d", "...."} {
		claims, err := c.Decode(in)
		assert.Nil(t, claims, in)
		assert.True(t, errors.Is(err, domain.ErrMalformedCredential), in)
		assert.True(t, c.IsExpired(in), in)
	}
}

func TestDecode_BadPayload(t *testing.T) {
	c := newTestCodec()
	notJSON := base64.RawURLEncoding.EncodeToString([]byte("not json"))
	null := base64.RawURLEncoding.EncodeToString([]byte("null"))
	badExp := base64.RawURLEncoding.EncodeToString([]byte(`{"exp":"tomorrow"}`))

	for _, in := range []string{
		"h.%%%.s",
		"h." + notJSON + ".s",
		"h." + null + ".s",
		"h." + badExp + ".s",
	} {
		_, err := c.Decode(in)
		assert.ErrorIs(t, err, domain.ErrMalformedCredential, in)
	}
}

func TestDecode_StandardAlphabetAndPadding(t *testing.T) {
	c := newTestCodec()
	// Encodes with a '+' and trailing padding in the standard alphabet.
	payload := `{"username":"?>?","exp":1900000000}`
	std := base64.StdEncoding.EncodeToString([]byte(payload))

	claims, err := c.Decode("h." + std + ".s")
	require.NoError(t, err)
	assert.Equal(t, "?>?", claims.Username)
}

func TestDecode_ReturnsIndependentCopies(t *testing.T) {
	c := newTestCodec()
	token := testutil.Token(t, testutil.Claims([]string{"USER_MGMT:read"}, nil))

	first, err := c.Decode(token)
	require.NoError(t, err)
	first.Permissions[0] = "tampered"

	second, err := c.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"USER_MGMT:read"}, second.Permissions)
}

func TestIsExpired_Boundaries(t *testing.T) {
	c := newTestCodec(WithCacheSize(0))
	tests := []struct {
		name    string
		exp     time.Time
		expired bool
	}{
		{"one second ago", testutil.Now.Add(-time.Second), true},
		{"exactly now", testutil.Now, true},
		{"one second ahead", testutil.Now.Add(time.Second), false},
		{"an hour ahead", testutil.Now.Add(time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := testutil.Claims(nil, nil)
			claims["exp"] = tt.exp.Unix()
			claims["iat"] = tt.exp.Add(-time.Hour).Unix()
			assert.Equal(t, tt.expired, c.IsExpired(testutil.Token(t, claims)))
		})
	}
}

func TestIsExpired_MissingExp(t *testing.T) {
	c := newTestCodec()
	claims := testutil.Claims(nil, nil)
	delete(claims, "exp")
	assert.True(t, c.IsExpired(testutil.Token(t, claims)))
}

func TestIsExpired_FollowsClock(t *testing.T) {
	now := testutil.Now
	c := New(WithClock(func() time.Time { return now }))
	token := testutil.Token(t, testutil.Claims(nil, nil))

	assert.False(t, c.IsExpired(token))
	now = now.Add(2 * time.Hour)
	assert.True(t, c.IsExpired(token), "cached decode must not pin the expiry verdict")
}

func TestExpiresAt(t *testing.T) {
	c := newTestCodec()

	at, ok := c.ExpiresAt(testutil.Token(t, testutil.Claims(nil, nil)))
	require.True(t, ok)
	assert.True(t, at.Equal(testutil.Now.Add(time.Hour)))

	_, ok = c.ExpiresAt("abc")
	assert.False(t, ok)
}
