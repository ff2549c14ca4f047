package token

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"hr-dashboard-api/internal/model"
)

const testSecret = "unit-test-signing-secret"

func newTestCodec(t *testing.T) *Codec {
	t.Helper()

	codec, err := NewCodec(testSecret)
	require.NoError(t, err)
	return codec
}

func TestNewCodec_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewCodec("")
	require.Error(t, err)

	_, err = NewCodec("   ")
	require.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	signed, err := codec.EncodeAccess("admin", model.RoleAdmin, 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := codec.Decode(signed, TypeAccess)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Subject)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, TypeAccess, claims.Type)
	require.NotEmpty(t, claims.ID)
	require.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestCodec_RefreshTokenCarriesNoRole(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	signed, err := codec.EncodeRefresh("rh", 7*24*time.Hour)
	require.NoError(t, err)

	claims, err := codec.Decode(signed, TypeRefresh)
	require.NoError(t, err)
	require.Equal(t, "rh", claims.Subject)
	require.Empty(t, claims.Role)

	// The wire form must not contain a role claim at all, not just an
	// empty one.
	payload := strings.Split(signed, ".")[1]
	decoded, err := base64.RawURLEncoding.DecodeString(payload)
	require.NoError(t, err)
	require.NotContains(t, string(decoded), `"role"`)
}

func TestCodec_ExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	// Correctly signed but already past its expiry instant.
	expired := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Role: "admin",
		Type: TypeAccess,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = codec.Decode(signed, TypeAccess)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestCodec_TamperedSignatureRejected(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	signed, err := codec.EncodeAccess("admin", model.RoleAdmin, 30*time.Minute)
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	// Single-bit flip in the signature bytes.
	sig[0] ^= 0x01
	parts[2] = base64.RawURLEncoding.EncodeToString(sig)

	_, err = codec.Decode(strings.Join(parts, "."), TypeAccess)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestCodec_TamperedPayloadRejected(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	signed, err := codec.EncodeAccess("employee1", model.RoleEmployee, 30*time.Minute)
	require.NoError(t, err)

	claims, err := codec.Decode(signed, TypeAccess)
	require.NoError(t, err)

	// Re-sign an escalated payload with the wrong key; the codec must not
	// trust the attacker-controlled role claim.
	claims.Role = "admin"
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("attacker-key-attacker-key"))
	require.NoError(t, err)

	_, err = codec.Decode(forged, TypeAccess)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestCodec_WrongTypeRejected(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	refresh, err := codec.EncodeRefresh("admin", time.Hour)
	require.NoError(t, err)

	_, err = codec.Decode(refresh, TypeAccess)
	require.ErrorIs(t, err, model.ErrInvalidToken)

	access, err := codec.EncodeAccess("admin", model.RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = codec.Decode(access, TypeRefresh)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestCodec_MalformedTokenRejected(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := codec.Decode(raw, TypeAccess)
		require.ErrorIs(t, err, model.ErrInvalidToken)
	}
}

func TestCodec_EncodeRejectsBadInput(t *testing.T) {
	t.Parallel()

	codec := newTestCodec(t)

	_, err := codec.EncodeAccess("", model.RoleAdmin, time.Hour)
	require.Error(t, err)

	_, err = codec.EncodeAccess("admin", model.RoleAdmin, 0)
	require.Error(t, err)

	_, err = codec.EncodeRefresh("admin", -time.Minute)
	require.Error(t, err)
}
