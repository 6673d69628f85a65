package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayms/backend/internal/pkg/apperrors"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "bayms.org",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(Identity{UserID: "uid-1", Email: "kim@bayms.org"})
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserID)
	assert.Equal(t, "kim@bayms.org", claims.Email)
	assert.Equal(t, "bayms.org", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken(Identity{Email: "kim@bayms.org"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenSignedWithOtherSecret(t *testing.T) {
	other := NewJWTService(JWTConfig{
		SecretKey:      "other-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "bayms.org",
	})
	token, _, err := other.GenerateToken(Identity{Email: "kim@bayms.org"})
	require.NoError(t, err)

	_, err = newTestService(time.Hour).ValidateToken(token)
	require.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	require.ErrorIs(t, err, apperrors.ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic abc")
	require.ErrorIs(t, err, apperrors.ErrInvalidFormat)
}

func TestIdentityValid(t *testing.T) {
	assert.False(t, Identity{}.Valid())
	assert.True(t, Identity{Email: "kim@bayms.org"}.Valid())
}
