// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/carvault/internal/config"
	"github.com/angelamos/carvault/internal/core"
)

func newTestJWTManager(t *testing.T, expire time.Duration) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	require.NoError(t, GenerateKeyPair(privatePath, publicPath))

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:    privatePath,
		PublicKeyPath:     publicPath,
		AccessTokenExpire: expire,
		Issuer:            "carvault-test",
		Audience:          "carvault-test-api",
	})
	require.NoError(t, err)

	return manager
}

func TestCreateAndVerifyAccessToken(t *testing.T) {
	manager := newTestJWTManager(t, time.Hour)

	signed, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID: "u1",
		Email:  "driver@test.dev",
		Role:   "user",
	})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := manager.VerifyAccessToken(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "driver@test.dev", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(
		t,
		time.Now().Add(time.Hour),
		claims.ExpiresAt,
		time.Minute,
	)
}

func TestVerifyExpiredToken(t *testing.T) {
	manager := newTestJWTManager(t, -time.Minute)

	signed, err := manager.CreateAccessToken(AccessTokenClaims{
		UserID: "u1",
		Email:  "driver@test.dev",
		Role:   "user",
	})
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(context.Background(), signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifyGarbageToken(t *testing.T) {
	manager := newTestJWTManager(t, time.Hour)

	_, err := manager.VerifyAccessToken(
		context.Background(),
		"not.a.token",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyTokenFromAnotherKey(t *testing.T) {
	managerA := newTestJWTManager(t, time.Hour)
	managerB := newTestJWTManager(t, time.Hour)

	signed, err := managerA.CreateAccessToken(AccessTokenClaims{
		UserID: "u1",
		Email:  "driver@test.dev",
		Role:   "user",
	})
	require.NoError(t, err)

	_, err = managerB.VerifyAccessToken(context.Background(), signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestTokenIDsAreUnique(t *testing.T) {
	manager := newTestJWTManager(t, time.Hour)
	claims := AccessTokenClaims{UserID: "u1", Email: "a@b.c", Role: "user"}

	first, err := manager.CreateAccessToken(claims)
	require.NoError(t, err)
	second, err := manager.CreateAccessToken(claims)
	require.NoError(t, err)

	parsedFirst, err := manager.VerifyAccessToken(context.Background(), first)
	require.NoError(t, err)
	parsedSecond, err := manager.VerifyAccessToken(context.Background(), second)
	require.NoError(t, err)

	assert.NotEqual(t, parsedFirst.TokenID, parsedSecond.TokenID)
}
