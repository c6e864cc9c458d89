// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/carvault/internal/core"
)

type stubVerifier struct {
	claims *AccessTokenClaims
	err    error
}

func (s *stubVerifier) VerifyAccessToken(
	_ context.Context,
	_ string,
) (*AccessTokenClaims, error) {
	return s.claims, s.err
}

func echoIdentity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-User-ID", GetUserID(r.Context()))
	w.Header().Set("X-User-Role", GetUserRole(r.Context()))
	w.WriteHeader(http.StatusOK)
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", ""},
		{"bearer token", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"wrong scheme", "Basic abc123", ""},
		{"scheme only", "Bearer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractToken(req))
		})
	}
}

func TestAuthenticatorRejectsMissingToken(t *testing.T) {
	handler := Authenticator(&stubVerifier{})(http.HandlerFunc(echoIdentity))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorRejectsExpiredToken(t *testing.T) {
	verifier := &stubVerifier{err: core.ErrTokenExpired}
	handler := Authenticator(verifier)(http.HandlerFunc(echoIdentity))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthenticatorRejectsRevokedToken(t *testing.T) {
	verifier := &stubVerifier{err: core.ErrTokenRevoked}
	handler := Authenticator(verifier)(http.HandlerFunc(echoIdentity))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer revoked")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
}

func TestAuthenticatorAttachesIdentity(t *testing.T) {
	verifier := &stubVerifier{
		claims: &AccessTokenClaims{UserID: "u1", Role: "user"},
	}
	handler := Authenticator(verifier)(http.HandlerFunc(echoIdentity))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Header().Get("X-User-ID"))
	assert.Equal(t, "user", rec.Header().Get("X-User-Role"))
}

func TestOptionalAuthPassesAnonymousThrough(t *testing.T) {
	handler := OptionalAuth(&stubVerifier{err: core.ErrTokenInvalid})(
		http.HandlerFunc(echoIdentity),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-User-ID"))
}

func TestOptionalAuthIgnoresBadToken(t *testing.T) {
	handler := OptionalAuth(&stubVerifier{err: core.ErrTokenInvalid})(
		http.HandlerFunc(echoIdentity),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-User-ID"))
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(echoIdentity))

	userCtx := withClaims(
		context.Background(),
		&AccessTokenClaims{UserID: "u1", Role: "user"},
	)
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(userCtx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminCtx := withClaims(
		context.Background(),
		&AccessTokenClaims{UserID: "a1", Role: "admin"},
	)
	req = httptest.NewRequest(http.MethodGet, "/", nil).WithContext(adminCtx)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCanActFor(t *testing.T) {
	owner := withClaims(
		context.Background(),
		&AccessTokenClaims{UserID: "u1", Role: "user"},
	)
	assert.True(t, CanActFor(owner, "u1"))
	assert.False(t, CanActFor(owner, "u2"))

	admin := withClaims(
		context.Background(),
		&AccessTokenClaims{UserID: "a1", Role: "admin"},
	)
	assert.True(t, CanActFor(admin, "u1"))
}
