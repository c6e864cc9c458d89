// AngelaMos | 2026
// handler_test.go

package likes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/carvault/internal/core"
	"github.com/angelamos/carvault/internal/middleware"
)

type stubVerifier struct {
	claims map[string]*middleware.AccessTokenClaims
}

func (s *stubVerifier) VerifyAccessToken(
	_ context.Context,
	token string,
) (*middleware.AccessTokenClaims, error) {
	claims, ok := s.claims[token]
	if !ok {
		return nil, core.ErrTokenInvalid
	}
	return claims, nil
}

func newTestRouter(t *testing.T) (*chi.Mux, *fakeRepo) {
	t.Helper()

	repo := newFakeRepo()
	repo.users["u1"] = true
	repo.users["admin1"] = true
	repo.addSubmodel("m3", "M3", "e46", "E46 CSL")

	verifier := &stubVerifier{
		claims: map[string]*middleware.AccessTokenClaims{
			"u1-token": {UserID: "u1", Email: "u1@test.dev", Role: "user"},
			"u2-token": {UserID: "u2", Email: "u2@test.dev", Role: "user"},
			"admin-token": {
				UserID: "admin1",
				Email:  "admin@test.dev",
				Role:   "admin",
			},
		},
	}

	handler := NewHandler(NewService(repo))

	router := chi.NewRouter()
	handler.RegisterRoutes(
		router,
		middleware.Authenticator(verifier),
		middleware.OptionalAuth(verifier),
	)

	return router, repo
}

func doRequest(
	t *testing.T,
	router http.Handler,
	method, path, token, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLikeEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router,
		http.MethodPost, "/users/u1/like", "u1-token",
		`{"modelId":"m3","submodelId":"e46"}`,
	)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, MsgLiked, resp.Message)
}

func TestLikeTwiceReportsAlreadyLiked(t *testing.T) {
	router, _ := newTestRouter(t)
	body := `{"modelId":"m3","submodelId":"e46"}`

	rec := doRequest(t, router,
		http.MethodPost, "/users/u1/like", "u1-token", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router,
		http.MethodPost, "/users/u1/like", "u1-token", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, MsgAlreadyLiked, resp.Message)
}

func TestLikeRequiresBothIDs(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router,
		http.MethodPost, "/users/u1/like", "u1-token",
		`{"modelId":"m3"}`,
	)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router,
		http.MethodPost, "/users/u1/like", "u1-token",
		`{"submodelId":"e46"}`,
	)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLikeUnknownSubmodelReturns404(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router,
		http.MethodPost, "/users/u1/like", "u1-token",
		`{"modelId":"m3","submodelId":"nope"}`,
	)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLikeWithoutTokenReturns401(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router,
		http.MethodPost, "/users/u1/like", "",
		`{"modelId":"m3","submodelId":"e46"}`,
	)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLikeForAnotherUserIsForbidden(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router,
		http.MethodPost, "/users/u1/like", "u2-token",
		`{"modelId":"m3","submodelId":"e46"}`,
	)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminCanActForAnyUser(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router,
		http.MethodPost, "/users/u1/like", "admin-token",
		`{"modelId":"m3","submodelId":"e46"}`,
	)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, MsgLiked, resp.Message)
}

func TestUnlikeEndpointRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)
	body := `{"modelId":"m3","submodelId":"e46"}`

	rec := doRequest(t, router,
		http.MethodPost, "/users/u1/like", "u1-token", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router,
		http.MethodPost, "/users/u1/unlike", "u1-token", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, MsgUnliked, resp.Message)

	rec = doRequest(t, router,
		http.MethodPost, "/users/u1/unlike", "u1-token", body)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, MsgNotLiked, resp.Message)
}

func TestListLikedAnonymousReturnsEmptySet(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router,
		http.MethodGet, "/users/u1/liked", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LikedSubmodelsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.LikedSubmodels)
	assert.Empty(t, resp.LikedSubmodels)
}

func TestListLikedReturnsJoinedEntries(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router,
		http.MethodPost, "/users/u1/like", "u1-token",
		`{"modelId":"m3","submodelId":"e46"}`,
	)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router,
		http.MethodGet, "/users/u1/liked", "u1-token", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LikedSubmodelsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.LikedSubmodels, 1)
	assert.Equal(t, "m3", resp.LikedSubmodels[0].ModelID)
	assert.Equal(t, "M3", resp.LikedSubmodels[0].ModelName)
	assert.Equal(t, "E46 CSL", resp.LikedSubmodels[0].Submodel.Name)
}

func TestListLikedUnknownUserReturns404(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router,
		http.MethodGet, "/users/ghost/liked", "u1-token", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
