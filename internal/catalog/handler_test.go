// AngelaMos | 2026
// handler_test.go

package catalog

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

type fakeRepo struct {
	models map[string]*Model
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{models: map[string]*Model{}}
}

func (f *fakeRepo) CreateModel(_ context.Context, model *Model) error {
	f.models[model.ID] = model
	return nil
}

func (f *fakeRepo) GetModel(_ context.Context, id string) (*Model, error) {
	model, ok := f.models[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return model, nil
}

func (f *fakeRepo) GetModelByName(
	_ context.Context,
	name string,
) (*Model, error) {
	for _, model := range f.models {
		if model.Name == name {
			return model, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepo) ListModels(_ context.Context) ([]Model, error) {
	models := []Model{}
	for _, model := range f.models {
		models = append(models, *model)
	}
	return models, nil
}

func (f *fakeRepo) ListPopularModels(
	ctx context.Context,
	_ int,
) ([]Model, error) {
	return f.ListModels(ctx)
}

func (f *fakeRepo) UpdateModel(_ context.Context, model *Model) error {
	if _, ok := f.models[model.ID]; !ok {
		return core.ErrNotFound
	}
	f.models[model.ID] = model
	return nil
}

func (f *fakeRepo) DeleteModel(_ context.Context, id string) error {
	if _, ok := f.models[id]; !ok {
		return core.ErrNotFound
	}
	delete(f.models, id)
	return nil
}

func (f *fakeRepo) ListSubmodels(
	_ context.Context,
	modelID string,
) ([]Submodel, error) {
	model, ok := f.models[modelID]
	if !ok {
		return []Submodel{}, nil
	}
	return model.Submodels, nil
}

func (f *fakeRepo) GetSubmodel(
	_ context.Context,
	modelID, submodelID string,
) (*Submodel, error) {
	model, ok := f.models[modelID]
	if !ok {
		return nil, core.ErrNotFound
	}
	for i := range model.Submodels {
		if model.Submodels[i].ID == submodelID {
			return &model.Submodels[i], nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepo) AddSubmodel(_ context.Context, submodel *Submodel) error {
	model, ok := f.models[submodel.ModelID]
	if !ok {
		return core.ErrNotFound
	}
	submodel.Position = len(model.Submodels)
	model.Submodels = append(model.Submodels, *submodel)
	return nil
}

func (f *fakeRepo) UpdateSubmodel(
	_ context.Context,
	submodel *Submodel,
) error {
	model, ok := f.models[submodel.ModelID]
	if !ok {
		return core.ErrNotFound
	}
	for i := range model.Submodels {
		if model.Submodels[i].ID == submodel.ID {
			model.Submodels[i] = *submodel
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeRepo) DeleteSubmodel(
	_ context.Context,
	modelID, submodelID string,
) error {
	model, ok := f.models[modelID]
	if !ok {
		return core.ErrNotFound
	}
	for i := range model.Submodels {
		if model.Submodels[i].ID == submodelID {
			model.Submodels = append(
				model.Submodels[:i],
				model.Submodels[i+1:]...,
			)
			return nil
		}
	}
	return core.ErrNotFound
}

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
	verifier := &stubVerifier{
		claims: map[string]*middleware.AccessTokenClaims{
			"user-token":  {UserID: "u1", Role: "user"},
			"admin-token": {UserID: "a1", Role: "admin"},
		},
	}

	handler := NewHandler(NewService(repo))

	router := chi.NewRouter()
	handler.RegisterRoutes(
		router,
		middleware.Authenticator(verifier),
		middleware.RequireAdmin,
	)

	return router, repo
}

func doRequest(
	t *testing.T,
	router http.Handler,
	method, path, token, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const createModelBody = `{
	"name": "M3",
	"yearIntroduced": 1986,
	"description": "The original sports sedan.",
	"submodels": [{
		"name": "E46 CSL",
		"engineType": "S54 inline-6",
		"horsepower": 360,
		"torque": 370,
		"transmission": "SMG II",
		"year": 2003
	}]
}`

func TestCreateModelRequiresAdmin(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router,
		http.MethodPost, "/models", "", createModelBody)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router,
		http.MethodPost, "/models", "user-token", createModelBody)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateModelWithSubmodels(t *testing.T) {
	router, repo := newTestRouter(t)

	rec := doRequest(t, router,
		http.MethodPost, "/models", "admin-token", createModelBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ModelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "M3", resp.Name)
	require.Len(t, resp.Submodels, 1)
	assert.Equal(t, "E46 CSL", resp.Submodels[0].Name)
	assert.NotEmpty(t, resp.ID)

	assert.Len(t, repo.models, 1)
}

func TestCreateModelValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router,
		http.MethodPost, "/models", "admin-token", `{"name": "M3"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetModelPublic(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.models["m3"] = &Model{ID: "m3", Name: "M3", Submodels: []Submodel{}}

	rec := doRequest(t, router, http.MethodGet, "/models/m3", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ModelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "M3", resp.Name)
}

func TestGetModelNotFoundResponse(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/models/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetModelByNamePublic(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.models["m3"] = &Model{ID: "m3", Name: "M3", Submodels: []Submodel{}}

	rec := doRequest(t, router, http.MethodGet, "/models/name/M3", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ModelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "m3", resp.ID)
}

func TestDeleteModelRequiresAdmin(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.models["m3"] = &Model{ID: "m3", Name: "M3"}

	rec := doRequest(t, router,
		http.MethodDelete, "/models/m3", "user-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router,
		http.MethodDelete, "/models/m3", "admin-token", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.models)
}

func TestAddSubmodelAssignsPosition(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.models["m3"] = &Model{ID: "m3", Name: "M3"}

	body := `{
		"name": "E92 GTS",
		"engineType": "S65 V8",
		"horsepower": 450,
		"torque": 440,
		"transmission": "DCT",
		"year": 2010
	}`

	rec := doRequest(t, router,
		http.MethodPost, "/models/m3/submodels", "admin-token", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SubmodelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "E92 GTS", resp.Name)
	assert.NotEmpty(t, resp.ID)
}
