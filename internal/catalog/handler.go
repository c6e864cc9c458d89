// AngelaMos | 2026
// handler.go

package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/carvault/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the catalog. Reads are public; writes sit behind the
// authenticator plus the admin gate.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	requireAdmin func(http.Handler) http.Handler,
) {
	r.Route("/models", func(r chi.Router) {
		r.Get("/", h.ListModels)
		r.Get("/popular", h.ListPopularModels)
		r.Get("/name/{name}", h.GetModelByName)
		r.Get("/{modelID}", h.GetModel)
		r.Get("/{modelID}/submodels", h.ListSubmodels)
		r.Get("/{modelID}/submodels/{submodelID}", h.GetSubmodel)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(requireAdmin)

			r.Post("/", h.CreateModel)
			r.Put("/{modelID}", h.UpdateModel)
			r.Delete("/{modelID}", h.DeleteModel)
			r.Post("/{modelID}/submodels", h.AddSubmodel)
			r.Put("/{modelID}/submodels/{submodelID}", h.UpdateSubmodel)
			r.Delete("/{modelID}/submodels/{submodelID}", h.DeleteSubmodel)
		})
	})
}

func (h *Handler) CreateModel(w http.ResponseWriter, r *http.Request) {
	var req CreateModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	model, err := h.service.CreateModel(r.Context(), &req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToModelResponse(model))
}

func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.service.ListModels(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToModelResponseList(models))
}

func (h *Handler) ListPopularModels(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	models, err := h.service.ListPopularModels(r.Context(), limit)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToModelResponseList(models))
}

func (h *Handler) GetModel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelID")

	model, err := h.service.GetModel(r.Context(), modelID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "model")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToModelResponse(model))
}

func (h *Handler) GetModelByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	model, err := h.service.GetModelByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "model")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToModelResponse(model))
}

func (h *Handler) UpdateModel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelID")

	var req UpdateModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	model, err := h.service.UpdateModel(r.Context(), modelID, &req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "model")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToModelResponse(model))
}

func (h *Handler) DeleteModel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelID")

	if err := h.service.DeleteModel(r.Context(), modelID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "model")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ListSubmodels(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelID")

	submodels, err := h.service.ListSubmodels(r.Context(), modelID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "model")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSubmodelResponseList(submodels))
}

func (h *Handler) GetSubmodel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelID")
	submodelID := chi.URLParam(r, "submodelID")

	submodel, err := h.service.GetSubmodel(r.Context(), modelID, submodelID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "submodel")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSubmodelResponse(submodel))
}

func (h *Handler) AddSubmodel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelID")

	var req CreateSubmodelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	submodel, err := h.service.AddSubmodel(r.Context(), modelID, &req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "model")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToSubmodelResponse(submodel))
}

func (h *Handler) UpdateSubmodel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelID")
	submodelID := chi.URLParam(r, "submodelID")

	var req CreateSubmodelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	submodel, err := h.service.UpdateSubmodel(
		r.Context(),
		modelID,
		submodelID,
		&req,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "submodel")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToSubmodelResponse(submodel))
}

func (h *Handler) DeleteSubmodel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelID")
	submodelID := chi.URLParam(r, "submodelID")

	err := h.service.DeleteSubmodel(r.Context(), modelID, submodelID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "submodel")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}
