// AngelaMos | 2026
// handler.go

package likes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/carvault/internal/core"
	"github.com/angelamos/carvault/internal/middleware"
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

// RegisterRoutes mounts the like endpoints under /users/{userID}. Writes
// require auth and ownership (or admin); the liked listing tolerates
// anonymous callers, who by definition have liked nothing.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	optionalAuth func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/users/{userID}/like", h.Like)
		r.Post("/users/{userID}/unlike", h.Unlike)
	})

	r.Group(func(r chi.Router) {
		r.Use(optionalAuth)

		r.Get("/users/{userID}/liked", h.ListLiked)
	})
}

type likeOp func(
	ctx context.Context,
	userID, modelID, submodelID string,
) (string, error)

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	h.mutateLikeSet(w, r, h.service.Like)
}

func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.mutateLikeSet(w, r, h.service.Unlike)
}

func (h *Handler) mutateLikeSet(
	w http.ResponseWriter,
	r *http.Request,
	op likeOp,
) {
	userID := chi.URLParam(r, "userID")

	if !middleware.CanActFor(r.Context(), userID) {
		core.Forbidden(w, "cannot modify another user's likes")
		return
	}

	var req LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	message, err := op(r.Context(), userID, req.ModelID, req.SubmodelID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			core.NotFound(w, "user")
		case errors.Is(err, ErrSubmodelNotFound):
			core.NotFound(w, "submodel")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, MessageResponse{Message: message})
}

func (h *Handler) ListLiked(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	// Anonymous callers get an empty set rather than a 401: a visitor who
	// has never logged in has liked nothing.
	if !middleware.IsAuthenticated(r.Context()) {
		core.OK(w, LikedSubmodelsResponse{
			LikedSubmodels: []LikedSubmodelResponse{},
		})
		return
	}

	liked, err := h.service.ListLiked(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToLikedSubmodelsResponse(liked))
}
