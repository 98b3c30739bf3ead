package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"o3profile/internal/config"
	"o3profile/internal/dataset"
	apierrors "o3profile/internal/errors"
	"o3profile/internal/profile"
	"o3profile/internal/services"
)

// ProfileHandler serves the JSON profile API.
type ProfileHandler struct {
	service      *services.ProfileService
	cfg          *config.Config
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewProfileHandler creates a profile handler.
func NewProfileHandler(service *services.ProfileService, cfg *config.Config, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ProfileHandler {
	return &ProfileHandler{
		service:      service,
		cfg:          cfg,
		logger:       logger.With(slog.String("component", "profile_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the profile API routes.
func (h *ProfileHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/", h.GetProfile)
	return r
}

// GetProfile handles GET /api/profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	params, err := parseParams(r.URL.Query(), h.cfg.DefaultParams(), h.cfg.DatasetPath)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	data, err := h.service.BuildProfile(r.Context(), params)
	if err != nil {
		h.errorHandler.HandleError(w, r, mapPipelineError(err))
		return
	}

	render.JSON(w, r, data)
}

// mapPipelineError translates pipeline errors into the API error taxonomy:
// bad parameters are the caller's fault (400), a missing file is 404, and a
// file that exists but cannot yield a profile is 422.
func mapPipelineError(err error) error {
	var paramsErr *profile.ParamsError
	if errors.As(err, &paramsErr) {
		return apierrors.ErrValidation(paramsErr.Field, paramsErr.Reason)
	}

	var loadErr *dataset.LoadError
	if errors.As(err, &loadErr) {
		if loadErr.NotFound() {
			return apierrors.DatasetNotFound(loadErr.Path)
		}
		return apierrors.DatasetUnreadable(loadErr)
	}

	var schemaErr *dataset.SchemaError
	if errors.As(err, &schemaErr) {
		return apierrors.SchemaMismatch(schemaErr.Missing, schemaErr.Found)
	}

	var emptyErr *dataset.EmptyDatasetError
	if errors.As(err, &emptyErr) {
		return apierrors.EmptyDataset(emptyErr.Total)
	}

	return err
}
