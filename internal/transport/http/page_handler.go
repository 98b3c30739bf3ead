package http

import (
	"log/slog"
	"net/http"

	"o3profile/internal/chart"
	"o3profile/internal/config"
	apierrors "o3profile/internal/errors"
	"o3profile/internal/services"
)

// PageHandler serves the interactive dashboard page.
type PageHandler struct {
	service      *services.ProfileService
	cfg          *config.Config
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewPageHandler creates a page handler.
func NewPageHandler(service *services.ProfileService, cfg *config.Config, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *PageHandler {
	return &PageHandler{
		service:      service,
		cfg:          cfg,
		logger:       logger.With(slog.String("component", "page_handler")),
		errorHandler: errorHandler,
	}
}

// Dashboard handles GET /. It runs the same pipeline as the JSON API and
// renders the result as an HTML page with the chart and parameter controls.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.RenderPage(w, data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render dashboard page",
			slog.String("error", err.Error()))
	}
}
