package handler

import (
	"log/slog"
	"net/http"

	"ppoth/internal/delivery/http/response"
	"ppoth/internal/domain/entity"
	"ppoth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler serves the public directory read endpoints.
type DirectoryHandler struct {
	directory usecase.DirectoryUsecase
	metrics   usecase.MetricsUsecase
	logger    *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(
	directory usecase.DirectoryUsecase,
	metrics usecase.MetricsUsecase,
	logger *slog.Logger,
) *DirectoryHandler {
	return &DirectoryHandler{
		directory: directory,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetDirectory returns the full category hierarchy.
func (h *DirectoryHandler) GetDirectory(c echo.Context) error {
	categories, err := h.directory.GetAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// GetHierarchy returns the id/name skeleton of the hierarchy.
func (h *DirectoryHandler) GetHierarchy(c echo.Context) error {
	nodes, err := h.directory.Hierarchy(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nodes, "")
}

// GetBusiness returns a single listing by id.
func (h *DirectoryHandler) GetBusiness(c echo.Context) error {
	business, err := h.directory.GetBusiness(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// IncrementMetric records one telemetry event against a listing. The
// response is 204 regardless of whether the listing exists.
func (h *DirectoryHandler) IncrementMetric(c echo.Context) error {
	kind := entity.MetricKind(c.Param("kind"))

	if err := h.metrics.Increment(c.Request().Context(), c.Param("id"), kind); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
