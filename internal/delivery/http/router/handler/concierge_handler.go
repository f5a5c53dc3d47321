package handler

import (
	"log/slog"
	"net/http"

	"ppoth/internal/delivery/http/response"
	"ppoth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConciergeHandler serves the recommendation chat endpoint.
type ConciergeHandler struct {
	concierge usecase.ConciergeUsecase
	logger    *slog.Logger
}

// NewConciergeHandler is the constructor for ConciergeHandler, injected by Fx.
func NewConciergeHandler(concierge usecase.ConciergeUsecase, logger *slog.Logger) *ConciergeHandler {
	return &ConciergeHandler{
		concierge: concierge,
		logger:    logger,
	}
}

// Ask forwards a visitor question to the concierge.
func (h *ConciergeHandler) Ask(c echo.Context) error {
	var input usecase.AskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid concierge input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.concierge.Ask(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
