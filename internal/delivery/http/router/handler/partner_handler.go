package handler

import (
	"log/slog"
	"net/http"

	"ppoth/internal/delivery/http/middleware"
	"ppoth/internal/delivery/http/response"
	"ppoth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PartnerHandler serves the partner self-service console endpoints.
type PartnerHandler struct {
	partner usecase.PartnerUsecase
	logger  *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler, injected by Fx.
func NewPartnerHandler(partner usecase.PartnerUsecase, logger *slog.Logger) *PartnerHandler {
	return &PartnerHandler{
		partner: partner,
		logger:  logger,
	}
}

// Dashboard returns the caller's listing with live metrics.
func (h *PartnerHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.partner.Dashboard(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "")
}

// UpdateBusiness applies partner edits to the caller's own listing.
func (h *PartnerHandler) UpdateBusiness(c echo.Context) error {
	var input usecase.UpdateListingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	business, err := h.partner.UpdateListing(c.Request().Context(), middleware.UserID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Listing updated")
}

// ShareQR streams a PNG QR code linking to the caller's public profile.
func (h *PartnerHandler) ShareQR(c echo.Context) error {
	png, err := h.partner.ShareQR(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
