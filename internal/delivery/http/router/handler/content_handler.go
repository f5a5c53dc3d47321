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

// ContentHandler serves homepage settings and CMS pages.
type ContentHandler struct {
	content   usecase.ContentUsecase
	directory usecase.DirectoryUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(content usecase.ContentUsecase, directory usecase.DirectoryUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		content:   content,
		directory: directory,
		logger:    logger,
	}
}

type homepagePayload struct {
	Settings         *entity.HomepageSettings `json:"settings"`
	SpotlightPartner *entity.Business         `json:"spotlightPartner,omitempty"`
}

// GetHomepageSettings returns the homepage configuration together with the
// resolved spotlight partner. A dangling spotlight id is not an error; the
// partner is simply omitted.
func (h *ContentHandler) GetHomepageSettings(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.content.Settings(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := homepagePayload{Settings: settings}
	if settings.SpotlightPartnerID != "" {
		business, err := h.directory.GetBusiness(ctx, settings.SpotlightPartnerID)
		if err == nil {
			payload.SpotlightPartner = business
		} else {
			h.logger.Debug("spotlight partner not found",
				slog.String("business_id", settings.SpotlightPartnerID))
		}
	}

	return response.Success(c, http.StatusOK, payload, "")
}

// GetPage returns the CMS record for a slug. Unknown slugs yield a
// minimal record, never a 404.
func (h *ContentHandler) GetPage(c echo.Context) error {
	page, err := h.content.Page(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}
