package handler

import (
	"io"
	"log/slog"
	"net/http"

	"ppoth/internal/delivery/http/response"
	"ppoth/internal/domain/entity"
	"ppoth/internal/domain/service"
	"ppoth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxUploadBytes caps admin media uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// AdminHandler serves the CMS endpoints behind the admin role.
type AdminHandler struct {
	directory  usecase.DirectoryUsecase
	content    usecase.ContentUsecase
	mediaStore service.MediaStore
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(
	directory usecase.DirectoryUsecase,
	content usecase.ContentUsecase,
	mediaStore service.MediaStore,
	logger *slog.Logger,
) *AdminHandler {
	return &AdminHandler{
		directory:  directory,
		content:    content,
		mediaStore: mediaStore,
		logger:     logger,
	}
}

// AddCategory creates a top-level category.
func (h *AdminHandler) AddCategory(c echo.Context) error {
	var input usecase.AddCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	category, err := h.directory.AddCategory(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

// UpdateCategory patches a category.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	var input usecase.UpdateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := h.directory.UpdateCategory(c.Request().Context(), c.Param("id"), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category updated")
}

// DeleteCategory removes a category and everything beneath it.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	if err := h.directory.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddSubCategory creates a subcategory under a category.
func (h *AdminHandler) AddSubCategory(c echo.Context) error {
	var input usecase.AddSubCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	subCategory, err := h.directory.AddSubCategory(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subCategory, "Subcategory created")
}

// UpdateSubCategory patches a subcategory.
func (h *AdminHandler) UpdateSubCategory(c echo.Context) error {
	var input usecase.UpdateSubCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}

	if err := h.directory.UpdateSubCategory(c.Request().Context(), c.Param("id"), c.Param("subId"), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subcategory updated")
}

// DeleteSubCategory removes a subcategory and its listings.
func (h *AdminHandler) DeleteSubCategory(c echo.Context) error {
	if err := h.directory.DeleteSubCategory(c.Request().Context(), c.Param("id"), c.Param("subId")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpsertBusiness creates or moves a listing.
func (h *AdminHandler) UpsertBusiness(c echo.Context) error {
	var input usecase.UpsertBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	business, err := h.directory.UpsertBusiness(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business saved")
}

// DeleteBusiness removes a listing.
func (h *AdminHandler) DeleteBusiness(c echo.Context) error {
	if err := h.directory.DeleteBusiness(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SaveHomepageSettings replaces the homepage configuration.
func (h *AdminHandler) SaveHomepageSettings(c echo.Context) error {
	var settings entity.HomepageSettings
	if err := c.Bind(&settings); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	if err := h.content.SaveSettings(c.Request().Context(), &settings); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Settings saved")
}

// SavePage upserts a CMS page by slug.
func (h *AdminHandler) SavePage(c echo.Context) error {
	var page entity.PageContent
	if err := c.Bind(&page); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page input")
	}
	page.Slug = c.Param("slug")

	if err := h.content.SavePage(c.Request().Context(), &page); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Page saved")
}

// UploadMedia stores an uploaded image and returns its public URL.
func (h *AdminHandler) UploadMedia(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file field")
	}
	if fileHeader.Size > maxUploadBytes {
		return response.BadRequest(c, "FILE_TOO_LARGE", "Uploaded file exceeds the size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	url, err := h.mediaStore.Save(
		c.Request().Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Stored media upload", "filename", fileHeader.Filename, "bytes", len(data))

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Media uploaded")
}
