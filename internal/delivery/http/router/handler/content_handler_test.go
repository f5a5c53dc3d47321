package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ppoth/internal/infra/bus"
	"ppoth/internal/infra/persistence/snapshot"
	"ppoth/internal/infra/persistence/store"
	"ppoth/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContentHandler() *ContentHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := bus.New(logger)
	s := snapshot.NewMemoryStore()
	lock := impl.NewDirectoryLock()

	content := impl.NewContentService(
		store.NewSettingsRepository(s),
		store.NewPageRepository(s),
		notifier,
		logger,
	)
	directory := impl.NewDirectoryService(lock, store.NewDirectoryRepository(s), notifier, logger)

	return NewContentHandler(content, directory, logger)
}

func TestContentHandler_GetHomepageSettings(t *testing.T) {
	h := newTestContentHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/settings/homepage", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetHomepageSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"settings"`)

	// The seeded spotlight id resolves to a full business record.
	assert.Contains(t, rec.Body.String(), `"spotlightPartner"`)
	assert.Contains(t, rec.Body.String(), "Gardens of Georgica")
}

func TestContentHandler_GetPage(t *testing.T) {
	h := newTestContentHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/pages/:slug")
	c.SetParamNames("slug")
	c.SetParamValues("about")

	require.NoError(t, h.GetPage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"about"`)
}
