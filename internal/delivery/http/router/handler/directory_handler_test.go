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

func newTestDirectoryHandler() *DirectoryHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := bus.New(logger)
	repo := store.NewDirectoryRepository(snapshot.NewMemoryStore())
	lock := impl.NewDirectoryLock()

	return NewDirectoryHandler(
		impl.NewDirectoryService(lock, repo, notifier, logger),
		impl.NewMetricsService(lock, repo, notifier, logger),
		logger,
	)
}

func TestDirectoryHandler_GetDirectory(t *testing.T) {
	h := newTestDirectoryHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/directory", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetDirectory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "cat_outdoor")
	assert.Contains(t, rec.Body.String(), "biz_land_1")
}

func TestDirectoryHandler_GetBusiness(t *testing.T) {
	h := newTestDirectoryHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/businesses/:id")
	c.SetParamNames("id")
	c.SetParamValues("biz_land_1")

	require.NoError(t, h.GetBusiness(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gardens of Georgica")
}

func TestDirectoryHandler_IncrementMetric(t *testing.T) {
	h := newTestDirectoryHandler()

	e := echo.New()

	// Seed via a read first.
	seedReq := httptest.NewRequest(http.MethodGet, "/directory", nil)
	require.NoError(t, h.GetDirectory(e.NewContext(seedReq, httptest.NewRecorder())))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/businesses/:id/metrics/:kind")
	c.SetParamNames("id", "kind")
	c.SetParamValues("biz_land_1", "view")

	require.NoError(t, h.IncrementMetric(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Unknown listings are still a 204; telemetry is fire-and-forget.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	c.SetParamNames("id", "kind")
	c.SetParamValues("biz_ghost", "view")

	require.NoError(t, h.IncrementMetric(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
