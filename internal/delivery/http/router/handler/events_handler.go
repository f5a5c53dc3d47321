package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"ppoth/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// EventsHandler streams change notifications to clients over SSE so
// admin edits show up on open pages without polling.
type EventsHandler struct {
	notifier service.ChangeNotifier
	logger   *slog.Logger
}

// NewEventsHandler is the constructor for EventsHandler, injected by Fx.
func NewEventsHandler(notifier service.ChangeNotifier, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		notifier: notifier,
		logger:   logger,
	}
}

// Stream subscribes the client to every change topic and forwards events
// until the client disconnects. Events emitted while the channel buffer
// is full are dropped; clients refetch on any event, so losses are
// harmless.
func (h *EventsHandler) Stream(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	events := make(chan string, 16)
	unsubscribe := h.notifier.Subscribe(func(topic string) {
		select {
		case events <- topic:
		default:
		}
	})
	defer unsubscribe()

	ctx := c.Request().Context()

	for {
		select {
		case <-ctx.Done():
			return nil
		case topic := <-events:
			if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", topic); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
