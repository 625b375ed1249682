package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/report-hub/internal/notify"
)

// EventsHandler streams submission events to websocket clients.
type EventsHandler struct {
	hub *notify.Hub
}

func NewEventsHandler(hub *notify.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

func (h *EventsHandler) Stream(c *gin.Context) {
	if err := h.hub.Serve(c.Writer, c.Request); err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
	}
}
