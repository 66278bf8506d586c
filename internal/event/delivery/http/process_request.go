package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github-event-tracker/internal/event"
)

// processWebhookReq extracts the event-type header and the JSON object body.
// Request-framing problems here are caller errors, distinct from the
// normalizer's declines.
func (h *handler) processWebhookReq(c *gin.Context) (webhookReq, error) {
	var req webhookReq

	req.EventType = strings.TrimSpace(c.GetHeader("X-GitHub-Event"))
	if req.EventType == "" {
		return req, event.ErrMissingEventType
	}

	// Binding into a map rejects arrays, scalars, and empty bodies alike.
	if err := c.ShouldBindJSON(&req.Payload); err != nil || req.Payload == nil {
		return req, event.ErrInvalidPayload
	}

	return req, nil
}

// processListReq parses the optional limit query parameter. A value that is
// not an integer at all is a caller error; range clamping happens in the
// usecase.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq

	raw := c.DefaultQuery("limit", strconv.Itoa(event.DefaultListLimit))
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return req, event.ErrInvalidLimit
	}

	req.Limit = limit
	return req, nil
}
