package http

import (
	"github.com/gin-gonic/gin"

	"github-event-tracker/pkg/response"
)

// Webhook godoc
// @Summary     Receive a GitHub webhook delivery
// @Description Normalizes push / pull_request deliveries into canonical events. Unsupported or untracked deliveries are acknowledged but not stored.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-GitHub-Event header string true "GitHub event type"
// @Param       body body map[string]interface{} true "Raw webhook payload"
// @Success     201 {object} response.Resp "Stored"
// @Success     202 {object} response.Resp "Received but ignored"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /webhook [POST]
func (h *handler) Webhook(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWebhookReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Ingest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ingest: %v", err)
		response.InternalError(c, err)
		return
	}

	if !output.Stored {
		// Expected outcome for most GitHub event types; never a fault.
		response.Accepted(c, h.newIgnoredResp(output))
		return
	}
	response.Created(c, h.newStoredResp(output))
}

// List godoc
// @Summary     List latest events
// @Description Returns the most recent normalized events in reverse-chronological order.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       limit query int false "Max records to return, clamped to [1, 200] (default: 50)"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}
