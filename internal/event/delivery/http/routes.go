package http

import (
	"github.com/gin-gonic/gin"

	"github-event-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The webhook
// route carries the rate-limit middleware; the query route does not.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/webhook", mw.RateLimit(), h.Webhook)
	rg.GET("/events", h.List)
}
