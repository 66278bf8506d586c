package middleware

import (
	"github-event-tracker/internal/webhook"
	"github-event-tracker/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *webhook.RateLimiter
}

func New(l log.Logger, rateLimiter *webhook.RateLimiter) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: rateLimiter,
	}
}
