package middleware

import (
	"schedule-partner/config"
	pkgLog "schedule-partner/pkg/log"
)

type Middleware struct {
	l   pkgLog.Logger
	cfg config.RateLimitConfig
}

func New(l pkgLog.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
