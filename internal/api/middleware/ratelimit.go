package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/secbank/auth-gateway/internal/api/metrics"
	"github.com/secbank/auth-gateway/internal/core/ports"
)

const (
	defaultRateLimitWindow = 10 * time.Minute
	defaultRateLimitMax    = 100
)

// RateLimitConfig controls the fixed-window limiter.
type RateLimitConfig struct {
	Counter ports.RateLimitCounter
	// Window is the fixed window length; defaults to 10 minutes.
	Window time.Duration
	// Max is the request ceiling per client identity per window;
	// defaults to 100.
	Max int64
	Log zerolog.Logger
}

// RateLimit enforces a fixed-window request ceiling per client IP,
// emitting standard RateLimit-* headers and a Retry-After hint on
// rejection. A counter failure fails open: availability wins over
// gating, but the failure is logged and counted.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Window <= 0 {
		cfg.Window = defaultRateLimitWindow
	}
	if cfg.Max <= 0 {
		cfg.Max = defaultRateLimitMax
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientID := c.RealIP()

			count, resetIn, err := cfg.Counter.Incr(c.Request().Context(), clientID, cfg.Window)
			if err != nil {
				cfg.Log.Warn().Err(err).Str("client", clientID).Msg("rate limit counter unavailable, failing open")
				metrics.RateLimitErrors.Inc()
				return next(c)
			}

			remaining := cfg.Max - count
			if remaining < 0 {
				remaining = 0
			}
			resetSecs := int64(resetIn.Round(time.Second) / time.Second)
			if resetSecs < 1 {
				resetSecs = 1
			}

			h := c.Response().Header()
			h.Set("RateLimit-Limit", strconv.FormatInt(cfg.Max, 10))
			h.Set("RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			h.Set("RateLimit-Reset", strconv.FormatInt(resetSecs, 10))

			if count > cfg.Max {
				metrics.RateLimitedTotal.Inc()
				h.Set("Retry-After", strconv.FormatInt(resetSecs, 10))
				return echo.NewHTTPError(http.StatusTooManyRequests,
					"Too many requests from this IP, please try again later")
			}

			return next(c)
		}
	}
}
