package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hcmnotify/sandbox/internal/api/metrics"
	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

// RateLimit admits requests under policy. Authenticated calls are counted per
// tenant, anonymous ones per client IP, so it must run after Auth to see the
// principal. A limiter backend failure lets the request through.
func RateLimit(limiter ports.RateLimiter, policy ports.RateLimitPolicy, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ip:" + c.RealIP()
			if p, ok := PrincipalFrom(c); ok {
				key = "tenant:" + p.TenantID
			}

			d, err := limiter.Admit(c.Request().Context(), key, policy)
			if err != nil {
				log.Warn().Err(err).Str("policy", policy.Name).Msg("rate limiter unavailable, admitting request")
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.FormatInt(d.Limit, 10))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(d.Remaining, 10))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))

			if !d.Allowed {
				metrics.RateLimitedTotal.WithLabelValues(policy.Name).Inc()
				return &domain.RateLimitError{Policy: policy.Name, RetryAfter: d.RetryAfter}
			}
			return next(c)
		}
	}
}
