package middleware

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/hcmnotify/sandbox/internal/api/metrics"
	"github.com/hcmnotify/sandbox/internal/core/domain"
)

// AdminVerifier checks an operator session token.
type AdminVerifier interface {
	VerifySession(ctx context.Context, token string) error
}

// AdminAuth guards the admin API with a bearer admin session.
func AdminAuth(verifier AdminVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := verifier.VerifySession(c.Request().Context(), BearerToken(c.Request()))
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					metrics.AuthFailuresTotal.WithLabelValues("admin").Inc()
				}
				return err
			}
			return next(c)
		}
	}
}
