package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hcmnotify/sandbox/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error      string              `json:"error"`
	Reason     string              `json:"reason"`
	Errors     []domain.FieldError `json:"errors,omitempty"`
	RetryAfter int                 `json:"retry_after,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error", "reason", "errors"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if body.RetryAfter > 0 {
			c.Response().Header().Set("Retry-After", strconv.Itoa(body.RetryAfter))
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		reason := "http_error"
		switch he.Code {
		case http.StatusNotFound:
			reason = "not_found"
		case http.StatusMethodNotAllowed:
			reason = "method_not_allowed"
		case http.StatusBadRequest, http.StatusUnsupportedMediaType:
			reason = "invalid_request"
		}
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message), Reason: reason}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Error: ve.Message, Reason: "validation_error", Errors: ve.Fields}
	}

	var rl *domain.RateLimitError
	if errors.As(err, &rl) {
		return http.StatusTooManyRequests, errorResponse{
			Error:      "Too many requests",
			Reason:     "rate_limited",
			RetryAfter: int(rl.RetryAfter.Seconds()),
		}
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, errorResponse{Error: nf.Message, Reason: "not_found"}
	}

	if errors.Is(err, domain.ErrSignupFailed) {
		log.Error().Err(err).Str("path", c.Path()).Msg("signup failed")
		return http.StatusInternalServerError, errorResponse{Error: "Failed to create sandbox", Reason: "signup_failed"}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrTenantNotFound):
		return http.StatusUnauthorized, errorResponse{Error: "Invalid or expired credentials", Reason: "unauthenticated"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "Company ID mismatch", Reason: "forbidden"}
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, errorResponse{Error: "Employee not found", Reason: "not_found"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorResponse{Error: "Resource not found", Reason: "not_found"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "Internal server error", Reason: "internal_error"}
}
