package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hcmnotify/sandbox/internal/api/metrics"
	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
	"github.com/hcmnotify/sandbox/pkg/logger"
)

type SignupHandler struct {
	tenants ports.TenantService
	baseURL string
}

// NewSignupHandler builds the signup handler; baseURL is the public origin the
// sandbox is reachable at and is echoed back as the tenant's API base.
func NewSignupHandler(tenants ports.TenantService, baseURL string) *SignupHandler {
	return &SignupHandler{tenants: tenants, baseURL: strings.TrimRight(baseURL, "/")}
}

type signupRequest struct {
	Name        string `json:"name"         validate:"required"`
	Email       string `json:"email"        validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
}

type signupResponse struct {
	ID           string `json:"id"`
	CompanyShort string `json:"company_short"`
	CompanyID    string `json:"company_id"`
	APIKey       string `json:"api_key"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	BaseURL      string `json:"base_url"`
	Message      string `json:"message"`
}

// Signup creates a sandbox tenant and seeds its mock data.
//
// @Summary      Create a sandbox tenant
// @Tags         signup
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup form"
// @Success      201   {object}  signupResponse
// @Success      200   {object}  signupResponse  "Email already registered"
// @Failure      400   {object}  map[string]any
// @Failure      429   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /api/signup [post]
func (h *SignupHandler) Signup(c echo.Context) error {
	start := time.Now()
	defer func() { metrics.SignupDuration.Observe(time.Since(start).Seconds()) }()

	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	res, err := h.tenants.Signup(c.Request().Context(), ports.SignupInput{
		Name:        req.Name,
		Email:       req.Email,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		if domain.IsValidation(err) {
			metrics.SignupsTotal.WithLabelValues("invalid").Inc()
			return err
		}
		metrics.SignupsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("%w: %w", domain.ErrSignupFailed, err)
	}

	status, msg, result := http.StatusCreated, "Sandbox created successfully", "created"
	if res.Existing {
		status, msg, result = http.StatusOK, "Welcome back!", "existing"
	}
	metrics.SignupsTotal.WithLabelValues(result).Inc()

	t := res.Tenant
	log := logger.FromContext(c.Request().Context())
	log.Info().
		Str("tenant_id", t.ID).
		Str("company_short", t.CompanyShort).
		Bool("existing", res.Existing).
		Msg("signup")

	return c.JSON(status, signupResponse{
		ID:           t.ID,
		CompanyShort: t.CompanyShort,
		CompanyID:    t.CompanyID,
		APIKey:       t.APIKey,
		ClientID:     t.ClientID,
		ClientSecret: t.ClientSecret,
		BaseURL:      h.baseURL + "/ta/rest",
		Message:      msg,
	})
}
