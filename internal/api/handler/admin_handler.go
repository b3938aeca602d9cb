package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hcmnotify/sandbox/internal/core/ports"
)

type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type adminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type adminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// adminTenant is the operator view of a tenant; credentials are left out.
type adminTenant struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	CompanyName   string     `json:"company_name"`
	CompanyShort  string     `json:"company_short"`
	CreatedAt     time.Time  `json:"created_at"`
	LastAPIHit    *time.Time `json:"last_api_hit"`
	TotalAPICalls int64      `json:"total_api_calls"`
}

type adminTenantsResponse struct {
	Tenants []adminTenant `json:"tenants"`
}

var exportColumns = []string{"name", "email", "company_name", "company_short", "created_at", "last_api_hit", "total_api_calls"}

// Login exchanges the operator password for a 24h admin session.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Operator password"
// @Success      200   {object}  adminLoginResponse
// @Failure      401   {object}  map[string]any
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	sess, err := h.admin.Login(c.Request().Context(), req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminLoginResponse{Token: sess.Token, ExpiresAt: sess.ExpiresAt})
}

// @Summary      Signup statistics
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  ports.TenantStats
// @Failure      401  {object}  map[string]any
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.admin.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// @Summary      List tenants
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  adminTenantsResponse
// @Failure      401  {object}  map[string]any
// @Router       /api/admin/tenants [get]
func (h *AdminHandler) Tenants(c echo.Context) error {
	tenants, err := h.admin.Tenants(c.Request().Context())
	if err != nil {
		return err
	}
	out := adminTenantsResponse{Tenants: make([]adminTenant, 0, len(tenants))}
	for _, t := range tenants {
		out.Tenants = append(out.Tenants, adminTenant{
			ID:            t.ID,
			Name:          t.Name,
			Email:         t.Email,
			CompanyName:   t.CompanyName,
			CompanyShort:  t.CompanyShort,
			CreatedAt:     t.CreatedAt,
			LastAPIHit:    t.LastAPIHit,
			TotalAPICalls: t.TotalAPICalls,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Export downloads every tenant as a CSV attachment.
//
// @Summary      Export signups
// @Tags         admin
// @Security     BearerAuth
// @Produce      text/csv
// @Success      200  {string}  string
// @Failure      401  {object}  map[string]any
// @Router       /api/admin/export [get]
func (h *AdminHandler) Export(c echo.Context) error {
	tenants, err := h.admin.Tenants(c.Request().Context())
	if err != nil {
		return err
	}

	records := make([][]string, 0, len(tenants))
	for _, t := range tenants {
		lastHit := ""
		if t.LastAPIHit != nil {
			lastHit = t.LastAPIHit.UTC().Format(time.RFC3339)
		}
		records = append(records, []string{
			t.Name,
			t.Email,
			t.CompanyName,
			t.CompanyShort,
			t.CreatedAt.UTC().Format(time.RFC3339),
			lastHit,
			strconv.FormatInt(t.TotalAPICalls, 10),
		})
	}

	body, err := encodeCSV(exportColumns, records)
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=sandbox-signups.csv")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", body)
}

