package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hcmnotify/sandbox/internal/api/middleware"
	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

// ctxPrincipal extracts the principal injected by the Auth middleware. Its
// absence means the route was mounted without Auth; treat that as
// unauthenticated rather than serving tenant data.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok || p.TenantID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return p, nil
}

// ctxScope pairs the principal with the :companyId path parameter.
func ctxScope(c echo.Context) (ports.CompanyScope, error) {
	p, err := ctxPrincipal(c)
	if err != nil {
		return ports.CompanyScope{}, err
	}
	return ports.CompanyScope{TenantID: p.TenantID, CompanyID: c.Param("companyId")}, nil
}

// bindAndValidate binds the request into req and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	return c.Validate(req)
}
