package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hcmnotify/sandbox/internal/api/metrics"
	"github.com/hcmnotify/sandbox/internal/api/middleware"
	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type v1Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

type v1LoginRequest struct {
	Credentials v1Credentials `json:"credentials"`
}

type v1LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

type v2TokenRequest struct {
	GrantType    string `json:"grant_type"    form:"grant_type"`
	ClientID     string `json:"client_id"     form:"client_id"`
	ClientSecret string `json:"client_secret" form:"client_secret"`
}

type v2TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

var tokenLifetimeSeconds = int(domain.TokenTTL.Seconds())

// V1Login exchanges the shared sandbox login plus an api key for a token.
//
// @Summary      v1 login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        Api-Key  header    string          true  "Tenant api key"
// @Param        body     body      v1LoginRequest  true  "Credentials"
// @Success      200      {object}  v1LoginResponse
// @Failure      400      {object}  map[string]any
// @Failure      401      {object}  map[string]any
// @Router       /ta/rest/v1/login [post]
func (h *AuthHandler) V1Login(c echo.Context) error {
	var req v1LoginRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}

	tok, err := h.authService.IssueV1Token(c.Request().Context(), ports.V1LoginInput{
		APIKey:   c.Request().Header.Get("Api-Key"),
		Username: req.Credentials.Username,
		Password: req.Credentials.Password,
		Company:  req.Credentials.Company,
	})
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("v1_login").Inc()
		return err
	}
	metrics.TokensIssuedTotal.WithLabelValues(string(tok.Type)).Inc()

	return c.JSON(http.StatusOK, v1LoginResponse{Token: tok.Token, TokenType: "Bearer", ExpiresIn: tokenLifetimeSeconds})
}

// V1Logout revokes the bearer token of the request.
//
// @Summary      v1 logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]any
// @Router       /ta/rest/v1/logout [post]
func (h *AuthHandler) V1Logout(c echo.Context) error {
	if err := h.authService.Revoke(c.Request().Context(), middleware.BearerToken(c.Request())); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// V2Token implements the OAuth2 client-credentials grant. The body may be
// form-encoded or JSON.
//
// @Summary      v2 client credentials token
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        companyId  path      string          true  "Company id"
// @Param        body       body      v2TokenRequest  true  "Grant"
// @Success      200        {object}  v2TokenResponse
// @Failure      400        {object}  map[string]any
// @Failure      401        {object}  map[string]any
// @Router       /ta/rest/v2/companies/{companyId}/oauth2/token [post]
func (h *AuthHandler) V2Token(c echo.Context) error {
	var req v2TokenRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}

	tok, err := h.authService.IssueV2Token(c.Request().Context(), ports.V2GrantInput{
		CompanyID:    c.Param("companyId"),
		GrantType:    req.GrantType,
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
	})
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("v2_token").Inc()
		return err
	}
	metrics.TokensIssuedTotal.WithLabelValues(string(tok.Type)).Inc()

	return c.JSON(http.StatusOK, v2TokenResponse{AccessToken: tok.Token, TokenType: "Bearer", ExpiresIn: tokenLifetimeSeconds})
}
