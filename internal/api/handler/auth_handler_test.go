package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

type stubAuthService struct {
	v1Fn     func(ctx context.Context, in ports.V1LoginInput) (*ports.IssuedToken, error)
	v2Fn     func(ctx context.Context, in ports.V2GrantInput) (*ports.IssuedToken, error)
	revokeFn func(ctx context.Context, token string) error
}

func (s *stubAuthService) IssueV1Token(ctx context.Context, in ports.V1LoginInput) (*ports.IssuedToken, error) {
	return s.v1Fn(ctx, in)
}

func (s *stubAuthService) IssueV2Token(ctx context.Context, in ports.V2GrantInput) (*ports.IssuedToken, error) {
	return s.v2Fn(ctx, in)
}

func (s *stubAuthService) Verify(context.Context, string) (*domain.Principal, error) {
	return nil, domain.ErrUnauthenticated
}

func (s *stubAuthService) Revoke(ctx context.Context, token string) error {
	return s.revokeFn(ctx, token)
}

func issued(typ domain.TokenType) *ports.IssuedToken {
	return &ports.IssuedToken{Token: "tok-123", TenantID: "t1", Type: typ, ExpiresAt: time.Now().Add(domain.TokenTTL)}
}

func TestAuthHandler_V1Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		v1Fn: func(ctx context.Context, in ports.V1LoginInput) (*ports.IssuedToken, error) {
			if in.APIKey != "key-1" || in.Username != "sandbox" || in.Password != "sandbox123" || in.Company != "acme" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return issued(domain.TokenV1), nil
		},
	}
	h := NewAuthHandler(stub)

	body := `{"credentials":{"username":"sandbox","password":"sandbox123","company":"acme"}}`
	req := httptest.NewRequest(http.MethodPost, "/ta/rest/v1/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Api-Key", "key-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.V1Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok-123" || resp["token_type"] != "Bearer" || resp["expires_in"] != float64(86400) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_V1Login_Rejected(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		v1Fn: func(context.Context, ports.V1LoginInput) (*ports.IssuedToken, error) {
			return nil, domain.ErrUnauthenticated
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/ta/rest/v1/login", strings.NewReader(`{"credentials":{}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.V1Login(e.NewContext(req, rec))
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthHandler_V1Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		v1Fn: func(context.Context, ports.V1LoginInput) (*ports.IssuedToken, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/ta/rest/v1/login", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.V1Login(e.NewContext(req, rec)); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthHandler_V2Token_Form(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		v2Fn: func(ctx context.Context, in ports.V2GrantInput) (*ports.IssuedToken, error) {
			if in.CompanyID != "123456" || in.GrantType != "client_credentials" || in.ClientID != "cid" || in.ClientSecret != "sec" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return issued(domain.TokenV2), nil
		},
	}
	h := NewAuthHandler(stub)

	form := url.Values{"grant_type": {"client_credentials"}, "client_id": {"cid"}, "client_secret": {"sec"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/ta/rest/v2/companies/:companyId/oauth2/token")
	c.SetParamNames("companyId")
	c.SetParamValues("123456")

	if err := h.V2Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "tok-123" || resp["token_type"] != "Bearer" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_V2Token_JSON(t *testing.T) {
	e := echo.New()
	var got ports.V2GrantInput
	stub := &stubAuthService{
		v2Fn: func(ctx context.Context, in ports.V2GrantInput) (*ports.IssuedToken, error) {
			got = in
			return issued(domain.TokenV2), nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"grant_type":"client_credentials","client_id":"cid","client_secret":"sec"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("companyId")
	c.SetParamValues("123456")

	if err := h.V2Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.ClientID != "cid" || got.CompanyID != "123456" {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestAuthHandler_V1Logout(t *testing.T) {
	e := echo.New()
	var revoked string
	stub := &stubAuthService{
		revokeFn: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/ta/rest/v1/logout", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok-123")
	rec := httptest.NewRecorder()

	if err := h.V1Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if revoked != "tok-123" {
		t.Fatalf("expected tok-123 revoked, got %q", revoked)
	}
}
