package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

const grantClientCredentials = "client_credentials"

// TokenClaims is the JWT payload of every bearer token.
type TokenClaims struct {
	TenantID string           `json:"tenantId"`
	Type     domain.TokenType `json:"type"`
	jwt.RegisteredClaims
}

// AuthConfig holds the signing key and the shared v1 login pair.
type AuthConfig struct {
	JWTSecret       string
	SandboxUsername string
	SandboxPassword string
}

// AuthService implements both token grants and bearer verification.
type AuthService struct {
	tenants  ports.TenantRepository
	sessions ports.SessionRepository
	cfg      AuthConfig
	now      func() time.Time
	log      zerolog.Logger
}

func NewAuthService(tenants ports.TenantRepository, sessions ports.SessionRepository, cfg AuthConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		tenants:  tenants,
		sessions: sessions,
		cfg:      cfg,
		now:      time.Now,
		log:      log,
	}
}

// IssueV1Token implements the password grant: a shared username/password pair
// plus the tenant's api key and company short name.
func (s *AuthService) IssueV1Token(ctx context.Context, in ports.V1LoginInput) (*ports.IssuedToken, error) {
	if in.APIKey == "" {
		return nil, domain.ErrUnauthenticated
	}

	var missing []domain.FieldError
	for _, f := range []struct{ name, value string }{
		{"username", in.Username},
		{"password", in.Password},
		{"company", in.Company},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, domain.FieldError{Field: f.name, Message: f.name + " is required"})
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError("credentials are incomplete", missing...)
	}

	if !equal(in.Username, s.cfg.SandboxUsername) || !equal(in.Password, s.cfg.SandboxPassword) {
		return nil, domain.ErrUnauthenticated
	}

	tenant, err := s.tenants.FindByAPIKeyAndShortName(ctx, in.APIKey, in.Company)
	if err != nil {
		return nil, s.lookupFailure(err)
	}
	return s.issue(ctx, tenant.ID, domain.TokenV1)
}

// IssueV2Token implements the client-credentials grant scoped to a company id.
func (s *AuthService) IssueV2Token(ctx context.Context, in ports.V2GrantInput) (*ports.IssuedToken, error) {
	if in.GrantType != grantClientCredentials {
		return nil, domain.NewValidationError("unsupported_grant_type",
			domain.FieldError{Field: "grant_type", Message: "grant_type must be client_credentials"})
	}

	var missing []domain.FieldError
	if in.ClientID == "" {
		missing = append(missing, domain.FieldError{Field: "client_id", Message: "client_id is required"})
	}
	if in.ClientSecret == "" {
		missing = append(missing, domain.FieldError{Field: "client_secret", Message: "client_secret is required"})
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError("invalid_request", missing...)
	}

	tenant, err := s.tenants.FindByCompanyAndClientCredentials(ctx, in.CompanyID, in.ClientID, in.ClientSecret)
	if err != nil {
		return nil, s.lookupFailure(err)
	}
	return s.issue(ctx, tenant.ID, domain.TokenV2)
}

// Verify accepts a token only when both its signature and its session hold.
// Every failure collapses into domain.ErrUnauthenticated.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := s.SignatureValid(token)
	if err != nil {
		return nil, err
	}
	if _, err := s.SessionPresent(ctx, token, claims.TenantID); err != nil {
		return nil, err
	}

	if err := s.tenants.RecordActivity(ctx, claims.TenantID, s.now()); err != nil {
		s.log.Warn().Err(err).Str("tenant_id", claims.TenantID).Msg("record activity failed")
	}
	return &domain.Principal{TenantID: claims.TenantID, Type: claims.Type}, nil
}

// SignatureValid checks the HS256 signature and the exp claim.
func (s *AuthService) SignatureValid(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return []byte(s.cfg.JWTSecret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !tkn.Valid || claims.TenantID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return claims, nil
}

// SessionPresent checks that an unexpired session row exists for token and
// belongs to tenantID.
func (s *AuthService) SessionPresent(ctx context.Context, token, tenantID string) (*domain.Session, error) {
	sess, err := s.sessions.Find(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("session lookup: %w", err)
	}
	if sess.TenantID != tenantID || sess.Expired(s.now()) {
		return nil, domain.ErrUnauthenticated
	}
	return sess, nil
}

// Revoke deletes the session so the token stops verifying immediately.
func (s *AuthService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthenticated
	}
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) issue(ctx context.Context, tenantID string, typ domain.TokenType) (*ports.IssuedToken, error) {
	now := s.now().UTC()
	exp := now.Add(domain.TokenTTL)

	claims := TokenClaims{
		TenantID: tenantID,
		Type:     typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	sess := &domain.Session{Token: signed, TenantID: tenantID, Type: typ, ExpiresAt: exp, CreatedAt: now}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	if err := s.tenants.RecordActivity(ctx, tenantID, now); err != nil {
		s.log.Warn().Err(err).Str("tenant_id", tenantID).Msg("record activity failed")
	}

	s.log.Debug().Str("tenant_id", tenantID).Str("type", string(typ)).Msg("token issued")
	return &ports.IssuedToken{Token: signed, TenantID: tenantID, Type: typ, ExpiresAt: exp}, nil
}

func (s *AuthService) lookupFailure(err error) error {
	if errors.Is(err, domain.ErrTenantNotFound) {
		return domain.ErrUnauthenticated
	}
	return fmt.Errorf("tenant lookup: %w", err)
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
