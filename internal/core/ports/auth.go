package ports

import (
	"context"
	"time"

	"github.com/hcmnotify/sandbox/internal/core/domain"
)

// SessionRepository stores the server-side half of every bearer token.
// Find returns domain.ErrNotFound for an unknown token.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	Find(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// V1LoginInput is the password grant of the v1 protocol.
type V1LoginInput struct {
	APIKey   string
	Username string
	Password string
	Company  string
}

// V2GrantInput is the client-credentials grant of the v2 protocol.
type V2GrantInput struct {
	CompanyID    string
	GrantType    string
	ClientID     string
	ClientSecret string
}

// IssuedToken is a freshly minted bearer token.
type IssuedToken struct {
	Token     string
	TenantID  string
	Type      domain.TokenType
	ExpiresAt time.Time
}

// AuthService exchanges credentials for bearer tokens and verifies them.
type AuthService interface {
	IssueV1Token(ctx context.Context, in V1LoginInput) (*IssuedToken, error)
	IssueV2Token(ctx context.Context, in V2GrantInput) (*IssuedToken, error)
	Verify(ctx context.Context, token string) (*domain.Principal, error)
	Revoke(ctx context.Context, token string) error
}
