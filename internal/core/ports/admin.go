package ports

import (
	"context"

	"github.com/hcmnotify/sandbox/internal/core/domain"
)

// AdminSessionRepository stores operator sessions. Find returns
// domain.ErrNotFound for an unknown token.
type AdminSessionRepository interface {
	Create(ctx context.Context, s *domain.AdminSession) error
	Find(ctx context.Context, token string) (*domain.AdminSession, error)
}

// AdminService backs the operator-facing admin API.
type AdminService interface {
	Login(ctx context.Context, password string) (*domain.AdminSession, error)
	VerifySession(ctx context.Context, token string) error
	Stats(ctx context.Context) (TenantStats, error)
	Tenants(ctx context.Context) ([]domain.Tenant, error)
}
