package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

const (
	adminSessionTTL = 24 * time.Hour
	statsWindow     = 7 * 24 * time.Hour
)

type adminService struct {
	sessions     ports.AdminSessionRepository
	tenants      ports.TenantRepository
	passwordHash []byte
	now          func() time.Time
	log          zerolog.Logger
}

// NewAdminService hashes the operator password once so logins compare against
// the hash only. An empty password disables admin login.
func NewAdminService(sessions ports.AdminSessionRepository, tenants ports.TenantRepository, password string, log zerolog.Logger) (ports.AdminService, error) {
	s := &adminService{sessions: sessions, tenants: tenants, now: time.Now, log: log}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		s.passwordHash = hash
	}
	return s, nil
}

func (s *adminService) Login(ctx context.Context, password string) (*domain.AdminSession, error) {
	if len(s.passwordHash) == 0 || password == "" {
		return nil, domain.ErrUnauthenticated
	}
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		s.log.Warn().Msg("admin login rejected")
		return nil, domain.ErrUnauthenticated
	}

	now := s.now().UTC()
	sess := &domain.AdminSession{Token: uuid.NewString(), CreatedAt: now, ExpiresAt: now.Add(adminSessionTTL)}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("admin login: %w", err)
	}
	return sess, nil
}

func (s *adminService) VerifySession(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthenticated
	}
	sess, err := s.sessions.Find(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthenticated
		}
		return fmt.Errorf("admin session: %w", err)
	}
	if !s.now().Before(sess.ExpiresAt) {
		return domain.ErrUnauthenticated
	}
	return nil
}

func (s *adminService) Stats(ctx context.Context) (ports.TenantStats, error) {
	return s.tenants.Stats(ctx, s.now().Add(-statsWindow))
}

func (s *adminService) Tenants(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenants.List(ctx)
}
