package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hcmnotify/sandbox/internal/core/credentials"
	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const fallbackSlug = "sandbox"

type tenantService struct {
	repo   ports.TenantRepository
	seeder ports.Seeder
	now    func() time.Time
	log    zerolog.Logger
}

// NewTenantService returns a TenantService that seeds every tenant it creates.
func NewTenantService(repo ports.TenantRepository, seeder ports.Seeder, log zerolog.Logger) ports.TenantService {
	return &tenantService{repo: repo, seeder: seeder, now: time.Now, log: log}
}

// Signup creates a tenant with fresh credentials and seeds it. A repeat signup
// with a known email returns the stored tenant and re-runs the (idempotent)
// seeder so a previously failed seed heals.
func (s *tenantService) Signup(ctx context.Context, in ports.SignupInput) (*ports.SignupResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.CompanyName = strings.TrimSpace(in.CompanyName)

	if err := validateSignup(in); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		if err := s.seeder.Seed(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("signup: reseed %s: %w", existing.ID, err)
		}
		return &ports.SignupResult{Tenant: existing, Existing: true}, nil
	case !errors.Is(err, domain.ErrTenantNotFound):
		return nil, fmt.Errorf("signup: %w", err)
	}

	short, err := s.shortName(ctx, in.CompanyName)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	tenant := &domain.Tenant{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		CompanyName:  in.CompanyName,
		CompanyShort: short,
		CompanyID:    credentials.CompanyID(),
		APIKey:       credentials.APIKey(),
		ClientID:     credentials.ClientID(),
		ClientSecret: credentials.ClientSecret(),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	if err := s.seeder.Seed(ctx, tenant.ID); err != nil {
		return nil, fmt.Errorf("signup: seed %s: %w", tenant.ID, err)
	}

	s.log.Info().
		Str("tenant_id", tenant.ID).
		Str("company_short", tenant.CompanyShort).
		Msg("sandbox tenant created")
	return &ports.SignupResult{Tenant: tenant}, nil
}

func (s *tenantService) shortName(ctx context.Context, companyName string) (string, error) {
	slug := credentials.Slugify(companyName)
	if slug == "" {
		slug = fallbackSlug
	}
	taken, err := s.repo.ShortNameExists(ctx, slug)
	if err != nil {
		return "", err
	}
	if taken {
		slug += "-" + credentials.ShortSuffix()
	}
	return slug, nil
}

func validateSignup(in ports.SignupInput) error {
	var fields []domain.FieldError
	if in.Name == "" {
		fields = append(fields, domain.FieldError{Field: "name", Message: "name is required"})
	}
	switch {
	case in.Email == "":
		fields = append(fields, domain.FieldError{Field: "email", Message: "email is required"})
	case !emailPattern.MatchString(in.Email):
		fields = append(fields, domain.FieldError{Field: "email", Message: "email is not a valid address"})
	}
	if in.CompanyName == "" {
		fields = append(fields, domain.FieldError{Field: "company_name", Message: "company_name is required"})
	}
	if len(fields) > 0 {
		return domain.NewValidationError("invalid signup", fields...)
	}
	return nil
}
