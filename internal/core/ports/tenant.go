package ports

import (
	"context"
	"time"

	"github.com/hcmnotify/sandbox/internal/core/domain"
)

// TenantRepository owns tenant records. Lookups return domain.ErrTenantNotFound
// when nothing matches; Create returns domain.ErrConflict on any uniqueness
// violation.
type TenantRepository interface {
	Create(ctx context.Context, t *domain.Tenant) error
	FindByID(ctx context.Context, id string) (*domain.Tenant, error)
	FindByEmail(ctx context.Context, email string) (*domain.Tenant, error)
	FindByAPIKeyAndShortName(ctx context.Context, apiKey, shortName string) (*domain.Tenant, error)
	FindByCompanyAndClientCredentials(ctx context.Context, companyID, clientID, clientSecret string) (*domain.Tenant, error)
	ShortNameExists(ctx context.Context, shortName string) (bool, error)
	// RecordActivity increments the call counter and stamps the last-activity
	// time in a single statement so concurrent calls never lose increments.
	RecordActivity(ctx context.Context, tenantID string, at time.Time) error
	List(ctx context.Context) ([]domain.Tenant, error)
	Stats(ctx context.Context, since time.Time) (TenantStats, error)
}

// TenantStats aggregates usage across every tenant.
type TenantStats struct {
	TotalSignups    int64 `json:"totalSignups"`
	SignupsThisWeek int64 `json:"signupsThisWeek"`
	TotalAPICalls   int64 `json:"totalApiCalls"`
}

// SignupInput carries the self-service signup form.
type SignupInput struct {
	Name        string
	Email       string
	CompanyName string
}

// SignupResult is the tenant whose credentials are returned to the caller.
// Existing is true when the email was already registered.
type SignupResult struct {
	Tenant   *domain.Tenant
	Existing bool
}

// TenantService issues sandbox tenants.
type TenantService interface {
	Signup(ctx context.Context, in SignupInput) (*SignupResult, error)
}
