package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create inserts a tenant. Any unique index hit (email, short name, company id,
// api key, client id) is reported as domain.ErrConflict.
func (r *TenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create tenant: %w", domain.ErrConflict)
		}
		return fmt.Errorf("create tenant: %w", err)
	}
	return nil
}

func (r *TenantRepository) FindByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *TenantRepository) FindByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *TenantRepository) FindByAPIKeyAndShortName(ctx context.Context, apiKey, shortName string) (*domain.Tenant, error) {
	return r.first(ctx, "api_key = ? AND company_short = ?", apiKey, shortName)
}

func (r *TenantRepository) FindByCompanyAndClientCredentials(ctx context.Context, companyID, clientID, clientSecret string) (*domain.Tenant, error) {
	return r.first(ctx, "company_id = ? AND client_id = ? AND client_secret = ?", companyID, clientID, clientSecret)
}

func (r *TenantRepository) ShortNameExists(ctx context.Context, shortName string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Tenant{}).Where("company_short = ?", shortName).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count short name: %w", err)
	}
	return n > 0, nil
}

func (r *TenantRepository) RecordActivity(ctx context.Context, tenantID string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&domain.Tenant{}).
		Where("id = ?", tenantID).
		Updates(map[string]any{
			"total_api_calls": gorm.Expr("total_api_calls + 1"),
			"last_api_hit":    at.UTC(),
		})
	if res.Error != nil {
		return fmt.Errorf("record activity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

// List returns every tenant, newest first.
func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var out []domain.Tenant
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return out, nil
}

func (r *TenantRepository) Stats(ctx context.Context, since time.Time) (ports.TenantStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var stats ports.TenantStats
	db := r.db.WithContext(ctx)
	if err := db.Model(&domain.Tenant{}).Count(&stats.TotalSignups).Error; err != nil {
		return stats, fmt.Errorf("count tenants: %w", err)
	}
	if err := db.Model(&domain.Tenant{}).Where("created_at >= ?", since.UTC()).Count(&stats.SignupsThisWeek).Error; err != nil {
		return stats, fmt.Errorf("count recent tenants: %w", err)
	}
	if err := db.Model(&domain.Tenant{}).Select("COALESCE(SUM(total_api_calls), 0)").Scan(&stats.TotalAPICalls).Error; err != nil {
		return stats, fmt.Errorf("sum api calls: %w", err)
	}
	return stats, nil
}

func (r *TenantRepository) first(ctx context.Context, query string, args ...any) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Tenant
	err := r.db.WithContext(ctx).Where(query, args...).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("find tenant: %w", err)
	}
	return &t, nil
}
