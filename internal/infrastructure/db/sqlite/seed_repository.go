package sqlite

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

const (
	seedTimeout   = 30 * time.Second
	seedBatchSize = 200
)

type SeedRepository struct {
	db *gorm.DB
}

func NewSeedRepository(db *gorm.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

func (r *SeedRepository) CountEmployees(ctx context.Context, tenantID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("tenant_id = ?", tenantID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

// InsertSeed writes the marker row first and then every generated row inside
// one transaction. A marker that already exists aborts the transaction with
// domain.ErrAlreadySeeded.
func (r *SeedRepository) InsertSeed(ctx context.Context, tenantID string, batch *ports.SeedBatch) error {
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		marker := &domain.TenantSeed{TenantID: tenantID, SeededAt: time.Now().UTC()}
		if err := tx.Create(marker).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrAlreadySeeded
			}
			return fmt.Errorf("insert seed marker: %w", err)
		}

		steps := []struct {
			name string
			n    int
			rows any
		}{
			{"locations", len(batch.Locations), &batch.Locations},
			{"departments", len(batch.Departments), &batch.Departments},
			{"job titles", len(batch.JobTitles), &batch.JobTitles},
			{"employees", len(batch.Employees), &batch.Employees},
			{"time entries", len(batch.TimeEntries), &batch.TimeEntries},
			{"benefits", len(batch.Benefits), &batch.Benefits},
		}
		for _, s := range steps {
			if s.n == 0 {
				continue
			}
			if err := tx.CreateInBatches(s.rows, seedBatchSize).Error; err != nil {
				return fmt.Errorf("insert %s: %w", s.name, err)
			}
		}
		return nil
	})
}
