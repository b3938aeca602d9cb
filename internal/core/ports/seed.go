package ports

import (
	"context"

	"github.com/hcmnotify/sandbox/internal/core/domain"
)

// SeedBatch is every row generated for one tenant, in insertion order.
type SeedBatch struct {
	Locations   []domain.Location
	Departments []domain.Department
	JobTitles   []domain.JobTitle
	Employees   []domain.Employee
	TimeEntries []domain.TimeEntry
	Benefits    []domain.Benefit
}

// SeedRepository persists a SeedBatch as one unit of work.
type SeedRepository interface {
	CountEmployees(ctx context.Context, tenantID string) (int64, error)
	// InsertSeed writes the batch atomically. It returns domain.ErrAlreadySeeded,
	// with nothing written, when the tenant was seeded before or concurrently.
	InsertSeed(ctx context.Context, tenantID string, batch *SeedBatch) error
}

// Seeder populates a tenant with mock HCM data. Seed is idempotent.
type Seeder interface {
	Seed(ctx context.Context, tenantID string) error
}
