package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

// HCMRepository reads the seeded HCM data of a tenant.
type HCMRepository struct {
	db *gorm.DB
}

func NewHCMRepository(db *gorm.DB) *HCMRepository {
	return &HCMRepository{db: db}
}

// ListEmployees returns one page ordered by last then first name, plus the
// unpaged count of matching rows.
func (r *HCMRepository) ListEmployees(ctx context.Context, f ports.EmployeeFilter) ([]domain.Employee, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("tenant_id = ?", f.TenantID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	var out []domain.Employee
	err := q.Order("last_name, first_name, employee_number").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&out).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	return out, total, nil
}

func (r *HCMRepository) FindEmployee(ctx context.Context, tenantID, employeeID string) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Employee
	err := r.db.WithContext(ctx).Where("tenant_id = ? AND id = ?", tenantID, employeeID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return &e, nil
}

func (r *HCMRepository) ListBenefits(ctx context.Context, tenantID, employeeID string) ([]domain.Benefit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	out := []domain.Benefit{}
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ?", tenantID, employeeID).
		Order("plan_name").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list benefits: %w", err)
	}
	return out, nil
}

// ListTimeEntries returns the newest entries first.
func (r *HCMRepository) ListTimeEntries(ctx context.Context, tenantID, employeeID string, limit int) ([]domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	out := []domain.TimeEntry{}
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ?", tenantID, employeeID).
		Order("date DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	return out, nil
}

func (r *HCMRepository) ListLocations(ctx context.Context, tenantID string) ([]domain.Location, error) {
	out := []domain.Location{}
	return out, r.listByName(ctx, tenantID, &out)
}

func (r *HCMRepository) ListDepartments(ctx context.Context, tenantID string) ([]domain.Department, error) {
	out := []domain.Department{}
	return out, r.listByName(ctx, tenantID, &out)
}

func (r *HCMRepository) ListJobTitles(ctx context.Context, tenantID string) ([]domain.JobTitle, error) {
	out := []domain.JobTitle{}
	return out, r.listByName(ctx, tenantID, &out)
}

func (r *HCMRepository) listByName(ctx context.Context, tenantID string, dest any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("name").Find(dest).Error; err != nil {
		return fmt.Errorf("list reference data: %w", err)
	}
	return nil
}

func (r *HCMRepository) RosterReport(ctx context.Context, tenantID string) ([]ports.RosterRow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows := []ports.RosterRow{}
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employee_number, first_name, last_name, job_title, pay_rate, location, status, email, hire_date").
		Where("tenant_id = ?", tenantID).
		Order("employee_number").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("roster report: %w", err)
	}
	return rows, nil
}

func (r *HCMRepository) TimeReport(ctx context.Context, tenantID string, limit int) ([]ports.TimeReportRow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows := []ports.TimeReportRow{}
	err := r.db.WithContext(ctx).
		Table("time_entries AS t").
		Select("e.employee_number, e.first_name || ' ' || e.last_name AS employee_name, t.date, t.punch_in, t.punch_out, t.hours, t.department").
		Joins("JOIN employees AS e ON e.id = t.employee_id AND e.tenant_id = t.tenant_id").
		Where("t.tenant_id = ?", tenantID).
		Order("t.date DESC, e.employee_number").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("time report: %w", err)
	}
	return rows, nil
}

func (r *HCMRepository) BenefitsReport(ctx context.Context, tenantID string) ([]ports.BenefitReportRow, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows := []ports.BenefitReportRow{}
	err := r.db.WithContext(ctx).
		Table("benefits AS b").
		Select("e.employee_number, e.first_name || ' ' || e.last_name AS employee_name, b.plan_name, b.coverage_level, b.employee_deduction, b.employer_contribution, b.effective_date, b.status").
		Joins("JOIN employees AS e ON e.id = b.employee_id AND e.tenant_id = b.tenant_id").
		Where("b.tenant_id = ?", tenantID).
		Order("e.employee_number, b.plan_name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("benefits report: %w", err)
	}
	return rows, nil
}
