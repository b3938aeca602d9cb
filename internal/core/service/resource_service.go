package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

const (
	DefaultPerPage   = 25
	MaxPerPage       = 100
	timeEntriesLimit = 100
	timeReportLimit  = 1000

	// MaxPage keeps (page-1)*per_page inside int32 so the row offset never
	// wraps; any page that far out is past the end of every roster.
	MaxPage = math.MaxInt32 / MaxPerPage

	ReportRoster   = "1001"
	ReportTime     = "1002"
	ReportBenefits = "1003"
)

var mockDocuments = []ports.Document{
	{ID: "1", Name: "W-4 Form", Type: "tax", UploadedAt: "2024-01-15"},
	{ID: "2", Name: "Direct Deposit Authorization", Type: "payroll", UploadedAt: "2024-01-15"},
	{ID: "3", Name: "I-9 Verification", Type: "compliance", UploadedAt: "2024-01-15"},
}

type resourceService struct {
	tenants ports.TenantRepository
	hcm     ports.HCMRepository
	log     zerolog.Logger
}

// NewResourceService returns the read side of the emulated vendor API.
func NewResourceService(tenants ports.TenantRepository, hcm ports.HCMRepository, log zerolog.Logger) ports.ResourceService {
	return &resourceService{tenants: tenants, hcm: hcm, log: log}
}

func (s *resourceService) Report(ctx context.Context, tenantID, reportID string) (*ports.Report, error) {
	switch reportID {
	case ReportRoster:
		rows, err := s.hcm.RosterReport(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("report %s: %w", reportID, err)
		}
		rep := &ports.Report{ID: 1001, Name: "Employee Roster", Columns: ports.RosterColumns, Data: rows}
		for _, r := range rows {
			rep.Records = append(rep.Records, r.Record())
		}
		return rep, nil
	case ReportTime:
		rows, err := s.hcm.TimeReport(ctx, tenantID, timeReportLimit)
		if err != nil {
			return nil, fmt.Errorf("report %s: %w", reportID, err)
		}
		rep := &ports.Report{ID: 1002, Name: "Time Entries", Columns: ports.TimeReportColumns, Data: rows}
		for _, r := range rows {
			rep.Records = append(rep.Records, r.Record())
		}
		return rep, nil
	case ReportBenefits:
		rows, err := s.hcm.BenefitsReport(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("report %s: %w", reportID, err)
		}
		rep := &ports.Report{ID: 1003, Name: "Benefits Elections", Columns: ports.BenefitReportColumns, Data: rows}
		for _, r := range rows {
			rep.Records = append(rep.Records, r.Record())
		}
		return rep, nil
	}
	return nil, &domain.NotFoundError{
		Kind:    domain.ErrReportNotFound,
		Message: fmt.Sprintf("Report %s not found. Available reports: 1001, 1002, 1003", reportID),
	}
}

// ListEmployees clamps paging input: page below 1 becomes 1 and page above
// MaxPage becomes MaxPage. A non-positive per_page becomes the default and
// anything above the cap is cut to it.
func (s *resourceService) ListEmployees(ctx context.Context, in ports.ListEmployeesInput) (*ports.EmployeePage, error) {
	if _, err := s.authorize(ctx, in.Scope); err != nil {
		return nil, err
	}

	page, perPage := ClampPage(in.Page, in.PerPage)
	emps, total, err := s.hcm.ListEmployees(ctx, ports.EmployeeFilter{
		TenantID: in.Scope.TenantID,
		Status:   in.Status,
		Location: in.Location,
		Offset:   (page - 1) * perPage,
		Limit:    perPage,
	})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	return &ports.EmployeePage{
		Employees:  emps,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: int((total + int64(perPage) - 1) / int64(perPage)),
	}, nil
}

func (s *resourceService) GetEmployee(ctx context.Context, scope ports.CompanyScope, employeeID string) (*domain.Employee, error) {
	if _, err := s.authorize(ctx, scope); err != nil {
		return nil, err
	}
	return s.hcm.FindEmployee(ctx, scope.TenantID, employeeID)
}

func (s *resourceService) GetPay(ctx context.Context, scope ports.CompanyScope, employeeID string) (*ports.PayDetail, error) {
	emp, err := s.GetEmployee(ctx, scope, employeeID)
	if err != nil {
		return nil, err
	}
	return &ports.PayDetail{
		EmployeeID:     emp.ID,
		EmployeeNumber: emp.EmployeeNumber,
		PayRate:        emp.PayRate,
		PayFrequency:   emp.PayFrequency,
		AnnualSalary:   emp.AnnualSalary().Round(2),
		Currency:       "USD",
	}, nil
}

func (s *resourceService) ListBenefits(ctx context.Context, scope ports.CompanyScope, employeeID string) ([]domain.Benefit, error) {
	if _, err := s.GetEmployee(ctx, scope, employeeID); err != nil {
		return nil, err
	}
	return s.hcm.ListBenefits(ctx, scope.TenantID, employeeID)
}

func (s *resourceService) ListTimeEntries(ctx context.Context, scope ports.CompanyScope, employeeID string) ([]domain.TimeEntry, error) {
	if _, err := s.GetEmployee(ctx, scope, employeeID); err != nil {
		return nil, err
	}
	return s.hcm.ListTimeEntries(ctx, scope.TenantID, employeeID, timeEntriesLimit)
}

func (s *resourceService) ListDocuments(ctx context.Context, scope ports.CompanyScope, employeeID string) ([]ports.Document, error) {
	if _, err := s.GetEmployee(ctx, scope, employeeID); err != nil {
		return nil, err
	}
	out := make([]ports.Document, len(mockDocuments))
	copy(out, mockDocuments)
	return out, nil
}

func (s *resourceService) CompanyConfig(ctx context.Context, scope ports.CompanyScope) (*ports.CompanyConfig, error) {
	tenant, err := s.authorize(ctx, scope)
	if err != nil {
		return nil, err
	}

	locs, err := s.hcm.ListLocations(ctx, scope.TenantID)
	if err != nil {
		return nil, err
	}
	depts, err := s.hcm.ListDepartments(ctx, scope.TenantID)
	if err != nil {
		return nil, err
	}
	titles, err := s.hcm.ListJobTitles(ctx, scope.TenantID)
	if err != nil {
		return nil, err
	}

	return &ports.CompanyConfig{
		CompanyID:      tenant.CompanyID,
		CompanyName:    tenant.CompanyName,
		Locations:      locs,
		Departments:    depts,
		JobTitles:      titles,
		PayFrequencies: append([]string(nil), domain.PayFrequencies...),
	}, nil
}

// authorize rejects a path company id that is not the caller's own.
func (s *resourceService) authorize(ctx context.Context, scope ports.CompanyScope) (*domain.Tenant, error) {
	return AuthorizeCompany(ctx, s.tenants, scope)
}

// AuthorizeCompany loads the caller's tenant and checks the path company id.
func AuthorizeCompany(ctx context.Context, tenants ports.TenantRepository, scope ports.CompanyScope) (*domain.Tenant, error) {
	tenant, err := tenants.FindByID(ctx, scope.TenantID)
	if err != nil {
		return nil, fmt.Errorf("authorize company: %w", err)
	}
	if tenant.CompanyID != scope.CompanyID {
		return nil, domain.ErrForbidden
	}
	return tenant, nil
}

// ClampPage normalises 1-based paging input.
func ClampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}
