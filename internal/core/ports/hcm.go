package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hcmnotify/sandbox/internal/core/domain"
)

// EmployeeFilter narrows and pages the employee collection of one tenant.
type EmployeeFilter struct {
	TenantID string
	Status   string
	Location string
	Offset   int
	Limit    int
}

// HCMRepository is the read side over seeded tenant data. Every method is
// scoped to a single tenant.
type HCMRepository interface {
	ListEmployees(ctx context.Context, f EmployeeFilter) ([]domain.Employee, int64, error)
	FindEmployee(ctx context.Context, tenantID, employeeID string) (*domain.Employee, error)
	ListBenefits(ctx context.Context, tenantID, employeeID string) ([]domain.Benefit, error)
	ListTimeEntries(ctx context.Context, tenantID, employeeID string, limit int) ([]domain.TimeEntry, error)
	ListLocations(ctx context.Context, tenantID string) ([]domain.Location, error)
	ListDepartments(ctx context.Context, tenantID string) ([]domain.Department, error)
	ListJobTitles(ctx context.Context, tenantID string) ([]domain.JobTitle, error)

	RosterReport(ctx context.Context, tenantID string) ([]RosterRow, error)
	TimeReport(ctx context.Context, tenantID string, limit int) ([]TimeReportRow, error)
	BenefitsReport(ctx context.Context, tenantID string) ([]BenefitReportRow, error)
}

// CompanyScope pairs the authenticated tenant with the company id named in the
// request path.
type CompanyScope struct {
	TenantID  string
	CompanyID string
}

// ListEmployeesInput is the raw paging and filter input of the collection route.
type ListEmployeesInput struct {
	Scope    CompanyScope
	Page     int
	PerPage  int
	Status   string
	Location string
}

// EmployeePage is one page of the employee collection.
type EmployeePage struct {
	Employees  []domain.Employee
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
}

// PayDetail is the compensation view of one employee.
type PayDetail struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeNumber string          `json:"employee_number"`
	PayRate        decimal.Decimal `json:"pay_rate"`
	PayFrequency   string          `json:"pay_frequency"`
	AnnualSalary   decimal.Decimal `json:"annual_salary"`
	Currency       string          `json:"currency"`
}

// Document is an entry of the mocked employee document list.
type Document struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	UploadedAt string `json:"uploaded_at"`
}

// CompanyConfig holds the reference lists of a tenant's company.
type CompanyConfig struct {
	CompanyID      string              `json:"company_id"`
	CompanyName    string              `json:"company_name"`
	Locations      []domain.Location   `json:"locations"`
	Departments    []domain.Department `json:"departments"`
	JobTitles      []domain.JobTitle   `json:"job_titles"`
	PayFrequencies []string            `json:"pay_frequencies"`
}

// ResourceService answers the emulated vendor read routes.
type ResourceService interface {
	Report(ctx context.Context, tenantID, reportID string) (*Report, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*EmployeePage, error)
	GetEmployee(ctx context.Context, scope CompanyScope, employeeID string) (*domain.Employee, error)
	GetPay(ctx context.Context, scope CompanyScope, employeeID string) (*PayDetail, error)
	ListBenefits(ctx context.Context, scope CompanyScope, employeeID string) ([]domain.Benefit, error)
	ListTimeEntries(ctx context.Context, scope CompanyScope, employeeID string) ([]domain.TimeEntry, error)
	ListDocuments(ctx context.Context, scope CompanyScope, employeeID string) ([]Document, error)
	CompanyConfig(ctx context.Context, scope CompanyScope) (*CompanyConfig, error)
}
