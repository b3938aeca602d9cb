package domain

import "github.com/shopspring/decimal"

func init() {
	// Vendor payloads carry money as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// EmployeeStatus is the employment state of a seeded worker.
type EmployeeStatus string

const (
	StatusActive         EmployeeStatus = "Active"
	StatusTerminated     EmployeeStatus = "Terminated"
	StatusLeaveOfAbsence EmployeeStatus = "Leave of Absence"
)

const (
	PayWeekly      = "Weekly"
	PayBiWeekly    = "Bi-Weekly"
	PaySemiMonthly = "Semi-Monthly"
)

// PayFrequencies lists the frequencies a company config advertises.
var PayFrequencies = []string{PayWeekly, PayBiWeekly, PaySemiMonthly}

// Employee is one seeded worker record. ManagerID references another employee of
// the same tenant by id; the first seeded employee is the root of the tree.
type Employee struct {
	ID              string          `json:"id"               gorm:"primaryKey"`
	TenantID        string          `json:"tenant_id"        gorm:"not null;index;uniqueIndex:idx_employee_number"`
	EmployeeNumber  string          `json:"employee_number"  gorm:"not null;uniqueIndex:idx_employee_number"`
	FirstName       string          `json:"first_name"       gorm:"not null"`
	LastName        string          `json:"last_name"        gorm:"not null"`
	Email           string          `json:"email"            gorm:"not null"`
	SSNMasked       *string         `json:"ssn_masked"`
	Status          EmployeeStatus  `json:"status"           gorm:"not null;default:Active"`
	HireDate        string          `json:"hire_date"        gorm:"not null"`
	TerminationDate *string         `json:"termination_date"`
	JobTitle        string          `json:"job_title"        gorm:"not null"`
	Department      string          `json:"department"       gorm:"not null"`
	Location        string          `json:"location"         gorm:"not null"`
	PayRate         decimal.Decimal `json:"pay_rate"         gorm:"type:numeric;not null"`
	PayFrequency    string          `json:"pay_frequency"    gorm:"not null"`
	ManagerID       *string         `json:"manager_id"`

	Tenant *Tenant `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// AnnualSalary derives a yearly figure from the hourly pay rate using fixed
// weekly hours and pay-period counts.
func (e *Employee) AnnualSalary() decimal.Decimal {
	periods := int64(24)
	switch e.PayFrequency {
	case PayWeekly:
		periods = 52
	case PayBiWeekly:
		periods = 26
	}
	return e.PayRate.Mul(decimal.NewFromInt(40 * periods))
}

// TimeEntry is one punch pair for an employee on a date.
type TimeEntry struct {
	ID         string  `json:"id"          gorm:"primaryKey"`
	TenantID   string  `json:"tenant_id"   gorm:"not null;index"`
	EmployeeID string  `json:"employee_id" gorm:"not null;index"`
	Date       string  `json:"date"        gorm:"not null"`
	PunchIn    string  `json:"punch_in"    gorm:"not null"`
	PunchOut   *string `json:"punch_out"`
	Hours      float64 `json:"hours"`
	Department string  `json:"department"  gorm:"not null"`

	Tenant *Tenant `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Benefit is one plan enrollment for an employee.
type Benefit struct {
	ID                   string          `json:"id"                    gorm:"primaryKey"`
	TenantID             string          `json:"tenant_id"             gorm:"not null;index"`
	EmployeeID           string          `json:"employee_id"           gorm:"not null;index"`
	PlanName             string          `json:"plan_name"             gorm:"not null"`
	CoverageLevel        string          `json:"coverage_level"        gorm:"not null"`
	EmployeeDeduction    decimal.Decimal `json:"employee_deduction"    gorm:"type:numeric;not null"`
	EmployerContribution decimal.Decimal `json:"employer_contribution" gorm:"type:numeric;not null"`
	EffectiveDate        string          `json:"effective_date"        gorm:"not null"`
	Status               EmployeeStatus  `json:"status"                gorm:"not null;default:Active"`

	Tenant *Tenant `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type Location struct {
	ID       string `json:"id"        gorm:"primaryKey"`
	TenantID string `json:"tenant_id" gorm:"not null;index"`
	Name     string `json:"name"      gorm:"not null"`
	Address  string `json:"address"   gorm:"not null"`
	City     string `json:"city"      gorm:"not null"`
	State    string `json:"state"     gorm:"not null"`
	Zip      string `json:"zip"       gorm:"not null"`

	Tenant *Tenant `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type Department struct {
	ID       string `json:"id"        gorm:"primaryKey"`
	TenantID string `json:"tenant_id" gorm:"not null;index"`
	Name     string `json:"name"      gorm:"not null"`
	Code     string `json:"code"      gorm:"not null"`

	Tenant *Tenant `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type JobTitle struct {
	ID       string `json:"id"        gorm:"primaryKey"`
	TenantID string `json:"tenant_id" gorm:"not null;index"`
	Name     string `json:"name"      gorm:"not null"`
	Code     string `json:"code"      gorm:"not null"`

	Tenant *Tenant `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
