package ports

import (
	"github.com/shopspring/decimal"
)

// Report is a saved report rendered either as JSON rows or as CSV records.
// Records follow Columns order.
type Report struct {
	ID      int
	Name    string
	Columns []string
	Data    any
	Records [][]string
}

var (
	RosterColumns = []string{
		"employee_number", "first_name", "last_name", "job_title", "pay_rate",
		"location", "status", "email", "hire_date",
	}
	TimeReportColumns = []string{
		"employee_number", "employee_name", "date", "punch_in", "punch_out", "hours", "department",
	}
	BenefitReportColumns = []string{
		"employee_number", "employee_name", "plan_name", "coverage_level",
		"employee_deduction", "employer_contribution", "effective_date", "status",
	}
)

type RosterRow struct {
	EmployeeNumber string          `json:"employee_number"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	JobTitle       string          `json:"job_title"`
	PayRate        decimal.Decimal `json:"pay_rate"`
	Location       string          `json:"location"`
	Status         string          `json:"status"`
	Email          string          `json:"email"`
	HireDate       string          `json:"hire_date"`
}

func (r RosterRow) Record() []string {
	return []string{
		r.EmployeeNumber, r.FirstName, r.LastName, r.JobTitle, r.PayRate.StringFixed(2),
		r.Location, r.Status, r.Email, r.HireDate,
	}
}

type TimeReportRow struct {
	EmployeeNumber string  `json:"employee_number"`
	EmployeeName   string  `json:"employee_name"`
	Date           string  `json:"date"`
	PunchIn        string  `json:"punch_in"`
	PunchOut       *string `json:"punch_out"`
	Hours          float64 `json:"hours"`
	Department     string  `json:"department"`
}

func (r TimeReportRow) Record() []string {
	out := ""
	if r.PunchOut != nil {
		out = *r.PunchOut
	}
	return []string{
		r.EmployeeNumber, r.EmployeeName, r.Date, r.PunchIn, out,
		decimal.NewFromFloat(r.Hours).StringFixed(2), r.Department,
	}
}

type BenefitReportRow struct {
	EmployeeNumber       string          `json:"employee_number"`
	EmployeeName         string          `json:"employee_name"`
	PlanName             string          `json:"plan_name"`
	CoverageLevel        string          `json:"coverage_level"`
	EmployeeDeduction    decimal.Decimal `json:"employee_deduction"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
	EffectiveDate        string          `json:"effective_date"`
	Status               string          `json:"status"`
}

func (r BenefitReportRow) Record() []string {
	return []string{
		r.EmployeeNumber, r.EmployeeName, r.PlanName, r.CoverageLevel,
		r.EmployeeDeduction.StringFixed(2), r.EmployerContribution.StringFixed(2),
		r.EffectiveDate, r.Status,
	}
}
