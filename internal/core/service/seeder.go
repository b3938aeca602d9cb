package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

const (
	SeedEmployeeCount = 100
	timeEntryDays     = 30
	dateLayout        = "2006-01-02"
	employeeEmailHost = "sandbox.example.com"
)

var seedLocations = []domain.Location{
	{Name: "Headquarters", City: "Denver", State: "CO", Zip: "80202"},
	{Name: "East Office", City: "New York", State: "NY", Zip: "10001"},
	{Name: "West Office", City: "San Francisco", State: "CA", Zip: "94105"},
}

var seedDepartments = []string{
	"Human Resources", "Engineering", "Sales", "Marketing",
	"Finance", "Operations", "Customer Support", "Legal",
}

var seedJobTitles = []string{
	"Software Engineer", "Senior Developer", "Product Manager", "Sales Representative",
	"HR Coordinator", "Financial Analyst", "Operations Manager", "Marketing Specialist",
	"Customer Support Agent", "Legal Counsel", "Data Analyst", "DevOps Engineer",
	"Account Executive", "Recruiter", "Office Manager",
}

type benefitPlan struct {
	Name            string
	Coverage        []string
	DeductionMin    float64
	DeductionMax    float64
	ContributionMin float64
	ContributionMax float64
}

var benefitCatalog = []benefitPlan{
	{"Medical - PPO Gold", []string{"Employee Only", "Employee + Spouse", "Employee + Family"}, 150, 450, 400, 800},
	{"Medical - HDHP", []string{"Employee Only", "Employee + Spouse", "Employee + Family"}, 75, 250, 300, 600},
	{"Dental - Basic", []string{"Employee Only", "Employee + Family"}, 20, 60, 30, 50},
	{"Vision", []string{"Employee Only", "Employee + Family"}, 10, 25, 15, 25},
	{"401(k)", []string{"Employee Only"}, 100, 800, 50, 400},
}

// rosterEntry is an employee under construction plus the flags anomalies may
// set on it.
type rosterEntry struct {
	Employee           domain.Employee
	KeepActiveBenefits bool
}

// Anomaly is a deliberate data-quality defect planted at a fixed roster index
// so integrations have something realistic to trip over.
type Anomaly struct {
	Index int
	Name  string
	Apply func(g *generator, roster []rosterEntry)
}

// Anomalies is applied, in order, after the base roster is generated.
var Anomalies = []Anomaly{
	{42, "missing_ssn", func(_ *generator, r []rosterEntry) {
		r[42].Employee.SSNMasked = nil
	}},
	{43, "duplicate_name", func(_ *generator, r []rosterEntry) {
		r[43].Employee.FirstName = r[42].Employee.FirstName
		r[43].Employee.LastName = r[42].Employee.LastName
	}},
	{77, "terminated_with_active_benefits", func(g *generator, r []rosterEntry) {
		g.terminate(&r[77].Employee, 90)
		r[77].KeepActiveBenefits = true
	}},
	{78, "terminated", func(g *generator, r []rosterEntry) {
		g.terminate(&r[78].Employee, 60)
	}},
	{79, "leave_of_absence", func(_ *generator, r []rosterEntry) {
		r[79].Employee.Status = domain.StatusLeaveOfAbsence
	}},
	{80, "leave_of_absence", func(_ *generator, r []rosterEntry) {
		r[80].Employee.Status = domain.StatusLeaveOfAbsence
	}},
	{81, "terminated", func(g *generator, r []rosterEntry) {
		g.terminate(&r[81].Employee, 30)
	}},
	{99, "zero_pay_rate", func(_ *generator, r []rosterEntry) {
		r[99].Employee.PayRate = decimal.Zero
	}},
}

// Seeder fills a tenant with a deterministic mock HCM dataset.
type Seeder struct {
	repo ports.SeedRepository
	now  func() time.Time
	log  zerolog.Logger
}

func NewSeeder(repo ports.SeedRepository, log zerolog.Logger) *Seeder {
	return &Seeder{repo: repo, now: time.Now, log: log}
}

// Seed generates and stores the dataset unless the tenant already has one.
// Losing a race against a concurrent Seed for the same tenant is not an error.
func (s *Seeder) Seed(ctx context.Context, tenantID string) error {
	n, err := s.repo.CountEmployees(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if n > 0 {
		s.log.Debug().Str("tenant_id", tenantID).Msg("tenant already seeded")
		return nil
	}

	start := time.Now()
	batch := s.Generate(tenantID)
	if err := s.repo.InsertSeed(ctx, tenantID, batch); err != nil {
		if errors.Is(err, domain.ErrAlreadySeeded) {
			s.log.Debug().Str("tenant_id", tenantID).Msg("concurrent seed already applied")
			return nil
		}
		return fmt.Errorf("seed: %w", err)
	}

	s.log.Info().
		Str("tenant_id", tenantID).
		Int("employees", len(batch.Employees)).
		Int("time_entries", len(batch.TimeEntries)).
		Int("benefits", len(batch.Benefits)).
		Dur("took", time.Since(start)).
		Msg("tenant seeded")
	return nil
}

// Generate builds the dataset without touching storage. The same tenant id on
// the same calendar day always yields the same names, rates and dates; row ids
// are fresh uuids.
func (s *Seeder) Generate(tenantID string) *ports.SeedBatch {
	g := newGenerator(tenantID, s.now())
	batch := &ports.SeedBatch{}

	for _, loc := range seedLocations {
		loc.ID = uuid.NewString()
		loc.TenantID = tenantID
		loc.Address = g.f.Street()
		batch.Locations = append(batch.Locations, loc)
	}
	for _, name := range seedDepartments {
		batch.Departments = append(batch.Departments, domain.Department{
			ID:       uuid.NewString(),
			TenantID: tenantID,
			Name:     name,
			Code:     fmt.Sprintf("%s%d", strings.ToUpper(name[:3]), g.f.Number(100, 999)),
		})
	}
	for _, name := range seedJobTitles {
		batch.JobTitles = append(batch.JobTitles, domain.JobTitle{
			ID:       uuid.NewString(),
			TenantID: tenantID,
			Name:     name,
			Code:     fmt.Sprintf("JT%d", g.f.Number(1000, 9999)),
		})
	}

	roster := make([]rosterEntry, SeedEmployeeCount)
	for i := range roster {
		roster[i].Employee = g.employee(tenantID, i)
	}
	rootID := roster[0].Employee.ID
	for i := 1; i < len(roster); i++ {
		roster[i].Employee.ManagerID = &rootID
	}

	for _, a := range Anomalies {
		if a.Index < len(roster) {
			a.Apply(g, roster)
		}
	}

	for i, entry := range roster {
		emp := entry.Employee
		batch.Employees = append(batch.Employees, emp)

		if emp.Status == domain.StatusActive {
			batch.TimeEntries = append(batch.TimeEntries, g.timeEntries(&emp)...)
		}
		if i%5 != 0 || entry.KeepActiveBenefits {
			batch.Benefits = append(batch.Benefits, g.benefits(&emp, entry.KeepActiveBenefits)...)
		}
	}
	return batch
}

type generator struct {
	f     *gofakeit.Faker
	today time.Time
}

func newGenerator(tenantID string, now time.Time) *generator {
	h := fnv.New64a()
	_, _ = h.Write([]byte(tenantID))
	y, m, d := now.UTC().Date()
	return &generator{
		f:     gofakeit.New(h.Sum64()),
		today: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

func (g *generator) employee(tenantID string, i int) domain.Employee {
	first := g.f.FirstName()
	last := g.f.LastName()
	ssn := fmt.Sprintf("***-**-%d", g.f.Number(1000, 9999))
	rate := decimal.NewFromFloat(g.f.Float64Range(15, 85)).Round(2)
	hired := g.f.DateRange(g.today.AddDate(-5, 0, 0), g.today)

	return domain.Employee{
		ID:             uuid.NewString(),
		TenantID:       tenantID,
		EmployeeNumber: fmt.Sprintf("EMP%04d", i+1),
		FirstName:      first,
		LastName:       last,
		Email:          emailLocalPart(first) + "." + emailLocalPart(last) + "@" + employeeEmailHost,
		SSNMasked:      &ssn,
		Status:         domain.StatusActive,
		HireDate:       hired.Format(dateLayout),
		JobTitle:       g.f.RandomString(seedJobTitles),
		Department:     g.f.RandomString(seedDepartments),
		Location:       seedLocations[g.f.Number(0, len(seedLocations)-1)].Name,
		PayRate:        rate,
		PayFrequency:   g.f.RandomString([]string{domain.PayBiWeekly, domain.PaySemiMonthly, domain.PayWeekly}),
	}
}

func (g *generator) terminate(e *domain.Employee, withinDays int) {
	d := g.today.AddDate(0, 0, -g.f.Number(1, withinDays)).Format(dateLayout)
	e.Status = domain.StatusTerminated
	e.TerminationDate = &d
}

// timeEntries walks back over the last 30 days, today included, one punch
// pair per weekday.
// Punch-out is punch-in plus the worked hours, rounded to the minute.
func (g *generator) timeEntries(e *domain.Employee) []domain.TimeEntry {
	var out []domain.TimeEntry
	for back := 0; back < timeEntryDays; back++ {
		day := g.today.AddDate(0, 0, -back)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		in := g.f.Number(7, 9)*60 + g.f.Number(0, 59)
		hours := math.Round(g.f.Float64Range(7, 9.5)*100) / 100
		outMin := in + int(math.Round(hours*60))
		punchOut := clock(outMin)

		out = append(out, domain.TimeEntry{
			ID:         uuid.NewString(),
			TenantID:   e.TenantID,
			EmployeeID: e.ID,
			Date:       day.Format(dateLayout),
			PunchIn:    clock(in),
			PunchOut:   &punchOut,
			Hours:      hours,
			Department: e.Department,
		})
	}
	return out
}

func (g *generator) benefits(e *domain.Employee, keepActive bool) []domain.Benefit {
	n := g.f.Number(1, 3)
	picked := make([]int, len(benefitCatalog))
	for i := range picked {
		picked[i] = i
	}
	g.f.ShuffleInts(picked)
	picked = picked[:n]

	status := domain.StatusActive
	if e.Status == domain.StatusTerminated && !keepActive {
		status = domain.StatusTerminated
	}

	out := make([]domain.Benefit, 0, n)
	for _, idx := range picked {
		plan := benefitCatalog[idx]
		out = append(out, domain.Benefit{
			ID:                   uuid.NewString(),
			TenantID:             e.TenantID,
			EmployeeID:           e.ID,
			PlanName:             plan.Name,
			CoverageLevel:        g.f.RandomString(plan.Coverage),
			EmployeeDeduction:    decimal.NewFromFloat(g.f.Float64Range(plan.DeductionMin, plan.DeductionMax)).Round(2),
			EmployerContribution: decimal.NewFromFloat(g.f.Float64Range(plan.ContributionMin, plan.ContributionMax)).Round(2),
			EffectiveDate:        g.f.DateRange(g.today.AddDate(-2, 0, 0), g.today).Format(dateLayout),
			Status:               status,
		})
	}
	return out
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func emailLocalPart(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
