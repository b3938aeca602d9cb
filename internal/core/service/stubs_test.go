package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubTenantRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Tenant
	createErr error
	activity  map[string]int
}

func newStubTenantRepo(tenants ...*domain.Tenant) *stubTenantRepo {
	r := &stubTenantRepo{byID: map[string]*domain.Tenant{}, activity: map[string]int{}}
	for _, t := range tenants {
		r.byID[t.ID] = t
	}
	return r
}

func (r *stubTenantRepo) Create(_ context.Context, t *domain.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	clone := *t
	r.byID[t.ID] = &clone
	return nil
}

func (r *stubTenantRepo) find(match func(*domain.Tenant) bool) (*domain.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.byID {
		if match(t) {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrTenantNotFound
}

func (r *stubTenantRepo) FindByID(_ context.Context, id string) (*domain.Tenant, error) {
	return r.find(func(t *domain.Tenant) bool { return t.ID == id })
}

func (r *stubTenantRepo) FindByEmail(_ context.Context, email string) (*domain.Tenant, error) {
	return r.find(func(t *domain.Tenant) bool { return t.Email == email })
}

func (r *stubTenantRepo) FindByAPIKeyAndShortName(_ context.Context, apiKey, short string) (*domain.Tenant, error) {
	return r.find(func(t *domain.Tenant) bool { return t.APIKey == apiKey && t.CompanyShort == short })
}

func (r *stubTenantRepo) FindByCompanyAndClientCredentials(_ context.Context, companyID, clientID, secret string) (*domain.Tenant, error) {
	return r.find(func(t *domain.Tenant) bool {
		return t.CompanyID == companyID && t.ClientID == clientID && t.ClientSecret == secret
	})
}

func (r *stubTenantRepo) ShortNameExists(_ context.Context, short string) (bool, error) {
	_, err := r.find(func(t *domain.Tenant) bool { return t.CompanyShort == short })
	return err == nil, nil
}

func (r *stubTenantRepo) RecordActivity(_ context.Context, id string, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activity[id]++
	return nil
}

func (r *stubTenantRepo) List(_ context.Context) ([]domain.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Tenant, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTenantRepo) Stats(_ context.Context, since time.Time) (ports.TenantStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s ports.TenantStats
	for _, t := range r.byID {
		s.TotalSignups++
		if !t.CreatedAt.Before(since) {
			s.SignupsThisWeek++
		}
		s.TotalAPICalls += t.TotalAPICalls
	}
	return s, nil
}

type stubSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: map[string]domain.Session{}}
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.Token] = *s
	return nil
}

func (r *stubSessionRepo) Find(_ context.Context, token string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *stubSessionRepo) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

type stubAdminSessionRepo struct {
	sessions map[string]domain.AdminSession
}

func (r *stubAdminSessionRepo) Create(_ context.Context, s *domain.AdminSession) error {
	if r.sessions == nil {
		r.sessions = map[string]domain.AdminSession{}
	}
	r.sessions[s.Token] = *s
	return nil
}

func (r *stubAdminSessionRepo) Find(_ context.Context, token string) (*domain.AdminSession, error) {
	s, ok := r.sessions[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

type stubSeedRepo struct {
	employees int64
	inserted  []*ports.SeedBatch
	insertErr error
}

func (r *stubSeedRepo) CountEmployees(_ context.Context, _ string) (int64, error) {
	return r.employees, nil
}

func (r *stubSeedRepo) InsertSeed(_ context.Context, _ string, b *ports.SeedBatch) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, b)
	r.employees = int64(len(b.Employees))
	return nil
}

type stubSeeder struct {
	calls []string
	err   error
}

func (s *stubSeeder) Seed(_ context.Context, tenantID string) error {
	s.calls = append(s.calls, tenantID)
	return s.err
}

type stubHCMRepo struct {
	employees []domain.Employee
	benefits  []domain.Benefit
	lastLimit int
}

func (r *stubHCMRepo) ListEmployees(_ context.Context, f ports.EmployeeFilter) ([]domain.Employee, int64, error) {
	var matched []domain.Employee
	for _, e := range r.employees {
		if e.TenantID != f.TenantID {
			continue
		}
		if f.Status != "" && string(e.Status) != f.Status {
			continue
		}
		matched = append(matched, e)
	}
	r.lastLimit = f.Limit
	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []domain.Employee{}, total, nil
	}
	end := min(f.Offset+f.Limit, len(matched))
	return matched[f.Offset:end], total, nil
}

func (r *stubHCMRepo) FindEmployee(_ context.Context, tenantID, id string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.TenantID == tenantID && e.ID == id {
			clone := e
			return &clone, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubHCMRepo) ListBenefits(_ context.Context, tenantID, employeeID string) ([]domain.Benefit, error) {
	out := []domain.Benefit{}
	for _, b := range r.benefits {
		if b.TenantID == tenantID && b.EmployeeID == employeeID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubHCMRepo) ListTimeEntries(_ context.Context, _, _ string, limit int) ([]domain.TimeEntry, error) {
	r.lastLimit = limit
	return []domain.TimeEntry{}, nil
}

func (r *stubHCMRepo) ListLocations(_ context.Context, _ string) ([]domain.Location, error) {
	return []domain.Location{{Name: "Headquarters"}}, nil
}

func (r *stubHCMRepo) ListDepartments(_ context.Context, _ string) ([]domain.Department, error) {
	return []domain.Department{{Name: "Engineering"}}, nil
}

func (r *stubHCMRepo) ListJobTitles(_ context.Context, _ string) ([]domain.JobTitle, error) {
	return []domain.JobTitle{{Name: "Recruiter"}}, nil
}

func (r *stubHCMRepo) RosterReport(_ context.Context, _ string) ([]ports.RosterRow, error) {
	return []ports.RosterRow{}, nil
}

func (r *stubHCMRepo) TimeReport(_ context.Context, _ string, limit int) ([]ports.TimeReportRow, error) {
	r.lastLimit = limit
	return []ports.TimeReportRow{}, nil
}

func (r *stubHCMRepo) BenefitsReport(_ context.Context, _ string) ([]ports.BenefitReportRow, error) {
	return []ports.BenefitReportRow{}, nil
}

type stubWebhookRepo struct {
	hooks []domain.Webhook
}

func (r *stubWebhookRepo) Create(_ context.Context, w *domain.Webhook) error {
	r.hooks = append(r.hooks, *w)
	return nil
}

func (r *stubWebhookRepo) ListByTenant(_ context.Context, tenantID string) ([]domain.Webhook, error) {
	out := []domain.Webhook{}
	for _, w := range r.hooks {
		if w.TenantID == tenantID {
			out = append(out, w)
		}
	}
	return out, nil
}

type stubDispatcher struct {
	scheduled []ports.WebhookDelivery
}

func (d *stubDispatcher) Schedule(del ports.WebhookDelivery) {
	d.scheduled = append(d.scheduled, del)
}

func sampleTenant(id, companyID string) *domain.Tenant {
	return &domain.Tenant{
		ID:           id,
		Name:         "Jane Doe",
		Email:        id + "@acme.com",
		CompanyName:  "Acme Corp",
		CompanyShort: "acme-" + id,
		CompanyID:    companyID,
		APIKey:       "sbx_" + id,
		ClientID:     "client-" + id,
		ClientSecret: "secret-" + id,
		CreatedAt:    time.Now().UTC(),
	}
}
