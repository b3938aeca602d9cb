package sqlite

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
	"github.com/hcmnotify/sandbox/internal/core/service"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(context.Background(), Config{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func newTenant(suffix string) *domain.Tenant {
	return &domain.Tenant{
		ID:           "tenant-" + suffix,
		Name:         "Jane Doe",
		Email:        suffix + "@acme.com",
		CompanyName:  "Acme " + suffix,
		CompanyShort: "acme-" + suffix,
		CompanyID:    "SBX" + suffix,
		APIKey:       "sbx_" + suffix,
		ClientID:     "client-" + suffix,
		ClientSecret: "secret-" + suffix,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestTenantRepository_CreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewTenantRepository(db)
	ctx := context.Background()

	tn := newTenant("a")
	require.NoError(t, repo.Create(ctx, tn))

	got, err := repo.FindByEmail(ctx, "a@acme.com")
	require.NoError(t, err)
	assert.Equal(t, tn.ID, got.ID)

	got, err = repo.FindByAPIKeyAndShortName(ctx, "sbx_a", "acme-a")
	require.NoError(t, err)
	assert.Equal(t, tn.ID, got.ID)

	_, err = repo.FindByAPIKeyAndShortName(ctx, "sbx_a", "acme-b")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)

	got, err = repo.FindByCompanyAndClientCredentials(ctx, "SBXa", "client-a", "secret-a")
	require.NoError(t, err)
	assert.Equal(t, tn.ID, got.ID)

	_, err = repo.FindByCompanyAndClientCredentials(ctx, "SBXa", "client-a", "wrong")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)

	exists, err := repo.ShortNameExists(ctx, "acme-a")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTenantRepository_UniqueViolationIsConflict(t *testing.T) {
	repo := NewTenantRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTenant("a")))

	dup := newTenant("b")
	dup.APIKey = "sbx_a"
	err := repo.Create(ctx, dup)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTenantRepository_RecordActivityConcurrent(t *testing.T) {
	repo := NewTenantRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newTenant("a")))

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.RecordActivity(ctx, "tenant-a", time.Now()); err != nil {
				t.Errorf("record activity: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := repo.FindByID(ctx, "tenant-a")
	require.NoError(t, err)
	assert.EqualValues(t, 25, got.TotalAPICalls)
	assert.NotNil(t, got.LastAPIHit)

	assert.ErrorIs(t, repo.RecordActivity(ctx, "missing", time.Now()), domain.ErrTenantNotFound)
}

func TestTenantRepository_Stats(t *testing.T) {
	repo := NewTenantRepository(openTestDB(t))
	ctx := context.Background()

	old := newTenant("old")
	old.CreatedAt = time.Now().UTC().AddDate(0, -1, 0)
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, newTenant("new")))
	require.NoError(t, repo.RecordActivity(ctx, "tenant-new", time.Now()))

	stats, err := repo.Stats(ctx, time.Now().UTC().AddDate(0, 0, -7))
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalSignups)
	assert.EqualValues(t, 1, stats.SignupsThisWeek)
	assert.EqualValues(t, 1, stats.TotalAPICalls)
}

func TestSessionRepository(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewTenantRepository(db).Create(ctx, newTenant("a")))
	repo := NewSessionRepository(db)

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &domain.Session{
		Token: "tok", TenantID: "tenant-a", Type: domain.TokenV2, ExpiresAt: now.Add(time.Hour), CreatedAt: now,
	}))

	s, err := repo.Find(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, domain.TokenV2, s.Type)
	assert.False(t, s.Expired(now))

	require.NoError(t, repo.Delete(ctx, "tok"))
	_, err = repo.Find(ctx, "tok")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionRepository_RejectsUnknownTenant(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t))
	now := time.Now().UTC()

	err := repo.Create(context.Background(), &domain.Session{
		Token: "tok", TenantID: "ghost", Type: domain.TokenV1, ExpiresAt: now.Add(time.Hour), CreatedAt: now,
	})

	assert.Error(t, err, "foreign key to tenants must hold")
}

func seedTenant(t *testing.T, db *gorm.DB, suffix string) *domain.Tenant {
	t.Helper()
	ctx := context.Background()
	tn := newTenant(suffix)
	require.NoError(t, NewTenantRepository(db).Create(ctx, tn))
	require.NoError(t, service.NewSeeder(NewSeedRepository(db), zerolog.Nop()).Seed(ctx, tn.ID))
	return tn
}

func TestSeedRepository_SeedOnceAtomically(t *testing.T) {
	db := openTestDB(t)
	tn := seedTenant(t, db, "a")
	repo := NewSeedRepository(db)
	ctx := context.Background()

	n, err := repo.CountEmployees(ctx, tn.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 100, n)

	// A second insert for the same tenant is refused and writes nothing.
	batch := &ports.SeedBatch{Employees: []domain.Employee{{
		ID: "extra", TenantID: tn.ID, EmployeeNumber: "EMP9999", FirstName: "X", LastName: "Y",
		Email: "x@y.z", HireDate: "2020-01-01", JobTitle: "j", Department: "d", Location: "l", PayFrequency: "Weekly",
	}}}
	err = repo.InsertSeed(ctx, tn.ID, batch)
	assert.ErrorIs(t, err, domain.ErrAlreadySeeded)

	n, err = repo.CountEmployees(ctx, tn.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 100, n)
}

func TestSeedRepository_FailedSeedRollsBack(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	tn := newTenant("rb")
	require.NoError(t, NewTenantRepository(db).Create(ctx, tn))
	repo := NewSeedRepository(db)
	seeder := service.NewSeeder(repo, zerolog.Nop())

	// The last step fails on a repeated primary key after every other table
	// has been written.
	batch := seeder.Generate(tn.ID)
	require.NotEmpty(t, batch.Benefits)
	batch.Benefits = append(batch.Benefits, batch.Benefits[0])

	err := repo.InsertSeed(ctx, tn.ID, batch)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadySeeded)

	n, err := repo.CountEmployees(ctx, tn.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	var markers, locations int64
	require.NoError(t, db.Model(&domain.TenantSeed{}).Where("tenant_id = ?", tn.ID).Count(&markers).Error)
	require.NoError(t, db.Model(&domain.Location{}).Where("tenant_id = ?", tn.ID).Count(&locations).Error)
	assert.EqualValues(t, 0, markers)
	assert.EqualValues(t, 0, locations)

	require.NoError(t, seeder.Seed(ctx, tn.ID))
	n, err = repo.CountEmployees(ctx, tn.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 100, n)
}

func TestSeedRepository_ConcurrentSeedsProduceOneDataset(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	tn := newTenant("race")
	require.NoError(t, NewTenantRepository(db).Create(ctx, tn))
	seeder := service.NewSeeder(NewSeedRepository(db), zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := seeder.Seed(ctx, tn.ID); err != nil {
				t.Errorf("seed: %v", err)
			}
		}()
	}
	wg.Wait()

	n, err := NewSeedRepository(db).CountEmployees(ctx, tn.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 100, n)
}

func TestHCMRepository_ListEmployees(t *testing.T) {
	db := openTestDB(t)
	a := seedTenant(t, db, "a")
	seedTenant(t, db, "b")
	repo := NewHCMRepository(db)
	ctx := context.Background()

	page, total, err := repo.ListEmployees(ctx, ports.EmployeeFilter{TenantID: a.ID, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 100, total)
	require.Len(t, page, 10)
	for i := 1; i < len(page); i++ {
		prev, cur := page[i-1], page[i]
		assert.True(t, prev.LastName < cur.LastName || (prev.LastName == cur.LastName && prev.FirstName <= cur.FirstName),
			"%s %s before %s %s", prev.FirstName, prev.LastName, cur.FirstName, cur.LastName)
	}
	for _, e := range page {
		assert.Equal(t, a.ID, e.TenantID)
	}

	_, total, err = repo.ListEmployees(ctx, ports.EmployeeFilter{TenantID: a.ID, Status: "Terminated", Limit: 100})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	_, total, err = repo.ListEmployees(ctx, ports.EmployeeFilter{TenantID: a.ID, Location: "Nowhere", Limit: 100})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	_, perPage := service.ClampPage(service.MaxPage, 100)
	page, total, err = repo.ListEmployees(ctx, ports.EmployeeFilter{TenantID: a.ID, Offset: (service.MaxPage - 1) * perPage, Limit: perPage})
	require.NoError(t, err)
	assert.EqualValues(t, 100, total)
	assert.Empty(t, page, "an offset past the end returns no rows")
}

func TestHCMRepository_TenantIsolation(t *testing.T) {
	db := openTestDB(t)
	a := seedTenant(t, db, "a")
	b := seedTenant(t, db, "b")
	repo := NewHCMRepository(db)
	ctx := context.Background()

	bEmps, _, err := repo.ListEmployees(ctx, ports.EmployeeFilter{TenantID: b.ID, Limit: 1})
	require.NoError(t, err)
	require.Len(t, bEmps, 1)

	_, err = repo.FindEmployee(ctx, a.ID, bEmps[0].ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	got, err := repo.FindEmployee(ctx, b.ID, bEmps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, bEmps[0].EmployeeNumber, got.EmployeeNumber)
}

func TestHCMRepository_Reports(t *testing.T) {
	db := openTestDB(t)
	a := seedTenant(t, db, "a")
	repo := NewHCMRepository(db)
	ctx := context.Background()

	roster, err := repo.RosterReport(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, roster, 100)
	assert.Equal(t, "EMP0001", roster[0].EmployeeNumber)
	assert.True(t, roster[99].PayRate.IsZero(), "EMP0100 has a zero pay rate")

	times, err := repo.TimeReport(ctx, a.ID, 1000)
	require.NoError(t, err)
	require.NotEmpty(t, times)
	assert.LessOrEqual(t, len(times), 1000)
	for i := 1; i < len(times); i++ {
		assert.GreaterOrEqual(t, times[i-1].Date, times[i].Date, "newest first")
	}
	assert.Contains(t, times[0].EmployeeName, " ")

	benefits, err := repo.BenefitsReport(ctx, a.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, benefits)
}

func TestHCMRepository_ReferenceData(t *testing.T) {
	db := openTestDB(t)
	a := seedTenant(t, db, "a")
	repo := NewHCMRepository(db)
	ctx := context.Background()

	locs, err := repo.ListLocations(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, locs, 3)

	depts, err := repo.ListDepartments(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, depts, 8)

	titles, err := repo.ListJobTitles(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, titles, 15)
}

func TestWebhookRepository(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewTenantRepository(db).Create(ctx, newTenant("a")))
	repo := NewWebhookRepository(db)

	require.NoError(t, repo.Create(ctx, &domain.Webhook{
		ID: "wh-1", TenantID: "tenant-a", URL: "https://example.com/hook",
		Events: []string{"ACCOUNT_UPDATED"}, Active: true, CreatedAt: time.Now().UTC(),
	}))

	hooks, err := repo.ListByTenant(ctx, "tenant-a")
	require.NoError(t, err)
	require.Len(t, hooks, 1)
	assert.Equal(t, []string{"ACCOUNT_UPDATED"}, hooks[0].Events)

	hooks, err = repo.ListByTenant(ctx, "tenant-b")
	require.NoError(t, err)
	assert.Empty(t, hooks)
}

func ExampleOpen() {
	db, err := Open(context.Background(), Config{Path: ":memory:"})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer Close(db)
	fmt.Println(db.Migrator().HasTable("tokens"))
	// Output: true
}
