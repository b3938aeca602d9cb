package service

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

func newTestResourceService(n int) (ports.ResourceService, *stubHCMRepo, *domain.Tenant) {
	tenant := sampleTenant("t1", "SBXAAAA0001")
	other := sampleTenant("t2", "SBXBBBB0002")
	hcm := &stubHCMRepo{}
	for i := range n {
		hcm.employees = append(hcm.employees, domain.Employee{
			ID:           fmt.Sprintf("e%03d", i),
			TenantID:     tenant.ID,
			Status:       domain.StatusActive,
			PayRate:      decimal.NewFromInt(20),
			PayFrequency: domain.PayBiWeekly,
		})
	}
	hcm.employees = append(hcm.employees, domain.Employee{ID: "foreign", TenantID: other.ID})
	return NewResourceService(newStubTenantRepo(tenant, other), hcm, zerolog.Nop()), hcm, tenant
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{0, 0, 1, 25},
		{-3, 10, 1, 10},
		{2, 500, 2, 100},
		{5, 100, 5, 100},
		{math.MaxInt, 10, MaxPage, 10},
	}
	for _, tt := range tests {
		page, perPage := ClampPage(tt.page, tt.perPage)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantPerPage, perPage)
	}
}

func TestListEmployees_Paging(t *testing.T) {
	svc, hcm, tenant := newTestResourceService(100)
	scope := ports.CompanyScope{TenantID: tenant.ID, CompanyID: tenant.CompanyID}

	page, err := svc.ListEmployees(context.Background(), ports.ListEmployeesInput{Scope: scope, Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Employees, 10)
	assert.EqualValues(t, 100, page.Total)
	assert.Equal(t, 10, page.TotalPages)

	page, err = svc.ListEmployees(context.Background(), ports.ListEmployeesInput{Scope: scope, PerPage: 1000})
	require.NoError(t, err)
	assert.Equal(t, 100, hcm.lastLimit)
	assert.Equal(t, 1, page.TotalPages)

	page, err = svc.ListEmployees(context.Background(), ports.ListEmployeesInput{Scope: scope, Page: 2, PerPage: 30})
	require.NoError(t, err)
	assert.Equal(t, 4, page.TotalPages)
}

func TestListEmployees_PagePastEnd(t *testing.T) {
	svc, _, tenant := newTestResourceService(100)
	scope := ports.CompanyScope{TenantID: tenant.ID, CompanyID: tenant.CompanyID}

	for _, p := range []int{11, MaxPage, math.MaxInt64/10 + 7, math.MaxInt} {
		page, err := svc.ListEmployees(context.Background(), ports.ListEmployeesInput{Scope: scope, Page: p, PerPage: 10})
		require.NoError(t, err)
		assert.Empty(t, page.Employees, "page %d", p)
		assert.EqualValues(t, 100, page.Total)
		assert.Equal(t, 10, page.TotalPages)
		assert.Greater(t, page.Page, page.TotalPages)
	}
}

func TestCompanyRoutes_ForbidForeignCompany(t *testing.T) {
	svc, _, tenant := newTestResourceService(3)
	ctx := context.Background()
	foreign := ports.CompanyScope{TenantID: tenant.ID, CompanyID: "SBXBBBB0002"}

	_, err := svc.ListEmployees(ctx, ports.ListEmployeesInput{Scope: foreign})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.GetEmployee(ctx, foreign, "e000")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.CompanyConfig(ctx, foreign)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetEmployee_OtherTenantIsNotFound(t *testing.T) {
	svc, _, tenant := newTestResourceService(3)
	scope := ports.CompanyScope{TenantID: tenant.ID, CompanyID: tenant.CompanyID}

	_, err := svc.GetEmployee(context.Background(), scope, "foreign")

	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestGetPay_AnnualSalary(t *testing.T) {
	svc, _, tenant := newTestResourceService(1)
	scope := ports.CompanyScope{TenantID: tenant.ID, CompanyID: tenant.CompanyID}

	pay, err := svc.GetPay(context.Background(), scope, "e000")
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(20*40*26).Equal(pay.AnnualSalary), "got %s", pay.AnnualSalary)
}

func TestReport_UnknownIDListsAvailable(t *testing.T) {
	svc, _, tenant := newTestResourceService(1)

	_, err := svc.Report(context.Background(), tenant.ID, "9999")

	assert.ErrorIs(t, err, domain.ErrReportNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "1001, 1002, 1003")
}

func TestReport_TimeEntriesCapped(t *testing.T) {
	svc, hcm, tenant := newTestResourceService(1)

	rep, err := svc.Report(context.Background(), tenant.ID, ReportTime)
	require.NoError(t, err)

	assert.Equal(t, 1002, rep.ID)
	assert.Equal(t, 1000, hcm.lastLimit)
	assert.Equal(t, ports.TimeReportColumns, rep.Columns)
}

func TestCompanyConfig(t *testing.T) {
	svc, _, tenant := newTestResourceService(1)
	scope := ports.CompanyScope{TenantID: tenant.ID, CompanyID: tenant.CompanyID}

	cfg, err := svc.CompanyConfig(context.Background(), scope)
	require.NoError(t, err)

	assert.Equal(t, []string{"Weekly", "Bi-Weekly", "Semi-Monthly"}, cfg.PayFrequencies)
	assert.Len(t, cfg.Locations, 1)
}
