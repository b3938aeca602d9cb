package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

func TestSignup_CreatesAndSeeds(t *testing.T) {
	repo := newStubTenantRepo()
	seeder := &stubSeeder{}
	svc := NewTenantService(repo, seeder, zerolog.Nop())

	res, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "Jane Doe", Email: "Jane@Acme.com", CompanyName: "Acme Corp",
	})
	require.NoError(t, err)

	assert.False(t, res.Existing)
	tn := res.Tenant
	assert.Equal(t, "jane@acme.com", tn.Email)
	assert.Equal(t, "acme-corp", tn.CompanyShort)
	assert.True(t, strings.HasPrefix(tn.CompanyID, "SBX"))
	assert.True(t, strings.HasPrefix(tn.APIKey, "sbx_"))
	assert.Len(t, tn.ClientSecret, 40)
	assert.Equal(t, []string{tn.ID}, seeder.calls)
}

func TestSignup_ExistingEmailIsIdempotent(t *testing.T) {
	existing := sampleTenant("t1", "SBXAAAA0001")
	existing.Email = "jane@acme.com"
	repo := newStubTenantRepo(existing)
	seeder := &stubSeeder{}
	svc := NewTenantService(repo, seeder, zerolog.Nop())

	res, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "Jane Again", Email: "jane@acme.com", CompanyName: "Something Else",
	})
	require.NoError(t, err)

	assert.True(t, res.Existing)
	assert.Equal(t, existing.APIKey, res.Tenant.APIKey)
	assert.Equal(t, existing.ClientSecret, res.Tenant.ClientSecret)
	assert.Equal(t, []string{"t1"}, seeder.calls, "re-seed heals a failed first seed")
}

func TestSignup_SlugCollisionGetsSuffix(t *testing.T) {
	taken := sampleTenant("t1", "SBXAAAA0001")
	taken.CompanyShort = "acme-corp"
	svc := NewTenantService(newStubTenantRepo(taken), &stubSeeder{}, zerolog.Nop())

	res, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "John", Email: "john@acme.com", CompanyName: "Acme Corp",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^acme-corp-[a-z0-9]{4}$`, res.Tenant.CompanyShort)
}

func TestSignup_Validation(t *testing.T) {
	svc := NewTenantService(newStubTenantRepo(), &stubSeeder{}, zerolog.Nop())

	tests := []struct {
		name  string
		in    ports.SignupInput
		wants []string
	}{
		{"all missing", ports.SignupInput{}, []string{"name", "email", "company_name"}},
		{"bad email", ports.SignupInput{Name: "J", Email: "jane@acme", CompanyName: "Acme"}, []string{"email"}},
		{"email with space", ports.SignupInput{Name: "J", Email: "ja ne@acme.com", CompanyName: "Acme"}, []string{"email"}},
		{"blank company", ports.SignupInput{Name: "J", Email: "j@acme.com", CompanyName: "   "}, []string{"company_name"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tt.in)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			var got []string
			for _, f := range ve.Fields {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.wants, got)
		})
	}
}

func TestSignup_ConflictFailsWholeSignup(t *testing.T) {
	repo := newStubTenantRepo()
	repo.createErr = fmt.Errorf("create tenant: %w", domain.ErrConflict)
	seeder := &stubSeeder{}
	svc := NewTenantService(repo, seeder, zerolog.Nop())

	_, err := svc.Signup(context.Background(), ports.SignupInput{
		Name: "Jane", Email: "jane@acme.com", CompanyName: "Acme",
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, seeder.calls)
}
