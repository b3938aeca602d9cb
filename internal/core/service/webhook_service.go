package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

const webhookTestSource = "hcmnotify-sandbox"

type webhookService struct {
	tenants    ports.TenantRepository
	repo       ports.WebhookRepository
	dispatcher ports.WebhookDispatcher
	now        func() time.Time
	log        zerolog.Logger
}

// NewWebhookService returns a WebhookService that schedules one test delivery
// per registration.
func NewWebhookService(
	tenants ports.TenantRepository,
	repo ports.WebhookRepository,
	dispatcher ports.WebhookDispatcher,
	log zerolog.Logger,
) ports.WebhookService {
	return &webhookService{
		tenants:    tenants,
		repo:       repo,
		dispatcher: dispatcher,
		now:        time.Now,
		log:        log,
	}
}

func (s *webhookService) Register(ctx context.Context, in ports.RegisterWebhookInput) (*domain.Webhook, error) {
	if err := validateWebhookURL(in.URL); err != nil {
		return nil, err
	}
	if _, err := AuthorizeCompany(ctx, s.tenants, in.Scope); err != nil {
		return nil, err
	}

	events := in.Events
	if len(events) == 0 {
		events = append([]string(nil), domain.DefaultWebhookEvents...)
	}

	hook := &domain.Webhook{
		ID:        uuid.NewString(),
		TenantID:  in.Scope.TenantID,
		URL:       in.URL,
		Events:    events,
		Active:    true,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, hook); err != nil {
		return nil, fmt.Errorf("register webhook: %w", err)
	}

	s.dispatcher.Schedule(ports.WebhookDelivery{
		WebhookID: hook.ID,
		TenantID:  hook.TenantID,
		URL:       hook.URL,
		Payload: ports.WebhookPayload{
			Event:     domain.EventAccountUpdated,
			Timestamp: s.now().UTC(),
			Data: map[string]any{
				"employee_id": "test-employee-id",
				"changes":     []string{"email", "department"},
				"source":      webhookTestSource,
			},
		},
	})

	s.log.Info().Str("tenant_id", hook.TenantID).Str("webhook_id", hook.ID).Msg("webhook registered")
	return hook, nil
}

func (s *webhookService) List(ctx context.Context, scope ports.CompanyScope) ([]domain.Webhook, error) {
	if _, err := AuthorizeCompany(ctx, s.tenants, scope); err != nil {
		return nil, err
	}
	return s.repo.ListByTenant(ctx, scope.TenantID)
}

func validateWebhookURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return domain.NewValidationError("invalid webhook",
			domain.FieldError{Field: "url", Message: "url is required"})
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewValidationError("invalid webhook",
			domain.FieldError{Field: "url", Message: "url must be an absolute http(s) URL"})
	}
	return nil
}
