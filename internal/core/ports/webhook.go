package ports

import (
	"context"
	"time"

	"github.com/hcmnotify/sandbox/internal/core/domain"
)

type WebhookRepository interface {
	Create(ctx context.Context, w *domain.Webhook) error
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Webhook, error)
}

// WebhookDelivery is a single outbound event POST.
type WebhookDelivery struct {
	WebhookID string
	TenantID  string
	URL       string
	Payload   WebhookPayload
}

// WebhookPayload is the JSON body posted to a subscriber.
type WebhookPayload struct {
	Event     string         `json:"event"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// WebhookDispatcher delivers events in the background. Schedule never blocks
// on delivery and never reports delivery failures to the caller.
type WebhookDispatcher interface {
	Schedule(d WebhookDelivery)
}

// RegisterWebhookInput is a subscription request.
type RegisterWebhookInput struct {
	Scope  CompanyScope
	URL    string
	Events []string
}

type WebhookService interface {
	Register(ctx context.Context, in RegisterWebhookInput) (*domain.Webhook, error)
	List(ctx context.Context, scope CompanyScope) ([]domain.Webhook, error)
}
