package domain

import "time"

const (
	EventAccountCreated = "ACCOUNT_CREATED"
	EventAccountUpdated = "ACCOUNT_UPDATED"
)

// DefaultWebhookEvents is the subscription used when a registration names none.
var DefaultWebhookEvents = []string{EventAccountCreated, EventAccountUpdated}

// Webhook is a tenant-registered callback.
type Webhook struct {
	ID        string    `json:"id"         gorm:"primaryKey"`
	TenantID  string    `json:"tenant_id"  gorm:"not null;index"`
	URL       string    `json:"url"        gorm:"not null"`
	Events    []string  `json:"events"     gorm:"not null;serializer:json"`
	Active    bool      `json:"active"     gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`

	Tenant *Tenant `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
