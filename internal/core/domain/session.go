package domain

import "time"

// TokenType tags the protocol generation a bearer token was issued for.
type TokenType string

const (
	TokenV1 TokenType = "v1"
	TokenV2 TokenType = "v2"
)

// TokenTTL is the fixed validity window of every issued bearer token.
const TokenTTL = 24 * time.Hour

// Session is the server-side record of an issued bearer token. A token without a
// matching unexpired session is not valid, whatever its signature says.
type Session struct {
	Token     string    `gorm:"primaryKey"`
	TenantID  string    `gorm:"not null;index"`
	Type      TokenType `gorm:"not null;check:type IN ('v1','v2')"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`

	Tenant *Tenant `gorm:"constraint:OnDelete:CASCADE"`
}

func (Session) TableName() string { return "tokens" }

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Principal is the authenticated caller resolved from a verified token.
type Principal struct {
	TenantID string
	Type     TokenType
}

// AdminSession is a bearer session for the operator-facing admin API.
type AdminSession struct {
	Token     string    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
}
