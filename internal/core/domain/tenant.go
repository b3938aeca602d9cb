package domain

import "time"

// Tenant is one sandbox customer and the unit of data isolation.
type Tenant struct {
	ID            string     `json:"id"              gorm:"primaryKey"`
	Name          string     `json:"name"            gorm:"not null"`
	Email         string     `json:"email"           gorm:"not null;uniqueIndex"`
	CompanyName   string     `json:"company_name"    gorm:"not null"`
	CompanyShort  string     `json:"company_short"   gorm:"not null;uniqueIndex"`
	CompanyID     string     `json:"company_id"      gorm:"not null;uniqueIndex"`
	APIKey        string     `json:"api_key"         gorm:"not null;uniqueIndex"`
	ClientID      string     `json:"client_id"       gorm:"not null;uniqueIndex"`
	ClientSecret  string     `json:"client_secret"   gorm:"not null"`
	CreatedAt     time.Time  `json:"created_at"      gorm:"not null;index"`
	LastAPIHit    *time.Time `json:"last_api_hit"`
	TotalAPICalls int64      `json:"total_api_calls" gorm:"not null;default:0"`
}

// TenantSeed marks a tenant whose mock data has been generated. The primary key
// makes a second concurrent seeding attempt fail instead of duplicating rows.
type TenantSeed struct {
	TenantID string    `gorm:"primaryKey"`
	SeededAt time.Time `gorm:"not null"`

	Tenant *Tenant `gorm:"constraint:OnDelete:CASCADE"`
}
