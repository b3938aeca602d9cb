package ports

import (
	"context"

	"github.com/hcmnotify/sandbox/internal/core/domain"
)

const (
	ImportSuccess = "success"
	ImportPartial = "partial"
)

// ImportResult summarises a validated CSV upload. Nothing is persisted.
type ImportResult struct {
	Status           string              `json:"status"`
	RecordsProcessed int                 `json:"records_processed"`
	RecordsTotal     int                 `json:"records_total"`
	Errors           []domain.FieldError `json:"errors"`
}

type ImportService interface {
	Validate(ctx context.Context, importID string, body []byte) (*ImportResult, error)
}
