package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

// EmployeeImportID is the only import template the sandbox knows.
const EmployeeImportID = "100"

var importRequiredColumns = []string{"first_name", "last_name", "email", "hire_date"}

type importService struct {
	log zerolog.Logger
}

// NewImportService returns a validator for CSV employee imports. It never
// writes anything.
func NewImportService(log zerolog.Logger) ports.ImportService {
	return &importService{log: log}
}

// Validate checks the header for the required columns, then every data row.
// Surrounding whitespace is trimmed first, so row numbers are physical line
// numbers with the header on row 1.
func (s *importService) Validate(_ context.Context, importID string, body []byte) (*ports.ImportResult, error) {
	if importID != EmployeeImportID {
		return nil, &domain.NotFoundError{
			Kind:    domain.ErrImportNotFound,
			Message: fmt.Sprintf("Import %s not found. Available imports: %s", importID, EmployeeImportID),
		}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, domain.NewValidationError("CSV body required. Send CSV data in the request body with Content-Type: text/csv")
	}

	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("CSV body is empty")
		}
		return nil, domain.NewValidationError("CSV header could not be parsed: " + err.Error())
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	var missing []domain.FieldError
	for _, col := range importRequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, domain.FieldError{Field: col, Message: fmt.Sprintf("Required column '%s' not found in CSV header", col)})
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError("Missing required columns", missing...)
	}
	emailCol := index["email"]

	result := &ports.ImportResult{Errors: []domain.FieldError{}}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.StartLine
			}
			result.RecordsTotal++
			result.Errors = append(result.Errors, domain.FieldError{Row: line, Message: "row could not be parsed"})
			continue
		}
		if isBlank(rec) {
			continue
		}
		line, _ := r.FieldPos(0)

		result.RecordsTotal++
		rowOK := true
		if len(rec) != len(header) {
			rowOK = false
			result.Errors = append(result.Errors, domain.FieldError{
				Row:     line,
				Message: fmt.Sprintf("Expected %d columns, got %d", len(header), len(rec)),
			})
		}
		if emailCol < len(rec) {
			if email := strings.TrimSpace(rec[emailCol]); email != "" && !strings.Contains(email, "@") {
				rowOK = false
				result.Errors = append(result.Errors, domain.FieldError{
					Row:     line,
					Field:   "email",
					Message: "Invalid email: " + email,
				})
			}
		}
		if rowOK {
			result.RecordsProcessed++
		}
	}

	if result.RecordsTotal == 0 {
		return nil, domain.NewValidationError("CSV must contain a header row and at least one data row")
	}

	result.Status = ports.ImportSuccess
	if len(result.Errors) > 0 {
		result.Status = ports.ImportPartial
	}
	s.log.Debug().
		Int("records_total", result.RecordsTotal).
		Int("records_processed", result.RecordsProcessed).
		Msg("import validated")
	return result, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
