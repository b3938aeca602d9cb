package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

// maxImportBytes bounds a CSV upload.
const maxImportBytes = 5 << 20

type ImportHandler struct {
	imports ports.ImportService
}

func NewImportHandler(imports ports.ImportService) *ImportHandler {
	return &ImportHandler{imports: imports}
}

// Import validates a CSV upload against the import's required columns.
// Nothing is persisted.
//
// @Summary      Validate a CSV import
// @Tags         imports
// @Security     BearerAuth
// @Accept       text/csv
// @Produce      json
// @Param        importId  path      string  true  "Import id (100)"
// @Success      200       {object}  ports.ImportResult
// @Failure      400       {object}  map[string]any
// @Failure      404       {object}  map[string]any
// @Router       /ta/rest/v1/import/{importId} [post]
func (h *ImportHandler) Import(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return err
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportBytes+1))
	if err != nil {
		return domain.NewValidationError("could not read request body")
	}
	if len(body) > maxImportBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "CSV body too large")
	}

	res, err := h.imports.Validate(c.Request().Context(), c.Param("importId"), body)
	if err != nil {
		return err
	}
	if res.Errors == nil {
		res.Errors = []domain.FieldError{}
	}
	return c.JSON(http.StatusOK, res)
}
