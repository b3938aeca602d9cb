package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hcmnotify/sandbox/internal/api/metrics"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

type ReportHandler struct {
	resources ports.ResourceService
}

func NewReportHandler(resources ports.ResourceService) *ReportHandler {
	return &ReportHandler{resources: resources}
}

type reportResponse struct {
	ReportID   int    `json:"report_id"`
	ReportName string `json:"report_name"`
	Data       any    `json:"data"`
}

// Saved renders a saved report as JSON, or as CSV when the Accept header asks
// for text/csv.
//
// @Summary      Saved report
// @Tags         reports
// @Security     BearerAuth
// @Produce      json,text/csv
// @Param        reportId  path      string  true  "1001, 1002 or 1003"
// @Success      200       {object}  reportResponse
// @Failure      401       {object}  map[string]any
// @Failure      404       {object}  map[string]any
// @Router       /ta/rest/v1/report/saved/{reportId} [get]
func (h *ReportHandler) Saved(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	reportID := c.Param("reportId")
	rep, err := h.resources.Report(c.Request().Context(), p.TenantID, reportID)
	if err != nil {
		return err
	}

	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), "text/csv") {
		body, err := encodeCSV(rep.Columns, rep.Records)
		if err != nil {
			return fmt.Errorf("encode report %s: %w", reportID, err)
		}
		metrics.ReportsServedTotal.WithLabelValues(reportID, "csv").Inc()
		return c.Blob(http.StatusOK, "text/csv; charset=utf-8", body)
	}

	metrics.ReportsServedTotal.WithLabelValues(reportID, "json").Inc()
	return c.JSON(http.StatusOK, reportResponse{ReportID: rep.ID, ReportName: rep.Name, Data: rep.Data})
}

// encodeCSV writes the header row followed by the records, quoting as needed.
func encodeCSV(header []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
