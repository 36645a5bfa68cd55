package controllers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"tidsreg-be/internal/export"
	"tidsreg-be/internal/service"
)

const (
	msgExportCSVFailed     = "Eksport CSV fejlede"
	msgExportXLSXFailed    = "Eksport Excel fejlede"
	msgExportSummaryFailed = "Eksport summary Excel fejlede"
)

// ReportController serves the summary and the file exports. Every handler
// reads the same row-sets as the JSON endpoints.
type ReportController struct {
	timeEntryService service.TimeEntryService
}

func NewReportController(timeEntryService service.TimeEntryService) *ReportController {
	return &ReportController{timeEntryService: timeEntryService}
}

// Summary handles GET /api/summary
func (rc *ReportController) Summary(c *gin.Context) {
	dr, ok := bindRange(c)
	if !ok {
		return
	}

	summary, err := rc.timeEntryService.Summary(c.Request.Context(), dr)
	if err != nil {
		respondError(c, err, msgDBError)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportCSV handles GET /api/export.csv
func (rc *ReportController) ExportCSV(c *gin.Context) {
	dr, ok := bindRange(c)
	if !ok {
		return
	}

	entries, err := rc.timeEntryService.List(c.Request.Context(), dr)
	if err != nil {
		respondError(c, err, msgExportCSVFailed)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteEntriesCSV(&buf, entries); err != nil {
		respondError(c, err, msgExportCSVFailed)
		return
	}
	attachment(c, export.CSVContentType, export.CSVFilename, buf.Bytes())
}

// ExportXLSX handles GET /api/export.xlsx
func (rc *ReportController) ExportXLSX(c *gin.Context) {
	dr, ok := bindRange(c)
	if !ok {
		return
	}

	entries, err := rc.timeEntryService.List(c.Request.Context(), dr)
	if err != nil {
		respondError(c, err, msgExportXLSXFailed)
		return
	}

	data, err := export.EntriesXLSX(entries)
	if err != nil {
		respondError(c, err, msgExportXLSXFailed)
		return
	}
	attachment(c, export.XLSXContentType, export.EntriesXLSXFilename, data)
}

// ExportSummaryXLSX handles GET /api/export-summary.xlsx
func (rc *ReportController) ExportSummaryXLSX(c *gin.Context) {
	dr, ok := bindRange(c)
	if !ok {
		return
	}

	summary, err := rc.timeEntryService.Summary(c.Request.Context(), dr)
	if err != nil {
		respondError(c, err, msgExportSummaryFailed)
		return
	}

	data, err := export.SummaryXLSX(summary)
	if err != nil {
		respondError(c, err, msgExportSummaryFailed)
		return
	}
	attachment(c, export.XLSXContentType, export.SummaryXLSXFilename, data)
}
