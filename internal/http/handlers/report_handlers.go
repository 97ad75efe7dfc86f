package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// ReportHandlers handles monthly report HTTP requests
type ReportHandlers struct {
	reportSvc domain.ReportService
}

// NewReportHandlers creates new report handlers
func NewReportHandlers(reportSvc domain.ReportService) *ReportHandlers {
	return &ReportHandlers{reportSvc: reportSvc}
}

func (h *ReportHandlers) monthYear(c *gin.Context) (int, int, bool) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
		return 0, 0, false
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a four-digit year"})
		return 0, 0, false
	}
	return month, year, true
}

// Monthly returns the per-user, per-day matrix as JSON
func (h *ReportHandlers) Monthly(c *gin.Context) {
	month, year, ok := h.monthYear(c)
	if !ok {
		return
	}

	report, err := h.reportSvc.BuildMonthlyMatrix(c.Request.Context(), month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	rows := make([]gin.H, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, gin.H{
			"user_id":   row.UserID,
			"name":      row.Name,
			"joined_on": row.JoinedOn,
			"role":      row.Role,
			"cells":     row.Cells,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"month": report.Month,
		"year":  report.Year,
		"days":  report.Days,
		"rows":  rows,
	}})
}

// MonthlyCSV streams the matrix as a CSV attachment
func (h *ReportHandlers) MonthlyCSV(c *gin.Context) {
	month, year, ok := h.monthYear(c)
	if !ok {
		return
	}

	report, err := h.reportSvc.BuildMonthlyMatrix(c.Request.Context(), month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	filename := fmt.Sprintf("attendance-%d-%02d.csv", year, month)
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := h.reportSvc.WriteCSV(c.Writer, report); err != nil {
		// Headers are already out; nothing sensible to send beyond aborting.
		c.Abort()
	}
}
