package api

import (
	"alcyxob/workout-tracker/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ReportHandler serves the /reports route.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GenerateReport builds the aggregate workout report for the caller.
// Query params: startDate, endDate (RFC 3339 or YYYY-MM-DD), category,
// muscleGroup.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	filter := service.ReportFilter{
		Category:    c.Query("category"),
		MuscleGroup: c.Query("muscleGroup"),
	}

	if raw := c.Query("startDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid startDate")
			return
		}
		filter.StartDate = &t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid endDate")
			return
		}
		filter.EndDate = &t
	}

	report, err := h.reportService.GenerateReport(c.Request.Context(), userID, filter)
	if err != nil {
		logrus.WithError(err).Error("generate report failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, report)
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
