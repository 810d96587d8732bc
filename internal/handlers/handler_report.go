package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
	portssvc "github.com/hospitaldms/duty_scheduler/internal/core/ports/services"
	"github.com/hospitaldms/duty_scheduler/internal/dto"
	"github.com/hospitaldms/duty_scheduler/internal/middleware"
)

// reportHandler serves downloadable schedule exports.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

// registerReportRoutes registers the report export routes. Admin only.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/schedule/report", middleware.RequireAdmin())
	{
		reports.GET("/pdf", h.getMonthPDF)
		reports.GET("/xlsx", h.getMonthXLSX)
	}
}

func (h *reportHandler) getMonthPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query parameters are required"})
		return
	}

	pdfBytes, err := h.reportService.BuildMonthPDF(c.Request.Context(), params.Year, params.Month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
			return
		}
		logger.Error("Failed to build PDF report", slog.Int("year", params.Year), slog.Int("month", params.Month), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	filename := reportFilename(params.Year, params.Month, "pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *reportHandler) getMonthXLSX(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query parameters are required"})
		return
	}

	xlsxBytes, err := h.reportService.BuildMonthXLSX(c.Request.Context(), params.Year, params.Month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
			return
		}
		logger.Error("Failed to build XLSX report", slog.Int("year", params.Year), slog.Int("month", params.Month), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	filename := reportFilename(params.Year, params.Month, "xlsx")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsxBytes)
}

func reportFilename(year, month int, ext string) string {
	return fmt.Sprintf("duty_schedule_%s_%d.%s", time.Month(month).String(), year, ext)
}
