package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
	portssvc "github.com/hospitaldms/duty_scheduler/internal/core/ports/services"
	"github.com/hospitaldms/duty_scheduler/internal/dto"
	"github.com/hospitaldms/duty_scheduler/internal/middleware"
)

// scheduleHandler serves the month-level schedule views.
type scheduleHandler struct {
	scheduleService portssvc.ScheduleReaderSvc
}

func newScheduleHandler(ss portssvc.ScheduleReaderSvc) *scheduleHandler {
	return &scheduleHandler{
		scheduleService: ss,
	}
}

// registerScheduleRoutes registers the month view routes.
func registerScheduleRoutes(rg *gin.RouterGroup, scheduleService portssvc.ScheduleReaderSvc) {
	h := newScheduleHandler(scheduleService)

	schedule := rg.Group("/schedule")
	{
		schedule.GET("/month", h.getMonthSchedule)
		schedule.GET("/grid", h.getMonthGrid)
	}
}

// getMonthSchedule returns the DD.MM.YYYY keyed aggregation of a month.
func (h *scheduleHandler) getMonthSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query parameters are required"})
		return
	}
	if params.Month < 1 || params.Month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
		return
	}

	anchor := time.Date(params.Year, time.Month(params.Month), 1, 0, 0, 0, 0, time.UTC)
	schedule, err := h.scheduleService.GetMonthSchedule(c.Request.Context(), anchor)
	if err != nil {
		logger.Error("Failed to get month schedule", slog.Int("year", params.Year), slog.Int("month", params.Month), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get month schedule"})
		return
	}

	c.JSON(http.StatusOK, dto.MonthScheduleResponse{
		Year:     params.Year,
		Month:    params.Month,
		Schedule: schedule,
	})
}

// getMonthGrid returns the week-aligned month view.
func (h *scheduleHandler) getMonthGrid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query parameters are required"})
		return
	}

	grid, err := h.scheduleService.MonthGrid(c.Request.Context(), params.Year, params.Month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
			return
		}
		logger.Error("Failed to compute month grid", slog.Int("year", params.Year), slog.Int("month", params.Month), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute month grid"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthGridResponse(grid))
}
