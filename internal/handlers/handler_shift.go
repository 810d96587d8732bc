package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
	portssvc "github.com/hospitaldms/duty_scheduler/internal/core/ports/services"
	"github.com/hospitaldms/duty_scheduler/internal/dto"
	"github.com/hospitaldms/duty_scheduler/internal/middleware"
)

// shiftHandler handles HTTP requests for individual duty assignments.
type shiftHandler struct {
	scheduleService portssvc.ScheduleSvcFacade
}

func newShiftHandler(ss portssvc.ScheduleSvcFacade) *shiftHandler {
	return &shiftHandler{
		scheduleService: ss,
	}
}

// registerShiftRoutes registers all shift-assignment routes.
func registerShiftRoutes(rg *gin.RouterGroup, scheduleService portssvc.ScheduleSvcFacade) {
	h := newShiftHandler(scheduleService)

	shifts := rg.Group("/shifts")
	{
		shifts.GET("", h.listShifts)
		shifts.POST("", middleware.RequireAdmin(), h.addShift)
		shifts.DELETE("/:id", middleware.RequireAdmin(), h.removeShift)
	}
}

// listShifts returns the duty roster of a single date.
func (h *shiftHandler) listShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ShiftDateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected YYYY-MM-DD"})
		return
	}
	date, _ := time.Parse(dto.WireDateFormat, params.Date)

	entries, err := h.scheduleService.ListShiftsForDate(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to list shifts", slog.String("date", params.Date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shifts"})
		return
	}

	c.JSON(http.StatusOK, dto.ListShiftsResponse{
		Date:   params.Date,
		Shifts: dto.ToShiftResponses(entries),
	})
}

// addShift assigns an employee to duty on a date. Admin only.
func (h *shiftHandler) addShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	date, _ := time.Parse(dto.WireDateFormat, req.Date)

	shiftID, err := h.scheduleService.AddShift(c.Request.Context(), req.EmployeeID, date)
	if err != nil {
		logger.Error("Failed to add shift", slog.Int64("employee_id", req.EmployeeID), slog.String("date", req.Date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add shift"})
		return
	}

	logger.Info("Shift added", slog.Int64("shift_id", shiftID), slog.Int64("employee_id", req.EmployeeID), slog.String("date", req.Date))
	c.JSON(http.StatusCreated, dto.AddShiftResponse{ShiftID: shiftID})
}

// removeShift deletes a duty assignment by id. Admin only.
func (h *shiftHandler) removeShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	shiftID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift id"})
		return
	}

	if err := h.scheduleService.RemoveShift(c.Request.Context(), shiftID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
			return
		}
		logger.Error("Failed to remove shift", slog.Int64("shift_id", shiftID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove shift"})
		return
	}

	c.Status(http.StatusNoContent)
}
