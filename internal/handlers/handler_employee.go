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

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
	}
}

// registerEmployeeRoutes registers all employee-related routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.GET("/available", h.listAvailableEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.POST("", middleware.RequireAdmin(), h.createEmployee)
	}
}

// listEmployees returns every employee with department name and duty count.
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list employees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

// getEmployee returns the employee card for a single employee.
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	details, err := h.employeeService.GetEmployeeDetails(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		logger.Error("Failed to get employee details", slog.Int64("employee_id", employeeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employee"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDetailsResponse(details))
}

// listAvailableEmployees returns employees without a duty shift on the date.
func (h *employeeHandler) listAvailableEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AvailableEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected YYYY-MM-DD"})
		return
	}
	date, _ := time.Parse(dto.WireDateFormat, params.Date)

	refs, err := h.employeeService.ListAvailableEmployees(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to list available employees", slog.String("date", params.Date), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list available employees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailableEmployeesResponse(params.Date, refs))
}

// createEmployee adds a new employee. Admin only.
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, position and department are required"})
		case errors.Is(err, apperrors.ErrDepartmentNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Department not found"})
		default:
			logger.Error("Failed to create employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		}
		return
	}

	logger.Info("Employee created", slog.Int64("employee_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(created))
}
