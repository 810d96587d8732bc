package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hospitaldms/duty_scheduler/internal/core/ports/services"
	"github.com/hospitaldms/duty_scheduler/internal/dto"
	"github.com/hospitaldms/duty_scheduler/internal/middleware"
)

// orgHandler serves the seeded buildings and departments.
type orgHandler struct {
	orgService portssvc.OrgUnitSvc
}

func newOrgHandler(os portssvc.OrgUnitSvc) *orgHandler {
	return &orgHandler{
		orgService: os,
	}
}

// registerOrgRoutes registers the organizational-unit routes.
func registerOrgRoutes(rg *gin.RouterGroup, orgService portssvc.OrgUnitSvc) {
	h := newOrgHandler(orgService)

	rg.GET("/departments", h.listDepartments)
	rg.GET("/buildings", h.listBuildings)
}

func (h *orgHandler) listDepartments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	departments, err := h.orgService.ListDepartments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list departments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list departments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDepartmentsResponse(departments))
}

func (h *orgHandler) listBuildings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	buildings, err := h.orgService.ListBuildings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list buildings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list buildings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBuildingsResponse(buildings))
}
