package handlers

import (
	"net/http"

	"marketecho/models"
	"marketecho/services"
	"marketecho/version"

	"github.com/gin-gonic/gin"
)

const ServiceName = "marketecho-api"

// ServiceHandler serves the service-level endpoints
type ServiceHandler struct {
	dataset *services.DatasetService
}

func NewServiceHandler(dataset *services.DatasetService) *ServiceHandler {
	return &ServiceHandler{dataset: dataset}
}

// RootHandler describes the API
func (h *ServiceHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "MarketEcho API",
		"version": version.BuildVersion,
	})
}

// HealthHandler handles health check requests. A failed dataset load is
// reported as degraded; the service keeps serving.
func (h *ServiceHandler) HealthHandler(c *gin.Context) {
	response := models.HealthResponse{
		Status:  "healthy",
		Message: "MarketEcho API is running",
		Service: ServiceName,
		Brands:  h.dataset.Len(),
	}
	if err := h.dataset.LoadErr(); err != nil {
		response.Status = "degraded"
		response.Message = "brand dataset unavailable"
	}
	c.JSON(http.StatusOK, response)
}

// VersionHandler returns build information
func (h *ServiceHandler) VersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get(ServiceName))
}

// DashboardHandler serves dataset-wide aggregates
type DashboardHandler struct {
	overviewService *services.OverviewService
}

func NewDashboardHandler(overviewService *services.OverviewService) *DashboardHandler {
	return &DashboardHandler{overviewService: overviewService}
}

// OverviewHandler returns the dashboard overview
func (h *DashboardHandler) OverviewHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.overviewService.Overview())
}
