package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tokoku/go-storefront-api/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Stats(c.Request.Context()))
}

func (h *DashboardHandler) Chart(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Chart(c.Request.Context()))
}
