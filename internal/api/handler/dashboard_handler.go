package handler

import (
	"errors"

	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	stats, err := h.dashboardService.Stats(currentUserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Get channel stats failed", zap.Error(err))
		response.InternalError(c, "failed to fetch channel stats")
		return
	}

	response.OK(c, "channel stats fetched", stats)
}

// Videos GET /api/v1/dashboard/videos
func (h *DashboardHandler) Videos(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	videos, err := h.dashboardService.Videos(currentUserID)
	if err != nil {
		logger.Error("Get dashboard videos failed", zap.Error(err))
		response.InternalError(c, "failed to fetch channel videos")
		return
	}

	response.OK(c, "channel videos fetched", videos)
}
