package handler

import (
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HistoryHandler struct {
	historyService *service.HistoryService
}

func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// List GET /api/v1/history
func (h *HistoryHandler) List(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	entries, err := h.historyService.List(currentUserID)
	if err != nil {
		logger.Error("Get watch history failed", zap.Error(err))
		response.InternalError(c, "failed to fetch watch history")
		return
	}

	response.OK(c, "watch history fetched", entries)
}
