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

type SubscriptionHandler struct {
	subService *service.SubscriptionService
}

func NewSubscriptionHandler(subService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subService: subService}
}

// Toggle POST /api/v1/subscriptions/channel/:channel_id
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}
	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.subService.Toggle(currentUserID, channelID)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "subscription toggled", data)
}

// SubscriberCount GET /api/v1/subscriptions/channel/:channel_id/count
func (h *SubscriptionHandler) SubscriberCount(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}

	count, err := h.subService.SubscriberCount(channelID)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "subscriber count fetched", gin.H{"totalSubscribers": count})
}

// ListSubscribed GET /api/v1/subscriptions/my
func (h *SubscriptionHandler) ListSubscribed(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	channels, err := h.subService.ListSubscribed(currentUserID)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "subscribed channels fetched", channels)
}

func handleSubscriptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrChannelNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrSelfSubscription):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Subscription operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
