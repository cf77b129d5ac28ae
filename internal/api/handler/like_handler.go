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

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleVideo POST /api/v1/likes/video/:video_id
func (h *LikeHandler) ToggleVideo(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}
	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.likeService.ToggleVideo(currentUserID, videoID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "video like toggled", data)
}

// ToggleComment POST /api/v1/likes/comment/:comment_id
func (h *LikeHandler) ToggleComment(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.likeService.ToggleComment(currentUserID, commentID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "comment like toggled", data)
}

// LikedVideos GET /api/v1/likes/videos
func (h *LikeHandler) LikedVideos(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	videos, err := h.likeService.LikedVideos(currentUserID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "liked videos fetched", videos)
}

func handleLikeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Like operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
