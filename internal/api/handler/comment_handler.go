package handler

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListByVideo GET /api/v1/comments/video/:video_id
// Public; an authenticated viewer gets their own comment first and the
// viewer-relative flags set.
func (h *CommentHandler) ListByVideo(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}
	viewerID, _ := middleware.GetCurrentUserID(c)

	views, err := h.commentService.ListByVideo(videoID, viewerID)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "comments fetched", views)
}

// Create POST /api/v1/comments/video/:video_id
func (h *CommentHandler) Create(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	view, err := h.commentService.Create(currentUserID, videoID, req.Content)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.Created(c, "comment posted", view)
}

// Update PATCH /api/v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	view, err := h.commentService.Update(currentUserID, commentID, req.NewContent)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "comment updated", view)
}

// Delete DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.commentService.Delete(currentUserID, commentID); err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "comment deleted", nil)
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyCommented):
		response.Conflict(c, err.Error())
	default:
		logger.Error("Comment operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
