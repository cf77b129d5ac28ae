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

// Upload size caps.
const (
	maxVideoSize     = int64(500 * 1024 * 1024)
	maxThumbnailSize = int64(10 * 1024 * 1024)
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Upload POST /api/v1/videos
// Multipart form: title, description, isPublished, duration, tag
// (repeatable), videoFile (file), thumbnail (file).
func (h *VideoHandler) Upload(c *gin.Context) {
	var req dto.VideoUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	videoHeader, err := c.FormFile("videoFile")
	if err != nil {
		response.BadRequest(c, "video file is required")
		return
	}
	if videoHeader.Size == 0 || videoHeader.Size > maxVideoSize {
		response.BadRequest(c, "video file size is invalid (max 500MB)")
		return
	}

	thumbHeader, err := c.FormFile("thumbnail")
	if err != nil {
		response.BadRequest(c, "thumbnail file is required")
		return
	}
	if thumbHeader.Size == 0 || thumbHeader.Size > maxThumbnailSize {
		response.BadRequest(c, "thumbnail size is invalid (max 10MB)")
		return
	}

	videoFile, closeVideo, err := openUpload(videoHeader)
	if err != nil {
		response.InternalError(c, "failed to open video file")
		return
	}
	defer closeVideo()

	thumbnail, closeThumb, err := openUpload(thumbHeader)
	if err != nil {
		response.InternalError(c, "failed to open thumbnail file")
		return
	}
	defer closeThumb()

	currentUserID, _ := middleware.GetCurrentUserID(c)

	summary, err := h.videoService.Upload(c.Request.Context(), currentUserID, &req, videoFile, thumbnail)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.Created(c, "video uploaded", summary)
}

// Feed GET /api/v1/videos
func (h *VideoHandler) Feed(c *gin.Context) {
	page, pageSize := parsePagination(c)

	data, err := h.videoService.Feed(page, pageSize)
	if err != nil {
		logger.Error("Get video feed failed", zap.Error(err))
		response.InternalError(c, "failed to fetch video feed")
		return
	}

	response.OK(c, "video feed fetched", data)
}

// GetDetail GET /api/v1/videos/:id
// Public; an authenticated viewer gets viewer-relative flags and a
// watch-history record.
func (h *VideoHandler) GetDetail(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	viewerID, _ := middleware.GetCurrentUserID(c)

	detail, err := h.videoService.GetDetail(videoID, viewerID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "video detail fetched", detail)
}

// Update PATCH /api/v1/videos/:id
func (h *VideoHandler) Update(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.VideoUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	thumbnail, closeThumb, err := optionalUpload(c, "thumbnail")
	if err != nil {
		response.InternalError(c, "failed to open thumbnail file")
		return
	}
	defer closeThumb()

	currentUserID, _ := middleware.GetCurrentUserID(c)

	summary, err := h.videoService.Update(c.Request.Context(), currentUserID, videoID, &req, thumbnail)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "video updated", summary)
}

// TogglePublish PATCH /api/v1/videos/:id/toggle-publish
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	currentUserID, _ := middleware.GetCurrentUserID(c)

	published, err := h.videoService.TogglePublish(c.Request.Context(), currentUserID, videoID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "publish state toggled", gin.H{"isPublished": published})
}

// Delete DELETE /api/v1/videos/:id
func (h *VideoHandler) Delete(c *gin.Context) {
	videoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.videoService.Delete(c.Request.Context(), currentUserID, videoID); err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "video deleted", nil)
}

func handleVideoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrVideoFileRequired),
		errors.Is(err, service.ErrThumbnailRequired):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Video operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
