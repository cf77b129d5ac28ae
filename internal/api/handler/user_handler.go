package handler

import (
	"context"
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateAccount PATCH /api/v1/users/me
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req dto.AccountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.userService.UpdateAccount(currentUserID, &req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "account updated", info)
}

// UpdateAvatar PATCH /api/v1/users/me/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", h.userService.UpdateAvatar)
}

// UpdateCoverImage PATCH /api/v1/users/me/cover-image
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	h.updateImage(c, "coverImage", h.userService.UpdateCoverImage)
}

func (h *UserHandler) updateImage(
	c *gin.Context,
	field string,
	update func(ctx context.Context, userID string, file *service.FileUpload) (*dto.UserInfo, error),
) {
	header, err := c.FormFile(field)
	if err != nil {
		response.BadRequest(c, field+" file is required")
		return
	}

	file, closeFile, err := openUpload(header)
	if err != nil {
		response.InternalError(c, "failed to open uploaded file")
		return
	}
	defer closeFile()

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := update(c.Request.Context(), currentUserID, file)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, field+" updated", info)
}

// GetChannelProfile GET /api/v1/users/c/:userName
// Public; an authenticated viewer additionally gets their subscription
// state.
func (h *UserHandler) GetChannelProfile(c *gin.Context) {
	handle := c.Param("userName")
	viewerID, _ := middleware.GetCurrentUserID(c)

	profile, err := h.userService.GetChannelProfile(handle, viewerID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "channel profile fetched", profile)
}

// GetChannelVideos GET /api/v1/users/c/:userName/videos
func (h *UserHandler) GetChannelVideos(c *gin.Context) {
	handle := c.Param("userName")

	videos, err := h.userService.GetChannelVideos(handle)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "channel videos fetched", videos)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrChannelNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, err.Error())
	default:
		logger.Error("User operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
