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

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register POST /api/v1/auth/register
// Multipart form: userName, email, fullName, password, avatar (file,
// required), coverImage (file, optional).
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	avatarHeader, err := c.FormFile("avatar")
	if err != nil {
		response.BadRequest(c, "avatar file is required")
		return
	}

	avatar, closeAvatar, err := openUpload(avatarHeader)
	if err != nil {
		response.InternalError(c, "failed to open avatar file")
		return
	}
	defer closeAvatar()

	cover, closeCover, err := optionalUpload(c, "coverImage")
	if err != nil {
		response.InternalError(c, "failed to open cover image file")
		return
	}
	defer closeCover()

	info, err := h.authService.Register(c.Request.Context(), &req, avatar, cover)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Created(c, "user registered", info)
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	data, err := h.authService.Login(&req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "login successful", data)
}

// Refresh POST /api/v1/auth/refresh
// The token comes from the JSON body or, failing that, the
// refreshToken cookie.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := refreshTokenFrom(c)
	if token == "" {
		response.BadRequest(c, "refresh token is required")
		return
	}

	data, err := h.authService.Refresh(c.Request.Context(), token)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "token refreshed", data)
}

// Logout POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.authService.Logout(c.Request.Context(), currentUserID, refreshTokenFrom(c)); err != nil {
		logger.Error("Logout failed", zap.Error(err))
		response.InternalError(c, "logout failed")
		return
	}

	response.OK(c, "logged out", nil)
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.authService.GetCurrentUser(currentUserID)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "current user fetched", info)
}

// ChangePassword POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.authService.ChangePassword(currentUserID, &req); err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "password changed", nil)
}

// refreshTokenFrom reads the refresh token from the JSON body, falling
// back to the refreshToken cookie.
func refreshTokenFrom(c *gin.Context) string {
	var req dto.RefreshRequest
	_ = c.ShouldBindJSON(&req)
	if req.RefreshToken != "" {
		return req.RefreshToken
	}
	if cookie, err := c.Cookie("refreshToken"); err == nil {
		return cookie
	}
	return ""
}

func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNameTaken),
		errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrAvatarRequired):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredential),
		errors.Is(err, service.ErrInvalidRefreshToken):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrWrongPassword):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Auth operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
