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

type PlaylistHandler struct {
	playlistService *service.PlaylistService
}

func NewPlaylistHandler(playlistService *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// Create POST /api/v1/playlists
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req dto.PlaylistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	summary, err := h.playlistService.Create(currentUserID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.Created(c, "playlist created", summary)
}

// ListMine GET /api/v1/playlists/my
func (h *PlaylistHandler) ListMine(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	playlists, err := h.playlistService.ListByOwner(currentUserID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "playlists fetched", playlists)
}

// Get GET /api/v1/playlists/:id
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.playlistService.Get(playlistID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "playlist fetched", detail)
}

// AddVideo POST /api/v1/playlists/:id/videos/:video_id
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	playlistID, okPlaylist := pathID(c, "id")
	if !okPlaylist {
		return
	}
	videoID, okVideo := pathID(c, "video_id")
	if !okVideo {
		return
	}
	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.AddVideo(currentUserID, playlistID, videoID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "video added to playlist", nil)
}

// RemoveVideo DELETE /api/v1/playlists/:id/videos/:video_id
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	playlistID, okPlaylist := pathID(c, "id")
	if !okPlaylist {
		return
	}
	videoID, okVideo := pathID(c, "video_id")
	if !okVideo {
		return
	}
	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.RemoveVideo(currentUserID, playlistID, videoID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "video removed from playlist", nil)
}

// Delete DELETE /api/v1/playlists/:id
func (h *PlaylistHandler) Delete(c *gin.Context) {
	playlistID, ok := pathID(c, "id")
	if !ok {
		return
	}
	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.Delete(currentUserID, playlistID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "playlist deleted", nil)
}

func handlePlaylistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlaylistNotFound),
		errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrVideoNotInList):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrPlaylistNoPermission):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrVideoAlreadyInList):
		response.Conflict(c, err.Error())
	default:
		logger.Error("Playlist operation failed", zap.Error(err))
		response.InternalError(c, "operation failed, please try again later")
	}
}
