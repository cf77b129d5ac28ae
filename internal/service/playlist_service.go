package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrPlaylistNotFound     = errors.New("playlist does not exist")
	ErrPlaylistNoPermission = errors.New("no permission to operate on this playlist")
	ErrVideoAlreadyInList   = errors.New("video is already in this playlist")
	ErrVideoNotInList       = errors.New("video is not in this playlist")
)

type PlaylistService struct {
	playlistRepo *repository.PlaylistRepository
	videoRepo    *repository.VideoRepository
}

func NewPlaylistService(playlistRepo *repository.PlaylistRepository, videoRepo *repository.VideoRepository) *PlaylistService {
	return &PlaylistService{playlistRepo: playlistRepo, videoRepo: videoRepo}
}

// Create makes an empty playlist for the owner.
func (s *PlaylistService) Create(ownerID string, req *dto.PlaylistCreateRequest) (*dto.PlaylistSummary, error) {
	playlist := &model.Playlist{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.playlistRepo.Create(playlist); err != nil {
		return nil, err
	}

	summary := toPlaylistSummary(playlist)
	return &summary, nil
}

// Get returns a playlist with its videos in insertion order.
func (s *PlaylistService) Get(playlistID string) (*dto.PlaylistDetail, error) {
	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}

	videos := make([]dto.PlaylistVideoEntry, 0, len(playlist.Videos))
	for i := range playlist.Videos {
		videos = append(videos, dto.PlaylistVideoEntry{
			VideoSummary: toVideoSummary(&playlist.Videos[i].Video),
			AddedAt:      playlist.Videos[i].AddedAt,
		})
	}

	return &dto.PlaylistDetail{
		PlaylistSummary: toPlaylistSummary(playlist),
		Videos:          videos,
	}, nil
}

// ListByOwner returns a user's playlists, newest first.
func (s *PlaylistService) ListByOwner(ownerID string) ([]dto.PlaylistSummary, error) {
	playlists, err := s.playlistRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PlaylistSummary, 0, len(playlists))
	for i := range playlists {
		out = append(out, toPlaylistSummary(&playlists[i]))
	}
	return out, nil
}

// AddVideo puts a video into the caller's playlist; duplicates are
// rejected.
func (s *PlaylistService) AddVideo(ownerID, playlistID, videoID string) error {
	if err := s.ownedPlaylist(playlistID, ownerID); err != nil {
		return err
	}

	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	added, err := s.playlistRepo.AddVideo(playlistID, videoID)
	if err != nil {
		return err
	}
	if !added {
		return ErrVideoAlreadyInList
	}
	return nil
}

// RemoveVideo takes a video out of the caller's playlist.
func (s *PlaylistService) RemoveVideo(ownerID, playlistID, videoID string) error {
	if err := s.ownedPlaylist(playlistID, ownerID); err != nil {
		return err
	}

	removed, err := s.playlistRepo.RemoveVideo(playlistID, videoID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrVideoNotInList
	}
	return nil
}

// Delete removes the caller's playlist with its membership rows.
func (s *PlaylistService) Delete(ownerID, playlistID string) error {
	if err := s.ownedPlaylist(playlistID, ownerID); err != nil {
		return err
	}

	deleted, err := s.playlistRepo.Delete(playlistID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPlaylistNotFound
	}
	return nil
}

func (s *PlaylistService) ownedPlaylist(playlistID, ownerID string) error {
	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlaylistNotFound
		}
		return err
	}
	if playlist.OwnerID != ownerID {
		return ErrPlaylistNoPermission
	}
	return nil
}

func toPlaylistSummary(playlist *model.Playlist) dto.PlaylistSummary {
	return dto.PlaylistSummary{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		OwnerID:     playlist.OwnerID,
		CreatedAt:   playlist.CreatedAt,
	}
}
