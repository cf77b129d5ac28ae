package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create inserts a new playlist.
func (r *PlaylistRepository) Create(playlist *model.Playlist) error {
	return r.db.Create(playlist).Error
}

// GetByID loads a playlist with its member videos and their owners.
func (r *PlaylistRepository) GetByID(id string) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("playlist_videos.added_at ASC")
	}).Preload("Videos.Video.Owner").Where("id = ?", id).First(&playlist).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// ListByOwner returns a user's playlists, newest first.
func (r *PlaylistRepository) ListByOwner(ownerID string) ([]model.Playlist, error) {
	var playlists []model.Playlist
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").Find(&playlists).Error
	return playlists, err
}

// AddVideo adds a video once; re-adding an existing member is reported
// as already present.
func (r *PlaylistRepository) AddVideo(playlistID, videoID string) (bool, error) {
	row := &model.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "playlist_id"}, {Name: "video_id"}},
		DoNothing: true,
	}).Create(row)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RemoveVideo drops a video from a playlist.
func (r *PlaylistRepository) RemoveVideo(playlistID, videoID string) (bool, error) {
	result := r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a playlist and its membership rows, owner only.
func (r *PlaylistRepository) Delete(playlistID, ownerID string) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND owner_id = ?", playlistID, ownerID).Delete(&model.Playlist{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("playlist_id = ?", playlistID).Delete(&model.PlaylistVideo{}).Error
	})
	return deleted, err
}
