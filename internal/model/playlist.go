package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Playlist is a named, owner-scoped collection of videos.
type Playlist struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     string    `gorm:"type:uuid;not null;index:idx_playlists_owner_id" json:"owner_id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Videos []PlaylistVideo `gorm:"foreignKey:PlaylistID" json:"videos,omitempty"`
}

func (p *Playlist) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo is a membership row; a video appears at most once per
// playlist.
type PlaylistVideo struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	PlaylistID string    `gorm:"type:uuid;not null;uniqueIndex:uq_playlist_video;index:idx_playlist_videos_playlist" json:"playlist_id"`
	VideoID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_playlist_video" json:"video_id"`
	AddedAt    time.Time `gorm:"autoCreateTime" json:"added_at"`

	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (pv *PlaylistVideo) BeforeCreate(tx *gorm.DB) error {
	if pv.ID == "" {
		pv.ID = uuid.NewString()
	}
	return nil
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
