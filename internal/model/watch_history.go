package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WatchHistory is a recency set: one row per (user, video), WatchedAt
// bumped on every re-watch so ordering by it yields most-recent first.
type WatchHistory struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_history_user_video;index:idx_history_user_id" json:"user_id"`
	VideoID   string    `gorm:"type:uuid;not null;uniqueIndex:uq_history_user_video" json:"video_id"`
	WatchedAt time.Time `gorm:"not null;index:idx_history_watched_at" json:"watched_at"`

	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (w *WatchHistory) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

func (WatchHistory) TableName() string {
	return "watch_histories"
}
