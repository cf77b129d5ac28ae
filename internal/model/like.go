package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like targets exactly one of a video or a comment; the service layer
// enforces the exclusive-or, the composite unique indexes enforce at most
// one like per (liker, target) pair. Rows for the other target kind carry
// NULL in the unused column, which both Postgres and SQLite keep out of
// the unique constraint.
type Like struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	VideoID   *string   `gorm:"type:uuid;uniqueIndex:uq_like_video_user;index:idx_likes_video_id" json:"video_id"`
	CommentID *string   `gorm:"type:uuid;uniqueIndex:uq_like_comment_user;index:idx_likes_comment_id" json:"comment_id"`
	LikedBy   string    `gorm:"type:uuid;not null;uniqueIndex:uq_like_video_user;uniqueIndex:uq_like_comment_user;index:idx_likes_liked_by" json:"liked_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

func (Like) TableName() string {
	return "likes"
}
