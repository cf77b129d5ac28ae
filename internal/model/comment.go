package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a top-level comment on a video. The composite unique index
// enforces one comment per author per video; there is no reply threading.
type Comment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	VideoID   string    `gorm:"type:uuid;not null;uniqueIndex:uq_comment_video_user;index:idx_comments_video_id" json:"video_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_comment_video_user;index:idx_comments_user_id" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_comments_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (Comment) TableName() string {
	return "comments"
}
