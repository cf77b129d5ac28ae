package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video carries the stored entity fields. Views is the only stored derived
// counter; like and comment counts are computed from their collections at
// query time.
type Video struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     string    `gorm:"type:uuid;not null;index:idx_videos_owner_id" json:"owner_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	VideoFile   string    `gorm:"size:500;not null" json:"video_file"`
	Thumbnail   string    `gorm:"size:500;not null" json:"thumbnail"`
	Duration    int       `gorm:"not null;default:0" json:"duration"`
	Views       int64     `gorm:"not null;default:0" json:"views"`
	IsPublished bool      `gorm:"not null;default:true;index:idx_videos_is_published" json:"is_published"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_videos_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Owner    User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Comments []Comment `gorm:"foreignKey:VideoID" json:"comments,omitempty"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

func (Video) TableName() string {
	return "videos"
}
