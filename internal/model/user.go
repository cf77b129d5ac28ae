package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account holder; the same row acts as a channel when other
// users subscribe to it.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserName     string    `gorm:"size:255;not null;uniqueIndex" json:"user_name"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FullName     string    `gorm:"size:255;not null" json:"full_name"`
	Avatar       string    `gorm:"size:500;not null;default:''" json:"avatar"`
	CoverImage   string    `gorm:"size:500;not null;default:''" json:"cover_image"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	RefreshToken string    `gorm:"size:1000;not null;default:''" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Videos   []Video   `gorm:"foreignKey:OwnerID" json:"videos,omitempty"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}
