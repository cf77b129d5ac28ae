package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription links a subscriber to a channel (both User rows). At most
// one row per (subscriber, channel) pair.
type Subscription struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	SubscriberID string    `gorm:"type:uuid;not null;uniqueIndex:uq_subscriber_channel;index:idx_subscriptions_subscriber" json:"subscriber_id"`
	ChannelID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_subscriber_channel;index:idx_subscriptions_channel" json:"channel_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (Subscription) TableName() string {
	return "subscriptions"
}
