package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Toggle flips the (subscriber, channel) subscription with a conditional
// insert on the unique pair, removing it when it already exists. Returns
// whether the subscription exists after the call.
func (r *SubscriptionRepository) Toggle(subscriberID, channelID string) (bool, error) {
	sub := &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subscriber_id"}, {Name: "channel_id"}},
		DoNothing: true,
	}).Create(sub)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}
	err := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{}).Error
	return false, err
}

// Exists reports whether the subscriber follows the channel.
func (r *SubscriptionRepository) Exists(subscriberID, channelID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

// CountByChannel counts a channel's subscribers.
func (r *SubscriptionRepository) CountByChannel(channelID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

// CountByChannels batch-counts subscribers for a set of channels.
func (r *SubscriptionRepository) CountByChannels(channelIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(channelIDs))
	if len(channelIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ChannelID string
		N         int64
	}
	err := r.db.Model(&model.Subscription{}).
		Select("channel_id, COUNT(*) AS n").
		Where("channel_id IN ?", channelIDs).
		Group("channel_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ChannelID] = row.N
	}
	return counts, nil
}

// ListBySubscriber returns a user's subscriptions in insertion order.
func (r *SubscriptionRepository) ListBySubscriber(subscriberID string) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.Where("subscriber_id = ?", subscriberID).
		Order("created_at ASC").Find(&subs).Error
	return subs, err
}
