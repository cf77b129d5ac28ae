package repository

import (
	"time"

	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record upserts a watch entry: re-watching bumps the existing row to the
// most-recent position instead of inserting a duplicate, then the
// history is pruned down to maxEntries (oldest dropped first).
func (r *HistoryRepository) Record(userID, videoID string, at time.Time, maxEntries int) error {
	entry := &model.WatchHistory{UserID: userID, VideoID: videoID, WatchedAt: at}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"watched_at": at}),
	}).Create(entry).Error
	if err != nil {
		return err
	}

	return r.db.Where("user_id = ? AND id NOT IN (?)",
		userID,
		r.db.Model(&model.WatchHistory{}).Select("id").
			Where("user_id = ?", userID).
			Order("watched_at DESC").Limit(maxEntries),
	).Delete(&model.WatchHistory{}).Error
}

func (r *HistoryRepository) CountByUser(userID string) (int64, error) {
	var n int64
	err := r.db.Model(&model.WatchHistory{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// ListByUser returns the user's history, most recently watched first,
// each entry joined with the video and its owner.
func (r *HistoryRepository) ListByUser(userID string) ([]model.WatchHistory, error) {
	var entries []model.WatchHistory
	err := r.db.Preload("Video.Owner").Where("user_id = ?", userID).
		Order("watched_at DESC").Find(&entries).Error
	return entries, err
}
