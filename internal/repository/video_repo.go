package repository

import (
	"strings"

	"vidtube/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// GetByID looks up a video by id.
func (r *VideoRepository) GetByID(id string) (*model.Video, error) {
	var video model.Video
	err := r.db.Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDWithOwner looks up a video by id with the owner row joined in.
func (r *VideoRepository) GetByIDWithOwner(id string) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("Owner").Where("id = ?", id).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDsWithOwner fetches a batch of videos with owners joined in.
// Result order is unspecified.
func (r *VideoRepository) GetByIDsWithOwner(ids []string) ([]model.Video, error) {
	if len(ids) == 0 {
		return []model.Video{}, nil
	}
	var videos []model.Video
	err := r.db.Preload("Owner").Where("id IN ?", ids).Find(&videos).Error
	return videos, err
}

// Create inserts a new video.
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// Update applies the given column updates to a video.
func (r *VideoRepository) Update(id string, updates map[string]interface{}) (*model.Video, error) {
	result := r.db.Model(&model.Video{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// IncrementViews bumps the view counter by one as a single atomic update.
func (r *VideoRepository) IncrementViews(id string) error {
	return r.db.Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// ListPublishedByOwner returns a channel's published videos, newest first.
func (r *VideoRepository) ListPublishedByOwner(ownerID string) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Where("owner_id = ? AND is_published = ?", ownerID, true).
		Order("created_at DESC").Find(&videos).Error
	return videos, err
}

// ListByOwner returns all of an owner's videos regardless of publish state.
func (r *VideoRepository) ListByOwner(ownerID string) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").Find(&videos).Error
	return videos, err
}

// ListFeed returns published videos with their owners, newest first.
func (r *VideoRepository) ListFeed(skip, limit int) ([]model.Video, int64, error) {
	query := r.db.Model(&model.Video{}).Where("is_published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err := query.Preload("Owner").Order("created_at DESC").
		Offset(skip).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// SearchPublished is the database fallback for keyword search.
func (r *VideoRepository) SearchPublished(keyword string, skip, limit int) ([]model.Video, int64, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	query := r.db.Model(&model.Video{}).
		Where("is_published = ?", true).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err := query.Preload("Owner").Order("created_at DESC").
		Offset(skip).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// OwnerTotals is the per-channel aggregate over all owned videos.
type OwnerTotals struct {
	TotalVideos int64
	TotalViews  int64
}

// AggregateByOwner sums video count and views across all of a user's
// videos. A user with no videos yields zeros, not an error.
func (r *VideoRepository) AggregateByOwner(ownerID string) (*OwnerTotals, error) {
	var totals OwnerTotals
	err := r.db.Raw(`
		SELECT COUNT(*) AS total_videos, COALESCE(SUM(views), 0) AS total_views
		FROM videos
		WHERE owner_id = ?
	`, ownerID).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// DeleteCascade removes a video together with its comments, likes (both
// on the video and on its comments), watch-history rows and playlist
// memberships, in one transaction.
func (r *VideoRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id IN (?)",
			tx.Model(&model.Comment{}).Select("id").Where("video_id = ?", id),
		).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.WatchHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Video{}).Error
	})
}
