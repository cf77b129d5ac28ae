package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a new comment.
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID looks up a comment by id.
func (r *CommentRepository) GetByID(id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByIDWithUser looks up a comment with its author joined in.
func (r *CommentRepository) GetByIDWithUser(id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Preload("User").Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update rewrites a comment's content, author only.
func (r *CommentRepository) Update(commentID, userID, content string) error {
	result := r.db.Model(&model.Comment{}).
		Where("id = ? AND user_id = ?", commentID, userID).
		Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a comment, author only. Likes on the comment go with it.
func (r *CommentRepository) Delete(commentID, userID string) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", commentID, userID).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Where("comment_id = ?", commentID).Delete(&model.Like{}).Error
	})
	return deleted, err
}

// ListByVideo returns every comment on a video with its author, in
// insertion order.
func (r *CommentRepository) ListByVideo(videoID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Preload("User").Where("video_id = ?", videoID).
		Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// CountByVideos batch-counts comments for a set of videos.
func (r *CommentRepository) CountByVideos(videoIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(videoIDs))
	if len(videoIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		VideoID string
		N       int64
	}
	err := r.db.Model(&model.Comment{}).
		Select("video_id, COUNT(*) AS n").
		Where("video_id IN ?", videoIDs).
		Group("video_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.VideoID] = row.N
	}
	return counts, nil
}

// CountByOwnerVideos counts comments across all videos owned by a user.
func (r *CommentRepository) CountByOwnerVideos(ownerID string) (int64, error) {
	var count int64
	err := r.db.Raw(`
		SELECT COUNT(*) FROM comments c
		INNER JOIN videos v ON c.video_id = v.id
		WHERE v.owner_id = ?
	`, ownerID).Scan(&count).Error
	return count, err
}
