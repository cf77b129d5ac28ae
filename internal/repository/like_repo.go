package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// ToggleVideo flips the (liker, video) like. The insert is conditional on
// the unique pair, so two concurrent toggles cannot both insert; when the
// insert hits the existing row the like is removed instead. Returns
// whether the like exists after the call.
func (r *LikeRepository) ToggleVideo(userID, videoID string) (bool, error) {
	like := &model.Like{VideoID: &videoID, LikedBy: userID}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "video_id"}, {Name: "liked_by"}},
		DoNothing: true,
	}).Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}
	err := r.db.Where("video_id = ? AND liked_by = ?", videoID, userID).
		Delete(&model.Like{}).Error
	return false, err
}

// ToggleComment flips the (liker, comment) like, same contract as
// ToggleVideo.
func (r *LikeRepository) ToggleComment(userID, commentID string) (bool, error) {
	like := &model.Like{CommentID: &commentID, LikedBy: userID}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "comment_id"}, {Name: "liked_by"}},
		DoNothing: true,
	}).Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}
	err := r.db.Where("comment_id = ? AND liked_by = ?", commentID, userID).
		Delete(&model.Like{}).Error
	return false, err
}

// CountByVideo counts likes targeting a video.
func (r *LikeRepository) CountByVideo(videoID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}

// CountByComment counts likes targeting a comment.
func (r *LikeRepository) CountByComment(commentID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).Where("comment_id = ?", commentID).Count(&count).Error
	return count, err
}

// CountByComments batch-counts likes for a set of comments.
func (r *LikeRepository) CountByComments(commentIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CommentID string
		N         int64
	}
	err := r.db.Model(&model.Like{}).
		Select("comment_id, COUNT(*) AS n").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CommentID] = row.N
	}
	return counts, nil
}

// CountByVideos batch-counts likes for a set of videos.
func (r *LikeRepository) CountByVideos(videoIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(videoIDs))
	if len(videoIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		VideoID string
		N       int64
	}
	err := r.db.Model(&model.Like{}).
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

// ExistsForVideo reports whether the user likes the video.
func (r *LikeRepository) ExistsForVideo(userID, videoID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("video_id = ? AND liked_by = ?", videoID, userID).Count(&count).Error
	return count > 0, err
}

// LikedCommentIDs returns which of the given comments the user likes.
func (r *LikeRepository) LikedCommentIDs(userID string, commentIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool, len(commentIDs))
	if len(commentIDs) == 0 {
		return liked, nil
	}

	var ids []string
	err := r.db.Model(&model.Like{}).
		Where("liked_by = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// LikedVideoIDs returns the ids of all videos the user likes, most
// recent like first.
func (r *LikeRepository) LikedVideoIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Like{}).
		Where("liked_by = ? AND video_id IS NOT NULL", userID).
		Order("created_at DESC").
		Pluck("video_id", &ids).Error
	return ids, err
}

// CountByOwnerVideos counts likes across all videos owned by a user.
func (r *LikeRepository) CountByOwnerVideos(ownerID string) (int64, error) {
	var count int64
	err := r.db.Raw(`
		SELECT COUNT(*) FROM likes l
		INNER JOIN videos v ON l.video_id = v.id
		WHERE v.owner_id = ?
	`, ownerID).Scan(&count).Error
	return count, err
}
