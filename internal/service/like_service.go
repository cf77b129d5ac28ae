package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

type LikeService struct {
	likeRepo    *repository.LikeRepository
	videoRepo   *repository.VideoRepository
	commentRepo *repository.CommentRepository
}

func NewLikeService(
	likeRepo *repository.LikeRepository,
	videoRepo *repository.VideoRepository,
	commentRepo *repository.CommentRepository,
) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
	}
}

// ToggleVideo flips the viewer's like on a video and returns the new
// state with the live count.
func (s *LikeService) ToggleVideo(viewerID, videoID string) (*dto.LikeToggleData, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	liked, err := s.likeRepo.ToggleVideo(viewerID, videoID)
	if err != nil {
		return nil, err
	}

	count, err := s.likeRepo.CountByVideo(videoID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeToggleData{Liked: liked, NumberOfLikes: count}, nil
}

// ToggleComment flips the viewer's like on a comment.
func (s *LikeService) ToggleComment(viewerID, commentID string) (*dto.LikeToggleData, error) {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	liked, err := s.likeRepo.ToggleComment(viewerID, commentID)
	if err != nil {
		return nil, err
	}

	count, err := s.likeRepo.CountByComment(commentID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeToggleData{Liked: liked, NumberOfLikes: count}, nil
}

// LikedVideos lists the videos the viewer has liked, most recently
// liked first.
func (s *LikeService) LikedVideos(viewerID string) ([]dto.VideoSummary, error) {
	ids, err := s.likeRepo.LikedVideoIDs(viewerID)
	if err != nil {
		return nil, err
	}

	videos, err := s.videoRepo.GetByIDsWithOwner(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = &videos[i]
	}

	// Batch fetch loses like order; restore it from the id list.
	out := make([]dto.VideoSummary, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			out = append(out, toVideoSummary(v))
		}
	}

	return out, nil
}
