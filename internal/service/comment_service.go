package service

import (
	"errors"
	"sort"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound  = errors.New("comment does not exist")
	ErrAlreadyCommented = errors.New("user has already commented on this video")
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	videoRepo   *repository.VideoRepository
	likeRepo    *repository.LikeRepository
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	videoRepo *repository.VideoRepository,
	likeRepo *repository.LikeRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		likeRepo:    likeRepo,
	}
}

// ListByVideo builds the comment views for a watch page. The viewer's
// own comment, when present, is moved to the front; everything else
// keeps posting order. Anonymous viewers get all flags false.
func (s *CommentService) ListByVideo(videoID, viewerID string) ([]dto.CommentView, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByVideo(videoID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.CommentView, 0, len(comments))
	if len(comments) == 0 {
		return views, nil
	}

	commentIDs := make([]string, 0, len(comments))
	for i := range comments {
		commentIDs = append(commentIDs, comments[i].ID)
	}

	likeCounts, err := s.likeRepo.CountByComments(commentIDs)
	if err != nil {
		return nil, err
	}

	likedByViewer := map[string]bool{}
	if viewerID != "" {
		likedByViewer, err = s.likeRepo.LikedCommentIDs(viewerID, commentIDs)
		if err != nil {
			return nil, err
		}
	}

	for i := range comments {
		views = append(views, s.toCommentView(&comments[i], viewerID, likeCounts[comments[i].ID], likedByViewer[comments[i].ID]))
	}

	// Stable sort keeps posting order within each partition.
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].IsUserComment && !views[j].IsUserComment
	})

	return views, nil
}

// Create posts a comment; one per user per video.
func (s *CommentService) Create(viewerID, videoID, content string) (*dto.CommentView, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		VideoID: videoID,
		UserID:  viewerID,
		Content: content,
	}

	// The unique (video_id, user_id) index is the arbiter, so two
	// concurrent posts cannot both get through.
	if err := s.commentRepo.Create(comment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCommented
		}
		return nil, err
	}

	created, err := s.commentRepo.GetByIDWithUser(comment.ID)
	if err != nil {
		return nil, err
	}

	view := s.toCommentView(created, viewerID, 0, false)
	return &view, nil
}

// Update rewrites the caller's own comment.
func (s *CommentService) Update(viewerID, commentID, newContent string) (*dto.CommentView, error) {
	if err := s.commentRepo.Update(commentID, viewerID, newContent); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	updated, err := s.commentRepo.GetByIDWithUser(commentID)
	if err != nil {
		return nil, err
	}

	likes, err := s.likeRepo.CountByComment(commentID)
	if err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.LikedCommentIDs(viewerID, []string{commentID})
	if err != nil {
		return nil, err
	}

	view := s.toCommentView(updated, viewerID, likes, liked[commentID])
	return &view, nil
}

// Delete removes the caller's own comment and its likes.
func (s *CommentService) Delete(viewerID, commentID string) error {
	deleted, err := s.commentRepo.Delete(commentID, viewerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCommentNotFound
	}
	return nil
}

func (s *CommentService) toCommentView(comment *model.Comment, viewerID string, likes int64, likedByViewer bool) dto.CommentView {
	return dto.CommentView{
		ID:            comment.ID,
		Content:       comment.Content,
		CreatedAt:     comment.CreatedAt,
		User:          toUserSummary(&comment.User),
		Like:          likes,
		DoesUserLiked: likedByViewer,
		IsUserComment: viewerID != "" && comment.UserID == viewerID,
	}
}
