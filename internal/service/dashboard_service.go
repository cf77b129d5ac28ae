package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

type DashboardService struct {
	userRepo    *repository.UserRepository
	videoRepo   *repository.VideoRepository
	commentRepo *repository.CommentRepository
	likeRepo    *repository.LikeRepository
	subRepo     *repository.SubscriptionRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	videoRepo *repository.VideoRepository,
	commentRepo *repository.CommentRepository,
	likeRepo *repository.LikeRepository,
	subRepo *repository.SubscriptionRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:    userRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		subRepo:     subRepo,
	}
}

// Stats computes the live totals for the caller's own channel. A
// channel with no videos yields zeros.
func (s *DashboardService) Stats(ownerID string) (*dto.ChannelStats, error) {
	owner, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	totals, err := s.videoRepo.AggregateByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	likes, err := s.likeRepo.CountByOwnerVideos(ownerID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.CountByOwnerVideos(ownerID)
	if err != nil {
		return nil, err
	}

	subscribers, err := s.subRepo.CountByChannel(ownerID)
	if err != nil {
		return nil, err
	}

	return &dto.ChannelStats{
		ID:               owner.ID,
		FullName:         owner.FullName,
		UserName:         owner.UserName,
		TotalSubscribers: subscribers,
		ChannelInfo: dto.ChannelInfo{
			TotalVideos:   totals.TotalVideos,
			TotalLikes:    likes,
			TotalComments: comments,
			TotalViews:    totals.TotalViews,
		},
	}, nil
}

// Videos lists all of the caller's own videos, drafts included, each
// annotated with live like and comment counts.
func (s *DashboardService) Videos(ownerID string) ([]dto.DashboardVideo, error) {
	videos, err := s.videoRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.DashboardVideo, 0, len(videos))
	if len(videos) == 0 {
		return rows, nil
	}

	videoIDs := make([]string, 0, len(videos))
	for i := range videos {
		videoIDs = append(videoIDs, videos[i].ID)
	}

	likeCounts, err := s.likeRepo.CountByVideos(videoIDs)
	if err != nil {
		return nil, err
	}

	commentCounts, err := s.commentRepo.CountByVideos(videoIDs)
	if err != nil {
		return nil, err
	}

	for i := range videos {
		rows = append(rows, dto.DashboardVideo{
			VideoSummary:     toVideoSummary(&videos[i]),
			NumberOfLikes:    likeCounts[videos[i].ID],
			NumberOfComments: commentCounts[videos[i].ID],
		})
	}
	return rows, nil
}
