package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vidtube/internal/api/dto"
	"vidtube/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrChannelNotFound = errors.New("channel does not exist")

type UserService struct {
	userRepo    *repository.UserRepository
	videoRepo   *repository.VideoRepository
	commentRepo *repository.CommentRepository
	likeRepo    *repository.LikeRepository
	subRepo     *repository.SubscriptionRepository
	media       MediaStore
}

func NewUserService(
	userRepo *repository.UserRepository,
	videoRepo *repository.VideoRepository,
	commentRepo *repository.CommentRepository,
	likeRepo *repository.LikeRepository,
	subRepo *repository.SubscriptionRepository,
	media MediaStore,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		subRepo:     subRepo,
		media:       media,
	}
}

// UpdateAccount changes full name and email.
func (s *UserService) UpdateAccount(userID string, req *dto.AccountUpdateRequest) (*dto.UserInfo, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	current, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if email != current.Email {
		taken, err := s.userRepo.ExistsByEmail(email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	user, err := s.userRepo.Update(userID, map[string]interface{}{
		"full_name": req.FullName,
		"email":     email,
	})
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// UpdateAvatar replaces the avatar image.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, file *FileUpload) (*dto.UserInfo, error) {
	return s.updateImage(ctx, userID, BucketAvatars, "avatar", file)
}

// UpdateCoverImage replaces the channel cover image.
func (s *UserService) UpdateCoverImage(ctx context.Context, userID string, file *FileUpload) (*dto.UserInfo, error) {
	return s.updateImage(ctx, userID, BucketCovers, "cover_image", file)
}

func (s *UserService) updateImage(ctx context.Context, userID, bucket, column string, file *FileUpload) (*dto.UserInfo, error) {
	url, err := s.media.Upload(ctx, bucket, uuid.NewString()+file.Ext, file)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", column, err)
	}

	user, err := s.userRepo.Update(userID, map[string]interface{}{column: url})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toUserInfo(user), nil
}

// GetChannelProfile builds a channel page header by handle: identity,
// live subscriber count, the viewer's subscription state and the
// aggregate totals. A channel with no videos yields all-zero totals.
func (s *UserService) GetChannelProfile(handle, viewerID string) (*dto.ChannelProfile, error) {
	channel, err := s.userRepo.GetByUserName(handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	subscribers, err := s.subRepo.CountByChannel(channel.ID)
	if err != nil {
		return nil, err
	}

	subscribed := false
	if viewerID != "" {
		subscribed, err = s.subRepo.Exists(viewerID, channel.ID)
		if err != nil {
			return nil, err
		}
	}

	info, err := s.channelInfo(channel.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ChannelProfile{
		ID:                        channel.ID,
		UserName:                  channel.UserName,
		FullName:                  channel.FullName,
		Avatar:                    channel.Avatar,
		CoverImage:                channel.CoverImage,
		TotalSubscribers:          subscribers,
		DoesUserAlreadySubscribed: subscribed,
		ChannelInfo:               *info,
	}, nil
}

// GetChannelVideos lists a channel's published videos by handle, newest
// first.
func (s *UserService) GetChannelVideos(handle string) ([]dto.VideoSummary, error) {
	channel, err := s.userRepo.GetByUserName(handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	videos, err := s.videoRepo.ListPublishedByOwner(channel.ID)
	if err != nil {
		return nil, err
	}

	return toVideoSummaries(videos), nil
}

// channelInfo computes the live totals over a channel's videos.
func (s *UserService) channelInfo(ownerID string) (*dto.ChannelInfo, error) {
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

	return &dto.ChannelInfo{
		TotalVideos:   totals.TotalVideos,
		TotalLikes:    likes,
		TotalComments: comments,
		TotalViews:    totals.TotalViews,
	}, nil
}
