package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vidtube/internal/api/dto"
	"vidtube/internal/config"
	infraKafka "vidtube/internal/infra/kafka"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound     = errors.New("video does not exist")
	ErrVideoNoPermission = errors.New("no permission to operate on this video")
	ErrVideoFileRequired = errors.New("video file is required")
	ErrThumbnailRequired = errors.New("thumbnail file is required")
)

// historyMaxEntries caps the per-user watch history.
const historyMaxEntries = 100

// IndexPublisher pushes video index events toward the search index.
type IndexPublisher interface {
	Publish(ctx context.Context, event *infraKafka.VideoIndexEvent) error
}

type kafkaIndexPublisher struct{}

// NewKafkaIndexPublisher returns the Kafka-backed index publisher.
func NewKafkaIndexPublisher() IndexPublisher {
	return &kafkaIndexPublisher{}
}

func (p *kafkaIndexPublisher) Publish(ctx context.Context, event *infraKafka.VideoIndexEvent) error {
	topic := config.GetKafka().Topics["video_index"]
	return infraKafka.SendVideoIndexEvent(ctx, topic, event)
}

type VideoService struct {
	videoRepo   *repository.VideoRepository
	likeRepo    *repository.LikeRepository
	subRepo     *repository.SubscriptionRepository
	historyRepo *repository.HistoryRepository
	media       MediaStore
	publisher   IndexPublisher
}

func NewVideoService(
	videoRepo *repository.VideoRepository,
	likeRepo *repository.LikeRepository,
	subRepo *repository.SubscriptionRepository,
	historyRepo *repository.HistoryRepository,
	media MediaStore,
	publisher IndexPublisher,
) *VideoService {
	return &VideoService{
		videoRepo:   videoRepo,
		likeRepo:    likeRepo,
		subRepo:     subRepo,
		historyRepo: historyRepo,
		media:       media,
		publisher:   publisher,
	}
}

// Upload stores the video and thumbnail files and creates the record.
func (s *VideoService) Upload(ctx context.Context, ownerID string, req *dto.VideoUploadRequest, videoFile, thumbnail *FileUpload) (*dto.VideoSummary, error) {
	if videoFile == nil {
		return nil, ErrVideoFileRequired
	}
	if thumbnail == nil {
		return nil, ErrThumbnailRequired
	}

	videoURL, err := s.media.Upload(ctx, BucketVideos, ownerID+"/"+uuid.NewString()+videoFile.Ext, videoFile)
	if err != nil {
		return nil, fmt.Errorf("upload video file: %w", err)
	}

	thumbURL, err := s.media.Upload(ctx, BucketThumbnails, ownerID+"/"+uuid.NewString()+thumbnail.Ext, thumbnail)
	if err != nil {
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	video := &model.Video{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		VideoFile:   videoURL,
		Thumbnail:   thumbURL,
		Duration:    req.Duration,
		IsPublished: *req.IsPublished,
		Tags:        tagsOrEmpty(req.Tags),
	}

	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}

	logger.Info("Video uploaded",
		zap.String("video_id", video.ID),
		zap.String("owner_id", ownerID),
		zap.Bool("published", video.IsPublished),
	)

	s.publishIndex(ctx, indexUpsertEvent(video))

	summary := toVideoSummary(video)
	return &summary, nil
}

// GetDetail assembles the watch-page view: owner join, live like count,
// viewer-relative flags, a view-count bump and a best-effort history
// record. Unpublished videos are visible only to their owner.
func (s *VideoService) GetDetail(videoID, viewerID string) (*dto.VideoDetail, error) {
	video, err := s.videoRepo.GetByIDWithOwner(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, ErrVideoNotFound
	}

	if err := s.videoRepo.IncrementViews(videoID); err != nil {
		return nil, err
	}
	video.Views++

	likes, err := s.likeRepo.CountByVideo(videoID)
	if err != nil {
		return nil, err
	}

	liked := false
	subscribed := false
	if viewerID != "" {
		liked, err = s.likeRepo.ExistsForVideo(viewerID, videoID)
		if err != nil {
			return nil, err
		}
		subscribed, err = s.subRepo.Exists(viewerID, video.OwnerID)
		if err != nil {
			return nil, err
		}

		// History is a side effect; failing to record it must not break
		// the watch page.
		if err := s.historyRepo.Record(viewerID, videoID, time.Now(), historyMaxEntries); err != nil {
			logger.Error("Failed to record watch history",
				zap.String("user_id", viewerID),
				zap.String("video_id", videoID),
				zap.Error(err),
			)
		}
	}

	return &dto.VideoDetail{
		ID:                        video.ID,
		VideoFile:                 video.VideoFile,
		Thumbnail:                 video.Thumbnail,
		Title:                     video.Title,
		Description:               video.Description,
		Duration:                  video.Duration,
		Views:                     video.Views,
		OwnerDetails:              toUserSummary(&video.Owner),
		CreatedAt:                 video.CreatedAt,
		Tags:                      tagsOrEmpty(video.Tags),
		NumberOfLikes:             likes,
		DoesUserAlreadyLiked:      liked,
		DoesUserAlreadySubscribed: subscribed,
	}, nil
}

// Feed lists published videos, newest first.
func (s *VideoService) Feed(page, pageSize int) (*dto.VideoListData, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 12
	}

	videos, total, err := s.videoRepo.ListFeed((page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	return &dto.VideoListData{
		Videos:     toVideoSummaries(videos),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + int64(pageSize) - 1) / int64(pageSize),
	}, nil
}

// Update edits title, description, tags and optionally the thumbnail.
// Only the owner may edit.
func (s *VideoService) Update(ctx context.Context, ownerID, videoID string, req *dto.VideoUpdateRequest, thumbnail *FileUpload) (*dto.VideoSummary, error) {
	if _, err := s.ownedVideo(videoID, ownerID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if thumbnail != nil {
		url, err := s.media.Upload(ctx, BucketThumbnails, ownerID+"/"+uuid.NewString()+thumbnail.Ext, thumbnail)
		if err != nil {
			return nil, fmt.Errorf("upload thumbnail: %w", err)
		}
		updates["thumbnail"] = url
	}

	if len(updates) == 0 {
		video, err := s.videoRepo.GetByID(videoID)
		if err != nil {
			return nil, err
		}
		summary := toVideoSummary(video)
		return &summary, nil
	}

	video, err := s.videoRepo.Update(videoID, updates)
	if err != nil {
		return nil, err
	}

	s.publishIndex(ctx, indexUpsertEvent(video))

	summary := toVideoSummary(video)
	return &summary, nil
}

// TogglePublish flips the publish state and returns the new one.
func (s *VideoService) TogglePublish(ctx context.Context, ownerID, videoID string) (bool, error) {
	video, err := s.ownedVideo(videoID, ownerID)
	if err != nil {
		return false, err
	}

	updated, err := s.videoRepo.Update(videoID, map[string]interface{}{"is_published": !video.IsPublished})
	if err != nil {
		return false, err
	}

	s.publishIndex(ctx, indexUpsertEvent(updated))

	return updated.IsPublished, nil
}

// Delete removes the video with all its dependent rows, then the stored
// media and the search document.
func (s *VideoService) Delete(ctx context.Context, ownerID, videoID string) error {
	video, err := s.ownedVideo(videoID, ownerID)
	if err != nil {
		return err
	}

	if err := s.videoRepo.DeleteCascade(videoID); err != nil {
		return err
	}

	s.removeMedia(ctx, BucketVideos, video.VideoFile)
	s.removeMedia(ctx, BucketThumbnails, video.Thumbnail)

	logger.Info("Video deleted", zap.String("video_id", videoID), zap.String("owner_id", ownerID))

	s.publishIndex(ctx, &infraKafka.VideoIndexEvent{
		Action:  infraKafka.IndexActionDelete,
		VideoID: videoID,
	})

	return nil
}

// ownedVideo fetches a video and checks ownership, distinguishing a
// missing video from someone else's.
func (s *VideoService) ownedVideo(videoID, ownerID string) (*model.Video, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if video.OwnerID != ownerID {
		return nil, ErrVideoNoPermission
	}
	return video, nil
}

// removeMedia deletes a stored object by its public URL. The database
// row is already gone, so failures only leave an orphaned object.
func (s *VideoService) removeMedia(ctx context.Context, bucket, url string) {
	marker := "/" + bucket + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return
	}
	objectName := url[idx+len(marker):]
	if objectName == "" {
		return
	}
	if err := s.media.Remove(ctx, bucket, objectName); err != nil {
		logger.Error("Failed to remove media object",
			zap.String("bucket", bucket),
			zap.String("object", objectName),
			zap.Error(err),
		)
	}
}

// publishIndex is best effort; a broker outage must not fail the write
// that triggered it.
func (s *VideoService) publishIndex(ctx context.Context, event *infraKafka.VideoIndexEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error("Failed to publish video index event",
			zap.String("video_id", event.VideoID),
			zap.String("action", event.Action),
			zap.Error(err),
		)
	}
}

func indexUpsertEvent(video *model.Video) *infraKafka.VideoIndexEvent {
	return &infraKafka.VideoIndexEvent{
		Action:      infraKafka.IndexActionUpsert,
		VideoID:     video.ID,
		OwnerID:     video.OwnerID,
		Title:       video.Title,
		Description: video.Description,
		Tags:        video.Tags,
		Thumbnail:   video.Thumbnail,
		VideoFile:   video.VideoFile,
		Duration:    video.Duration,
		IsPublished: video.IsPublished,
		CreatedAt:   video.CreatedAt.UnixMilli(),
	}
}
