package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"vidtube/internal/api/dto"
	infraES "vidtube/internal/infra/elasticsearch"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
)

var ErrEmptyQuery = errors.New("search query is empty")

type SearchService struct {
	videoRepo *repository.VideoRepository
	userRepo  *repository.UserRepository
}

func NewSearchService(videoRepo *repository.VideoRepository, userRepo *repository.UserRepository) *SearchService {
	return &SearchService{videoRepo: videoRepo, userRepo: userRepo}
}

// Search looks up published videos by keyword. Elasticsearch serves the
// query when available; any failure there falls back to the database.
func (s *SearchService) Search(ctx context.Context, query string, page, pageSize int) (*dto.SearchData, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 12
	}
	skip := (page - 1) * pageSize

	if infraES.Get() != nil {
		data, err := s.searchES(ctx, query, skip, pageSize)
		if err == nil {
			return data, nil
		}
		logger.Warn("Elasticsearch search failed, falling back to database",
			zap.String("query", query), zap.Error(err))
	}

	videos, total, err := s.videoRepo.SearchPublished(query, skip, pageSize)
	if err != nil {
		return nil, err
	}

	return &dto.SearchData{
		Videos: toVideoSummaries(videos),
		Total:  total,
		Query:  query,
	}, nil
}

// searchES queries the index and hydrates the owner blocks from the
// database.
func (s *SearchService) searchES(ctx context.Context, query string, skip, limit int) (*dto.SearchData, error) {
	docs, total, err := infraES.SearchVideos(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]string, 0, len(docs))
	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		if !seen[d.OwnerID] {
			seen[d.OwnerID] = true
			ownerIDs = append(ownerIDs, d.OwnerID)
		}
	}

	owners := make(map[string]*model.User, len(ownerIDs))
	if len(ownerIDs) > 0 {
		users, err := s.userRepo.GetByIDs(ownerIDs)
		if err != nil {
			return nil, err
		}
		for i := range users {
			owners[users[i].ID] = &users[i]
		}
	}

	videos := make([]dto.VideoSummary, 0, len(docs))
	for _, d := range docs {
		summary := dto.VideoSummary{
			ID:          d.ID,
			VideoFile:   d.VideoFile,
			Thumbnail:   d.Thumbnail,
			Title:       d.Title,
			Description: d.Description,
			Duration:    d.Duration,
			CreatedAt:   time.UnixMilli(d.CreatedAt),
			Tags:        d.Tags,
		}
		if summary.Tags == nil {
			summary.Tags = []string{}
		}
		if owner, ok := owners[d.OwnerID]; ok {
			block := toUserSummary(owner)
			summary.OwnerDetails = &block
		}
		videos = append(videos, summary)
	}

	return &dto.SearchData{
		Videos: videos,
		Total:  total,
		Query:  query,
	}, nil
}
