package service

import (
	"vidtube/internal/api/dto"
	"vidtube/internal/repository"
)

type HistoryService struct {
	historyRepo *repository.HistoryRepository
}

func NewHistoryService(historyRepo *repository.HistoryRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// List returns the viewer's watch history, most recently watched first.
func (s *HistoryService) List(viewerID string) ([]dto.HistoryEntry, error) {
	rows, err := s.historyRepo.ListByUser(viewerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.HistoryEntry, 0, len(rows))
	for i := range rows {
		out = append(out, dto.HistoryEntry{
			VideoSummary: toVideoSummary(&rows[i].Video),
			WatchedAt:    rows[i].WatchedAt,
		})
	}

	return out, nil
}
