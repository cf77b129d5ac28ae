package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var ErrSelfSubscription = errors.New("cannot subscribe to your own channel")

type SubscriptionService struct {
	subRepo  *repository.SubscriptionRepository
	userRepo *repository.UserRepository
}

func NewSubscriptionService(subRepo *repository.SubscriptionRepository, userRepo *repository.UserRepository) *SubscriptionService {
	return &SubscriptionService{subRepo: subRepo, userRepo: userRepo}
}

// Toggle flips the viewer's subscription to a channel and returns the
// new state with the live subscriber count.
func (s *SubscriptionService) Toggle(viewerID, channelID string) (*dto.SubscribeToggleData, error) {
	if viewerID == channelID {
		return nil, ErrSelfSubscription
	}

	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	subscribed, err := s.subRepo.Toggle(viewerID, channelID)
	if err != nil {
		return nil, err
	}

	count, err := s.subRepo.CountByChannel(channelID)
	if err != nil {
		return nil, err
	}

	return &dto.SubscribeToggleData{Subscribed: subscribed, TotalSubscribers: count}, nil
}

// SubscriberCount returns a channel's live subscriber count.
func (s *SubscriptionService) SubscriberCount(channelID string) (int64, error) {
	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrChannelNotFound
		}
		return 0, err
	}
	return s.subRepo.CountByChannel(channelID)
}

// ListSubscribed returns the viewer's subscriptions in the order they
// were made. A viewer with none gets an empty list.
func (s *SubscriptionService) ListSubscribed(viewerID string) ([]dto.SubscribedChannel, error) {
	subs, err := s.subRepo.ListBySubscriber(viewerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SubscribedChannel, 0, len(subs))
	if len(subs) == 0 {
		return out, nil
	}

	channelIDs := make([]string, 0, len(subs))
	for i := range subs {
		channelIDs = append(channelIDs, subs[i].ChannelID)
	}

	users, err := s.userRepo.GetByIDs(channelIDs)
	if err != nil {
		return nil, err
	}

	counts, err := s.subRepo.CountByChannels(channelIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*model.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	for i := range subs {
		channel, ok := byID[subs[i].ChannelID]
		if !ok {
			continue
		}
		out = append(out, dto.SubscribedChannel{
			ID: subs[i].ID,
			Channel: dto.ChannelSummary{
				UserSummary:     toUserSummary(channel),
				SubscriberCount: counts[subs[i].ChannelID],
			},
			IsSubscribed: true,
		})
	}

	return out, nil
}
