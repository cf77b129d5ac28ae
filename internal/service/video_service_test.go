package service

import (
	"context"
	"testing"

	infraKafka "vidtube/internal/infra/kafka"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVideoService(db *gorm.DB, publisher IndexPublisher) *VideoService {
	return NewVideoService(
		repository.NewVideoRepository(db),
		repository.NewLikeRepository(db),
		repository.NewSubscriptionRepository(db),
		repository.NewHistoryRepository(db),
		fakeMedia{},
		publisher,
	)
}

func TestVideoDetailIncrementsViews(t *testing.T) {
	db := setupTestDB(t)
	svc := newVideoService(db, nil)

	owner := createTestUser(t, db, "owner")
	video := createTestVideo(t, db, owner.ID, "popular", true)

	for i := 1; i <= 3; i++ {
		detail, err := svc.GetDetail(video.ID, "")
		require.NoError(t, err)
		assert.Equal(t, int64(i), detail.Views)
	}
}

func TestVideoDetailViewerFlags(t *testing.T) {
	db := setupTestDB(t)
	svc := newVideoService(db, nil)
	likeRepo := repository.NewLikeRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	video := createTestVideo(t, db, owner.ID, "flagged", true)

	_, err := likeRepo.ToggleVideo(alice.ID, video.ID)
	require.NoError(t, err)
	_, err = subRepo.Toggle(alice.ID, owner.ID)
	require.NoError(t, err)

	detail, err := svc.GetDetail(video.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.NumberOfLikes)
	assert.True(t, detail.DoesUserAlreadyLiked)
	assert.True(t, detail.DoesUserAlreadySubscribed)
	assert.Equal(t, owner.ID, detail.OwnerDetails.ID)
	assert.Equal(t, owner.UserName, detail.OwnerDetails.UserName)

	anon, err := svc.GetDetail(video.ID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), anon.NumberOfLikes)
	assert.False(t, anon.DoesUserAlreadyLiked)
	assert.False(t, anon.DoesUserAlreadySubscribed)
}

func TestVideoDetailRecordsHistory(t *testing.T) {
	db := setupTestDB(t)
	svc := newVideoService(db, nil)
	historyRepo := repository.NewHistoryRepository(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	first := createTestVideo(t, db, owner.ID, "first", true)
	second := createTestVideo(t, db, owner.ID, "second", true)

	_, err := svc.GetDetail(first.ID, alice.ID)
	require.NoError(t, err)
	_, err = svc.GetDetail(second.ID, alice.ID)
	require.NoError(t, err)

	// Re-watching bumps recency instead of adding a row.
	_, err = svc.GetDetail(first.ID, alice.ID)
	require.NoError(t, err)

	rows, err := historyRepo.ListByUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].VideoID)
	assert.Equal(t, second.ID, rows[1].VideoID)

	// Anonymous viewers leave no history.
	_, err = svc.GetDetail(first.ID, "")
	require.NoError(t, err)
	count, err := historyRepo.CountByUser(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestVideoDetailUnpublishedVisibility(t *testing.T) {
	db := setupTestDB(t)
	svc := newVideoService(db, nil)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	draft := createTestVideo(t, db, owner.ID, "draft", false)

	_, err := svc.GetDetail(draft.ID, alice.ID)
	assert.ErrorIs(t, err, ErrVideoNotFound)

	_, err = svc.GetDetail(draft.ID, "")
	assert.ErrorIs(t, err, ErrVideoNotFound)

	detail, err := svc.GetDetail(draft.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, detail.ID)
}

func TestVideoDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	publisher := &fakePublisher{}
	svc := newVideoService(db, publisher)
	commentSvc := newCommentService(db)
	likeRepo := repository.NewLikeRepository(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	video := createTestVideo(t, db, owner.ID, "doomed", true)

	comment, err := commentSvc.Create(alice.ID, video.ID, "soon gone")
	require.NoError(t, err)
	_, err = likeRepo.ToggleVideo(alice.ID, video.ID)
	require.NoError(t, err)
	_, err = likeRepo.ToggleComment(owner.ID, comment.ID)
	require.NoError(t, err)
	_, err = svc.GetDetail(video.ID, alice.ID)
	require.NoError(t, err)

	// Not the owner.
	assert.ErrorIs(t, svc.Delete(context.Background(), alice.ID, video.ID), ErrVideoNoPermission)

	require.NoError(t, svc.Delete(context.Background(), owner.ID, video.ID))

	var likes, comments, history int64
	require.NoError(t, db.Model(&model.Like{}).Count(&likes).Error)
	require.NoError(t, db.Model(&model.Comment{}).Count(&comments).Error)
	require.NoError(t, db.Model(&model.WatchHistory{}).Count(&history).Error)
	assert.Zero(t, likes)
	assert.Zero(t, comments)
	assert.Zero(t, history)

	require.NotEmpty(t, publisher.events)
	last := publisher.events[len(publisher.events)-1]
	assert.Equal(t, infraKafka.IndexActionDelete, last.Action)
	assert.Equal(t, video.ID, last.VideoID)
}

func TestVideoTogglePublish(t *testing.T) {
	db := setupTestDB(t)
	publisher := &fakePublisher{}
	svc := newVideoService(db, publisher)

	owner := createTestUser(t, db, "owner")
	video := createTestVideo(t, db, owner.ID, "flip", true)

	published, err := svc.TogglePublish(context.Background(), owner.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, published)

	published, err = svc.TogglePublish(context.Background(), owner.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, published)

	require.Len(t, publisher.events, 2)
	assert.Equal(t, infraKafka.IndexActionUpsert, publisher.events[0].Action)
	assert.False(t, publisher.events[0].IsPublished)
	assert.True(t, publisher.events[1].IsPublished)
}

func TestVideoFeedPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := newVideoService(db, nil)

	owner := createTestUser(t, db, "owner")
	for i := 0; i < 5; i++ {
		createTestVideo(t, db, owner.ID, string(rune('a'+i)), true)
	}
	createTestVideo(t, db, owner.ID, "hidden", false)

	data, err := svc.Feed(1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), data.Total)
	assert.Len(t, data.Videos, 3)
	assert.Equal(t, int64(2), data.TotalPages)
	require.NotNil(t, data.Videos[0].OwnerDetails)
	assert.Equal(t, owner.UserName, data.Videos[0].OwnerDetails.UserName)

	data, err = svc.Feed(2, 3)
	require.NoError(t, err)
	assert.Len(t, data.Videos, 2)
}
