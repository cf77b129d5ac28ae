package service

import (
	"context"
	"testing"

	"vidtube/internal/api/dto"
	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewVideoRepository(db),
		repository.NewCommentRepository(db),
		repository.NewLikeRepository(db),
		repository.NewSubscriptionRepository(db),
		fakeMedia{},
	)
}

func TestChannelProfileAggregates(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	videoSvc := newVideoService(db, nil)
	commentSvc := newCommentService(db)
	likeSvc := newLikeService(db)
	subSvc := newSubscriptionService(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")

	video := createTestVideo(t, db, owner.ID, "hit", true)

	_, err := videoSvc.GetDetail(video.ID, "")
	require.NoError(t, err)
	_, err = commentSvc.Create(alice.ID, video.ID, "nice")
	require.NoError(t, err)
	_, err = likeSvc.ToggleVideo(alice.ID, video.ID)
	require.NoError(t, err)
	_, err = subSvc.Toggle(alice.ID, owner.ID)
	require.NoError(t, err)

	profile, err := svc.GetChannelProfile("owner", alice.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, profile.ID)
	assert.Equal(t, int64(1), profile.TotalSubscribers)
	assert.True(t, profile.DoesUserAlreadySubscribed)
	assert.Equal(t, int64(1), profile.ChannelInfo.TotalVideos)
	assert.Equal(t, int64(1), profile.ChannelInfo.TotalLikes)
	assert.Equal(t, int64(1), profile.ChannelInfo.TotalComments)
	assert.Equal(t, int64(1), profile.ChannelInfo.TotalViews)

	// Anonymous viewer: same totals, no subscription flag.
	profile, err = svc.GetChannelProfile("owner", "")
	require.NoError(t, err)
	assert.False(t, profile.DoesUserAlreadySubscribed)
	assert.Equal(t, int64(1), profile.TotalSubscribers)
}

func TestChannelProfileZeroVideos(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	createTestUser(t, db, "quiet")

	profile, err := svc.GetChannelProfile("quiet", "")
	require.NoError(t, err)
	assert.Zero(t, profile.ChannelInfo.TotalVideos)
	assert.Zero(t, profile.ChannelInfo.TotalLikes)
	assert.Zero(t, profile.ChannelInfo.TotalComments)
	assert.Zero(t, profile.ChannelInfo.TotalViews)
	assert.Zero(t, profile.TotalSubscribers)
}

func TestChannelProfileUnknownHandle(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	_, err := svc.GetChannelProfile("ghost", "")
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestChannelVideosPublishedOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	owner := createTestUser(t, db, "owner")
	createTestVideo(t, db, owner.ID, "public", true)
	createTestVideo(t, db, owner.ID, "draft", false)

	videos, err := svc.GetChannelVideos("owner")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "public", videos[0].Title)
}

func TestUpdateAccountEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	alice := createTestUser(t, db, "alice")
	createTestUser(t, db, "bob")

	info, err := svc.UpdateAccount(alice.ID, &dto.AccountUpdateRequest{
		FullName: "Alice Renamed",
		Email:    "alice-new@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Renamed", info.FullName)
	assert.Equal(t, "alice-new@example.com", info.Email)

	_, err = svc.UpdateAccount(alice.ID, &dto.AccountUpdateRequest{
		FullName: "Alice",
		Email:    "bob@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Keeping the current email is not a conflict.
	_, err = svc.UpdateAccount(alice.ID, &dto.AccountUpdateRequest{
		FullName: "Alice Again",
		Email:    "alice-new@example.com",
	})
	require.NoError(t, err)
}

func TestUpdateAvatarAndCover(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	alice := createTestUser(t, db, "alice")

	info, err := svc.UpdateAvatar(context.Background(), alice.ID, &FileUpload{Ext: ".png", ContentType: "image/png"})
	require.NoError(t, err)
	assert.Contains(t, info.Avatar, "http://media.test/avatars/")

	info, err = svc.UpdateCoverImage(context.Background(), alice.ID, &FileUpload{Ext: ".jpg", ContentType: "image/jpeg"})
	require.NoError(t, err)
	assert.Contains(t, info.CoverImage, "http://media.test/covers/")
}
