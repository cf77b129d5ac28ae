package service

import (
	"encoding/json"
	"testing"

	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) *DashboardService {
	return NewDashboardService(
		repository.NewUserRepository(db),
		repository.NewVideoRepository(db),
		repository.NewCommentRepository(db),
		repository.NewLikeRepository(db),
		repository.NewSubscriptionRepository(db),
	)
}

func TestDashboardStatsZeroVideos(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)

	owner := createTestUser(t, db, "owner")

	stats, err := svc.Stats(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, stats.ID)
	assert.Equal(t, owner.UserName, stats.UserName)
	assert.Equal(t, owner.FullName, stats.FullName)
	assert.Zero(t, stats.ChannelInfo.TotalVideos)
	assert.Zero(t, stats.ChannelInfo.TotalLikes)
	assert.Zero(t, stats.ChannelInfo.TotalComments)
	assert.Zero(t, stats.ChannelInfo.TotalViews)
	assert.Zero(t, stats.TotalSubscribers)

	// The client contract: identity at the top level, totals nested
	// under channelInfo.
	raw, err := json.Marshal(stats)
	require.NoError(t, err)
	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Contains(t, payload, "_id")
	assert.Contains(t, payload, "userName")
	assert.Contains(t, payload, "fullName")
	assert.Contains(t, payload, "totalSubscribers")
	assert.Contains(t, payload, "channelInfo")
	assert.NotContains(t, payload, "totalViews")

	var info map[string]int64
	require.NoError(t, json.Unmarshal(payload["channelInfo"], &info))
	assert.Contains(t, info, "totalVideos")
	assert.Contains(t, info, "totalLikes")
	assert.Contains(t, info, "totalComments")
	assert.Contains(t, info, "totalViews")
}

func TestDashboardStatsAggregation(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)
	videoSvc := newVideoService(db, nil)
	commentSvc := newCommentService(db)
	likeSvc := newLikeService(db)
	subSvc := newSubscriptionService(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	first := createTestVideo(t, db, owner.ID, "first", true)
	second := createTestVideo(t, db, owner.ID, "second", true)

	// Two anonymous views on the first video, one on the second.
	_, err := videoSvc.GetDetail(first.ID, "")
	require.NoError(t, err)
	_, err = videoSvc.GetDetail(first.ID, "")
	require.NoError(t, err)
	_, err = videoSvc.GetDetail(second.ID, "")
	require.NoError(t, err)

	_, err = commentSvc.Create(alice.ID, first.ID, "nice")
	require.NoError(t, err)
	_, err = commentSvc.Create(bob.ID, first.ID, "agreed")
	require.NoError(t, err)

	_, err = likeSvc.ToggleVideo(alice.ID, first.ID)
	require.NoError(t, err)
	_, err = likeSvc.ToggleVideo(bob.ID, second.ID)
	require.NoError(t, err)

	_, err = subSvc.Toggle(alice.ID, owner.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, stats.ID)
	assert.Equal(t, int64(2), stats.ChannelInfo.TotalVideos)
	assert.Equal(t, int64(2), stats.ChannelInfo.TotalLikes)
	assert.Equal(t, int64(2), stats.ChannelInfo.TotalComments)
	assert.Equal(t, int64(3), stats.ChannelInfo.TotalViews)
	assert.Equal(t, int64(1), stats.TotalSubscribers)

	// Another channel's activity does not leak in.
	aliceStats, err := svc.Stats(alice.ID)
	require.NoError(t, err)
	assert.Zero(t, aliceStats.ChannelInfo.TotalVideos)
	assert.Zero(t, aliceStats.ChannelInfo.TotalLikes)
}

func TestDashboardVideosIncludeDrafts(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)

	owner := createTestUser(t, db, "owner")
	createTestVideo(t, db, owner.ID, "public", true)
	createTestVideo(t, db, owner.ID, "draft", false)

	videos, err := svc.Videos(owner.ID)
	require.NoError(t, err)
	assert.Len(t, videos, 2)
}

func TestDashboardVideosCarryEngagementCounts(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)
	commentSvc := newCommentService(db)
	likeSvc := newLikeService(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	popular := createTestVideo(t, db, owner.ID, "popular", true)
	quiet := createTestVideo(t, db, owner.ID, "quiet", true)

	_, err := likeSvc.ToggleVideo(alice.ID, popular.ID)
	require.NoError(t, err)
	_, err = likeSvc.ToggleVideo(bob.ID, popular.ID)
	require.NoError(t, err)
	_, err = commentSvc.Create(alice.ID, popular.ID, "great")
	require.NoError(t, err)

	videos, err := svc.Videos(owner.ID)
	require.NoError(t, err)
	require.Len(t, videos, 2)

	byTitle := map[string]int{}
	for i, v := range videos {
		byTitle[v.Title] = i
	}

	pop := videos[byTitle["popular"]]
	assert.Equal(t, int64(2), pop.NumberOfLikes)
	assert.Equal(t, int64(1), pop.NumberOfComments)

	q := videos[byTitle[quiet.Title]]
	assert.Zero(t, q.NumberOfLikes)
	assert.Zero(t, q.NumberOfComments)
}
