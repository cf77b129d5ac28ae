package service

import (
	"testing"

	"vidtube/internal/model"
	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommentService(db *gorm.DB) *CommentService {
	return NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewVideoRepository(db),
		repository.NewLikeRepository(db),
	)
}

func TestCommentListEmptyVideo(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommentService(db)

	owner := createTestUser(t, db, "owner")
	video := createTestVideo(t, db, owner.ID, "lonely", true)

	views, err := svc.ListByVideo(video.ID, "")
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestCommentListMissingVideo(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommentService(db)

	_, err := svc.ListByVideo("00000000-0000-0000-0000-000000000000", "")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestCommentListViewerFirstOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommentService(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	video := createTestVideo(t, db, owner.ID, "watchme", true)

	_, err := svc.Create(alice.ID, video.ID, "first")
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, video.ID, "second")
	require.NoError(t, err)
	_, err = svc.Create(carol.ID, video.ID, "third")
	require.NoError(t, err)

	// Bob sees his own comment first, the rest in posting order.
	views, err := svc.ListByVideo(video.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "second", views[0].Content)
	assert.True(t, views[0].IsUserComment)
	assert.Equal(t, "first", views[1].Content)
	assert.Equal(t, "third", views[2].Content)
	assert.False(t, views[1].IsUserComment)
	assert.False(t, views[2].IsUserComment)

	// Anonymous viewers get plain posting order and all flags false.
	views, err = svc.ListByVideo(video.ID, "")
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "first", views[0].Content)
	assert.Equal(t, "second", views[1].Content)
	assert.Equal(t, "third", views[2].Content)
	for _, v := range views {
		assert.False(t, v.IsUserComment)
		assert.False(t, v.DoesUserLiked)
	}
}

func TestCommentListLikeFlags(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommentService(db)
	likeRepo := repository.NewLikeRepository(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	video := createTestVideo(t, db, owner.ID, "watchme", true)

	aliceComment, err := svc.Create(alice.ID, video.ID, "hello")
	require.NoError(t, err)

	_, err = likeRepo.ToggleComment(alice.ID, aliceComment.ID)
	require.NoError(t, err)
	_, err = likeRepo.ToggleComment(bob.ID, aliceComment.ID)
	require.NoError(t, err)

	views, err := svc.ListByVideo(video.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(2), views[0].Like)
	assert.True(t, views[0].DoesUserLiked)
	assert.False(t, views[0].IsUserComment)

	views, err = svc.ListByVideo(video.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, views[0].DoesUserLiked)
}

func TestCommentCreateDuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommentService(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	video := createTestVideo(t, db, owner.ID, "watchme", true)

	_, err := svc.Create(alice.ID, video.ID, "once")
	require.NoError(t, err)

	// The unique index is the arbiter, so the second insert collides
	// with it rather than a lost read-then-write check.
	_, err = svc.Create(alice.ID, video.ID, "twice")
	assert.ErrorIs(t, err, ErrAlreadyCommented)

	// A raw insert racing past the service hits the same index.
	repo := repository.NewCommentRepository(db)
	err = repo.Create(&model.Comment{VideoID: video.ID, UserID: alice.ID, Content: "thrice"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	views, err := svc.ListByVideo(video.ID, "")
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestCommentUpdateOwnOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommentService(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	video := createTestVideo(t, db, owner.ID, "watchme", true)

	comment, err := svc.Create(alice.ID, video.ID, "original")
	require.NoError(t, err)

	updated, err := svc.Update(alice.ID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	_, err = svc.Update(bob.ID, comment.ID, "hijacked")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestCommentDeleteRemovesLikes(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommentService(db)
	likeRepo := repository.NewLikeRepository(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	video := createTestVideo(t, db, owner.ID, "watchme", true)

	comment, err := svc.Create(alice.ID, video.ID, "bye")
	require.NoError(t, err)

	_, err = likeRepo.ToggleComment(owner.ID, comment.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(alice.ID, comment.ID))

	count, err := likeRepo.CountByComment(comment.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.Delete(alice.ID, comment.ID), ErrCommentNotFound)
}
