package service

import (
	"fmt"
	"testing"
	"time"

	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryListMostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHistoryService(repository.NewHistoryRepository(db))
	historyRepo := repository.NewHistoryRepository(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	first := createTestVideo(t, db, owner.ID, "first", true)
	second := createTestVideo(t, db, owner.ID, "second", true)

	base := time.Now().Add(-time.Hour)
	require.NoError(t, historyRepo.Record(alice.ID, first.ID, base, historyMaxEntries))
	require.NoError(t, historyRepo.Record(alice.ID, second.ID, base.Add(time.Minute), historyMaxEntries))

	entries, err := svc.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
	assert.Equal(t, "second", entries[0].Title)

	// Re-watching the older video moves it to the front, no new row.
	require.NoError(t, historyRepo.Record(alice.ID, first.ID, base.Add(2*time.Minute), historyMaxEntries))

	entries, err = svc.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
}

func TestHistoryCapPrunesOldest(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHistoryService(repository.NewHistoryRepository(db))
	historyRepo := repository.NewHistoryRepository(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")

	const limit = 5
	base := time.Now().Add(-time.Hour)
	for i := 0; i < limit+2; i++ {
		video := createTestVideo(t, db, owner.ID, fmt.Sprintf("video-%02d", i), true)
		require.NoError(t, historyRepo.Record(alice.ID, video.ID, base.Add(time.Duration(i)*time.Minute), limit))
	}

	entries, err := svc.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, entries, limit)

	// The newest survive, the two oldest are gone.
	assert.Equal(t, "video-06", entries[0].Title)
	assert.Equal(t, "video-02", entries[len(entries)-1].Title)
}

func TestHistoryEmptyForNewUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHistoryService(repository.NewHistoryRepository(db))

	alice := createTestUser(t, db, "alice")

	entries, err := svc.List(alice.ID)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
