package service

import (
	"context"
	"testing"

	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without an Elasticsearch client these tests exercise the database
// fallback path.
func TestSearchFallsBackToDatabase(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(repository.NewVideoRepository(db), repository.NewUserRepository(db))

	owner := createTestUser(t, db, "owner")
	createTestVideo(t, db, owner.ID, "Golang concurrency patterns", true)
	createTestVideo(t, db, owner.ID, "Cooking pasta", true)
	createTestVideo(t, db, owner.ID, "Golang drafts", false)

	data, err := svc.Search(context.Background(), "golang", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.Total)
	require.Len(t, data.Videos, 1)
	assert.Equal(t, "Golang concurrency patterns", data.Videos[0].Title)
	require.NotNil(t, data.Videos[0].OwnerDetails)
	assert.Equal(t, "owner", data.Videos[0].OwnerDetails.UserName)
}

func TestSearchMatchesDescription(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(repository.NewVideoRepository(db), repository.NewUserRepository(db))

	owner := createTestUser(t, db, "owner")
	createTestVideo(t, db, owner.ID, "Untitled", true)

	data, err := svc.Search(context.Background(), "DESCRIPTION", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.Total)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(repository.NewVideoRepository(db), repository.NewUserRepository(db))

	_, err := svc.Search(context.Background(), "   ", 1, 10)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}
