package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"vidtube/internal/config"
	infraKafka "vidtube/internal/infra/kafka"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"
	"vidtube/pkg/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testEnvOnce sync.Once

const testConfigYAML = `
app:
  name: vidtube-test
  version: test
  mode: test
  port: 0
jwt:
  secret: test-secret-key
  expire_minutes: 30
  refresh_expire_hours: 240
log:
  level: error
  format: console
  output: stdout
`

// initTestEnv loads a throwaway config and a quiet logger once per test
// binary; token helpers and services read both globally.
func initTestEnv(t *testing.T) {
	t.Helper()
	testEnvOnce.Do(func() {
		dir, err := os.MkdirTemp("", "vidtube-test-config")
		if err != nil {
			panic(err)
		}
		path := filepath.Join(dir, "config.yaml")
		if err := os.WriteFile(path, []byte(testConfigYAML), 0o600); err != nil {
			panic(err)
		}
		if _, err := config.Load(path); err != nil {
			panic(err)
		}
		if err := logger.Init("error", "console", "stdout", ""); err != nil {
			panic(err)
		}
	})
}

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	initTestEnv(t)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Subscription{},
		&model.WatchHistory{},
		&model.Playlist{},
		&model.PlaylistVideo{},
	))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db
}

// fakeMedia stores nothing and returns deterministic URLs.
type fakeMedia struct{}

func (fakeMedia) Upload(_ context.Context, bucket, objectName string, _ *FileUpload) (string, error) {
	return "http://media.test/" + bucket + "/" + objectName, nil
}

func (fakeMedia) Remove(_ context.Context, _, _ string) error {
	return nil
}

// fakePublisher records index events in memory.
type fakePublisher struct {
	events []*infraKafka.VideoIndexEvent
}

func (p *fakePublisher) Publish(_ context.Context, event *infraKafka.VideoIndexEvent) error {
	p.events = append(p.events, event)
	return nil
}

func createTestUser(t *testing.T, db *gorm.DB, userName string) *model.User {
	t.Helper()

	hashed, err := utils.HashPassword("password-123")
	require.NoError(t, err)

	user := &model.User{
		UserName: userName,
		Email:    userName + "@example.com",
		FullName: "Test " + userName,
		Avatar:   "http://media.test/avatars/" + userName + ".png",
		Password: hashed,
	}
	require.NoError(t, repository.NewUserRepository(db).Create(user))
	return user
}

func createTestVideo(t *testing.T, db *gorm.DB, ownerID, title string, published bool) *model.Video {
	t.Helper()

	video := &model.Video{
		OwnerID:     ownerID,
		Title:       title,
		Description: "description of " + title,
		VideoFile:   "http://media.test/videos/" + title + ".mp4",
		Thumbnail:   "http://media.test/thumbnails/" + title + ".png",
		Duration:    120,
		IsPublished: published,
		Tags:        []string{"test"},
	}
	require.NoError(t, repository.NewVideoRepository(db).Create(video))
	return video
}
