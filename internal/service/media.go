package service

import (
	"context"
	"io"

	infraMinio "vidtube/internal/infra/minio"
)

// Media buckets.
const (
	BucketVideos     = "videos"
	BucketThumbnails = "thumbnails"
	BucketAvatars    = "avatars"
	BucketCovers     = "covers"
)

// FileUpload is an incoming multipart file.
type FileUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Ext         string
}

// MediaStore abstracts the object storage so services can be exercised
// without a live MinIO.
type MediaStore interface {
	// Upload stores the file and returns its public URL.
	Upload(ctx context.Context, bucket, objectName string, file *FileUpload) (string, error)
	Remove(ctx context.Context, bucket, objectName string) error
}

type minioStore struct{}

// NewMinioStore returns the MinIO-backed media store.
func NewMinioStore() MediaStore {
	return &minioStore{}
}

func (s *minioStore) Upload(ctx context.Context, bucket, objectName string, file *FileUpload) (string, error) {
	if _, err := infraMinio.UploadFile(ctx, bucket, objectName, file.Reader, file.Size, file.ContentType); err != nil {
		return "", err
	}
	return infraMinio.PublicURL(bucket, objectName), nil
}

func (s *minioStore) Remove(ctx context.Context, bucket, objectName string) error {
	return infraMinio.RemoveFile(ctx, bucket, objectName)
}
