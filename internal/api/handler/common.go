package handler

import (
	"mime/multipart"
	"path/filepath"
	"strconv"

	"vidtube/internal/api/response"
	"vidtube/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID reads a path parameter that must be a UUID. Malformed ids are
// rejected here, before they ever reach a uuid-typed column.
func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if uuid.Validate(id) != nil {
		response.BadRequest(c, "invalid "+name)
		return "", false
	}
	return id, true
}

// parsePagination reads page/page_size query params with sane bounds.
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "12"))
	if err != nil || pageSize < 1 || pageSize > 50 {
		pageSize = 12
	}

	return page, pageSize
}

// openUpload turns a multipart file header into a service upload. The
// caller must invoke the returned closer after the service call.
func openUpload(header *multipart.FileHeader) (*service.FileUpload, func(), error) {
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	upload := &service.FileUpload{
		Reader:      f,
		Size:        header.Size,
		ContentType: contentType,
		Ext:         filepath.Ext(header.Filename),
	}

	return upload, func() { f.Close() }, nil
}

// optionalUpload opens a form file that may be absent.
func optionalUpload(c *gin.Context, field string) (*service.FileUpload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}, nil
	}
	return openUpload(header)
}
