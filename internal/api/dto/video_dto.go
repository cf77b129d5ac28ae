package dto

import "time"

// VideoUploadRequest is the multipart form accompanying the video and
// thumbnail files.
type VideoUploadRequest struct {
	Title       string   `form:"title" binding:"required,min=3,max=30"`
	Description string   `form:"description" binding:"required,min=3,max=1000"`
	IsPublished *bool    `form:"isPublished" binding:"required"`
	Duration    int      `form:"duration" binding:"omitempty,min=0"`
	Tags        []string `form:"tag" binding:"omitempty"`
}

// VideoUpdateRequest edits title, description and tags; a replacement
// thumbnail arrives as a multipart file.
type VideoUpdateRequest struct {
	Title       string   `form:"title" binding:"omitempty,min=3,max=30"`
	Description string   `form:"description" binding:"omitempty,min=3,max=1000"`
	Tags        []string `form:"tag" binding:"omitempty"`
}

// VideoSummary is the plain video block used in feeds, lists and
// history; OwnerDetails is present where the endpoint joins the owner.
type VideoSummary struct {
	ID           string       `json:"_id"`
	VideoFile    string       `json:"videoFile"`
	Thumbnail    string       `json:"thumbnail"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Duration     int          `json:"duration"`
	Views        int64        `json:"views"`
	CreatedAt    time.Time    `json:"createdAt"`
	Tags         []string     `json:"tag"`
	OwnerDetails *UserSummary `json:"ownerDetails,omitempty"`
}

// VideoDetail is the watch-page view model: owner join, live like count
// and viewer-relative flags.
type VideoDetail struct {
	ID                        string      `json:"_id"`
	VideoFile                 string      `json:"videoFile"`
	Thumbnail                 string      `json:"thumbnail"`
	Title                     string      `json:"title"`
	Description               string      `json:"description"`
	Duration                  int         `json:"duration"`
	Views                     int64       `json:"views"`
	OwnerDetails              UserSummary `json:"ownerDetails"`
	CreatedAt                 time.Time   `json:"createdAt"`
	Tags                      []string    `json:"tag"`
	NumberOfLikes             int64       `json:"numberOfLikes"`
	DoesUserAlreadyLiked      bool        `json:"doesUserAlreadyLiked"`
	DoesUserAlreadySubscribed bool        `json:"doesUserAlreadySubscribed"`
}

// VideoListData is a paginated list of video summaries.
type VideoListData struct {
	Videos     []VideoSummary `json:"videos"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int64          `json:"totalPages"`
}

// HistoryEntry is a watched video with its recency stamp.
type HistoryEntry struct {
	VideoSummary
	WatchedAt time.Time `json:"watchedAt"`
}
