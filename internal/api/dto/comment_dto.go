package dto

import "time"

// CommentCreateRequest posts a comment on a video.
type CommentCreateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// CommentUpdateRequest rewrites an existing comment.
type CommentUpdateRequest struct {
	NewContent string `json:"newContent" binding:"required,min=1,max=1000"`
}

// CommentView is the enriched comment a watch page renders: author
// summary, live like count and viewer-relative flags.
type CommentView struct {
	ID            string      `json:"_id"`
	Content       string      `json:"content"`
	CreatedAt     time.Time   `json:"createdAt"`
	User          UserSummary `json:"user"`
	Like          int64       `json:"like"`
	DoesUserLiked bool        `json:"doesUserLiked"`
	IsUserComment bool        `json:"isUserComment"`
}
