package dto

import "time"

// PlaylistCreateRequest creates an empty playlist.
type PlaylistCreateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=60"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// PlaylistVideoEntry is a video inside a playlist with the time it was
// added.
type PlaylistVideoEntry struct {
	VideoSummary
	AddedAt time.Time `json:"addedAt"`
}

// PlaylistSummary is a playlist without its videos, for owner listings.
type PlaylistSummary struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PlaylistDetail is a playlist with its videos in insertion order.
type PlaylistDetail struct {
	PlaylistSummary
	Videos []PlaylistVideoEntry `json:"videos"`
}
