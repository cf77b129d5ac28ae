package dto

// LikeToggleData reports the state after a like toggle.
type LikeToggleData struct {
	Liked         bool  `json:"liked"`
	NumberOfLikes int64 `json:"numberOfLikes"`
}
