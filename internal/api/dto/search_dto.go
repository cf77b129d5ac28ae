package dto

// SearchData is the result of a video search, whichever backend served
// it.
type SearchData struct {
	Videos []VideoSummary `json:"videos"`
	Total  int64          `json:"total"`
	Query  string         `json:"query"`
}
