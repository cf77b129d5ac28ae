package dto

// ChannelInfo carries the live channel totals shown on the dashboard
// and on public channel pages.
type ChannelInfo struct {
	TotalVideos   int64 `json:"totalVideos"`
	TotalLikes    int64 `json:"totalLikes"`
	TotalComments int64 `json:"totalComments"`
	TotalViews    int64 `json:"totalViews"`
}

// ChannelStats is the owner dashboard view: the owner's identity, the
// subscriber count, and the live totals nested under channelInfo.
type ChannelStats struct {
	ID               string      `json:"_id"`
	FullName         string      `json:"fullName"`
	UserName         string      `json:"userName"`
	TotalSubscribers int64       `json:"totalSubscribers"`
	ChannelInfo      ChannelInfo `json:"channelInfo"`
}

// DashboardVideo is a video row on the owner dashboard, annotated with
// live engagement counts.
type DashboardVideo struct {
	VideoSummary
	NumberOfLikes    int64 `json:"numberOfLikes"`
	NumberOfComments int64 `json:"numberOfComments"`
}

// ChannelProfile is a channel page header: owner identity plus totals
// and the viewer's subscription state.
type ChannelProfile struct {
	ID                        string      `json:"_id"`
	UserName                  string      `json:"userName"`
	FullName                  string      `json:"fullName"`
	Avatar                    string      `json:"avatar"`
	CoverImage                string      `json:"coverImage"`
	TotalSubscribers          int64       `json:"totalSubscribers"`
	DoesUserAlreadySubscribed bool        `json:"doesUserAlreadySubscribed"`
	ChannelInfo               ChannelInfo `json:"channelInfo"`
}
