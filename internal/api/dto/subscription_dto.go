package dto

// ChannelSummary is a channel block: the owner identity plus the
// channel's live subscriber count.
type ChannelSummary struct {
	UserSummary
	SubscriberCount int64 `json:"subscriberCount"`
}

// SubscribedChannel is one row of the viewer's subscription list.
// IsSubscribed is always true for the owner's own list; it exists so
// the client can flip rows optimistically after an unsubscribe.
type SubscribedChannel struct {
	ID           string         `json:"_id"`
	Channel      ChannelSummary `json:"channel"`
	IsSubscribed bool           `json:"isSubscribed"`
}

// SubscribeToggleData reports the state after a toggle.
type SubscribeToggleData struct {
	Subscribed       bool  `json:"subscribed"`
	TotalSubscribers int64 `json:"totalSubscribers"`
}
