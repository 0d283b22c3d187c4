package entities

// FeedItem is an event placed in a user's personalised feed
type FeedItem struct {
	Event         *Event   `json:"event"`
	Score         float64  `json:"score"`
	MatchedLabels []string `json:"matched_labels,omitempty"`
	KeywordHits   []string `json:"keyword_hits,omitempty"`
}

// FeedPage is one page of a user's feed
type FeedPage struct {
	Items        []FeedItem `json:"items"`
	Interests    []string   `json:"interests"`
	Personalized bool       `json:"personalized"`
	Page         int        `json:"page"`
	PageSize     int        `json:"page_size"`
	TotalCount   int        `json:"total_count"`
	HasMore      bool       `json:"has_more"`
}
