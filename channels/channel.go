// Package channels holds the shared channel and category model served from
// the native data payload.
package channels

// Category is a channel category. M3UURL, when set, points at an external
// playlist whose channels belong to the category.
type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	IconURL string `json:"iconUrl,omitempty"`
	M3UURL  string `json:"m3uUrl,omitempty"`
	Order   int    `json:"order"`
}

// Channel is a single watchable channel. Links carries the alternative
// streams; StreamURL is the legacy single-stream field kept for sources that
// publish only one URL.
type Channel struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	LogoURL      string `json:"logoUrl"`
	StreamURL    string `json:"streamUrl"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	GroupTitle   string `json:"groupTitle,omitempty"`
	Links        []Link `json:"links,omitempty"`
	Team1Logo    string `json:"team1Logo,omitempty"`
	Team2Logo    string `json:"team2Logo,omitempty"`
	IsLive       bool   `json:"isLive"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`
}

// Link is one stream variant of a channel, including the request headers and
// DRM material a player needs to open it.
type Link struct {
	Quality    string `json:"quality"`
	URL        string `json:"url"`
	Cookie     string `json:"cookie,omitempty"`
	Referer    string `json:"referer,omitempty"`
	Origin     string `json:"origin,omitempty"`
	UserAgent  string `json:"userAgent,omitempty"`
	DRMScheme  string `json:"drmScheme,omitempty"`
	DRMLicense string `json:"drmLicenseUrl,omitempty"`
}
