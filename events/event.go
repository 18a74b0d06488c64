package events

// Event represents one live or scheduled match/program. Timestamps are kept
// in their canonical wire form (see timestamp.go); everything derived from
// them (status, countdowns) is computed on read and never stored.
type Event struct {
	ID           string      `json:"id"`
	Category     string      `json:"category"`
	League       string      `json:"league"`
	LeagueLogo   string      `json:"leagueLogo"`
	Team1Name    string      `json:"team1Name"`
	Team1Logo    string      `json:"team1Logo"`
	Team2Name    string      `json:"team2Name"`
	Team2Logo    string      `json:"team2Logo"`
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime,omitempty"` // empty = no end time known
	IsLive       bool        `json:"isLive"`
	Links        []EventLink `json:"links"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	CategoryID   string      `json:"eventCategoryId,omitempty"`
	CategoryName string      `json:"eventCategoryName,omitempty"`
}

// EventLink is one playable stream variant of an event.
type EventLink struct {
	Quality    string `json:"quality"`
	URL        string `json:"url"`
	Cookie     string `json:"cookie,omitempty"`
	Referer    string `json:"referer,omitempty"`
	Origin     string `json:"origin,omitempty"`
	UserAgent  string `json:"userAgent,omitempty"`
	DRMScheme  string `json:"drmScheme,omitempty"`
	DRMLicense string `json:"drmLicenseUrl,omitempty"`
}

// EventCategory is a browsable event group. Native categories come from the
// data store as-is; categories derived from the external feed are synthesized
// with the raw category name as id (see DeriveCategories).
type EventCategory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	LogoURL   string `json:"logoUrl,omitempty"`
	Order     int    `json:"order,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}
