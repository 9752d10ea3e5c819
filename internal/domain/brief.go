package domain

import "time"

// DateFormat is the calendar-date layout used as the storage key for briefs.
const DateFormat = "2006-01-02"

// SourceRef points a brief item back at the article it was built from.
type SourceRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// BriefItem is one scored, categorized entry of a daily brief.
type BriefItem struct {
	Title      string      `json:"title"`
	Type       Category    `json:"type"`
	Summary    string      `json:"summary"`
	Importance int         `json:"importance"`
	Tags       []string    `json:"tags"`
	Sources    []SourceRef `json:"sources"`
	CoverImage string      `json:"coverImage,omitempty"`
	Time       time.Time   `json:"time"`
}

// Brief is the assembled daily record for one calendar date. Immutable
// after creation except for explicit regeneration under the same date.
type Brief struct {
	Date        string      `json:"date"`
	Headline    string      `json:"headline"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Items       []BriefItem `json:"items"`
}

// EmptyBrief is the placeholder shape returned when no brief exists for
// a date. Callers get a valid object, never a 404.
func EmptyBrief(date string) Brief {
	return Brief{Date: date, Headline: "", Items: []BriefItem{}}
}

// ValidDate reports whether date is a well-formed YYYY-MM-DD string.
func ValidDate(date string) bool {
	_, err := time.Parse(DateFormat, date)
	return err == nil
}
