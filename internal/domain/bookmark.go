package domain

import "time"

// ContentDomain identifies which content collection a bookmark points into.
type ContentDomain string

const (
	ContentLectures   ContentDomain = "lectures"
	ContentProtocols  ContentDomain = "protocols"
	ContentFlashcards ContentDomain = "flashcards"
	ContentPowerPoint ContentDomain = "power-points"
	ContentHandbook   ContentDomain = "handbook"
	ContentEssentials ContentDomain = "essentials"
	ContentArticles   ContentDomain = "articles"
)

// Valid reports whether the domain names a known content collection.
func (d ContentDomain) Valid() bool {
	switch d {
	case ContentLectures, ContentProtocols, ContentFlashcards,
		ContentPowerPoint, ContentHandbook, ContentEssentials, ContentArticles:
		return true
	}
	return false
}

// Bookmark is a user-saved pointer to one content item.
type Bookmark struct {
	ID        string        `json:"id"`
	UserID    int64         `json:"user_id"`
	Domain    ContentDomain `json:"domain"`
	Slug      string        `json:"slug"`
	Title     string        `json:"title"`
	CreatedAt time.Time     `json:"created_at"`
}
