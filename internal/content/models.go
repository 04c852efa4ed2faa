package content

import "github.com/spec-kit/content-gateway/internal/domain"

// Response shapes for the remote content API. Field sets mirror what
// the API reports; the gateway passes them through untouched.

// Lecture is one recorded lecture.
type Lecture struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	CategoryID int64  `json:"category_id"`
	Duration   int    `json:"duration,omitempty"`
	Thumbnail  string `json:"thumbnail,omitempty"`
	VideoURL   string `json:"video_url,omitempty"`
}

// LectureCategory groups lectures.
type LectureCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"lectures_count,omitempty"`
}

// Protocol is one clinical protocol document.
type Protocol struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	CategoryID int64  `json:"category_id"`
	FileURL    string `json:"file_url,omitempty"`
}

// ProtocolCategory groups protocols.
type ProtocolCategory struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"protocols_count,omitempty"`
}

// FlashcardDeck is a study deck.
type FlashcardDeck struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Cards int    `json:"cards_count,omitempty"`
}

// Flashcard is one card within a deck.
type Flashcard struct {
	ID     int64  `json:"id"`
	DeckID int64  `json:"deck_id"`
	Front  string `json:"front"`
	Back   string `json:"back"`
}

// PowerPoint is a downloadable slide deck.
type PowerPoint struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	FileURL string `json:"file_url,omitempty"`
}

// BookSection is one section of a handbook or essentials book.
type BookSection struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Order    int    `json:"order,omitempty"`
	BodyHTML string `json:"body,omitempty"`
}

// Article is an editorial article.
type Article struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// LoginResult is what the upstream login endpoint reports.
type LoginResult struct {
	User  domain.Profile `json:"user"`
	Token string         `json:"token"`
}
