package dto

// CreateBookmarkRequest payload.
type CreateBookmarkRequest struct {
	Domain string `json:"domain"`
	Slug   string `json:"slug"`
	Title  string `json:"title"`
}
