package domain

// Profile is the authenticated user's identity as reported by the
// upstream content API.
type Profile struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Locale string `json:"locale,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}
