package locale

import "strings"

// Set holds the locales the gateway routes under, plus the fallback
// used when a path carries no recognized locale segment. Both the
// navigation middleware and the route guard resolve locales through
// the same Set so the two can never diverge.
type Set struct {
	known    map[string]struct{}
	fallback string
}

// NewSet builds a Set from the supported locale codes. The fallback is
// added to the known set if missing.
func NewSet(supported []string, fallback string) *Set {
	if fallback == "" {
		fallback = "en"
	}
	known := make(map[string]struct{}, len(supported)+1)
	for _, code := range supported {
		if code != "" {
			known[code] = struct{}{}
		}
	}
	known[fallback] = struct{}{}
	return &Set{known: known, fallback: fallback}
}

// Default returns the fallback locale.
func (s *Set) Default() string {
	return s.fallback
}

// Recognized reports whether code is a supported locale.
func (s *Set) Recognized(code string) bool {
	_, ok := s.known[code]
	return ok
}

// Split strips the leading path segment, which routed paths always
// reserve for the locale, and returns the locale it named, the
// remaining path and whether the segment was a recognized locale.
// Unrecognized segments fall back to the default locale but are still
// stripped. The remaining path is never empty; it falls back to "/".
func (s *Set) Split(path string) (string, string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	seg, rest, _ := strings.Cut(trimmed, "/")

	loc := seg
	recognized := s.Recognized(seg)
	if !recognized {
		loc = s.fallback
	}
	if rest == "" {
		return loc, "/", recognized
	}
	return loc, "/" + rest, recognized
}

// Root returns the locale home path used as the guard redirect target.
func (s *Set) Root(code string) string {
	if !s.Recognized(code) {
		code = s.fallback
	}
	return "/" + code
}
