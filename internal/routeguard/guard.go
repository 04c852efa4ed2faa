package routeguard

import (
	"strings"

	"github.com/spec-kit/content-gateway/internal/locale"
)

// Decision is the outcome of classifying a navigation path against the
// session state. A non-empty Redirect means the request must be sent to
// that target with replace semantics; otherwise the route is permitted.
type Decision struct {
	Redirect    string
	IsProtected bool
	IsAuthRoute bool
	Loading     bool
}

// Allowed reports whether the route may render.
func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

// Guard classifies paths against the configured protected and
// auth-only prefix sets. The sets are disjoint by convention; if both
// somehow match, the protected rule wins. This is advisory UI-level
// gating only — the upstream API authorizes every request on its own.
type Guard struct {
	locales   *locale.Set
	protected []string
	authOnly  []string
}

// New builds a Guard over the shared locale set.
func New(locales *locale.Set, protected, authOnly []string) *Guard {
	return &Guard{locales: locales, protected: protected, authOnly: authOnly}
}

// Evaluate classifies path. While loading is true the redirect rules
// are skipped entirely; only the classification flags are reported.
func (g *Guard) Evaluate(path string, authenticated, loading bool) Decision {
	loc, stripped, _ := g.locales.Split(path)

	d := Decision{
		IsProtected: matchesAny(stripped, g.protected),
		IsAuthRoute: matchesAny(stripped, g.authOnly),
		Loading:     loading,
	}
	if loading {
		return d
	}

	switch {
	case d.IsProtected && !authenticated:
		d.Redirect = g.locales.Root(loc)
	case d.IsAuthRoute && authenticated:
		d.Redirect = g.locales.Root(loc)
	}
	return d
}

func matchesAny(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
