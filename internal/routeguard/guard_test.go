package routeguard

import (
	"testing"

	"github.com/spec-kit/content-gateway/internal/locale"
)

func newTestGuard() *Guard {
	locales := locale.NewSet([]string{"en", "ar"}, "en")
	return New(locales, []string{"/mcqs"}, []string{"/login", "/register"})
}

func TestEvaluate(t *testing.T) {
	guard := newTestGuard()

	cases := []struct {
		name          string
		path          string
		authenticated bool
		loading       bool
		wantRedirect  string
		wantProtected bool
		wantAuthRoute bool
	}{
		{
			name:          "protected unauthenticated redirects to locale root",
			path:          "/en/mcqs/123",
			wantRedirect:  "/en",
			wantProtected: true,
		},
		{
			name:          "protected authenticated renders",
			path:          "/en/mcqs/123",
			authenticated: true,
			wantProtected: true,
		},
		{
			name:          "auth route while authenticated redirects",
			path:          "/ar/login",
			authenticated: true,
			wantRedirect:  "/ar",
			wantAuthRoute: true,
		},
		{
			name:          "auth route while anonymous renders",
			path:          "/ar/login",
			wantAuthRoute: true,
		},
		{
			name:          "unrecognized locale falls back to default for redirect",
			path:          "/fr/login",
			authenticated: true,
			wantRedirect:  "/en",
			wantAuthRoute: true,
		},
		{
			name: "neutral route renders either way",
			path: "/en/protocols",
		},
		{
			name:          "loading skips redirect rules",
			path:          "/en/mcqs/123",
			loading:       true,
			wantProtected: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := guard.Evaluate(tc.path, tc.authenticated, tc.loading)
			if d.Redirect != tc.wantRedirect {
				t.Fatalf("redirect = %q, want %q", d.Redirect, tc.wantRedirect)
			}
			if d.IsProtected != tc.wantProtected || d.IsAuthRoute != tc.wantAuthRoute {
				t.Fatalf("classification = {protected:%v auth:%v}, want {protected:%v auth:%v}",
					d.IsProtected, d.IsAuthRoute, tc.wantProtected, tc.wantAuthRoute)
			}
			if tc.loading && !d.Loading {
				t.Fatalf("loading flag not carried through")
			}
		})
	}
}

func TestRedirectTargetIsStable(t *testing.T) {
	guard := newTestGuard()

	// Re-evaluating the redirect target itself must not redirect again,
	// otherwise the guard would loop.
	first := guard.Evaluate("/en/mcqs/123", false, false)
	if first.Redirect != "/en" {
		t.Fatalf("unexpected redirect %q", first.Redirect)
	}
	second := guard.Evaluate(first.Redirect, false, false)
	if !second.Allowed() {
		t.Fatalf("redirect target must be allowed, got redirect to %q", second.Redirect)
	}
}

func TestProtectedRuleWinsOverAuthRule(t *testing.T) {
	locales := locale.NewSet([]string{"en"}, "en")
	guard := New(locales, []string{"/account"}, []string{"/account/login"})

	d := guard.Evaluate("/en/account/login", false, false)
	if !d.IsProtected || d.Redirect != "/en" {
		t.Fatalf("protected rule must take priority, got %+v", d)
	}
}
