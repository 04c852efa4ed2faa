package locale

import "testing"

func TestSplit(t *testing.T) {
	set := NewSet([]string{"en", "ar"}, "en")

	cases := []struct {
		name           string
		path           string
		wantLoc        string
		wantPath       string
		wantRecognized bool
	}{
		{"locale with route", "/en/mcqs/123", "en", "/mcqs/123", true},
		{"arabic locale", "/ar/login", "ar", "/login", true},
		{"unrecognized locale still stripped", "/fr/login", "en", "/login", false},
		{"bare locale", "/en", "en", "/", true},
		{"bare locale trailing slash", "/ar/", "ar", "/", true},
		{"root", "/", "en", "/", false},
		{"empty", "", "en", "/", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loc, rest, recognized := set.Split(tc.path)
			if loc != tc.wantLoc || rest != tc.wantPath || recognized != tc.wantRecognized {
				t.Fatalf("Split(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tc.path, loc, rest, recognized, tc.wantLoc, tc.wantPath, tc.wantRecognized)
			}
		})
	}
}

func TestRoot(t *testing.T) {
	set := NewSet([]string{"en", "ar"}, "en")

	if got := set.Root("ar"); got != "/ar" {
		t.Fatalf("Root(ar) = %q", got)
	}
	if got := set.Root("fr"); got != "/en" {
		t.Fatalf("Root(fr) = %q, want fallback /en", got)
	}
}

func TestFallbackAlwaysRecognized(t *testing.T) {
	set := NewSet(nil, "en")
	if !set.Recognized("en") {
		t.Fatal("fallback locale must be recognized")
	}
}
