package session

import (
	"reflect"
	"testing"
	"time"

	"github.com/spec-kit/content-gateway/internal/domain"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret-a")

	sealed, err := codec.Seal("bearer-xyz", true, time.Hour)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	token, remember, ok := codec.Open(sealed)
	if !ok {
		t.Fatalf("open rejected freshly sealed value")
	}
	if token != "bearer-xyz" || !remember {
		t.Fatalf("round trip mismatch: token=%q remember=%v", token, remember)
	}
}

func TestTokenCodecRejectsForeignSignature(t *testing.T) {
	sealed, err := NewTokenCodec("secret-a").Seal("bearer-xyz", false, 0)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, _, ok := NewTokenCodec("secret-b").Open(sealed); ok {
		t.Fatalf("token sealed under a different secret must read as absent")
	}
}

func TestTokenCodecRejectsGarbage(t *testing.T) {
	if _, _, ok := NewTokenCodec("secret-a").Open("not.a.jwt"); ok {
		t.Fatalf("garbage must read as absent")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	want := &domain.Profile{ID: 42, Name: "Dr. Salem", Email: "salem@example.com", Locale: "ar"}

	encoded, err := encodeProfile(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, ok := decodeProfile(encoded)
	if !ok {
		t.Fatalf("decode rejected valid profile")
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestCorruptProfilePurgedNotPropagated(t *testing.T) {
	mem := NewMemory(NewTokenCodec("secret"), time.Hour)
	if err := mem.SetUser(&domain.Profile{ID: 1, Name: "n"}, true); err != nil {
		t.Fatalf("set user: %v", err)
	}

	mem.Corrupt(memUserKey)

	if _, ok := mem.User(); ok {
		t.Fatalf("corrupt profile must read as absent")
	}
	if mem.Has(memUserKey) {
		t.Fatalf("corrupt profile entry must be purged")
	}
}

func TestCorruptTokenPurged(t *testing.T) {
	mem := NewMemory(NewTokenCodec("secret"), time.Hour)
	if err := mem.SetToken("tok", false); err != nil {
		t.Fatalf("set token: %v", err)
	}

	mem.Corrupt(memTokenKey)

	if _, ok := mem.Token(); ok {
		t.Fatalf("corrupt token must read as absent")
	}
	if mem.Has(memTokenKey) {
		t.Fatalf("corrupt token entry must be purged")
	}
}
