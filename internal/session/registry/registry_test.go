package registry

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/spec-kit/content-gateway/internal/domain"
)

func newTestRegistry(t *testing.T) (*Registry, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(client, time.Hour, 30), mr
}

func TestPutLookupDelete(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()
	profile := &domain.Profile{ID: 11, Name: "Hana", Email: "hana@example.com"}

	if err := reg.Put(ctx, "tok-abc", profile, false); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := reg.Lookup(ctx, "tok-abc")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.ID != 11 || got.Email != "hana@example.com" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if err := reg.Delete(ctx, "tok-abc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := reg.Lookup(ctx, "tok-abc"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestLookupUnknownToken(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if _, err := reg.Lookup(context.Background(), "never-seen"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	reg, mr := newTestRegistry(t)
	ctx := context.Background()

	if err := reg.Put(ctx, "tok-short", &domain.Profile{ID: 1, Name: "x"}, false); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := reg.Put(ctx, "tok-remembered", &domain.Profile{ID: 2, Name: "y"}, true); err != nil {
		t.Fatalf("put remembered: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	if _, err := reg.Lookup(ctx, "tok-short"); err != ErrNotFound {
		t.Fatalf("non-remembered session should expire, got %v", err)
	}
	if _, err := reg.Lookup(ctx, "tok-remembered"); err != nil {
		t.Fatalf("remembered session should survive, got %v", err)
	}
}

func TestCorruptEntryDropped(t *testing.T) {
	reg, mr := newTestRegistry(t)
	ctx := context.Background()

	key := "sessions:" + Fingerprint("tok-bad")
	if err := mr.Set(key, "{not json"); err != nil {
		t.Fatalf("seed corrupt entry: %v", err)
	}

	if _, err := reg.Lookup(ctx, "tok-bad"); err != ErrNotFound {
		t.Fatalf("corrupt entry must read as not found, got %v", err)
	}
	if mr.Exists(key) {
		t.Fatalf("corrupt entry must be purged")
	}
}

func TestEmptyTokenRejected(t *testing.T) {
	reg, _ := newTestRegistry(t)
	if err := reg.Put(context.Background(), "", &domain.Profile{ID: 1, Name: "n"}, false); err == nil {
		t.Fatalf("expected error for empty token")
	}
}
