package notify

import (
	"testing"
	"time"
)

func TestPushListDismiss(t *testing.T) {
	store := NewStore(5 * time.Second)

	a := store.Push("sess-1", "Saved", "Bookmark added", LevelSuccess)
	store.Push("sess-1", "Heads up", "", LevelInfo)
	store.Push("sess-2", "Other session", "", LevelInfo)

	toasts := store.List("sess-1")
	if len(toasts) != 2 {
		t.Fatalf("expected 2 toasts, got %d", len(toasts))
	}

	if !store.Dismiss("sess-1", a.ID) {
		t.Fatalf("dismiss should report the toast existed")
	}
	if store.Dismiss("sess-1", a.ID) {
		t.Fatalf("second dismiss should report absence")
	}
	if got := store.List("sess-1"); len(got) != 1 {
		t.Fatalf("expected 1 toast after dismiss, got %d", len(got))
	}
	if got := store.List("sess-2"); len(got) != 1 {
		t.Fatalf("sessions must not share queues, got %d", len(got))
	}
}

func TestAutoDismissAfterTTL(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(5 * time.Second).WithClock(func() time.Time { return current })

	store.Push("sess", "Transient", "", LevelInfo)

	current = current.Add(4 * time.Second)
	if got := store.List("sess"); len(got) != 1 {
		t.Fatalf("toast dismissed too early, got %d", len(got))
	}

	current = current.Add(2 * time.Second)
	if got := store.List("sess"); len(got) != 0 {
		t.Fatalf("toast should auto-dismiss after TTL, got %d", len(got))
	}
}

func TestListCopiesQueue(t *testing.T) {
	store := NewStore(time.Minute)
	store.Push("sess", "one", "", LevelInfo)

	got := store.List("sess")
	got[0].Title = "mutated"

	if store.List("sess")[0].Title != "one" {
		t.Fatalf("List must return a copy")
	}
}
