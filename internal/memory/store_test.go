// File path: internal/memory/store_test.go
package memory

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "chat.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndHistoryRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	turns := []struct{ role, content string }{
		{"user", "밀리오 덱 추천해줘"},
		{"assistant", "밀리오 덱은 현재 S 티어입니다."},
		{"user", "아이템은?"},
	}
	for _, turn := range turns {
		if err := store.Append(ctx, "session-1", turn.role, turn.content); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	history, err := store.History(ctx, "session-1", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(history))
	}
	for i, turn := range turns {
		if history[i].Role != turn.role || history[i].Content != turn.content {
			t.Fatalf("message %d mismatch: %+v", i, history[i])
		}
	}
}

func TestHistoryLimitReturnsMostRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	for _, content := range []string{"first", "second", "third"} {
		if err := store.Append(ctx, "session-2", "user", content); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	history, err := store.History(ctx, "session-2", 2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].Content != "second" || history[1].Content != "third" {
		t.Fatalf("expected the most recent messages in order, got %+v", history)
	}
}

func TestHistoryIsolatesSessions(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	if err := store.Append(ctx, "session-a", "user", "hello"); err != nil {
		t.Fatalf("append: %v", err)
	}
	history, err := store.History(ctx, "session-b", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history for other session, got %d", len(history))
	}
}

func TestAppendRequiresSessionID(t *testing.T) {
	store := openTestStore(t)
	if err := store.Append(context.Background(), " ", "user", "hello"); err == nil {
		t.Fatal("expected append without session id to fail")
	}
}
