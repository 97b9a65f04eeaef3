package session

import (
	"context"
	"testing"

	"meetbot/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := &models.Session{
		ID:    "conv-1",
		State: models.UserState{Email: "a@b.com", Timezone: "UTC"},
		Messages: []models.Message{
			{Role: "user", Content: "hello"},
		},
	}
	if err := store.Put(ctx, sess); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, "conv-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.State.Email != "a@b.com" || len(got.Messages) != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestMemoryStoreMissReturnsNil(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil for unknown conversation", got)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Put(ctx, &models.Session{ID: "conv-1"})
	if err := store.Delete(ctx, "conv-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := store.Get(ctx, "conv-1"); got != nil {
		t.Error("session survived deletion")
	}

	if err := store.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete of unknown id: %v", err)
	}
}

func TestMemoryStoreIsolatesConversations(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Put(ctx, &models.Session{ID: "conv-1", State: models.UserState{Email: "a@b.com"}})
	store.Put(ctx, &models.Session{ID: "conv-2", State: models.UserState{Email: "c@d.com"}})

	one, _ := store.Get(ctx, "conv-1")
	two, _ := store.Get(ctx, "conv-2")
	if one.State.Email != "a@b.com" || two.State.Email != "c@d.com" {
		t.Errorf("sessions bled across conversations: %+v / %+v", one, two)
	}
}
