package scheduling

import (
	"context"
	"errors"
	"testing"

	"meetbot/models"
)

func TestForDurationPicksClosestLength(t *testing.T) {
	api := &stubAPI{types: []models.EventType{
		{ID: 1, Title: "Quick", Length: 15},
		{ID: 2, Title: "Standard", Length: 30},
		{ID: 3, Title: "Deep Dive", Length: 60},
	}}
	s := &Selector{API: api}

	got, err := s.ForDuration(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 2 {
		t.Errorf("picked event type %d (%s), want 2", got.ID, got.Title)
	}
}

func TestForDurationTieKeepsListOrder(t *testing.T) {
	api := &stubAPI{types: []models.EventType{
		{ID: 1, Length: 20},
		{ID: 2, Length: 40},
	}}
	s := &Selector{API: api}

	got, err := s.ForDuration(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 1 {
		t.Errorf("picked event type %d, want first of the tie", got.ID)
	}
}

func TestForDurationCreatesDefaultWhenEmpty(t *testing.T) {
	api := &stubAPI{}
	s := &Selector{API: api}

	got, err := s.ForDuration(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.createdArgs.title != "30 Minute Meeting" || api.createdArgs.slug != "30min" || api.createdArgs.length != 30 {
		t.Errorf("created %+v, want the default 30-minute type", api.createdArgs)
	}
	if got.Length != 30 {
		t.Errorf("length = %d, want 30", got.Length)
	}
}

func TestForDurationListErrorFallsBackToCreate(t *testing.T) {
	api := &stubAPI{typesErr: errors.New("boom")}
	s := &Selector{API: api}

	got, err := s.ForDuration(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || api.createdArgs.title == "" {
		t.Error("list failure did not fall back to creating the default type")
	}
}

func TestForDurationCreateFailure(t *testing.T) {
	api := &stubAPI{createErr: errors.New("boom")}
	s := &Selector{API: api}

	_, err := s.ForDuration(context.Background(), 30)
	if !errors.Is(err, ErrNoEventType) {
		t.Errorf("error = %v, want ErrNoEventType", err)
	}
}

func TestForDurationBackfillsZeroLength(t *testing.T) {
	api := &stubAPI{types: []models.EventType{{ID: 5, Length: 0}}}
	s := &Selector{API: api}

	got, err := s.ForDuration(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Length != 30 {
		t.Errorf("length = %d, want backfilled 30", got.Length)
	}
}
