package assistant

import (
	"strings"
	"testing"
)

func TestRenderBooked(t *testing.T) {
	got := Render(Outcome{Kind: OutcomeBooked, Title: "Sync", Date: "2024-06-10", Time: "14:00"})
	for _, want := range []string{"Meeting booked", "Sync", "2024-06-10", "14:00"} {
		if !strings.Contains(got, want) {
			t.Errorf("booked reply missing %q: %q", want, got)
		}
	}
}

func TestRenderSlotTaken(t *testing.T) {
	got := Render(Outcome{
		Kind:         OutcomeSlotTaken,
		Date:         "2024-06-10",
		Time:         "14:00",
		Alternatives: []string{"14:30", "15:00"},
	})
	for _, want := range []string{"(14:00) is not available", "2024-06-10", "- 14:30", "- 15:00", "choose one of these times"} {
		if !strings.Contains(got, want) {
			t.Errorf("slot-taken reply missing %q: %q", want, got)
		}
	}
}

func TestRenderSlotTakenNoAlternatives(t *testing.T) {
	got := Render(Outcome{Kind: OutcomeSlotTaken, Date: "2024-06-10", Time: "14:00"})
	if !strings.Contains(got, "choose a different time") {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestRenderClarifications(t *testing.T) {
	cases := []struct {
		name string
		o    Outcome
		want string
	}{
		{"book email", Outcome{Kind: OutcomeNeedEmail, Op: "book"}, "to book a meeting"},
		{"list email", Outcome{Kind: OutcomeNeedEmail, Op: "list"}, "to view your events"},
		{"cancel email", Outcome{Kind: OutcomeNeedEmail, Op: "cancel"}, "to cancel a meeting"},
		{"time", Outcome{Kind: OutcomeNeedTime}, "specify the time"},
		{"when", Outcome{Kind: OutcomeNeedWhen}, "date and time of the meeting to cancel"},
		{"bad format", Outcome{Kind: OutcomeBadDateTime}, "YYYY-MM-DD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.o); !strings.Contains(got, tc.want) {
				t.Errorf("Render = %q, want substring %q", got, tc.want)
			}
		})
	}
}

func TestRenderAgenda(t *testing.T) {
	got := Render(Outcome{Kind: OutcomeAgenda, Entries: []string{"- Sync on 2024-06-10 at 14:00"}})
	if !strings.Contains(got, "Your upcoming events") || !strings.Contains(got, "Sync on 2024-06-10 at 14:00") {
		t.Errorf("unexpected agenda reply: %q", got)
	}

	empty := Render(Outcome{Kind: OutcomeAgendaEmpty})
	if !strings.Contains(empty, "no upcoming events") {
		t.Errorf("unexpected empty-agenda reply: %q", empty)
	}
}

func TestRenderCancellation(t *testing.T) {
	got := Render(Outcome{Kind: OutcomeCancelled, Date: "2024-06-10", Time: "14:00"})
	if !strings.Contains(got, "2024-06-10 at 14:00 has been canceled") {
		t.Errorf("unexpected cancel reply: %q", got)
	}
	if got := Render(Outcome{Kind: OutcomeNoMatch}); !strings.Contains(got, "No matching event found") {
		t.Errorf("unexpected no-match reply: %q", got)
	}
	if got := Render(Outcome{Kind: OutcomeCancelFailed}); !strings.Contains(got, "Failed to cancel") {
		t.Errorf("unexpected cancel-failed reply: %q", got)
	}
}

func TestRenderFailure(t *testing.T) {
	if got := Render(Outcome{Kind: OutcomeFailure}); !strings.Contains(got, "encountered an error") {
		t.Errorf("unexpected failure reply: %q", got)
	}
	if got := Render(Outcome{Kind: OutcomeBookingFailed, Err: "status 500"}); !strings.Contains(got, "Booking failed: status 500") {
		t.Errorf("unexpected booking-failed reply: %q", got)
	}
}
