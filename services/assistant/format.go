package assistant

import (
	"fmt"
	"strings"
)

// OutcomeKind enumerates the ways a dispatched intent can end.
type OutcomeKind int

const (
	OutcomeBooked OutcomeKind = iota
	OutcomeSlotTaken
	OutcomeBookingFailed
	OutcomeAgenda
	OutcomeAgendaEmpty
	OutcomeCancelled
	OutcomeCancelFailed
	OutcomeNoMatch
	OutcomeNeedEmail
	OutcomeNeedTime
	OutcomeNeedWhen
	OutcomeBadDateTime
	OutcomeFailure
)

// Outcome is the result record of one dispatched intent. Only the fields
// relevant to the kind are set.
type Outcome struct {
	Kind OutcomeKind

	// Op is the operation being clarified: "book", "list" or "cancel".
	Op string

	Title        string
	Date         string
	Time         string
	Alternatives []string
	Entries      []string
	Err          string
}

// Render turns an outcome into the user-facing reply. Pure, no I/O.
func Render(o Outcome) string {
	switch o.Kind {
	case OutcomeBooked:
		return fmt.Sprintf("✅ Meeting booked!\nTitle: %s\nDate: %s\nTime: %s", o.Title, o.Date, o.Time)

	case OutcomeSlotTaken:
		if len(o.Alternatives) == 0 {
			return "❌ The requested time is not available. Please choose a different time."
		}
		var lines []string
		for _, t := range o.Alternatives {
			lines = append(lines, "- "+t)
		}
		return fmt.Sprintf(
			"❌ The requested time (%s) is not available. Here are some available times on %s:\n%s\nPlease choose one of these times.",
			o.Time, o.Date, strings.Join(lines, "\n"))

	case OutcomeBookingFailed:
		return "❌ Booking failed: " + o.Err

	case OutcomeAgenda:
		return "📅 Your upcoming events:\n" + strings.Join(o.Entries, "\n")

	case OutcomeAgendaEmpty:
		return "📅 You have no upcoming events."

	case OutcomeCancelled:
		return fmt.Sprintf("✅ Your event on %s at %s has been canceled.", o.Date, o.Time)

	case OutcomeCancelFailed:
		return "❌ Failed to cancel event. Please try again later."

	case OutcomeNoMatch:
		return "❌ No matching event found."

	case OutcomeNeedEmail:
		switch o.Op {
		case "list":
			return "Please provide your email address to view your events."
		case "cancel":
			return "Please provide your email address to cancel a meeting."
		}
		return "Please provide your email address to book a meeting."

	case OutcomeNeedTime:
		return "Please specify the time for the meeting."

	case OutcomeNeedWhen:
		return "Please specify the date and time of the meeting to cancel."

	case OutcomeBadDateTime:
		return "❌ Please provide the date as YYYY-MM-DD and the time as HH:MM."
	}

	return "❌ Sorry, I encountered an error. Please try again."
}
