package scheduling

import (
	"context"
	"errors"

	"meetbot/models"
)

// ErrNoEventType is returned when the scheduling service can neither supply
// nor create a bookable event type.
var ErrNoEventType = errors.New("no bookable event type available")

// ErrBadDateTime is returned when a requested date/time cannot be parsed.
var ErrBadDateTime = errors.New("invalid date/time format")

// API is the set of scheduling-service operations the assistant depends on.
// Implemented by Client against the cal.com v1 API; tests substitute fakes.
type API interface {
	ListEventTypes(ctx context.Context) ([]models.EventType, error)
	CreateEventType(ctx context.Context, title, slug string, length int, hidden bool) (*models.EventType, error)
	// AvailableSlots returns the offered start times for the whole calendar
	// day, keyed by date. A zero eventTypeID leaves the query unscoped.
	AvailableSlots(ctx context.Context, date, timezone string, eventTypeID int) (map[string][]models.Slot, error)
	CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error)
	ListBookings(ctx context.Context, email string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id int) error
}
