package models

// Booking status values used by the scheduling service.
const (
	StatusPending   = "PENDING"
	StatusAccepted  = "ACCEPTED"
	StatusCancelled = "CANCELLED"
)

// EventType is a named, fixed-duration bookable meeting template defined on
// the scheduling service. Length is the duration in minutes.
type EventType struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	Length int    `json:"length"`
}

// Slot is a single offered start time for a given date, as reported by the
// scheduling service's availability query. Time is an ISO 8601 instant.
type Slot struct {
	Time string `json:"time"`
}

// Booking is a scheduled meeting owned by the scheduling service. Start and
// end times are ISO 8601 UTC instants as returned on the wire.
type Booking struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BookingInput carries everything needed for one booking create call.
// Constructed per attempt and never reused.
type BookingInput struct {
	EventTypeID int
	StartUTC    string // RFC 3339, UTC
	EndUTC      string // RFC 3339, UTC
	Name        string
	Email       string
	Notes       string
	Timezone    string
	Title       string
	Status      string
}
