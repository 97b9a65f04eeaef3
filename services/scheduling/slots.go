package scheduling

import (
	"context"
	"fmt"
	"sort"
	"time"

	"meetbot/utils"

	"go.uber.org/zap"
)

// DefaultTolerance is the margin within which a requested time matches an
// offered slot. The service's slot granularity may not align exactly to the
// requested minute.
const DefaultTolerance = 15 * time.Minute

// Matcher reconciles a requested time against the scheduling service's
// reported availability for one day.
type Matcher struct {
	API       API
	Tolerance time.Duration
}

func (m *Matcher) tolerance() time.Duration {
	if m.Tolerance > 0 {
		return m.Tolerance
	}
	return DefaultTolerance
}

// IsAvailable reports whether any offered slot on the given date falls within
// the tolerance of the requested local wall-clock time. An availability error
// or an empty report counts as unavailable. The returned error is non-nil
// only when the requested date, time or timezone cannot be parsed.
func (m *Matcher) IsAvailable(ctx context.Context, date, hhmm string, duration int, timezone string, eventTypeID int) (bool, error) {
	logger := utils.GetLogger()

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return false, fmt.Errorf("%w: unknown timezone %q", ErrBadDateTime, timezone)
	}
	target, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, loc)
	if err != nil {
		return false, fmt.Errorf("%w: %q %q", ErrBadDateTime, date, hhmm)
	}

	slots, err := m.API.AvailableSlots(ctx, date, timezone, eventTypeID)
	if err != nil {
		logger.Warn("Availability query failed", zap.String("date", date), zap.Error(err))
		return false, nil
	}
	offers := slots[date]
	if len(offers) == 0 {
		logger.Warn("No available slots found", zap.String("date", date))
		return false, nil
	}

	logger.Debug("Checking availability",
		zap.Time("target", target), zap.Int("duration", duration), zap.Int("offers", len(offers)))

	for _, slot := range offers {
		slotTime, err := ParseInstant(slot.Time)
		if err != nil {
			logger.Warn("Could not parse slot time", zap.String("slot", slot.Time))
			continue
		}
		diff := slotTime.In(loc).Sub(target)
		if diff < 0 {
			diff = -diff
		}
		if diff <= m.tolerance() {
			logger.Debug("Found matching slot", zap.Time("slot", slotTime.In(loc)))
			return true, nil
		}
	}
	return false, nil
}

// SuggestAlternatives returns up to limit offered start times for the date as
// local HH:MM strings, deduplicated and sorted ascending.
func (m *Matcher) SuggestAlternatives(ctx context.Context, date, timezone string, eventTypeID, limit int) ([]string, error) {
	logger := utils.GetLogger()

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrBadDateTime, timezone)
	}
	slots, err := m.API.AvailableSlots(ctx, date, timezone, eventTypeID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var times []string
	for _, slot := range slots[date] {
		slotTime, err := ParseInstant(slot.Time)
		if err != nil {
			logger.Warn("Could not parse slot time", zap.String("slot", slot.Time))
			continue
		}
		hhmm := slotTime.In(loc).Format("15:04")
		if !seen[hhmm] {
			seen[hhmm] = true
			times = append(times, hhmm)
		}
	}
	sort.Strings(times)
	if limit > 0 && len(times) > limit {
		times = times[:limit]
	}
	return times, nil
}

// Layouts tried for slot instants. Instants without zone info are assumed UTC.
var slotTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseInstant parses an ISO 8601 instant from the scheduling service,
// assuming UTC when the zone is omitted.
func ParseInstant(s string) (time.Time, error) {
	for _, layout := range slotTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized slot time %q", s)
}
