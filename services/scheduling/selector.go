package scheduling

import (
	"context"
	"fmt"

	"meetbot/models"
	"meetbot/utils"

	"go.uber.org/zap"
)

// Default event type created when the account has none.
const (
	defaultEventTitle  = "30 Minute Meeting"
	defaultEventSlug   = "30min"
	defaultEventLength = 30
)

// Selector picks the event type best matching a requested meeting duration.
type Selector struct {
	API API
}

// ForDuration returns the event type whose length is closest to the requested
// duration in minutes, ties broken by list order. If the account has no event
// types, a default 30-minute type is created and returned.
func (s *Selector) ForDuration(ctx context.Context, duration int) (*models.EventType, error) {
	logger := utils.GetLogger()

	types, err := s.API.ListEventTypes(ctx)
	if err != nil {
		logger.Warn("Failed to list event types", zap.Error(err))
		types = nil
	}

	if len(types) == 0 {
		logger.Info("No event types found, creating default")
		created, err := s.API.CreateEventType(ctx, defaultEventTitle, defaultEventSlug, defaultEventLength, false)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoEventType, err)
		}
		if created.Length == 0 {
			created.Length = defaultEventLength
		}
		return created, nil
	}

	best := types[0]
	for _, et := range types[1:] {
		if abs(et.Length-duration) < abs(best.Length-duration) {
			best = et
		}
	}
	if best.Length == 0 {
		best.Length = defaultEventLength
	}
	return &best, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
