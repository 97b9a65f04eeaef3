package assistant

import (
	"context"
	"strings"
	"time"

	"meetbot/models"
	"meetbot/services/intelligence"
	"meetbot/services/scheduling"
	"meetbot/utils"

	"go.uber.org/zap"
)

// Service processes one conversation turn into a reply, mutating the session
// in place. Every failure is rendered as text; nothing escapes the turn.
type Service interface {
	HandleTurn(ctx context.Context, sess *models.Session, message string) string
}

// DefaultService is the booking orchestrator.
type DefaultService struct {
	API        scheduling.API
	Selector   *scheduling.Selector
	Matcher    *scheduling.Matcher
	Classifier intelligence.Classifier

	// DefaultDuration is the target meeting length in minutes when the user
	// gives no other signal.
	DefaultDuration int
	SuggestionLimit int

	// Now is replaceable in tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// HandleTurn updates the conversation state from the message, classifies the
// turn, dispatches the selected operation and renders the outcome.
func (s *DefaultService) HandleTurn(ctx context.Context, sess *models.Session, message string) (reply string) {
	logger := utils.GetLogger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic during turn handling", zap.Any("error", r))
			reply = Render(Outcome{Kind: OutcomeFailure})
		}
	}()

	now := s.now()
	UpdateState(&sess.State, message, now)

	text, action, err := s.Classifier.Classify(ctx, sess.Messages, message, now.Format(dateLayout))
	if err != nil {
		logger.Error("Classification failed", zap.Error(err))
		return Render(Outcome{Kind: OutcomeFailure})
	}
	if action == nil {
		return text
	}

	switch a := action.(type) {
	case intelligence.BookAction:
		logger.Info("Dispatching book intent", zap.String("conversation", sess.ID))
		return Render(s.book(ctx, sess, a, message))
	case intelligence.ListAction:
		logger.Info("Dispatching list intent", zap.String("conversation", sess.ID))
		return Render(s.list(ctx, sess, a))
	case intelligence.CancelAction:
		logger.Info("Dispatching cancel intent", zap.String("conversation", sess.ID))
		return Render(s.cancel(ctx, sess, a))
	}
	logger.Error("Unknown action type")
	return Render(Outcome{Kind: OutcomeFailure})
}

func (s *DefaultService) book(ctx context.Context, sess *models.Session, a intelligence.BookAction, message string) Outcome {
	logger := utils.GetLogger()

	email := a.Email
	if email == "" {
		email = sess.State.Email
	}
	if email == "" {
		return Outcome{Kind: OutcomeNeedEmail, Op: "book"}
	}

	date := a.Date
	if date == "" {
		date = ResolveDate(message, s.now())
		logger.Info("Auto-filled date", zap.String("date", date))
	}
	if a.Time == "" {
		return Outcome{Kind: OutcomeNeedTime}
	}
	reason := a.Reason
	if reason == "" {
		reason = "Meeting"
	}
	timezone := sess.State.Timezone

	eventType, err := s.Selector.ForDuration(ctx, s.DefaultDuration)
	if err != nil {
		logger.Error("Event type selection failed", zap.Error(err))
		return Outcome{Kind: OutcomeBookingFailed, Err: err.Error()}
	}

	available, err := s.Matcher.IsAvailable(ctx, date, a.Time, eventType.Length, timezone, eventType.ID)
	if err != nil {
		logger.Warn("Could not interpret requested time", zap.Error(err))
		return Outcome{Kind: OutcomeBadDateTime}
	}
	if !available {
		alternatives, err := s.Matcher.SuggestAlternatives(ctx, date, timezone, eventType.ID, s.SuggestionLimit)
		if err != nil {
			logger.Warn("Could not fetch alternative slots", zap.Error(err))
		}
		return Outcome{Kind: OutcomeSlotTaken, Date: date, Time: a.Time, Alternatives: alternatives}
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Outcome{Kind: OutcomeBadDateTime}
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+a.Time, loc)
	if err != nil {
		return Outcome{Kind: OutcomeBadDateTime}
	}
	end := start.Add(time.Duration(eventType.Length) * time.Minute)

	booking, err := s.API.CreateBooking(ctx, models.BookingInput{
		EventTypeID: eventType.ID,
		StartUTC:    start.UTC().Format(time.RFC3339),
		EndUTC:      end.UTC().Format(time.RFC3339),
		Name:        emailLocalPart(email),
		Email:       email,
		Notes:       reason,
		Timezone:    timezone,
		Title:       reason,
		Status:      models.StatusPending,
	})
	if err != nil {
		logger.Error("Booking create failed", zap.Error(err))
		return Outcome{Kind: OutcomeBookingFailed, Err: err.Error()}
	}

	title := booking.Title
	if title == "" {
		title = reason
	}
	return Outcome{Kind: OutcomeBooked, Title: title, Date: date, Time: a.Time}
}

func (s *DefaultService) list(ctx context.Context, sess *models.Session, a intelligence.ListAction) Outcome {
	logger := utils.GetLogger()

	email := a.Email
	if email == "" {
		email = sess.State.Email
	}
	if email == "" {
		return Outcome{Kind: OutcomeNeedEmail, Op: "list"}
	}

	active, err := s.activeBookings(ctx, email)
	if err != nil {
		logger.Error("Listing bookings failed", zap.Error(err))
		return Outcome{Kind: OutcomeFailure}
	}

	loc, err := time.LoadLocation(sess.State.Timezone)
	if err != nil {
		logger.Warn("Unknown timezone, falling back to UTC", zap.String("timezone", sess.State.Timezone))
		loc = time.UTC
	}

	var entries []string
	for _, b := range active {
		start, err := scheduling.ParseInstant(b.StartTime)
		if err != nil {
			logger.Warn("Could not parse booking start", zap.String("start", b.StartTime))
			entries = append(entries, "- "+b.Title+" on "+b.StartTime)
			continue
		}
		local := start.In(loc)
		entries = append(entries, "- "+b.Title+" on "+local.Format(dateLayout)+" at "+local.Format("15:04"))
	}
	if len(entries) == 0 {
		return Outcome{Kind: OutcomeAgendaEmpty}
	}
	return Outcome{Kind: OutcomeAgenda, Entries: entries}
}

func (s *DefaultService) cancel(ctx context.Context, sess *models.Session, a intelligence.CancelAction) Outcome {
	logger := utils.GetLogger()

	email := a.Email
	if email == "" {
		email = sess.State.Email
	}
	if email == "" {
		return Outcome{Kind: OutcomeNeedEmail, Op: "cancel"}
	}
	if a.Date == "" || a.Time == "" {
		return Outcome{Kind: OutcomeNeedWhen}
	}

	loc, err := time.LoadLocation(sess.State.Timezone)
	if err != nil {
		return Outcome{Kind: OutcomeBadDateTime}
	}

	active, err := s.activeBookings(ctx, email)
	if err != nil {
		logger.Error("Cancellation lookup failed", zap.Error(err))
		return Outcome{Kind: OutcomeCancelFailed}
	}

	// Identity lookup, not an availability match: exact minute, no tolerance.
	bookingID := 0
	for _, b := range active {
		start, err := scheduling.ParseInstant(b.StartTime)
		if err != nil {
			logger.Warn("Could not parse booking start", zap.String("start", b.StartTime))
			continue
		}
		local := start.In(loc)
		if local.Format(dateLayout) == a.Date && local.Format("15:04") == a.Time {
			bookingID = b.ID
			break
		}
	}
	if bookingID == 0 {
		return Outcome{Kind: OutcomeNoMatch}
	}

	if err := s.API.CancelBooking(ctx, bookingID); err != nil {
		logger.Error("Booking delete failed", zap.Int("id", bookingID), zap.Error(err))
		return Outcome{Kind: OutcomeCancelFailed}
	}
	return Outcome{Kind: OutcomeCancelled, Date: a.Date, Time: a.Time}
}

// activeBookings lists the user's bookings with cancelled ones filtered out.
func (s *DefaultService) activeBookings(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.API.ListBookings(ctx, email)
	if err != nil {
		return nil, err
	}
	var active []models.Booking
	for _, b := range bookings {
		if b.Status == models.StatusCancelled {
			continue
		}
		active = append(active, b)
	}
	return active, nil
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
