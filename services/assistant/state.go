package assistant

import (
	"regexp"
	"strings"
	"time"

	"meetbot/models"
	"meetbot/utils"

	"go.uber.org/zap"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	timezonePattern = regexp.MustCompile(`(?i)timezone:\s*(\S+)`)
	namePattern     = regexp.MustCompile(`(?i)name:\s*([\w\s]+)`)
)

// extractedFields is the optional-field record pulled out of one message.
type extractedFields struct {
	Email    string
	Timezone string
	Name     string
}

// extractFields scans a message for an email address and the literal
// "timezone:" and "name:" markers. Extraction is independent and
// non-exclusive; unmatched fields stay empty. Pure, no state.
func extractFields(text string) extractedFields {
	var f extractedFields
	if m := emailPattern.FindString(text); m != "" {
		f.Email = m
	}
	if m := timezonePattern.FindStringSubmatch(text); m != nil {
		f.Timezone = m[1]
	}
	if m := namePattern.FindStringSubmatch(text); m != nil {
		f.Name = strings.TrimSpace(m[1])
	}
	return f
}

// UpdateState applies one message's extracted fields to the conversation
// state. Found fields overwrite; the last-interaction timestamp always
// refreshes. No I/O.
func UpdateState(st *models.UserState, text string, now time.Time) {
	logger := utils.GetLogger()

	f := extractFields(text)
	if f.Email != "" {
		st.Email = f.Email
		logger.Info("Extracted email", zap.String("email", f.Email))
	}
	if f.Timezone != "" {
		st.Timezone = f.Timezone
		logger.Info("Extracted timezone", zap.String("timezone", f.Timezone))
	}
	if f.Name != "" {
		st.Name = f.Name
		logger.Info("Extracted name", zap.String("name", f.Name))
	}
	st.LastInteraction = now
}
