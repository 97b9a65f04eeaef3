package assistant

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ResolveDate turns a relative phrase embedded in a message into a concrete
// YYYY-MM-DD date. The scan is case-insensitive and the first matching phrase
// in priority order wins: "today", then "tomorrow", then "next week". With no
// match the current date is returned.
func ResolveDate(text string, today time.Time) string {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "today"):
		return today.Format(dateLayout)
	case strings.Contains(lower, "tomorrow"):
		return today.AddDate(0, 0, 1).Format(dateLayout)
	case strings.Contains(lower, "next week"):
		return today.AddDate(0, 0, 7).Format(dateLayout)
	}
	return today.Format(dateLayout)
}
