package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used by every resource (YYYY-MM-DD).
const DateLayout = time.DateOnly

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }

// Today formats now as a calendar date.
func Today(now time.Time) string { return now.Format(DateLayout) }

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

// SystemClock is the wall clock.
func SystemClock() time.Time { return time.Now() }
