package clock

import (
	"time"

	"github.com/julianstephens/streakquest/internal/constants"
)

// Clock provides the current time and the current local calendar day. The
// core engine never reads the wall clock directly; callers thread a Clock
// through so streak logic is testable against fixed dates.
type Clock interface {
	Now() time.Time
	Today() string
}

// System is the production clock, using the local timezone.
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (s System) Today() string { return s.Now().Format(constants.DateFormat) }

// Fixed is a clock pinned to a single instant, for tests.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time { return f.Time }

func (f Fixed) Today() string { return f.Time.Format(constants.DateFormat) }

// Yesterday returns the calendar day immediately before the given day
// (YYYY-MM-DD). Malformed input yields an empty string.
func Yesterday(day string) string {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(constants.DateFormat)
}

// DaysAgo returns the calendar day n days before the given day.
func DaysAgo(day string, n int) string {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -n).Format(constants.DateFormat)
}
