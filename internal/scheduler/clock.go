package scheduler

import (
	"fmt"
	"strconv"
	"strings"

	appErrors "github.com/noah-isme/course-planner/pkg/errors"
)

// TimeOfDay is a wall-clock time in minutes since midnight. Midnight doubles
// as the "unset" value for lenient catalog fields.
type TimeOfDay int

// Midnight is the zero TimeOfDay.
const Midnight TimeOfDay = 0

// MaxTimeDistance is the widest accepted around-time distance: one day minus
// one minute, in seconds.
const MaxTimeDistance = 86340

// Clock builds a TimeOfDay from an hour and minute.
func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component.
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Seconds returns the seconds elapsed since midnight.
func (t TimeOfDay) Seconds() int { return int(t) * 60 }

// IsSet reports whether t differs from midnight.
func (t TimeOfDay) IsSet() bool { return t != Midnight }

// String renders t as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Compact renders t as HHMM, the catalog format.
func (t TimeOfDay) Compact() string {
	return fmt.Sprintf("%02d%02d", t.Hour(), t.Minute())
}

// TimeRange is a meeting's start and end. Start <= End is not enforced.
type TimeRange struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Duration returns End - Start in minutes.
func (r TimeRange) Duration() int {
	return int(r.End - r.Start)
}

// IsZero reports whether both ends sit at midnight, i.e. no fixed time.
func (r TimeRange) IsZero() bool {
	return r.Start == Midnight && r.End == Midnight
}

// Before orders ranges by start only.
func (r TimeRange) Before(other TimeRange) bool {
	return r.Start < other.Start
}

// String renders the range as HH:MM-HH:MM.
func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// ParseTimeRange reads "HHMM-HHMM". Blank input and malformed numbers yield
// the zero range; a non-blank string without a separator is an error.
func ParseTimeRange(raw string) (TimeRange, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return TimeRange{}, nil
	}
	start, end, found := strings.Cut(value, "-")
	if !found {
		return TimeRange{}, appErrors.Clonef(appErrors.ErrMalformedTimeRange, "time range %q is missing a '-' separator", raw)
	}
	startTime, ok := parseClock(start)
	if !ok {
		return TimeRange{}, nil
	}
	endTime, ok := parseClock(end)
	if !ok {
		return TimeRange{}, nil
	}
	return TimeRange{Start: startTime, End: endTime}, nil
}

// ParseSingleTime reads "HHMM", returning midnight when the input is not a
// valid time.
func ParseSingleTime(raw string) TimeOfDay {
	t, ok := parseClock(raw)
	if !ok {
		return Midnight
	}
	return t
}

func parseClock(raw string) (TimeOfDay, bool) {
	value := strings.TrimSpace(raw)
	if len(value) < 3 {
		return Midnight, false
	}
	hour, err := strconv.Atoi(value[:2])
	if err != nil {
		return Midnight, false
	}
	minute, err := strconv.Atoi(value[2:])
	if err != nil {
		return Midnight, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Midnight, false
	}
	return Clock(hour, minute), true
}
