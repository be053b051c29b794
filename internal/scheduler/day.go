// Package scheduler holds the section combination engine: the time and day
// model, conflict detection, enumeration of legal schedules and fitness
// scoring. It is pure and synchronous apart from EnumerateParallel.
package scheduler

import (
	"fmt"
	"strings"

	appErrors "github.com/noah-isme/course-planner/pkg/errors"
)

// Weekday is the day a meeting takes place on. Online and Arranged have no
// calendar slot and never conflict.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Online
	Arranged
)

const arrangedToken = "Arranged"

var weekdayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Online:    "Online",
	Arranged:  "Arranged",
}

var dayTokens = map[byte]Weekday{
	'M': Monday,
	'T': Tuesday,
	'W': Wednesday,
	'H': Thursday,
	'F': Friday,
}

// String returns the English name of the day.
func (d Weekday) String() string {
	if d < Monday || d > Arranged {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Abbreviation returns the compact catalog token for the day.
func (d Weekday) Abbreviation() string {
	switch d {
	case Thursday:
		return "TH"
	case Online:
		return "ONLINE"
	case Arranged:
		return "ARRANGED"
	default:
		return weekdayNames[d][:1]
	}
}

// Scheduled reports whether the day occupies a calendar slot.
func (d Weekday) Scheduled() bool {
	return d >= Monday && d <= Friday
}

// MarshalText renders the day by name.
func (d Weekday) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDays converts a compact day string such as "MWF" or "TTH" into
// weekdays in left-to-right order. The string is scanned from the end so that
// a trailing "H" preceded by "T" is read as Thursday.
func ParseDays(raw string) ([]Weekday, error) {
	days := strings.TrimSpace(raw)
	switch {
	case days == "":
		return []Weekday{Online}, nil
	case strings.EqualFold(days, arrangedToken):
		return []Weekday{Arranged}, nil
	}

	result := make([]Weekday, 0, len(days))
	for i := len(days) - 1; i >= 0; i-- {
		day, ok := dayTokens[days[i]]
		if !ok {
			return nil, appErrors.Clonef(appErrors.ErrInvalidDayToken, "%q in %q was unable to be parsed as a day", days[i], raw)
		}
		if days[i] == 'H' && i > 0 && days[i-1] == 'T' {
			i--
		}
		result = append(result, day)
	}

	for l, r := 0, len(result)-1; l < r; l, r = l+1, r-1 {
		result[l], result[r] = result[r], result[l]
	}
	return result, nil
}

// ParseWeekday resolves a single day given by full name or compact token.
func ParseWeekday(raw string) (Weekday, error) {
	name := strings.TrimSpace(raw)
	for day, candidate := range weekdayNames {
		if strings.EqualFold(name, candidate) {
			return Weekday(day), nil
		}
	}
	switch strings.ToUpper(name) {
	case "TH":
		return Thursday, nil
	case "ON-LINE":
		return Online, nil
	}
	if len(name) == 1 {
		if day, ok := dayTokens[strings.ToUpper(name)[0]]; ok {
			return day, nil
		}
	}
	return 0, appErrors.Clonef(appErrors.ErrInvalidDayToken, "%q is not a day", raw)
}
