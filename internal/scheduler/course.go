package scheduler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/noah-isme/course-planner/internal/models"
)

// Meeting is one recurring slot of a section.
type Meeting struct {
	Day        Weekday   `json:"day"`
	Time       TimeRange `json:"time"`
	MeetingID  string    `json:"meetingId"`
	Type       string    `json:"type,omitempty"`
	Instructor string    `json:"instructor,omitempty"`
	Location   string    `json:"location,omitempty"`
}

// Timed reports whether the meeting holds a fixed weekday slot. Online,
// arranged and zero-range meetings do not.
func (m Meeting) Timed() bool {
	return m.Day.Scheduled() && !m.Time.IsZero()
}

// Course is a resolved section. It is immutable once built and may be shared
// by any number of schedules.
type Course struct {
	Name               string            `json:"course"`
	SectionID          string            `json:"id"`
	Title              string            `json:"title,omitempty"`
	Section            string            `json:"section,omitempty"`
	ScheduleNumber     int               `json:"scheduleNumber"`
	Units              float64           `json:"units,omitempty"`
	SeatsAvailable     int               `json:"seatsAvailable"`
	SeatsTotal         int               `json:"seatsTotal"`
	Waitlisted         bool              `json:"waitlisted"`
	HasInternalOverlap bool              `json:"hasInternalOverlap"`
	Meetings           []Meeting         `json:"meetings"`
	Footnotes          map[string]string `json:"footnotes,omitempty"`
}

// NewCourse converts a catalog record, expanding every meeting row into one
// Meeting per listed day. Day and time parse failures are returned as-is.
func NewCourse(record models.CourseRecord) (*Course, error) {
	meetings := make([]Meeting, 0, len(record.Meetings))
	for _, row := range record.Meetings {
		days, err := ParseDays(row.Days)
		if err != nil {
			return nil, fmt.Errorf("section %s meeting %s: %w", record.ID, row.MeetingID, err)
		}
		hours, err := ParseTimeRange(row.Hours)
		if err != nil {
			return nil, fmt.Errorf("section %s meeting %s: %w", record.ID, row.MeetingID, err)
		}
		for _, day := range days {
			meetings = append(meetings, Meeting{
				Day:        day,
				Time:       hours,
				MeetingID:  row.MeetingID,
				Type:       row.MeetingType,
				Instructor: row.Instructor,
				Location:   row.Location,
			})
		}
	}

	var footnotes map[string]string
	if len(record.Footnotes) > 0 {
		footnotes = make(map[string]string, len(record.Footnotes))
		for _, note := range record.Footnotes {
			footnotes[note.Code] = note.Text
		}
	}

	return &Course{
		Name:               record.Course,
		SectionID:          record.ID,
		Title:              record.Title,
		Section:            record.Section,
		ScheduleNumber:     record.ScheduleNumber,
		Units:              record.Units,
		SeatsAvailable:     record.SeatsAvailable,
		SeatsTotal:         record.SeatsTotal,
		Waitlisted:         record.SeatsAvailable == 0,
		HasInternalOverlap: meetingsOverlap(meetings),
		Meetings:           meetings,
		Footnotes:          footnotes,
	}, nil
}

// NewCourses converts a batch of records, stopping at the first bad record.
func NewCourses(records []models.CourseRecord) ([]*Course, error) {
	courses := make([]*Course, 0, len(records))
	for _, record := range records {
		course, err := NewCourse(record)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// Identifies reports whether id names this section, either by section id or
// by schedule number.
func (c *Course) Identifies(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	return id == c.SectionID || (c.ScheduleNumber != 0 && id == strconv.Itoa(c.ScheduleNumber))
}

// LongestMeeting returns the meeting with the widest time range. The first
// meeting wins ties.
func (c *Course) LongestMeeting() Meeting {
	longest := 0
	for idx, meeting := range c.Meetings {
		if meeting.Time.Duration() > c.Meetings[longest].Time.Duration() {
			longest = idx
		}
	}
	return c.Meetings[longest]
}

// representativeMeetings are the meetings the conflict detector considers.
// A section listing overlapping entries for itself is represented by its
// longest meeting alone.
func (c *Course) representativeMeetings() []Meeting {
	if len(c.Meetings) == 0 {
		return nil
	}
	if c.HasInternalOverlap {
		return []Meeting{c.LongestMeeting()}
	}
	return c.Meetings
}

// String formats the section compactly, merging days that share a time:
// "CS-310 20345 (W) MW 09:00-09:50 F 10:00-10:50".
func (c *Course) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(c.ScheduleNumber))
	if c.Waitlisted {
		b.WriteString(" (W)")
	}

	meetings := make([]Meeting, len(c.Meetings))
	copy(meetings, c.Meetings)
	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].Time.Before(meetings[j].Time)
	})

	days := ""
	for idx, meeting := range meetings {
		days += meeting.Day.Abbreviation()
		if idx+1 < len(meetings) && meetings[idx+1].Time == meeting.Time {
			continue
		}
		if meeting.Timed() {
			b.WriteString(" " + days + " " + meeting.Time.String())
		} else {
			b.WriteString(" " + days)
		}
		days = ""
	}
	return b.String()
}

func meetingsOverlap(meetings []Meeting) bool {
	var week [Friday + 1][]TimeRange
	for _, meeting := range meetings {
		if !meeting.Timed() {
			continue
		}
		week[meeting.Day] = append(week[meeting.Day], meeting.Time)
	}
	for _, ranges := range week {
		if rangesCollide(ranges) {
			return true
		}
	}
	return false
}
