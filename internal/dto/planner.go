package dto

import "time"

// PlanScheduleRequest asks for the best combination of sections, one per
// course name. Times use the catalog's HHMM form; malformed values count as
// unset.
type PlanScheduleRequest struct {
	Courses              []string `json:"courses" yaml:"courses" validate:"required,min=1,max=16,dive,required,max=64"`
	AroundTime           string   `json:"aroundTime,omitempty" yaml:"aroundTime" validate:"omitempty,max=4"`
	MaximumTimeDistance  int      `json:"maximumTimeDistance" yaml:"maximumTimeDistance"`
	BadDays              []string `json:"badDays,omitempty" yaml:"badDays" validate:"omitempty,max=7,dive,required"`
	EarliestTime         string   `json:"earliestTime,omitempty" yaml:"earliestTime" validate:"omitempty,max=4"`
	LatestTime           string   `json:"latestTime,omitempty" yaml:"latestTime" validate:"omitempty,max=4"`
	PreferNoWaitlist     bool     `json:"preferNoWaitlist" yaml:"preferNoWaitlist"`
	IncludeSections      []string `json:"includeSections,omitempty" yaml:"includeSections" validate:"omitempty,dive,required"`
	IncludeProfessors    []string `json:"includeProfessors,omitempty" yaml:"includeProfessors"`
	IncludeAllProfessors bool     `json:"includeAllProfessors" yaml:"includeAllProfessors"`
	SkipMissingCourses   bool     `json:"skipMissingCourses" yaml:"skipMissingCourses"`
	Limit                int      `json:"limit,omitempty" yaml:"limit" validate:"omitempty,min=1,max=500"`
}

// PlannedMeeting is one meeting of a planned section. Start and End are
// empty for online and arranged meetings.
type PlannedMeeting struct {
	Day        string `json:"day"`
	Start      string `json:"start,omitempty"`
	End        string `json:"end,omitempty"`
	MeetingID  string `json:"meetingId"`
	Type       string `json:"type,omitempty"`
	Instructor string `json:"instructor,omitempty"`
	Location   string `json:"location,omitempty"`
}

// PlannedSection is a chosen section.
type PlannedSection struct {
	Course         string            `json:"course"`
	SectionID      string            `json:"sectionId"`
	ScheduleNumber int               `json:"scheduleNumber"`
	Title          string            `json:"title,omitempty"`
	Section        string            `json:"section,omitempty"`
	Units          float64           `json:"units,omitempty"`
	SeatsAvailable int               `json:"seatsAvailable"`
	SeatsTotal     int               `json:"seatsTotal"`
	Waitlisted     bool              `json:"waitlisted"`
	Meetings       []PlannedMeeting  `json:"meetings"`
	Footnotes      map[string]string `json:"footnotes,omitempty"`
	Summary        string            `json:"summary"`
}

// PlannedSchedule is one ranked schedule. Rank starts at 1.
type PlannedSchedule struct {
	Rank     int              `json:"rank"`
	Fitness  int              `json:"fitness"`
	Sections []PlannedSection `json:"sections"`
}

// PlanCounts summarises how many candidates survived each stage.
type PlanCounts struct {
	Combinations int `json:"combinations"`
	Legal        int `json:"legal"`
	Ranked       int `json:"ranked"`
	Returned     int `json:"returned"`
}

// PlanScheduleResponse carries the best schedule and its runners-up. Found is
// false when no legal schedule satisfies the request; that is not an error.
type PlanScheduleResponse struct {
	PlanID         string            `json:"planId"`
	Found          bool              `json:"found"`
	Best           *PlannedSchedule  `json:"best,omitempty"`
	Schedules      []PlannedSchedule `json:"schedules"`
	Counts         PlanCounts        `json:"counts"`
	MissingCourses []string          `json:"missingCourses,omitempty"`
	GeneratedAt    time.Time         `json:"generatedAt"`
}

// PlanExport is a rendered timetable ready for download.
type PlanExport struct {
	PlanID      string
	Filename    string
	ContentType string
	Body        []byte
}
