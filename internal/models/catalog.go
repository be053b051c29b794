package models

// CourseRecord is one section as stored in the course catalog.
type CourseRecord struct {
	ID             string          `db:"id" json:"id"`
	Course         string          `db:"course" json:"course"`
	Title          string          `db:"course_title" json:"courseTitle"`
	Section        string          `db:"section" json:"section"`
	ScheduleNumber int             `db:"schedule_num" json:"scheduleNumber"`
	Units          float64         `db:"units" json:"units"`
	SeatsAvailable int             `db:"seats_available" json:"seatsAvailable"`
	SeatsTotal     int             `db:"seats_total" json:"seatsTotal"`
	Meetings       []MeetingRecord `db:"-" json:"meetings"`
	Footnotes      []Footnote      `db:"-" json:"footnotes,omitempty"`
}

// MeetingRecord is a catalog meeting row. Days and Hours keep the catalog's
// compact encodings ("MWF", "0800-0850").
type MeetingRecord struct {
	CourseID    string `db:"course_id" json:"courseId"`
	MeetingID   string `db:"meeting_id" json:"meetingId"`
	MeetingType string `db:"meeting_type" json:"meetingType"`
	Days        string `db:"days" json:"days"`
	Hours       string `db:"hours" json:"hours"`
	Location    string `db:"location" json:"location"`
	Instructor  string `db:"instructor" json:"instructor"`
}

// Footnote is a coded remark attached to a section.
type Footnote struct {
	CourseID   string `db:"course_id" json:"-"`
	FootnoteID string `db:"footnote_id" json:"-"`
	Code       string `db:"code" json:"code"`
	Text       string `db:"text" json:"text"`
}

// CatalogRow is the denormalised CSV layout: one line per meeting, section
// columns repeated.
type CatalogRow struct {
	ID             string  `csv:"id"`
	Course         string  `csv:"course"`
	Title          string  `csv:"course_title"`
	Section        string  `csv:"section"`
	ScheduleNumber int     `csv:"schedule_num"`
	Units          float64 `csv:"units"`
	SeatsAvailable int     `csv:"seats_available"`
	SeatsTotal     int     `csv:"seats_total"`
	MeetingID      string  `csv:"meeting_id"`
	MeetingType    string  `csv:"meeting_type"`
	Days           string  `csv:"days"`
	Hours          string  `csv:"hours"`
	Location       string  `csv:"location"`
	Instructor     string  `csv:"instructor"`
}
