package export

// TimetableRow is one meeting of one ranked schedule.
type TimetableRow struct {
	Rank           int    `csv:"rank"`
	Fitness        int    `csv:"fitness"`
	Course         string `csv:"course"`
	SectionID      string `csv:"section_id"`
	ScheduleNumber int    `csv:"schedule_number"`
	Title          string `csv:"title"`
	MeetingType    string `csv:"meeting_type"`
	Day            string `csv:"day"`
	Time           string `csv:"time"`
	Location       string `csv:"location"`
	Instructor     string `csv:"instructor"`
	Waitlisted     bool   `csv:"waitlisted"`
}

// Timetable is the exportable view of a plan.
type Timetable struct {
	Title string
	Rows  []TimetableRow
}

// Renderer turns a timetable into a downloadable document.
type Renderer interface {
	Render(Timetable) ([]byte, error)
	ContentType() string
	Extension() string
}
