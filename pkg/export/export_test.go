package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTimetable() Timetable {
	return Timetable{
		Title: "Fall plan",
		Rows: []TimetableRow{
			{Rank: 1, Fitness: 3, Course: "CS-310", SectionID: "20345", ScheduleNumber: 20345, MeetingType: "LEC", Day: "Monday", Time: "09:00-09:50", Instructor: "Ada"},
			{Rank: 2, Fitness: 1, Course: "CS-310", SectionID: "20346", ScheduleNumber: 20346, MeetingType: "LEC", Day: "Tuesday", Time: "10:00-10:50", Waitlisted: true},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	out, err := exporter.Render(sampleTimetable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "rank,fitness,course,section_id,schedule_number,title,meeting_type,day,time,location,instructor,waitlisted", lines[0])
	assert.Equal(t, "1,3,CS-310,20345,20345,,LEC,Monday,09:00-09:50,,Ada,false", lines[1])
	assert.True(t, strings.HasSuffix(lines[2], ",true"))
	assert.Equal(t, "text/csv", exporter.ContentType())
	assert.Equal(t, "csv", exporter.Extension())
}

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter()

	out, err := exporter.Render(sampleTimetable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	empty, err := exporter.Render(Timetable{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(empty, []byte("%PDF")))
	assert.Equal(t, "application/pdf", exporter.ContentType())
}
