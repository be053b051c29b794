package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-planner/internal/models"
	appErrors "github.com/noah-isme/course-planner/pkg/errors"
)

func TestNewCourseExpandsMeetingDays(t *testing.T) {
	course, err := NewCourse(models.CourseRecord{
		ID:             "CS-310-01",
		Course:         "CS-310",
		ScheduleNumber: 20345,
		SeatsAvailable: 3,
		SeatsTotal:     40,
		Meetings: []models.MeetingRecord{
			{MeetingID: "m1", Days: "MW", Hours: "0900-0950", Instructor: "Ada Lovelace", MeetingType: "LEC"},
			{MeetingID: "m2", Days: "", Hours: ""},
		},
		Footnotes: []models.Footnote{{Code: "R", Text: "Restricted"}},
	})
	require.NoError(t, err)

	require.Len(t, course.Meetings, 3)
	assert.Equal(t, Monday, course.Meetings[0].Day)
	assert.Equal(t, Wednesday, course.Meetings[1].Day)
	assert.Equal(t, "Ada Lovelace", course.Meetings[1].Instructor)
	assert.Equal(t, Online, course.Meetings[2].Day)
	assert.True(t, course.Meetings[2].Time.IsZero())
	assert.False(t, course.Waitlisted)
	assert.False(t, course.HasInternalOverlap)
	assert.Equal(t, "Restricted", course.Footnotes["R"])
}

func TestNewCourseWaitlistedWhenNoSeats(t *testing.T) {
	course := section(t, "CS-320", "CS-320-01", 0, meet("F", "1000-1050"))
	assert.True(t, course.Waitlisted)
}

func TestNewCoursePropagatesParseErrors(t *testing.T) {
	_, err := NewCourse(models.CourseRecord{ID: "x", Meetings: []models.MeetingRecord{meet("P", "0800-0850")}})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidDayToken))

	_, err = NewCourse(models.CourseRecord{ID: "x", Meetings: []models.MeetingRecord{meet("M", "08000850")}})
	assert.True(t, errors.Is(err, appErrors.ErrMalformedTimeRange))

	_, err = NewCourses([]models.CourseRecord{
		{ID: "ok", Meetings: []models.MeetingRecord{meet("M", "0800-0850")}},
		{ID: "bad", Meetings: []models.MeetingRecord{meet("Q", "0800-0850")}},
	})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidDayToken))
}

func TestInternalOverlapPicksLongestMeeting(t *testing.T) {
	course := section(t, "ENS-331", "ENS-331-01", 5,
		meet("M", "0800-0850"),
		meet("M", "0800-0950"),
	)
	require.True(t, course.HasInternalOverlap)
	assert.Equal(t, TimeRange{Start: Clock(8, 0), End: Clock(9, 50)}, course.LongestMeeting().Time)
	assert.Len(t, course.representativeMeetings(), 1)

	sameStartDifferentDays := section(t, "MATH-245", "MATH-245-01", 5, meet("MWF", "0800-0850"))
	assert.False(t, sameStartDifferentDays.HasInternalOverlap)
}

func TestCourseIdentifies(t *testing.T) {
	course, err := NewCourse(models.CourseRecord{ID: "A-1", Course: "A", ScheduleNumber: 20345})
	require.NoError(t, err)
	assert.True(t, course.Identifies("A-1"))
	assert.True(t, course.Identifies("20345"))
	assert.False(t, course.Identifies(""))
	assert.False(t, course.Identifies("A"))
}

func TestCourseString(t *testing.T) {
	course, err := NewCourse(models.CourseRecord{
		ID: "CS-310-01", Course: "CS-310", ScheduleNumber: 20345,
		Meetings: []models.MeetingRecord{meet("MW", "0900-0950"), meet("F", "1000-1050")},
	})
	require.NoError(t, err)
	assert.Equal(t, "CS-310 20345 (W) MW 09:00-09:50 F 10:00-10:50", course.String())
}
