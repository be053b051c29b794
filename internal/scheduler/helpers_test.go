package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-planner/internal/models"
)

func meet(days, hours string) models.MeetingRecord {
	return models.MeetingRecord{MeetingID: days + "-" + hours, Days: days, Hours: hours}
}

func section(t *testing.T, name, id string, seats int, rows ...models.MeetingRecord) *Course {
	t.Helper()
	course, err := NewCourse(models.CourseRecord{
		ID:             id,
		Course:         name,
		SeatsAvailable: seats,
		SeatsTotal:     40,
		Meetings:       rows,
	})
	require.NoError(t, err)
	return course
}

func mustParameters(t *testing.T, cfg ParametersConfig) *Parameters {
	t.Helper()
	p, err := NewParameters(cfg)
	require.NoError(t, err)
	return p
}
