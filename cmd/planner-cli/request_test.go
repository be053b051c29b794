package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-planner/internal/dto"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadRequest(t *testing.T) {
	path := writeFile(t, `
courses: [CS-310, MATH-245]
aroundTime: "1000"
maximumTimeDistance: 120
badDays: [Friday]
preferNoWaitlist: true
includeSections: ["20345"]
limit: 3
`)

	req, err := loadRequest(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS-310", "MATH-245"}, req.Courses)
	assert.Equal(t, "1000", req.AroundTime)
	assert.Equal(t, 120, req.MaximumTimeDistance)
	assert.Equal(t, []string{"Friday"}, req.BadDays)
	assert.True(t, req.PreferNoWaitlist)
	assert.Equal(t, []string{"20345"}, req.IncludeSections)
	assert.Equal(t, 3, req.Limit)
}

func TestLoadRequestRejectsUnknownFields(t *testing.T) {
	path := writeFile(t, "courses: [CS-310]\nwaitlist: true\n")

	_, err := loadRequest(path)
	assert.Error(t, err)
}

func TestLoadRequestEmptyFile(t *testing.T) {
	_, err := loadRequest(writeFile(t, ""))
	assert.ErrorContains(t, err, "is empty")
}

func TestLoadRequestMissingFile(t *testing.T) {
	_, err := loadRequest(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "open request")
}

func TestWriteTable(t *testing.T) {
	resp := &dto.PlanScheduleResponse{
		Found: true,
		Schedules: []dto.PlannedSchedule{
			{Rank: 1, Fitness: 2, Sections: []dto.PlannedSection{{Summary: "CS-310 A"}, {Summary: "MATH-245 B"}}},
			{Rank: 2, Fitness: 0, Sections: []dto.PlannedSection{{Summary: "CS-310 C"}}},
		},
		Counts:         dto.PlanCounts{Combinations: 4, Legal: 3, Ranked: 3, Returned: 2},
		MissingCourses: []string{"PHYS-195"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, resp))

	out := buf.String()
	assert.Contains(t, out, "RANK  FITNESS  SECTION")
	assert.Contains(t, out, "1     2        CS-310 A")
	assert.Contains(t, out, "MATH-245 B")
	assert.Contains(t, out, "2 of 3 ranked schedules (3 legal, 4 combinations)")
	assert.Contains(t, out, "Skipped missing courses: PHYS-195")
}

func TestWriteTableNothingFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, &dto.PlanScheduleResponse{MissingCourses: []string{"CS-999"}}))
	assert.Equal(t, "No schedule found.\nMissing courses: CS-999\n", buf.String())
}
