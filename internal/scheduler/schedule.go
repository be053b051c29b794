package scheduler

import "strings"

// Schedule is one section per requested course plus the fitness assigned by
// the scorer. Only Fitness is ever written after construction.
type Schedule struct {
	Courses []*Course `json:"courses"`
	Fitness int       `json:"fitness"`
}

// NewSchedule copies the course slice so the schedule owns its ordering.
func NewSchedule(courses []*Course) *Schedule {
	owned := make([]*Course, len(courses))
	copy(owned, courses)
	return &Schedule{Courses: owned}
}

// IsValid reports whether the schedule has no cross-course time conflict.
func (s *Schedule) IsValid() bool {
	return !HasConflict(s.Courses)
}

// Contains reports whether a course of the schedule is identified by id.
func (s *Schedule) Contains(id string) bool {
	for _, course := range s.Courses {
		if course.Identifies(id) {
			return true
		}
	}
	return false
}

// Meetings returns every meeting of every course in schedule order.
func (s *Schedule) Meetings() []Meeting {
	var meetings []Meeting
	for _, course := range s.Courses {
		meetings = append(meetings, course.Meetings...)
	}
	return meetings
}

func (s *Schedule) String() string {
	if len(s.Courses) == 0 {
		return "No courses in schedule."
	}
	parts := make([]string, 0, len(s.Courses))
	for _, course := range s.Courses {
		parts = append(parts, course.String())
	}
	return strings.Join(parts, ", ")
}

func hasDuplicateNames(courses []*Course) bool {
	seen := make(map[string]struct{}, len(courses))
	for _, course := range courses {
		if _, ok := seen[course.Name]; ok {
			return true
		}
		seen[course.Name] = struct{}{}
	}
	return false
}
