package scheduler

import "sort"

// HasConflict reports whether any two timed representative meetings of the
// given courses overlap on the same weekday. The boundary is inclusive: a class
// ending at 09:00 conflicts with one starting at 09:00.
func HasConflict(courses []*Course) bool {
	var week [Friday + 1][]TimeRange
	for _, course := range courses {
		for _, meeting := range course.representativeMeetings() {
			if !meeting.Timed() {
				continue
			}
			week[meeting.Day] = append(week[meeting.Day], meeting.Time)
		}
	}
	for _, ranges := range week {
		if rangesCollide(ranges) {
			return true
		}
	}
	return false
}

// rangesCollide sorts ranges by start and checks adjacent pairs.
func rangesCollide(ranges []TimeRange) bool {
	if len(ranges) < 2 {
		return false
	}
	sorted := make([]TimeRange, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].End >= sorted[i].Start {
			return true
		}
	}
	return false
}
