package scheduler

// Heuristic adds a bounded delta to a schedule's fitness.
type Heuristic struct {
	Name  string
	Apply func(s *Schedule, p *Parameters) int
}

// Scorer applies heuristics in a fixed order.
type Scorer struct {
	heuristics []Heuristic
}

// NewScorer builds a scorer; with no heuristics it uses DefaultHeuristics.
func NewScorer(heuristics ...Heuristic) *Scorer {
	if len(heuristics) == 0 {
		heuristics = DefaultHeuristics()
	}
	return &Scorer{heuristics: heuristics}
}

// Score resets the fitness and reapplies every heuristic.
func (sc *Scorer) Score(s *Schedule, p *Parameters) int {
	s.Fitness = 0
	for _, h := range sc.heuristics {
		s.Fitness += h.Apply(s, p)
	}
	return s.Fitness
}

// DefaultHeuristics returns around-time, bad-day, earliest-time, latest-time
// and waitlist scoring, in that order.
func DefaultHeuristics() []Heuristic {
	return []Heuristic{
		{Name: "around_time", Apply: aroundTime},
		{Name: "bad_day", Apply: avoidDays},
		{Name: "earliest_time", Apply: earliestTime},
		{Name: "latest_time", Apply: latestTime},
		{Name: "waitlist", Apply: waitlist},
	}
}

var defaultScorer = NewScorer()

// CalculateFitness scores the schedule with the default heuristics. Repeated
// calls with the same parameters yield the same value.
func (s *Schedule) CalculateFitness(p *Parameters) int {
	return defaultScorer.Score(s, p)
}

type span struct{ start, end int }

// Midpoint returns, in seconds since midnight, the mean of the schedule's
// earliest start, its latest end and the span midpoints of the interior
// courses. Interior means every timed course but the first and the last in
// schedule order, so schedules of one or two timed courses average only the
// earliest start and latest end. ok is false when no meeting is timed.
func (s *Schedule) Midpoint() (seconds int, ok bool) {
	spans := make([]span, 0, len(s.Courses))
	earliest, latest := 0, 0
	for _, course := range s.Courses {
		start, end, timed := courseSpan(course)
		if !timed {
			continue
		}
		if len(spans) == 0 || start < earliest {
			earliest = start
		}
		if len(spans) == 0 || end > latest {
			latest = end
		}
		spans = append(spans, span{start, end})
	}
	if len(spans) == 0 {
		return 0, false
	}

	sum, points := earliest+latest, 2
	if len(spans) > 2 {
		for _, sp := range spans[1 : len(spans)-1] {
			sum += (sp.start + sp.end) / 2
			points++
		}
	}
	return sum / points, true
}

// courseSpan is the first start and last end of a course's timed meetings,
// in seconds.
func courseSpan(c *Course) (start, end int, ok bool) {
	for _, meeting := range c.Meetings {
		if !meeting.Timed() {
			continue
		}
		s, e := meeting.Time.Start.Seconds(), meeting.Time.End.Seconds()
		if !ok || s < start {
			start = s
		}
		if !ok || e > end {
			end = e
		}
		ok = true
	}
	return start, end, ok
}

func aroundTime(s *Schedule, p *Parameters) int {
	if !p.AroundTime().IsSet() {
		return 0
	}
	midpoint, ok := s.Midpoint()
	if !ok {
		return 0
	}
	distance := midpoint - p.AroundTime().Seconds()
	if distance < 0 {
		distance = -distance
	}
	if distance <= p.MaximumTimeDistance() {
		return 1
	}
	return -1
}

func avoidDays(s *Schedule, p *Parameters) int {
	delta := 0
	for _, meeting := range s.Meetings() {
		if p.dislikes(meeting.Day) {
			delta--
		}
	}
	return delta
}

func earliestTime(s *Schedule, p *Parameters) int {
	if !p.EarliestTime().IsSet() {
		return 0
	}
	delta := 0
	for _, meeting := range s.Meetings() {
		if meeting.Timed() && meeting.Time.Start < p.EarliestTime() {
			delta--
		}
	}
	return delta
}

func latestTime(s *Schedule, p *Parameters) int {
	if !p.LatestTime().IsSet() {
		return 0
	}
	delta := 0
	for _, meeting := range s.Meetings() {
		if meeting.Timed() && meeting.Time.End > p.LatestTime() {
			delta--
		}
	}
	return delta
}

func waitlist(s *Schedule, p *Parameters) int {
	if !p.PreferNoWaitlist() {
		return 0
	}
	delta := 0
	for _, course := range s.Courses {
		if course.Waitlisted {
			delta--
		} else {
			delta++
		}
	}
	return delta
}
