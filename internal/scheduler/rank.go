package scheduler

import "sort"

// Ranking is the ordered outcome of a ranking pass.
type Ranking struct {
	schedules []*Schedule
}

// Rank keeps the schedules containing every forced-include section, scores
// them and sorts them by descending fitness. Ties keep their input order.
func Rank(schedules []*Schedule, p *Parameters) *Ranking {
	return RankWith(NewScorer(), schedules, p)
}

// RankWith is Rank with an explicit scorer.
func RankWith(scorer *Scorer, schedules []*Schedule, p *Parameters) *Ranking {
	kept := FilterForced(schedules, p.IncludeSections())
	for _, s := range kept {
		scorer.Score(s, p)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Fitness > kept[j].Fitness
	})
	return &Ranking{schedules: kept}
}

// FilterForced returns the schedules that contain all of ids.
func FilterForced(schedules []*Schedule, ids []string) []*Schedule {
	kept := make([]*Schedule, 0, len(schedules))
	for _, s := range schedules {
		if containsAll(s, ids) {
			kept = append(kept, s)
		}
	}
	return kept
}

func containsAll(s *Schedule, ids []string) bool {
	for _, id := range ids {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

// Best returns the top schedule, or false when nothing survived.
func (r *Ranking) Best() (*Schedule, bool) {
	if r == nil || len(r.schedules) == 0 {
		return nil, false
	}
	return r.schedules[0], true
}

// Schedules returns the ranked schedules, best first.
func (r *Ranking) Schedules() []*Schedule {
	if r == nil {
		return nil
	}
	return r.schedules
}

// Len is the number of ranked schedules.
func (r *Ranking) Len() int {
	if r == nil {
		return 0
	}
	return len(r.schedules)
}
