package scheduler

import (
	"fmt"

	appErrors "github.com/noah-isme/course-planner/pkg/errors"
)

// ParametersConfig is the mutable input used to build Parameters.
type ParametersConfig struct {
	AroundTime           TimeOfDay
	MaximumTimeDistance  int
	BadDays              []Weekday
	EarliestTime         TimeOfDay
	LatestTime           TimeOfDay
	PreferNoWaitlist     bool
	IncludeSections      []string
	IncludeProfessors    []string
	IncludeAllProfessors bool
	SkipMissingCourses   bool
}

// Parameters carries the preferences of a single ranking request. It cannot
// be modified after NewParameters returns.
type Parameters struct {
	aroundTime           TimeOfDay
	maximumTimeDistance  int
	badDays              []Weekday
	earliestTime         TimeOfDay
	latestTime           TimeOfDay
	preferNoWaitlist     bool
	includeSections      []string
	includeProfessors    []string
	includeAllProfessors bool
	skipMissingCourses   bool
}

// NewParameters validates cfg and freezes it.
func NewParameters(cfg ParametersConfig) (*Parameters, error) {
	if cfg.MaximumTimeDistance < 0 || cfg.MaximumTimeDistance > MaxTimeDistance {
		return nil, appErrors.Clone(appErrors.ErrInvalidConfiguration,
			fmt.Sprintf("maximumTimeDistance must be within 0 and %d seconds, got %d", MaxTimeDistance, cfg.MaximumTimeDistance))
	}
	for _, day := range cfg.BadDays {
		if day < Monday || day > Arranged {
			return nil, appErrors.Clonef(appErrors.ErrInvalidConfiguration, "unknown bad day %d", int(day))
		}
	}
	return &Parameters{
		aroundTime:           cfg.AroundTime,
		maximumTimeDistance:  cfg.MaximumTimeDistance,
		badDays:              append([]Weekday(nil), cfg.BadDays...),
		earliestTime:         cfg.EarliestTime,
		latestTime:           cfg.LatestTime,
		preferNoWaitlist:     cfg.PreferNoWaitlist,
		includeSections:      append([]string(nil), cfg.IncludeSections...),
		includeProfessors:    append([]string(nil), cfg.IncludeProfessors...),
		includeAllProfessors: cfg.IncludeAllProfessors,
		skipMissingCourses:   cfg.SkipMissingCourses,
	}, nil
}

func (p *Parameters) AroundTime() TimeOfDay    { return p.aroundTime }
func (p *Parameters) MaximumTimeDistance() int { return p.maximumTimeDistance }
func (p *Parameters) EarliestTime() TimeOfDay  { return p.earliestTime }
func (p *Parameters) LatestTime() TimeOfDay    { return p.latestTime }
func (p *Parameters) PreferNoWaitlist() bool   { return p.preferNoWaitlist }
func (p *Parameters) SkipMissingCourses() bool { return p.skipMissingCourses }

// BadDays returns a copy of the disliked weekdays.
func (p *Parameters) BadDays() []Weekday {
	return append([]Weekday(nil), p.badDays...)
}

// IncludeSections returns a copy of the forced-include section identifiers.
func (p *Parameters) IncludeSections() []string {
	return append([]string(nil), p.includeSections...)
}

// IncludeProfessors is accepted and echoed back but does not filter
// schedules yet.
func (p *Parameters) IncludeProfessors() []string {
	return append([]string(nil), p.includeProfessors...)
}

// IncludeAllProfessors is reserved alongside IncludeProfessors.
func (p *Parameters) IncludeAllProfessors() bool { return p.includeAllProfessors }

func (p *Parameters) dislikes(day Weekday) bool {
	for _, bad := range p.badDays {
		if bad == day {
			return true
		}
	}
	return false
}
