package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/course-planner/pkg/errors"
)

func TestNewParametersBounds(t *testing.T) {
	_, err := NewParameters(ParametersConfig{MaximumTimeDistance: -1})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidConfiguration))

	_, err = NewParameters(ParametersConfig{MaximumTimeDistance: 86341})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidConfiguration))

	for _, distance := range []int{0, 86340} {
		_, err = NewParameters(ParametersConfig{MaximumTimeDistance: distance})
		assert.NoError(t, err)
	}
}

func TestParametersAreImmutable(t *testing.T) {
	cfg := ParametersConfig{
		EarliestTime:      Clock(9, 0),
		LatestTime:        Clock(17, 0),
		BadDays:           []Weekday{Monday},
		IncludeSections:   []string{"X"},
		IncludeProfessors: []string{"HOPPER"},
	}
	p, err := NewParameters(cfg)
	require.NoError(t, err)

	cfg.BadDays[0] = Friday
	cfg.IncludeSections[0] = "Y"
	p.BadDays()[0] = Tuesday

	assert.Equal(t, []Weekday{Monday}, p.BadDays())
	assert.Equal(t, []string{"X"}, p.IncludeSections())
	assert.Equal(t, []string{"HOPPER"}, p.IncludeProfessors())
	assert.Equal(t, Clock(9, 0), p.EarliestTime())
	assert.Equal(t, Clock(17, 0), p.LatestTime())
}
