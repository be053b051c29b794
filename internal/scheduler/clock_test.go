package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/course-planner/pkg/errors"
)

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("0800-0950")
	require.NoError(t, err)
	assert.Equal(t, TimeRange{Start: Clock(8, 0), End: Clock(9, 50)}, r)
	assert.Equal(t, 110, r.Duration())
	assert.Equal(t, "08:00-09:50", r.String())
}

func TestParseTimeRangeDegradesToZero(t *testing.T) {
	for _, input := range []string{"", "   ", "TBA-TBA", "08xx-0950", "2500-2600", "0800-"} {
		r, err := ParseTimeRange(input)
		require.NoError(t, err, input)
		assert.True(t, r.IsZero(), input)
	}
}

func TestParseTimeRangeRequiresSeparator(t *testing.T) {
	_, err := ParseTimeRange("08000950")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrMalformedTimeRange))
}

func TestParseSingleTime(t *testing.T) {
	assert.Equal(t, Clock(13, 5), ParseSingleTime("1305"))
	assert.Equal(t, Midnight, ParseSingleTime("noon"))
	assert.Equal(t, Midnight, ParseSingleTime(""))
	assert.False(t, ParseSingleTime("0000").IsSet())
	assert.Equal(t, 45000, ParseSingleTime("1230").Seconds())
	assert.Equal(t, "1230", Clock(12, 30).Compact())
}

func TestParseSingleTimeReadsFirstTwoDigitsAsHour(t *testing.T) {
	// "900" is hour 90, out of range, so it is unset like any malformed value
	assert.Equal(t, Midnight, ParseSingleTime("900"))
	assert.Equal(t, Midnight, ParseSingleTime("12"))
	assert.Equal(t, Clock(9, 0), ParseSingleTime("0900"))

	r, err := ParseTimeRange("900-1000")
	require.NoError(t, err)
	assert.True(t, r.IsZero())
}
