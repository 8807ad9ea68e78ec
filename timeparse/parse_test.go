// ABOUTME: Tests for the date, datetime, and relative grammars including calendar and range rejection.
// ABOUTME: Property tests check date round-tripping and exact relative offsets.
package timeparse

import (
	"strconv"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 7, 21, 10, 0, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-07-21", time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC)},
		{"2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"2000-02-29", time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"2025-7-21", time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC)},
		{"2025-1-1", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"0001-01-01", time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"9999-12-31", time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input, base)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDateUsesBaseLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	got, err := Parse("2025-07-21", base.In(loc))
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 0, got.Hour())
}

func TestParseRejectsInvalidCalendarDates(t *testing.T) {
	inputs := []string{
		"2025-02-30",
		"2023-02-29",
		"1900-02-29",
		"2025-04-31",
		"2025-06-31",
		"2025-09-31",
		"2025-11-31",
		"2025-13-01",
		"2025-00-15",
		"2025-05-00",
		"2025-01-32",
		"0000-01-01",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input, base)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "expected ParseError, got %v", err)
			assert.Equal(t, input, pe.Input)
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"25-07-21",
		"July 21, 2025",
		"21-07-2025",
		"2025-07",
		"2025",
		"2025-07-21-extra",
		"abcd-07-21",
		"2025-ab-21",
		"2025-001-21",
		"2025-07-21T10:00:00",
		"2025-07-21  10:00:00",
		"2025-07-21 1:00:00",
		"2025-07-21 10:00",
		" 2025-07-21",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input, base)
			require.Error(t, err)
			assert.Contains(t, err.Error(), input)
		})
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := Parse("2025-07-21 23:59:59", base)
	require.NoError(t, err)
	assert.True(t, time.Date(2025, 7, 21, 23, 59, 59, 0, time.UTC).Equal(got))

	got, err = Parse("2025-7-1 00:00:00", base)
	require.NoError(t, err)
	assert.True(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC).Equal(got))
}

func TestParseDateTimeRangeChecks(t *testing.T) {
	tests := []struct {
		input  string
		reason string
	}{
		{"2025-07-21 24:00:00", "hour"},
		{"2025-07-21 25:00:00", "hour"},
		{"2025-07-21 12:60:00", "minute"},
		{"2025-07-21 12:00:61", "second"},
		{"2025-02-30 12:00:00", "calendar"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input, base)
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Contains(t, pe.Reason, tt.reason)
		})
	}
}

func TestParseRejectsLeapSecond(t *testing.T) {
	_, err := Parse("2016-12-31 23:59:60", base)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Reason, "leap second")
}

func TestParseRelative(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"45s", 45 * time.Second},
		{"1m", time.Minute},
		{"30m", 30 * time.Minute},
		{"2h", 2 * time.Hour},
		{"1d", 24 * time.Hour},
		{"999s", 999 * time.Second},
		{"999m", 999 * time.Minute},
		{"999h", 999 * time.Hour},
		{"999d", 999 * 24 * time.Hour},
		{"007m", 7 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input, base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Sub(base))
		})
	}
}

func TestParseRelativeUnitEquivalence(t *testing.T) {
	h, err := Parse("1h", base)
	require.NoError(t, err)
	m, err := Parse("60m", base)
	require.NoError(t, err)
	assert.True(t, h.Equal(m))

	d, err := Parse("1d", base)
	require.NoError(t, err)
	hh, err := Parse("24h", base)
	require.NoError(t, err)
	assert.True(t, d.Equal(hh))
}

func TestParseRelativeRejects(t *testing.T) {
	inputs := []string{
		"0m", "0h", "0d", "0s",
		"1000d", "1000m", "1440m", "99999d",
		"30", "m30", "30x", "30mins", "2.5h", "m", "30mh",
		"-5h", "+5h", "30 m", " 30m", "30m ", "30M",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input, base)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "expected ParseError for %q", input)
			assert.Equal(t, input, pe.Input)
		})
	}
}

func TestParseRelativeOverflow(t *testing.T) {
	late := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
	_, err := Parse("1d", late)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "1d", pe.Input)

	ok, err := Parse("1d", time.Date(9999, 12, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 31, ok.Day())
}

func TestParseRelativeKeepsWallClockAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// Clocks spring forward at 02:00 on 2025-03-09.
	spring := time.Date(2025, 3, 8, 12, 0, 0, 0, ny)
	got, err := Parse("1d", spring)
	require.NoError(t, err)
	assert.True(t, time.Date(2025, 3, 9, 12, 0, 0, 0, ny).Equal(got), "got %v", got)
	assert.Equal(t, 23*time.Hour, got.Sub(spring))

	got, err = Parse("24h", spring)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Hour())

	// Clocks fall back at 02:00 on 2025-11-02.
	fall := time.Date(2025, 11, 1, 9, 30, 0, 0, ny)
	got, err = Parse("1d", fall)
	require.NoError(t, err)
	assert.True(t, time.Date(2025, 11, 2, 9, 30, 0, 0, ny).Equal(got), "got %v", got)
	assert.Equal(t, 25*time.Hour, got.Sub(fall))
}

func TestParseRelativeDropsSubSeconds(t *testing.T) {
	b := base.Add(750 * time.Millisecond)
	got, err := Parse("10s", b)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Nanosecond())
	assert.Equal(t, 10*time.Second, got.Sub(base))
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("invalid-date", base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"invalid-date"`)

	pe := &ParseError{Field: "end", Input: "1000d", Reason: "amount must be between 1 and 999"}
	assert.Equal(t, `invalid end time "1000d": amount must be between 1 and 999`, pe.Error())
}

func TestDateRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	epoch := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	// 0001-01-01 plus 3652058 days is 9999-12-31.
	const lastDay = 3652058

	properties.Property("parse(format(d)) == d", prop.ForAll(
		func(offset int) bool {
			d := epoch.AddDate(0, 0, offset)
			got, err := Parse(d.Format(DateLayout), base)
			return err == nil && got.Equal(d)
		},
		gen.IntRange(0, lastDay),
	))

	properties.TestingRun(t)
}

func TestRelativeOffsetProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	units := []string{"s", "m", "h", "d"}
	seconds := []int64{1, 60, 3600, 86400}

	properties.Property("offset equals n * unit seconds", prop.ForAll(
		func(n int, unit int) bool {
			got, err := Parse(strconv.Itoa(n)+units[unit], base)
			if err != nil {
				return false
			}
			return int64(got.Sub(base)/time.Second) == int64(n)*seconds[unit]
		},
		gen.IntRange(MinRelative, MaxRelative),
		gen.IntRange(0, len(units)-1),
	))

	properties.TestingRun(t)
}
