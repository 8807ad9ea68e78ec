// ABOUTME: Parses date, datetime, and relative time expressions into second-precision instants.
// ABOUTME: Grammars are tried in order (date, datetime, relative); the first match wins.
package timeparse

import (
	"regexp"
	"strconv"
	"time"
)

// Layouts used when echoing resolved instants back to the user.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Relative magnitudes are bounded to keep expressions human-sized.
const (
	MinRelative = 1
	MaxRelative = 999
)

// The representable range matches the four-digit year grammar.
const (
	minYear = 1
	maxYear = 9999
)

var (
	dateRe     = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	dateTimeRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2}) (\d{2}):(\d{2}):(\d{2})$`)
	relativeRe = regexp.MustCompile(`^(\d+)([smhd])$`)
)

var unitSeconds = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 3600,
	"d": 86400,
}

// Parse converts expr into an instant. Absolute expressions are interpreted in
// base's location; relative expressions are offsets added to base.
func Parse(expr string, base time.Time) (time.Time, error) {
	if m := dateRe.FindStringSubmatch(expr); m != nil {
		return buildInstant(expr, base.Location(), m[1], m[2], m[3], "00", "00", "00")
	}
	if m := dateTimeRe.FindStringSubmatch(expr); m != nil {
		return buildInstant(expr, base.Location(), m[1], m[2], m[3], m[4], m[5], m[6])
	}
	if m := relativeRe.FindStringSubmatch(expr); m != nil {
		return addRelative(expr, base, m[1], m[2])
	}
	return time.Time{}, newParseError(expr, "expected YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, or <1-999><s|m|h|d>")
}

// IsRelative reports whether expr matches the relative grammar's shape. The
// magnitude is not range-checked.
func IsRelative(expr string) bool {
	return relativeRe.MatchString(expr)
}

func buildInstant(expr string, loc *time.Location, ys, mos, ds, hs, mis, ss string) (time.Time, error) {
	// The regexps guarantee digits, so Atoi cannot fail here.
	year, _ := strconv.Atoi(ys)
	month, _ := strconv.Atoi(mos)
	day, _ := strconv.Atoi(ds)
	hour, _ := strconv.Atoi(hs)
	minute, _ := strconv.Atoi(mis)
	sec, _ := strconv.Atoi(ss)

	if year < minYear || year > maxYear {
		return time.Time{}, newParseError(expr, "year must be between 0001 and 9999")
	}
	if hour > 23 {
		return time.Time{}, newParseError(expr, "hour must be between 00 and 23")
	}
	if minute > 59 {
		return time.Time{}, newParseError(expr, "minute must be between 00 and 59")
	}
	if sec == 60 {
		return time.Time{}, newParseError(expr, "leap seconds are not supported")
	}
	if sec > 59 {
		return time.Time{}, newParseError(expr, "second must be between 00 and 59")
	}
	if month < 1 || month > 12 || day < 1 || day > daysIn(time.Month(month), year) {
		return time.Time{}, newParseError(expr, "no such calendar date")
	}

	return time.Date(year, time.Month(month), day, hour, minute, sec, 0, loc), nil
}

func addRelative(expr string, base time.Time, amount, unit string) (time.Time, error) {
	n, err := strconv.ParseInt(amount, 10, 64)
	if err != nil || n < MinRelative || n > MaxRelative {
		return time.Time{}, newParseError(expr, "amount must be between 1 and 999")
	}

	// The offset moves the wall clock, so "1d" keeps the same time of day
	// across a DST change.
	b := base.Truncate(time.Second)
	y, mo, d := b.Date()
	h, mi, sec := b.Clock()
	result := time.Date(y, mo, d, h, mi, sec+int(n*unitSeconds[unit]), 0, b.Location())
	if y := result.Year(); y < minYear || y > maxYear {
		pe := newParseError(expr, "result is outside the supported years 0001-9999")
		pe.Err = ErrOutOfRange
		return time.Time{}, pe
	}
	return result, nil
}

// daysIn returns the number of days in month m of year y, honoring leap years.
func daysIn(m time.Month, y int) int {
	// Day 0 of the following month normalizes to the last day of m.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
