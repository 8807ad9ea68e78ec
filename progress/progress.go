// ABOUTME: Pure progress math for a time interval: percentage, color tier, and elapsed/remaining snapshot.
// ABOUTME: Percentages are clamped at 0 but never above 100, so overtime stays visible.
package progress

import "time"

// Tier thresholds, in percent.
const (
	WarningThreshold = 80.0
	DangerThreshold  = 100.0
)

// Tier is the color band a percentage falls into.
type Tier int

const (
	TierNormal Tier = iota
	TierWarning
	TierDanger
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "normal"
	case TierWarning:
		return "warning"
	case TierDanger:
		return "danger"
	default:
		return "unknown"
	}
}

// Calculate returns how far current is through [start, end] as a percentage.
// A zero-length interval is complete by definition and reports 100. Instants
// before start report 0. There is no upper clamp.
func Calculate(start, end, current time.Time) float64 {
	total := end.Sub(start)
	if total == 0 {
		return 100.0
	}
	if current.Before(start) {
		return 0.0
	}
	pct := current.Sub(start).Seconds() / total.Seconds() * 100.0
	if pct < 0 {
		return 0.0
	}
	return pct
}

// Classify maps a percentage to its tier: normal below 80, warning from 80
// through 100, danger above 100.
func Classify(percent float64) Tier {
	switch {
	case percent > DangerThreshold:
		return TierDanger
	case percent >= WarningThreshold:
		return TierWarning
	default:
		return TierNormal
	}
}

// Snapshot is one measurement of an interval at a given instant.
type Snapshot struct {
	Start   time.Time
	End     time.Time
	Now     time.Time
	Percent float64
	Tier    Tier
	// Elapsed is Now - Start, clamped at zero.
	Elapsed time.Duration
	// Remaining is End - Now; negative once the deadline has passed.
	Remaining time.Duration
}

// Overtime reports whether the end instant has passed.
func (s Snapshot) Overtime() bool {
	return s.Remaining < 0
}

// Measure takes a Snapshot of [start, end] at now.
func Measure(start, end, now time.Time) Snapshot {
	pct := Calculate(start, end, now)
	elapsed := now.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return Snapshot{
		Start:     start,
		End:       end,
		Now:       now,
		Percent:   pct,
		Tier:      Classify(pct),
		Elapsed:   elapsed,
		Remaining: end.Sub(now),
	}
}
