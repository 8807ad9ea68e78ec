// ABOUTME: Compact human-readable durations for the summary line ("28d 6h", "2h 15m", "12s").
// ABOUTME: Shows at most the two largest units, dropping the second when it is zero.
package render

import (
	"fmt"
	"math"
	"time"
)

// Duration formats d using its two most significant units among days, hours,
// minutes and seconds. Sign is ignored and sub-second values render as "0s".
func Duration(d time.Duration) string {
	if d == math.MinInt64 {
		d = math.MaxInt64
	}
	if d < 0 {
		d = -d
	}
	secs := int64(d / time.Second)

	parts := [4]struct {
		n      int64
		suffix string
	}{
		{secs / 86400, "d"},
		{secs % 86400 / 3600, "h"},
		{secs % 3600 / 60, "m"},
		{secs % 60, "s"},
	}

	for i, p := range parts {
		if p.n == 0 {
			continue
		}
		out := fmt.Sprintf("%d%s", p.n, p.suffix)
		if i+1 < len(parts) && parts[i+1].n != 0 {
			out += fmt.Sprintf(" %d%s", parts[i+1].n, parts[i+1].suffix)
		}
		return out
	}
	return "0s"
}
