// ABOUTME: Builds the three-line verbose layout (labels, bar, summary) and the one-line pipe output.
// ABOUTME: All functions are pure over a progress.Snapshot.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/2389-research/pmon/progress"
)

const (
	dateLabelLayout = "2006-01-02"
	labelWidth      = BarWidth / 2
)

// Layout is the verbose view split into its three lines so callers can style
// the bar independently.
type Layout struct {
	Labels  string
	Bar     string
	Summary string
}

// String joins the three lines with newlines.
func (l Layout) String() string {
	return strings.Join([]string{l.Labels, l.Bar, l.Summary}, "\n")
}

// Verbose lays out a snapshot as start/end labels, a bar, and a summary line.
// bracketed selects the legacy "[...] NN%" bar instead of the bare one.
func Verbose(s progress.Snapshot, bracketed bool) Layout {
	bar := Minimal(s.Percent)
	if bracketed {
		bar = Bracketed(s.Percent)
	}
	return Layout{
		Labels:  Labels(s.Start, s.End),
		Bar:     bar,
		Summary: Summary(s),
	}
}

// Labels places the start date flush left and the end date flush right
// across BarWidth columns.
func Labels(start, end time.Time) string {
	return fmt.Sprintf("%-*s%*s", labelWidth, start.Format(dateLabelLayout), labelWidth, end.Format(dateLabelLayout))
}

// Summary renders "<p>% elapsed | <dur> remaining", or "<dur> overtime" once
// the deadline has passed.
func Summary(s progress.Snapshot) string {
	return fmt.Sprintf("%.1f%% elapsed | %s", s.Percent, remainingPhrase(s))
}

// PipeLine renders the single line printed per update in pipe mode.
func PipeLine(s progress.Snapshot) string {
	return fmt.Sprintf("%s | %s elapsed | %s", Bracketed(s.Percent), Duration(s.Elapsed), remainingPhrase(s))
}

func remainingPhrase(s progress.Snapshot) string {
	if s.Overtime() {
		return Duration(s.Remaining) + " overtime"
	}
	return Duration(s.Remaining) + " remaining"
}
