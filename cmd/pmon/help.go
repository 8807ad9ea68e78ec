// ABOUTME: Help display for the pmon CLI with usage, time formats, flags, keys, and examples.
// ABOUTME: Installed as the cobra help function so -h and --help print it.
package main

import (
	"fmt"
	"io"
	"os"
)

// printHelp writes a formatted help message to w.
func printHelp(w io.Writer, ver string) {
	fmt.Fprintf(w, "pmon %s: progress bar for a time interval\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  pmon --end <time> [--start <time>] [--interval <seconds>]")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Time Formats:")
	fmt.Fprintln(w, "  YYYY-MM-DD            Date at midnight")
	fmt.Fprintln(w, "  YYYY-MM-DD HH:MM:SS   Date and time")
	fmt.Fprintln(w, "  <n>s <n>m <n>h <n>d   Relative offset, 1 to 999 units")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  A relative --end is measured from --start. Without --start, a date-only")
	fmt.Fprintln(w, "  --end starts at midnight today and anything else starts now.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --start <time>      Start time")
	fmt.Fprintln(w, "  -e, --end <time>        End time (required)")
	fmt.Fprintln(w, "  -i, --interval <secs>   Update interval in seconds (default: 60)")
	fmt.Fprintln(w, "      --color <mode>      auto, always, never (default: auto)")
	fmt.Fprintln(w, "      --log-level <lvl>   debug, info, warn, error (default: warn)")
	fmt.Fprintln(w, "      --config <file>     YAML defaults for interval, color, log_level")
	fmt.Fprintln(w, "      --version           Print version and exit")
	fmt.Fprintln(w, "  -h, --help              Show this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Keys:")
	fmt.Fprintln(w, "  v                     Toggle detailed view")
	fmt.Fprintln(w, "  q, esc, ctrl+c        Quit")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  pmon -e 2h")
	fmt.Fprintln(w, "  pmon -s \"2025-07-21 09:00:00\" -e \"2025-07-21 17:00:00\"")
	fmt.Fprintln(w, "  pmon -e 2025-12-31 -i 3600")
	fmt.Fprintln(w, "  pmon -e 45m | tee progress.log")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	fmt.Fprintf(w, "  NO_COLOR              %s\n", envStatus("NO_COLOR"))
	fmt.Fprintf(w, "  XDG_CONFIG_HOME       %s\n", envStatus("XDG_CONFIG_HOME"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  When stdout is not a terminal, one line is printed per update.")
}

// envStatus returns "[set]" if the named environment variable is non-empty,
// or "[not set]" otherwise.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "[set]"
	}
	return "[not set]"
}
