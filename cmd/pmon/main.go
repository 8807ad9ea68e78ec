// ABOUTME: CLI entrypoint for pmon, a terminal progress bar for a time interval.
// ABOUTME: Parses flags with cobra, resolves the interval, and runs the interactive or pipe driver.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2389-research/pmon/pipe"
	"github.com/2389-research/pmon/timeparse"
	"github.com/2389-research/pmon/tui"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// maxInterval is the longest update interval accepted, 999 days in seconds.
const maxInterval = 999 * 24 * 60 * 60

// config holds all CLI configuration parsed from flags.
type config struct {
	start      string
	end        string
	interval   int
	color      *enumFlag
	logLevel   *enumFlag
	configPath string
}

func newConfig() *config {
	return &config{
		interval: 60,
		color:    newEnumFlag("auto", "auto", "always", "never"),
		logLevel: newEnumFlag("warn", logLevels...),
	}
}

// runtimeError marks failures that happen after flags were accepted. Anything
// else returned by the command is a usage error.
type runtimeError struct {
	err error
}

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

// streams carries the process I/O so tests can substitute buffers.
type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], streams{in: os.Stdin, out: os.Stdout, errOut: os.Stderr})
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, s streams) int {
	cmd := newCommand(s)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(s.errOut, "error: %v\n", err)
	var rt *runtimeError
	if errors.As(err, &rt) {
		return exitFailure
	}
	fmt.Fprintln(s.errOut, "Run 'pmon --help' for usage.")
	return exitUsage
}

// newCommand builds the root cobra command bound to a fresh config.
func newCommand(s streams) *cobra.Command {
	cfg := newConfig()

	cmd := &cobra.Command{
		Use:           "pmon --end <time> [--start <time>] [--interval <seconds>]",
		Short:         "Show how far through a time interval you are",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			fc, err := loadConfigFile(cfg.configPath)
			if err == nil {
				err = fc.apply(cmd.Flags())
			}
			if err != nil {
				return &runtimeError{err: err}
			}
			return cfg.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := execute(cmd.Context(), cfg, s); err != nil {
				return &runtimeError{err: err}
			}
			return nil
		},
	}

	cmd.SetIn(s.in)
	cmd.SetOut(s.out)
	cmd.SetErr(s.errOut)
	cmd.SetVersionTemplate("pmon {{.Version}}\n")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printHelp(c.OutOrStdout(), version)
	})

	flags := cmd.Flags()
	flags.StringVarP(&cfg.start, "start", "s", "", "Start time (default: now, or midnight for a date-only end)")
	flags.StringVarP(&cfg.end, "end", "e", "", "End time (required)")
	flags.IntVarP(&cfg.interval, "interval", "i", cfg.interval, "Update interval in seconds")
	flags.Var(cfg.color, "color", "Colour output: auto, always, never")
	flags.Var(cfg.logLevel, "log-level", "Log level on stderr: debug, info, warn, error")
	flags.StringVar(&cfg.configPath, "config", "", "Defaults file (default: $XDG_CONFIG_HOME/pmon/config.yaml)")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// validate checks flag values that pflag cannot.
func (c *config) validate() error {
	if c.interval < 1 {
		return errors.Errorf("invalid interval %d: must be at least 1 second", c.interval)
	}
	if c.interval > maxInterval {
		return errors.Errorf("invalid interval %d: must be at most %d seconds", c.interval, maxInterval)
	}
	return nil
}

// execute resolves the interval and hands it to the driver matching stdout.
func execute(ctx context.Context, cfg *config, s streams) error {
	logger, err := newLogger(s.errOut, cfg.logLevel.String())
	if err != nil {
		return err
	}

	iv, err := timeparse.Resolve(cfg.start, cfg.end, time.Now())
	if err != nil {
		return err
	}

	every := time.Duration(cfg.interval) * time.Second
	interactive := isTerminal(s.out)
	applyColorMode(cfg.color.String())

	logger.Debug().Str("component", "cli").Str("action", "resolved").
		Time("start", iv.Start).
		Time("end", iv.End).
		Dur("length", iv.Duration()).
		Bool("interactive", interactive).
		Msg("")

	// The interactive driver owns the controlling terminal, falling back to
	// /dev/tty when stdin is redirected.
	if interactive {
		tuiLog := interactiveLogger(logger)
		return tui.Run(ctx, tui.Config{
			Interval:       iv,
			UpdateInterval: every,
			Logger:         &tuiLog,
		})
	}
	return pipe.Run(ctx, pipe.Config{
		Interval:       iv,
		UpdateInterval: every,
		Out:            s.out,
		Color:          cfg.color.String() == "always",
		Logger:         &logger,
	})
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// applyColorMode sets the global colour state of both styling libraries.
// auto leaves their own detection, which honours NO_COLOR, in place.
func applyColorMode(mode string) {
	switch mode {
	case "never":
		color.NoColor = true
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		color.NoColor = false
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

