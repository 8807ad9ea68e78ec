// ABOUTME: Runs an interactive session on the alternate screen and maps Bubble Tea exit paths to errors.
// ABOUTME: tea.Program owns the terminal and restores it on quit, signal, context cancellation, and panic.
package tui

import (
	"context"
	"io"
	"time"

	"github.com/2389-research/pmon/timeparse"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config describes one interactive session.
type Config struct {
	Interval       timeparse.Interval
	UpdateInterval time.Duration
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Logger defaults to a disabled logger.
	Logger *zerolog.Logger
	// Input and Output default to the controlling terminal.
	Input  io.Reader
	Output io.Writer
}

func (c Config) withDefaults() Config {
	if c.UpdateInterval <= 0 {
		c.UpdateInterval = DefaultUpdateInterval
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	return c
}

// Run drives the interactive view until the user quits or ctx is cancelled.
// A quit key, SIGINT, or cancellation is a normal exit and returns nil.
func Run(ctx context.Context, cfg Config) error {
	cfg = cfg.withDefaults()
	log := cfg.Logger.With().Str("component", "tui").Logger()

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if cfg.Input != nil {
		opts = append(opts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		opts = append(opts, tea.WithOutput(cfg.Output))
	}

	p := tea.NewProgram(NewAppModel(cfg), opts...)
	log.Debug().Str("action", "start").
		Time("start", cfg.Interval.Start).
		Time("end", cfg.Interval.End).
		Dur("update_interval", cfg.UpdateInterval).
		Msg("")

	_, err := p.Run()
	return exitError(ctx, err, log)
}

// exitError classifies the error returned by tea.Program.Run.
func exitError(ctx context.Context, err error, log zerolog.Logger) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrProgramPanic):
		return errors.Wrap(err, "run interactive session")
	case errors.Is(err, tea.ErrInterrupted):
		log.Debug().Str("action", "interrupted").Msg("")
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		log.Debug().Str("action", "cancelled").Err(ctx.Err()).Msg("")
		return nil
	}
	return errors.Wrap(err, "run interactive session")
}
