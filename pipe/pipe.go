// ABOUTME: Non-interactive driver that prints one progress line per update interval.
// ABOUTME: Used when stdout is not a terminal; never reads input and stops on context cancellation.
package pipe

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/2389-research/pmon/progress"
	"github.com/2389-research/pmon/render"
	"github.com/2389-research/pmon/timeparse"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultUpdateInterval is used when Config.UpdateInterval is not positive.
const DefaultUpdateInterval = 60 * time.Second

// Config describes one pipe-mode session.
type Config struct {
	Interval       timeparse.Interval
	UpdateInterval time.Duration
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Out defaults to os.Stdout.
	Out io.Writer
	// Color enables tier colouring even though Out is not a terminal.
	Color  bool
	Logger *zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.UpdateInterval <= 0 {
		c.UpdateInterval = DefaultUpdateInterval
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	return c
}

// Run writes the first line immediately and then one line per update
// interval until ctx is cancelled. Cancellation is a normal exit.
func Run(ctx context.Context, cfg Config) error {
	cfg = cfg.withDefaults()
	p := printer{
		out:   cfg.Out,
		color: cfg.Color,
		log:   cfg.Logger.With().Str("component", "pipe").Logger(),
	}

	p.log.Debug().Str("action", "start").
		Time("start", cfg.Interval.Start).
		Time("end", cfg.Interval.End).
		Dur("update_interval", cfg.UpdateInterval).
		Msg("")

	if err := p.emit(cfg.Interval, cfg.Clock()); err != nil {
		return err
	}

	ticker := time.NewTicker(cfg.UpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Debug().Str("action", "cancelled").Err(ctx.Err()).Msg("")
			return nil
		case <-ticker.C:
			if err := p.emit(cfg.Interval, cfg.Clock()); err != nil {
				return err
			}
		}
	}
}

type printer struct {
	out     io.Writer
	color   bool
	log     zerolog.Logger
	reached bool
}

// emit measures progress at now and writes one line.
func (p *printer) emit(iv timeparse.Interval, now time.Time) error {
	snap := progress.Measure(iv.Start, iv.End, now)
	if !p.reached && snap.Percent >= 100 {
		p.reached = true
		p.log.Info().Str("action", "deadline_reached").Time("end", iv.End).Msg("deadline reached")
	}

	line := render.PipeLine(snap)
	if c := p.colorFor(snap.Tier); c != nil {
		line = c.Sprint(line)
	}
	if _, err := fmt.Fprintln(p.out, line); err != nil {
		return errors.Wrap(err, "write progress line")
	}
	return nil
}

// colorFor returns the colour for a tier, or nil when the line stays plain.
func (p *printer) colorFor(tier progress.Tier) *color.Color {
	if !p.color {
		return nil
	}
	var c *color.Color
	switch tier {
	case progress.TierWarning:
		c = color.New(color.FgYellow)
	case progress.TierDanger:
		c = color.New(color.FgRed, color.Bold)
	default:
		return nil
	}
	// Out is not a terminal here, so the package-level detection would
	// always disable colour.
	c.EnableColor()
	return c
}
