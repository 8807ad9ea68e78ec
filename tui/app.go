// ABOUTME: Top-level Bubble Tea AppModel driving the interactive progress view.
// ABOUTME: Holds the display mode, polls every 100ms, recomputes progress on the update interval, and quits on q/esc/ctrl+c.
package tui

import (
	"time"

	"github.com/2389-research/pmon/progress"
	"github.com/2389-research/pmon/render"
	"github.com/2389-research/pmon/timeparse"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// DefaultUpdateInterval is used when Config.UpdateInterval is not positive.
const DefaultUpdateInterval = 60 * time.Second

// AppModel is the Bubble Tea model for one interactive session. Once quitting
// is set no transition leaves it.
type AppModel struct {
	interval timeparse.Interval
	every    time.Duration
	clock    func() time.Time
	keys     keyMap
	log      zerolog.Logger

	mode       Mode
	hint       HintModel
	snap       progress.Snapshot
	lastUpdate time.Time
	reached    bool // deadline already logged
	quitting   bool
	width      int
	height     int
}

// NewAppModel creates an AppModel in minimal mode with the hint showing and
// an initial snapshot already measured.
func NewAppModel(cfg Config) AppModel {
	cfg = cfg.withDefaults()

	m := AppModel{
		interval: cfg.Interval,
		every:    cfg.UpdateInterval,
		clock:    cfg.Clock,
		keys:     defaultKeyMap,
		log:      cfg.Logger.With().Str("component", "tui").Logger(),
		mode:     ModeMinimal,
		hint:     NewHintModel(defaultKeyMap.ShortHelp()),
	}

	now := m.clock()
	m.hint.Show(now)
	m.refresh(now)
	return m
}

// Mode returns the current display mode.
func (m AppModel) Mode() Mode {
	return m.mode
}

// Snapshot returns the most recently measured progress.
func (m AppModel) Snapshot() progress.Snapshot {
	return m.snap
}

// Quitting reports whether the session has been asked to stop.
func (m AppModel) Quitting() bool {
	return m.quitting
}

// Init implements tea.Model. Starts the poll loop; the first frame is drawn
// from the snapshot taken in NewAppModel.
func (m AppModel) Init() tea.Cmd {
	return PollCmd(PollInterval)
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case PollMsg:
		return m.handlePoll(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.QuitMsg, tea.InterruptMsg:
		// Normally consumed by the program loop; treat as quit if delivered.
		m.quitting = true
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	bar := StyleForTier(m.snap.Tier).Render(render.Minimal(m.snap.Percent))

	switch m.mode {
	case ModeVerbose:
		layout := render.Verbose(m.snap, false)
		body = lipgloss.JoinVertical(lipgloss.Left,
			LabelStyle.Render(layout.Labels),
			bar,
			SummaryStyle.Render(layout.Summary),
		)
	default:
		// The hint row is always reserved so the bar does not jump when it expires.
		body = lipgloss.JoinVertical(lipgloss.Left, bar, "", m.hint.View())
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

// handlePoll recomputes progress when the update interval has elapsed and
// expires the hint. Polling stops once quitting.
func (m AppModel) handlePoll(msg PollMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if msg.Time.Sub(m.lastUpdate) >= m.every {
		m.refresh(msg.Time)
	}
	if m.hint.Expire(msg.Time) {
		m.log.Debug().Str("action", "hint_expired").Msg("")
	}
	return m, PollCmd(PollInterval)
}

// handleKeyMsg toggles the mode or quits. A toggle re-measures progress so the
// repaint that follows never shows a stale frame.
func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.log.Debug().Str("action", "quit").Str("key", msg.String()).Msg("")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		now := m.clock()
		m.mode = m.mode.Toggle()
		if m.mode == ModeMinimal {
			m.hint.Show(now)
		} else {
			m.hint.Hide()
		}
		m.refresh(now)
		m.log.Debug().Str("action", "toggle_mode").Stringer("mode", m.mode).Msg("")
		return m, nil
	}

	return m, nil
}

// refresh measures progress at now and records it as the latest update.
func (m *AppModel) refresh(now time.Time) {
	m.snap = progress.Measure(m.interval.Start, m.interval.End, now)
	m.lastUpdate = now
	if !m.reached && m.snap.Percent >= 100 {
		m.reached = true
		m.log.Info().Str("action", "deadline_reached").
			Time("end", m.interval.End).Msg("deadline reached")
	}
}
