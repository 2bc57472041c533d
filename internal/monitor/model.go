package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// State is the lifecycle state of the dashboard loop.
type State int

const (
	// StateRunning samples and renders on every tick.
	StateRunning State = iota
	// StateTerminating is absorbing: no tick runs once it is entered.
	StateTerminating
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	collector *Collector
	interval  time.Duration
	state     State

	snapshot   Snapshot
	gauges     DisplayGauges
	ticks      int
	lastUpdate time.Time

	width  int
	height int
	bars   [gaugeCount]progress.Model
}

// tickMsg signals that the wait for input is over and the next sample is due.
type tickMsg time.Time

// NewModel creates a dashboard model. interval is both the sampling cadence
// and the longest the loop waits for a key before sampling again.
func NewModel(collector *Collector, interval time.Duration) Model {
	if interval <= 0 {
		interval = time.Second
	}

	m := Model{
		collector: collector,
		interval:  interval,
		state:     StateRunning,
	}
	for i, g := range gaugeDefs {
		m.bars[i] = newGaugeBar(g.Color, defaultBarWidth)
	}
	return m
}

// Init fires the first tick immediately.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := m.barWidth()
		for i := range m.bars {
			m.bars[i].Width = w
		}

	case tickMsg:
		if m.state == StateTerminating {
			return m, nil
		}
		m.sample(time.Time(msg))
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.state == StateTerminating {
		return ""
	}
	return m.renderDashboard()
}

// State returns the loop's lifecycle state.
func (m Model) State() State {
	return m.state
}

// Ticks returns how many samples have been taken.
func (m Model) Ticks() int {
	return m.ticks
}

// Gauges returns the gauges from the most recent tick.
func (m Model) Gauges() DisplayGauges {
	return m.gauges
}

// Snapshot returns the raw sample from the most recent tick.
func (m Model) Snapshot() Snapshot {
	return m.snapshot
}

// Interval returns the tick cadence.
func (m Model) Interval() time.Duration {
	return m.interval
}

func (m *Model) sample(at time.Time) {
	m.snapshot = m.collector.Sample(context.Background())
	m.gauges = Normalize(m.snapshot)
	m.ticks++
	m.lastUpdate = at
}

// tickCmd waits at most one interval. Keys that arrive meanwhile are handled
// before the tick fires.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
