// Package shimmertext provides a TUI component that animates one
// shimmered line of text.
package shimmertext

import (
	"time"

	"github.com/alkime/shimmer"
	"github.com/alkime/shimmer/pkg/uictl"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TickMsg triggers a shimmer redraw.
type TickMsg struct{}

// Model renders one line of text with the travelling highlight.
// The phase source is injected as a Dial so a deterministic (test)
// clock can drive the animation instead of wall time.
type Model struct {
	phase    uictl.Dial[float64] // Animation phase source
	text     string              // Line content
	base     lipgloss.Style      // Style the shimmer modulates
	interval time.Duration       // Redraw cadence
}

// New creates a shimmer line fed by the given phase source, redrawing
// fps times per second.
func New(phase uictl.Dial[float64], text string, base lipgloss.Style, fps int) Model {
	if fps < 1 {
		fps = 30
	}

	return Model{
		phase:    phase,
		text:     text,
		base:     base,
		interval: time.Second / time.Duration(fps),
	}
}

// Init returns the initial tick command.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles tick messages for animation.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, m.tick()
	}

	return m, nil
}

// View renders the line at the phase source's current position.
func (m Model) View() string {
	if m.phase == nil {
		return shimmer.RenderAtPhase(m.text, m.base, 0)
	}

	return shimmer.RenderAtPhase(m.text, m.base, m.phase.Read())
}

// tick schedules the next redraw.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}
