// Package tui implements the shimmer demo program.
package tui

import (
	"strings"

	"github.com/alkime/shimmer/internal/tui/components/shimmertext"
	"github.com/alkime/shimmer/internal/tui/style"
	"github.com/alkime/shimmer/pkg/uictl"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config holds the demo's settings.
type Config struct {
	Text string
	FPS  int
}

type model struct {
	spinner spinner.Model
	colored shimmertext.Model // cyan base
	plain   shimmertext.Model // unset base; gray sweep, or the quantized palette off true color
}

// New creates the demo model. The phase dial drives both shimmer lines
// so they stay in lockstep.
func New(cfg Config, phase uictl.Dial[float64]) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = style.Accent

	return model{
		spinner: sp,
		colored: shimmertext.New(phase, cfg.Text, style.Accent, cfg.FPS),
		plain:   shimmertext.New(phase, cfg.Text, lipgloss.NewStyle(), cfg.FPS),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		// One tick loop redraws the whole frame; the plain line rides
		// along on the colored line's ticks.
		m.colored.Init(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	case shimmertext.TickMsg:
		m.colored, cmd = m.colored.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(m.spinner.View())
	sb.WriteString(" ")
	sb.WriteString(style.Title.Render("shimmer demo"))
	sb.WriteString("\n\n")

	sb.WriteString(style.Label.Render("cyan     "))
	sb.WriteString(m.colored.View())
	sb.WriteString("\n")

	sb.WriteString(style.Label.Render("default  "))
	sb.WriteString(m.plain.View())
	sb.WriteString("\n\n")

	sb.WriteString(style.Help.Render("q: quit"))

	return sb.String()
}
