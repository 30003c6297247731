package main

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alkime/shimmer"
	"github.com/alkime/shimmer/internal/config"
	"github.com/alkime/shimmer/internal/logger"
	"github.com/alkime/shimmer/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CLI defines the shimmer command structure.
type CLI struct {
	// Default TUI command (runs when no subcommand given)
	Demo DemoCmd `cmd:"" default:"withargs" help:"Run the animated shimmer demo"`

	// Subcommands
	Frame FrameCmd `cmd:"" help:"Print a single shimmered frame at a fixed phase"`
}

// DemoCmd is the default command that runs the TUI.
type DemoCmd struct {
	Text string `arg:"" optional:"" default:"Loading..." help:"Text to animate"`
	FPS  int    `flag:"" optional:"" help:"Redraw rate (overrides SHIMMER_FPS)"`
}

// Run executes the demo command.
func (c *DemoCmd) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Setup(cfg)

	fps := cfg.FPS
	if c.FPS > 0 {
		fps = c.FPS
	}

	dial := clockDial{
		start: time.Now(),
		sweep: time.Duration(cfg.SweepSeconds * float64(time.Second)),
	}

	slog.Debug("starting demo", "fps", fps, "sweep", dial.sweep)

	p := tea.NewProgram(tui.New(tui.Config{Text: c.Text, FPS: fps}, dial))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// FrameCmd prints one rendered frame to stdout. Useful for scripting
// and for eyeballing the span output at a known phase.
type FrameCmd struct {
	Text  string  `arg:"" help:"Text to render"`
	Phase float64 `flag:"" default:"0.5" help:"Animation phase; any value, wraps into [0,1)"`
	Color string  `flag:"" optional:"" help:"Base foreground (hex like '#00ffff' or ANSI index like '205')"`
}

// Run executes the frame command.
func (c *FrameCmd) Run() error {
	base := lipgloss.NewStyle()
	if c.Color != "" {
		base = base.Foreground(lipgloss.Color(c.Color))
	}

	fmt.Println(shimmer.RenderAtPhase(c.Text, base, c.Phase))

	return nil
}

// clockDial derives the animation phase from wall-clock time, one full
// sweep per configured duration.
type clockDial struct {
	start time.Time
	sweep time.Duration
}

func (c clockDial) Read() float64 {
	elapsed := time.Since(c.start)
	if c.sweep <= 0 {
		return shimmer.Phase(elapsed)
	}

	return math.Mod(elapsed.Seconds()/c.sweep.Seconds(), 1)
}

func main() {
	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
