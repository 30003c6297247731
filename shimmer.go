// Package shimmer renders a travelling highlight across a line of
// styled terminal text. Given a string and a lipgloss base style it
// returns spans whose foregrounds blend from the base color toward
// white under a moving raised-cosine band, so repeated renders look
// like a shimmer sweeping over the text.
//
// The package holds no clock of its own: SpansAtPhase is driven by an
// external phase in [0, 1), while Spans derives one from time since
// process start for callers that just want a redraw loop to animate.
// On terminals without true color the blend degrades to a small fixed
// palette instead of failing.
package shimmer

import (
	"strings"
	"time"

	"github.com/alkime/shimmer/pkg/collections"
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// Span is a run of consecutive graphemes sharing one computed style.
type Span struct {
	Text  string
	Style lipgloss.Style
}

// Spans renders text with the shimmer at the current clock-derived
// phase. Calling it from a redraw loop animates automatically; use
// SpansAtPhase for deterministic or concurrent rendering.
func Spans(text string, base lipgloss.Style) []Span {
	return SpansAtPhase(text, base, Phase(time.Since(processStart())))
}

// SpansAtPhase renders text with the highlight band at the given phase.
// Any float is accepted; the phase is cyclic with period 1.0 and wraps.
// Consecutive graphemes with identical computed styles merge into one
// span, and concatenating span texts reproduces text exactly. Empty
// text yields no spans.
func SpansAtPhase(text string, base lipgloss.Style, phase float64) []Span {
	clusters := graphemes(text)
	if len(clusters) == 0 {
		return nil
	}

	period := len(clusters) + 2*sweepPadding
	pos := int(normalizePhase(phase) * float64(period))
	truecolor := trueColor()

	var (
		spans []Span
		buf   strings.Builder
		key   styleKey
		style lipgloss.Style
	)

	for i, cluster := range clusters {
		s, k := compose(base, bandIntensity(i, pos), truecolor)
		if i == 0 {
			key, style = k, s
		} else if k != key {
			spans = append(spans, Span{Text: buf.String(), Style: style})
			buf.Reset()
			key, style = k, s
		}

		buf.WriteString(cluster)
	}

	return append(spans, Span{Text: buf.String(), Style: style})
}

// Render returns the shimmered text as a single ANSI string at the
// current clock-derived phase.
func Render(text string, base lipgloss.Style) string {
	return RenderAtPhase(text, base, Phase(time.Since(processStart())))
}

// RenderAtPhase returns the shimmered text as a single ANSI string at
// the given phase, ready to print or embed in a TUI view.
func RenderAtPhase(text string, base lipgloss.Style, phase float64) string {
	rendered := collections.Apply(SpansAtPhase(text, base, phase), func(s Span) string {
		return s.Style.Render(s.Text)
	})

	return strings.Join(rendered, "")
}

// graphemes splits text into user-perceived characters so multi-rune
// clusters never straddle a span boundary.
func graphemes(text string) []string {
	if text == "" {
		return nil
	}

	var clusters []string

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, string(gr.Runes()))
	}

	return clusters
}
