//nolint:funlen // Test file
package shimmer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alkime/shimmer"
	"github.com/alkime/shimmer/pkg/collections"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tests in this file exercise both color paths by switching the
// global lipgloss profile, so none of them run in parallel.
//
//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func spanTexts(spans []shimmer.Span) []string {
	return collections.Apply(spans, func(s shimmer.Span) string {
		return s.Text
	})
}

func concat(spans []shimmer.Span) string {
	return strings.Join(spanTexts(spans), "")
}

// styleSignature captures everything the shimmer may vary between spans.
func styleSignature(s shimmer.Span) string {
	return fmt.Sprintf("%v|%v|%v", s.Style.GetForeground(), s.Style.GetBold(), s.Style.GetFaint())
}

func TestReconstruction(t *testing.T) {
	texts := []string{
		"Loading...",
		"a",
		"hello world, punctuation! and   spaces",
		"héllo wörld",
		"tabs\tand\ncontrol\x07chars",
		strings.Repeat("long text that spans many band positions ", 4),
	}
	phases := []float64{-1.3, 0, 0.25, 0.5, 0.73, 0.999, 7.75}

	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff"))

	for _, text := range texts {
		for _, phase := range phases {
			spans := shimmer.SpansAtPhase(text, base, phase)
			require.NotEmpty(t, spans, "text %q phase %v", text, phase)
			assert.Equal(t, text, concat(spans), "text %q phase %v", text, phase)
		}
	}
}

func TestEmptyText(t *testing.T) {
	base := lipgloss.NewStyle()

	assert.Empty(t, shimmer.SpansAtPhase("", base, 0))
	assert.Empty(t, shimmer.SpansAtPhase("", base, 0.5))
	assert.Empty(t, shimmer.Spans("", base))
	assert.Empty(t, shimmer.RenderAtPhase("", base, 0.25))
}

func TestPhasePeriodicity(t *testing.T) {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00"))
	text := "Periodic highlight"

	for _, phase := range []float64{0, 0.25, 0.77} {
		reference := shimmer.SpansAtPhase(text, base, phase)
		assert.Equal(t, reference, shimmer.SpansAtPhase(text, base, phase+1.0), "phase %v", phase)
		assert.Equal(t, reference, shimmer.SpansAtPhase(text, base, phase+2.0), "phase %v", phase)
		assert.Equal(t, reference, shimmer.SpansAtPhase(text, base, phase-1.0), "phase %v", phase)

		rendered := shimmer.RenderAtPhase(text, base, phase)
		assert.Equal(t, rendered, shimmer.RenderAtPhase(text, base, phase+1.0))
		assert.Equal(t, rendered, shimmer.RenderAtPhase(text, base, phase+2.0))
	}
}

func TestDeterminism(t *testing.T) {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Italic(true)
	text := "Deterministic"

	for _, phase := range []float64{0, 0.42, 0.9} {
		first := shimmer.SpansAtPhase(text, base, phase)
		second := shimmer.SpansAtPhase(text, base, phase)
		assert.Equal(t, first, second, "phase %v", phase)
		assert.Equal(t,
			shimmer.RenderAtPhase(text, base, phase),
			shimmer.RenderAtPhase(text, base, phase),
		)
	}
}

func TestMinimality(t *testing.T) {
	texts := []string{"AB", "Loading...", strings.Repeat("x", 60)}
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#8844ff"))

	for _, text := range texts {
		for _, phase := range []float64{0, 0.3, 0.5, 0.8} {
			spans := shimmer.SpansAtPhase(text, base, phase)
			for i := 1; i < len(spans); i++ {
				assert.NotEqual(t,
					styleSignature(spans[i-1]), styleSignature(spans[i]),
					"adjacent spans share a style: text %q phase %v span %d", text, phase, i)
			}
		}
	}
}

func TestTrueColorScenario(t *testing.T) {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff"))

	t.Run("band off text at phase zero", func(t *testing.T) {
		spans := shimmer.SpansAtPhase("Loading...", base, 0)
		require.NotEmpty(t, spans)
		assert.Equal(t, "Loading...", concat(spans))

		// Every computed color interpolates cyan toward white: green and
		// blue stay equal and red never exceeds them.
		for _, span := range spans {
			fg, ok := span.Style.GetForeground().(lipgloss.Color)
			require.True(t, ok, "foreground should be a concrete color")

			c, err := colorful.Hex(string(fg))
			require.NoError(t, err)
			assert.InDelta(t, c.G, c.B, 0.01)
			assert.LessOrEqual(t, c.R, c.G+0.01)
		}
	})

	t.Run("band over text brightens and bolds the center", func(t *testing.T) {
		// Phase placing the band center inside the text.
		spans := shimmer.SpansAtPhase("Loading...", base, 0.5)
		require.Greater(t, len(spans), 1, "band should split the line into runs")

		bold := false
		for _, span := range spans {
			if span.Style.GetBold() {
				bold = true
			}
		}
		assert.True(t, bold, "characters under the band should be bold")
	})
}

func TestFallbackScenario(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	defer lipgloss.SetColorProfile(termenv.TrueColor)

	fallback := map[lipgloss.TerminalColor]bool{
		lipgloss.Color("8"):  true,
		lipgloss.Color("7"):  true,
		lipgloss.Color("15"): true,
	}

	t.Run("unset base uses only the discrete palette", func(t *testing.T) {
		spans := shimmer.SpansAtPhase("AB", lipgloss.NewStyle(), 0.25)
		require.NotEmpty(t, spans)
		assert.Equal(t, "AB", concat(spans))

		for _, span := range spans {
			assert.True(t, fallback[span.Style.GetForeground()],
				"unexpected fallback color %v", span.Style.GetForeground())
		}
	})

	t.Run("indexed base never yields an unset color", func(t *testing.T) {
		base := lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
		for _, phase := range []float64{0, 0.33, 0.66, 0.99} {
			for _, span := range shimmer.SpansAtPhase("quantized palette here", base, phase) {
				assert.NotEqual(t, lipgloss.NoColor{}, span.Style.GetForeground())
				assert.True(t, fallback[span.Style.GetForeground()])
			}
		}
	})

	t.Run("coarse palette merges long runs", func(t *testing.T) {
		text := strings.Repeat("m", 40)
		spans := shimmer.SpansAtPhase(text, lipgloss.NewStyle(), 0.5)
		assert.Less(t, len(spans), 10, "three-level palette should produce few spans")
		assert.Equal(t, text, concat(spans))
	})
}

func TestPhaseContinuity(t *testing.T) {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff"))
	text := "Continuity check string"

	// The worst per-step channel jump is bounded by the raised cosine's
	// largest step between neighboring band cells, scaled by the blend.
	const maxDelta = 0.35

	charColors := func(phase float64) []colorful.Color {
		var colors []colorful.Color
		for _, span := range shimmer.SpansAtPhase(text, base, phase) {
			fg := span.Style.GetForeground().(lipgloss.Color)
			c, err := colorful.Hex(string(fg))
			require.NoError(t, err)

			gr := uniseg.NewGraphemes(span.Text)
			for gr.Next() {
				colors = append(colors, c)
			}
		}
		return colors
	}

	for _, phase := range []float64{0.1, 0.37, 0.55, 0.82, 0.9995} {
		before := charColors(phase)
		after := charColors(phase + 0.001)
		require.Equal(t, len(before), len(after))

		for i := range before {
			assert.InDelta(t, before[i].R, after[i].R, maxDelta, "phase %v char %d", phase, i)
			assert.InDelta(t, before[i].G, after[i].G, maxDelta, "phase %v char %d", phase, i)
			assert.InDelta(t, before[i].B, after[i].B, maxDelta, "phase %v char %d", phase, i)
		}
	}
}

func TestGraphemeClustersStayWhole(t *testing.T) {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	text := "a👩‍💻b👨‍👩‍👧‍👦c🇩🇪d"

	count := func(s string) int {
		n := 0
		gr := uniseg.NewGraphemes(s)
		for gr.Next() {
			n++
		}
		return n
	}

	total := count(text)

	for _, phase := range []float64{0, 0.45, 0.5, 0.55, 0.75} {
		spans := shimmer.SpansAtPhase(text, base, phase)
		assert.Equal(t, text, concat(spans), "phase %v", phase)

		// A cluster split across spans would inflate the total count.
		sum := 0
		for _, span := range spans {
			sum += count(span.Text)
		}
		assert.Equal(t, total, sum, "phase %v", phase)
	}
}

func TestImplicitPhaseEntryPoints(t *testing.T) {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff"))

	spans := shimmer.Spans("Loading...", base)
	require.NotEmpty(t, spans)
	assert.Equal(t, "Loading...", concat(spans))

	assert.NotEmpty(t, shimmer.Render("Loading...", base))
}
