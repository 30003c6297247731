package shimmer

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// highlightScale caps the blend toward white so the base hue stays
// visible even at the band center.
const highlightScale = 0.9

var (
	highlightWhite = colorful.Color{R: 1, G: 1, B: 1}

	// defaultGray stands in for an unset foreground, approximating an
	// unstyled terminal's default text.
	defaultGray = colorful.Color{R: 128.0 / 255, G: 128.0 / 255, B: 128.0 / 255}
)

// styleKey identifies a computed style for span merging. Two graphemes
// with equal keys render identically and belong in the same span.
type styleKey struct {
	fg    string
	bold  bool
	faint bool
}

// trueColor reports whether the active lipgloss profile can render
// 24-bit foregrounds. termenv folds NO_COLOR, CLICOLOR and COLORTERM
// into the profile, so no separate environment sniffing is needed.
func trueColor() bool {
	return lipgloss.ColorProfile() == termenv.TrueColor
}

// compose derives the display style for one grapheme from the base
// style and the highlight intensity, along with its merge key. The base
// style's non-color attributes carry through unchanged.
func compose(base lipgloss.Style, intensity float64, truecolor bool) (lipgloss.Style, styleKey) {
	if !truecolor {
		return composeQuantized(base, intensity)
	}

	blended := baseRGB(base).BlendRgb(highlightWhite, intensity*highlightScale)
	hex := blended.Clamped().Hex()

	style := base.Foreground(lipgloss.Color(hex))
	if intensity > 0 {
		style = style.Bold(true)
	}

	return style, styleKey{fg: hex, bold: intensity > 0}
}

// composeQuantized maps the intensity onto a three-step palette for
// terminals without 24-bit color: dim gray at the band edge, white and
// bold at its center. Always yields a concrete color.
func composeQuantized(base lipgloss.Style, intensity float64) (lipgloss.Style, styleKey) {
	switch {
	case intensity < 0.2:
		return base.Foreground(lipgloss.Color("8")).Faint(true), styleKey{fg: "8", faint: true}
	case intensity < 0.6:
		return base.Foreground(lipgloss.Color("7")), styleKey{fg: "7"}
	default:
		return base.Foreground(lipgloss.Color("15")).Bold(true), styleKey{fg: "15", bold: true}
	}
}

// baseRGB resolves the base style's foreground to an RGB color.
func baseRGB(base lipgloss.Style) colorful.Color {
	return resolveRGB(base.GetForeground())
}

// resolveRGB matches over lipgloss's color variants. Every variant
// resolves to something renderable; NoColor falls back to defaultGray.
func resolveRGB(tc lipgloss.TerminalColor) colorful.Color {
	switch c := tc.(type) {
	case lipgloss.Color:
		return stringRGB(string(c))
	case lipgloss.ANSIColor:
		return termenv.ConvertToRGB(termenv.ANSI256Color(c))
	case lipgloss.AdaptiveColor:
		if lipgloss.HasDarkBackground() {
			return stringRGB(c.Dark)
		}

		return stringRGB(c.Light)
	case lipgloss.CompleteColor:
		return stringRGB(c.TrueColor)
	case lipgloss.CompleteAdaptiveColor:
		if lipgloss.HasDarkBackground() {
			return stringRGB(c.Dark.TrueColor)
		}

		return stringRGB(c.Light.TrueColor)
	default:
		// lipgloss.NoColor and anything lipgloss adds later.
		return defaultGray
	}
}

// stringRGB parses lipgloss's stringly colors: "#rrggbb" hex or an
// ANSI-256 index like "205". Unparseable input gets defaultGray rather
// than an error; the compositor must always produce a color.
func stringRGB(s string) colorful.Color {
	if col, err := colorful.Hex(s); err == nil {
		return col
	}

	if idx, err := strconv.Atoi(s); err == nil && idx >= 0 && idx <= 255 {
		return termenv.ConvertToRGB(termenv.ANSI256Color(idx))
	}

	return defaultGray
}
