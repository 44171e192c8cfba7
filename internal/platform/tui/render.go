package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/consolebird/internal/config"
	"github.com/vovakirdan/consolebird/internal/core"
)

// GlyphStyles maps game glyphs to lipgloss styles. Other runes are unstyled.
type GlyphStyles map[rune]lipgloss.Style

// NewGlyphStyles colours the configured player, wall and ground glyphs.
func NewGlyphStyles(cfg config.Config) GlyphStyles {
	return GlyphStyles{
		cfg.PlayerGlyph(): lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		cfg.WallGlyph():   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		cfg.GroundGlyph(): lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same glyph style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles GlyphStyles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := styleKey(styles, s.Get(x, y))

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				r := s.Get(x, y)
				if styleKey(styles, r) != start {
					break
				}
				run.WriteRune(r)
				x++
			}

			if style, ok := styles[start]; ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}

// styleKey returns r if it has a style, otherwise core.Empty for plain text.
func styleKey(styles GlyphStyles, r rune) rune {
	if _, ok := styles[r]; ok {
		return r
	}
	return core.Empty
}
