package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// ink is how one palette color is drawn: an ANSI 256 code and weight.
type ink struct {
	code string
	bold bool
}

// inks maps the core palette to terminal colors. Tile colors warm up
// from white through orange and red to magenta and green as values grow.
var inks = map[core.Color]ink{
	core.ColorGray:          {"245", false},
	core.ColorWhite:         {"7", false},
	core.ColorBrightWhite:   {"15", true},
	core.ColorYellow:        {"3", false},
	core.ColorBrightYellow:  {"11", true},
	core.ColorOrange:        {"208", false},
	core.ColorRed:           {"1", false},
	core.ColorBrightRed:     {"9", true},
	core.ColorMagenta:       {"5", false},
	core.ColorBrightMagenta: {"13", true},
	core.ColorCyan:          {"6", true},
	core.ColorGreen:         {"2", false},
	core.ColorBrightGreen:   {"10", true},
}

var styles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	out := make(map[core.Color]lipgloss.Style, len(inks)+1)
	out[core.ColorDefault] = lipgloss.NewStyle()
	for c, k := range inks {
		out[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(k.code)).Bold(k.bold)
	}
	return out
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := styles[c]; ok {
		return st
	}
	return styles[core.ColorDefault]
}

// span is a run of adjacent cells sharing one color.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits row y into same-color runs.
func rowSpans(s *core.Screen, y int) []span {
	var (
		spans []span
		run   strings.Builder
		cur   core.Color
	)
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if x > 0 && cell.Color != cur {
			spans = append(spans, span{cur, run.String()})
			run.Reset()
		}
		cur = cell.Color
		run.WriteRune(cell.Rune)
	}
	if run.Len() > 0 {
		spans = append(spans, span{cur, run.String()})
	}
	return spans
}

// RenderScreen converts a Screen buffer to a styled string, one escape
// sequence per color run.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		var sb strings.Builder
		for _, sp := range rowSpans(s, y) {
			sb.WriteString(styleFor(sp.color).Render(sp.text))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
