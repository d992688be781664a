package tui

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"timeline2html/timeline"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	lineStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	markerStyle     = lipgloss.NewStyle()
	hoverStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	tooltipStyle    = lipgloss.NewStyle().Reverse(true)
	labelStyle      = lipgloss.NewStyle().Faint(true)
	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	panelTitleStyle = lipgloss.NewStyle().Bold(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Glyphs for markers in their three states.
const (
	idleGlyph     = "○"
	hoverGlyph    = "●"
	selectedGlyph = "◉"
	lineGlyph     = "─"
)

var blockBreaks = strings.NewReplacer(
	"</h2>", "\n",
	"<p>", "\n",
	"</p>", "\n",
	"<br>", "\n",
	"<br/>", "\n",
	"</div>", "\n",
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	for _, line := range m.canvas() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.panelView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) header() string {
	if m.layout == nil {
		return m.title
	}
	return fmt.Sprintf("%s (%d events)", m.title, len(m.layout.Markers))
}

// canvas draws lines, markers, labels and the tooltip on a cell grid. A cell
// holds a rendered string; cells covered by a wider string are left empty.
func (m Model) canvas() []string {
	l := m.layout
	cols := int(l.Config.Width) + 1
	rows := m.canvasRows()

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	set := func(x, y int, s string) {
		if y >= 0 && y < rows && x >= 0 && x < cols {
			grid[y][x] = s
		}
	}
	text := func(x, y int, s string, style lipgloss.Style) {
		runes := []rune(s)
		if len(runes) == 0 || y < 0 || y >= rows {
			return
		}
		x = max(0, min(x, cols-len(runes)))
		if len(runes) > cols {
			runes = runes[:cols]
		}
		set(x, y, style.Render(string(runes)))
		for j := 1; j < len(runes); j++ {
			set(x+j, y, "")
		}
	}

	for _, s := range l.Segments {
		if s.Y1 != s.Y2 {
			continue
		}
		from, to := int(math.Min(s.X1, s.X2)), int(math.Max(s.X1, s.X2))
		for x := from; x <= to; x++ {
			set(x, int(s.Y1), lineStyle.Render(lineGlyph))
		}
	}

	selected, hasSelection := m.in.Selected()
	for i, mk := range l.Markers {
		glyph, style := idleGlyph, markerStyle
		switch {
		case m.in.Marker(i).Hovered:
			glyph, style = hoverGlyph, hoverStyle
		case hasSelection && selected == i:
			glyph, style = selectedGlyph, selectedStyle
		}
		set(int(mk.X), int(mk.Y), style.Render(glyph))
	}

	for _, label := range []timeline.Label{l.Start, l.End} {
		text(int(label.X), int(label.Y), label.Text, labelStyle)
	}

	if tip := m.in.Tooltip(); tip.Visible {
		text(int(tip.X), tooltipRow, m.plainText(tip.HTML), tooltipStyle)
	}

	pad := strings.Repeat(" ", canvasLeft)
	lines := make([]string, rows)
	for r := range grid {
		lines[r] = strings.TrimRight(pad+strings.Join(grid[r], ""), " ")
	}
	return lines
}

func (m Model) panelView() string {
	style := panelStyle.Width(max(m.columns-2, 10))
	body := m.plainText(m.in.Panel())
	if body == "" {
		return style.Render(labelStyle.Render("Hover or select an event to see its details."))
	}

	title, rest, _ := strings.Cut(body, "\n")
	out := panelTitleStyle.Render(title)
	if rest != "" {
		out += "\n" + rest
	}
	return style.Render(out)
}

// plainText strips an HTML fragment down to its text, one line per block.
func (m Model) plainText(fragment string) string {
	s := html.UnescapeString(m.strip.Sanitize(blockBreaks.Replace(fragment)))
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
