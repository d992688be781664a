// Package tui draws the timeline in a terminal and drives the marker
// interaction from mouse motion and the keyboard.
package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/microcosm-cc/bluemonday"

	"timeline2html/internal"
	"timeline2html/timeline"
)

const (
	canvasTop      = 1 // Title row
	canvasLeft     = 1
	tooltipRow     = 0
	defaultColumns = 80
)

// Options configures the terminal surface.
type Options struct {
	Title   string
	Now     func() time.Time // Clock for the today marker, time.Now when nil
	Columns int              // Initial terminal width, defaultColumns when zero
}

// Model is the bubbletea model of the terminal timeline.
type Model struct {
	title  string
	events []timeline.Event
	base   timeline.Config
	now    func() time.Time

	layout *timeline.Layout
	in     *timeline.Interaction
	err    error

	columns int
	keys    keyMap
	help    help.Model
	strip   *bluemonday.Policy
}

// New lays out events for a terminal of opts.Columns columns.
func New(events []timeline.Event, cfg timeline.Config, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Columns <= 0 {
		opts.Columns = defaultColumns
	}
	if opts.Title == "" {
		opts.Title = "Timeline"
	}

	m := Model{
		title:  opts.Title,
		events: events,
		base:   cfg,
		now:    opts.Now,
		keys:   defaultKeyMap(),
		help:   help.New(),
		strip:  bluemonday.StrictPolicy(),
	}
	m.relayout(opts.Columns)
	return m
}

// CellConfig adapts a draw config to a terminal of cols columns. Coordinates
// are cells: markers are one cell wide and lines have no stroke width.
func CellConfig(base timeline.Config, cols int) timeline.Config {
	cfg := base
	cfg.Width = float64(cols - 2*canvasLeft)
	cfg.Height = 2
	cfg.Radius = 1
	cfg.LineWidth = 0
	cfg.FontSize = 1
	cfg.TooltipOffset = 2
	return cfg
}

// relayout recomputes the layout for a new width and keeps the panel on the
// previously selected marker.
func (m *Model) relayout(cols int) {
	selected := -1
	if m.in != nil {
		if i, ok := m.in.Selected(); ok {
			selected = i
		}
	}

	m.columns = cols
	m.help.Width = cols
	l, err := timeline.Compute(m.events, CellConfig(m.base, cols), m.now(), timeline.CellMeasurer{})
	if err != nil {
		internal.Debugf("terminal layout failed at %d columns: %v", cols, err)
		m.layout, m.in, m.err = nil, nil, err
		return
	}
	m.layout, m.in, m.err = l, timeline.NewInteraction(l), nil
	if selected >= 0 {
		_ = m.in.Click(selected)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.relayout(msg.Width)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if m.in == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.Select):
		if i, ok := m.focus(); ok {
			_ = m.in.Click(i)
		}
	case key.Matches(msg, m.keys.Clear):
		m.in.Leave()
	}
	return m, nil
}

// focus is the marker keyboard navigation starts from.
func (m Model) focus() (int, bool) {
	if i, ok := m.in.Hovered(); ok {
		return i, true
	}
	return m.in.Selected()
}

// step hovers the marker d positions away from the focused one.
func (m Model) step(d int) {
	n := len(m.layout.Markers)
	if n == 0 {
		return
	}
	i, ok := m.focus()
	switch {
	case !ok && d > 0:
		i = 0
	case !ok:
		i = n - 1
	default:
		i = min(max(i+d, 0), n-1)
	}
	_ = m.in.HoverEnter(i)
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	if m.in == nil {
		return
	}

	x := float64(msg.X - canvasLeft)
	y := msg.Y - canvasTop
	if y < 0 || y >= m.canvasRows() || x < 0 || x > m.layout.Config.Width {
		m.in.Leave()
		return
	}
	hit, onMarker := m.hitTest(x, y)

	switch msg.Action {
	case tea.MouseActionMotion:
		prev, hovering := m.in.Hovered()
		switch {
		case onMarker && (!hovering || prev != hit):
			_ = m.in.HoverEnter(hit)
		case !onMarker && hovering:
			_ = m.in.HoverExit(prev)
		}
		m.in.Move(x, float64(y), 1)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && onMarker {
			_ = m.in.Click(hit)
		}
	}
}

// hitTest finds the marker closest to the cell, within its current radius.
func (m Model) hitTest(x float64, y int) (int, bool) {
	if y != int(m.layout.Lane()) {
		return -1, false
	}
	best, bestDist := -1, math.Inf(1)
	for i, mk := range m.layout.Markers {
		r := math.Max(1, m.in.Marker(i).Radius)
		if d := math.Abs(mk.X - x); d <= r && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// canvasRows is the number of rows the drawing occupies.
func (m Model) canvasRows() int {
	l := m.layout
	return max(int(l.Lane()), int(l.Start.Y), int(l.End.Y)) + 1
}
