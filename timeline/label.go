package timeline

import (
	"math"
	"unicode/utf8"
)

// Size is the bounding box of a piece of text.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TextMeasurer reports the rendered size of a label.
type TextMeasurer interface {
	Measure(text string) Size
}

// EstimateMeasurer approximates text bounds from the font size alone.
// Average character width is 0.6 * font size and line height 1.2 * font size.
type EstimateMeasurer struct {
	FontSize float64
}

// Measure implements TextMeasurer.
func (m EstimateMeasurer) Measure(text string) Size {
	fs := m.FontSize
	if fs <= 0 {
		fs = DefaultFontSize
	}
	return Size{
		Width:  float64(utf8.RuneCountInString(text)) * fs * 0.6,
		Height: fs * 1.2,
	}
}

// CellMeasurer measures text in terminal cells: one cell per rune, one row high.
type CellMeasurer struct{}

// Measure implements TextMeasurer.
func (CellMeasurer) Measure(text string) Size {
	return Size{Width: float64(utf8.RuneCountInString(text)), Height: 1}
}

// LabelKind tells the two axis labels apart.
type LabelKind int

const (
	StartLabel LabelKind = iota
	EndLabel
)

func (k LabelKind) String() string {
	if k == EndLabel {
		return "end"
	}
	return "start"
}

// Label is a placed axis label.
type Label struct {
	Kind LabelKind `json:"-"`
	Text string    `json:"text"`
	Size Size      `json:"size"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
}

// PlaceLabel positions a label of the given size. Surfaces with real text
// metrics call it again with their own measurement.
//
// The start label is centered on the left margin and never starts left of
// the drawing origin. The end label is centered on the last event and bounded
// by two right-edge constraints, the tighter of which wins: the axis overhang
// toward today, and the label's own width. It is finally kept at or right of
// the origin.
func (l *Layout) PlaceLabel(kind LabelKind, size Size) (x, y float64) {
	s, cfg := l.Scale, l.Config
	y = math.Floor(cfg.Height/2 + s.Margin + size.Height)

	if kind == StartLabel {
		return math.Max(0, s.Margin-size.Width/2), y
	}

	overhangBound := cfg.Width - s.Overhang() - s.Margin - size.Width/2
	widthBound := cfg.Width - math.Max(size.Width, s.Margin+size.Width/2)
	return math.Max(0, math.Min(overhangBound, widthBound)), y
}

func (l *Layout) label(kind LabelKind, text string, m TextMeasurer) Label {
	size := m.Measure(text)
	x, y := l.PlaceLabel(kind, size)
	return Label{Kind: kind, Text: text, Size: size, X: x, Y: y}
}
