package timeline

import (
	"time"
)

// MarkerState is the ephemeral hover state of one marker.
type MarkerState struct {
	Hovered    bool
	Radius     float64
	Fill       string
	Transition time.Duration // Duration of the last radius change, zero for none
}

// TooltipState is the single floating tooltip shared by all markers.
type TooltipState struct {
	Visible bool
	Opacity float64
	X       float64
	Y       float64
	HTML    string
}

// Interaction tracks hover/click state for a layout.
//
// Transitions are synchronous reactions to discrete pointer events. Only one
// marker can be hovered at a time; the tooltip and panel are last-writer-wins.
// An Interaction is not safe for concurrent use.
type Interaction struct {
	layout   *Layout
	markers  []MarkerState
	tooltip  TooltipState
	panel    string
	selected int
	hovered  int
}

// NewInteraction returns the idle state for l.
func NewInteraction(l *Layout) *Interaction {
	in := &Interaction{
		layout:   l,
		markers:  make([]MarkerState, len(l.Markers)),
		selected: -1,
		hovered:  -1,
	}
	for i := range in.markers {
		in.markers[i] = in.idle()
	}
	return in
}

func (in *Interaction) idle() MarkerState {
	return MarkerState{Radius: in.layout.Config.Radius, Fill: in.layout.Config.Background}
}

// HoverEnter grows marker i, fills it with the foreground color, fills the
// panel and shows the tooltip anchored on the marker.
func (in *Interaction) HoverEnter(i int) error {
	e, err := in.layout.EventFor(i)
	if err != nil {
		return err
	}
	if in.hovered >= 0 && in.hovered != i {
		in.release(in.hovered)
	}

	cfg := in.layout.Config
	in.markers[i] = MarkerState{
		Hovered:    true,
		Radius:     in.layout.HoverRadius(),
		Fill:       cfg.Color,
		Transition: cfg.Transition,
	}
	in.hovered = i
	in.show(i, e)

	m := in.layout.Markers[i]
	in.tooltip = TooltipState{
		Visible: true,
		Opacity: TooltipOpacity,
		X:       m.X,
		Y:       m.Y,
		HTML:    in.layout.TooltipHTML(e),
	}
	return nil
}

// HoverExit restores marker i to its base radius and fill and fades the
// tooltip out.
func (in *Interaction) HoverExit(i int) error {
	if _, err := in.layout.EventFor(i); err != nil {
		return err
	}
	in.release(i)
	in.tooltip.Visible = false
	in.tooltip.Opacity = 0
	return nil
}

// Move makes a visible tooltip track the cursor, offset to the right and
// lifted above the cursor by its own height plus the axis margin.
func (in *Interaction) Move(x, y, tooltipHeight float64) {
	if !in.tooltip.Visible {
		return
	}
	in.tooltip.X = x + in.layout.Config.TooltipOffset
	in.tooltip.Y = y - tooltipHeight - in.layout.Scale.Margin
}

// Leave handles the pointer leaving the drawing surface: the tooltip is
// hidden and moved back to the origin, and any hovered marker is reset.
func (in *Interaction) Leave() {
	if in.hovered >= 0 {
		in.release(in.hovered)
	}
	in.tooltip = TooltipState{}
}

// Click fills the panel for marker i without touching hover state.
func (in *Interaction) Click(i int) error {
	e, err := in.layout.EventFor(i)
	if err != nil {
		return err
	}
	in.show(i, e)
	return nil
}

func (in *Interaction) show(i int, e Event) {
	in.selected = i
	in.panel = in.layout.PanelHTML(e)
}

func (in *Interaction) release(i int) {
	st := in.idle()
	st.Transition = in.layout.Config.Transition
	in.markers[i] = st
	if in.hovered == i {
		in.hovered = -1
	}
}

// Marker returns the state of marker i. Unknown indexes report the idle state.
func (in *Interaction) Marker(i int) MarkerState {
	if i < 0 || i >= len(in.markers) {
		return in.idle()
	}
	return in.markers[i]
}

// Tooltip returns the tooltip state.
func (in *Interaction) Tooltip() TooltipState {
	return in.tooltip
}

// Panel returns the current side panel HTML.
func (in *Interaction) Panel() string {
	return in.panel
}

// Hovered returns the hovered marker, if any.
func (in *Interaction) Hovered() (int, bool) {
	return in.hovered, in.hovered >= 0
}

// Selected returns the marker whose details the panel shows, if any.
func (in *Interaction) Selected() (int, bool) {
	return in.selected, in.selected >= 0
}

// Layout returns the layout the interaction runs against.
func (in *Interaction) Layout() *Layout {
	return in.layout
}
