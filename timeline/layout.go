package timeline

import (
	"fmt"
	"math"
	"time"
)

// Point is a position on the drawing surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is one connector line. Event indexes the render list.
type Segment struct {
	Event int     `json:"event"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
}

// Marker is the circle drawn for a real event. Event indexes the render list.
type Marker struct {
	Event  int     `json:"event"`
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Layout is the complete, surface-independent result of a draw pass.
type Layout struct {
	Config   Config    `json:"config"`
	Today    time.Time `json:"today"`
	Scale    Scale     `json:"scale"`
	Events   []Event   `json:"events"` // Render list, today last
	Segments []Segment `json:"segments"`
	Markers  []Marker  `json:"markers"`
	Start    Label     `json:"start"`
	End      Label     `json:"end"`

	loc *time.Location
}

// Compute lays out events for cfg with today injected by the caller.
// A nil measurer falls back to EstimateMeasurer with the configured font size.
//
// Every event must carry a date; a zero date fails with an
// InvalidEventDateError naming the event instead of producing a corrupted
// layout.
func Compute(events []Event, cfg Config, today time.Time, measurer TextMeasurer) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for i, e := range events {
		if e.Date.IsZero() {
			return nil, &InvalidEventDateError{Index: i, Subject: e.Subject}
		}
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	if measurer == nil {
		measurer = EstimateMeasurer{FontSize: cfg.FontSize}
	}

	// The scale is fixed before today is appended.
	scale := NewScale(dates(events), today, cfg)
	render := Normalize(events, today)

	l := &Layout{
		Config: cfg,
		Today:  today,
		Scale:  scale,
		Events: render,
		loc:    loc,
	}

	points := l.points()
	l.Segments = connect(points, l.origin(), cfg.connector())
	l.Markers = l.markers(points)
	l.Start = l.label(StartLabel, l.AxisDate(scale.Min), measurer)
	l.End = l.label(EndLabel, l.AxisDate(scale.Max), measurer)
	return l, nil
}

// Lane is the y-coordinate shared by every point of the timeline.
func (l *Layout) Lane() float64 {
	return math.Floor(l.Config.Height / 2)
}

// Location is the zone dates are formatted in.
func (l *Layout) Location() *time.Location {
	if l.loc == nil {
		return time.Local
	}
	return l.loc
}

// EventFor returns the render-list event behind marker i.
func (l *Layout) EventFor(i int) (Event, error) {
	if i < 0 || i >= len(l.Markers) {
		return Event{}, fmt.Errorf("%w: %d", ErrUnknownMarker, i)
	}
	return l.Events[l.Markers[i].Event], nil
}

// HoverRadius is the marker radius while hovered.
func (l *Layout) HoverRadius() float64 {
	return math.Floor(l.Config.Radius * HoverScale)
}

// origin is the previous point assumed before the first event.
func (l *Layout) origin() Point {
	return Point{X: math.Floor(l.Config.Width / 2), Y: l.Lane()}
}

func (l *Layout) points() []Point {
	pts := make([]Point, len(l.Events))
	for i, e := range l.Events {
		pts[i] = Point{X: l.Scale.Pixel(e.Date), Y: l.Lane()}
	}
	return pts
}

func (l *Layout) markers(points []Point) []Marker {
	out := make([]Marker, 0, len(l.Events))
	for i, e := range l.Events {
		if e.Synthetic {
			continue
		}
		out = append(out, Marker{
			Event:  i,
			ID:     MarkerID(e.Date),
			X:      points[i].X,
			Y:      points[i].Y,
			Radius: l.Config.Radius,
		})
	}
	return out
}

// MarkerID is the element id of the marker for an event date.
func MarkerID(t time.Time) string {
	return fmt.Sprintf("time-%d", t.UnixMilli())
}

// connect folds the ordered points into one segment per point.
//
// In chain mode each segment runs from its point back to the previous one,
// starting from origin. In converge mode every segment ends on the last point.
func connect(points []Point, origin Point, mode ConnectorMode) []Segment {
	segs := make([]Segment, len(points))
	if len(points) == 0 {
		return segs
	}

	last := points[len(points)-1]
	prev := origin
	for i, p := range points {
		end := prev
		if mode == ConnectorConverge {
			end = last
		}
		segs[i] = Segment{Event: i, X1: p.X, Y1: p.Y, X2: end.X, Y2: end.Y}
		prev = p
	}
	return segs
}
