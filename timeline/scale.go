package timeline

import (
	"math"
	"time"
)

// Scale maps timestamps onto the horizontal pixel range of a drawing.
//
//	x(t) = Step*(t - Min) + Margin
//
// with t measured in milliseconds. Max is the latest event date and End is
// the later of Max and today, so the axis always reaches today without today
// ever shifting Min, Max or Step.
type Scale struct {
	Min        time.Time `json:"min"`
	Max        time.Time `json:"max"`
	End        time.Time `json:"end"`
	Margin     float64   `json:"margin"`
	Step       float64   `json:"step"` // Pixels per millisecond
	Degenerate bool      `json:"degenerate"`

	span    float64 // Width - 2*Margin
	rangeMs int64   // End - Min in milliseconds
}

// NewScale computes the scale for the given event dates, today and config.
//
// When every date collapses to one instant (including the empty list, where
// today is the only instant) the scale is degenerate: Step is zero and Margin
// is half the width, which centers every point regardless of its date.
func NewScale(dates []time.Time, today time.Time, cfg Config) Scale {
	minValue, maxValue := today, today
	if len(dates) > 0 {
		minValue, maxValue = dates[0], dates[0]
		for _, d := range dates[1:] {
			if d.Before(minValue) {
				minValue = d
			}
			if d.After(maxValue) {
				maxValue = d
			}
		}
	}

	end := maxValue
	if today.After(end) {
		end = today
	}

	s := Scale{
		Min:    minValue,
		Max:    maxValue,
		End:    end,
		Margin: cfg.Margin(),
	}

	if maxValue.Equal(minValue) {
		s.Step = 0
		s.Margin = cfg.Width / 2
		s.Degenerate = true
		return s
	}

	s.span = cfg.Width - 2*s.Margin
	s.rangeMs = millisBetween(minValue, end)
	s.Step = s.span / float64(s.rangeMs)
	return s
}

// X returns the unrounded x-coordinate of t. It is evaluated as a fraction
// of the range so that End lands exactly on Width - Margin.
func (s Scale) X(t time.Time) float64 {
	return s.offset(millisBetween(s.Min, t)) + s.Margin
}

// Pixel returns the x-coordinate of t floored to a whole pixel.
func (s Scale) Pixel(t time.Time) float64 {
	return math.Floor(s.X(t))
}

// Overhang is the pixel distance the axis extends past the last event to
// reach today.
func (s Scale) Overhang() float64 {
	return s.offset(millisBetween(s.Max, s.End))
}

// offset converts a millisecond distance into pixels.
func (s Scale) offset(ms int64) float64 {
	if s.Degenerate || s.rangeMs == 0 {
		return 0
	}
	return s.span * float64(ms) / float64(s.rangeMs)
}

// millisBetween avoids time.Duration so ranges longer than ~292 years stay exact.
func millisBetween(from, to time.Time) int64 {
	return to.UnixMilli() - from.UnixMilli()
}
