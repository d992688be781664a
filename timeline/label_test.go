package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelsWhenTodayTiesLastEvent(t *testing.T) {
	l, err := Compute(events(day(2020, 1, 1), day(2020, 12, 1)), testConfig(), day(2020, 12, 1), nil)
	require.NoError(t, err)

	assert.Equal(t, "Jan 01 2020", l.Start.Text)
	assert.Equal(t, "Dec 01 2020", l.End.Text)

	// 11 runes * 12 * 0.6
	assert.InDelta(t, 79.2, l.End.Size.Width, 1e-9)
	assert.InDelta(t, 14.4, l.End.Size.Height, 1e-9)

	assert.Equal(t, 0.0, l.Start.X, "start label is clamped at the origin")
	// min(1000-0-8-39.6, 1000-max(79.2, 8+39.6))
	assert.InDelta(t, 920.8, l.End.X, 1e-9)
	assert.Equal(t, 72.0, l.Start.Y)
	assert.Equal(t, 72.0, l.End.Y)
}

func TestEndLabelStaysInsideWhenTodayIsFarAhead(t *testing.T) {
	cfg := testConfig()
	l, err := Compute(events(day(2000, 1, 1), day(2000, 1, 2)), cfg, day(2026, 1, 1), nil)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, l.End.X, 0.0)
	assert.LessOrEqual(t, l.End.X, cfg.Width-l.End.Size.Width)
}

func TestEndLabelFollowsLastEventWhenTodayExtendsAxis(t *testing.T) {
	cfg := testConfig()
	l, err := Compute(events(day(2020, 1, 1), day(2020, 6, 1)), cfg, day(2020, 12, 1), nil)
	require.NoError(t, err)

	size := Size{Width: 40, Height: 10}
	x, _ := l.PlaceLabel(EndLabel, size)
	assert.InDelta(t, l.Scale.X(day(2020, 6, 1))-20, x, 1e-9, "end label centers on the last real event")
	assert.Less(t, x, cfg.Width-l.Scale.Margin-20)
}

func TestPlaceLabelWidthBound(t *testing.T) {
	cfg := testConfig()
	l, err := Compute(events(day(2020, 1, 1), day(2020, 12, 1)), cfg, day(2020, 12, 1), nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		size  Size
		wantX float64
	}{
		// overhang bound 1000-8-5=987, width bound 1000-max(10, 13)=987
		{"narrow label", Size{Width: 10, Height: 10}, 987},
		// overhang bound 1000-8-100=892, width bound 1000-200=800
		{"wide label", Size{Width: 200, Height: 10}, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := l.PlaceLabel(EndLabel, tt.size)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.Equal(t, 68.0, y)
		})
	}
}

func TestLabelsDegenerateAreCentered(t *testing.T) {
	l, err := Compute(events(day(2020, 1, 1)), testConfig(), day(2026, 1, 1), nil)
	require.NoError(t, err)

	size := Size{Width: 100, Height: 10}
	sx, _ := l.PlaceLabel(StartLabel, size)
	ex, _ := l.PlaceLabel(EndLabel, size)
	assert.Equal(t, 450.0, sx)
	assert.Equal(t, 450.0, ex)
}

func TestCellMeasurer(t *testing.T) {
	assert.Equal(t, Size{Width: 5, Height: 1}, CellMeasurer{}.Measure("héllo"))
}
