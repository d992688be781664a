package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInteraction(t *testing.T) *Interaction {
	t.Helper()
	evs := []Event{
		{Date: time.Date(2020, 1, 1, 9, 30, 0, 0, time.UTC), Subject: "Kickoff", Content: "<p>first</p>"},
		{Date: time.Date(2020, 6, 1, 14, 0, 0, 0, time.UTC), Subject: "Launch & party"},
	}
	l, err := Compute(evs, testConfig(), day(2020, 12, 1), nil)
	require.NoError(t, err)
	return NewInteraction(l)
}

func TestHoverEnterExitRestoresBase(t *testing.T) {
	in := newTestInteraction(t)
	cfg := in.Layout().Config

	require.NoError(t, in.HoverEnter(0))
	st := in.Marker(0)
	assert.True(t, st.Hovered)
	assert.Equal(t, 6.0, st.Radius)
	assert.Equal(t, cfg.Color, st.Fill)
	assert.Equal(t, DefaultTransition, st.Transition)

	tip := in.Tooltip()
	assert.True(t, tip.Visible)
	assert.Equal(t, TooltipOpacity, tip.Opacity)
	assert.Equal(t, in.Layout().Markers[0].X, tip.X)
	assert.Equal(t, "<div><small>Jan 01, 2020 09:30:00</small></div>", tip.HTML)

	require.NoError(t, in.HoverExit(0))
	st = in.Marker(0)
	assert.False(t, st.Hovered)
	assert.Equal(t, cfg.Radius, st.Radius)
	assert.Equal(t, cfg.Background, st.Fill)
	assert.Equal(t, 0.0, in.Tooltip().Opacity)
	assert.False(t, in.Tooltip().Visible)

	_, hovered := in.Hovered()
	assert.False(t, hovered)
}

func TestHoverFillsPanel(t *testing.T) {
	in := newTestInteraction(t)

	require.NoError(t, in.HoverEnter(0))
	assert.Equal(t, "<h2>Kickoff</h2>Wednesday Jan 01, 2020 at 09:30:00 AM<p>first</p>", in.Panel())

	require.NoError(t, in.HoverExit(0))
	assert.NotEmpty(t, in.Panel(), "panel keeps the last content after hover exit")
}

func TestClickWithoutHover(t *testing.T) {
	in := newTestInteraction(t)

	require.NoError(t, in.Click(1))
	assert.Equal(t, "<h2>Launch &amp; party</h2>Monday Jun 01, 2020 at 14:00:00 PM", in.Panel())

	sel, ok := in.Selected()
	assert.True(t, ok)
	assert.Equal(t, 1, sel)

	_, hovered := in.Hovered()
	assert.False(t, hovered, "click does not change hover state")
	assert.False(t, in.Marker(1).Hovered)
	assert.False(t, in.Tooltip().Visible)
}

func TestClickKeepsHoverState(t *testing.T) {
	in := newTestInteraction(t)

	require.NoError(t, in.HoverEnter(0))
	require.NoError(t, in.Click(1))

	idx, hovered := in.Hovered()
	assert.True(t, hovered)
	assert.Equal(t, 0, idx)
	assert.Contains(t, in.Panel(), "Launch")
}

func TestHoverSecondMarkerReleasesFirst(t *testing.T) {
	in := newTestInteraction(t)

	require.NoError(t, in.HoverEnter(0))
	require.NoError(t, in.HoverEnter(1))

	assert.False(t, in.Marker(0).Hovered)
	assert.Equal(t, in.Layout().Config.Radius, in.Marker(0).Radius)
	assert.True(t, in.Marker(1).Hovered)
}

func TestMoveTracksCursorOnlyWhenVisible(t *testing.T) {
	in := newTestInteraction(t)

	in.Move(100, 200, 30)
	assert.Equal(t, TooltipState{}, in.Tooltip())

	require.NoError(t, in.HoverEnter(0))
	in.Move(100, 200, 30)
	tip := in.Tooltip()
	assert.Equal(t, 120.0, tip.X)
	assert.Equal(t, 162.0, tip.Y) // 200 - 30 - margin 8
}

func TestLeaveResetsTooltip(t *testing.T) {
	in := newTestInteraction(t)

	require.NoError(t, in.HoverEnter(1))
	in.Move(300, 80, 20)
	in.Leave()

	tip := in.Tooltip()
	assert.Equal(t, 0.0, tip.Opacity)
	assert.Equal(t, 0.0, tip.X)
	assert.Equal(t, 0.0, tip.Y)
	assert.False(t, tip.Visible)
	assert.False(t, in.Marker(1).Hovered)
}

func TestUnknownMarker(t *testing.T) {
	in := newTestInteraction(t)

	// Index 2 would be the synthetic today entry; it has no marker.
	assert.ErrorIs(t, in.HoverEnter(2), ErrUnknownMarker)
	assert.ErrorIs(t, in.HoverExit(-1), ErrUnknownMarker)
	assert.ErrorIs(t, in.Click(5), ErrUnknownMarker)
	assert.Equal(t, in.Layout().Config.Radius, in.Marker(9).Radius)
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2020, 12, 1, 18, 5, 9, 0, time.UTC)
	assert.Equal(t, "Dec 01 2020", FormatDate(DefaultAxisFormat, ts, time.UTC))
	assert.Equal(t, "Dec 01, 2020 18:05:09", FormatDate(DefaultLabelFormat, ts, time.UTC))

	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "Dec 01, 2020 19:05:09", FormatDate(DefaultLabelFormat, ts, berlin))
}
