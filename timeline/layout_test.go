package timeline

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func testConfig() Config {
	cfg := DefaultConfig(1050)
	cfg.Timezone = "UTC"
	return cfg
}

func events(dates ...time.Time) []Event {
	out := make([]Event, len(dates))
	for i, d := range dates {
		out[i] = Event{Date: d, Subject: d.Format("2006-01-02")}
	}
	return out
}

func TestComputeRoundTrip(t *testing.T) {
	cfg := testConfig()
	today := day(2020, 12, 1)
	evs := events(day(2020, 1, 1), day(2020, 6, 1), day(2020, 12, 1))

	l, err := Compute(evs, cfg, today, nil)
	require.NoError(t, err)

	assert.True(t, l.Scale.Max.Equal(day(2020, 12, 1)))
	assert.True(t, l.Scale.End.Equal(l.Scale.Max), "today ties with the last event and must not extend the axis")
	assert.False(t, l.Scale.Degenerate)
	assert.Equal(t, 8.0, l.Scale.Margin)

	require.Len(t, l.Events, 4)
	assert.True(t, l.Events[3].Synthetic)
	assert.Equal(t, TodaySubject, l.Events[3].Subject)

	require.Len(t, l.Segments, 4, "today keeps its connector line")
	assert.Equal(t, 3, l.Segments[3].Event)

	require.Len(t, l.Markers, 3, "today never gets a marker")
	for _, m := range l.Markers {
		assert.False(t, l.Events[m.Event].Synthetic)
	}

	assert.Equal(t, 8.0, l.Markers[0].X)
	assert.Equal(t, 454.0, l.Markers[1].X)
	assert.Equal(t, 992.0, l.Markers[2].X)
	assert.Equal(t, 50.0, l.Markers[0].Y)
	assert.Equal(t, "time-1577836800000", l.Markers[0].ID)
}

func TestComputeChainSegments(t *testing.T) {
	cfg := testConfig()
	today := day(2020, 12, 1)
	l, err := Compute(events(day(2020, 1, 1), day(2020, 6, 1), day(2020, 12, 1)), cfg, today, nil)
	require.NoError(t, err)

	want := []Segment{
		{Event: 0, X1: 8, Y1: 50, X2: 500, Y2: 50},
		{Event: 1, X1: 454, Y1: 50, X2: 8, Y2: 50},
		{Event: 2, X1: 992, Y1: 50, X2: 454, Y2: 50},
		{Event: 3, X1: 992, Y1: 50, X2: 992, Y2: 50},
	}
	assert.Equal(t, want, l.Segments)
}

func TestComputeConvergeSegments(t *testing.T) {
	cfg := testConfig()
	cfg.Connector = ConnectorConverge
	today := day(2021, 1, 1)
	l, err := Compute(events(day(2020, 1, 1), day(2020, 6, 1)), cfg, today, nil)
	require.NoError(t, err)

	todayX := l.Scale.Pixel(today)
	assert.Equal(t, 992.0, todayX)
	for _, s := range l.Segments {
		assert.Equal(t, todayX, s.X2)
		assert.Equal(t, 50.0, s.Y2)
	}
}

func TestComputeDegenerate(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name   string
		events []Event
		today  time.Time
	}{
		{"single event before today", events(day(2020, 3, 1)), day(2026, 1, 1)},
		{"single event after today", events(day(2030, 3, 1)), day(2026, 1, 1)},
		{"repeated timestamp", events(day(2020, 3, 1), day(2020, 3, 1), day(2020, 3, 1)), day(2026, 1, 1)},
		{"no events", nil, day(2026, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Compute(tt.events, cfg, tt.today, nil)
			require.NoError(t, err)

			assert.True(t, l.Scale.Degenerate)
			assert.Equal(t, 0.0, l.Scale.Step)
			assert.Equal(t, 500.0, l.Scale.Margin)
			require.Len(t, l.Markers, len(tt.events))
			for _, m := range l.Markers {
				assert.Equal(t, 500.0, m.X)
			}
			for _, s := range l.Segments {
				assert.Equal(t, 500.0, s.X1)
				assert.Equal(t, 500.0, s.X2)
			}
		})
	}
}

func TestComputeEmptyUsesToday(t *testing.T) {
	today := day(2026, 10, 18)
	l, err := Compute(nil, testConfig(), today, nil)
	require.NoError(t, err)

	assert.True(t, l.Scale.Min.Equal(today))
	assert.True(t, l.Scale.Max.Equal(today))
	assert.Empty(t, l.Markers)
	require.Len(t, l.Segments, 1)
	assert.Equal(t, "Oct 18 2026", l.Start.Text)
	assert.Equal(t, "Oct 18 2026", l.End.Text)
}

func TestComputePositionsWithinMargins(t *testing.T) {
	cfg := testConfig()
	rng := rand.New(rand.NewSource(42))
	base := day(2015, 1, 1)
	today := day(2026, 10, 18)

	for run := 0; run < 50; run++ {
		n := 2 + rng.Intn(20)
		evs := make([]Event, n)
		for i := range evs {
			evs[i] = Event{Date: base.Add(time.Duration(rng.Int63n(int64(15 * 365 * 24 * time.Hour))))}
		}
		evs[0].Date = base // at least two distinct timestamps
		evs[1].Date = base.Add(time.Hour)

		l, err := Compute(evs, cfg, today, nil)
		require.NoError(t, err)

		for _, m := range l.Markers {
			e := l.Events[m.Event]
			assert.False(t, e.Date.Before(l.Scale.Min))
			assert.False(t, e.Date.After(l.Scale.End))
			assert.GreaterOrEqual(t, m.X, l.Scale.Margin-1)
			assert.LessOrEqual(t, m.X, cfg.Width-l.Scale.Margin)
		}
	}
}

func TestComputeKeepsInputOrder(t *testing.T) {
	evs := events(day(2020, 6, 1), day(2020, 1, 1), day(2020, 3, 1))
	l, err := Compute(evs, testConfig(), day(2021, 1, 1), nil)
	require.NoError(t, err)

	for i, e := range evs {
		assert.Equal(t, e.Subject, l.Events[i].Subject)
	}
	assert.Equal(t, 8.0, l.Markers[1].X)
}

func TestComputeInvalidEventDate(t *testing.T) {
	evs := events(day(2020, 1, 1))
	evs = append(evs, Event{Subject: "broken"})

	_, err := Compute(evs, testConfig(), day(2021, 1, 1), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEventDate))

	var dateErr *InvalidEventDateError
	require.True(t, errors.As(err, &dateErr))
	assert.Equal(t, 1, dateErr.Index)
	assert.Equal(t, "broken", dateErr.Subject)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"negative radius", func(c *Config) { c.Radius = -1 }},
		{"negative line width", func(c *Config) { c.LineWidth = -1 }},
		{"width inside margins", func(c *Config) { c.Width = 10 }},
		{"unknown connector", func(c *Config) { c.Connector = "zigzag" }},
		{"unknown timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	assert.NoError(t, testConfig().Validate())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(1280)
	assert.Equal(t, 1230.0, cfg.Width)
	assert.Equal(t, 100.0, cfg.Height)
	assert.Equal(t, 4.0, cfg.Radius)
	assert.Equal(t, 2.0, cfg.LineWidth)
	assert.Equal(t, "black", cfg.Color)
	assert.Equal(t, "white", cfg.Background)
	assert.Equal(t, 8.0, cfg.Margin())
}
