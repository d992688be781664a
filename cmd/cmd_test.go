package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline2html/internal"
	"timeline2html/timeline"
)

func quiet(t *testing.T) {
	t.Helper()
	internal.Stderr = io.Discard
	t.Cleanup(func() { internal.Stderr = os.Stderr })
}

func writeEvents(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,subject,content\n2020-06-01,Launch,\n2020-01-01,Kickoff,<p>first</p>\n"), 0o644))
	return path
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaultSettings() {
		v.SetDefault(key, value)
	}
	return v
}

func TestGetOutputFilename(t *testing.T) {
	tests := []struct {
		input, output, format, want string
	}{
		{"data/events.csv", "", "html", "events.html"},
		{"events.yaml", "", "svg", "events.svg"},
		{"events", "", "svg", "events.svg"},
		{"events.csv", "out/page.html", "html", "out/page.html"},
		{"events.csv", "-", "html", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, getOutputFilename(tt.input, tt.output, tt.format), "%s -> %s", tt.input, tt.output)
	}
}

func TestDrawConfig(t *testing.T) {
	cfg, err := drawConfig(newViper())
	require.NoError(t, err)
	assert.Equal(t, timeline.DefaultConfig(timeline.DefaultViewport), cfg)

	v := newViper()
	v.Set("viewport", 550)
	v.Set("connector", "converge")
	v.Set("transition", "250ms")
	v.Set("line-width", 3)
	cfg, err = drawConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.Width)
	assert.Equal(t, timeline.ConnectorConverge, cfg.Connector)
	assert.Equal(t, 250*time.Millisecond, cfg.Transition)
	assert.Equal(t, 3.0, cfg.LineWidth)

	v.Set("connector", "zigzag")
	_, err = drawConfig(v)
	assert.True(t, errors.Is(err, timeline.ErrInvalidConfig))
}

func TestWriteDefaultConfig(t *testing.T) {
	quiet(t)
	path := filepath.Join(t.TempDir(), ".timeline.yaml")

	require.NoError(t, writeDefaultConfig(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), configHeader))
	assert.Contains(t, string(data), "line-width: 2")

	err = writeDefaultConfig(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	require.NoError(t, writeDefaultConfig(path, true))

	// The written file resolves to the built-in defaults.
	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	cfg, err := drawConfig(v)
	require.NoError(t, err)
	assert.Equal(t, timeline.DefaultConfig(timeline.DefaultViewport), cfg)
}

func TestLoadTimeline(t *testing.T) {
	quiet(t)
	path := writeEvents(t)

	events, cfg, err := loadTimeline(newViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 1230.0, cfg.Width)
	require.Len(t, events, 2)
	assert.Equal(t, "Kickoff", events[0].Subject, "sorted by default")

	v := newViper()
	v.Set("sort", false)
	v.Set("markdown", true)
	events, _, err = loadTimeline(v, path)
	require.NoError(t, err)
	assert.Equal(t, "Launch", events[0].Subject, "input order kept")

	_, _, err = loadTimeline(newViper(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestRenderAndLayoutCommands(t *testing.T) {
	quiet(t)
	path := writeEvents(t)
	dir := t.TempDir()

	svgPath := filepath.Join(dir, "out.svg")
	rootCmd.SetArgs([]string{"render", path, "--format", "svg", "-o", svgPath, "--viewport", "800"})
	require.NoError(t, rootCmd.Execute())
	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(svg), `<svg class="timeline"`))
	assert.Contains(t, string(svg), `width="750"`)

	jsonPath := filepath.Join(dir, "layout.json")
	rootCmd.SetArgs([]string{"layout", path, "--format", "json", "-o", jsonPath})
	require.NoError(t, rootCmd.Execute())
	doc, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), `"subject": "Kickoff"`)

	rootCmd.SetArgs([]string{"render", path, "--format", "png", "-o", svgPath})
	assert.Error(t, rootCmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Version: dev")
}
