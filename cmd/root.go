package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timeline2html/internal"
	"timeline2html/internal/source"
	"timeline2html/timeline"
)

// All linker flags will be set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	configName   = ".timeline"
	envPrefix    = "TIMELINE"
	defaultTitle = "Timeline"
	defaultAddr  = ":8080"
)

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "timeline2html",
	Short: "Draw event files as interactive, time-scaled timelines.",
	Long: `timeline2html lays out dated events on a horizontal time axis and draws them
as SVG, a standalone interactive HTML page, a terminal view, or an HTTP service.

Events are read from CSV, YAML, JSON or XLSX files with a date, a subject and
optional HTML (or markdown) content.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PersistentPreRunE:  sharedSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// defaultSettings holds the default of every configuration key. It seeds
// Viper and is what `config init` writes out.
func defaultSettings() map[string]any {
	d := timeline.DefaultConfig(timeline.DefaultViewport)
	return map[string]any{
		"viewport":          float64(timeline.DefaultViewport),
		"height":            d.Height,
		"radius":            d.Radius,
		"line-width":        d.LineWidth,
		"color":             d.Color,
		"background":        d.Background,
		"label-date-format": d.LabelDateFormat,
		"axis-date-format":  d.AxisDateFormat,
		"panel-date-format": d.PanelDateFormat,
		"font-size":         d.FontSize,
		"connector":         string(d.Connector),
		"tooltip-offset":    d.TooltipOffset,
		"transition":        d.Transition.String(),
		"timezone":          d.Timezone,
		"date-column":       source.DefaultDateColumn,
		"subject-column":    source.DefaultSubjectColumn,
		"content-column":    source.DefaultContentColumn,
		"sheet":             "",
		"sort":              true,
		"markdown":          false,
		"sanitize":          false,
		"title":             defaultTitle,
		"target":            "timeline",
		"addr":              defaultAddr,
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	for key, value := range defaultSettings() {
		viper.SetDefault(key, value)
	}
}

// sharedSetup reads the config file and applies the debug flag.
func sharedSetup(_ *cobra.Command, _ []string) error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	} else {
		internal.Debugf("Using config file %s", viper.ConfigFileUsed())
	}

	internal.SetDebug(viper.GetBool("debug"))
	return nil
}

// drawConfig resolves the drawing configuration. The width follows the
// viewport unless a config file pins it.
func drawConfig(v *viper.Viper) (timeline.Config, error) {
	cfg := timeline.DefaultConfig(v.GetFloat64("viewport"))
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	internal.Debugf("Draw config: width %.0f, height %.0f, radius %.1f, connector %s", cfg.Width, cfg.Height, cfg.Radius, cfg.Connector)
	return cfg, nil
}

// sourceOptions resolves how event files are read.
func sourceOptions(v *viper.Viper, loc *time.Location) source.Options {
	return source.Options{
		DateColumn:    v.GetString("date-column"),
		SubjectColumn: v.GetString("subject-column"),
		ContentColumn: v.GetString("content-column"),
		Sheet:         v.GetString("sheet"),
		Location:      loc,
		Markdown:      v.GetBool("markdown"),
		Sort:          v.GetBool("sort"),
	}
}

// loadTimeline resolves the configuration and reads the events of path.
func loadTimeline(v *viper.Viper, path string) ([]timeline.Event, timeline.Config, error) {
	cfg, err := drawConfig(v)
	if err != nil {
		return nil, cfg, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, cfg, err
	}

	events, err := source.Load(path, sourceOptions(v, loc))
	if err != nil {
		return nil, cfg, fmt.Errorf("error loading events from %s: %w", path, err)
	}
	internal.Debugf("Parsed %d events from %s", len(events), path)
	if len(events) == 0 {
		internal.Warning(fmt.Sprintf("no events found in %s, only today will be drawn", path))
	}
	return events, cfg, nil
}

// getOutputFilename determines the output filename for a drawing.
// If outputFile is provided it wins, "-" meaning stdout. Otherwise the
// filename is derived from the input file by replacing the extension with
// the format (e.g., "data.csv" becomes "data.html").
func getOutputFilename(inputFile, outputFile, format string) string {
	if outputFile == "-" {
		return ""
	}
	if outputFile != "" {
		return outputFile
	}

	base := filepath.Base(inputFile)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "." + format
}

// Execute runs the root command until it returns or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
