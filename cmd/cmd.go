// Package cmd defines the command-line interface for timeline2html.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timeline2html/internal"
	"timeline2html/internal/outwriter"
	"timeline2html/internal/source"
	"timeline2html/timeline"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the config subcommands to the parent config command
	configCmd.AddCommand(configInitCmd)

	d := timeline.DefaultConfig(timeline.DefaultViewport)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode for verbose output")
	rootCmd.PersistentFlags().Float64("viewport", timeline.DefaultViewport, "Viewport width; the drawing is this wide minus the page inset")
	rootCmd.PersistentFlags().Float64("height", d.Height, "Drawing height")
	rootCmd.PersistentFlags().Float64("radius", d.Radius, "Marker radius")
	rootCmd.PersistentFlags().Float64("line-width", d.LineWidth, "Connector and marker stroke width")
	rootCmd.PersistentFlags().String("color", d.Color, "Stroke and hover fill color")
	rootCmd.PersistentFlags().String("background", d.Background, "Idle marker fill color")
	rootCmd.PersistentFlags().String("label-date-format", d.LabelDateFormat, "strftime pattern of tooltip dates")
	rootCmd.PersistentFlags().String("axis-date-format", d.AxisDateFormat, "strftime pattern of the start and end labels")
	rootCmd.PersistentFlags().String("panel-date-format", d.PanelDateFormat, "strftime pattern of the details panel date")
	rootCmd.PersistentFlags().Float64("font-size", d.FontSize, "Label font size used to estimate text bounds")
	rootCmd.PersistentFlags().String("connector", string(d.Connector), "Connector mode: chain or converge")
	rootCmd.PersistentFlags().Float64("tooltip-offset", d.TooltipOffset, "Horizontal tooltip offset from the cursor")
	rootCmd.PersistentFlags().Duration("transition", d.Transition, "Hover transition duration")
	rootCmd.PersistentFlags().String("timezone", d.Timezone, "IANA time zone for parsing and formatting dates, or Local")
	rootCmd.PersistentFlags().String("date-column", source.DefaultDateColumn, "Date column of tabular event files")
	rootCmd.PersistentFlags().String("subject-column", source.DefaultSubjectColumn, "Subject column of tabular event files")
	rootCmd.PersistentFlags().String("content-column", source.DefaultContentColumn, "Content column of tabular event files")
	rootCmd.PersistentFlags().String("sheet", "", "XLSX sheet to read (default first sheet)")
	rootCmd.PersistentFlags().Bool("sort", true, "Sort events by date after loading")
	rootCmd.PersistentFlags().Bool("markdown", false, "Treat event content as markdown")
	rootCmd.PersistentFlags().Bool("sanitize", false, "Sanitize event content before embedding it in a page")
	rootCmd.PersistentFlags().String("title", defaultTitle, "Page and terminal title")
	rootCmd.PersistentFlags().String("target", "timeline", "Id of the element the drawing is inserted into")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		internal.FatalError("Error binding root flags", err)
	}

	// Output flags are per command and read directly from Cobra
	renderCmd.Flags().String("format", outwriter.HTMLOut, "Output format: html or svg")
	renderCmd.Flags().StringP("output", "o", "", "Output file (default: input name with the format extension, '-' for stdout)")
	layoutCmd.Flags().String("format", outwriter.TableOut, "Output format: table or json or csv")
	layoutCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	configInitCmd.Flags().StringP("output", "o", configName+".yaml", "Config file to write ('-' for stdout)")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", defaultAddr, "Address to listen on")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		internal.FatalError("Error binding serve flags", err)
	}
}
