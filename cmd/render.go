package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timeline2html/internal/outwriter"
	"timeline2html/timeline"
)

// renderCmd draws an event file as an interactive HTML page or a plain SVG.
var renderCmd = &cobra.Command{
	Use:   "render <events-file>",
	Short: "Draw an event file as an HTML page or SVG",
	Long: `Lay out the events of a CSV, YAML, JSON or XLSX file and write the drawing.

The HTML page embeds the SVG together with a tooltip, a details panel and the
hover/click behavior. The SVG output is the static drawing alone.

Examples:
  # Write events.html next to the working directory
  timeline2html render events.csv

  # Plain SVG for a 900px wide page, to stdout
  timeline2html render events.yaml --format svg --viewport 900 -o -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		events, cfg, err := loadTimeline(viper.GetViper(), args[0])
		if err != nil {
			return err
		}
		l, err := timeline.Compute(events, cfg, time.Now(), nil)
		if err != nil {
			return err
		}

		return outwriter.WriteDrawing(l, format, getOutputFilename(args[0], output, format), outwriter.DrawingOptions{
			Title:    viper.GetString("title"),
			TargetID: viper.GetString("target"),
			Sanitize: viper.GetBool("sanitize"),
		})
	},
}
