package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timeline2html/internal/outwriter"
	"timeline2html/timeline"
)

// layoutCmd prints the computed positions instead of drawing them.
var layoutCmd = &cobra.Command{
	Use:   "layout <events-file>",
	Short: "Print marker positions, labels and axis of an event file",
	Long: `Compute the layout of an event file and print where every marker and label
lands, as a table, JSON or CSV.

Useful for:
- Checking how a viewport width spreads the events
- Feeding positions to another renderer`,
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
		return outwriter.WriteLayout(l, format, output)
	},
}
