package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timeline2html/tui"
)

// tuiCmd shows the timeline in the terminal.
var tuiCmd = &cobra.Command{
	Use:   "tui <events-file>",
	Short: "Explore the timeline in the terminal",
	Long: `Draw the timeline in the terminal. Hover markers with the mouse or move between
them with the arrow keys; enter shows the details of the focused event.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, cfg, err := loadTimeline(viper.GetViper(), args[0])
		if err != nil {
			return err
		}
		return tui.Run(cmd.Context(), events, cfg, tui.Options{
			Title: viper.GetString("title"),
		})
	},
}
