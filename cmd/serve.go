package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timeline2html/server"
)

// serveCmd serves the page for an event file over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve <events-file>",
	Short: "Serve the interactive timeline over HTTP",
	Long: `Serve the timeline page, the SVG and the layout JSON of an event file.

The file is read again on every request, so edits show up on refresh.

Endpoints:
  GET /                      interactive page
  GET /timeline.svg          static drawing
  GET /api/layout?viewport=  layout JSON for a viewport width
  GET /api/events            parsed events
  GET /healthz               liveness`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viper.GetViper()
		events, cfg, err := loadTimeline(v, args[0])
		if err != nil {
			return err
		}
		loc, _ := cfg.Location()

		src := server.FileSource{Path: args[0], Options: sourceOptions(v, loc)}
		srv := server.NewServer(server.Config{
			Addr:     v.GetString("addr"),
			Timeline: cfg,
			Title:    v.GetString("title"),
			TargetID: v.GetString("target"),
			Sanitize: v.GetBool("sanitize"),
		}, src)

		cmd.Printf("Serving %d events from %s\n", len(events), args[0])
		return srv.Run(cmd.Context())
	},
}
