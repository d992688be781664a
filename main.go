/*
Package main implements timeline2html, which lays out dated events on a
time-scaled axis and draws them as SVG, an interactive HTML page, a terminal
view or an HTTP service.
*/
package main

import (
	"timeline2html/cmd"
	"timeline2html/internal"
)

func main() {
	if err := cmd.Execute(); err != nil {
		internal.FatalError("timeline2html failed", err)
	}
}
