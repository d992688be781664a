package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"timeline2html/timeline"
)

// Run shows the timeline full screen until the user quits or ctx is done.
func Run(ctx context.Context, events []timeline.Event, cfg timeline.Config, opts Options) error {
	if opts.Columns <= 0 {
		opts.Columns = TerminalWidth()
	}

	p := tea.NewProgram(New(events, cfg, opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// TerminalWidth returns the width of the terminal on stdout, or a
// conservative default when it cannot be detected.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultColumns
	}
	return width
}
