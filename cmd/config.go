package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"timeline2html/internal"
	"timeline2html/internal/outwriter"
)

const configHeader = `# timeline2html configuration.
# Every key can also be set with a flag of the same name or a TIMELINE_* variable,
# e.g. TIMELINE_LINE_WIDTH=3. Dates use strftime patterns.
`

// configCmd groups configuration helpers.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the timeline2html configuration file",
}

// configInitCmd writes the defaults to a config file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		output, _ := cmd.Flags().GetString("output")
		force, _ := cmd.Flags().GetBool("force")
		return writeDefaultConfig(output, force)
	},
}

// writeDefaultConfig writes the default settings as YAML to path, or stdout
// for "-". An existing file is only replaced when force is set.
func writeDefaultConfig(path string, force bool) error {
	data, err := yaml.Marshal(defaultSettings())
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if path == "-" {
		return writeConfig(os.Stdout, data)
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error checking config file: %w", err)
		}
	}

	file, err := outwriter.SelectOutputFile(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := writeConfig(file, data); err != nil {
		return err
	}
	internal.Success("Wrote default config to %s", path)
	return nil
}

func writeConfig(w io.Writer, data []byte) error {
	if _, err := io.WriteString(w, configHeader); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}
