package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/precis-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Precis.

Paste or type text into the editor and press ctrl+s to see its summary.
The sentence count starts at the configured default and can be changed
at any time; changing it on the summary screen re-runs the summary.

Controls:
  ctrl+s        Summarise
  alt+↑/alt+↓   More / fewer sentences
  ctrl+l        Clear the editor
  s             Toggle scores (summary view)
  esc           Back to the editor
  f1            Help
  ctrl+c        Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := newTUIApp()
	if err != nil {
		return err
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func newTUIApp() (*tui.App, error) {
	app, err := tui.NewApp(tui.NewPorts(summaryService, settingsService))
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app, nil
}
