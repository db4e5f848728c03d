package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui"
	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/logger"
)

// commitBuffer bounds selection commits waiting for the TUI to read them.
const commitBuffer = 8

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for hdcat.

The TUI opens on a home page with a search box, featured datasets, popular
categories and recent searches. Results can be narrowed with the filter
panel, shown as a grid, list or detailed list, and opened for details.

Controls:
  Tab      - Next section (home)
  ↑/k, ↓/j - Navigate
  Enter    - Search / Select
  /        - Edit search
  f        - Filter panel
  v, s     - Cycle view mode / sort order
  Esc      - Back / Cancel
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := requireCatalog(); err != nil {
		return err
	}
	if sessionFactory == nil {
		return errors.New("session factory not configured")
	}

	// The alternate screen owns the terminal; stray stderr writes corrupt it.
	if !logger.IsVerbose() {
		prev := logger.SetOutput(io.Discard)
		defer logger.SetOutput(prev)
	}

	commits := make(chan domain.ViewSnapshot, commitBuffer)
	filters, view, release := sessionFactory(func(snap domain.ViewSnapshot) {
		select {
		case commits <- snap:
		default:
			logger.Debug("TUI commit buffer full; dropping snapshot")
		}
	})
	defer release()

	ports := &tui.Ports{
		Catalog: catalogService,
		Filters: filters,
		View:    view,
		Commits: commits,
		History: historyService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(commandContext(cmd)).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
