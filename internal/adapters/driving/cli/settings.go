package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the catalog location, default view, sort order and
search history.

Use subcommands to change a single setting, or run without arguments to
show the current configuration.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsViewModeCmd = &cobra.Command{
	Use:   "view-mode [mode]",
	Short: "Set the default view mode",
	Long: `Set the default view mode used by the terminal UI.

Available modes:
  grid   - Cards grouped by community action area
  list   - One dataset per line
  detail - Expanded entries with descriptions

Without an argument, prompts for a choice.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsViewMode,
}

var settingsSortCmd = &cobra.Command{
	Use:   "sort [order]",
	Short: "Set the default sort order",
	Long: `Set the default sort order for search results.

Available orders:
  relevance - Most matched fields first
  date      - Most recently updated first
  name      - Alphabetical by title

Without an argument, prompts for a choice.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsSort,
}

var settingsCatalogCmd = &cobra.Command{
	Use:   "catalog [path-or-url]",
	Short: "Set the catalog location",
	Long: `Set the catalog file (.json, .yaml, .toml) or http(s) URL to load.
Pass an empty string to use the bundled sample catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsCatalog,
}

var settingsWatchCmd = &cobra.Command{
	Use:   "watch [on|off]",
	Short: "Reload the catalog file when it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsWatch,
}

var settingsHistorySizeCmd = &cobra.Command{
	Use:   "history-size [n]",
	Short: "Set how many recent searches are kept",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsHistorySize,
}

var settingsHistoryCmd = &cobra.Command{
	Use:   "history [on|off]",
	Short: "Enable or disable recent-search tracking",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsHistory,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsViewModeCmd)
	settingsCmd.AddCommand(settingsSortCmd)
	settingsCmd.AddCommand(settingsCatalogCmd)
	settingsCmd.AddCommand(settingsWatchCmd)
	settingsCmd.AddCommand(settingsHistorySizeCmd)
	settingsCmd.AddCommand(settingsHistoryCmd)
	rootCmd.AddCommand(settingsCmd)
}

func requireSettings() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Catalog]")
	if settings.Catalog.Path == "" {
		cmd.Println("  Location: (bundled sample)")
	} else {
		cmd.Printf("  Location: %s\n", settings.Catalog.Path)
	}
	cmd.Printf("  Watch: %s\n", onOff(settings.Catalog.Watch))
	if catalogLocation != "" && catalogLocation != settings.Catalog.Path {
		cmd.Printf("  In use: %s\n", catalogLocation)
	}
	cmd.Println()

	cmd.Println("[View]")
	cmd.Printf("  Mode: %s\n", settings.View.Mode)
	cmd.Printf("  Sort: %s\n", settings.View.Sort.Description())
	cmd.Printf("  Transition delay: %s\n", settings.View.TransitionDelay)
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %s\n", onOff(settings.History.Enabled))
	cmd.Printf("  Size: %d\n", settings.History.Size)

	return nil
}

func runSettingsViewMode(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	var mode domain.ViewMode
	if len(args) == 1 {
		m, err := domain.ParseViewMode(args[0])
		if err != nil {
			return err
		}
		mode = m
	} else {
		modes := domain.AllViewModes()
		labels := make([]string, len(modes))
		for i, m := range modes {
			labels[i] = m.String()
		}
		idx, err := promptChoice(cmd, "Select View Mode", labels)
		if err != nil {
			return err
		}
		mode = modes[idx-1]
	}

	if err := settingsService.SetViewMode(mode); err != nil {
		return fmt.Errorf("failed to set view mode: %w", err)
	}
	cmd.Printf("View mode set to: %s\n", mode)
	return nil
}

func runSettingsSort(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	var order domain.SortOrder
	if len(args) == 1 {
		o, err := domain.ParseSortOrder(args[0])
		if err != nil {
			return err
		}
		order = o
	} else {
		orders := domain.AllSortOrders()
		labels := make([]string, len(orders))
		for i, o := range orders {
			labels[i] = o.Description()
		}
		idx, err := promptChoice(cmd, "Select Sort Order", labels)
		if err != nil {
			return err
		}
		order = orders[idx-1]
	}

	if err := settingsService.SetSortOrder(order); err != nil {
		return fmt.Errorf("failed to set sort order: %w", err)
	}
	cmd.Printf("Sort order set to: %s\n", order.Description())
	return nil
}

func runSettingsCatalog(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	path := strings.TrimSpace(args[0])
	if err := settingsService.SetCatalogPath(path); err != nil {
		return fmt.Errorf("failed to set catalog: %w", err)
	}
	if path == "" {
		cmd.Println("Catalog set to the bundled sample.")
		return nil
	}
	cmd.Printf("Catalog set to: %s\n", path)
	return nil
}

func runSettingsWatch(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	enabled, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetCatalogWatch(enabled); err != nil {
		return fmt.Errorf("failed to set catalog watch: %w", err)
	}
	cmd.Printf("Catalog watch: %s\n", onOff(enabled))
	return nil
}

func runSettingsHistorySize(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("%w: history size must be a number", domain.ErrInvalidInput)
	}
	if err := settingsService.SetHistorySize(n); err != nil {
		return fmt.Errorf("failed to set history size: %w", err)
	}
	cmd.Printf("History size set to: %d\n", n)
	return nil
}

func runSettingsHistory(cmd *cobra.Command, args []string) error {
	if err := requireSettings(); err != nil {
		return err
	}

	enabled, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetHistoryEnabled(enabled); err != nil {
		return fmt.Errorf("failed to set history: %w", err)
	}
	cmd.Printf("Search history: %s\n", onOff(enabled))
	return nil
}

// Helper functions.

// promptChoice prints a numbered menu and reads a selection. It refuses to
// prompt when stdin is not a terminal.
func promptChoice(cmd *cobra.Command, title string, labels []string) (int, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return 0, errors.New("no value given and stdin is not a terminal")
	}

	cmd.Println(title)
	cmd.Println(strings.Repeat("-", len(title)))
	for i, l := range labels {
		cmd.Printf("  %d. %s\n", i+1, l)
	}
	cmd.Print("\nEnter choice: ")

	idx := parseChoice(readLine(bufio.NewReader(os.Stdin)), len(labels), 0)
	if idx == 0 {
		return 0, errors.New("invalid selection")
	}
	return idx, nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected on or off, got %q", domain.ErrInvalidInput, s)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
