// Package cli provides the command-line interface for hdcat.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
	"github.com/custodia-labs/hdcat/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	catalog   string
)

// Services wired by the builder.
var (
	catalogService  driving.CatalogService
	historyService  driving.SearchHistoryService
	settingsService driving.SettingsService
	sessionFactory  SessionFactory
	catalogLocation string
)

// SessionFactory creates an independent filter and view state. onCommit,
// when non-nil, is called after each delayed selection commit. The returned
// function releases the session.
type SessionFactory func(onCommit func(domain.ViewSnapshot)) (driving.FilterState, driving.ViewState, func())

// Options carries the global flags to the builder.
type Options struct {
	ConfigDir string
	Catalog   string
	Verbose   bool
	// Watch is true for long-running commands that benefit from hot reload.
	Watch bool
}

// Services groups the driving ports used by commands.
type Services struct {
	Catalog         driving.CatalogService
	History         driving.SearchHistoryService
	Settings        driving.SettingsService
	NewSession      SessionFactory
	CatalogLocation string
}

// Builder wires services from the global flags. The returned cleanup runs
// after the command finishes.
type Builder func(ctx context.Context, opts Options) (*Services, func(), error)

var (
	builder Builder
	cleanup func()
)

// annotationNoServices marks commands that run without wired services.
const annotationNoServices = "hdcat/no-services"

var rootCmd = &cobra.Command{
	Use:   "hdcat",
	Short: "Search and browse the healthcare dataset catalog",
	Long: `hdcat is a search and browse tool for a catalog of public health and
community datasets.

Datasets are organised by community action area, source, type, data format
and topic. Search by keyword, narrow results with facet filters and open a
dataset to see its details.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.hdcat)")
	rootCmd.PersistentFlags().StringVar(&catalog, "catalog", "",
		"catalog file or URL (.json, .yaml, .toml); overrides the configured catalog")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBuilder registers the function that wires services before each command.
func SetBuilder(b Builder) {
	builder = b
}

// SetServices installs services directly, bypassing the builder.
func SetServices(s *Services) {
	if s == nil {
		catalogService = nil
		historyService = nil
		settingsService = nil
		sessionFactory = nil
		catalogLocation = ""
		return
	}
	catalogService = s.Catalog
	historyService = s.History
	settingsService = s.Settings
	sessionFactory = s.NewSession
	catalogLocation = s.CatalogLocation
}

// Execute runs the root command and releases wired services afterwards.
func Execute(ctx context.Context) error {
	defer teardown()
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if builder == nil || catalogService != nil || cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}

	svc, done, err := builder(commandContext(cmd), Options{
		ConfigDir: configDir,
		Catalog:   catalog,
		Verbose:   verbose,
		Watch:     isLongRunning(cmd),
	})
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(svc)
	cleanup = done
	return nil
}

func teardown() {
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
}

func isLongRunning(cmd *cobra.Command) bool {
	switch cmd.CommandPath() {
	case "hdcat tui", "hdcat mcp serve":
		return true
	}
	return false
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func requireCatalog() error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	return nil
}
