package cli

import (
	"bytes"

	"github.com/spf13/pflag"

	"github.com/custodia-labs/hdcat/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/tui/tuitest"
	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
	"github.com/custodia-labs/hdcat/internal/core/services"
)

// testServices builds services over the test fixture catalog with
// in-memory history and settings.
func testServices() *Services {
	catalog, err := services.NewCatalogService(tuitest.Datasets())
	if err != nil {
		panic(err)
	}

	return &Services{
		Catalog:  catalog,
		History:  services.NewSearchHistoryService(memory.NewHistoryStore(), domain.DefaultAppSettings().History),
		Settings: services.NewSettingsService(memory.NewConfigStore()),
		NewSession: func(_ func(domain.ViewSnapshot)) (driving.FilterState, driving.ViewState, func()) {
			s := services.NewSession(domain.DefaultAppSettings(), services.WithTransitionDelay(0))
			return s.Filters, s.View, s.Close
		},
		CatalogLocation: "test",
	}
}

// setupTestServices installs testServices. The returned func restores a
// clean state.
func setupTestServices() func() {
	resetFlags()
	SetServices(testServices())

	return func() {
		SetServices(nil)
		resetFlags()
	}
}

// resetFlags restores flag variables that persist between executions.
func resetFlags() {
	searchSort = ""
	searchLimit = 10
	searchJSON = false
	searchGroup = false
	browseJSON = false
	if f, ok := searchCmd.Flags().Lookup("filter").Value.(pflag.SliceValue); ok {
		_ = f.Replace(nil)
	}
	searchFilters = nil
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
