// Command hdcat searches and browses the healthcare dataset catalog.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/hdcat/internal/adapters/driven/catalog"
	"github.com/custodia-labs/hdcat/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hdcat/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hdcat/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/hdcat/internal/adapters/driving/cli"
	"github.com/custodia-labs/hdcat/internal/core/domain"
	"github.com/custodia-labs/hdcat/internal/core/ports/driven"
	"github.com/custodia-labs/hdcat/internal/core/ports/driving"
	"github.com/custodia-labs/hdcat/internal/core/services"
	"github.com/custodia-labs/hdcat/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBuilder(build)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// build wires the driven adapters into the core services.
func build(ctx context.Context, opts cli.Options) (*cli.Services, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}

	location := settings.Catalog.Path
	if opts.Catalog != "" {
		location = opts.Catalog
	}
	source, err := catalog.Open(location)
	if err != nil {
		return nil, nil, err
	}
	datasets, err := source.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	live, err := services.NewLiveCatalog(datasets)
	if err != nil {
		return nil, nil, err
	}

	if opts.Watch && settings.Catalog.Watch {
		stopWatch, err := watchCatalog(ctx, source, live)
		if err != nil {
			logger.Warn("Catalog watch disabled: %v", err)
		} else {
			closers = append(closers, stopWatch)
		}
	}

	historyStore, closeStore := openHistoryStore(opts.ConfigDir)
	if closeStore != nil {
		closers = append(closers, closeStore)
	}

	viewSettings := *settings
	newSession := func(onCommit func(domain.ViewSnapshot)) (driving.FilterState, driving.ViewState, func()) {
		var extra []services.ViewStateOption
		if onCommit != nil {
			extra = append(extra, services.WithOnCommit(onCommit))
		}
		session := services.NewSession(viewSettings, extra...)
		logger.Debug("Session %s started", session.ID)
		return session.Filters, session.View, session.Close
	}

	return &cli.Services{
		Catalog:         live,
		History:         services.NewSearchHistoryService(historyStore, settings.History),
		Settings:        settingsService,
		NewSession:      newSession,
		CatalogLocation: source.Location(),
	}, cleanup, nil
}

// openHistoryStore opens the sqlite history database next to the config,
// falling back to an in-memory store when it cannot be opened.
func openHistoryStore(configDir string) (driven.SearchHistoryStore, func()) {
	dataDir := ""
	if configDir != "" {
		dataDir = filepath.Join(configDir, "data")
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		logger.Warn("Search history not persisted: %v", err)
		return memory.NewHistoryStore(), nil
	}
	return store.HistoryStore(), func() {
		if err := store.Close(); err != nil {
			logger.Warn("Closing history store: %v", err)
		}
	}
}

// watchCatalog reloads live whenever the local catalog file changes.
func watchCatalog(ctx context.Context, source driven.CatalogSource, live *services.LiveCatalog) (func(), error) {
	local, ok := source.(*catalog.Source)
	if !ok || local.IsRemote() {
		return nil, errors.New("only local catalog files can be watched")
	}

	watcher, err := catalog.NewWatcher(local.Location(), source, live)
	if err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	events, err := watcher.Watch(watchCtx)
	if err != nil {
		cancel()
		return nil, err
	}

	go func() {
		for ev := range events {
			if ev.Err != nil {
				logger.Warn("Catalog reload failed, keeping previous catalog: %v", ev.Err)
				continue
			}
			logger.Debug("Catalog reloaded with %d datasets", ev.Count)
		}
	}()

	return cancel, nil
}
