package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Silonidas/card-verse-architect/internal/catalog"
	"github.com/Silonidas/card-verse-architect/internal/collection"
	"github.com/Silonidas/card-verse-architect/internal/config"
	"github.com/Silonidas/card-verse-architect/internal/deck"
	"github.com/Silonidas/card-verse-architect/internal/events"
	"github.com/Silonidas/card-verse-architect/internal/query"
	"github.com/Silonidas/card-verse-architect/internal/session"
	"github.com/Silonidas/card-verse-architect/internal/storage"
)

type globalFlags struct {
	configPath  string
	statePath   string
	catalogPath string
	debug       bool
}

// app is the state shared by all commands of one invocation.
type app struct {
	out   io.Writer
	flags globalFlags

	cfg       *config.Config
	logger    *slog.Logger
	session   *session.Session
	source    catalog.Source
	statePath string
}

// open loads configuration, the catalog and the saved state.
func (a *app) open(ctx context.Context) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	level, _ := cfg.LogLevel()
	if a.flags.debug {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	store := catalog.NewStore(a.logger)
	catalogPath := a.flags.catalogPath
	if catalogPath == "" {
		catalogPath = cfg.Catalog.Path
	}
	if catalogPath != "" {
		a.source = catalog.NewFileSource(catalogPath)
	} else {
		a.source = catalog.StaticSource{Label: "sample", Cards: catalog.SampleCatalog()}
	}
	if _, err := store.Refresh(ctx, a.source); err != nil {
		return err
	}

	a.statePath = a.flags.statePath
	if a.statePath == "" {
		a.statePath = cfg.State.Path
	}
	if a.statePath == "" {
		dir, err := config.Dir()
		if err != nil {
			return err
		}
		a.statePath = filepath.Join(dir, "state.json")
	}
	snap, err := storage.Load(a.statePath)
	if err != nil {
		return err
	}

	sort, _ := query.ParseSortKey(cfg.Browse.DefaultSort)
	dispatcher := events.NewEventDispatcher(a.logger)
	dispatcher.Register(events.NewLoggingObserver(a.logger, a.flags.debug))

	a.session = session.New(session.Config{
		Catalog:      store,
		Collection:   collection.NewLedger(collection.WithDefaultCondition(cfg.DefaultCondition())),
		Decks:        deck.NewLedger(deck.WithPolicy(cfg.Deck)),
		Dispatcher:   dispatcher,
		Vocabularies: cfg.Vocabularies(),
		SelectedTCG:  cfg.Browse.DefaultTCG,
		DefaultSort:  sort,
		Logger:       a.logger,
	})
	a.session.Restore(snap)

	for _, problem := range a.session.ValidateCatalog() {
		a.logger.Debug("Catalog card outside vocabulary", "problem", problem)
	}
	return nil
}

// save writes the session state back to disk.
func (a *app) save() error {
	if err := a.session.Snapshot().Save(a.statePath); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	a.logger.Debug("Saved state", "path", a.statePath)
	return nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
