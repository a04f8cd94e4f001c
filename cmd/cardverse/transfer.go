package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Silonidas/card-verse-architect/internal/catalog"
	"github.com/Silonidas/card-verse-architect/internal/events"
	"github.com/Silonidas/card-verse-architect/internal/session"
	"github.com/Silonidas/card-verse-architect/internal/storage"
)

func transferCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <card-id> <from> <to>",
		Short: "Move a card between zones (browse, collection, deck:<id>)",
		Long: `Move one copy of a card between zones, the way dragging a card
between panels does:

  browse -> collection       add to the collection
  collection -> browse       remove from the collection
  browse|collection -> deck  add to the deck
  deck -> browse|collection  remove from the deck
  deck -> deck               move one copy`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := session.ParseZone(args[1])
			if err != nil {
				return err
			}
			to, err := session.ParseZone(args[2])
			if err != nil {
				return err
			}
			ok, err := a.session.TransferCard(cmd.Context(), args[0], from, to)
			if err != nil {
				return err
			}
			if !ok {
				a.printf("Nothing to transfer.\n")
				return nil
			}
			a.printf("Moved %s from %s to %s\n", args[0], from, to)
			return a.save()
		},
	}
}

func selectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select [tcg]",
		Short: "Select the card game, or list the games when no argument is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, tcg := range a.session.TCGs() {
					marker := " "
					if tcg == a.session.SelectedTCG() {
						marker = "*"
					}
					a.printf("%s %s\n", marker, tcg)
				}
				return nil
			}
			if err := a.session.SelectTCG(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.printf("Selected %s\n", a.session.SelectedTCG())
			return a.save()
		},
	}
}

func seedCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample collection and decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && (a.session.Collection().Len() > 0 || a.session.Decks().Len() > 0) {
				return fmt.Errorf("state is not empty; use --force to replace it")
			}
			snap := storage.NewSnapshot()
			snap.SelectedTCG = a.session.SelectedTCG()
			for _, e := range catalog.SampleCollection() {
				snap.Collection[e.Card.ID] = e
			}
			for _, d := range catalog.SampleDecks() {
				snap.Decks[d.ID] = d
			}
			a.session.Restore(snap)
			a.printf("Loaded %d collection entries and %d decks\n", a.session.Collection().Len(), a.session.Decks().Len())
			return a.save()
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Replace existing state")
	return cmd
}

func watchCmd(a *app) *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reload the catalog file whenever it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, ok := a.source.(*catalog.FileSource)
			if !ok {
				return fmt.Errorf("watch needs a catalog file (--catalog or [catalog] path)")
			}
			if interval <= 0 {
				configured, err := a.cfg.GetPollInterval()
				if err != nil {
					return err
				}
				interval = configured
			}

			a.session.Dispatcher().Register(events.NewFuncObserver("catalog-report", func(e events.Event) error {
				if data, ok := events.GetTypedData[events.CatalogReplacedEvent](e); ok {
					a.printf("Catalog reloaded: %d cards\n", data.Cards)
				}
				return nil
			}, events.TypeCatalogReplaced))

			w := catalog.NewWatcher(a.session.Catalog(), src, catalog.WatcherConfig{
				PollInterval: interval,
				Dispatcher:   a.session.Dispatcher(),
				Logger:       a.logger,
			})
			err := w.Run(cmd.Context())
			if cmd.Context().Err() != nil {
				return nil
			}
			return err
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "Backup polling interval (default from config)")
	return cmd
}
