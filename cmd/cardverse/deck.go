package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Silonidas/card-verse-architect/internal/deck"
	"github.com/Silonidas/card-verse-architect/internal/deckexport"
	"github.com/Silonidas/card-verse-architect/internal/stats"
)

type metaFlags struct {
	name        string
	format      string
	description string
	cover       string
}

func (m *metaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&m.name, "name", "", "Deck name")
	cmd.Flags().StringVar(&m.format, "format", "", "Deck format (free text)")
	cmd.Flags().StringVar(&m.description, "description", "", "Deck description")
	cmd.Flags().StringVar(&m.cover, "cover", "", "Cover card id")
}

func (m *metaFlags) meta() deck.Meta {
	return deck.Meta{
		Name:        m.name,
		Format:      m.format,
		Description: m.description,
		CoverCard:   m.cover,
	}
}

func deckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Build and manage decks",
	}

	var createFlags metaFlags
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an empty deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.session.CreateDeck(cmd.Context(), createFlags.meta())
			if err != nil {
				return err
			}
			a.printf("Created deck %s (%s)\n", d.Name, d.ID)
			return a.save()
		},
	}
	createFlags.register(create)

	list := &cobra.Command{
		Use:   "list",
		Short: "List decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			decks := a.session.DeckList()
			if len(decks) == 0 {
				a.printf("No decks found.\n")
				return nil
			}
			for _, d := range decks {
				a.printf("  %-36s %-24s %-12s %3d cards\n", d.ID, d.Name, d.Format, d.CardCount())
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <deck-id>",
		Short: "Show the cards of a deck grouped by type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := a.session.Deck(args[0])
			if !ok {
				return deckNotFound(args[0])
			}
			a.printf("%s (%s)\n", d.Name, d.Format)
			if d.Description != "" {
				a.printf("%s\n", d.Description)
			}
			groups := stats.GroupByType(d.Cards)
			for _, b := range stats.Deck(d.Cards).Types {
				a.printf("\n%s (%d):\n", b.Label, b.Count)
				for _, e := range groups[b.Label] {
					a.printf("  %s\n", e)
				}
			}
			a.printf("\n%d cards\n", d.CardCount())
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <deck-id> <card-id>...",
		Short: "Add one copy of each card to a deck",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID := args[0]
			if _, ok := a.session.Deck(deckID); !ok {
				return deckNotFound(deckID)
			}
			for _, id := range args[1:] {
				ok, err := a.session.AddCardToDeck(cmd.Context(), deckID, id)
				if err != nil {
					a.printf("%v\n", err)
					continue
				}
				if !ok {
					a.printf("Card %s not found in catalog.\n", id)
				}
			}
			return a.save()
		},
	}

	remove := &cobra.Command{
		Use:   "remove <deck-id> <card-id>...",
		Short: "Remove one copy of each card from a deck",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID := args[0]
			for _, id := range args[1:] {
				if !a.session.RemoveCardFromDeck(cmd.Context(), deckID, id) {
					a.printf("Card %s is not in deck %s.\n", id, deckID)
				}
			}
			return a.save()
		},
	}

	var updateFlags metaFlags
	update := &cobra.Command{
		Use:   "update <deck-id>",
		Short: "Update deck metadata; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := a.session.Deck(args[0])
			if !ok {
				return deckNotFound(args[0])
			}
			meta := d.Meta
			if cmd.Flags().Changed("name") {
				meta.Name = updateFlags.name
			}
			if cmd.Flags().Changed("format") {
				meta.Format = updateFlags.format
			}
			if cmd.Flags().Changed("description") {
				meta.Description = updateFlags.description
			}
			if cmd.Flags().Changed("cover") {
				meta.CoverCard = updateFlags.cover
			}
			if _, err := a.session.UpdateDeck(cmd.Context(), d.ID, meta); err != nil {
				return err
			}
			return a.save()
		},
	}
	updateFlags.register(update)

	del := &cobra.Command{
		Use:   "delete <deck-id>",
		Short: "Delete a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.session.DeleteDeck(cmd.Context(), args[0]) {
				return deckNotFound(args[0])
			}
			return a.save()
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats <deck-id>",
		Short: "Show deck statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := a.session.DeckStats(args[0])
			if !ok {
				return deckNotFound(args[0])
			}
			a.printDeckStats(s)
			return nil
		},
	}

	var (
		exportFormat string
		exportStats  bool
		exportDir    string
	)
	export := &cobra.Command{
		Use:   "export <deck-id>",
		Short: "Export a deck as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := deckexport.ParseFormat(exportFormat)
			if err != nil {
				return err
			}
			result, ok, err := a.session.ExportDeck(args[0], &deckexport.ExportOptions{
				Format:         format,
				IncludeHeaders: true,
				IncludeStats:   exportStats,
			})
			if err != nil {
				return err
			}
			if !ok {
				return deckNotFound(args[0])
			}
			if exportDir == "" {
				a.printf("%s", result.Content)
				return nil
			}
			path := filepath.Join(exportDir, result.Filename)
			if err := os.WriteFile(path, []byte(result.Content), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			a.printf("Exported to %s\n", path)
			return nil
		},
	}
	export.Flags().StringVarP(&exportFormat, "format", "f", string(deckexport.FormatSet), "Export format (set, plaintext, json)")
	export.Flags().BoolVar(&exportStats, "stats", false, "Include statistics as comments")
	export.Flags().StringVarP(&exportDir, "output-dir", "o", "", "Write to a file in this directory instead of stdout")

	var importFlags metaFlags
	importCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a deck list from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 && args[0] != "-" {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read deck list: %w", err)
			}

			d, warnings, err := a.session.ImportDeck(cmd.Context(), string(data), importFlags.meta())
			for _, w := range warnings {
				a.printf("Warning: %s\n", w)
			}
			if err != nil {
				return err
			}
			a.printf("Imported deck %s (%s) with %d cards\n", d.Name, d.ID, d.CardCount())
			return a.save()
		},
	}
	importFlags.register(importCmd)

	cmd.AddCommand(create, list, show, add, remove, update, del, statsCmd, export, importCmd)
	return cmd
}

func deckNotFound(id string) error {
	return fmt.Errorf("deck %s not found", id)
}

func (a *app) printDeckStats(s stats.DeckStats) {
	a.printf("Deck Statistics\n")
	a.printf("===============\n")
	a.printf("  Total Cards:  %d\n", s.TotalCards)
	a.printf("  Unique Cards: %d\n", s.UniqueCards)
	a.printf("  Average Cost: %.2f\n", s.AverageCost)

	a.printf("\nCost Curve:\n")
	for _, b := range s.CostCurve {
		a.printf("  %-3s %-20s %d\n", b.Label, bar(b.Count), b.Count)
	}
	a.printBuckets("By Type", s.Types)
	a.printBuckets("By Rarity", s.Rarities)
	a.printBuckets("By Color", s.Colors)
	a.printBuckets("By Power", s.PowerBands)
}

func bar(n int) string {
	const maxWidth = 20
	out := make([]byte, min(n, maxWidth))
	for i := range out {
		out[i] = '#'
	}
	return string(out)
}
