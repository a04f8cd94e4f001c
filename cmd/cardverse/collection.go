package main

import (
	"github.com/spf13/cobra"

	"github.com/Silonidas/card-verse-architect/internal/stats"
)

func collectionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collection",
		Aliases: []string{"col"},
		Short:   "Manage the cards you own",
	}

	add := &cobra.Command{
		Use:   "add <card-id>...",
		Short: "Add one copy of each card to the collection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range args {
				entry, ok := a.session.AddToCollection(cmd.Context(), id)
				if !ok {
					a.printf("Card %s not found in catalog.\n", id)
					continue
				}
				a.printf("%s: %d owned\n", entry.Card.Name, entry.Quantity)
			}
			return a.save()
		},
	}

	remove := &cobra.Command{
		Use:   "remove <card-id>...",
		Short: "Remove one copy of each card from the collection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range args {
				if !a.session.RemoveFromCollection(cmd.Context(), id) {
					a.printf("Card %s is not in the collection.\n", id)
					continue
				}
				a.printf("%s: %d owned\n", id, a.session.Collection().Quantity(id))
			}
			return a.save()
		},
	}

	condition := &cobra.Command{
		Use:   "condition <card-id> <condition>",
		Short: "Set the condition of an owned card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.session.SetCondition(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				a.printf("Card %s is not in the collection.\n", args[0])
				return nil
			}
			return a.save()
		},
	}

	favorite := &cobra.Command{
		Use:   "favorite <card-id>",
		Short: "Toggle the favorite flag of an owned card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fav, ok := a.session.ToggleFavorite(cmd.Context(), args[0])
			if !ok {
				a.printf("Card %s is not in the collection.\n", args[0])
				return nil
			}
			a.printf("Favorite: %t\n", fav)
			return a.save()
		},
	}

	var listFlags filterFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List owned cards matching a filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := listFlags.filter()
			if err != nil {
				return err
			}
			entries := a.session.CollectionView(f)
			if len(entries) == 0 {
				a.printf("No cards found.\n")
				return nil
			}
			for _, e := range entries {
				star := " "
				if e.Favorite {
					star = "*"
				}
				a.printf("%s %2dx %-20s %-10s %s\n", star, e.Quantity, e.Card.Name, e.Card.ID, e.Condition)
			}
			return nil
		},
	}
	listFlags.register(list, true)

	var statsFlags filterFlags
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := statsFlags.filter()
			if err != nil {
				return err
			}
			a.printCollectionStats(a.session.CollectionStats(f))
			return nil
		},
	}
	statsFlags.register(statsCmd, true)

	cmd.AddCommand(add, remove, condition, favorite, list, statsCmd)
	return cmd
}

func (a *app) printCollectionStats(s stats.CollectionStats) {
	a.printf("Collection Summary\n")
	a.printf("==================\n")
	a.printf("  Total Cards:     %d\n", s.TotalCards)
	a.printf("  Unique Cards:    %d\n", s.UniqueCards)
	a.printf("  Favorites:       %d\n", s.Favorites)
	a.printf("  Estimated Value: $%.2f\n", s.EstimatedValue)
	if s.MostValuableID != "" {
		a.printf("  Most Valuable:   $%.2f (%s)\n", s.MostValuable, s.MostValuableID)
	}
	a.printBuckets("By Rarity", s.Rarities)
	a.printBuckets("By Condition", s.Conditions)
}

func (a *app) printBuckets(title string, buckets []stats.Bucket) {
	if len(buckets) == 0 {
		return
	}
	a.printf("\n%s:\n", title)
	for _, b := range buckets {
		a.printf("  %-12s %d\n", b.Label+":", b.Count)
	}
}
