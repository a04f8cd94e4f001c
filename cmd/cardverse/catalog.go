package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Silonidas/card-verse-architect/internal/cards"
	"github.com/Silonidas/card-verse-architect/internal/query"
)

func catalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the card catalog",
	}

	var flags filterFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog cards matching a filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := flags.filter()
			if err != nil {
				return err
			}
			results := a.session.Browse(f)
			if len(results) == 0 {
				a.printf("No cards found.\n")
				if suggestions := a.session.Suggest(f.SearchTerm, query.DefaultSuggestions); len(suggestions) > 0 {
					a.printf("Did you mean: %s?\n", strings.Join(suggestions, ", "))
				}
				return nil
			}
			for _, c := range results {
				a.printCard(c)
			}
			a.printf("\n%d card(s)\n", len(results))
			return nil
		},
	}
	flags.register(list, false)

	vocab := &cobra.Command{
		Use:   "vocab",
		Short: "Show the types and rarities of the selected game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.session.Vocabulary()
			a.printf("%s\n", a.session.SelectedTCG())
			a.printf("  Types:    %s\n", strings.Join(v.Types, ", "))
			a.printf("  Rarities: %s\n", strings.Join(v.Rarities, ", "))
			return nil
		},
	}

	var limit int
	suggest := &cobra.Command{
		Use:   "suggest <term>",
		Short: "Suggest card names close to a search term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.session.Suggest(args[0], limit) {
				a.printf("%s\n", name)
			}
			return nil
		},
	}
	suggest.Flags().IntVarP(&limit, "limit", "n", query.DefaultSuggestions, "Maximum number of suggestions")

	cmd.AddCommand(list, vocab, suggest)
	return cmd
}

func (a *app) printCard(c cards.Card) {
	price := "N/A"
	if c.Price != nil {
		price = fmt.Sprintf("$%.2f", *c.Price)
	}
	a.printf("  %-10s %-20s %-8s %-4s %-9s %s\n", c.ID, c.Name, c.Type, c.Rarity, c.Set, price)
}
