package main

import (
	"github.com/spf13/cobra"

	"github.com/Silonidas/card-verse-architect/internal/query"
)

type filterFlags struct {
	search    string
	tcg       string
	cardType  string
	rarity    string
	condition string
	favorites bool
	sort      string
}

func (f *filterFlags) register(cmd *cobra.Command, owned bool) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Case-insensitive name substring")
	cmd.Flags().StringVar(&f.tcg, "tcg", "", "Card game, or \"all\" for every game (default: the selected game)")
	cmd.Flags().StringVar(&f.cardType, "type", query.All, "Card type")
	cmd.Flags().StringVar(&f.rarity, "rarity", query.All, "Card rarity")
	cmd.Flags().StringVar(&f.sort, "sort", "", "Sort by name, price, rarity or catalog")
	if owned {
		cmd.Flags().StringVar(&f.condition, "condition", query.All, "Card condition")
		cmd.Flags().BoolVar(&f.favorites, "favorites", false, "Only favorite cards")
	}
}

func (f *filterFlags) filter() (query.Filter, error) {
	var sort query.SortKey
	if f.sort != "" {
		k, err := query.ParseSortKey(f.sort)
		if err != nil {
			return query.Filter{}, err
		}
		sort = k
	}
	return query.Filter{
		SearchTerm:    f.search,
		TCG:           f.tcg,
		Type:          f.cardType,
		Rarity:        f.rarity,
		Condition:     f.condition,
		FavoritesOnly: f.favorites,
		Sort:          sort,
	}, nil
}
