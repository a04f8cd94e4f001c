// Package query computes the visible subset and ordering of cards from a
// catalog or a collection. Every function here is pure: inputs are never
// modified and an unmatched filter yields an empty, non-nil slice.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/Silonidas/card-verse-architect/internal/cards"
	"github.com/Silonidas/card-verse-architect/internal/collection"
)

// All is the filter value meaning "no restriction". An empty string is
// treated the same way.
const All = "all"

// SortKey selects the result ordering.
type SortKey string

const (
	SortName    SortKey = "name"    // Lexicographic, case-insensitive
	SortPrice   SortKey = "price"   // Highest first, missing price = 0
	SortRarity  SortKey = "rarity"  // Lexicographic
	SortCatalog SortKey = "catalog" // Input order
)

// ParseSortKey parses a sort key name. An empty name selects SortName.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortName, nil
	case SortName, SortPrice, SortRarity, SortCatalog:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (want name, price, rarity or catalog)", s)
	}
}

// Filter is the browse/collection filter state.
type Filter struct {
	SearchTerm string
	TCG        string
	Type       string
	Rarity     string
	// Condition only matches collection entries; catalog cards have none.
	Condition     string
	FavoritesOnly bool
	Sort          SortKey
}

// DefaultFilter returns a filter that matches everything, sorted by name.
func DefaultFilter() Filter {
	return Filter{
		TCG:       All,
		Type:      All,
		Rarity:    All,
		Condition: All,
		Sort:      SortName,
	}
}

func restricted(v string) bool {
	return v != "" && v != All
}

// matchCard applies the card-level predicates. TCG scoping comes first
// since type and rarity values only make sense within one game.
func (f Filter) matchCard(c cards.Card, term string) bool {
	if restricted(f.TCG) && c.TCG != f.TCG {
		return false
	}
	if term != "" && !strings.Contains(strings.ToLower(c.Name), term) {
		return false
	}
	if restricted(f.Type) && c.Type != f.Type {
		return false
	}
	if restricted(f.Rarity) && c.Rarity != f.Rarity {
		return false
	}
	return true
}

// Catalog returns the catalog cards matching f in f.Sort order.
func Catalog(catalog []cards.Card, f Filter) []cards.Card {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	out := make([]cards.Card, 0)
	for _, c := range catalog {
		if !f.matchCard(c, term) {
			continue
		}
		// Catalog cards carry no ownership state.
		if restricted(f.Condition) || f.FavoritesOnly {
			continue
		}
		out = append(out, c)
	}
	sortBy(out, f.Sort, func(c cards.Card) cards.Card { return c })
	return out
}

// Collection returns the owned entries matching f in f.Sort order.
func Collection(entries []collection.OwnedCard, f Filter) []collection.OwnedCard {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	out := make([]collection.OwnedCard, 0)
	for _, e := range entries {
		if !f.matchCard(e.Card, term) {
			continue
		}
		if restricted(f.Condition) && string(e.Condition) != f.Condition {
			continue
		}
		if f.FavoritesOnly && !e.Favorite {
			continue
		}
		out = append(out, e)
	}
	sortBy(out, f.Sort, func(e collection.OwnedCard) cards.Card { return e.Card })
	return out
}

// sortBy sorts in place with a stable sort, so ties keep input order.
func sortBy[T any](items []T, key SortKey, card func(T) cards.Card) {
	var less func(a, b cards.Card) int
	switch key {
	case SortCatalog:
		return
	case SortPrice:
		less = func(a, b cards.Card) int {
			return cmp.Compare(b.PriceOrZero(), a.PriceOrZero())
		}
	case SortRarity:
		less = func(a, b cards.Card) int {
			return strings.Compare(a.Rarity, b.Rarity)
		}
	default:
		less = func(a, b cards.Card) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}

	slices.SortStableFunc(items, func(a, b T) int {
		return less(card(a), card(b))
	})
}
