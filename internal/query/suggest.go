package query

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/Silonidas/card-verse-architect/internal/cards"
)

// DefaultSuggestions is the number of names Suggest returns when limit is 0.
const DefaultSuggestions = 5

// cardNames adapts a card slice to fuzzy.Source.
type cardNames []cards.Card

func (c cardNames) String(i int) string { return strings.ToLower(c[i].Name) }
func (c cardNames) Len() int            { return len(c) }

// Suggest returns up to limit distinct card names that fuzzily match term,
// best match first. It is meant for the "no results" state of a search, so
// only the name is considered.
func Suggest(catalog []cards.Card, term string, limit int) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || len(catalog) == 0 {
		return []string{}
	}
	if limit <= 0 {
		limit = DefaultSuggestions
	}

	matches := fuzzy.FindFrom(term, cardNames(catalog))

	seen := make(map[string]bool)
	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		name := catalog[m.Index].Name
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
		if len(out) == limit {
			break
		}
	}
	return out
}
