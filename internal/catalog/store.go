// Package catalog holds the card catalog and the sources it is loaded from.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/Silonidas/card-verse-architect/internal/cards"
)

// Store holds the current catalog. The published slice is never modified;
// Replace swaps in a new one wholesale.
type Store struct {
	mu    sync.RWMutex
	cards []cards.Card
	byKey map[key]int
	tcgs  []string

	logger *slog.Logger
}

type key struct {
	tcg string
	id  string
}

// NewStore creates an empty store. A nil logger uses slog.Default().
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		cards:  []cards.Card{},
		byKey:  make(map[key]int),
		logger: logger,
	}
}

// Replace installs cs as the catalog. Within one TCG the first occurrence
// of an id wins; later duplicates and cards without an id are dropped.
// Returns the number of cards kept.
func (s *Store) Replace(cs []cards.Card) int {
	kept := make([]cards.Card, 0, len(cs))
	byKey := make(map[key]int, len(cs))
	var tcgs []string

	for _, c := range cs {
		if c.ID == "" {
			s.logger.Warn("Dropping catalog card without id", "name", c.Name)
			continue
		}
		k := key{tcg: c.TCG, id: c.ID}
		if _, dup := byKey[k]; dup {
			s.logger.Warn("Dropping duplicate catalog card", "id", c.ID, "tcg", c.TCG, "name", c.Name)
			continue
		}
		byKey[k] = len(kept)
		kept = append(kept, c.Clone())
		if c.TCG != "" && !slices.Contains(tcgs, c.TCG) {
			tcgs = append(tcgs, c.TCG)
		}
	}

	s.mu.Lock()
	s.cards = kept
	s.byKey = byKey
	s.tcgs = tcgs
	s.mu.Unlock()
	return len(kept)
}

// Refresh fetches from src and replaces the catalog. On failure the
// previous catalog is kept and the error returned.
func (s *Store) Refresh(ctx context.Context, src Source) (int, error) {
	cs, err := src.Fetch(ctx)
	if err != nil {
		s.logger.Warn("Catalog refresh failed, keeping previous catalog", "source", src.Name(), "error", err)
		return 0, fmt.Errorf("refresh catalog from %s: %w", src.Name(), err)
	}
	n := s.Replace(cs)
	s.logger.Debug("Catalog replaced", "source", src.Name(), "cards", n)
	return n, nil
}

// Cards returns the current catalog. Callers must not modify the slice.
func (s *Store) Cards() []cards.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cards
}

// Len returns the number of cards in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}

// ByID looks up a card by id within tcg. An empty tcg matches the first
// card with that id in any game.
func (s *Store) ByID(tcg, id string) (cards.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tcg != "" {
		i, ok := s.byKey[key{tcg: tcg, id: id}]
		if !ok {
			return cards.Card{}, false
		}
		return s.cards[i].Clone(), true
	}
	for _, c := range s.cards {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return cards.Card{}, false
}

// ByTCG returns the cards of one game in catalog order.
func (s *Store) ByTCG(tcg string) []cards.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]cards.Card, 0)
	for _, c := range s.cards {
		if c.TCG == tcg {
			out = append(out, c)
		}
	}
	return out
}

// TCGs returns the games present in the catalog, in first-seen order.
func (s *Store) TCGs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tcgs)
}

// Vocabulary derives the types and rarities used by one game's cards.
func (s *Store) Vocabulary(tcg string) cards.Vocabulary {
	return cards.Derive(s.ByTCG(tcg))
}
