// Package session is the application state shared by every user intent:
// the catalog, both ledgers, the selected game and the event dispatcher.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/Silonidas/card-verse-architect/internal/cards"
	"github.com/Silonidas/card-verse-architect/internal/catalog"
	"github.com/Silonidas/card-verse-architect/internal/collection"
	"github.com/Silonidas/card-verse-architect/internal/deck"
	"github.com/Silonidas/card-verse-architect/internal/events"
	"github.com/Silonidas/card-verse-architect/internal/query"
	"github.com/Silonidas/card-verse-architect/internal/storage"
)

// ErrUnknownTCG is returned when selecting a game that neither the catalog
// nor the configured vocabularies know about.
var ErrUnknownTCG = errors.New("unknown card game")

// AppError represents an application error with a user-friendly message.
type AppError struct {
	Message string `json:"message"`
	Err     error  `json:"-"` // Wrapped error for errors.Is/As chain
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As chain.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Config holds the collaborators of a Session. Nil fields get empty defaults.
type Config struct {
	Catalog      *catalog.Store
	Collection   *collection.Ledger
	Decks        *deck.Ledger
	Dispatcher   *events.EventDispatcher
	Vocabularies cards.Vocabularies

	// SelectedTCG is the game selected at start.
	SelectedTCG string

	// DefaultSort applies to filters that leave Sort empty.
	DefaultSort query.SortKey

	Logger *slog.Logger
}

// Session owns the application state. It is not safe for concurrent use.
type Session struct {
	catalog      *catalog.Store
	collection   *collection.Ledger
	decks        *deck.Ledger
	dispatcher   *events.EventDispatcher
	vocabularies cards.Vocabularies
	defaultSort  query.SortKey
	logger       *slog.Logger

	selected string
}

// New creates a session from cfg.
func New(cfg Config) *Session {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.NewStore(cfg.Logger)
	}
	if cfg.Collection == nil {
		cfg.Collection = collection.NewLedger()
	}
	if cfg.Decks == nil {
		cfg.Decks = deck.NewLedger()
	}
	if cfg.Dispatcher == nil {
		cfg.Dispatcher = events.NewEventDispatcher(cfg.Logger)
	}
	if cfg.Vocabularies == nil {
		cfg.Vocabularies = cards.DefaultVocabularies()
	}
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = query.SortName
	}

	return &Session{
		catalog:      cfg.Catalog,
		collection:   cfg.Collection,
		decks:        cfg.Decks,
		dispatcher:   cfg.Dispatcher,
		vocabularies: cfg.Vocabularies,
		defaultSort:  cfg.DefaultSort,
		logger:       cfg.Logger,
		selected:     cfg.SelectedTCG,
	}
}

// Catalog returns the catalog store.
func (s *Session) Catalog() *catalog.Store { return s.catalog }

// Collection returns the collection ledger.
func (s *Session) Collection() *collection.Ledger { return s.collection }

// Decks returns the deck ledger.
func (s *Session) Decks() *deck.Ledger { return s.decks }

// Dispatcher returns the event dispatcher observers register with.
func (s *Session) Dispatcher() *events.EventDispatcher { return s.dispatcher }

// SelectedTCG returns the currently selected game.
func (s *Session) SelectedTCG() string {
	return s.selected
}

// TCGs returns the selectable games: those in the catalog first, then any
// configured games the catalog lacks, sorted.
func (s *Session) TCGs() []string {
	out := s.catalog.TCGs()
	var extra []string
	for name := range s.vocabularies {
		if !slices.Contains(out, name) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}

// SelectTCG changes the selected game and dispatches tcg:changed. Selecting
// the current game again is a no-op.
func (s *Session) SelectTCG(ctx context.Context, tcg string) error {
	tcg = strings.TrimSpace(tcg)
	if !slices.Contains(s.TCGs(), tcg) {
		return &AppError{
			Message: fmt.Sprintf("Unknown card game: %q", tcg),
			Err:     ErrUnknownTCG,
		}
	}
	if tcg == s.selected {
		return nil
	}

	previous := s.selected
	s.selected = tcg
	s.logger.Debug("Selected card game", "previous", previous, "current", tcg)
	s.dispatcher.Dispatch(events.NewTypedEvent(ctx, events.TypeTCGChanged, events.TCGChangedEvent{
		Previous: previous,
		Current:  tcg,
	}))
	return nil
}

// Vocabulary returns the type and rarity vocabulary of the selected game:
// the configured one when present, otherwise derived from the catalog.
func (s *Session) Vocabulary() cards.Vocabulary {
	if v, ok := s.vocabularies.Lookup(s.selected); ok {
		return v
	}
	return s.catalog.Vocabulary(s.selected)
}

// ValidateCatalog checks every catalog card against the configured
// vocabularies and returns one problem per offending card.
func (s *Session) ValidateCatalog() []error {
	var problems []error
	for _, c := range s.catalog.Cards() {
		if err := s.vocabularies.Validate(c); err != nil {
			problems = append(problems, err)
		}
	}
	return problems
}

// Snapshot captures the persisted state.
func (s *Session) Snapshot() *storage.Snapshot {
	return storage.Capture(s.selected, s.collection, s.decks)
}

// Restore loads persisted state into the ledgers. A snapshot without a
// selected game, or with one no longer selectable, keeps the current
// selection. Returns the number of records that were skipped as invalid.
func (s *Session) Restore(snap *storage.Snapshot) int {
	skipped := s.collection.Restore(snap.CollectionEntries())
	skipped += s.decks.Restore(snap.DeckList())
	switch {
	case snap.SelectedTCG == "":
	case slices.Contains(s.TCGs(), snap.SelectedTCG):
		s.selected = snap.SelectedTCG
	default:
		s.logger.Warn("Saved card game is not available, keeping current selection",
			"saved", snap.SelectedTCG, "current", s.selected)
	}
	if skipped > 0 {
		s.logger.Warn("Skipped invalid snapshot records", "count", skipped)
	}
	return skipped
}

// lookupCard finds a catalog card, preferring the selected game.
func (s *Session) lookupCard(cardID string) (cards.Card, bool) {
	if c, ok := s.catalog.ByID(s.selected, cardID); ok {
		return c, true
	}
	return s.catalog.ByID("", cardID)
}

// scope fills in the selected game and default sort. An empty TCG means
// the selected game; query.All is left alone and matches every game.
func (s *Session) scope(f query.Filter) query.Filter {
	if f.TCG == "" {
		f.TCG = s.selected
	}
	if f.Sort == "" {
		f.Sort = s.defaultSort
	}
	return f
}

// Browse queries the catalog. An open TCG filter is scoped to the selected game.
func (s *Session) Browse(f query.Filter) []cards.Card {
	return query.Catalog(s.catalog.Cards(), s.scope(f))
}

// Suggest returns names from the selected game close to term, for the
// "no results" state of a search.
func (s *Session) Suggest(term string, limit int) []string {
	return query.Suggest(s.catalog.ByTCG(s.selected), term, limit)
}
