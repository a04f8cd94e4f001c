package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Silonidas/card-verse-architect/internal/cards"
	"github.com/Silonidas/card-verse-architect/internal/deck"
	"github.com/Silonidas/card-verse-architect/internal/deckexport"
	"github.com/Silonidas/card-verse-architect/internal/deckimport"
	"github.com/Silonidas/card-verse-architect/internal/events"
	"github.com/Silonidas/card-verse-architect/internal/stats"
)

// CreateDeck creates an empty deck.
func (s *Session) CreateDeck(ctx context.Context, meta deck.Meta) (deck.Deck, error) {
	d, err := s.decks.Create(meta)
	if err != nil {
		return deck.Deck{}, deckError(err)
	}
	s.logger.Debug("Created deck", "deck", d.ID, "name", d.Name)
	s.deckUpdated(ctx, d.ID, "create", "")
	return d, nil
}

// UpdateDeck replaces the metadata of a deck.
func (s *Session) UpdateDeck(ctx context.Context, deckID string, meta deck.Meta) (bool, error) {
	ok, err := s.decks.Update(deckID, meta)
	if err != nil {
		return false, deckError(err)
	}
	if ok {
		s.deckUpdated(ctx, deckID, "update", "")
	}
	return ok, nil
}

// DeleteDeck removes a deck.
func (s *Session) DeleteDeck(ctx context.Context, deckID string) bool {
	if !s.decks.Delete(deckID) {
		return false
	}
	s.logger.Debug("Deleted deck", "deck", deckID)
	s.deckUpdated(ctx, deckID, "delete", "")
	return true
}

// AddCardToDeck adds one copy of a catalog card to a deck. Returns false
// when the deck or card does not exist.
func (s *Session) AddCardToDeck(ctx context.Context, deckID, cardID string) (bool, error) {
	card, ok := s.lookupCard(cardID)
	if !ok {
		return false, nil
	}
	return s.addToDeck(ctx, deckID, card)
}

func (s *Session) addToDeck(ctx context.Context, deckID string, card cards.Card) (bool, error) {
	ok, err := s.decks.AddCard(deckID, card)
	if err != nil {
		return false, deckError(err)
	}
	if ok {
		s.deckUpdated(ctx, deckID, "add_card", card.ID)
	}
	return ok, nil
}

// RemoveCardFromDeck removes one copy of cardID from a deck.
func (s *Session) RemoveCardFromDeck(ctx context.Context, deckID, cardID string) bool {
	if !s.decks.RemoveCard(deckID, cardID) {
		return false
	}
	s.deckUpdated(ctx, deckID, "remove_card", cardID)
	return true
}

// Deck returns a copy of one deck.
func (s *Session) Deck(deckID string) (deck.Deck, bool) {
	return s.decks.Get(deckID)
}

// DeckList returns all decks in creation order.
func (s *Session) DeckList() []deck.Deck {
	return s.decks.List()
}

// DeckStats recomputes the statistics of a deck.
func (s *Session) DeckStats(deckID string) (stats.DeckStats, bool) {
	d, ok := s.decks.Get(deckID)
	if !ok {
		return stats.DeckStats{}, false
	}
	return stats.Deck(d.Cards), true
}

// SaveDeck is the hook behind an explicit "save" action. Decks are always
// open for editing, so it only records the request.
func (s *Session) SaveDeck(deckID string) bool {
	d, ok := s.decks.Get(deckID)
	if !ok {
		return false
	}
	s.logger.Info("Deck saved", "deck", d.ID, "name", d.Name, "cards", d.CardCount())
	return true
}

// ExportDeck renders a deck as text.
func (s *Session) ExportDeck(deckID string, options *deckexport.ExportOptions) (*deckexport.DeckExport, bool, error) {
	d, ok := s.decks.Get(deckID)
	if !ok {
		return nil, false, nil
	}
	result, err := deckexport.Export(d, options)
	if err != nil {
		return nil, true, &AppError{Message: fmt.Sprintf("Failed to export deck: %v", err), Err: err}
	}
	return result, true, nil
}

// ImportDeck parses a deck list against the selected game's catalog and
// stores it as a new deck. meta overrides the name and format found in the
// text when set.
func (s *Session) ImportDeck(ctx context.Context, text string, meta deck.Meta) (deck.Deck, []string, error) {
	parser := deckimport.NewParser(s.catalog.ByTCG(s.selected), s.decks.Policy())
	result, err := parser.Parse(text)
	if err != nil {
		return deck.Deck{}, nil, &AppError{Message: fmt.Sprintf("Failed to import deck: %v", err), Err: err}
	}

	if strings.TrimSpace(meta.Name) == "" {
		meta.Name = result.Name
	}
	if meta.Format == "" {
		meta.Format = result.Format
	}

	d, err := s.decks.Create(meta)
	if err != nil {
		return deck.Deck{}, result.Warnings, deckError(err)
	}
	for _, e := range result.Entries {
		for range e.Quantity {
			if _, err := s.decks.AddCard(d.ID, e.Card); err != nil {
				result.Warnings = append(result.Warnings, err.Error())
				break
			}
		}
	}

	d, _ = s.decks.Get(d.ID)
	s.logger.Debug("Imported deck", "deck", d.ID, "name", d.Name, "cards", d.CardCount(), "warnings", len(result.Warnings))
	s.deckUpdated(ctx, d.ID, "create", "")
	return d, result.Warnings, nil
}

func (s *Session) deckUpdated(ctx context.Context, deckID, action, cardID string) {
	count := 0
	if d, ok := s.decks.Get(deckID); ok {
		count = d.CardCount()
	}
	s.dispatcher.Dispatch(events.NewTypedEvent(ctx, events.TypeDeckUpdated, events.DeckUpdatedEvent{
		DeckID:    deckID,
		Action:    action,
		CardID:    cardID,
		CardCount: count,
	}))
}

func deckError(err error) error {
	switch {
	case errors.Is(err, deck.ErrEmptyName):
		return &AppError{Message: "Deck name is required", Err: err}
	case errors.Is(err, deck.ErrCopyLimit):
		return &AppError{Message: fmt.Sprintf("Cannot add card: %v", err), Err: err}
	default:
		return &AppError{Message: err.Error(), Err: err}
	}
}
