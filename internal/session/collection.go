package session

import (
	"context"
	"fmt"

	"github.com/Silonidas/card-verse-architect/internal/cards"
	"github.com/Silonidas/card-verse-architect/internal/collection"
	"github.com/Silonidas/card-verse-architect/internal/events"
	"github.com/Silonidas/card-verse-architect/internal/query"
	"github.com/Silonidas/card-verse-architect/internal/stats"
)

// CollectionView queries the owned cards. An open TCG filter is scoped to
// the selected game.
func (s *Session) CollectionView(f query.Filter) []collection.OwnedCard {
	return query.Collection(s.collection.List(), s.scope(f))
}

// CollectionStats summarises the owned cards matching f.
func (s *Session) CollectionStats(f query.Filter) stats.CollectionStats {
	return stats.Collection(s.CollectionView(f))
}

// AddToCollection adds one copy of a catalog card. Returns false when the
// card is not in the catalog.
func (s *Session) AddToCollection(ctx context.Context, cardID string) (collection.OwnedCard, bool) {
	card, ok := s.lookupCard(cardID)
	if !ok {
		s.logger.Debug("Card not in catalog", "card", cardID)
		return collection.OwnedCard{}, false
	}
	return s.addOwned(ctx, card), true
}

func (s *Session) addOwned(ctx context.Context, card cards.Card) collection.OwnedCard {
	entry := s.collection.Add(card)
	s.logger.Debug("Added to collection", "card", card.ID, "name", card.Name, "quantity", entry.Quantity)
	s.collectionUpdated(ctx, card.ID, "add")
	return entry
}

// RemoveFromCollection removes one copy of cardID. Returns false when the
// card is not owned.
func (s *Session) RemoveFromCollection(ctx context.Context, cardID string) bool {
	if !s.collection.Remove(cardID) {
		return false
	}
	s.logger.Debug("Removed from collection", "card", cardID, "quantity", s.collection.Quantity(cardID))
	s.collectionUpdated(ctx, cardID, "remove")
	return true
}

// SetCondition parses condition and applies it to an owned card.
func (s *Session) SetCondition(ctx context.Context, cardID, condition string) (bool, error) {
	c, err := cards.ParseCondition(condition)
	if err != nil {
		return false, &AppError{
			Message: fmt.Sprintf("Unknown condition %q", condition),
			Err:     err,
		}
	}
	ok, err := s.collection.SetCondition(cardID, c)
	if err != nil || !ok {
		return ok, err
	}
	s.collectionUpdated(ctx, cardID, "condition")
	return true, nil
}

// ToggleFavorite flips the favorite flag of an owned card.
func (s *Session) ToggleFavorite(ctx context.Context, cardID string) (favorite, ok bool) {
	favorite, ok = s.collection.ToggleFavorite(cardID)
	if ok {
		s.collectionUpdated(ctx, cardID, "favorite")
	}
	return favorite, ok
}

func (s *Session) collectionUpdated(ctx context.Context, cardID, action string) {
	s.dispatcher.Dispatch(events.NewTypedEvent(ctx, events.TypeCollectionUpdated, events.CollectionUpdatedEvent{
		CardID:   cardID,
		Action:   action,
		Quantity: s.collection.Quantity(cardID),
	}))
}
