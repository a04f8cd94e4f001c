package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/Silonidas/card-verse-architect/internal/cards"
	"github.com/Silonidas/card-verse-architect/internal/deck"
)

// ZoneKind names where a card can be dragged from or dropped on.
type ZoneKind string

const (
	ZoneBrowse     ZoneKind = "browse"
	ZoneCollection ZoneKind = "collection"
	ZoneDeck       ZoneKind = "deck"
)

// Zone is one end of a card transfer. DeckID is set for deck zones only.
type Zone struct {
	Kind   ZoneKind
	DeckID string
}

// Browse is the catalog zone.
func Browse() Zone { return Zone{Kind: ZoneBrowse} }

// Collection is the collection zone.
func Collection() Zone { return Zone{Kind: ZoneCollection} }

// DeckZone is the zone of one deck.
func DeckZone(deckID string) Zone { return Zone{Kind: ZoneDeck, DeckID: deckID} }

// ParseZone parses "browse", "collection" or "deck:<id>".
func ParseZone(s string) (Zone, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case string(ZoneBrowse):
		return Browse(), nil
	case string(ZoneCollection):
		return Collection(), nil
	}
	if kind, id, ok := strings.Cut(s, ":"); ok && strings.EqualFold(kind, string(ZoneDeck)) && id != "" {
		return DeckZone(id), nil
	}
	return Zone{}, fmt.Errorf("invalid zone %q (want browse, collection or deck:<id>)", s)
}

func (z Zone) String() string {
	if z.Kind == ZoneDeck {
		return string(ZoneDeck) + ":" + z.DeckID
	}
	return string(z.Kind)
}

// TransferCard moves one copy of cardID between zones:
//
//	browse -> collection     adds to the collection
//	collection -> browse     removes from the collection
//	browse|collection -> deck adds to the deck
//	deck -> browse|collection removes from the deck
//	deck -> other deck       moves one copy
//
// A deck-to-deck move into a deck already at the copy cap is rejected
// before either deck changes. Returns false when nothing changed.
func (s *Session) TransferCard(ctx context.Context, cardID string, from, to Zone) (bool, error) {
	if from == to {
		return false, nil
	}
	s.logger.Debug("Transfer card", "card", cardID, "from", from.String(), "to", to.String())

	switch from.Kind {
	case ZoneBrowse:
		card, ok := s.lookupCard(cardID)
		if !ok {
			return false, nil
		}
		switch to.Kind {
		case ZoneCollection:
			s.addOwned(ctx, card)
			return true, nil
		case ZoneDeck:
			return s.addToDeck(ctx, to.DeckID, card)
		}

	case ZoneCollection:
		switch to.Kind {
		case ZoneBrowse:
			return s.RemoveFromCollection(ctx, cardID), nil
		case ZoneDeck:
			owned, ok := s.collection.Get(cardID)
			if !ok {
				return false, nil
			}
			return s.addToDeck(ctx, to.DeckID, owned.Card)
		}

	case ZoneDeck:
		switch to.Kind {
		case ZoneBrowse, ZoneCollection:
			return s.RemoveCardFromDeck(ctx, from.DeckID, cardID), nil
		case ZoneDeck:
			return s.moveBetweenDecks(ctx, cardID, from.DeckID, to.DeckID)
		}
	}

	return false, fmt.Errorf("unsupported transfer from %s to %s", from, to)
}

func (s *Session) moveBetweenDecks(ctx context.Context, cardID, fromID, toID string) (bool, error) {
	src, ok := s.decks.Get(fromID)
	if !ok {
		return false, nil
	}
	if _, ok := s.decks.Get(toID); !ok {
		return false, nil
	}

	var card cards.Card
	found := false
	for _, e := range src.Cards {
		if e.Card.ID == cardID {
			card, found = e.Card, true
			break
		}
	}
	if !found {
		return false, nil
	}

	if !s.decks.CanAdd(toID, cardID) {
		return false, &AppError{
			Message: fmt.Sprintf("Cannot move %s: target deck is at the copy limit", card.Name),
			Err:     deck.ErrCopyLimit,
		}
	}

	if _, err := s.addToDeck(ctx, toID, card); err != nil {
		return false, err
	}
	s.RemoveCardFromDeck(ctx, fromID, cardID)
	return true, nil
}
