// Package collection tracks how many copies of each card the user owns,
// along with the condition and favorite flag of the owned copies.
package collection

import (
	"fmt"
	"time"

	"github.com/Silonidas/card-verse-architect/internal/cards"
)

// OwnedCard is one collection entry. Quantity is always at least 1; an
// entry that would drop to 0 is removed instead.
type OwnedCard struct {
	Card      cards.Card      `json:"card"`
	Quantity  int             `json:"quantity"`
	Condition cards.Condition `json:"condition"`
	Favorite  bool            `json:"favorite"`
	AddedAt   time.Time       `json:"addedAt"`
}

// Ledger maps card id to owned entry. It is not safe for concurrent use;
// callers serialize access the same way the session does.
type Ledger struct {
	entries map[string]OwnedCard
	order   []string

	defaultCondition cards.Condition
	now              func() time.Time
	version          uint64
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithDefaultCondition sets the condition given to newly created entries.
func WithDefaultCondition(c cards.Condition) Option {
	return func(l *Ledger) {
		if c.Valid() {
			l.defaultCondition = c
		}
	}
}

// WithClock overrides the clock used for AddedAt.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// NewLedger creates an empty collection ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		entries:          make(map[string]OwnedCard),
		defaultCondition: cards.ConditionNearMint,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add increments the quantity of card, creating the entry with quantity 1
// and the default condition when the card is not yet owned. The input card
// is copied, never retained. The returned entry is a fresh value.
func (l *Ledger) Add(card cards.Card) OwnedCard {
	entry, ok := l.entries[card.ID]
	if ok {
		entry.Quantity++
	} else {
		entry = OwnedCard{
			Card:      card.Clone(),
			Quantity:  1,
			Condition: l.defaultCondition,
			AddedAt:   l.now(),
		}
		l.order = append(l.order, card.ID)
	}
	l.entries[card.ID] = entry
	l.version++
	return entry
}

// Remove decrements the quantity of cardID, deleting the entry when it
// reaches 0. Removing a card that is not owned is a no-op and returns false.
func (l *Ledger) Remove(cardID string) bool {
	entry, ok := l.entries[cardID]
	if !ok {
		return false
	}

	if entry.Quantity > 1 {
		entry.Quantity--
		l.entries[cardID] = entry
	} else {
		l.delete(cardID)
	}
	l.version++
	return true
}

// SetCondition replaces the condition of an owned card. It returns false
// without error when the card is not owned.
func (l *Ledger) SetCondition(cardID string, c cards.Condition) (bool, error) {
	if !c.Valid() {
		return false, fmt.Errorf("set condition of %s: %w: %q", cardID, cards.ErrInvalidCondition, c)
	}
	entry, ok := l.entries[cardID]
	if !ok {
		return false, nil
	}
	entry.Condition = c
	l.entries[cardID] = entry
	l.version++
	return true, nil
}

// ToggleFavorite flips the favorite flag of an owned card and returns the
// new value. ok is false when the card is not owned.
func (l *Ledger) ToggleFavorite(cardID string) (favorite, ok bool) {
	entry, ok := l.entries[cardID]
	if !ok {
		return false, false
	}
	entry.Favorite = !entry.Favorite
	l.entries[cardID] = entry
	l.version++
	return entry.Favorite, true
}

// Get returns a copy of the entry for cardID.
func (l *Ledger) Get(cardID string) (OwnedCard, bool) {
	entry, ok := l.entries[cardID]
	return entry, ok
}

// Quantity returns how many copies of cardID are owned (0 if none).
func (l *Ledger) Quantity(cardID string) int {
	return l.entries[cardID].Quantity
}

// List returns all entries in the order they were first added.
func (l *Ledger) List() []OwnedCard {
	out := make([]OwnedCard, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.entries[id])
	}
	return out
}

// Len returns the number of distinct owned cards.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Version increases on every mutation, so consumers can detect change
// without diffing entries.
func (l *Ledger) Version() uint64 {
	return l.version
}

// Restore replaces the ledger contents with entries, typically loaded from
// a snapshot. Entries with quantity below 1 or an empty id are skipped and
// duplicates keep the first occurrence.
func (l *Ledger) Restore(entries []OwnedCard) int {
	l.entries = make(map[string]OwnedCard, len(entries))
	l.order = l.order[:0]

	skipped := 0
	for _, e := range entries {
		if e.Card.ID == "" || e.Quantity < 1 {
			skipped++
			continue
		}
		if _, dup := l.entries[e.Card.ID]; dup {
			skipped++
			continue
		}
		if !e.Condition.Valid() {
			e.Condition = l.defaultCondition
		}
		l.entries[e.Card.ID] = e
		l.order = append(l.order, e.Card.ID)
	}
	l.version++
	return skipped
}

func (l *Ledger) delete(cardID string) {
	delete(l.entries, cardID)
	for i, id := range l.order {
		if id == cardID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			return
		}
	}
}
