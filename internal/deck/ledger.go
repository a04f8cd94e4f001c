package deck

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Silonidas/card-verse-architect/internal/cards"
)

// Ledger stores decks in creation order. Missing decks and cards are
// treated as no-ops: the affected call returns false and changes nothing.
type Ledger struct {
	decks  map[string]*Deck
	order  []string
	policy Policy

	newID func() string
	now   func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithPolicy sets the deck-building policy.
func WithPolicy(p Policy) Option {
	return func(l *Ledger) {
		l.policy = p
	}
}

// WithIDGenerator overrides how deck ids are allocated.
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) {
		l.newID = fn
	}
}

// WithClock overrides the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// NewLedger creates an empty deck ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		decks:  make(map[string]*Deck),
		policy: DefaultPolicy(),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Policy returns the policy in effect.
func (l *Ledger) Policy() Policy {
	return l.policy
}

// Create stores a new empty deck. Metadata is validated first, so a
// rejected call leaves the ledger untouched.
func (l *Ledger) Create(meta Meta) (Deck, error) {
	if err := meta.Validate(); err != nil {
		return Deck{}, err
	}

	id := l.newID()
	for l.decks[id] != nil {
		id = l.newID()
	}

	now := l.now()
	d := &Deck{
		ID:         id,
		Meta:       meta,
		Cards:      []Entry{},
		CreatedAt:  now,
		ModifiedAt: now,
	}
	l.decks[id] = d
	l.order = append(l.order, id)
	return d.clone(), nil
}

// Update replaces the metadata of deckID, leaving its cards alone.
func (l *Ledger) Update(deckID string, meta Meta) (bool, error) {
	if err := meta.Validate(); err != nil {
		return false, err
	}
	d, ok := l.decks[deckID]
	if !ok {
		return false, nil
	}
	d.Meta = meta
	d.ModifiedAt = l.now()
	return true, nil
}

// Delete removes deckID entirely.
func (l *Ledger) Delete(deckID string) bool {
	if _, ok := l.decks[deckID]; !ok {
		return false
	}
	delete(l.decks, deckID)
	for i, id := range l.order {
		if id == deckID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// AddCard adds one copy of card to deckID. A card not yet in the deck is
// appended with quantity 1. ErrCopyLimit is returned, without mutation,
// when the policy cap would be exceeded.
func (l *Ledger) AddCard(deckID string, card cards.Card) (bool, error) {
	d, ok := l.decks[deckID]
	if !ok {
		return false, nil
	}

	i := d.indexOf(card.ID)
	next := 1
	if i >= 0 {
		next = d.Cards[i].Quantity + 1
	}
	if !l.policy.Allows(next) {
		return false, fmt.Errorf("add %s to deck %s: %w (max %d)", card.Name, d.Name, ErrCopyLimit, l.policy.MaxCopies)
	}

	if i >= 0 {
		d.Cards[i].Quantity = next
	} else {
		d.Cards = append(d.Cards, Entry{Card: card.Clone(), Quantity: 1})
	}
	d.ModifiedAt = l.now()
	return true, nil
}

// CanAdd reports whether one more copy of cardID fits in deckID.
func (l *Ledger) CanAdd(deckID, cardID string) bool {
	d, ok := l.decks[deckID]
	if !ok {
		return false
	}
	return l.policy.Allows(d.Quantity(cardID) + 1)
}

// RemoveCard removes one copy of cardID from deckID, dropping the entry
// when its quantity reaches 0.
func (l *Ledger) RemoveCard(deckID, cardID string) bool {
	d, ok := l.decks[deckID]
	if !ok {
		return false
	}
	i := d.indexOf(cardID)
	if i < 0 {
		return false
	}

	if d.Cards[i].Quantity > 1 {
		d.Cards[i].Quantity--
	} else {
		d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
	}
	d.ModifiedAt = l.now()
	return true
}

// Get returns a copy of deckID.
func (l *Ledger) Get(deckID string) (Deck, bool) {
	d, ok := l.decks[deckID]
	if !ok {
		return Deck{}, false
	}
	return d.clone(), true
}

// List returns copies of all decks in creation order.
func (l *Ledger) List() []Deck {
	out := make([]Deck, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.decks[id].clone())
	}
	return out
}

// Len returns the number of decks.
func (l *Ledger) Len() int {
	return len(l.decks)
}

// Restore replaces the ledger contents, typically from a snapshot. Decks
// without an id or name are skipped, duplicate card entries are merged,
// zero quantities dropped, and quantities above the cap clamped.
func (l *Ledger) Restore(decks []Deck) int {
	l.decks = make(map[string]*Deck, len(decks))
	l.order = l.order[:0]

	skipped := 0
	for _, d := range decks {
		if d.ID == "" || d.Meta.Validate() != nil {
			skipped++
			continue
		}
		if _, dup := l.decks[d.ID]; dup {
			skipped++
			continue
		}

		restored := &Deck{
			ID:         d.ID,
			Meta:       d.Meta,
			Cards:      []Entry{},
			CreatedAt:  d.CreatedAt,
			ModifiedAt: d.ModifiedAt,
		}
		for _, e := range d.Cards {
			if e.Quantity < 1 || e.Card.ID == "" {
				continue
			}
			if i := restored.indexOf(e.Card.ID); i >= 0 {
				restored.Cards[i].Quantity += e.Quantity
			} else {
				restored.Cards = append(restored.Cards, Entry{Card: e.Card.Clone(), Quantity: e.Quantity})
			}
		}
		if l.policy.MaxCopies > 0 {
			for i := range restored.Cards {
				restored.Cards[i].Quantity = min(restored.Cards[i].Quantity, l.policy.MaxCopies)
			}
		}

		l.decks[d.ID] = restored
		l.order = append(l.order, d.ID)
	}
	return skipped
}
