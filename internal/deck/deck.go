// Package deck manages named decks, each holding a quantity-tracked subset
// of the catalog.
package deck

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Silonidas/card-verse-architect/internal/cards"
)

var (
	// ErrEmptyName is returned when a deck is created or updated without a name.
	ErrEmptyName = errors.New("deck name is required")

	// ErrCopyLimit is returned when adding a card would exceed the copy cap.
	ErrCopyLimit = errors.New("copy limit reached")
)

// DefaultMaxCopies is the per-card cap applied when no policy is configured.
const DefaultMaxCopies = 4

// Policy holds the deck-building rules enforced by the ledger.
type Policy struct {
	// MaxCopies caps the quantity of any single card in a deck. 0 disables the cap.
	MaxCopies int `toml:"max_copies"`
}

// DefaultPolicy returns the policy used when none is given.
func DefaultPolicy() Policy {
	return Policy{MaxCopies: DefaultMaxCopies}
}

// Allows reports whether a card may be held at quantity qty.
func (p Policy) Allows(qty int) bool {
	return p.MaxCopies <= 0 || qty <= p.MaxCopies
}

// Meta is the user-editable part of a deck.
type Meta struct {
	Name        string `json:"name"`
	Format      string `json:"format"`
	Description string `json:"description,omitempty"`
	// CoverCard references a card id; it does not imply the card is in the deck.
	CoverCard string `json:"coverCard,omitempty"`
}

// Validate checks the metadata before any mutation happens.
func (m Meta) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Entry is one card in a deck with its quantity.
type Entry struct {
	Card     cards.Card `json:"card"`
	Quantity int        `json:"quantity"`
}

// Deck is a named, ordered list of entries.
type Deck struct {
	ID string `json:"id"`
	Meta
	Cards      []Entry   `json:"cards"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// CardCount returns the sum of all entry quantities.
func (d Deck) CardCount() int {
	total := 0
	for _, e := range d.Cards {
		total += e.Quantity
	}
	return total
}

// Quantity returns the quantity of cardID in the deck (0 if absent).
func (d Deck) Quantity(cardID string) int {
	if i := d.indexOf(cardID); i >= 0 {
		return d.Cards[i].Quantity
	}
	return 0
}

func (d *Deck) indexOf(cardID string) int {
	for i := range d.Cards {
		if d.Cards[i].Card.ID == cardID {
			return i
		}
	}
	return -1
}

func (d Deck) clone() Deck {
	out := d
	out.Cards = make([]Entry, len(d.Cards))
	for i, e := range d.Cards {
		out.Cards[i] = Entry{Card: e.Card.Clone(), Quantity: e.Quantity}
	}
	return out
}

func (e Entry) String() string {
	return fmt.Sprintf("%dx %s", e.Quantity, e.Card.Name)
}
