package stats

import (
	"github.com/Silonidas/card-verse-architect/internal/collection"
)

// CollectionStats summarizes owned cards.
type CollectionStats struct {
	TotalCards     int     `json:"totalCards"`
	UniqueCards    int     `json:"uniqueCards"`
	Favorites      int     `json:"favorites"`
	EstimatedValue float64 `json:"estimatedValue"`

	// Price of the single most valuable card; MostValuableID is empty when
	// no owned card has a price
	MostValuable   float64 `json:"mostValuable"`
	MostValuableID string  `json:"mostValuableId,omitempty"`

	Rarities   []Bucket `json:"rarities"`
	Conditions []Bucket `json:"conditions"`
}

// Collection computes statistics over owned entries. A missing price
// counts as 0.
func Collection(entries []collection.OwnedCard) CollectionStats {
	var s CollectionStats
	rarities := newCounter()
	conditions := newCounter()

	for _, e := range entries {
		if e.Quantity <= 0 {
			continue
		}
		s.TotalCards += e.Quantity
		s.UniqueCards++
		if e.Favorite {
			s.Favorites++
		}

		price := e.Card.PriceOrZero()
		s.EstimatedValue += price * float64(e.Quantity)
		if price > s.MostValuable {
			s.MostValuable = price
			s.MostValuableID = e.Card.ID
		}

		rarities.add(labelOr(e.Card.Rarity, "unknown"), e.Quantity)
		conditions.add(labelOr(string(e.Condition), "unknown"), e.Quantity)
	}

	s.Rarities = rarities.buckets()
	s.Conditions = conditions.buckets()
	return s
}
