package cards

// Card represents one catalog entry. Ledgers hold their own copies; the
// catalog's slice is never modified after it is published.
type Card struct {
	// Unique within one TCG catalog
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	ImageURL string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`

	// Vocabulary depends on the TCG (e.g. "digimon", "tamer", "option")
	Type   string `json:"type" yaml:"type"`
	Rarity string `json:"rarity" yaml:"rarity"`
	Set    string `json:"set,omitempty" yaml:"set,omitempty"`
	TCG    string `json:"tcg" yaml:"tcg"`

	// Free-text numeric fields; see stats.ParseNumber for how they are read
	Power     string `json:"power,omitempty" yaml:"power,omitempty"`
	Toughness string `json:"toughness,omitempty" yaml:"toughness,omitempty"`
	Level     string `json:"level,omitempty" yaml:"level,omitempty"`
	ManaCost  string `json:"manaCost,omitempty" yaml:"manaCost,omitempty"`

	Color       string   `json:"color,omitempty" yaml:"color,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" yaml:"price,omitempty"`
}

// PriceOrZero returns the card price, treating a missing price as 0.
func (c Card) PriceOrZero() float64 {
	if c.Price == nil {
		return 0
	}
	return *c.Price
}

// Clone returns a copy that shares no pointers with c.
func (c Card) Clone() Card {
	if c.Price != nil {
		p := *c.Price
		c.Price = &p
	}
	return c
}

// Price is a helper for building cards with a price literal.
func Price(v float64) *float64 {
	return &v
}
