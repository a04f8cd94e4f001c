package stats

import (
	"strconv"
	"strings"

	"github.com/Silonidas/card-verse-architect/internal/deck"
)

// Bucket is one labelled bar or slice of a distribution.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MaxCurveCost is the last individual cost bucket; higher costs share the
// overflow bucket.
const MaxCurveCost = 5

// PowerBand is a half-open power range starting at Min. Bands are listed in
// ascending order and the last band has no upper bound. Values below the
// first band's Min are not counted.
type PowerBand struct {
	Label string
	Min   int
}

// DefaultPowerBands fits Digimon DP values.
func DefaultPowerBands() []PowerBand {
	return []PowerBand{
		{Label: "0-2999", Min: 0},
		{Label: "3000-5999", Min: 3000},
		{Label: "6000-8999", Min: 6000},
		{Label: "9000-11999", Min: 9000},
		{Label: "12000+", Min: 12000},
	}
}

// DeckStats is derived from a deck's entries on every call; nothing is cached.
type DeckStats struct {
	TotalCards  int     `json:"totalCards"`
	UniqueCards int     `json:"uniqueCards"`
	AverageCost float64 `json:"averageCost"`

	// Always MaxCurveCost+2 buckets: "0".."5" then "6+"
	CostCurve []Bucket `json:"costCurve"`

	// Zero-count groups are omitted; groups appear in first-seen order
	Types      []Bucket `json:"types"`
	Rarities   []Bucket `json:"rarities"`
	Colors     []Bucket `json:"colors"`
	PowerBands []Bucket `json:"powerBands"`
}

// Options tunes the secondary distributions.
type Options struct {
	PowerBands []PowerBand
}

// Deck computes statistics for entries using the default power bands.
func Deck(entries []deck.Entry) DeckStats {
	return DeckWith(entries, Options{})
}

// DeckWith computes statistics for entries.
func DeckWith(entries []deck.Entry, opts Options) DeckStats {
	bands := opts.PowerBands
	if len(bands) == 0 {
		bands = DefaultPowerBands()
	}

	s := DeckStats{
		CostCurve: make([]Bucket, MaxCurveCost+2),
	}
	for i := 0; i <= MaxCurveCost; i++ {
		s.CostCurve[i].Label = strconv.Itoa(i)
	}
	s.CostCurve[MaxCurveCost+1].Label = strconv.Itoa(MaxCurveCost+1) + "+"

	types := newCounter()
	rarities := newCounter()
	colors := newCounter()
	power := make([]int, len(bands))

	totalCost := 0
	for _, e := range entries {
		if e.Quantity <= 0 {
			continue
		}
		qty := e.Quantity
		s.TotalCards += qty
		s.UniqueCards++

		cost := ParseNumber(e.Card.ManaCost)
		totalCost += cost * qty
		s.CostCurve[min(cost, MaxCurveCost+1)].Count += qty

		types.add(labelOr(e.Card.Type, "unknown"), qty)
		rarities.add(labelOr(e.Card.Rarity, "unknown"), qty)
		colors.add(colorLabel(e.Card.Color), qty)
		if i := bandIndex(bands, ParseNumber(e.Card.Power)); i >= 0 {
			power[i] += qty
		}
	}

	if s.TotalCards > 0 {
		s.AverageCost = float64(totalCost) / float64(s.TotalCards)
	}
	s.Types = types.buckets()
	s.Rarities = rarities.buckets()
	s.Colors = colors.buckets()

	s.PowerBands = make([]Bucket, 0, len(bands))
	for i, b := range bands {
		if power[i] > 0 {
			s.PowerBands = append(s.PowerBands, Bucket{Label: b.Label, Count: power[i]})
		}
	}
	return s
}

// GroupByType splits entries by card type, keeping first-seen order.
func GroupByType(entries []deck.Entry) map[string][]deck.Entry {
	out := make(map[string][]deck.Entry)
	for _, e := range entries {
		t := labelOr(e.Card.Type, "unknown")
		out[t] = append(out[t], e)
	}
	return out
}

// bandIndex returns the band containing v, or -1 when v is below every band.
func bandIndex(bands []PowerBand, v int) int {
	idx := -1
	for i, b := range bands {
		if v >= b.Min {
			idx = i
		}
	}
	return idx
}

func labelOr(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

// colorLabel normalizes the explicit colour field. Multi-colour cards list
// their colours separated by "/" or ",".
func colorLabel(color string) string {
	color = strings.ToLower(strings.TrimSpace(color))
	switch {
	case color == "":
		return "colorless"
	case strings.ContainsAny(color, "/,"):
		return "multicolor"
	default:
		return color
	}
}

// counter sums quantities per label in first-seen order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string, qty int) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label] += qty
}

func (c *counter) buckets() []Bucket {
	out := make([]Bucket, 0, len(c.order))
	for _, label := range c.order {
		if n := c.counts[label]; n > 0 {
			out = append(out, Bucket{Label: label, Count: n})
		}
	}
	return out
}
