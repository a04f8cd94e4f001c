package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Silonidas/card-verse-architect/internal/cards"
	"github.com/Silonidas/card-verse-architect/internal/deck"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"normal value", "3", 3},
		{"zero", "0", 0},
		{"large value", "15000", 15000},
		{"trailing text", "7000+", 7000},
		{"padded", " 4 ", 4},
		{"asterisk", "*", 0},
		{"empty string", "", 0},
		{"negative value", "-1", 0},
		{"invalid input", "X", 0},
		{"mana symbols", "{2}{R}", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseNumber(tt.input); got != tt.want {
				t.Errorf("ParseNumber(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func curveCounts(s DeckStats) map[string]int {
	out := make(map[string]int)
	for _, b := range s.CostCurve {
		out[b.Label] = b.Count
	}
	return out
}

func sum(bs []Bucket) int {
	total := 0
	for _, b := range bs {
		total += b.Count
	}
	return total
}

func TestCostCurveSingleEntry(t *testing.T) {
	s := Deck([]deck.Entry{
		{Card: cards.Card{ID: "x", ManaCost: "3"}, Quantity: 2},
	})

	require.Len(t, s.CostCurve, 7)
	for label, count := range curveCounts(s) {
		if label == "3" {
			assert.Equal(t, 2, count)
		} else {
			assert.Equal(t, 0, count, "bucket %s", label)
		}
	}
}

func TestCostCurveBuckets(t *testing.T) {
	s := Deck([]deck.Entry{
		{Card: cards.Card{ID: "a", ManaCost: ""}, Quantity: 1},
		{Card: cards.Card{ID: "b", ManaCost: "5"}, Quantity: 2},
		{Card: cards.Card{ID: "c", ManaCost: "6"}, Quantity: 3},
		{Card: cards.Card{ID: "d", ManaCost: "13"}, Quantity: 1},
		{Card: cards.Card{ID: "e", ManaCost: "X"}, Quantity: 4},
	})

	counts := curveCounts(s)
	assert.Equal(t, 5, counts["0"])
	assert.Equal(t, 2, counts["5"])
	assert.Equal(t, 4, counts["6+"])
	assert.InDelta(t, float64(10+18+13)/11, s.AverageCost, 1e-9)
}

func TestDeckSumInvariants(t *testing.T) {
	entries := []deck.Entry{
		{Card: cards.Card{ID: "1", Type: "digimon", Rarity: "C", ManaCost: "3", Power: "3000", Color: "Red"}, Quantity: 4},
		{Card: cards.Card{ID: "2", Type: "digimon", Rarity: "SR", ManaCost: "12", Power: "11000", Color: "Red"}, Quantity: 1},
		{Card: cards.Card{ID: "3", Type: "tamer", Rarity: "R", ManaCost: "2", Color: "Red/Blue"}, Quantity: 2},
		{Card: cards.Card{ID: "4", Type: "", Rarity: "", ManaCost: "?"}, Quantity: 3},
	}

	s := Deck(entries)
	assert.Equal(t, 10, s.TotalCards)
	assert.Equal(t, 4, s.UniqueCards)
	assert.Equal(t, s.TotalCards, sum(s.CostCurve))
	assert.Equal(t, s.TotalCards, sum(s.Types))
	assert.Equal(t, s.TotalCards, sum(s.Rarities))
	assert.Equal(t, s.TotalCards, sum(s.Colors))
	assert.Equal(t, s.TotalCards, sum(s.PowerBands))

	assert.Equal(t, []Bucket{{"digimon", 5}, {"tamer", 2}, {"unknown", 3}}, s.Types)
	assert.Equal(t, []Bucket{{"red", 5}, {"multicolor", 2}, {"colorless", 3}}, s.Colors)
}

func TestPowerBandsOmitEmpty(t *testing.T) {
	s := Deck([]deck.Entry{
		{Card: cards.Card{ID: "1", Power: "7000"}, Quantity: 2},
		{Card: cards.Card{ID: "2", Power: "15000"}, Quantity: 1},
	})

	assert.Equal(t, []Bucket{{"6000-8999", 2}, {"12000+", 1}}, s.PowerBands)
}

func TestCustomPowerBands(t *testing.T) {
	s := DeckWith([]deck.Entry{
		{Card: cards.Card{ID: "1", Power: "2"}, Quantity: 3},
		{Card: cards.Card{ID: "2", Power: "5"}, Quantity: 1},
	}, Options{PowerBands: []PowerBand{{"0-3", 0}, {"4+", 4}}})

	assert.Equal(t, []Bucket{{"0-3", 3}, {"4+", 1}}, s.PowerBands)
}

func TestPowerBelowFirstBandNotCounted(t *testing.T) {
	s := DeckWith([]deck.Entry{
		{Card: cards.Card{ID: "1"}, Quantity: 2},
		{Card: cards.Card{ID: "2", Power: "4000"}, Quantity: 1},
		{Card: cards.Card{ID: "3", Power: "6000"}, Quantity: 1},
	}, Options{PowerBands: []PowerBand{{"5000+", 5000}}})

	assert.Equal(t, []Bucket{{"5000+", 1}}, s.PowerBands)
	assert.Equal(t, 4, s.TotalCards)
}

func TestEmptyDeck(t *testing.T) {
	s := Deck(nil)
	assert.Equal(t, 0, s.TotalCards)
	assert.Equal(t, 0.0, s.AverageCost)
	assert.Len(t, s.CostCurve, 7)
	assert.Empty(t, s.Types)
	assert.Empty(t, s.PowerBands)
}

func TestGroupByType(t *testing.T) {
	groups := GroupByType([]deck.Entry{
		{Card: cards.Card{ID: "1", Type: "digimon"}, Quantity: 1},
		{Card: cards.Card{ID: "2", Type: "option"}, Quantity: 2},
		{Card: cards.Card{ID: "3", Type: "digimon"}, Quantity: 1},
	})

	require.Len(t, groups["digimon"], 2)
	assert.Equal(t, "3", groups["digimon"][1].Card.ID)
	assert.Len(t, groups["option"], 1)
}
