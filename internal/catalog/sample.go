package catalog

import (
	"time"

	"github.com/Silonidas/card-verse-architect/internal/cards"
	"github.com/Silonidas/card-verse-architect/internal/collection"
	"github.com/Silonidas/card-verse-architect/internal/deck"
)

func placeholder(hex, text string) string {
	return "https://placehold.co/300x400/" + hex + "/FFFFFF?text=" + text
}

// SampleCatalog returns the built-in demo catalog: a starter set of
// Digimon cards plus a few Dragon Ball Super Fusion World cards.
func SampleCatalog() []cards.Card {
	return []cards.Card{
		{
			ID: "1", Name: "Agumon", ImageURL: placeholder("FFA500", "Agumon"),
			Type: "digimon", Rarity: "C", Set: "BT1-010", TCG: cards.TCGDigimon,
			Power: "3000", Level: "3", ManaCost: "3", Color: "Red", Price: cards.Price(0.25),
			Description: "[Your Turn] When this Digimon digivolves into a Digimon with [Greymon] in its name, gain 1 memory.",
		},
		{
			ID: "2", Name: "Gabumon", ImageURL: placeholder("4169E1", "Gabumon"),
			Type: "digimon", Rarity: "C", Set: "BT1-030", TCG: cards.TCGDigimon,
			Power: "3000", Level: "3", ManaCost: "3", Color: "Blue", Price: cards.Price(0.25),
			Description: "[Your Turn] When this Digimon digivolves into a Digimon with [Garurumon] in its name, gain 1 memory.",
		},
		{
			ID: "3", Name: "MetalGreymon", ImageURL: placeholder("8B4513", "MetalGreymon"),
			Type: "digimon", Rarity: "U", Set: "BT1-055", TCG: cards.TCGDigimon,
			Power: "7000", Level: "5", ManaCost: "7", Color: "Red", Price: cards.Price(1.50),
			Description: "[When Digivolving] Delete 1 of your opponent's Digimon with 4000 DP or less.",
		},
		{
			ID: "4", Name: "WarGreymon", ImageURL: placeholder("FF4500", "WarGreymon"),
			Type: "digimon", Rarity: "SR", Set: "BT1-054", TCG: cards.TCGDigimon,
			Power: "11000", Level: "6", ManaCost: "12", Color: "Red", Price: cards.Price(8.00),
			Description: "[When Digivolving] Delete all of your opponent's Digimon with 5000 DP or less. [Your Turn] This Digimon gets +2000 DP.",
		},
		{
			ID: "5", Name: "Tai Kamiya", ImageURL: placeholder("FFD700", "Tai+Kamiya"),
			Type: "tamer", Rarity: "R", Set: "BT1-085", TCG: cards.TCGDigimon,
			ManaCost: "2", Color: "Red", Price: cards.Price(3.00),
			Description: "[Start of Your Turn] If you have 2 or less memory, set your memory to 3. [Your Turn] When one of your Digimon digivolves, by suspending this Tamer, gain 1 memory.",
		},
		{
			ID: "6", Name: "Matt Ishida", ImageURL: placeholder("1E90FF", "Matt+Ishida"),
			Type: "tamer", Rarity: "R", Set: "BT1-086", TCG: cards.TCGDigimon,
			ManaCost: "2", Color: "Blue", Price: cards.Price(2.50),
			Description: "[Start of Your Turn] If you have 2 or less memory, set your memory to 3. [Your Turn] When one of your Digimon with [Garurumon] in its name attacks, by suspending this Tamer, gain 1 memory.",
		},
		{
			ID: "7", Name: "Gaia Force", ImageURL: placeholder("DC143C", "Gaia+Force"),
			Type: "option", Rarity: "U", Set: "BT1-105", TCG: cards.TCGDigimon,
			ManaCost: "6", Color: "Red", Price: cards.Price(0.75),
			Description: "[Main] Delete 1 of your opponent's Digimon with 9000 DP or less. [Security] Delete 1 of your opponent's Digimon with 6000 DP or less.",
		},
		{
			ID: "8", Name: "Omnimon", ImageURL: placeholder("C0C0C0", "Omnimon"),
			Type: "digimon", Rarity: "SEC", Set: "BT1-111", TCG: cards.TCGDigimon,
			Power: "15000", Level: "7", ManaCost: "14", Color: "Red/Blue", Price: cards.Price(45.00),
			Description: "[When Digivolving] Delete all of your opponent's Digimon with 8000 DP or less. [Your Turn] This Digimon gets +3000 DP.",
		},
		{
			ID: "9", Name: "Memory Boost!", ImageURL: placeholder("32CD32", "Memory+Boost"),
			Type: "option", Rarity: "C", Set: "BT1-109", TCG: cards.TCGDigimon,
			ManaCost: "0", Color: "Green", Price: cards.Price(0.10),
			Description: "[Main] Gain 2 memory. [Security] Gain 1 memory.",
		},
		{
			ID: "FB01-001", Name: "Son Goku", ImageURL: placeholder("FF8C00", "Son+Goku"),
			Type: "leader", Rarity: "L", Set: "FB01-001", TCG: cards.TCGDragonBall,
			Power: "20000", Color: "Red", Price: cards.Price(4.00),
			Description: "[Attack] Draw 1 card if you have 4 or more energy.",
		},
		{
			ID: "FB01-013", Name: "Vegeta", ImageURL: placeholder("1E3A8A", "Vegeta"),
			Type: "battle", Rarity: "SR", Set: "FB01-013", TCG: cards.TCGDragonBall,
			Power: "25000", ManaCost: "5", Color: "Blue", Price: cards.Price(6.50),
			Description: "[On Play] Switch up to 1 of your opponent's battle cards to rest mode.",
		},
		{
			ID: "FB01-030", Name: "Kamehameha", ImageURL: placeholder("0EA5E9", "Kamehameha"),
			Type: "extra", Rarity: "C", Set: "FB01-030", TCG: cards.TCGDragonBall,
			ManaCost: "2", Color: "Red", Price: cards.Price(0.20),
			Description: "[Main] KO up to 1 of your opponent's battle cards with 15000 power or less.",
		},
	}
}

// SampleCollection returns demo collection entries over SampleCatalog.
func SampleCollection() []collection.OwnedCard {
	owned := []struct {
		id        string
		qty       int
		condition cards.Condition
		favorite  bool
	}{
		{"1", 4, cards.ConditionNearMint, true},
		{"2", 4, cards.ConditionMint, false},
		{"3", 2, cards.ConditionExcellent, false},
		{"4", 1, cards.ConditionMint, true},
		{"5", 2, cards.ConditionNearMint, false},
		{"6", 2, cards.ConditionExcellent, true},
		{"7", 3, cards.ConditionPlayed, false},
		{"8", 1, cards.ConditionMint, true},
		{"9", 4, cards.ConditionNearMint, false},
	}

	byID := sampleByID()
	out := make([]collection.OwnedCard, 0, len(owned))
	for _, o := range owned {
		out = append(out, collection.OwnedCard{
			Card:      byID[o.id],
			Quantity:  o.qty,
			Condition: o.condition,
			Favorite:  o.favorite,
		})
	}
	return out
}

// SampleDecks returns the demo decks, every card at 4 copies.
func SampleDecks() []deck.Deck {
	byID := sampleByID()
	entries := func(ids ...string) []deck.Entry {
		out := make([]deck.Entry, 0, len(ids))
		for _, id := range ids {
			out = append(out, deck.Entry{Card: byID[id], Quantity: 4})
		}
		return out
	}

	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return []deck.Deck{
		{
			ID: "1",
			Meta: deck.Meta{
				Name: "Red Aggro", Format: "Standard", CoverCard: "4",
				Description: "A fast red deck focusing on Greymon line",
			},
			Cards:     entries("1", "3", "4"),
			CreatedAt: created, ModifiedAt: created,
		},
		{
			ID: "2",
			Meta: deck.Meta{
				Name: "Blue Control", Format: "Standard", CoverCard: "1",
				Description: "Control deck with Garurumon line",
			},
			Cards:     entries("2", "6"),
			CreatedAt: created, ModifiedAt: created,
		},
		{
			ID: "3",
			Meta: deck.Meta{
				Name: "Yellow Midrange", Format: "Standard", CoverCard: "5",
				Description: "Balanced deck with various tamers",
			},
			Cards:     entries("5", "7"),
			CreatedAt: created, ModifiedAt: created,
		},
	}
}

func sampleByID() map[string]cards.Card {
	m := make(map[string]cards.Card)
	for _, c := range SampleCatalog() {
		m[c.ID] = c
	}
	return m
}
