package cards

import (
	"fmt"
	"slices"
	"strings"
)

// Vocabulary is the set of valid type and rarity values for one TCG.
type Vocabulary struct {
	Types    []string `json:"types" toml:"types"`
	Rarities []string `json:"rarities" toml:"rarities"`
}

// HasType reports whether t is a known type. An empty vocabulary accepts anything.
func (v Vocabulary) HasType(t string) bool {
	return len(v.Types) == 0 || slices.Contains(v.Types, t)
}

// HasRarity reports whether r is a known rarity. An empty vocabulary accepts anything.
func (v Vocabulary) HasRarity(r string) bool {
	return len(v.Rarities) == 0 || slices.Contains(v.Rarities, r)
}

// Vocabularies maps a TCG name to its vocabulary.
type Vocabularies map[string]Vocabulary

// Lookup returns the vocabulary for tcg and whether one is registered.
func (vs Vocabularies) Lookup(tcg string) (Vocabulary, bool) {
	v, ok := vs[tcg]
	return v, ok
}

// Validate checks the card's type and rarity against its TCG's vocabulary.
// Cards of an unregistered TCG are accepted as-is.
func (vs Vocabularies) Validate(card Card) error {
	v, ok := vs[card.TCG]
	if !ok {
		return nil
	}

	var problems []string
	if !v.HasType(card.Type) {
		problems = append(problems, fmt.Sprintf("type %q", card.Type))
	}
	if !v.HasRarity(card.Rarity) {
		problems = append(problems, fmt.Sprintf("rarity %q", card.Rarity))
	}
	if len(problems) > 0 {
		return fmt.Errorf("card %s (%s): unknown %s for %s", card.ID, card.Name, strings.Join(problems, " and "), card.TCG)
	}
	return nil
}

// Derive builds a vocabulary from the distinct type and rarity values of
// the given cards, in first-seen order.
func Derive(cs []Card) Vocabulary {
	var v Vocabulary
	seenType := make(map[string]bool)
	seenRarity := make(map[string]bool)
	for _, c := range cs {
		if c.Type != "" && !seenType[c.Type] {
			seenType[c.Type] = true
			v.Types = append(v.Types, c.Type)
		}
		if c.Rarity != "" && !seenRarity[c.Rarity] {
			seenRarity[c.Rarity] = true
			v.Rarities = append(v.Rarities, c.Rarity)
		}
	}
	return v
}

const (
	TCGDigimon    = "Digimon Card Game 2020"
	TCGDragonBall = "Dragon Ball Super Card Game Fusion World"
)

// DefaultVocabularies returns the built-in vocabularies for the games the
// sample catalog covers.
func DefaultVocabularies() Vocabularies {
	return Vocabularies{
		TCGDigimon: {
			Types:    []string{"digimon", "digi-egg", "tamer", "option"},
			Rarities: []string{"C", "U", "R", "SR", "SEC", "P"},
		},
		TCGDragonBall: {
			Types:    []string{"leader", "battle", "extra"},
			Rarities: []string{"C", "UC", "R", "SR", "SCR", "L", "PR"},
		},
	}
}
