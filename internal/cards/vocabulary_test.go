package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabulariesValidate(t *testing.T) {
	vocab := DefaultVocabularies()

	tests := []struct {
		name    string
		card    Card
		wantErr bool
	}{
		{
			name: "known digimon card",
			card: Card{ID: "1", Name: "Agumon", Type: "digimon", Rarity: "C", TCG: TCGDigimon},
		},
		{
			name:    "rarity from another game",
			card:    Card{ID: "2", Name: "Goku", Type: "digimon", Rarity: "SCR", TCG: TCGDigimon},
			wantErr: true,
		},
		{
			name:    "unknown type",
			card:    Card{ID: "3", Name: "Goku", Type: "creature", Rarity: "SR", TCG: TCGDragonBall},
			wantErr: true,
		},
		{
			name: "unregistered game is accepted",
			card: Card{ID: "4", Name: "Pikachu", Type: "pokemon", Rarity: "rare", TCG: "Pokemon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := vocab.Validate(tt.card)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	cs := []Card{
		{ID: "1", Type: "digimon", Rarity: "C"},
		{ID: "2", Type: "tamer", Rarity: "R"},
		{ID: "3", Type: "digimon", Rarity: "C"},
		{ID: "4", Type: "", Rarity: "SR"},
	}

	v := Derive(cs)
	assert.Equal(t, []string{"digimon", "tamer"}, v.Types)
	assert.Equal(t, []string{"C", "R", "SR"}, v.Rarities)
}

func TestEmptyVocabularyAcceptsAnything(t *testing.T) {
	var v Vocabulary
	assert.True(t, v.HasType("anything"))
	assert.True(t, v.HasRarity("anything"))
}

func TestCardCloneCopiesPrice(t *testing.T) {
	c := Card{ID: "1", Price: Price(2.5)}
	clone := c.Clone()
	*clone.Price = 9

	assert.Equal(t, 2.5, c.PriceOrZero())
	assert.Equal(t, 0.0, Card{}.PriceOrZero())
}
