package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Silonidas/card-verse-architect/internal/cards"
)

type failingSource struct{}

func (failingSource) Name() string { return "failing" }

func (failingSource) Fetch(context.Context) ([]cards.Card, error) {
	return nil, errors.New("network unreachable")
}

func TestStore_ReplaceDropsDuplicates(t *testing.T) {
	s := NewStore(nil)
	n := s.Replace([]cards.Card{
		{ID: "1", Name: "Agumon", TCG: cards.TCGDigimon},
		{ID: "1", Name: "Agumon (alt)", TCG: cards.TCGDigimon},
		{ID: "1", Name: "Son Goku", TCG: cards.TCGDragonBall},
		{ID: "", Name: "No id", TCG: cards.TCGDigimon},
	})

	assert.Equal(t, 2, n)
	c, ok := s.ByID(cards.TCGDigimon, "1")
	require.True(t, ok)
	assert.Equal(t, "Agumon", c.Name, "first occurrence wins")

	c, ok = s.ByID(cards.TCGDragonBall, "1")
	require.True(t, ok)
	assert.Equal(t, "Son Goku", c.Name)

	assert.Equal(t, []string{cards.TCGDigimon, cards.TCGDragonBall}, s.TCGs())
}

func TestStore_RefreshKeepsPreviousOnError(t *testing.T) {
	s := NewStore(nil)
	_, err := s.Refresh(context.Background(), StaticSource{Cards: SampleCatalog()})
	require.NoError(t, err)
	before := s.Len()

	_, err = s.Refresh(context.Background(), failingSource{})
	require.Error(t, err)
	assert.Equal(t, before, s.Len())
}

func TestStore_ByTCGAndVocabulary(t *testing.T) {
	s := NewStore(nil)
	s.Replace(SampleCatalog())

	digimon := s.ByTCG(cards.TCGDigimon)
	assert.Len(t, digimon, 9)
	assert.Empty(t, s.ByTCG("Pokemon"))
	assert.NotNil(t, s.ByTCG("Pokemon"))

	v := s.Vocabulary(cards.TCGDigimon)
	assert.Equal(t, []string{"digimon", "tamer", "option"}, v.Types)
	assert.Equal(t, []string{"C", "U", "SR", "R", "SEC"}, v.Rarities)

	_, ok := s.ByID(cards.TCGDigimon, "missing")
	assert.False(t, ok)
}

func TestStore_ReplaceCopiesInput(t *testing.T) {
	s := NewStore(nil)
	input := []cards.Card{{ID: "1", Name: "Agumon", TCG: cards.TCGDigimon, Price: cards.Price(1)}}
	s.Replace(input)

	*input[0].Price = 99
	input[0].Name = "changed"

	c, _ := s.ByID("", "1")
	assert.Equal(t, "Agumon", c.Name)
	assert.Equal(t, 1.0, c.PriceOrZero())
}

func TestSampleData(t *testing.T) {
	decks := SampleDecks()
	require.Len(t, decks, 3)
	assert.Equal(t, "Red Aggro", decks[0].Name)
	assert.Equal(t, 12, decks[0].CardCount())

	owned := SampleCollection()
	require.Len(t, owned, 9)
	for _, o := range owned {
		assert.NotEmpty(t, o.Card.ID)
		assert.True(t, o.Condition.Valid())
	}
}
