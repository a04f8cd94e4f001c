package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Silonidas/card-verse-architect/internal/cards"
	"github.com/Silonidas/card-verse-architect/internal/collection"
)

const dbs = cards.TCGDragonBall

func testCatalog() []cards.Card {
	return []cards.Card{
		{ID: "4", Name: "WarGreymon", Type: "digimon", Rarity: "SR", TCG: cards.TCGDigimon, Price: cards.Price(12)},
		{ID: "1", Name: "Agumon", Type: "digimon", Rarity: "C", TCG: cards.TCGDigimon, Price: cards.Price(0.5)},
		{ID: "5", Name: "Tai Kamiya", Type: "tamer", Rarity: "R", TCG: cards.TCGDigimon},
		{ID: "3", Name: "MetalGreymon", Type: "digimon", Rarity: "U", TCG: cards.TCGDigimon, Price: cards.Price(3)},
		{ID: "FB01-001", Name: "Son Goku", Type: "leader", Rarity: "L", TCG: dbs, Price: cards.Price(3)},
	}
}

func names(cs []cards.Card) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func TestCatalogDefaultReturnsEverythingByName(t *testing.T) {
	got := Catalog(testCatalog(), DefaultFilter())
	assert.Equal(t, []string{"Agumon", "MetalGreymon", "Son Goku", "Tai Kamiya", "WarGreymon"}, names(got))
}

func TestCatalogSearchIsCaseInsensitiveSubstring(t *testing.T) {
	catalog := []cards.Card{
		{ID: "4", Name: "WarGreymon"},
		{ID: "1", Name: "Agumon"},
	}

	got := Catalog(catalog, Filter{SearchTerm: "greymon"})
	assert.Equal(t, []string{"WarGreymon"}, names(got))
}

func TestCatalogFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty strings mean all", Filter{}, []string{"Agumon", "MetalGreymon", "Son Goku", "Tai Kamiya", "WarGreymon"}},
		{"tcg scope", Filter{TCG: dbs}, []string{"Son Goku"}},
		{"type", Filter{Type: "tamer"}, []string{"Tai Kamiya"}},
		{"rarity", Filter{Rarity: "SR", Type: All}, []string{"WarGreymon"}},
		{"and across filters", Filter{SearchTerm: "mon", Type: "digimon", Rarity: "U"}, []string{"MetalGreymon"}},
		{"rarity scoped by tcg", Filter{TCG: dbs, Rarity: "C"}, []string{}},
		{"no match", Filter{SearchTerm: "pikachu"}, []string{}},
		{"condition never matches catalog", Filter{Condition: "mint"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Catalog(testCatalog(), tt.filter)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestCatalogSort(t *testing.T) {
	tests := []struct {
		sort SortKey
		want []string
	}{
		{SortName, []string{"Agumon", "MetalGreymon", "Son Goku", "Tai Kamiya", "WarGreymon"}},
		// MetalGreymon and Son Goku tie at 3 and keep catalog order
		{SortPrice, []string{"WarGreymon", "MetalGreymon", "Son Goku", "Agumon", "Tai Kamiya"}},
		{SortRarity, []string{"Agumon", "Son Goku", "Tai Kamiya", "WarGreymon", "MetalGreymon"}},
		{SortCatalog, []string{"WarGreymon", "Agumon", "Tai Kamiya", "MetalGreymon", "Son Goku"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			got := Catalog(testCatalog(), Filter{Sort: tt.sort})
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestCatalogIsPure(t *testing.T) {
	catalog := testCatalog()
	before := testCatalog()
	f := Filter{SearchTerm: "greymon", Sort: SortPrice}

	first := Catalog(catalog, f)
	second := Catalog(catalog, f)

	assert.Equal(t, first, second)
	assert.Equal(t, before, catalog)
}

func TestCatalogEmptyInput(t *testing.T) {
	got := Catalog(nil, DefaultFilter())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollection(t *testing.T) {
	l := collection.NewLedger()
	for _, c := range testCatalog() {
		l.Add(c)
	}
	_, _ = l.SetCondition("4", cards.ConditionMint)
	l.ToggleFavorite("1")

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"condition", Filter{Condition: "mint"}, []string{"WarGreymon"}},
		{"default condition", Filter{Condition: "near mint", TCG: dbs}, []string{"Son Goku"}},
		{"favorites", Filter{FavoritesOnly: true}, []string{"Agumon"}},
		{"all", DefaultFilter(), []string{"Agumon", "MetalGreymon", "Son Goku", "Tai Kamiya", "WarGreymon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collection(l.List(), tt.filter)
			var gotNames []string
			for _, e := range got {
				gotNames = append(gotNames, e.Card.Name)
			}
			assert.Equal(t, tt.want, gotNames)
		})
	}
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortName, k)

	k, err = ParseSortKey("Price")
	require.NoError(t, err)
	assert.Equal(t, SortPrice, k)

	_, err = ParseSortKey("color")
	assert.Error(t, err)
}

func TestSuggest(t *testing.T) {
	got := Suggest(testCatalog(), "wrgrymon", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "WarGreymon", got[0])

	assert.Empty(t, Suggest(testCatalog(), "", 3))
	assert.Empty(t, Suggest(nil, "agumon", 3))
	assert.LessOrEqual(t, len(Suggest(testCatalog(), "m", 2)), 2)
}
