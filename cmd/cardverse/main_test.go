package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Silonidas/card-verse-architect/internal/storage"
)

type harness struct {
	t      *testing.T
	dir    string
	config string
	state  string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	return &harness{
		t:      t,
		dir:    dir,
		config: filepath.Join(dir, "config.toml"),
		state:  filepath.Join(dir, "state.json"),
	}
}

func (h *harness) exec(args ...string) (string, error) {
	h.t.Helper()
	var out bytes.Buffer
	cmd := rootCmd(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", h.config, "--state", h.state}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) run(args ...string) string {
	h.t.Helper()
	out, err := h.exec(args...)
	require.NoError(h.t, err, "cardverse %s", strings.Join(args, " "))
	return out
}

var createdDeck = regexp.MustCompile(`\(([^)]+)\)`)

func (h *harness) createDeck(name string) string {
	h.t.Helper()
	out := h.run("deck", "create", "--name", name, "--format", "Standard")
	m := createdDeck.FindStringSubmatch(out)
	require.NotNil(h.t, m, "unexpected output %q", out)
	return m[1]
}

func TestCatalogCommands(t *testing.T) {
	h := newHarness(t)

	out := h.run("catalog", "list", "--search", "greymon")
	assert.Contains(t, out, "MetalGreymon")
	assert.Contains(t, out, "WarGreymon")
	assert.NotContains(t, out, "Agumon")
	assert.Contains(t, out, "2 card(s)")

	out = h.run("catalog", "list", "--search", "omnimn")
	assert.Contains(t, out, "No cards found.")
	assert.Contains(t, out, "Did you mean: Omnimon?")

	out = h.run("catalog", "vocab")
	assert.Contains(t, out, "digi-egg")

	out = h.run("select")
	assert.Contains(t, out, "* Digimon Card Game 2020")

	h.run("select", "Dragon Ball Super Card Game Fusion World")
	out = h.run("catalog", "list")
	assert.Contains(t, out, "Son Goku")
	assert.NotContains(t, out, "Agumon")

	out = h.run("catalog", "list", "--tcg", "all")
	assert.Contains(t, out, "Son Goku")
	assert.Contains(t, out, "Agumon")
	assert.Contains(t, out, "12 card(s)")

	_, err := h.exec("select", "Pokemon")
	assert.Error(t, err)
}

func TestCollectionCommands(t *testing.T) {
	h := newHarness(t)

	out := h.run("collection", "add", "1", "1", "8", "nope")
	assert.Contains(t, out, "Agumon: 2 owned")
	assert.Contains(t, out, "Card nope not found in catalog.")

	h.run("collection", "condition", "8", "mint")
	out = h.run("collection", "favorite", "8")
	assert.Contains(t, out, "Favorite: true")

	out = h.run("collection", "list", "--favorites")
	assert.Contains(t, out, "Omnimon")
	assert.NotContains(t, out, "Agumon")

	out = h.run("collection", "stats")
	assert.Contains(t, out, "Total Cards:     3")
	assert.Contains(t, out, "Estimated Value: $45.50")

	_, err := h.exec("collection", "condition", "8", "shiny")
	assert.Error(t, err)

	h.run("collection", "remove", "1", "1")
	snap, err := storage.Load(h.state)
	require.NoError(t, err)
	assert.NotContains(t, snap.Collection, "1")
	assert.Equal(t, 1, snap.Collection["8"].Quantity)
}

func TestDeckCommands(t *testing.T) {
	h := newHarness(t)

	_, err := h.exec("deck", "create", "--name", "")
	assert.Error(t, err)

	id := h.createDeck("Red Aggro")
	out := h.run("deck", "add", id, "1", "1", "1", "1", "1", "3")
	assert.Contains(t, out, "copy limit reached")

	out = h.run("deck", "show", id)
	assert.Contains(t, out, "digimon (5):")
	assert.Contains(t, out, "4x Agumon")

	out = h.run("deck", "stats", id)
	assert.Contains(t, out, "Total Cards:  5")

	h.run("deck", "update", id, "--description", "Greymon line")
	out = h.run("deck", "show", id)
	assert.Contains(t, out, "Red Aggro (Standard)")
	assert.Contains(t, out, "Greymon line")

	out = h.run("deck", "export", id)
	assert.Contains(t, out, "4 Agumon (BT1-010)")

	h.run("deck", "export", id, "--format", "plaintext", "--output-dir", h.dir)
	exported := filepath.Join(h.dir, "Red Aggro.txt")
	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(data), "4x Agumon")

	out = h.run("deck", "import", exported, "--name", "Copy")
	assert.Contains(t, out, "Imported deck Copy")
	assert.Contains(t, out, "with 5 cards")

	out = h.run("deck", "list")
	assert.Contains(t, out, "Red Aggro")
	assert.Contains(t, out, "Copy")

	h.run("deck", "remove", id, "3")
	h.run("deck", "delete", id)
	_, err = h.exec("deck", "show", id)
	assert.Error(t, err)
}

func TestTransferCommand(t *testing.T) {
	h := newHarness(t)
	id := h.createDeck("Blue Control")

	out := h.run("transfer", "2", "browse", "collection")
	assert.Contains(t, out, "Moved 2 from browse to collection")

	h.run("transfer", "2", "collection", "deck:"+id)
	out = h.run("deck", "show", id)
	assert.Contains(t, out, "1x Gabumon")

	out = h.run("transfer", "9", "collection", "deck:"+id)
	assert.Contains(t, out, "Nothing to transfer.")

	_, err := h.exec("transfer", "2", "hand", "browse")
	assert.Error(t, err)
}

func TestSeedCommand(t *testing.T) {
	h := newHarness(t)
	out := h.run("seed")
	assert.Contains(t, out, "Loaded 9 collection entries and 3 decks")

	out = h.run("deck", "list")
	assert.Contains(t, out, "Yellow Midrange")

	_, err := h.exec("seed")
	assert.Error(t, err, "seeding non-empty state needs --force")
	h.run("seed", "--force")
}

func TestCatalogFileFlag(t *testing.T) {
	h := newHarness(t)
	catalogPath := filepath.Join(h.dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`
- id: "p1"
  name: Pikachu
  type: pokemon
  rarity: C
  tcg: Pokemon
`), 0o644))

	out := h.run("--catalog", catalogPath, "catalog", "list", "--tcg", "Pokemon")
	assert.Contains(t, out, "Pikachu")

	out = h.run("--catalog", catalogPath, "select")
	assert.Contains(t, out, "Pokemon")

	_, err := h.exec("--catalog", filepath.Join(h.dir, "missing.json"), "catalog", "list")
	assert.Error(t, err)
}
