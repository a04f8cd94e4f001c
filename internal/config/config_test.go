package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Silonidas/card-verse-architect/internal/cards"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Deck.MaxCopies)
	assert.Equal(t, cards.ConditionNearMint, cfg.DefaultCondition())
	assert.Equal(t, cards.DefaultVocabularies(), cfg.Vocabularies())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[deck]
max_copies = 3

[log]
level = "debug"

[[games]]
name = "Digimon Card Game 2020"
types = ["digimon", "tamer"]
rarities = ["C", "U"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Deck.MaxCopies)
	assert.Equal(t, "2s", cfg.Catalog.PollInterval)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	vs := cfg.Vocabularies()
	require.Len(t, vs, 1)
	assert.Equal(t, []string{"digimon", "tamer"}, vs[cards.TCGDigimon].Types)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Catalog.Path = "/tmp/catalog.yaml"
	cfg.Browse.DefaultSort = "price"
	cfg.Games = []GameConfig{
		{Name: cards.TCGDragonBall, Types: []string{"leader", "battle"}, Rarities: []string{"C", "L"}},
	}

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "cap disabled", mutate: func(c *Config) { c.Deck.MaxCopies = 0 }},
		{name: "negative cap", mutate: func(c *Config) { c.Deck.MaxCopies = -1 }, wantErr: true},
		{name: "bad poll interval", mutate: func(c *Config) { c.Catalog.PollInterval = "soon" }, wantErr: true},
		{name: "bad condition", mutate: func(c *Config) { c.Collection.DefaultCondition = "shiny" }, wantErr: true},
		{name: "condition alias", mutate: func(c *Config) { c.Collection.DefaultCondition = "nm" }},
		{name: "bad sort", mutate: func(c *Config) { c.Browse.DefaultSort = "power" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: true},
		{
			name: "unnamed game",
			mutate: func(c *Config) {
				c.Games = []GameConfig{{Types: []string{"digimon"}}}
			},
			wantErr: true,
		},
		{
			name: "duplicate game",
			mutate: func(c *Config) {
				c.Games = []GameConfig{{Name: "A"}, {Name: "A"}}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
