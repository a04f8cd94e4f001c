package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/Silonidas/card-verse-architect/internal/cards"
	"github.com/Silonidas/card-verse-architect/internal/deck"
	"github.com/Silonidas/card-verse-architect/internal/query"
)

// Config represents the application configuration.
type Config struct {
	// Catalog source configuration
	Catalog CatalogConfig `toml:"catalog"`

	// Snapshot location
	State StateConfig `toml:"state"`

	// Deck-building policy
	Deck deck.Policy `toml:"deck"`

	// Collection defaults
	Collection CollectionConfig `toml:"collection"`

	// Browse defaults
	Browse BrowseConfig `toml:"browse"`

	// Logging configuration
	Log LogConfig `toml:"log"`

	// Per-game vocabularies; empty means the built-in set
	Games []GameConfig `toml:"games"`
}

// CatalogConfig contains catalog loading settings.
type CatalogConfig struct {
	Path         string `toml:"path"`          // Catalog file (.json/.yaml); empty uses the sample catalog
	PollInterval string `toml:"poll_interval"` // Backup polling interval for "watch" (e.g., "2s")
}

// StateConfig contains snapshot settings.
type StateConfig struct {
	Path string `toml:"path"` // Snapshot file; empty uses ~/.cardverse/state.json
}

// CollectionConfig contains collection settings.
type CollectionConfig struct {
	DefaultCondition string `toml:"default_condition"` // Condition given to newly owned cards
}

// BrowseConfig contains browse settings.
type BrowseConfig struct {
	DefaultSort string `toml:"default_sort"` // name, price, rarity or catalog
	DefaultTCG  string `toml:"default_tcg"`  // Game selected on first start
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn or error
}

// GameConfig declares the type and rarity vocabulary of one game.
type GameConfig struct {
	Name     string   `toml:"name"`
	Types    []string `toml:"types"`
	Rarities []string `toml:"rarities"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:         "",
			PollInterval: "2s",
		},
		Deck: deck.DefaultPolicy(),
		Collection: CollectionConfig{
			DefaultCondition: string(cards.ConditionNearMint),
		},
		Browse: BrowseConfig{
			DefaultSort: string(query.SortName),
			DefaultTCG:  cards.TCGDigimon,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the application directory (~/.cardverse), creating it if needed.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".cardverse")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return dir, nil
}

// DefaultPath returns the path to the default configuration file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads the configuration from path, or from DefaultPath when path is
// empty. Returns the default config if the file doesn't exist. Keys absent
// from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.Catalog.PollInterval); err != nil {
		return fmt.Errorf("invalid poll interval %q: %w", c.Catalog.PollInterval, err)
	}

	if c.Deck.MaxCopies < 0 {
		return fmt.Errorf("max copies cannot be negative: %d", c.Deck.MaxCopies)
	}

	if _, err := cards.ParseCondition(c.Collection.DefaultCondition); err != nil {
		return fmt.Errorf("invalid default condition: %w", err)
	}

	if _, err := query.ParseSortKey(c.Browse.DefaultSort); err != nil {
		return fmt.Errorf("invalid default sort: %w", err)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for i, g := range c.Games {
		if strings.TrimSpace(g.Name) == "" {
			return fmt.Errorf("games[%d]: name is required", i)
		}
		if seen[g.Name] {
			return fmt.Errorf("games[%d]: duplicate game %q", i, g.Name)
		}
		seen[g.Name] = true
	}

	return nil
}

// GetPollInterval returns the catalog poll interval as a duration.
func (c *Config) GetPollInterval() (time.Duration, error) {
	return time.ParseDuration(c.Catalog.PollInterval)
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

// DefaultCondition returns the parsed collection default condition, falling
// back to near mint.
func (c *Config) DefaultCondition() cards.Condition {
	cond, err := cards.ParseCondition(c.Collection.DefaultCondition)
	if err != nil {
		return cards.ConditionNearMint
	}
	return cond
}

// Vocabularies returns the configured game vocabularies, or the built-in
// ones when no [[games]] tables are present.
func (c *Config) Vocabularies() cards.Vocabularies {
	if len(c.Games) == 0 {
		return cards.DefaultVocabularies()
	}
	vs := make(cards.Vocabularies, len(c.Games))
	for _, g := range c.Games {
		vs[g.Name] = cards.Vocabulary{Types: g.Types, Rarities: g.Rarities}
	}
	return vs
}
