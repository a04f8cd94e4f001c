// Package storage persists the collection and deck ledgers as a JSON
// snapshot on disk.
package storage

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/Silonidas/card-verse-architect/internal/collection"
	"github.com/Silonidas/card-verse-architect/internal/deck"
)

// SnapshotVersion is written into every snapshot.
const SnapshotVersion = 1

// Snapshot is the on-disk application state. Both ledgers are keyed by id.
type Snapshot struct {
	Version     int                             `json:"version"`
	SelectedTCG string                          `json:"selectedTcg"`
	Collection  map[string]collection.OwnedCard `json:"collection"`
	Decks       map[string]deck.Deck            `json:"decks"`
	SavedAt     time.Time                       `json:"savedAt"`
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:    SnapshotVersion,
		Collection: make(map[string]collection.OwnedCard),
		Decks:      make(map[string]deck.Deck),
	}
}

// Capture builds a snapshot from the current ledgers.
func Capture(selectedTCG string, owned *collection.Ledger, decks *deck.Ledger) *Snapshot {
	s := NewSnapshot()
	s.SelectedTCG = selectedTCG
	for _, e := range owned.List() {
		s.Collection[e.Card.ID] = e
	}
	for _, d := range decks.List() {
		s.Decks[d.ID] = d
	}
	return s
}

// CollectionEntries returns the collection ordered by AddedAt, then card id.
func (s *Snapshot) CollectionEntries() []collection.OwnedCard {
	out := make([]collection.OwnedCard, 0, len(s.Collection))
	for id, e := range s.Collection {
		if e.Card.ID == "" {
			e.Card.ID = id
		}
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b collection.OwnedCard) int {
		return cmp.Or(a.AddedAt.Compare(b.AddedAt), cmp.Compare(a.Card.ID, b.Card.ID))
	})
	return out
}

// DeckList returns the decks ordered by CreatedAt, then id.
func (s *Snapshot) DeckList() []deck.Deck {
	out := make([]deck.Deck, 0, len(s.Decks))
	for id, d := range s.Decks {
		if d.ID == "" {
			d.ID = id
		}
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b deck.Deck) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Load reads a snapshot from path. A missing file loads as an empty snapshot.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	s := NewSnapshot()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	if s.Version > SnapshotVersion {
		return nil, fmt.Errorf("snapshot %s has version %d, newest supported is %d", path, s.Version, SnapshotVersion)
	}
	if s.Collection == nil {
		s.Collection = make(map[string]collection.OwnedCard)
	}
	if s.Decks == nil {
		s.Decks = make(map[string]deck.Deck)
	}
	return s, nil
}

// Save writes the snapshot to path atomically: the data goes to a temp
// file in the same directory which is then renamed over path.
func (s *Snapshot) Save(path string) error {
	s.Version = SnapshotVersion
	s.SavedAt = time.Now().UTC()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
