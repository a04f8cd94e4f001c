package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Silonidas/card-verse-architect/internal/cards"
)

// ErrUnsupportedFormat is returned for catalog files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Source supplies a complete catalog.
type Source interface {
	Fetch(ctx context.Context) ([]cards.Card, error)
	Name() string
}

// FileSource reads a catalog file. The format is picked by extension:
// .json, .yaml or .yml. The file holds either a bare list of cards or an
// object with a "cards" list.
type FileSource struct {
	Path string
}

// NewFileSource creates a source for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name returns the file path.
func (f *FileSource) Name() string {
	return f.Path
}

type catalogFile struct {
	Cards []cards.Card `json:"cards" yaml:"cards"`
}

// Fetch reads and decodes the file.
func (f *FileSource) Fetch(ctx context.Context) ([]cards.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	cs, err := Decode(data, filepath.Ext(f.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", f.Path, err)
	}
	return cs, nil
}

// Decode parses catalog data in the format named by ext.
func Decode(data []byte, ext string) ([]cards.Card, error) {
	switch strings.ToLower(ext) {
	case ".json":
		trimmed := strings.TrimSpace(string(data))
		if strings.HasPrefix(trimmed, "[") {
			var cs []cards.Card
			if err := json.Unmarshal(data, &cs); err != nil {
				return nil, err
			}
			return cs, nil
		}
		var file catalogFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
		return file.Cards, nil

	case ".yaml", ".yml":
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, err
		}
		if len(node.Content) == 0 {
			return []cards.Card{}, nil
		}
		root := node.Content[0]
		if root.Kind == yaml.SequenceNode {
			var cs []cards.Card
			if err := root.Decode(&cs); err != nil {
				return nil, err
			}
			return cs, nil
		}
		var file catalogFile
		if err := root.Decode(&file); err != nil {
			return nil, err
		}
		return file.Cards, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// StaticSource serves a fixed in-memory catalog.
type StaticSource struct {
	Label string
	Cards []cards.Card
}

// Name returns the label, or "static".
func (s StaticSource) Name() string {
	if s.Label == "" {
		return "static"
	}
	return s.Label
}

// Fetch returns a copy of the cards.
func (s StaticSource) Fetch(ctx context.Context) ([]cards.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]cards.Card, len(s.Cards))
	for i, c := range s.Cards {
		out[i] = c.Clone()
	}
	return out, nil
}
