// Package deckexport renders decks as shareable text.
package deckexport

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Silonidas/card-verse-architect/internal/deck"
	"github.com/Silonidas/card-verse-architect/internal/stats"
)

// ExportFormat represents the format to export the deck in.
type ExportFormat string

const (
	FormatSet       ExportFormat = "set"       // Set-annotated list (4 Agumon (BT1-010))
	FormatPlainText ExportFormat = "plaintext" // Simple text list (4x Agumon)
	FormatJSON      ExportFormat = "json"      // The deck record as JSON
)

// ParseFormat parses a format name. An empty name selects FormatSet.
func ParseFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatSet, nil
	case FormatSet, FormatPlainText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", s)
	}
}

// ExportOptions controls deck export behavior.
type ExportOptions struct {
	Format         ExportFormat
	IncludeStats   bool // Include deck statistics in export (as comments)
	IncludeHeaders bool // Include the deck name and format (as comments)
}

// DeckExport represents an exported deck.
type DeckExport struct {
	Content  string       // The exported deck text
	Format   ExportFormat // The format used
	Filename string       // Suggested filename for download
}

// Export exports a deck to the specified format. Nil options export the
// set-annotated format with headers.
func Export(d deck.Deck, options *ExportOptions) (*DeckExport, error) {
	if options == nil {
		options = &ExportOptions{
			Format:         FormatSet,
			IncludeHeaders: true,
		}
	}

	var content string
	ext := "txt"

	switch options.Format {
	case FormatSet, "":
		content = exportText(d, options, setLine)
	case FormatPlainText:
		content = exportText(d, options, plainLine)
	case FormatJSON:
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal deck: %w", err)
		}
		content = string(data) + "\n"
		ext = "json"
	default:
		return nil, fmt.Errorf("unsupported export format: %s", options.Format)
	}

	format := options.Format
	if format == "" {
		format = FormatSet
	}
	return &DeckExport{
		Content:  content,
		Format:   format,
		Filename: fmt.Sprintf("%s.%s", sanitizeFilename(d.Name), ext),
	}, nil
}

// setLine formats "4 Agumon (BT1-010)", omitting the set when unknown.
func setLine(e deck.Entry) string {
	line := fmt.Sprintf("%d %s", e.Quantity, e.Card.Name)
	if e.Card.Set != "" {
		line += fmt.Sprintf(" (%s)", strings.ToUpper(e.Card.Set))
	}
	return line
}

// plainLine formats "4x Agumon".
func plainLine(e deck.Entry) string {
	return fmt.Sprintf("%dx %s", e.Quantity, e.Card.Name)
}

func exportText(d deck.Deck, options *ExportOptions, line func(deck.Entry) string) string {
	var sb strings.Builder

	if options.IncludeHeaders {
		sb.WriteString(fmt.Sprintf("# Deck: %s\n", d.Name))
		if d.Format != "" {
			sb.WriteString(fmt.Sprintf("# Format: %s\n", d.Format))
		}
	}

	if options.IncludeStats {
		s := stats.Deck(d.Cards)
		sb.WriteString(fmt.Sprintf("# Cards: %d (%d unique)\n", s.TotalCards, s.UniqueCards))
		sb.WriteString(fmt.Sprintf("# Average cost: %.2f\n", s.AverageCost))
		for _, b := range s.Types {
			sb.WriteString(fmt.Sprintf("# %s: %d\n", b.Label, b.Count))
		}
	}

	if options.IncludeHeaders || options.IncludeStats {
		sb.WriteString("\n")
	}

	for _, e := range d.Cards {
		sb.WriteString(line(e))
		sb.WriteString("\n")
	}

	return sb.String()
}

// sanitizeFilename removes invalid characters from filename.
func sanitizeFilename(name string) string {
	// Replace invalid filename characters with underscore
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	// Trim spaces and limit length
	result = strings.TrimSpace(result)
	if len(result) > 100 {
		result = result[:100]
	}
	if result == "" {
		result = "deck"
	}
	return result
}
