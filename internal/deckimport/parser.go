// Package deckimport parses deck lists pasted as text and resolves them
// against a catalog.
package deckimport

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Silonidas/card-verse-architect/internal/cards"
	"github.com/Silonidas/card-verse-architect/internal/deck"
)

// ErrNoCards is returned when the input has no parseable card lines.
var ErrNoCards = errors.New("no cards found in import")

var (
	// "4 Agumon (BT1-010)", "4x Agumon" or "4 Agumon"
	// Group 1: quantity, Group 2: card name, Group 3: set (optional, last parenthesised group)
	quantityFirst = regexp.MustCompile(`^(\d+)x?\s+(.+?)(?:\s+\(([^()]+)\))?$`)
	// "Agumon x4"
	quantityLast = regexp.MustCompile(`^(.+?)\s+x(\d+)$`)
)

// ParsedCard represents a single card line in a deck import.
type ParsedCard struct {
	Line     int
	Quantity int
	Name     string
	SetCode  string // Optional, from "4 Agumon (BT1-010)" or "4 Agumon (Digimon Card Collection)"
}

// ParseResult contains the result of parsing a deck import.
type ParseResult struct {
	// Name and Format come from "# Deck:" and "# Format:" header comments.
	Name   string
	Format string

	Cards []*ParsedCard

	// Entries holds the resolved cards, merged by id and clamped to the
	// copy cap, in first-seen order.
	Entries  []deck.Entry
	Warnings []string
}

// Parser handles deck import parsing.
type Parser struct {
	index  map[string][]cards.Card
	policy deck.Policy
}

// NewParser creates a parser that resolves names against catalog. Pass
// only the cards of the target game so names resolve within it.
func NewParser(catalog []cards.Card, policy deck.Policy) *Parser {
	index := make(map[string][]cards.Card)
	for _, c := range catalog {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		index[key] = append(index[key], c)
	}
	return &Parser{index: index, policy: policy}
}

// Parse parses deck list text. Blank lines, "#" and "//" comments and a
// bare "Deck" header are skipped. Lines that cannot be parsed or resolved
// become warnings.
func (p *Parser) Parse(input string) (*ParseResult, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty import string")
	}

	result := &ParseResult{
		Cards:    make([]*ParsedCard, 0),
		Entries:  make([]deck.Entry, 0),
		Warnings: make([]string, 0),
	}

	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, "deck") {
			continue
		}

		if comment, ok := stripComment(line); ok {
			if v, ok := headerValue(comment, "deck"); ok {
				result.Name = v
			} else if v, ok := headerValue(comment, "format"); ok {
				result.Format = v
			}
			continue
		}

		parsed, ok := parseLine(line)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Line %d: Could not parse '%s'", i+1, line))
			continue
		}
		parsed.Line = i + 1
		result.Cards = append(result.Cards, parsed)
	}

	if len(result.Cards) == 0 {
		return nil, ErrNoCards
	}

	p.resolve(result)
	return result, nil
}

func parseLine(line string) (*ParsedCard, bool) {
	if m := quantityFirst.FindStringSubmatch(line); m != nil {
		if q, err := strconv.Atoi(m[1]); err == nil {
			return &ParsedCard{Quantity: q, Name: strings.TrimSpace(m[2]), SetCode: m[3]}, true
		}
	}
	if m := quantityLast.FindStringSubmatch(line); m != nil {
		if q, err := strconv.Atoi(m[2]); err == nil {
			return &ParsedCard{Quantity: q, Name: strings.TrimSpace(m[1])}, true
		}
	}
	return nil, false
}

func stripComment(line string) (string, bool) {
	for _, prefix := range []string{"//", "#"} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", false
}

func headerValue(comment, key string) (string, bool) {
	k, v, ok := strings.Cut(comment, ":")
	if !ok || !strings.EqualFold(strings.TrimSpace(k), key) {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// resolve maps parsed lines to catalog cards, merging repeated cards.
func (p *Parser) resolve(result *ParseResult) {
	positions := make(map[string]int)

	for _, pc := range result.Cards {
		if pc.Quantity < 1 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Line %d: Quantity must be at least 1 for '%s'", pc.Line, pc.Name))
			continue
		}

		card, ok := p.lookup(pc.Name, pc.SetCode)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Line %d: Card '%s' not found in catalog", pc.Line, pc.Name))
			continue
		}

		if i, seen := positions[card.ID]; seen {
			result.Entries[i].Quantity += pc.Quantity
		} else {
			positions[card.ID] = len(result.Entries)
			result.Entries = append(result.Entries, deck.Entry{Card: card.Clone(), Quantity: pc.Quantity})
		}
	}

	if limit := p.policy.MaxCopies; limit > 0 {
		for i := range result.Entries {
			if result.Entries[i].Quantity > limit {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Card '%s' clamped from %d to %d copies", result.Entries[i].Card.Name, result.Entries[i].Quantity, limit))
				result.Entries[i].Quantity = limit
			}
		}
	}
}

// lookup finds a card by case-insensitive name. A set narrows the match
// when several printings share the name. When nothing matches name and set
// together, the set may belong to the name itself, as in "Gabumon (Alt)".
func (p *Parser) lookup(name, setCode string) (cards.Card, bool) {
	candidates := p.index[strings.ToLower(name)]
	if setCode == "" {
		if len(candidates) == 0 {
			return cards.Card{}, false
		}
		return candidates[0], true
	}

	for _, c := range candidates {
		if strings.EqualFold(c.Set, setCode) {
			return c, true
		}
	}
	if full := p.index[strings.ToLower(name+" ("+setCode+")")]; len(full) > 0 {
		return full[0], true
	}
	if len(candidates) == 0 {
		return cards.Card{}, false
	}
	return candidates[0], true
}
