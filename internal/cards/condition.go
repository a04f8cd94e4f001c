package cards

import (
	"errors"
	"fmt"
	"strings"
)

// Condition is the physical grade of an owned copy.
type Condition string

const (
	ConditionMint      Condition = "mint"
	ConditionNearMint  Condition = "near mint"
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionPlayed    Condition = "played"
	ConditionPoor      Condition = "poor"
)

// ErrInvalidCondition is returned when a condition string is not recognized.
var ErrInvalidCondition = errors.New("invalid condition")

// Conditions lists every condition from best to worst.
func Conditions() []Condition {
	return []Condition{
		ConditionMint,
		ConditionNearMint,
		ConditionExcellent,
		ConditionGood,
		ConditionPlayed,
		ConditionPoor,
	}
}

var conditionAliases = map[string]Condition{
	"m":         ConditionMint,
	"nm":        ConditionNearMint,
	"near-mint": ConditionNearMint,
	"nearmint":  ConditionNearMint,
	"near_mint": ConditionNearMint,
	"ex":        ConditionExcellent,
	"gd":        ConditionGood,
	"pl":        ConditionPlayed,
	"pr":        ConditionPoor,
}

// ParseCondition parses a condition name case-insensitively. Short codes
// such as "NM" and the hyphenated "near-mint" are accepted.
func ParseCondition(s string) (Condition, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Conditions() {
		if key == string(c) {
			return c, nil
		}
	}
	if c, ok := conditionAliases[key]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCondition, s)
}

// Valid reports whether c is one of the known conditions.
func (c Condition) Valid() bool {
	return c.Rank() >= 0
}

// Rank orders conditions for display, 0 being mint. Unknown conditions
// return -1. Nothing in the ledgers depends on this ordering.
func (c Condition) Rank() int {
	for i, known := range Conditions() {
		if c == known {
			return i
		}
	}
	return -1
}

func (c Condition) String() string {
	return string(c)
}
