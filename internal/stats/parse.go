package stats

import (
	"fmt"
	"strings"
)

// ParseNumber reads the leading integer of a free-text numeric field such
// as a cost or power value. Absent, non-numeric and negative values read as
// 0, so "3" is 3, "7000+" is 7000, and "", "*", "X" and "{2}{R}" are 0.
func ParseNumber(value string) int {
	value = strings.TrimSpace(value)
	if value == "" || value == "*" {
		return 0
	}

	var result int
	if _, err := fmt.Sscanf(value, "%d", &result); err != nil {
		return 0
	}
	return max(result, 0)
}
