package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseGroupedInt parses a non-negative integer that may carry comma
// thousands separators, e.g. "12,345".
func ParseGroupedInt(s string) (int, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if digits == "" {
		return 0, fmt.Errorf("empty number")
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative number %q", s)
	}
	return n, nil
}
