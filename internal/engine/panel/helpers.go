package panel

import (
	"strconv"
	"strings"
)

// formatInt renders an integer parameter in the panel's plain notation.
func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// joinList renders a list parameter in the panel's comma notation.
func joinList(items []string) string {
	return strings.Join(items, ",")
}
