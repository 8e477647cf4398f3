package report

import (
	"fmt"
	"strconv"
)

// formatPercent formats a percentage with exactly 2 decimal places
func formatPercent(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatVotes formats a vote count as a plain integer
func formatVotes(i int64) string {
	return strconv.FormatInt(i, 10)
}
