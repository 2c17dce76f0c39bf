package main

import (
	"fmt"
	"strconv"
	"strings"

	"charades/internal/annotations"
)

// formatScore renders a quality or relevance score, showing the unset
// sentinel as a dash.
func formatScore(value int) string {
	if value == annotations.Unset {
		return "-"
	}
	return strconv.Itoa(value)
}

func formatLength(value float64) string {
	if value == annotations.Unset {
		return "-"
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func formatTiming(interval []float64) string {
	parts := make([]string, 0, len(interval))
	for _, v := range interval {
		parts = append(parts, strconv.FormatFloat(v, 'f', 1, 64))
	}
	return strings.Join(parts, "-")
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func pluralize(count int, singular string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %ss", count, singular)
}
