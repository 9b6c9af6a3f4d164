// Package format provides duration and string formatting helpers shared
// by the output composer and the acquisition layer.
package format

import (
	"fmt"
	"strings"
)

// Seconds renders a seconds value with two decimal places and the
// literal unit word, e.g. "12345.67 seconds".
func Seconds(seconds float64) string {
	return fmt.Sprintf("%.2f seconds", seconds)
}

// BriefSeconds renders a bare two-decimal seconds value for
// machine-friendly output, e.g. "12345.67".
func BriefSeconds(seconds float64) string {
	return fmt.Sprintf("%.2f", seconds)
}

// Pretty decomposes a seconds value into days, hours, and minutes and
// renders the non-zero components in descending unit order, separated
// by ", " and pluralized. The sub-minute remainder is truncated. When
// days and hours are both zero the minutes component is included even
// at zero, so the result is never empty.
func Pretty(seconds float64) string {
	var components []string

	days := int(seconds / 86400)
	if days > 0 {
		components = append(components, Pluralize(days, "day"))
	}

	hours := (int(seconds) % 86400) / 3600
	if hours > 0 {
		components = append(components, Pluralize(hours, "hour"))
	}

	minutes := (int(seconds) % 3600) / 60
	if minutes > 0 || len(components) == 0 {
		components = append(components, Pluralize(minutes, "minute"))
	}

	return strings.Join(components, ", ")
}

// Pluralize renders a count with its unit word, appending "s" unless
// the count is exactly 1.
func Pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// UniqueStrings returns a deduplicated slice of strings.
// The order of first occurrence is preserved.
func UniqueStrings(input []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, s := range input {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	return result
}
