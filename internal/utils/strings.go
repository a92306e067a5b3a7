package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitList splits comma/semicolon separated values (e.g. amenity names)
// into cleaned slices.
func SplitList(raw string) []string {
	out := []string{}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// JoinList is the inverse of SplitList for storage in a single column.
func JoinList(items []string) string {
	cleaned := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			cleaned = append(cleaned, it)
		}
	}
	return strings.Join(cleaned, ",")
}

// MaskAccountNumber keeps only the last four digits visible.
func MaskAccountNumber(num string) string {
	num = strings.TrimSpace(num)
	if len(num) <= 4 {
		return num
	}
	return strings.Repeat("*", len(num)-4) + num[len(num)-4:]
}
