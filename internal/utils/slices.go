package utils

import "strings"

// ContainsString checks if a string is present in a slice of strings
func ContainsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// CompactStrings trims every element and drops empty ones and duplicates,
// keeping first-seen order.
func CompactStrings(slice []string) []string {
	out := make([]string, 0, len(slice))
	for _, s := range slice {
		s = strings.TrimSpace(s)
		if s == "" || ContainsString(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
