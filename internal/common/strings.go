package common

import "strings"

// Helper function to check if a string contains a substring (case-insensitive)
func ContainsInsensitive(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// SplitAndTrim splits a comma separated list and drops empty entries.
func SplitAndTrim(value string) []string {
	var parts []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); len(part) > 0 {
			parts = append(parts, part)
		}
	}
	return parts
}
