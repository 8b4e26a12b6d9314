// Package strset provides a case-insensitive string set used to keep
// free-text lists (such as ad hoc service names) unique at one choke point.
package strset

import "strings"

// NormalizeUnique trims every value, drops empty strings and removes
// case-insensitive duplicates, keeping the first spelling and the
// original order of first occurrence.
func NormalizeUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
	}

	return result
}

// ContainsFold reports whether values already holds s, compared
// case-insensitively after trimming.
func ContainsFold(values []string, s string) bool {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, v := range values {
		if strings.ToLower(strings.TrimSpace(v)) == needle {
			return true
		}
	}
	return false
}
