package utilities

import (
	"strings"
	"time"
)

func ContainsString(slice []string, str string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}

func SliceToMap(sl []string) map[string]bool {
	m := make(map[string]bool)

	for _, each := range sl {
		m[each] = true
	}

	return m
}

// ContainsFold reports whether substr occurs in s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// UnionStrings merges base and extra into a duplicate-free slice, preserving
// order of first occurrence.
func UnionStrings(base []string, extra ...string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	var out []string
	for _, each := range append(append([]string{}, base...), extra...) {
		if seen[each] {
			continue
		}
		seen[each] = true
		out = append(out, each)
	}
	return out
}

func TimeNow() time.Time {
	return time.Now().UTC()
}
