package execution

import (
	"path"
	"strings"

	"tsr/suite"
)

// Filter selects suites by name pattern.
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps suites whose name matches pattern. Patterns support
// * and ? wildcards ("Math*", "*Suite"); a plain string is a substring
// match.
func (f *Filter) FilterByName(suites []suite.Suite, pattern string) []suite.Suite {
	if pattern == "" {
		return suites
	}

	var filtered []suite.Suite
	for _, s := range suites {
		if matchesName(s.Name(), pattern) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func matchesName(name, pattern string) bool {
	if matched, err := path.Match(pattern, name); err == nil && matched {
		return true
	}

	// Flexible fallback for patterns like "*Payment*": every non-empty
	// segment between wildcards must appear in the name.
	if strings.Contains(pattern, "*") {
		parts := strings.Split(pattern, "*")
		hasNonEmpty := false
		for _, part := range parts {
			if part == "" {
				continue
			}
			hasNonEmpty = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmpty
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
