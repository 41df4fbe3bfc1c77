package pagedetect

import (
	"regexp"
	"strings"

	"github.com/odvcencio/pagewright/pkg/trace"
)

var (
	nameOptionPattern = regexp.MustCompile(`name:\s*['"]([^'"]*)['"]`)
	getByTextPattern  = regexp.MustCompile(`getByText\(['"]([^'"]*)['"]\)`)
)

// resolveElementName extracts the best human-readable identifier for
// the element an action touched. Preference order: the explicit target
// name option, a name token in the raw expression, a getByText
// argument, the raw locator string, empty.
func resolveElementName(a *trace.Action) string {
	if a == nil {
		return ""
	}
	if name := a.Target.Name(); name != "" {
		return name
	}
	if m := nameOptionPattern.FindStringSubmatch(a.Expression); m != nil && m[1] != "" {
		return m[1]
	}
	if m := getByTextPattern.FindStringSubmatch(a.Expression); m != nil && m[1] != "" {
		return m[1]
	}
	if a.Target != nil && a.Target.Selector != "" {
		return a.Target.Selector
	}
	return ""
}

// containsAny reports whether s contains any of the keywords,
// case-insensitively.
func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
