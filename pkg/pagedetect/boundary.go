package pagedetect

import (
	"net/url"

	"github.com/odvcencio/pagewright/pkg/trace"
)

// DetectBoundaries scans an action trace for page transition points.
// The result is unsorted and may contain coincident indices; the
// segmenter tolerates both. It never fails: malformed URLs degrade to
// their raw string form.
func DetectBoundaries(actions []trace.Action) []Boundary {
	var boundaries []Boundary
	for i := range actions {
		a := &actions[i]
		switch {
		case a.IsGoto():
			rawURL := a.FirstArgString()
			boundaries = append(boundaries, Boundary{
				Index:        i,
				Type:         BoundaryExplicit,
				ActionIndex:  i,
				TriggerIndex: -1,
				URL:          rawURL,
				URLPattern:   urlPattern(rawURL),
			})
		case a.Type == trace.ActionClick && isNavigationalClick(actions, i):
			// The boundary sits after the click; the page it opens may
			// never materialize as a navigation action, in which case
			// the URL stays unresolved.
			rawURL := nextNavigationURL(actions, i+1)
			boundaries = append(boundaries, Boundary{
				Index:        i + 1,
				Type:         BoundaryImplicit,
				ActionIndex:  i,
				TriggerIndex: i,
				URL:          rawURL,
				URLPattern:   urlPattern(rawURL),
			})
		}
	}
	return boundaries
}

// isNavigationalClick applies the strict link rule: a click counts as
// navigational only when the next action is a direct navigation or the
// click targeted the accessibility role "link". Buttons, menu items,
// and other clickables never qualify.
func isNavigationalClick(actions []trace.Action, i int) bool {
	if i+1 < len(actions) && actions[i+1].IsGoto() {
		return true
	}
	return actions[i].Target.IsRole(trace.RoleLink)
}

// nextNavigationURL scans forward from index from for the nearest
// navigation action and returns its URL argument, or "" if none exists.
func nextNavigationURL(actions []trace.Action, from int) string {
	for i := from; i < len(actions); i++ {
		if actions[i].Type == trace.ActionNavigation {
			return actions[i].FirstArgString()
		}
	}
	return ""
}

// firstNavigationURL returns the URL of the first navigation action in
// the slice, or "" if none carries one.
func firstNavigationURL(actions []trace.Action) string {
	return nextNavigationURL(actions, 0)
}

// urlPattern reduces a URL to its path component, stripping query and
// fragment. Unparsable or path-less input degrades to the raw string.
func urlPattern(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return rawURL
	}
	return u.Path
}
