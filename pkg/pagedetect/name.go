package pagedetect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/odvcencio/pagewright/pkg/trace"
)

// pageSuffix terminates every generated page name.
const pageSuffix = "Page"

// NameGenerator synthesizes display names for page segments via a
// cascade of strategies; the first non-empty result wins and the
// indexed fallback guarantees a name for every segment.
type NameGenerator struct {
	keywords Keywords
}

// NewNameGenerator creates a generator with the given keyword
// configuration. Empty keyword lists fall back to the defaults.
func NewNameGenerator(keywords Keywords) *NameGenerator {
	return &NameGenerator{keywords: keywords.withDefaults()}
}

// nameStrategy produces a candidate page name or "" to pass to the
// next strategy.
type nameStrategy struct {
	name     string
	generate func(g *NameGenerator, seg *PageSegment, actions []trace.Action, intent Intent, index int) string
}

var nameStrategies = []nameStrategy{
	{"trigger", (*NameGenerator).fromTrigger},
	{"url", (*NameGenerator).fromURL},
	{"intent", (*NameGenerator).fromIntent},
	{"actions", (*NameGenerator).fromActions},
	{"fallback", (*NameGenerator).fromIndex},
}

// Generate returns a non-empty page name for the segment at position
// index among the emitted segments.
func (g *NameGenerator) Generate(seg *PageSegment, actions []trace.Action, intent Intent, index int) string {
	for _, strategy := range nameStrategies {
		if name := strategy.generate(g, seg, actions, intent, index); name != "" {
			metricNameStrategy.WithLabelValues(strategy.name).Inc()
			return name
		}
	}
	// Unreachable: the fallback strategy never passes.
	return fmt.Sprintf("%s%d", pageSuffix, index+1)
}

// fromTrigger names the segment after the element whose click opened it.
func (g *NameGenerator) fromTrigger(seg *PageSegment, actions []trace.Action, _ Intent, _ int) string {
	trigger := seg.Trigger(actions)
	if trigger == nil {
		return ""
	}
	name := resolveElementName(trigger)
	if name == "" {
		return ""
	}
	return pageify(pascalCase(name))
}

var (
	numericComponentPattern = regexp.MustCompile(`^\d+$`)
	extensionPattern        = regexp.MustCompile(`(?i)\.(php|jsp|html|aspx)$`)
)

// fromURL names the segment after its URL path. Numeric components are
// dropped as resource IDs; a reverse scan prefers domain keywords; then
// a forward scan past the leading component (usually an application
// prefix) takes the first non-generic, non-file component; the final
// fallback is the last path component verbatim.
func (g *NameGenerator) fromURL(seg *PageSegment, _ []trace.Action, _ Intent, _ int) string {
	if seg.URLPattern == "" {
		return ""
	}
	parts := pathComponents(seg.URLPattern)
	if len(parts) == 0 {
		return ""
	}

	for i := len(parts) - 1; i >= 0; i-- {
		if containsAny(parts[i], g.keywords.MeaningfulPath) {
			return pageify(pascalCase(parts[i]))
		}
	}

	for i := 1; i < len(parts); i++ {
		if isGenericComponent(parts[i], g.keywords.GenericPath) || extensionPattern.MatchString(parts[i]) {
			continue
		}
		return pageify(pascalCase(parts[i]))
	}

	return pageify(pascalCase(parts[len(parts)-1]))
}

// fromIntent maps classified intents to their canonical page names.
// Generic segments fall through to the next strategy.
var intentPageNames = map[Intent]string{
	IntentAuthentication: "LoginPage",
	IntentDashboard:      "DashboardPage",
	IntentForm:           "FormPage",
	IntentNavigation:     "NavigationPage",
	IntentVerification:   "VerificationPage",
}

func (g *NameGenerator) fromIntent(_ *PageSegment, _ []trace.Action, intent Intent, _ int) string {
	return intentPageNames[intent]
}

var capitalizedTokenPattern = regexp.MustCompile(`[A-Z][a-zA-Z]+`)

// fromActions mines the segment's element names for a usable token:
// capitalized words first, plain word splits second, filtered through
// a length floor and the stoplist, first unique survivor wins.
func (g *NameGenerator) fromActions(seg *PageSegment, _ []trace.Action, _ Intent, _ int) string {
	seen := make(map[string]bool)
	var tokens []string
	for i := range seg.Actions {
		name := resolveElementName(&seg.Actions[i])
		if name == "" {
			continue
		}
		words := capitalizedTokenPattern.FindAllString(name, -1)
		if len(words) == 0 {
			words = splitWords(name)
		}
		for _, w := range words {
			if len(w) <= 3 {
				continue
			}
			lower := strings.ToLower(w)
			if seen[lower] || stoplisted(lower, g.keywords.NameStoplist) {
				continue
			}
			seen[lower] = true
			tokens = append(tokens, w)
		}
	}
	if len(tokens) == 0 {
		return ""
	}
	return pageify(pascalCase(tokens[0]))
}

// fromIndex is the terminal strategy: a positional name that can never
// be empty.
func (g *NameGenerator) fromIndex(_ *PageSegment, _ []trace.Action, _ Intent, index int) string {
	return fmt.Sprintf("%s%d", pageSuffix, index+1)
}

var wordSplitPattern = regexp.MustCompile(`[\s_-]+`)

// pascalCase upper-cases the first rune of each whitespace, underscore,
// or hyphen separated word and lower-cases the rest. Other punctuation
// passes through untouched.
func pascalCase(s string) string {
	var sb strings.Builder
	for _, w := range wordSplitPattern.Split(s, -1) {
		if w == "" {
			continue
		}
		runes := []rune(w)
		sb.WriteString(strings.ToUpper(string(runes[0])))
		if len(runes) > 1 {
			sb.WriteString(strings.ToLower(string(runes[1:])))
		}
	}
	return sb.String()
}

// pageify appends the page suffix unless the name already carries it.
func pageify(name string) string {
	if name == "" || strings.HasSuffix(name, pageSuffix) {
		return name
	}
	return name + pageSuffix
}

// pathComponents trims surrounding slashes, splits the pattern, and
// drops purely numeric components (resource IDs).
func pathComponents(pattern string) []string {
	var parts []string
	for _, p := range strings.Split(strings.Trim(pattern, "/"), "/") {
		if p == "" || numericComponentPattern.MatchString(p) {
			continue
		}
		parts = append(parts, p)
	}
	return parts
}

func isGenericComponent(part string, generic []string) bool {
	lower := strings.ToLower(part)
	for _, g := range generic {
		if lower == strings.ToLower(g) {
			return true
		}
	}
	return false
}

func stoplisted(lower string, stoplist []string) bool {
	for _, s := range stoplist {
		if lower == strings.ToLower(s) {
			return true
		}
	}
	return false
}

func splitWords(s string) []string {
	var words []string
	for _, w := range wordSplitPattern.Split(s, -1) {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
