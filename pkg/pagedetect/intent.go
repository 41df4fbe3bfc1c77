package pagedetect

import (
	"strings"

	"github.com/odvcencio/pagewright/pkg/trace"
)

// Classifier assigns one intent label per segment using ordered
// precedence rules; the first matching rule wins.
type Classifier struct {
	keywords Keywords
}

// NewClassifier creates a classifier with the given keyword
// configuration. Empty keyword lists fall back to the defaults.
func NewClassifier(keywords Keywords) *Classifier {
	return &Classifier{keywords: keywords.withDefaults()}
}

// Classify returns the segment's dominant intent.
func (c *Classifier) Classify(seg *PageSegment) Intent {
	features := newSegmentFeatures(seg)
	for _, rule := range intentRules {
		if rule.match(c.keywords, features) {
			return rule.intent
		}
	}
	return IntentGeneric
}

// intentRule is one step of the precedence chain.
type intentRule struct {
	intent Intent
	match  func(k Keywords, f *segmentFeatures) bool
}

// intentRules is evaluated in order; the first match wins.
var intentRules = []intentRule{
	{IntentAuthentication, matchAuthentication},
	{IntentForm, func(_ Keywords, f *segmentFeatures) bool {
		return f.inputs >= 1 && f.clicks >= 1
	}},
	{IntentDashboard, func(k Keywords, f *segmentFeatures) bool {
		return f.url != "" && containsAny(f.url, k.DashboardURL)
	}},
	{IntentNavigation, func(_ Keywords, f *segmentFeatures) bool {
		return f.clicks >= 1 && f.inputs == 0
	}},
	{IntentVerification, func(_ Keywords, f *segmentFeatures) bool {
		return f.assertions >= 1 && f.inputs == 0 && f.clicks == 0
	}},
}

// matchAuthentication requires an authentication term in the combined
// expressions and a clicked element whose name reads as a login action.
func matchAuthentication(k Keywords, f *segmentFeatures) bool {
	if !containsAny(f.expressions, k.Authentication) {
		return false
	}
	for _, name := range f.clickNames {
		if containsAny(name, k.LoginActions) {
			return true
		}
	}
	return false
}

// segmentFeatures caches the per-segment signals shared by the rules.
type segmentFeatures struct {
	url         string
	expressions string // concatenated action expressions, lowercased
	clicks      int
	inputs      int
	assertions  int
	clickNames  []string // resolved element names of click actions
}

func newSegmentFeatures(seg *PageSegment) *segmentFeatures {
	f := &segmentFeatures{url: seg.URL}
	var sb strings.Builder
	for i := range seg.Actions {
		a := &seg.Actions[i]
		sb.WriteString(strings.ToLower(a.Expression))
		sb.WriteByte(' ')
		switch {
		case a.Type == trace.ActionClick:
			f.clicks++
			f.clickNames = append(f.clickNames, resolveElementName(a))
		case a.IsInput():
			f.inputs++
		case a.Type == trace.ActionAssertion:
			f.assertions++
		}
	}
	f.expressions = sb.String()
	return f
}
