package pagedetect

import "github.com/odvcencio/pagewright/pkg/trace"

// BoundaryType distinguishes how a page transition was detected.
type BoundaryType string

const (
	// BoundaryExplicit marks a direct navigation call.
	BoundaryExplicit BoundaryType = "explicit"
	// BoundaryImplicit marks a transition inferred from a link click.
	BoundaryImplicit BoundaryType = "implicit"
)

// Boundary is a detected transition point between two logical pages.
// Index is a position in [0, len(actions)]; ActionIndex and
// TriggerIndex are weak back-references into the source trace.
type Boundary struct {
	Index        int          `json:"index"`
	Type         BoundaryType `json:"type"`
	ActionIndex  int          `json:"action_index"`
	TriggerIndex int          `json:"trigger_index"` // click causing the transition; -1 for explicit
	URL          string       `json:"url,omitempty"`
	URLPattern   string       `json:"url_pattern,omitempty"`
}

// Intent labels the dominant purpose of a segment's actions.
type Intent string

const (
	IntentAuthentication Intent = "authentication"
	IntentForm           Intent = "form"
	IntentDashboard      Intent = "dashboard"
	IntentNavigation     Intent = "navigation"
	IntentVerification   Intent = "verification"
	IntentGeneric        Intent = "generic"
)

// PageSegment is a contiguous run of actions believed to occur on one
// logical page, with derived naming, intent, and confidence metadata.
// Actions is a verbatim sub-slice of the source trace over the
// half-open range [StartIndex, EndIndex).
type PageSegment struct {
	StartIndex   int            `json:"start_index"`
	EndIndex     int            `json:"end_index"`
	Actions      []trace.Action `json:"actions"`
	PageName     string         `json:"page_name"`
	Intent       Intent         `json:"intent"`
	Confidence   float64        `json:"confidence"`
	URL          string         `json:"url,omitempty"`
	URLPattern   string         `json:"url_pattern,omitempty"`
	TriggerIndex int            `json:"trigger_index"` // click that led into this segment; -1 when none
}

// Trigger resolves the segment's trigger back-reference against the
// source trace. Returns nil when the segment has no trigger.
func (s *PageSegment) Trigger(actions []trace.Action) *trace.Action {
	if s.TriggerIndex < 0 || s.TriggerIndex >= len(actions) {
		return nil
	}
	return &actions[s.TriggerIndex]
}

// Len returns the number of actions in the segment.
func (s *PageSegment) Len() int {
	return len(s.Actions)
}
