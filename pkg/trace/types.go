package trace

// ActionType represents the supported recorded interaction kinds.
type ActionType string

const (
	ActionNavigation ActionType = "navigation"
	ActionClick      ActionType = "click"
	ActionFill       ActionType = "fill"
	ActionTypeText   ActionType = "type"
	ActionSelect     ActionType = "select"
	ActionAssertion  ActionType = "assertion"
)

// MethodGoto is the navigation method for a direct page load.
const MethodGoto = "goto"

// LocatorStrategy identifies how the recorder located a target element.
type LocatorStrategy string

const (
	LocatorRole   LocatorStrategy = "role"
	LocatorText   LocatorStrategy = "text"
	LocatorLabel  LocatorStrategy = "label"
	LocatorTestID LocatorStrategy = "testid"
	LocatorCSS    LocatorStrategy = "css"
)

// RoleLink is the accessibility role carried by anchor elements.
const RoleLink = "link"

// TargetOptions carries locator options captured by the recorder.
type TargetOptions struct {
	Name  string `json:"name,omitempty"`
	Exact bool   `json:"exact,omitempty"`
}

// Target describes the element an action was applied to.
type Target struct {
	Strategy LocatorStrategy `json:"strategy"`
	Selector string          `json:"selector,omitempty"`
	Options  *TargetOptions  `json:"options,omitempty"`
}

// IsRole reports whether the target was located by the given
// accessibility role.
func (t *Target) IsRole(role string) bool {
	return t != nil && t.Strategy == LocatorRole && t.Selector == role
}

// Name returns the explicit locator name option, if any.
func (t *Target) Name() string {
	if t == nil || t.Options == nil {
		return ""
	}
	return t.Options.Name
}

// Action is one recorded interaction step. Actions are produced by an
// external recorder and treated as immutable.
type Action struct {
	Type       ActionType `json:"type"`
	Method     string     `json:"method,omitempty"`
	Args       []any      `json:"args,omitempty"`
	Target     *Target    `json:"target,omitempty"`
	Expression string     `json:"expression,omitempty"`
}

// IsGoto reports whether the action is a direct navigation call.
func (a *Action) IsGoto() bool {
	return a.Type == ActionNavigation && a.Method == MethodGoto
}

// IsInput reports whether the action enters text into a field.
func (a *Action) IsInput() bool {
	return a.Type == ActionFill || a.Type == ActionTypeText
}

// FirstArgString returns the first call argument when it is a string,
// or "" when the argument list is empty or loosely typed otherwise.
func (a *Action) FirstArgString() string {
	if len(a.Args) == 0 {
		return ""
	}
	s, _ := a.Args[0].(string)
	return s
}
