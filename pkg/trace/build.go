package trace

import "fmt"

// Constructors for the common action shapes a recorder emits. Callers
// assembling traces by hand (tests, fixtures) use these instead of
// filling Action structs field by field.

// Goto builds a direct navigation action.
func Goto(url string) Action {
	return Action{
		Type:       ActionNavigation,
		Method:     MethodGoto,
		Args:       []any{url},
		Expression: fmt.Sprintf("page.goto('%s')", url),
	}
}

// ClickRole builds a click on an element located by accessibility role.
func ClickRole(role, name string) Action {
	return Action{
		Type: ActionClick,
		Target: &Target{
			Strategy: LocatorRole,
			Selector: role,
			Options:  &TargetOptions{Name: name},
		},
		Expression: fmt.Sprintf("page.getByRole('%s', { name: '%s' }).click()", role, name),
	}
}

// ClickText builds a click on an element located by visible text.
func ClickText(text string) Action {
	return Action{
		Type: ActionClick,
		Target: &Target{
			Strategy: LocatorText,
			Selector: text,
		},
		Expression: fmt.Sprintf("page.getByText('%s').click()", text),
	}
}

// Fill builds a fill action against a labeled field.
func Fill(label, value string) Action {
	return Action{
		Type: ActionFill,
		Args: []any{value},
		Target: &Target{
			Strategy: LocatorLabel,
			Selector: label,
		},
		Expression: fmt.Sprintf("page.getByLabel('%s').fill('%s')", label, value),
	}
}

// TypeText builds a keystroke-typing action against a CSS selector.
func TypeText(selector, value string) Action {
	return Action{
		Type: ActionTypeText,
		Args: []any{value},
		Target: &Target{
			Strategy: LocatorCSS,
			Selector: selector,
		},
		Expression: fmt.Sprintf("page.locator('%s').type('%s')", selector, value),
	}
}

// Assert builds an assertion action from its raw expression.
func Assert(expression string) Action {
	return Action{
		Type:       ActionAssertion,
		Expression: expression,
	}
}
