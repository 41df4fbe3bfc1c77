package trace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pwerrors "github.com/odvcencio/pagewright/pkg/errors"
)

func TestDecode(t *testing.T) {
	payload := `{
		"id": "0b6f1c9e-2a43-4f7a-9f3d-6a1f4d2c8e10",
		"actions": [
			{"type": "navigation", "method": "goto", "args": ["/login"], "expression": "page.goto('/login')"},
			{"type": "click", "target": {"strategy": "role", "selector": "button", "options": {"name": "Login"}}}
		]
	}`

	tr, err := Decode(strings.NewReader(payload))
	require.NoError(t, err)

	assert.Equal(t, "0b6f1c9e-2a43-4f7a-9f3d-6a1f4d2c8e10", tr.ID)
	require.Len(t, tr.Actions, 2)

	assert.True(t, tr.Actions[0].IsGoto())
	assert.Equal(t, "/login", tr.Actions[0].FirstArgString())

	assert.Equal(t, ActionClick, tr.Actions[1].Type)
	assert.Equal(t, "Login", tr.Actions[1].Target.Name())
}

func TestDecode_AssignsID(t *testing.T) {
	tr, err := Decode(strings.NewReader(`{"actions": []}`))
	require.NoError(t, err)
	assert.NotEmpty(t, tr.ID)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"actions": [`))
	require.Error(t, err)
	assert.True(t, pwerrors.IsCode(err, pwerrors.ErrCodeTraceParse))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"actions": [{"type": "click"}]}`), 0644))

	tr, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, tr.Actions, 1)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, pwerrors.IsCode(err, pwerrors.ErrCodeTraceRead))
}

func TestFirstArgString_LooselyTyped(t *testing.T) {
	a := Action{Type: ActionNavigation, Args: []any{42}}
	assert.Equal(t, "", a.FirstArgString())

	a = Action{Type: ActionNavigation}
	assert.Equal(t, "", a.FirstArgString())
}

func TestTargetHelpers(t *testing.T) {
	link := ClickRole(RoleLink, "Admin")
	assert.True(t, link.Target.IsRole(RoleLink))
	assert.Equal(t, "Admin", link.Target.Name())

	var nothing *Target
	assert.False(t, nothing.IsRole(RoleLink))
	assert.Equal(t, "", nothing.Name())
}

func TestBuilders(t *testing.T) {
	gotoAction := Goto("/home")
	assert.True(t, gotoAction.IsGoto())
	fillAction := Fill("Username", "alice")
	assert.True(t, fillAction.IsInput())
	typeAction := TypeText("#search", "reports")
	assert.True(t, typeAction.IsInput())
	clickAction := ClickText("Save")
	assert.False(t, clickAction.IsInput())
	assert.Equal(t, ActionAssertion, Assert("expect(page).toHaveURL('/home')").Type)
}
