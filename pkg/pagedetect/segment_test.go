package pagedetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/pagewright/pkg/trace"
)

func TestSegment_EmptyTrace(t *testing.T) {
	assert.Empty(t, Segment(nil, nil))
}

func TestSegment_NoBoundaries(t *testing.T) {
	actions := []trace.Action{
		trace.ClickText("Expand"),
		trace.Goto("/inventory"),
		trace.Fill("Search", "widgets"),
	}

	segments := Segment(actions, nil)
	require.Len(t, segments, 1)

	seg := segments[0]
	assert.Equal(t, 0, seg.StartIndex)
	assert.Equal(t, 3, seg.EndIndex)
	assert.Equal(t, IntentGeneric, seg.Intent)
	assert.Equal(t, 0.5, seg.Confidence)
	assert.Equal(t, -1, seg.TriggerIndex)
	// URL comes from the first navigation action anywhere in the trace.
	assert.Equal(t, "/inventory", seg.URL)
}

func TestSegment_DropsEmptyLeadingSlice(t *testing.T) {
	actions := []trace.Action{
		trace.Goto("/login"),
		trace.Fill("Username", "alice"),
	}
	boundaries := DetectBoundaries(actions)

	segments := Segment(actions, boundaries)
	require.Len(t, segments, 1)
	assert.Equal(t, 0, segments[0].StartIndex)
	assert.Equal(t, 2, segments[0].EndIndex)
	assert.Equal(t, -1, segments[0].TriggerIndex)
}

func TestSegment_Partition(t *testing.T) {
	actions := []trace.Action{
		trace.Goto("/login"),
		trace.Fill("Username", "alice"),
		trace.ClickRole("button", "Login"),
		trace.Goto("/home"),
		trace.ClickRole(trace.RoleLink, "Admin"),
		trace.Goto("/admin"),
		trace.ClickRole("button", "Save"),
	}
	boundaries := DetectBoundaries(actions)

	segments := Segment(actions, boundaries)
	require.NotEmpty(t, segments)

	cursor := segments[0].StartIndex
	for i, seg := range segments {
		assert.Greater(t, seg.EndIndex, seg.StartIndex, "segment %d must be non-empty", i)
		assert.Equal(t, cursor, seg.StartIndex, "segment %d must be contiguous", i)
		assert.Len(t, seg.Actions, seg.EndIndex-seg.StartIndex)
		cursor = seg.EndIndex
	}
	assert.Equal(t, len(actions), cursor)
}

func TestSegment_ActionsAreVerbatimSubslices(t *testing.T) {
	actions := []trace.Action{
		trace.Goto("/a"),
		trace.ClickText("One"),
		trace.Goto("/b"),
		trace.ClickText("Two"),
	}
	boundaries := DetectBoundaries(actions)

	segments := Segment(actions, boundaries)
	for _, seg := range segments {
		for j, a := range seg.Actions {
			assert.Equal(t, actions[seg.StartIndex+j], a)
		}
	}
}

func TestSegment_TriggerOffset(t *testing.T) {
	actions := []trace.Action{
		trace.Goto("/store"),
		trace.ClickText("Deals"),
		trace.ClickRole(trace.RoleLink, "Admin"),
		trace.Goto("/admin/users"),
		trace.ClickRole("button", "Save"),
	}
	boundaries := DetectBoundaries(actions)

	segments := Segment(actions, boundaries)
	require.Len(t, segments, 2)

	// The first segment never has a trigger.
	assert.Equal(t, -1, segments[0].TriggerIndex)

	// The second segment records the click that caused entry into it,
	// even though a coincident explicit boundary follows the implicit one.
	require.Equal(t, 3, segments[1].StartIndex)
	assert.Equal(t, 2, segments[1].TriggerIndex)

	trigger := segments[1].Trigger(actions)
	require.NotNil(t, trigger)
	assert.Equal(t, "Admin", trigger.Target.Name())
}

func TestSegment_DuplicateBoundariesTolerated(t *testing.T) {
	actions := []trace.Action{
		trace.ClickText("One"),
		trace.ClickText("Two"),
		trace.ClickText("Three"),
		trace.ClickText("Four"),
	}
	boundaries := []Boundary{
		{Index: 2, Type: BoundaryExplicit, ActionIndex: 2, TriggerIndex: -1},
		{Index: 2, Type: BoundaryExplicit, ActionIndex: 2, TriggerIndex: -1},
		{Index: 2, Type: BoundaryExplicit, ActionIndex: 2, TriggerIndex: -1},
	}

	segments := Segment(actions, boundaries)
	require.Len(t, segments, 2)
	assert.Equal(t, 0, segments[0].StartIndex)
	assert.Equal(t, 2, segments[0].EndIndex)
	assert.Equal(t, 2, segments[1].StartIndex)
	assert.Equal(t, 4, segments[1].EndIndex)
}

func TestSegment_UnsortedBoundaries(t *testing.T) {
	actions := []trace.Action{
		trace.ClickText("One"),
		trace.ClickText("Two"),
		trace.ClickText("Three"),
		trace.ClickText("Four"),
	}
	boundaries := []Boundary{
		{Index: 3, Type: BoundaryExplicit, ActionIndex: 3, TriggerIndex: -1},
		{Index: 1, Type: BoundaryExplicit, ActionIndex: 1, TriggerIndex: -1},
	}

	segments := Segment(actions, boundaries)
	require.Len(t, segments, 3)
	assert.Equal(t, 0, segments[0].StartIndex)
	assert.Equal(t, 1, segments[1].StartIndex)
	assert.Equal(t, 3, segments[2].StartIndex)
}

func TestSegment_BoundaryAtTraceEnd(t *testing.T) {
	actions := []trace.Action{
		trace.ClickRole(trace.RoleLink, "Away"),
	}
	boundaries := DetectBoundaries(actions)
	require.Len(t, boundaries, 1)
	require.Equal(t, 1, boundaries[0].Index)

	segments := Segment(actions, boundaries)
	require.Len(t, segments, 1)
	assert.Equal(t, 0, segments[0].StartIndex)
	assert.Equal(t, 1, segments[0].EndIndex)
}

func TestSegment_URLPrefersInSliceNavigation(t *testing.T) {
	actions := []trace.Action{
		trace.ClickRole(trace.RoleLink, "Admin"),
		trace.Goto("/admin"),
		trace.Goto("/admin/users"),
	}
	boundaries := DetectBoundaries(actions)

	segments := Segment(actions, boundaries)
	require.Len(t, segments, 3)

	// The middle segment holds the first navigation; the navigation
	// inside the slice wins over the entry boundary's resolved URL.
	assert.Equal(t, "/admin", segments[1].URL)
	assert.Equal(t, "/admin", segments[1].URLPattern)
	assert.Equal(t, "/admin/users", segments[2].URL)
}

func TestSegment_URLFallsBackToEntryBoundary(t *testing.T) {
	actions := []trace.Action{
		trace.ClickText("Expand"),
		trace.ClickRole(trace.RoleLink, "Reports"),
		trace.ClickText("Quarterly"),
	}
	boundaries := []Boundary{
		{Index: 2, Type: BoundaryImplicit, ActionIndex: 1, TriggerIndex: 1, URL: "/reports", URLPattern: "/reports"},
	}

	segments := Segment(actions, boundaries)
	require.Len(t, segments, 2)
	assert.Equal(t, "", segments[0].URL)
	assert.Equal(t, "/reports", segments[1].URL)
	assert.Equal(t, 1, segments[1].TriggerIndex)
}
