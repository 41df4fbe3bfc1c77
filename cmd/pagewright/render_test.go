package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/pagewright/pkg/config"
	"github.com/odvcencio/pagewright/pkg/pagedetect"
	"github.com/odvcencio/pagewright/pkg/trace"
)

func sampleSegments() (*trace.Trace, []pagedetect.PageSegment) {
	tr := &trace.Trace{ID: "trace-1", Actions: []trace.Action{
		trace.Goto("/login"),
		trace.Fill("Username", "alice"),
		trace.ClickRole("button", "Login"),
	}}
	segments := []pagedetect.PageSegment{{
		StartIndex:   0,
		EndIndex:     3,
		Actions:      tr.Actions,
		PageName:     "LoginPage",
		Intent:       pagedetect.IntentAuthentication,
		Confidence:   1.0,
		URL:          "/login",
		URLPattern:   "/login",
		TriggerIndex: -1,
	}}
	return tr, segments
}

func TestRenderTable(t *testing.T) {
	tr, segments := sampleSegments()
	r := newRenderer(config.FormatTable, true)

	var buf bytes.Buffer
	require.NoError(t, r.render(&buf, tr, segments))

	out := buf.String()
	assert.Contains(t, out, "trace-1")
	assert.Contains(t, out, "3 actions, 1 pages")
	assert.Contains(t, out, "LoginPage")
	assert.Contains(t, out, "authentication")
	assert.Contains(t, out, "[0,3)")
	assert.Contains(t, out, "1.00")
}

func TestRenderTable_Empty(t *testing.T) {
	r := newRenderer(config.FormatTable, true)

	var buf bytes.Buffer
	require.NoError(t, r.render(&buf, &trace.Trace{ID: "t"}, nil))
	assert.Contains(t, buf.String(), "no segments")
}

func TestRenderJSON(t *testing.T) {
	tr, segments := sampleSegments()
	r := newRenderer(config.FormatJSON, true)

	var buf bytes.Buffer
	require.NoError(t, r.render(&buf, tr, segments))

	var export segmentExport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &export))
	assert.Equal(t, "trace-1", export.TraceID)
	require.Len(t, export.Segments, 1)
	assert.Equal(t, "LoginPage", export.Segments[0].PageName)
	assert.Equal(t, -1, export.Segments[0].TriggerIndex)
}

func TestExportSegments(t *testing.T) {
	tr, segments := sampleSegments()
	path := filepath.Join(t.TempDir(), "segments.json")

	require.NoError(t, exportSegments(path, tr, segments))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var export segmentExport
	require.NoError(t, json.Unmarshal(data, &export))
	assert.Equal(t, "trace-1", export.TraceID)
	assert.Len(t, export.Segments, 1)
}

func TestExportSegments_BadPath(t *testing.T) {
	tr, segments := sampleSegments()
	err := exportSegments(filepath.Join(t.TempDir(), "missing", "segments.json"), tr, segments)
	assert.Error(t, err)
}
