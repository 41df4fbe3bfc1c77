package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*Logger, string) {
	t.Helper()
	dir := t.TempDir()
	logger, err := NewLogger(dir, "test-run")
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })
	return logger, dir
}

func readEvents(t *testing.T, path string) []Event {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var ev Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &ev))
		events = append(events, ev)
	}
	require.NoError(t, scanner.Err())
	return events
}

func TestLog_WritesRunFile(t *testing.T) {
	logger, dir := newTestLogger(t)

	require.NoError(t, logger.Info(CategoryDetection, "pages_detected", "done", map[string]any{"segments": 3}))

	events := readEvents(t, filepath.Join(dir, "runs", "test-run.jsonl"))
	require.Len(t, events, 1)
	assert.Equal(t, LevelInfo, events[0].Level)
	assert.Equal(t, CategoryDetection, events[0].Category)
	assert.Equal(t, "pages_detected", events[0].EventType)
	assert.Equal(t, "test-run", events[0].RunID)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestLog_ErrorGoesToBothFiles(t *testing.T) {
	logger, dir := newTestLogger(t)

	require.NoError(t, logger.Error(CategoryTrace, "trace_parse_failed", "bad json", nil))

	runEvents := readEvents(t, filepath.Join(dir, "runs", "test-run.jsonl"))
	errEvents := readEvents(t, filepath.Join(dir, "errors.jsonl"))
	assert.Len(t, runEvents, 1)
	assert.Len(t, errEvents, 1)
}

func TestLog_MinLevelFilters(t *testing.T) {
	logger, dir := newTestLogger(t)

	require.NoError(t, logger.Debug(CategoryConfig, "config_loaded", "filtered out", nil))
	require.NoError(t, logger.Warn(CategoryConfig, "config_fallback", "kept", nil))

	events := readEvents(t, filepath.Join(dir, "runs", "test-run.jsonl"))
	require.Len(t, events, 1)
	assert.Equal(t, LevelWarn, events[0].Level)
}

func TestLog_DebugAfterLoweringLevel(t *testing.T) {
	logger, dir := newTestLogger(t)
	logger.SetMinLevel(LevelDebug)

	require.NoError(t, logger.Debug(CategoryWatch, "file_seen", "debug kept", nil))

	events := readEvents(t, filepath.Join(dir, "runs", "test-run.jsonl"))
	assert.Len(t, events, 1)
}

func TestLog_TraceIDStamped(t *testing.T) {
	logger, dir := newTestLogger(t)
	logger.SetTraceID("trace-abc")

	require.NoError(t, logger.Info(CategoryExport, "segments_written", "out", nil))

	events := readEvents(t, filepath.Join(dir, "runs", "test-run.jsonl"))
	require.Len(t, events, 1)
	assert.Equal(t, "trace-abc", events[0].TraceID)
}
