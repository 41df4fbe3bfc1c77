package pagedetect

import (
	"sort"

	"github.com/odvcencio/pagewright/pkg/trace"
)

// defaultConfidence is the segmenter's initial score before the
// confidence pass runs.
const defaultConfidence = 0.5

// Segment converts a boundary set into ordered, non-overlapping page
// segments over the trace. Zero-length slices (coincident or duplicate
// boundaries included) are dropped rather than emitted. With no
// boundaries at all, the whole trace becomes a single segment.
func Segment(actions []trace.Action, boundaries []Boundary) []PageSegment {
	if len(actions) == 0 {
		return nil
	}
	if len(boundaries) == 0 {
		return []PageSegment{makeSegment(actions, 0, len(actions), nil)}
	}

	sorted := make([]Boundary, len(boundaries))
	copy(sorted, boundaries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	segments := make([]PageSegment, 0, len(sorted)+1)
	cursor := 0

	// entry is the boundary that opened the segment currently being
	// accumulated. The very first segment has none, and a boundary
	// becomes the entry of the next segment only when it actually ended
	// one: a segment records the click that caused entry into it, not
	// the boundary that ends it.
	var entry *Boundary

	for bi := range sorted {
		b := &sorted[bi]
		end := b.Index
		if end > len(actions) {
			end = len(actions)
		}
		if end <= cursor {
			continue
		}
		segments = append(segments, makeSegment(actions, cursor, end, entry))
		cursor = end
		entry = b
	}
	if cursor < len(actions) {
		segments = append(segments, makeSegment(actions, cursor, len(actions), entry))
	}
	return segments
}

// makeSegment builds a raw segment over [start, end). URL preference
// order: first navigation action inside the slice itself, else the
// entry boundary's resolved URL. Intent and confidence hold their
// defaults until the classification pass.
func makeSegment(actions []trace.Action, start, end int, entry *Boundary) PageSegment {
	seg := PageSegment{
		StartIndex:   start,
		EndIndex:     end,
		Actions:      actions[start:end],
		Intent:       IntentGeneric,
		Confidence:   defaultConfidence,
		TriggerIndex: -1,
	}
	if entry != nil {
		seg.TriggerIndex = entry.TriggerIndex
	}
	if rawURL := firstNavigationURL(seg.Actions); rawURL != "" {
		seg.URL = rawURL
		seg.URLPattern = urlPattern(rawURL)
	} else if entry != nil {
		seg.URL = entry.URL
		seg.URLPattern = entry.URLPattern
	}
	return seg
}
