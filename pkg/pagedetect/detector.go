// Package pagedetect partitions recorded browser interaction traces
// into logical page segments. It detects explicit and implicit page
// transitions, classifies each segment's dominant intent, synthesizes a
// display name per segment through a cascading strategy chain, and
// scores its own confidence. The pipeline is a pure, synchronous
// transformation with no fatal error states: degraded results always
// win over failures.
package pagedetect

import (
	"github.com/odvcencio/pagewright/pkg/logging"
	"github.com/odvcencio/pagewright/pkg/trace"
)

// Hint carries upstream intent analysis supplied by the caller. It is
// accepted and recorded for diagnostics; classification does not
// consult it.
type Hint struct {
	Intent     Intent  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Source     string  `json:"source,omitempty"`
}

// Detector runs the full detection pipeline over a recorded trace.
// A zero-configured Detector uses the default keyword vocabulary.
// Detectors are stateless across invocations and safe for concurrent
// use.
type Detector struct {
	keywords   Keywords
	classifier *Classifier
	names      *NameGenerator
	logger     *logging.Logger
}

// NewDetector creates a detector with the given keyword configuration.
// Empty keyword lists fall back to the defaults.
func NewDetector(keywords Keywords) *Detector {
	kw := keywords.withDefaults()
	return &Detector{
		keywords:   kw,
		classifier: NewClassifier(kw),
		names:      NewNameGenerator(kw),
	}
}

// SetLogger wires an optional structured logger. A nil logger keeps
// the detector silent.
func (d *Detector) SetLogger(logger *logging.Logger) {
	d.logger = logger
}

// DetectPages transforms an action trace into an ordered list of named
// page segments. The segments partition the covered action range,
// every segment carries a non-empty name, and confidence always lands
// in [0.5, 1.0]. An empty trace yields an empty list.
func (d *Detector) DetectPages(actions []trace.Action, hint *Hint) []PageSegment {
	if len(actions) == 0 {
		return []PageSegment{}
	}

	boundaries := DetectBoundaries(actions)
	segments := Segment(actions, boundaries)

	for i := range segments {
		seg := &segments[i]
		intent := d.classifier.Classify(seg)
		seg.Intent = intent
		seg.PageName = d.names.Generate(seg, actions, intent, i)
		seg.Confidence = Score(seg, intent)
	}

	d.recordRun(actions, boundaries, segments, hint)
	return segments
}

// DetectPages runs the pipeline with the default keyword vocabulary.
func DetectPages(actions []trace.Action, hint *Hint) []PageSegment {
	return NewDetector(Keywords{}).DetectPages(actions, hint)
}

func (d *Detector) recordRun(actions []trace.Action, boundaries []Boundary, segments []PageSegment, hint *Hint) {
	metricDetectionRuns.Inc()
	for _, b := range boundaries {
		metricBoundaries.WithLabelValues(string(b.Type)).Inc()
	}
	metricSegments.Add(float64(len(segments)))

	if d.logger == nil {
		return
	}
	details := map[string]any{
		"actions":    len(actions),
		"boundaries": len(boundaries),
		"segments":   len(segments),
	}
	if hint != nil {
		details["hint_intent"] = string(hint.Intent)
		details["hint_source"] = hint.Source
	}
	d.logger.Info(logging.CategoryDetection, "pages_detected", "trace partitioned into page segments", details)
}
