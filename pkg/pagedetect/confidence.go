package pagedetect

// Additive confidence heuristic. The base guarantees a floor of 0.5;
// the cap clamps the sum to 1.0.
const (
	baseConfidence   = 0.5
	urlBonus         = 0.2
	intentBonus      = 0.2
	actionCountBonus = 0.1
	minScoredActions = 3
	maxConfidence    = 1.0
)

// Score computes the confidence for a segment under the given intent:
// base 0.5, +0.2 for a resolved URL, +0.2 for a non-generic intent,
// +0.1 for three or more actions, clamped to 1.0.
func Score(seg *PageSegment, intent Intent) float64 {
	score := baseConfidence
	if seg.URL != "" {
		score += urlBonus
	}
	if intent != IntentGeneric {
		score += intentBonus
	}
	if len(seg.Actions) >= minScoredActions {
		score += actionCountBonus
	}
	if score > maxConfidence {
		score = maxConfidence
	}
	return score
}
