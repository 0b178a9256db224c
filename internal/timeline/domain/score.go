package domain

import "math"

// Additive score weights for representative selection, highest
// priority first. Milestones dominate, then completeness, then photo
// presence, then individual fields. The flat baseline keeps empty-ish
// records selectable when a bucket has nothing better.
const (
	scoreMilestone    = 100
	scoreCompleteness = 50
	scorePhoto        = 30
	scoreWeight       = 10
	scoreBodyFat      = 10
	scoreBaseline     = 5
)

// Milestone thresholds: a weight change of more than 2% relative to the
// previous representative, or a body-fat change of more than 1.0
// percentage point absolute.
const (
	weightMilestoneRatio  = 0.02
	bodyFatMilestoneDelta = 1.0
)

// scoreCandidate rates a candidate against the previously selected
// representative. prev is nil for the first non-empty bucket; milestone
// signals need a previous value to compare against and contribute
// nothing without one.
func scoreCandidate(c MetricRecord, prev *MetricRecord) int {
	score := scoreBaseline

	if prev != nil && prev.HasWeight() && c.HasWeight() && *prev.Weight != 0 {
		change := math.Abs(*c.Weight-*prev.Weight) / math.Abs(*prev.Weight)
		if change > weightMilestoneRatio {
			score += scoreMilestone
		}
	}

	if prev != nil && prev.HasBodyFat() && c.HasBodyFat() {
		if math.Abs(*c.BodyFat-*prev.BodyFat) > bodyFatMilestoneDelta {
			score += scoreMilestone
		}
	}

	if c.HasWeight() && c.HasBodyFat() {
		score += scoreCompleteness
	}
	if c.HasPhoto() {
		score += scorePhoto
	}
	if c.HasWeight() {
		score += scoreWeight
	}
	if c.HasBodyFat() {
		score += scoreBodyFat
	}

	return score
}
