// Package confidence labels how much of a form actually drove an estimate.
//
// This is a coverage heuristic, not a statistical confidence interval: it
// only reflects the fraction of questions whose rules fired, and says nothing
// about how accurate the configured prices are.
package confidence

import "form-pricing/pkg/guide"

// Level is the heuristic confidence label.
type Level string

const (
	High   Level = "high"
	Medium Level = "medium"
	Low    Level = "low"
)

// Coverage thresholds for the labels.
const (
	HighThreshold   = 0.7
	MediumThreshold = 0.3
)

// ForEstimate labels an estimate by the fraction of the form's questions
// whose rules fired.
func ForEstimate(est guide.PriceEstimate, totalQuestions int) Level {
	return ForCoverage(len(est.AppliedRules), totalQuestions)
}

// ForCoverage labels the fraction of questions that influenced the result.
// appliedRules is the number of audit-trail entries on the estimate;
// totalQuestions is the number of questions on the form.
func ForCoverage(appliedRules, totalQuestions int) Level {
	ratio := Ratio(appliedRules, totalQuestions)
	switch {
	case ratio >= HighThreshold:
		return High
	case ratio >= MediumThreshold:
		return Medium
	default:
		return Low
	}
}

// Ratio computes applied/total clamped to [0, 1]. A form with no questions
// has zero coverage.
func Ratio(applied, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Clamp(float64(applied) / float64(total))
}

// Clamp ensures a score is in the valid range [0, 1].
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
