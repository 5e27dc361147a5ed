package estimation

import (
	"strings"

	"form-pricing/pkg/coerce"
	"form-pricing/pkg/guide"
)

// matches decides whether one rule's condition matches one answer. A missing
// or null answer never matches, and an unknown operator degrades to false
// with a logged warning so one misconfigured rule cannot abort an estimate.
func (e *Engine) matches(answer guide.Value, cond guide.Condition) bool {
	if answer.IsNull() {
		return false
	}

	switch cond.Operator {
	case guide.OpEquals:
		// Boolean answers compare strictly; everything else compares
		// by exact stringified text.
		if answer.Kind == guide.ValueBool {
			return cond.Value.Kind == guide.ValueBool && cond.Value.Bool == answer.Bool
		}
		return coerce.Text(answer) == coerce.Text(cond.Value)

	case guide.OpContains:
		if answer.Kind == guide.ValueList {
			for _, item := range answer.List {
				if sameValue(item, cond.Value) {
					return true
				}
			}
			return false
		}
		haystack := coerce.Fold(coerce.Text(answer))
		needle := coerce.Fold(coerce.Text(cond.Value))
		return strings.Contains(haystack, needle)

	case guide.OpGreaterThan:
		// NaN comparisons are always false, so non-numeric operands
		// never match.
		return coerce.Number(answer) > coerce.Number(cond.Value)

	case guide.OpLessThan:
		return coerce.Number(answer) < coerce.Number(cond.Value)

	case guide.OpBetween:
		lowVal, highVal, ok := cond.Value.Pair()
		if !ok {
			return false
		}
		n := coerce.Number(answer)
		return n >= coerce.Number(lowVal) && n <= coerce.Number(highVal)

	default:
		e.logger.Warn("unknown condition operator, rule will not match",
			"operator", string(cond.Operator),
			"question_id", cond.QuestionID,
		)
		return false
	}
}

// sameValue is the exact-match equality used for list membership. It is
// kind-aware: a numeric option never matches a string condition value, unlike
// the coercing scalar operators.
func sameValue(a, b guide.Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case guide.ValueBool:
		return a.Bool == b.Bool
	case guide.ValueNumber:
		return a.Number == b.Number
	case guide.ValueString:
		return a.Text == b.Text
	default:
		return false
	}
}
