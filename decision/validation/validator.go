// Package validation provides structural, pre-save validation of an authored
// rule list. It runs at authoring time only, never during estimation, and is
// advisory: it reports problems, the caller decides whether to block a save.
package validation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"form-pricing/pkg/guide"
)

// Result is the validation outcome. Errors are human-readable messages that
// reference each offending rule's 1-based position.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateRules structurally checks a rule list. It never panics and never
// checks referential integrity (whether a question still exists is the form
// owner's problem). A nil list is rejected outright with a single error.
func ValidateRules(rules []guide.Rule) Result {
	if rules == nil {
		return Result{Valid: false, Errors: []string{"rules must be a list"}}
	}

	var errs []string
	seen := make(map[string][]int)

	for i, rule := range rules {
		pos := i + 1

		if rule.ID == "" {
			errs = append(errs, fmt.Sprintf("rule %d: id is required", pos))
		} else {
			seen[rule.ID] = append(seen[rule.ID], pos)
		}

		if strings.TrimSpace(rule.Name) == "" {
			errs = append(errs, fmt.Sprintf("rule %d: name must not be empty", pos))
		}

		if rule.Condition.QuestionID == "" {
			errs = append(errs, fmt.Sprintf("rule %d: condition question_id is required", pos))
		}
		if rule.Condition.Operator == "" {
			errs = append(errs, fmt.Sprintf("rule %d: condition operator is required", pos))
		}
		// false, 0, and empty string are legitimate condition values;
		// only a null value is rejected.
		if rule.Condition.Value.IsNull() {
			errs = append(errs, fmt.Sprintf("rule %d: condition value is required", pos))
		}

		if rule.Action.Type == "" {
			errs = append(errs, fmt.Sprintf("rule %d: action type is required", pos))
		}
		if rule.Action.Value.IsZero() {
			errs = append(errs, fmt.Sprintf("rule %d: action value is required", pos))
		}

		if math.IsNaN(rule.Order) || math.IsInf(rule.Order, 0) {
			errs = append(errs, fmt.Sprintf("rule %d: order must be a number", pos))
		}
	}

	if dup := duplicateIDs(seen); len(dup) > 0 {
		errs = append(errs, fmt.Sprintf("duplicate rule ids: %s", strings.Join(dup, ", ")))
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// duplicateIDs returns ids that occur more than once, one entry per id
// regardless of how many occurrences exist.
func duplicateIDs(seen map[string][]int) []string {
	var dup []string
	for id, positions := range seen {
		if len(positions) > 1 {
			dup = append(dup, id)
		}
	}
	sort.Strings(dup)
	return dup
}
