package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"form-pricing/pkg/guide"
)

func validRule(id string) guide.Rule {
	return guide.Rule{
		ID:      id,
		Name:    "Surcharge",
		Enabled: true,
		Order:   1,
		Condition: guide.Condition{
			QuestionID: "q1",
			Operator:   guide.OpEquals,
			Value:      guide.BoolValue(true),
		},
		Action: guide.Action{
			Type:  guide.ActionAdd,
			Value: guide.AmountAdjustment(50),
		},
	}
}

func TestValidateRulesNilList(t *testing.T) {
	rq := require.New(t)

	result := ValidateRules(nil)

	rq.False(result.Valid)
	rq.Equal([]string{"rules must be a list"}, result.Errors)
}

func TestValidateRulesEmptyListIsValid(t *testing.T) {
	rq := require.New(t)

	result := ValidateRules([]guide.Rule{})

	rq.True(result.Valid)
	rq.Empty(result.Errors)
}

func TestValidateRulesAcceptsWellFormedRules(t *testing.T) {
	rq := require.New(t)

	result := ValidateRules([]guide.Rule{validRule("a"), validRule("b")})

	rq.True(result.Valid)
	rq.Empty(result.Errors)
}

func TestValidateRulesStructuralFailures(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*guide.Rule)
		wantMsg string
	}{
		{
			name:    "missing id",
			mutate:  func(r *guide.Rule) { r.ID = "" },
			wantMsg: "rule 1: id is required",
		},
		{
			name:    "blank name",
			mutate:  func(r *guide.Rule) { r.Name = "   " },
			wantMsg: "rule 1: name must not be empty",
		},
		{
			name:    "missing question id",
			mutate:  func(r *guide.Rule) { r.Condition.QuestionID = "" },
			wantMsg: "rule 1: condition question_id is required",
		},
		{
			name:    "missing operator",
			mutate:  func(r *guide.Rule) { r.Condition.Operator = "" },
			wantMsg: "rule 1: condition operator is required",
		},
		{
			name:    "null condition value",
			mutate:  func(r *guide.Rule) { r.Condition.Value = guide.Null() },
			wantMsg: "rule 1: condition value is required",
		},
		{
			name:    "missing action type",
			mutate:  func(r *guide.Rule) { r.Action.Type = "" },
			wantMsg: "rule 1: action type is required",
		},
		{
			name:    "missing action value",
			mutate:  func(r *guide.Rule) { r.Action.Value = guide.Adjustment{} },
			wantMsg: "rule 1: action value is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			rule := validRule("a")
			tc.mutate(&rule)

			result := ValidateRules([]guide.Rule{rule})
			rq.False(result.Valid)
			rq.Contains(result.Errors, tc.wantMsg)
		})
	}
}

func TestValidateRulesFalsyConditionValuesAreValid(t *testing.T) {
	testCases := []struct {
		name  string
		value guide.Value
	}{
		{name: "false", value: guide.BoolValue(false)},
		{name: "zero", value: guide.NumberValue(0)},
		{name: "empty string", value: guide.StringValue("")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rule := validRule("a")
			rule.Condition.Value = tc.value

			result := ValidateRules([]guide.Rule{rule})
			require.True(t, result.Valid)
		})
	}
}

func TestValidateRulesPositionsAreOneBased(t *testing.T) {
	rq := require.New(t)

	second := validRule("b")
	second.Name = ""

	result := ValidateRules([]guide.Rule{validRule("a"), second})

	rq.False(result.Valid)
	rq.Equal([]string{"rule 2: name must not be empty"}, result.Errors)
}

func TestValidateRulesDuplicateIDsReportedOnce(t *testing.T) {
	rq := require.New(t)

	result := ValidateRules([]guide.Rule{
		validRule("dup"), validRule("dup"), validRule("dup"), validRule("other"),
	})

	rq.False(result.Valid)
	rq.Equal([]string{"duplicate rule ids: dup"}, result.Errors)
}

func TestValidateRulesCollectsAllProblems(t *testing.T) {
	rq := require.New(t)

	broken := guide.Rule{}

	result := ValidateRules([]guide.Rule{broken})

	rq.False(result.Valid)
	rq.Len(result.Errors, 7)
}
