package estimation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"form-pricing/pkg/guide"
)

func TestConditionMatching(t *testing.T) {
	testCases := []struct {
		name   string
		answer guide.Value
		cond   guide.Condition
		want   bool
	}{
		{
			name:   "missing answer never matches",
			answer: guide.Null(),
			cond:   guide.Condition{Operator: guide.OpEquals, Value: guide.BoolValue(true)},
			want:   false,
		},
		{
			name:   "equals on booleans is strict",
			answer: guide.BoolValue(true),
			cond:   guide.Condition{Operator: guide.OpEquals, Value: guide.BoolValue(true)},
			want:   true,
		},
		{
			name:   "equals on a boolean does not match the text form",
			answer: guide.BoolValue(true),
			cond:   guide.Condition{Operator: guide.OpEquals, Value: guide.StringValue("true")},
			want:   false,
		},
		{
			name:   "equals stringifies mixed scalar types",
			answer: guide.NumberValue(3),
			cond:   guide.Condition{Operator: guide.OpEquals, Value: guide.StringValue("3")},
			want:   true,
		},
		{
			name:   "equals is case sensitive",
			answer: guide.StringValue("Deck"),
			cond:   guide.Condition{Operator: guide.OpEquals, Value: guide.StringValue("deck")},
			want:   false,
		},
		{
			name:   "contains on a list is exact membership",
			answer: guide.StringList("deck", "fence"),
			cond:   guide.Condition{Operator: guide.OpContains, Value: guide.StringValue("fence")},
			want:   true,
		},
		{
			name:   "contains on a list does not fold case",
			answer: guide.StringList("Deck"),
			cond:   guide.Condition{Operator: guide.OpContains, Value: guide.StringValue("deck")},
			want:   false,
		},
		{
			name:   "contains on a list is kind-aware",
			answer: guide.ListValue(guide.NumberValue(1)),
			cond:   guide.Condition{Operator: guide.OpContains, Value: guide.StringValue("1")},
			want:   false,
		},
		{
			name:   "contains on a list matches numeric options numerically",
			answer: guide.ListValue(guide.NumberValue(1), guide.NumberValue(2)),
			cond:   guide.Condition{Operator: guide.OpContains, Value: guide.NumberValue(2)},
			want:   true,
		},
		{
			name:   "contains on text is case-insensitive substring",
			answer: guide.StringValue("Two-storey House"),
			cond:   guide.Condition{Operator: guide.OpContains, Value: guide.StringValue("house")},
			want:   true,
		},
		{
			name:   "greater_than compares numerically",
			answer: guide.NumberValue(12),
			cond:   guide.Condition{Operator: guide.OpGreaterThan, Value: guide.NumberValue(10)},
			want:   true,
		},
		{
			name:   "greater_than coerces numeric text",
			answer: guide.StringValue("12"),
			cond:   guide.Condition{Operator: guide.OpGreaterThan, Value: guide.NumberValue(10)},
			want:   true,
		},
		{
			name:   "greater_than with non-numeric text is false",
			answer: guide.StringValue("a lot"),
			cond:   guide.Condition{Operator: guide.OpGreaterThan, Value: guide.NumberValue(10)},
			want:   false,
		},
		{
			name:   "less_than with non-numeric text is false either way",
			answer: guide.StringValue("a lot"),
			cond:   guide.Condition{Operator: guide.OpLessThan, Value: guide.NumberValue(10)},
			want:   false,
		},
		{
			name:   "between is inclusive at both bounds",
			answer: guide.NumberValue(5),
			cond: guide.Condition{Operator: guide.OpBetween, Value: guide.ListValue(
				guide.NumberValue(5), guide.NumberValue(10),
			)},
			want: true,
		},
		{
			name:   "between rejects values outside the range",
			answer: guide.NumberValue(11),
			cond: guide.Condition{Operator: guide.OpBetween, Value: guide.ListValue(
				guide.NumberValue(5), guide.NumberValue(10),
			)},
			want: false,
		},
		{
			name:   "between with a malformed pair is false",
			answer: guide.NumberValue(5),
			cond:   guide.Condition{Operator: guide.OpBetween, Value: guide.NumberValue(5)},
			want:   false,
		},
		{
			name:   "unknown operator degrades to false",
			answer: guide.StringValue("x"),
			cond:   guide.Condition{Operator: "sounds_like", Value: guide.StringValue("x")},
			want:   false,
		},
	}

	engine := quietEngine()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, engine.matches(tc.answer, tc.cond))
		})
	}
}
