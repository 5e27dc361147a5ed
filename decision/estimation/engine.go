// Package estimation provides the pricing estimation engine.
// It evaluates a form submission's answers against a business-authored rule
// list and produces a price range with an audit trail of the rules that fired.
package estimation

import (
	"log/slog"
	"math"
	"sort"

	"form-pricing/pkg/guide"
)

// Engine evaluates price guides. It holds no mutable state; the logger is
// the caller-supplied collaborator for misconfiguration warnings.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an estimation engine. A nil logger falls back to the
// process default.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Estimate computes a price estimate for one answer set against one guide.
//
// The function is pure and deterministic: identical inputs always produce an
// identical estimate, neither the guide nor the answers are mutated, and no
// I/O happens beyond warning logs. Live submissions and authoring-time
// previews both go through this exact code path, so what an owner previews
// is what a customer gets.
func (e *Engine) Estimate(answers guide.AnswerSet, g guide.PriceGuide) guide.PriceEstimate {
	min := 0.0
	if g.BasePrice != nil {
		min = *g.BasePrice
	}
	if g.BaseCalloutFee != nil {
		min += *g.BaseCalloutFee
	}
	max := min

	applied := make([]guide.AppliedRule, 0)
	for _, rule := range e.sortedEnabledRules(g.Rules) {
		answer := answers[rule.Condition.QuestionID]
		if !e.matches(answer, rule.Condition) {
			continue
		}
		min, max = e.apply(min, max, rule.Action)
		applied = append(applied, guide.AppliedRule{
			RuleName:   rule.Name,
			Adjustment: rule.Action.Value,
			Note:       rule.Action.Note,
		})
	}

	// Two-step clamp: raise both legs to the floor, then cap both to the
	// ceiling. When minPrice > maxPrice is misconfigured the range
	// collapses toward the bound applied last.
	if g.MinPrice != nil {
		min = math.Max(min, *g.MinPrice)
		max = math.Max(max, *g.MinPrice)
	}
	if g.MaxPrice != nil {
		min = math.Min(min, *g.MaxPrice)
		max = math.Min(max, *g.MaxPrice)
	}

	// Mechanical repair, not a business rule. Runs last so the output
	// invariant min <= max holds unconditionally.
	if min > max {
		max = min
	}

	return guide.PriceEstimate{
		Min:            min,
		Max:            max,
		AppliedRules:   applied,
		Mode:           g.EstimateMode,
		Disclaimer:     g.Disclaimer,
		ShowToCustomer: g.ShowToCustomer,
	}
}

// Test runs an authoring-time preview: it assembles a throwaway guide around
// the given rules and calls Estimate, guaranteeing preview output is
// identical to what an equivalent persisted guide would produce.
func (e *Engine) Test(rules []guide.Rule, sampleAnswers guide.AnswerSet, basePrice, baseCalloutFee float64) guide.PriceEstimate {
	g := guide.PriceGuide{
		BasePrice:      guide.Money(basePrice),
		BaseCalloutFee: guide.Money(baseCalloutFee),
		EstimateMode:   guide.ModeRange,
		ShowToCustomer: true,
		Rules:          rules,
	}
	return e.Estimate(sampleAnswers, g)
}

// sortedEnabledRules selects enabled rules and stable-sorts them by ascending
// order, so equal-order rules keep their authored position.
func (e *Engine) sortedEnabledRules(rules []guide.Rule) []guide.Rule {
	selected := make([]guide.Rule, 0, len(rules))
	for _, r := range rules {
		if r.Enabled {
			selected = append(selected, r)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Order < selected[j].Order
	})
	return selected
}
