// Package guide defines the pricing configuration and estimate value objects
// shared by the estimation engine, validator, and display formatters.
package guide

// EstimateMode controls how an estimate is presented to the customer.
type EstimateMode string

const (
	ModeInternal     EstimateMode = "internal"
	ModeRange        EstimateMode = "range"
	ModeStartingFrom EstimateMode = "starting_from"
	ModeDisabled     EstimateMode = "disabled"
)

// Operator is a condition comparison operator.
type Operator string

const (
	OpEquals      Operator = "equals"
	OpContains    Operator = "contains"
	OpGreaterThan Operator = "greater_than"
	OpLessThan    Operator = "less_than"
	OpBetween     Operator = "between"
)

// ActionType is a price adjustment semantic.
type ActionType string

const (
	ActionAdd      ActionType = "add"
	ActionMultiply ActionType = "multiply"
	ActionSetBand  ActionType = "set_band"
)

// Condition matches one rule against one submitted answer.
type Condition struct {
	QuestionID string   `json:"question_id" yaml:"question_id"`
	Operator   Operator `json:"operator" yaml:"operator"`
	Value      Value    `json:"value" yaml:"value"`
}

// Action transforms the running price range when its rule's condition matches.
type Action struct {
	Type  ActionType `json:"type" yaml:"type"`
	Value Adjustment `json:"value" yaml:"value"`
	Note  string     `json:"note,omitempty" yaml:"note,omitempty"`
}

// Rule is one condition-action pair in a price guide. Order drives the
// evaluation sequence; equal orders keep their authored position.
type Rule struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Enabled   bool      `json:"enabled" yaml:"enabled"`
	Order     float64   `json:"order" yaml:"order"`
	Condition Condition `json:"condition" yaml:"condition"`
	Action    Action    `json:"action" yaml:"action"`
}

// PriceGuide is the form-scoped pricing configuration. The engine treats it
// as an immutable snapshot per call; storage belongs to the caller.
type PriceGuide struct {
	BasePrice      *float64     `json:"base_price,omitempty" yaml:"base_price,omitempty"`
	BaseCalloutFee *float64     `json:"base_callout_fee,omitempty" yaml:"base_callout_fee,omitempty"`
	Currency       string       `json:"currency" yaml:"currency"`
	EstimateMode   EstimateMode `json:"estimate_mode" yaml:"estimate_mode"`
	ShowToCustomer bool         `json:"show_to_customer" yaml:"show_to_customer"`
	Rules          []Rule       `json:"rules" yaml:"rules"`
	MinPrice       *float64     `json:"min_price,omitempty" yaml:"min_price,omitempty"`
	MaxPrice       *float64     `json:"max_price,omitempty" yaml:"max_price,omitempty"`
	Disclaimer     string       `json:"disclaimer,omitempty" yaml:"disclaimer,omitempty"`
}

// AnswerSet maps question IDs to submitted answer values. A missing key and
// a null value both mean "not answered".
type AnswerSet map[string]Value

// AppliedRule is one audit-trail entry for a rule that fired.
type AppliedRule struct {
	RuleName   string     `json:"rule_name"`
	Adjustment Adjustment `json:"adjustment"`
	Note       string     `json:"note,omitempty"`
}

// PriceEstimate is the engine's sole output. Min <= Max always holds.
type PriceEstimate struct {
	Min            float64       `json:"min"`
	Max            float64       `json:"max"`
	AppliedRules   []AppliedRule `json:"applied_rules"`
	Mode           EstimateMode  `json:"mode"`
	Disclaimer     string        `json:"disclaimer,omitempty"`
	ShowToCustomer bool          `json:"show_to_customer"`
}

// Money returns a pointer to v, for the optional money fields on PriceGuide.
func Money(v float64) *float64 {
	return &v
}
