package guide

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AdjustmentKind tags the dual shape of an action value: a plain number for
// add/multiply, or a {min, max} band for set_band.
type AdjustmentKind int

const (
	AdjustmentNone AdjustmentKind = iota
	AdjustmentAmount
	AdjustmentBand
)

// Band is an absolute price range override.
type Band struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Adjustment is the tagged value of an action. The zero value means the
// action value was absent, which the validator rejects.
type Adjustment struct {
	Kind   AdjustmentKind
	Amount float64
	Band   Band
}

func AmountAdjustment(v float64) Adjustment {
	return Adjustment{Kind: AdjustmentAmount, Amount: v}
}

func BandAdjustment(min, max float64) Adjustment {
	return Adjustment{Kind: AdjustmentBand, Band: Band{Min: min, Max: max}}
}

// IsZero reports whether the action value was absent.
func (a Adjustment) IsZero() bool {
	return a.Kind == AdjustmentNone
}

// MarshalJSON writes a bare number for amounts and a {min, max} object for
// bands, matching the authored wire shape.
func (a Adjustment) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AdjustmentAmount:
		return json.Marshal(a.Amount)
	case AdjustmentBand:
		return json.Marshal(a.Band)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number or a {min, max} object.
func (a *Adjustment) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Adjustment{}
		return nil
	}

	var amount float64
	if err := json.Unmarshal(data, &amount); err == nil {
		*a = AmountAdjustment(amount)
		return nil
	}

	var band Band
	if err := json.Unmarshal(data, &band); err == nil {
		*a = Adjustment{Kind: AdjustmentBand, Band: band}
		return nil
	}

	return fmt.Errorf("action value must be a number or a {min, max} pair")
}

func (a Adjustment) MarshalYAML() (interface{}, error) {
	switch a.Kind {
	case AdjustmentAmount:
		return a.Amount, nil
	case AdjustmentBand:
		return a.Band, nil
	default:
		return nil, nil
	}
}

func (a *Adjustment) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*a = Adjustment{}
		return nil
	}

	var amount float64
	if err := node.Decode(&amount); err == nil {
		*a = AmountAdjustment(amount)
		return nil
	}

	var band Band
	if err := node.Decode(&band); err == nil {
		*a = Adjustment{Kind: AdjustmentBand, Band: band}
		return nil
	}

	return fmt.Errorf("action value must be a number or a {min, max} pair")
}
