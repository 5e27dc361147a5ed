package estimation

import (
	"form-pricing/pkg/guide"
)

// apply transforms the running (min, max) pair with one rule's action.
// Unknown action types and mismatched value shapes are no-ops with a logged
// warning; they never abort the estimate.
func (e *Engine) apply(min, max float64, act guide.Action) (float64, float64) {
	switch act.Type {
	case guide.ActionAdd:
		if act.Value.Kind != guide.AdjustmentAmount {
			e.warnActionShape(act, "add requires a plain number value")
			return min, max
		}
		return min + act.Value.Amount, max + act.Value.Amount

	case guide.ActionMultiply:
		if act.Value.Kind != guide.AdjustmentAmount {
			e.warnActionShape(act, "multiply requires a plain number value")
			return min, max
		}
		return min * act.Value.Amount, max * act.Value.Amount

	case guide.ActionSetBand:
		switch act.Value.Kind {
		case guide.AdjustmentBand:
			// The band replaces everything accumulated so far,
			// base price included.
			return act.Value.Band.Min, act.Value.Band.Max
		case guide.AdjustmentAmount:
			// A single number collapses the range to a point.
			return act.Value.Amount, act.Value.Amount
		default:
			e.warnActionShape(act, "set_band requires a number or a {min, max} pair")
			return min, max
		}

	default:
		e.logger.Warn("unknown action type, skipping adjustment",
			"action_type", string(act.Type),
		)
		return min, max
	}
}

func (e *Engine) warnActionShape(act guide.Action, msg string) {
	e.logger.Warn("misshapen action value, skipping adjustment",
		"action_type", string(act.Type),
		"reason", msg,
	)
}
