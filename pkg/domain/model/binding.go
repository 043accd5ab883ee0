package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/domain/model/td"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

// Binding associates one catalog hazard with one interaction affordance,
// carrying either a fixed RiskLevel (optionally gated by a Condition) or a
// RangeTable keyed by the affordance's value domain. Exactly one of Level
// and Ranges must be set.
type Binding struct {
	Hazard types.HazardID

	Level     *RiskLevel
	Condition *Condition

	Ranges *RangeTable
}

// Validate checks the binding against the catalog and the target affordance.
// The same path runs for authored bindings and for bindings reconstructed
// from a serialized extension.
func (b *Binding) Validate(catalog *Catalog, aff td.Affordance) error {
	hazard, err := catalog.Lookup(b.Hazard)
	if err != nil {
		return err
	}

	if !hazard.AppliesToKind(aff.Kind) {
		return goerr.Wrap(ErrInapplicableHazard, "hazard does not apply to affordance kind",
			goerr.V(HazardIDKey, b.Hazard),
			goerr.V(AffordanceKindKey, aff.Kind))
	}

	if hazard.RequiresCondition && b.Ranges == nil && b.Condition == nil {
		return goerr.Wrap(ErrInapplicableHazard, "hazard requires a ranged or conditional binding",
			goerr.V(HazardIDKey, b.Hazard))
	}

	switch {
	case b.Level != nil && b.Ranges != nil:
		return goerr.Wrap(ErrMalformedExtension, "binding carries both a fixed level and a range table",
			goerr.V(HazardIDKey, b.Hazard))
	case b.Level == nil && b.Ranges == nil:
		return goerr.Wrap(ErrMalformedExtension, "binding carries neither a fixed level nor a range table",
			goerr.V(HazardIDKey, b.Hazard))
	}

	if b.Ranges != nil {
		if b.Condition != nil {
			return goerr.Wrap(ErrMalformedExtension, "range table bindings cannot carry a condition",
				goerr.V(HazardIDKey, b.Hazard))
		}
		if err := b.Ranges.Validate(aff.Schema); err != nil {
			return goerr.Wrap(err, "invalid range table", goerr.V(HazardIDKey, b.Hazard))
		}
		return nil
	}

	if err := b.Level.Validate(); err != nil {
		return goerr.Wrap(err, "invalid risk level", goerr.V(HazardIDKey, b.Hazard))
	}
	if b.Condition != nil {
		if err := b.Condition.Validate(aff.Schema); err != nil {
			return goerr.Wrap(err, "invalid condition", goerr.V(HazardIDKey, b.Hazard))
		}
	}
	return nil
}

// Resolve maps a concrete affordance value to the binding's risk. The
// boolean result is false for an explicit "no mapped risk" outcome: the
// value falls into an allowed gap, or a gating condition does not hold.
func (b *Binding) Resolve(value any) (RiskLevel, bool, error) {
	if b.Ranges != nil {
		v, ok := toFloat(value)
		if !ok {
			return RiskLevel{}, false, goerr.New("range lookup needs a numeric value",
				goerr.V(HazardIDKey, b.Hazard),
				goerr.V(ValueKey, value))
		}
		level, ok := b.Ranges.Resolve(v)
		return level, ok, nil
	}

	if b.Condition != nil {
		hold, err := b.Condition.Evaluate(value)
		if err != nil {
			return RiskLevel{}, false, goerr.Wrap(err, "failed to evaluate condition",
				goerr.V(HazardIDKey, b.Hazard))
		}
		if !hold {
			return RiskLevel{}, false, nil
		}
	}

	return *b.Level, true, nil
}
