package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/domain/model/td"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

// Condition gates a fixed-level binding on the affordance's value, e.g. a
// camera's privacy hazard that is only active while "on" equals true. When
// the condition does not hold, the hazard resolves to "no mapped risk".
type Condition struct {
	Op    types.ConditionOp `json:"op"`
	Value any               `json:"value"`
}

// Validate checks the condition against the affordance's declared domain.
// Ordering operators require a numeric domain; equality operators accept
// boolean, string and numeric domains, and must name a declared enum member
// when the schema enumerates its values.
func (c *Condition) Validate(schema td.DataSchema) error {
	if !c.Op.IsValid() {
		return goerr.Wrap(ErrMalformedExtension, "invalid condition operator",
			goerr.V(ValueKey, c.Op))
	}

	if c.Op.IsOrdering() {
		if !schema.IsNumeric() {
			return goerr.Wrap(ErrInapplicableHazard, "ordering condition on non-numeric domain",
				goerr.V(SchemaTypeKey, schema.Type),
				goerr.V(ValueKey, c.Value))
		}
		if _, ok := toFloat(c.Value); !ok {
			return goerr.Wrap(ErrMalformedExtension, "ordering condition needs a numeric value",
				goerr.V(ValueKey, c.Value))
		}
		return nil
	}

	switch schema.Type {
	case "boolean":
		if _, ok := c.Value.(bool); !ok {
			return goerr.Wrap(ErrInapplicableHazard, "condition value does not match boolean domain",
				goerr.V(ValueKey, c.Value))
		}
	case "number", "integer":
		if _, ok := toFloat(c.Value); !ok {
			return goerr.Wrap(ErrInapplicableHazard, "condition value does not match numeric domain",
				goerr.V(ValueKey, c.Value))
		}
	case "string":
		if _, ok := c.Value.(string); !ok {
			return goerr.Wrap(ErrInapplicableHazard, "condition value does not match string domain",
				goerr.V(ValueKey, c.Value))
		}
	}

	if len(schema.Enum) > 0 && !enumContains(schema.Enum, c.Value) {
		return goerr.Wrap(ErrInapplicableHazard, "condition value is not a declared enum member",
			goerr.V(ValueKey, c.Value))
	}

	return nil
}

// Evaluate applies the condition to a concrete affordance value
func (c *Condition) Evaluate(value any) (bool, error) {
	switch c.Op {
	case types.ConditionOpEq:
		return valuesEqual(c.Value, value), nil
	case types.ConditionOpNe:
		return !valuesEqual(c.Value, value), nil
	}

	want, ok := toFloat(c.Value)
	if !ok {
		return false, goerr.New("condition value is not numeric", goerr.V(ValueKey, c.Value))
	}
	got, ok := toFloat(value)
	if !ok {
		return false, goerr.New("affordance value is not numeric", goerr.V(ValueKey, value))
	}

	switch c.Op {
	case types.ConditionOpLt:
		return got < want, nil
	case types.ConditionOpLe:
		return got <= want, nil
	case types.ConditionOpGt:
		return got > want, nil
	case types.ConditionOpGe:
		return got >= want, nil
	default:
		return false, goerr.New("invalid condition operator", goerr.V(ValueKey, c.Op))
	}
}

// toFloat normalizes the numeric representations seen from JSON, TOML and
// Go callers to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func valuesEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	return a == b
}

func enumContains(enum []any, v any) bool {
	for _, e := range enum {
		if valuesEqual(e, v) {
			return true
		}
	}
	return false
}
