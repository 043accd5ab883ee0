package types

import "fmt"

// ConditionOp represents the comparison operator of a binding condition
type ConditionOp string

const (
	ConditionOpEq ConditionOp = "eq"
	ConditionOpNe ConditionOp = "ne"
	ConditionOpLt ConditionOp = "lt"
	ConditionOpLe ConditionOp = "le"
	ConditionOpGt ConditionOp = "gt"
	ConditionOpGe ConditionOp = "ge"
)

// AllConditionOps returns all valid condition operators
func AllConditionOps() []ConditionOp {
	return []ConditionOp{
		ConditionOpEq,
		ConditionOpNe,
		ConditionOpLt,
		ConditionOpLe,
		ConditionOpGt,
		ConditionOpGe,
	}
}

// IsValid checks if the condition operator is valid
func (x ConditionOp) IsValid() bool {
	switch x {
	case ConditionOpEq,
		ConditionOpNe,
		ConditionOpLt,
		ConditionOpLe,
		ConditionOpGt,
		ConditionOpGe:
		return true
	default:
		return false
	}
}

// IsOrdering reports whether the operator requires an ordered (numeric)
// value domain. Equality operators also work on boolean and string domains.
func (x ConditionOp) IsOrdering() bool {
	switch x {
	case ConditionOpLt,
		ConditionOpLe,
		ConditionOpGt,
		ConditionOpGe:
		return true
	default:
		return false
	}
}

// String returns the string representation of the condition operator
func (x ConditionOp) String() string {
	return string(x)
}

// ParseConditionOp parses a string into a ConditionOp
func ParseConditionOp(s string) (ConditionOp, error) {
	op := ConditionOp(s)
	if !op.IsValid() {
		return "", fmt.Errorf("invalid condition operator: %s", s)
	}
	return op, nil
}
