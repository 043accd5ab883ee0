package types

import "fmt"

// GapPolicy declares how a range table treats values of the affordance
// domain that no range covers. An absent policy normalizes to forbid, so an
// author must state explicitly that uncovered values carry no mapped risk.
type GapPolicy string

const (
	// GapPolicyForbid rejects range tables that leave any part of the
	// declared domain uncovered.
	GapPolicyForbid GapPolicy = "forbid"

	// GapPolicyAllow accepts gaps; values falling into one resolve to an
	// explicit "no mapped risk" result, never to a default level.
	GapPolicyAllow GapPolicy = "allow"
)

// AllGapPolicies returns all valid gap policies
func AllGapPolicies() []GapPolicy {
	return []GapPolicy{
		GapPolicyForbid,
		GapPolicyAllow,
	}
}

// IsValid checks if the gap policy is valid
func (x GapPolicy) IsValid() bool {
	switch x {
	case GapPolicyForbid,
		GapPolicyAllow:
		return true
	default:
		return false
	}
}

// Normalize returns the policy, treating empty as GapPolicyForbid so that
// an author must opt in to uncovered ranges explicitly.
func (x GapPolicy) Normalize() GapPolicy {
	if x == "" {
		return GapPolicyForbid
	}
	return x
}

// String returns the string representation of the gap policy
func (x GapPolicy) String() string {
	return string(x)
}

// ParseGapPolicy parses a string into a GapPolicy
func ParseGapPolicy(s string) (GapPolicy, error) {
	p := GapPolicy(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid gap policy: %s", s)
	}
	return p, nil
}
