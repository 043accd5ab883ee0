package types

import "fmt"

// AffordanceKind represents the kind of an interaction affordance of a Thing
type AffordanceKind string

const (
	AffordanceProperty AffordanceKind = "property"
	AffordanceAction   AffordanceKind = "action"
	AffordanceEvent    AffordanceKind = "event"
)

// AllAffordanceKinds returns all valid affordance kinds
func AllAffordanceKinds() []AffordanceKind {
	return []AffordanceKind{
		AffordanceProperty,
		AffordanceAction,
		AffordanceEvent,
	}
}

// IsValid checks if the affordance kind is valid
func (x AffordanceKind) IsValid() bool {
	switch x {
	case AffordanceProperty,
		AffordanceAction,
		AffordanceEvent:
		return true
	default:
		return false
	}
}

// String returns the string representation of the affordance kind
func (x AffordanceKind) String() string {
	return string(x)
}

// ParseAffordanceKind parses a string into an AffordanceKind
func ParseAffordanceKind(s string) (AffordanceKind, error) {
	k := AffordanceKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid affordance kind: %s", s)
	}
	return k, nil
}
