package td

import (
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

// Thing is the minimal view of a Thing Description this module needs: the
// interaction affordances with their kind and declared value domain. It is
// deliberately not a full document model; everything else in a TD passes
// through Document untouched.
type Thing struct {
	ID         string
	Title      string
	Properties map[string]Affordance
	Actions    map[string]Affordance
	Events     map[string]Affordance
}

// Affordance represents a single interaction affordance of a Thing
type Affordance struct {
	Kind   types.AffordanceKind
	Schema DataSchema
}

// DataSchema is the declared value domain of an affordance. For actions it
// is taken from the input schema, for events from the data schema.
type DataSchema struct {
	Type    string
	Minimum *float64
	Maximum *float64
	Enum    []any
}

// IsNumeric reports whether the schema declares an ordered numeric domain
func (s DataSchema) IsNumeric() bool {
	return s.Type == "number" || s.Type == "integer"
}

// IsBounded reports whether the numeric domain declares both ends
func (s DataSchema) IsBounded() bool {
	return s.Minimum != nil && s.Maximum != nil
}

// Affordance looks up an affordance by name across properties, actions and
// events, in that order.
func (t *Thing) Affordance(name string) (Affordance, bool) {
	if t == nil {
		return Affordance{}, false
	}
	if a, ok := t.Properties[name]; ok {
		return a, true
	}
	if a, ok := t.Actions[name]; ok {
		return a, true
	}
	if a, ok := t.Events[name]; ok {
		return a, true
	}
	return Affordance{}, false
}
