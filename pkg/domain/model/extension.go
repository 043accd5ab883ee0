package model

import (
	"encoding/json"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/domain/model/td"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

// Extension is the ordered collection of hazard bindings attached to one
// Thing Description, keyed by affordance name. An affordance may carry
// several distinct hazards but never two bindings for the same hazard.
//
// The extension is bound to the catalog and the Thing it was validated
// against; construction and deserialization run the same validation, so a
// parsed fragment is never trusted merely for being well-formed JSON.
type Extension struct {
	catalog  *Catalog
	thing    *td.Thing
	bindings map[string][]*Binding
}

// NewExtension creates an empty extension for a Thing
func NewExtension(catalog *Catalog, thing *td.Thing) *Extension {
	return &Extension{
		catalog:  catalog,
		thing:    thing,
		bindings: map[string][]*Binding{},
	}
}

// Attach validates a binding and adds it to the named affordance. It fails
// with ErrUnknownAffordance when the Thing does not declare the affordance
// and with ErrDuplicateBinding when the hazard is already bound to it.
func (x *Extension) Attach(affordance string, b *Binding) error {
	aff, ok := x.thing.Affordance(affordance)
	if !ok {
		return goerr.Wrap(ErrUnknownAffordance, "cannot bind hazard",
			goerr.V(AffordanceNameKey, affordance),
			goerr.V(HazardIDKey, b.Hazard))
	}

	if err := b.Validate(x.catalog, aff); err != nil {
		return goerr.Wrap(err, "invalid binding",
			goerr.V(AffordanceNameKey, affordance))
	}

	for _, existing := range x.bindings[affordance] {
		if existing.Hazard == b.Hazard {
			return goerr.Wrap(ErrDuplicateBinding, "hazard already bound to affordance",
				goerr.V(AffordanceNameKey, affordance),
				goerr.V(HazardIDKey, b.Hazard))
		}
	}

	x.bindings[affordance] = append(x.bindings[affordance], b)
	return nil
}

// Bindings returns the bindings attached to an affordance in attach order
func (x *Extension) Bindings(affordance string) []*Binding {
	return x.bindings[affordance]
}

// Affordances returns the annotated affordance names in sorted order
func (x *Extension) Affordances() []string {
	names := make([]string, 0, len(x.bindings))
	for name := range x.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the total number of bindings
func (x *Extension) Len() int {
	n := 0
	for _, bs := range x.bindings {
		n += len(bs)
	}
	return n
}

// ResolveRisk resolves the risk of one hazard on one affordance for a
// concrete value. The boolean result is false for "no mapped risk".
func (x *Extension) ResolveRisk(affordance string, hazard types.HazardID, value any) (RiskLevel, bool, error) {
	for _, b := range x.bindings[affordance] {
		if b.Hazard == hazard {
			return b.Resolve(value)
		}
	}
	return RiskLevel{}, false, goerr.New("hazard not bound to affordance",
		goerr.V(AffordanceNameKey, affordance),
		goerr.V(HazardIDKey, hazard))
}

// Wire structs mirror the serialized fragment:
// { affordanceName: [ { "hazardId": ..., "risk": {...}, "condition": {...} } ] }
type bindingWire struct {
	HazardID  types.HazardID `json:"hazardId"`
	Risk      riskWire       `json:"risk"`
	Condition *Condition     `json:"condition,omitempty"`
}

// riskWire carries either a single fixed level or a range table; exactly one
// form must be present.
type riskWire struct {
	Level  *RiskLevel      `json:"level,omitempty"`
	Ranges []RiskRange     `json:"ranges,omitempty"`
	Gaps   types.GapPolicy `json:"gaps,omitempty"`
}

// MarshalJSON serializes the extension fragment. Affordance names are
// emitted in sorted order and validated range tables are already sorted, so
// equal extensions serialize to identical bytes.
func (x *Extension) MarshalJSON() ([]byte, error) {
	out := make(map[string][]bindingWire, len(x.bindings))
	for name, bs := range x.bindings {
		wires := make([]bindingWire, 0, len(bs))
		for _, b := range bs {
			w := bindingWire{
				HazardID:  b.Hazard,
				Condition: b.Condition,
			}
			if b.Ranges != nil {
				w.Risk.Ranges = b.Ranges.Ranges
				w.Risk.Gaps = b.Ranges.Gaps
			} else {
				w.Risk.Level = b.Level
			}
			wires = append(wires, w)
		}
		out[name] = wires
	}
	return json.Marshal(out)
}

// ParseExtension decodes a serialized fragment and re-runs the full
// construction validation against the catalog and the Thing's affordance
// schemas. Structural problems surface as ErrMalformedExtension; semantic
// problems reuse the construction error taxonomy.
func ParseExtension(raw json.RawMessage, catalog *Catalog, thing *td.Thing) (*Extension, error) {
	var wires map[string][]bindingWire
	if err := json.Unmarshal(raw, &wires); err != nil {
		return nil, goerr.Wrap(ErrMalformedExtension, "failed to decode hazard extension",
			goerr.V("cause", err.Error()))
	}

	x := NewExtension(catalog, thing)

	names := make([]string, 0, len(wires))
	for name := range wires {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for i := range wires[name] {
			w := &wires[name][i]
			b := &Binding{
				Hazard:    w.HazardID,
				Level:     w.Risk.Level,
				Condition: w.Condition,
			}
			if len(w.Risk.Ranges) > 0 {
				b.Ranges = &RangeTable{
					Ranges: w.Risk.Ranges,
					Gaps:   w.Risk.Gaps,
				}
			} else if w.Risk.Gaps != "" {
				return nil, goerr.Wrap(ErrMalformedExtension, "gap policy without range table",
					goerr.V(AffordanceNameKey, name),
					goerr.V(HazardIDKey, w.HazardID))
			}
			if err := x.Attach(name, b); err != nil {
				return nil, err
			}
		}
	}

	return x, nil
}
