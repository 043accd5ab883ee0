package model

import (
	"fmt"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/domain/model/td"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

// RiskLevel is a named severity tier assigned to a hazard in the context of
// one affordance. Weight is an optional ordinal for comparing tiers.
type RiskLevel struct {
	Label  types.RiskLabel `json:"label"`
	Weight int             `json:"weight,omitempty"`
}

// Validate checks if the RiskLevel is valid
func (l RiskLevel) Validate() error {
	if err := l.Label.Validate(); err != nil {
		return goerr.Wrap(err, "invalid risk level")
	}
	if l.Weight < 0 {
		return goerr.New("risk level weight must not be negative",
			goerr.V("label", l.Label), goerr.V("weight", l.Weight))
	}
	return nil
}

// RiskRange maps a sub-range of a numeric affordance domain to a RiskLevel.
// The lower bound is always inclusive; the upper bound is exclusive unless
// MaxInclusive is set, so contiguous tables are written as half-open ranges
// with the topmost range closing the domain.
type RiskRange struct {
	Min          float64   `json:"min"`
	Max          float64   `json:"max"`
	MaxInclusive bool      `json:"maxInclusive,omitempty"`
	Level        RiskLevel `json:"level"`
}

// Contains checks whether a value falls into the range
func (r RiskRange) Contains(v float64) bool {
	if v < r.Min {
		return false
	}
	if v < r.Max {
		return true
	}
	return r.MaxInclusive && v == r.Max
}

// String renders the range in interval notation for error reporting
func (r RiskRange) String() string {
	end := ")"
	if r.MaxInclusive {
		end = "]"
	}
	return fmt.Sprintf("[%v,%v%s", r.Min, r.Max, end)
}

// Validate checks the range in isolation
func (r RiskRange) Validate() error {
	if r.Max < r.Min || (r.Max == r.Min && !r.MaxInclusive) {
		return goerr.Wrap(ErrRangeOutOfDomain, "range is empty",
			goerr.V(RangeKey, r.String()))
	}
	if err := r.Level.Validate(); err != nil {
		return goerr.Wrap(err, "invalid range level", goerr.V(RangeKey, r.String()))
	}
	return nil
}

// RangeTable is an ordered set of disjoint risk ranges over one affordance
// domain, together with an explicit policy for uncovered values. After
// Validate the ranges are sorted by lower bound, which also makes the
// serialized form canonical.
type RangeTable struct {
	Ranges []RiskRange     `json:"ranges"`
	Gaps   types.GapPolicy `json:"gaps,omitempty"`
}

// Validate checks the table against the declared value domain of an
// affordance: every range must lie within the domain, ranges must be
// pairwise disjoint, and under GapPolicyForbid the ranges must cover the
// whole domain. Ranges are sorted by lower bound as a side effect.
func (t *RangeTable) Validate(schema td.DataSchema) error {
	if len(t.Ranges) == 0 {
		return goerr.Wrap(ErrMalformedExtension, "range table has no ranges")
	}

	gaps := t.Gaps.Normalize()
	if !gaps.IsValid() {
		return goerr.Wrap(ErrMalformedExtension, "invalid gap policy",
			goerr.V(ValueKey, t.Gaps))
	}
	t.Gaps = gaps

	if !schema.IsNumeric() {
		return goerr.Wrap(ErrRangeOutOfDomain, "affordance domain is not numeric",
			goerr.V(SchemaTypeKey, schema.Type))
	}

	for _, r := range t.Ranges {
		if err := r.Validate(); err != nil {
			return err
		}
		if schema.Minimum != nil && r.Min < *schema.Minimum {
			return goerr.Wrap(ErrRangeOutOfDomain, "range starts below domain minimum",
				goerr.V(RangeKey, r.String()),
				goerr.V("domain_minimum", *schema.Minimum))
		}
		if schema.Maximum != nil && r.Max > *schema.Maximum {
			return goerr.Wrap(ErrRangeOutOfDomain, "range ends above domain maximum",
				goerr.V(RangeKey, r.String()),
				goerr.V("domain_maximum", *schema.Maximum))
		}
	}

	sort.SliceStable(t.Ranges, func(i, j int) bool {
		return t.Ranges[i].Min < t.Ranges[j].Min
	})

	for i := 1; i < len(t.Ranges); i++ {
		prev, cur := t.Ranges[i-1], t.Ranges[i]
		if cur.Min < prev.Max || (cur.Min == prev.Max && prev.MaxInclusive) {
			return goerr.Wrap(ErrRangeOverlap, "ranges overlap",
				goerr.V(RangeKey, prev.String()),
				goerr.V(OtherRangeKey, cur.String()))
		}
	}

	if t.Gaps == types.GapPolicyForbid {
		if err := t.validateCoverage(schema); err != nil {
			return err
		}
	}

	return nil
}

func (t *RangeTable) validateCoverage(schema td.DataSchema) error {
	if !schema.IsBounded() {
		return goerr.Wrap(ErrRangeGap, "gap policy forbid requires a bounded domain",
			goerr.V(SchemaTypeKey, schema.Type))
	}

	first := t.Ranges[0]
	if first.Min > *schema.Minimum {
		return goerr.Wrap(ErrRangeGap, "domain minimum not covered",
			goerr.V(RangeKey, first.String()),
			goerr.V("domain_minimum", *schema.Minimum))
	}

	for i := 1; i < len(t.Ranges); i++ {
		prev, cur := t.Ranges[i-1], t.Ranges[i]
		if cur.Min > prev.Max {
			return goerr.Wrap(ErrRangeGap, "gap between ranges",
				goerr.V(RangeKey, prev.String()),
				goerr.V(OtherRangeKey, cur.String()))
		}
	}

	last := t.Ranges[len(t.Ranges)-1]
	if last.Max < *schema.Maximum || (last.Max == *schema.Maximum && !last.MaxInclusive) {
		return goerr.Wrap(ErrRangeGap, "domain maximum not covered",
			goerr.V(RangeKey, last.String()),
			goerr.V("domain_maximum", *schema.Maximum))
	}

	return nil
}

// Resolve maps a concrete value to its RiskLevel. The second return value is
// false when no range covers the value: an explicit "no mapped risk" result,
// only possible under GapPolicyAllow after validation.
// Requires a validated (sorted) table.
func (t *RangeTable) Resolve(value float64) (RiskLevel, bool) {
	idx := sort.Search(len(t.Ranges), func(i int) bool {
		return t.Ranges[i].Min > value
	}) - 1
	if idx < 0 {
		return RiskLevel{}, false
	}
	if r := t.Ranges[idx]; r.Contains(value) {
		return r.Level, true
	}
	return RiskLevel{}, false
}
