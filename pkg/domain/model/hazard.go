package model

import (
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

// Hazard holds the intrinsic, Thing-independent attributes of a catalog
// entry. Instances are defined once in the catalog and never vary per Thing;
// the per-Thing part (risk level or range table) lives in Binding.
type Hazard struct {
	ID          types.HazardID
	Name        string
	Description string
	Category    types.Category

	// AppliesTo lists the affordance kinds the hazard may be bound to.
	AppliesTo []types.AffordanceKind

	// RequiresCondition marks hazards whose severity is a function of a
	// measured quantity. A fixed level without a range table or condition
	// makes no statement about that quantity and is rejected.
	RequiresCondition bool
}

// AppliesToKind checks whether the hazard may be bound to an affordance of
// the given kind.
func (h *Hazard) AppliesToKind(kind types.AffordanceKind) bool {
	for _, k := range h.AppliesTo {
		if k == kind {
			return true
		}
	}
	return false
}

// Affordance kind sets shared by catalog entries. Physical safety and
// consumption hazards arise from driving a device (properties and action
// inputs); observation hazards also cover event streams.
var (
	actuationKinds = []types.AffordanceKind{
		types.AffordanceProperty,
		types.AffordanceAction,
	}
	observationKinds = []types.AffordanceKind{
		types.AffordanceProperty,
		types.AffordanceAction,
		types.AffordanceEvent,
	}
)
