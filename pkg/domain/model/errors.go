package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrUnknownHazard      = goerr.New("unknown hazard")
	ErrInapplicableHazard = goerr.New("hazard not applicable to affordance")
	ErrRangeOverlap       = goerr.New("risk ranges overlap")
	ErrRangeOutOfDomain   = goerr.New("risk range outside affordance domain")
	ErrRangeGap           = goerr.New("risk ranges leave a gap in the affordance domain")
	ErrDuplicateBinding   = goerr.New("duplicate hazard binding on affordance")
	ErrMalformedExtension = goerr.New("malformed hazard extension")
	ErrUnknownAffordance  = goerr.New("affordance not declared by thing")
)

// Context keys for error values
const (
	AffordanceNameKey = "affordance_name"
	AffordanceKindKey = "affordance_kind"
	HazardIDKey       = "hazard_id"
	RangeKey          = "range"
	OtherRangeKey     = "other_range"
	SchemaTypeKey     = "schema_type"
	ValueKey          = "value"
)
