package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/tdhazard/pkg/domain/model"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
	"github.com/secmon-lab/tdhazard/pkg/usecase"
)

// Annotation is the TOML authoring format for hazard bindings.
//
//	[[binding]]
//	affordance = "brightness"
//	hazard = "sho:FireHazard"
//	gaps = "allow"
//
//	  [[binding.range]]
//	  min = 0.0
//	  max = 50.0
//	  label = "low"
//	  weight = 1
//
//	[[binding]]
//	affordance = "on"
//	hazard = "sho:TakePictures"
//
//	  [binding.level]
//	  label = "high"
//	  weight = 3
//
//	  [binding.condition]
//	  op = "eq"
//	  value = true
type Annotation struct {
	Bindings []BindingConfig `toml:"binding"`
}

// BindingConfig is one authored binding
type BindingConfig struct {
	Affordance string           `toml:"affordance"`
	Hazard     string           `toml:"hazard"`
	Level      *LevelConfig     `toml:"level"`
	Condition  *ConditionConfig `toml:"condition"`
	Ranges     []RangeConfig    `toml:"range"`
	Gaps       string           `toml:"gaps"`
}

// LevelConfig is a fixed risk level
type LevelConfig struct {
	Label  string `toml:"label"`
	Weight int    `toml:"weight"`
}

// ConditionConfig gates a fixed level on the affordance value
type ConditionConfig struct {
	Op    string `toml:"op"`
	Value any    `toml:"value"`
}

// RangeConfig maps a sub-range of the affordance domain to a risk level
type RangeConfig struct {
	Min          float64 `toml:"min"`
	Max          float64 `toml:"max"`
	MaxInclusive bool    `toml:"max-inclusive"`
	Label        string  `toml:"label"`
	Weight       int     `toml:"weight"`
}

// Validate checks the authored shape of a binding. Catalog membership and
// affordance schemas are checked later when the binding is applied to a
// document.
func (b *BindingConfig) Validate() error {
	if b.Affordance == "" {
		return goerr.Wrap(ErrMissingAffordance, "invalid binding")
	}
	if b.Hazard == "" {
		return goerr.Wrap(ErrMissingHazard, "invalid binding",
			goerr.V("affordance", b.Affordance))
	}
	if (b.Level == nil) == (len(b.Ranges) == 0) {
		return goerr.Wrap(ErrInvalidRisk, "invalid binding",
			goerr.V("affordance", b.Affordance),
			goerr.V("hazard", b.Hazard))
	}
	if b.Condition != nil && len(b.Ranges) > 0 {
		return goerr.Wrap(ErrInvalidRisk, "condition is only valid with a fixed level",
			goerr.V("affordance", b.Affordance),
			goerr.V("hazard", b.Hazard))
	}
	return nil
}

// Validate checks the annotation file
func (a *Annotation) Validate() error {
	for i := range a.Bindings {
		if err := a.Bindings[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid annotation", goerr.V("index", i))
		}
	}
	return nil
}

// Specs converts the authored bindings into use case binding specs
func (a *Annotation) Specs() []usecase.BindingSpec {
	specs := make([]usecase.BindingSpec, 0, len(a.Bindings))
	for _, b := range a.Bindings {
		spec := usecase.BindingSpec{
			Affordance: b.Affordance,
			Hazard:     types.HazardID(b.Hazard),
		}
		if b.Level != nil {
			spec.Level = &model.RiskLevel{
				Label:  types.RiskLabel(b.Level.Label),
				Weight: b.Level.Weight,
			}
		}
		if b.Condition != nil {
			spec.Condition = &model.Condition{
				Op:    types.ConditionOp(b.Condition.Op),
				Value: b.Condition.Value,
			}
		}
		if len(b.Ranges) > 0 {
			table := &model.RangeTable{
				Gaps: types.GapPolicy(b.Gaps),
			}
			for _, r := range b.Ranges {
				table.Ranges = append(table.Ranges, model.RiskRange{
					Min:          r.Min,
					Max:          r.Max,
					MaxInclusive: r.MaxInclusive,
					Level: model.RiskLevel{
						Label:  types.RiskLabel(r.Label),
						Weight: r.Weight,
					},
				})
			}
			spec.Ranges = table
		}
		specs = append(specs, spec)
	}
	return specs
}

// LoadAnnotation reads and validates an annotation TOML file
func LoadAnnotation(path string) (*Annotation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "annotation file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read annotation file", goerr.V("path", path))
	}

	var annotation Annotation
	if err := toml.Unmarshal(data, &annotation); err != nil {
		return nil, goerr.Wrap(err, "failed to parse annotation file", goerr.V("path", path))
	}

	if err := annotation.Validate(); err != nil {
		return nil, err
	}

	return &annotation, nil
}
