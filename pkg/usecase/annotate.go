package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/domain/model"
	"github.com/secmon-lab/tdhazard/pkg/domain/model/td"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
	"github.com/secmon-lab/tdhazard/pkg/utils/logging"
)

// BindingSpec is one authored binding to apply to a document
type BindingSpec struct {
	Affordance string
	Hazard     types.HazardID
	Level      *model.RiskLevel
	Condition  *model.Condition
	Ranges     *model.RangeTable
}

// Annotate applies authored binding specs to a Thing Description and
// returns the document with the merged hazard extension. An existing
// extension is validated first and extended; a document without an id gets
// a urn:uuid identity so the annotated output is referenceable.
func (uc *UseCases) Annotate(ctx context.Context, data []byte, specs []BindingSpec) ([]byte, error) {
	doc, err := td.Parse(data)
	if err != nil {
		return nil, err
	}

	ext := model.NewExtension(uc.catalog, doc.Thing())
	if raw, ok := doc.Extension(); ok {
		ext, err = model.ParseExtension(raw, uc.catalog, doc.Thing())
		if err != nil {
			return nil, goerr.Wrap(err, "existing hazard extension is invalid")
		}
	}

	for _, spec := range specs {
		b := &model.Binding{
			Hazard:    spec.Hazard,
			Level:     spec.Level,
			Condition: spec.Condition,
			Ranges:    spec.Ranges,
		}
		if err := ext.Attach(spec.Affordance, b); err != nil {
			return nil, err
		}
	}

	raw, err := json.Marshal(ext)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to serialize hazard extension")
	}
	doc.SetExtension(raw)

	if doc.Thing().ID == "" {
		id := "urn:uuid:" + uuid.NewString()
		if err := doc.SetID(id); err != nil {
			return nil, err
		}
		logging.From(ctx).Debug("assigned thing id", "thing_id", id)
	}

	return doc.Encode()
}
