package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/domain/model"
	"github.com/secmon-lab/tdhazard/pkg/domain/model/td"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

// ResolveRisk validates a document's hazard extension and resolves the risk
// of one hazard on one affordance for a concrete value. The boolean result
// is false for an explicit "no mapped risk" outcome.
func (uc *UseCases) ResolveRisk(ctx context.Context, data []byte, affordance string, hazard types.HazardID, value any) (model.RiskLevel, bool, error) {
	doc, err := td.Parse(data)
	if err != nil {
		return model.RiskLevel{}, false, err
	}

	raw, ok := doc.Extension()
	if !ok {
		return model.RiskLevel{}, false, goerr.Wrap(ErrNoExtension, "cannot resolve risk",
			goerr.V("thing_id", doc.Thing().ID))
	}

	ext, err := model.ParseExtension(raw, uc.catalog, doc.Thing())
	if err != nil {
		return model.RiskLevel{}, false, goerr.Wrap(err, "invalid hazard extension")
	}

	return ext.ResolveRisk(affordance, hazard, value)
}
