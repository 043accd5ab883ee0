package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/domain/model"
	"github.com/secmon-lab/tdhazard/pkg/domain/model/td"
	"github.com/secmon-lab/tdhazard/pkg/utils/logging"
)

// ValidateDocument parses a Thing Description and validates its hazard
// extension fragment against the catalog and the declared affordance
// schemas. It returns nil without error when the document carries no
// extension.
func (uc *UseCases) ValidateDocument(ctx context.Context, data []byte) (*model.Extension, error) {
	doc, err := td.Parse(data)
	if err != nil {
		return nil, err
	}

	raw, ok := doc.Extension()
	if !ok {
		logging.From(ctx).Debug("document has no hazard extension",
			"thing_id", doc.Thing().ID)
		return nil, nil
	}

	ext, err := model.ParseExtension(raw, uc.catalog, doc.Thing())
	if err != nil {
		return nil, goerr.Wrap(err, "invalid hazard extension",
			goerr.V("thing_id", doc.Thing().ID))
	}

	return ext, nil
}
