package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/tdhazard/pkg/domain/model"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

func TestCatalogLookup(t *testing.T) {
	catalog := model.DefaultCatalog()

	t.Run("known hazard", func(t *testing.T) {
		h, err := catalog.Lookup(types.HazardFireHazard)
		gt.NoError(t, err).Required()
		gt.Value(t, h.ID).Equal(types.HazardFireHazard)
		gt.Value(t, h.Name).Equal("Fire hazard")
		gt.Value(t, h.Category).Equal(types.CategorySafety)
	})

	t.Run("unknown hazard", func(t *testing.T) {
		_, err := catalog.Lookup("sho:NotAHazard")
		gt.Error(t, err).Is(model.ErrUnknownHazard)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := catalog.Lookup("")
		gt.Error(t, err).Is(model.ErrUnknownHazard)
	})
}

func TestCatalogEnumeration(t *testing.T) {
	catalog := model.DefaultCatalog()

	gt.Value(t, catalog.Len()).Equal(24)
	gt.Value(t, catalog.Version()).Equal(model.CatalogVersion)

	hazards := catalog.Hazards()
	gt.Array(t, hazards).Length(24)

	// Every enumerated entry must resolve back through Lookup.
	for _, h := range hazards {
		got, err := catalog.Lookup(h.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got).Equal(h)

		gt.Value(t, h.ID.IsValid()).Equal(true)
		gt.Value(t, h.Category.IsValid()).Equal(true)
		gt.Value(t, h.Name).NotEqual("")
		gt.Value(t, h.Description).NotEqual("")
		gt.Number(t, len(h.AppliesTo)).NotEqual(0)
	}

	// Enumeration order is stable across calls.
	again := catalog.Hazards()
	for i := range hazards {
		gt.Value(t, again[i].ID).Equal(hazards[i].ID)
	}
}

func TestCatalogAppliesTo(t *testing.T) {
	catalog := model.DefaultCatalog()

	tests := []struct {
		name   string
		hazard types.HazardID
		kind   types.AffordanceKind
		want   bool
	}{
		{"safety hazard on property", types.HazardFireHazard, types.AffordanceProperty, true},
		{"safety hazard on action", types.HazardFireHazard, types.AffordanceAction, true},
		{"safety hazard on event", types.HazardFireHazard, types.AffordanceEvent, false},
		{"privacy hazard on event", types.HazardTakePictures, types.AffordanceEvent, true},
		{"financial hazard on event", types.HazardPaySubscriptionFee, types.AffordanceEvent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := catalog.Lookup(tt.hazard)
			gt.NoError(t, err).Required()
			gt.Value(t, h.AppliesToKind(tt.kind)).Equal(tt.want)
		})
	}
}

func TestCatalogIsClosed(t *testing.T) {
	// A syntactically plausible identifier outside the pinned set must fail.
	_, err := model.DefaultCatalog().Lookup("sho:DataLeak")
	gt.Error(t, err).Is(model.ErrUnknownHazard)
	gt.Value(t, errors.Is(err, model.ErrInapplicableHazard)).Equal(false)
}
