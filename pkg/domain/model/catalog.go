package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tdhazard/pkg/domain/types"
)

// CatalogVersion pins the hazard ontology revision this build carries.
// Extending the catalog requires a new revision; there is no runtime
// registration of hazards.
const CatalogVersion = "1.0.0"

// Catalog is the closed, immutable set of hazards. It is process-wide
// constant data and safe for concurrent use without locking.
type Catalog struct {
	hazards map[types.HazardID]*Hazard
	order   []types.HazardID
}

var defaultCatalog = newCatalog(catalogEntries)

// DefaultCatalog returns the catalog pinned at CatalogVersion
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func newCatalog(entries []Hazard) *Catalog {
	c := &Catalog{
		hazards: make(map[types.HazardID]*Hazard, len(entries)),
		order:   make([]types.HazardID, 0, len(entries)),
	}
	for i := range entries {
		h := &entries[i]
		c.hazards[h.ID] = h
		c.order = append(c.order, h.ID)
	}
	return c
}

// Lookup returns the intrinsic hazard attributes for an identifier, or
// ErrUnknownHazard when the identifier is not part of the closed set.
func (c *Catalog) Lookup(id types.HazardID) (*Hazard, error) {
	h, ok := c.hazards[id]
	if !ok {
		return nil, goerr.Wrap(ErrUnknownHazard, "hazard not in catalog",
			goerr.V(HazardIDKey, id),
			goerr.V("catalog_version", CatalogVersion))
	}
	return h, nil
}

// Hazards enumerates all catalog entries in stable identifier order
func (c *Catalog) Hazards() []*Hazard {
	out := make([]*Hazard, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.hazards[id])
	}
	return out
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.order)
}

// Version returns the pinned catalog version
func (c *Catalog) Version() string {
	return CatalogVersion
}

var catalogEntries = []Hazard{
	{
		ID:          types.HazardAirPoisoning,
		Name:        "Air poisoning",
		Description: "The execution may release toxic gases",
		Category:    types.CategorySafety,
		AppliesTo:   actuationKinds,
	},
	{
		ID:          types.HazardAsphyxia,
		Name:        "Asphyxia",
		Description: "The execution may cause oxygen deficiency by gaseous substances",
		Category:    types.CategorySafety,
		AppliesTo:   actuationKinds,
	},
	{
		ID:          types.HazardAudioVideoRecordAndStore,
		Name:        "Audio video record and store",
		Description: "The execution authorises the app to record and save a video with audio on persistent storage",
		Category:    types.CategoryPrivacy,
		AppliesTo:   observationKinds,
	},
	{
		ID:          types.HazardAudioVideoStream,
		Name:        "Audio video stream",
		Description: "The execution authorises the app to obtain a video stream with audio",
		Category:    types.CategoryPrivacy,
		AppliesTo:   observationKinds,
	},
	{
		ID:          types.HazardBurn,
		Name:        "Burn",
		Description: "The execution may cause burns",
		Category:    types.CategorySafety,
		AppliesTo:   actuationKinds,
	},
	{
		ID:                types.HazardElectricEnergyConsumption,
		Name:              "Electric energy consumption",
		Description:       "The execution enables a device that consumes electricity",
		Category:          types.CategoryFinancial,
		AppliesTo:         actuationKinds,
		RequiresCondition: true,
	},
	{
		ID:          types.HazardExplosion,
		Name:        "Explosion",
		Description: "The execution may cause an explosion",
		Category:    types.CategorySafety,
		AppliesTo:   actuationKinds,
	},
	{
		ID:          types.HazardFireHazard,
		Name:        "Fire hazard",
		Description: "The execution may cause fire",
		Category:    types.CategorySafety,
		AppliesTo:   actuationKinds,
	},
	{
		ID:                types.HazardGasConsumption,
		Name:              "Gas consumption",
		Description:       "The execution enables a device that consumes gas",
		Category:          types.CategoryFinancial,
		AppliesTo:         actuationKinds,
		RequiresCondition: true,
	},
	{
		ID:          types.HazardLogEnergyConsumption,
		Name:        "Log energy consumption",
		Description: "The execution authorises the app to get and save information about the app's energy impact on the device the app runs on",
		Category:    types.CategoryPrivacy,
		AppliesTo:   observationKinds,
	},
	{
		ID:          types.HazardLogUsageTime,
		Name:        "Log usage time",
		Description: "The execution authorises the app to get and save information about the app's duration of use",
		Category:    types.CategoryPrivacy,
		AppliesTo:   observationKinds,
	},
	{
		ID:          types.HazardPaySubscriptionFee,
		Name:        "Pay subscription fee",
		Description: "The execution authorises the app to use payment information and make a periodic payment",
		Category:    types.CategoryFinancial,
		AppliesTo:   actuationKinds,
	},
	{
		ID:          types.HazardPowerOutage,
		Name:        "Power outage",
		Description: "The execution may cause an interruption in the supply of electricity",
		Category:    types.CategorySafety,
		AppliesTo:   actuationKinds,
	},
	{
		ID:          types.HazardPowerSurge,
		Name:        "Power surge",
		Description: "The execution may lead to exposure to high voltages",
		Category:    types.CategorySafety,
		AppliesTo:   actuationKinds,
	},
	{
		ID:          types.HazardRecordIssuedCommands,
		Name:        "Record issued commands",
		Description: "The execution authorises the app to get and save user inputs",
		Category:    types.CategoryPrivacy,
		AppliesTo:   observationKinds,
	},
	{
		ID:          types.HazardRecordUserPreferences,
		Name:        "Record user preferences",
		Description: "The execution authorises the app to get and save information about the user's preferences",
		Category:    types.CategoryPrivacy,
		AppliesTo:   observationKinds,
	},
	{
		ID:          types.HazardScald,
		Name:        "Scald",
		Description: "The execution may cause scalds",
		Category:    types.CategorySafety,
		AppliesTo:   actuationKinds,
	},
	{
		ID:          types.HazardSpendMoney,
		Name:        "Spend money",
		Description: "The execution authorises the app to use payment information and make a payment transaction",
		Category:    types.CategoryFinancial,
		AppliesTo:   actuationKinds,
	},
	{
		ID:          types.HazardSpoiledFood,
		Name:        "Spoiled food",
		Description: "The execution may lead to rotten food",
		Category:    types.CategorySafety,
		AppliesTo:   actuationKinds,
	},
	{
		ID:          types.HazardTakeDeviceScreenshots,
		Name:        "Take device screenshots",
		Description: "The execution authorises the app to read the display output and take screenshots of it",
		Category:    types.CategoryPrivacy,
		AppliesTo:   observationKinds,
	},
	{
		ID:          types.HazardTakePictures,
		Name:        "Take pictures",
		Description: "The execution authorises the app to use a camera and take photos",
		Category:    types.CategoryPrivacy,
		AppliesTo:   observationKinds,
	},
	{
		ID:          types.HazardUnauthorisedPhysicalAccess,
		Name:        "Unauthorised physical access",
		Description: "The execution disables a protection mechanism and unauthorised individuals may physically enter home",
		Category:    types.CategorySafety,
		AppliesTo:   actuationKinds,
	},
	{
		ID:                types.HazardWaterConsumption,
		Name:              "Water consumption",
		Description:       "The execution enables a device that consumes water",
		Category:          types.CategoryFinancial,
		AppliesTo:         actuationKinds,
		RequiresCondition: true,
	},
	{
		ID:          types.HazardWaterFlooding,
		Name:        "Water flooding",
		Description: "The execution allows water usage which may lead to flood",
		Category:    types.CategorySafety,
		AppliesTo:   actuationKinds,
	},
}
