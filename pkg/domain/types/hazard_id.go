package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// HazardID identifies a hazard in the closed catalog ontology. The values
// are the JSON-LD identifiers of the ontology and are stable across catalog
// versions; new identifiers may only be introduced by a catalog update.
type HazardID string

const (
	HazardAirPoisoning               HazardID = "sho:AirPoisoning"
	HazardAsphyxia                   HazardID = "sho:Asphyxia"
	HazardAudioVideoRecordAndStore   HazardID = "sho:AudioVideoRecordAndStore"
	HazardAudioVideoStream           HazardID = "sho:AudioVideoStream"
	HazardBurn                       HazardID = "sho:Burn"
	HazardElectricEnergyConsumption  HazardID = "sho:ElectricEnergyConsumption"
	HazardExplosion                  HazardID = "sho:Explosion"
	HazardFireHazard                 HazardID = "sho:FireHazard"
	HazardGasConsumption             HazardID = "sho:GasConsumption"
	HazardLogEnergyConsumption       HazardID = "sho:LogEnergyConsumption"
	HazardLogUsageTime               HazardID = "sho:LogUsageTime"
	HazardPaySubscriptionFee         HazardID = "sho:PaySubscriptionFee"
	HazardPowerOutage                HazardID = "sho:PowerOutage"
	HazardPowerSurge                 HazardID = "sho:PowerSurge"
	HazardRecordIssuedCommands       HazardID = "sho:RecordIssuedCommands"
	HazardRecordUserPreferences      HazardID = "sho:RecordUserPreferences"
	HazardScald                      HazardID = "sho:Scald"
	HazardSpendMoney                 HazardID = "sho:SpendMoney"
	HazardSpoiledFood                HazardID = "sho:SpoiledFood"
	HazardTakeDeviceScreenshots      HazardID = "sho:TakeDeviceScreenshots"
	HazardTakePictures               HazardID = "sho:TakePictures"
	HazardUnauthorisedPhysicalAccess HazardID = "sho:UnauthorisedPhysicalAccess"
	HazardWaterConsumption           HazardID = "sho:WaterConsumption"
	HazardWaterFlooding              HazardID = "sho:WaterFlooding"
)

// AllHazardIDs returns all hazard identifiers of the pinned ontology in
// stable order.
func AllHazardIDs() []HazardID {
	return []HazardID{
		HazardAirPoisoning,
		HazardAsphyxia,
		HazardAudioVideoRecordAndStore,
		HazardAudioVideoStream,
		HazardBurn,
		HazardElectricEnergyConsumption,
		HazardExplosion,
		HazardFireHazard,
		HazardGasConsumption,
		HazardLogEnergyConsumption,
		HazardLogUsageTime,
		HazardPaySubscriptionFee,
		HazardPowerOutage,
		HazardPowerSurge,
		HazardRecordIssuedCommands,
		HazardRecordUserPreferences,
		HazardScald,
		HazardSpendMoney,
		HazardSpoiledFood,
		HazardTakeDeviceScreenshots,
		HazardTakePictures,
		HazardUnauthorisedPhysicalAccess,
		HazardWaterConsumption,
		HazardWaterFlooding,
	}
}

// IsValid checks if the hazard ID belongs to the closed ontology
func (x HazardID) IsValid() bool {
	for _, id := range AllHazardIDs() {
		if x == id {
			return true
		}
	}
	return false
}

// String returns the string representation of the hazard ID
func (x HazardID) String() string {
	return string(x)
}

// ParseHazardID parses a string into a HazardID
func ParseHazardID(s string) (HazardID, error) {
	id := HazardID(s)
	if !id.IsValid() {
		return "", goerr.New("invalid hazard ID", goerr.V("id", s))
	}
	return id, nil
}
