package economy

// Multiplier constants
const (
	// LevelBonusPerLevel is the yield bonus per crop level above 1
	LevelBonusPerLevel = 0.1

	// PrestigeBonusPerPoint is the permanent yield bonus per prestige point
	PrestigeBonusPerPoint = 0.1

	// BaseOfflineEfficiency is the fraction of online yield earned while offline
	BaseOfflineEfficiency = 0.8

	// MaxOfflineEfficiency caps offline efficiency including upgrades
	MaxOfflineEfficiency = 1.0

	// MinHarvestYield is the least a ready crop can ever yield
	MinHarvestYield int64 = 1
)
