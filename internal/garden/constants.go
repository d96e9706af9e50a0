package garden

// Log messages
const (
	LogMsgPlanted            = "Crop planted"
	LogMsgHarvested          = "Crop harvested"
	LogMsgUprooted           = "Crop uprooted"
	LogMsgUpgradePurchased   = "Upgrade purchased"
	LogMsgOfflineComputed    = "Offline reward computed"
	LogMsgOfflineImplausible = "Offline interval implausible, no reward granted"
	LogMsgOfflineApplied     = "Offline reward applied"
	LogMsgPrestige           = "Prestige performed"
	LogMsgReset              = "Garden reset"
	LogMsgAchievement        = "Achievement unlocked"
	LogMsgUnknownCropPlant   = "Crop references unknown plant"
	LogMsgPublishFailed      = "Failed to publish garden event"
)
