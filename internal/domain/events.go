package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "garden.harvested")
const (
	// EventTypePlanted is published when a crop is planted in an empty plot
	EventTypePlanted = "garden.planted"

	// EventTypeHarvested is published for every manual or automatic harvest
	EventTypeHarvested = "garden.harvested"

	// EventTypeUprooted is published when a crop is removed from its plot
	EventTypeUprooted = "garden.uprooted"

	// EventTypeUpgradePurchased is published when an upgrade level is bought
	EventTypeUpgradePurchased = "upgrade.purchased"

	// EventTypeOfflineApplied is published when a pending offline reward is credited
	EventTypeOfflineApplied = "offline.applied"

	// EventTypePrestige is published after a successful prestige
	EventTypePrestige = "prestige.performed"

	// EventTypeReset is published after an explicit full reset
	EventTypeReset = "garden.reset"

	// EventTypeAchievementUnlocked is published once per unlocked achievement
	EventTypeAchievementUnlocked = "achievement.unlocked"

	// EventTypeSaveCompleted and EventTypeSaveFailed report autosave results
	EventTypeSaveCompleted = "save.completed"
	EventTypeSaveFailed    = "save.failed"
)

// Harvest sources
const (
	HarvestSourceManual = "manual"
	HarvestSourceAuto   = "auto"
)
