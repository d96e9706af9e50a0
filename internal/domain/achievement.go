package domain

import "time"

// AchievementID identifies an achievement definition
type AchievementID string

// AchievementRecord tracks one achievement. Unlocked and Progress never decrease.
type AchievementRecord struct {
	ID         AchievementID `json:"id" validate:"required"`
	Unlocked   bool          `json:"unlocked"`
	UnlockedAt *time.Time    `json:"unlocked_at,omitempty"`
	Progress   float64       `json:"progress" validate:"min=0,max=1"`
}
