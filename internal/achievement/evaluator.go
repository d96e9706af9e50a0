// Package achievement evaluates milestone achievements against garden state.
//
// Evaluation is a pure function of facts and prior records: progress only
// rises, an unlock is permanent, and each unlock pays its premium reward once.
// Tracker keeps the records between evaluations for the engine.
package achievement

import (
	"time"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

// Result is the outcome of one evaluation pass
type Result struct {
	Records       []domain.AchievementRecord
	Unlocked      []domain.AchievementID
	PremiumReward int64
}

// Evaluate judges every definition against the facts. Records are returned in
// definition order; prior records for unknown ids are dropped. The input slice
// is not modified.
func Evaluate(defs []Definition, facts Facts, prior []domain.AchievementRecord, now time.Time) Result {
	byID := make(map[domain.AchievementID]domain.AchievementRecord, len(prior))
	for _, rec := range prior {
		byID[rec.ID] = rec
	}

	res := Result{Records: make([]domain.AchievementRecord, 0, len(defs))}
	for _, def := range defs {
		rec, ok := byID[def.ID]
		if !ok {
			rec = domain.AchievementRecord{ID: def.ID}
		}
		if rec.UnlockedAt != nil {
			at := *rec.UnlockedAt
			rec.UnlockedAt = &at
		}

		rec.Progress = max(clamp01(rec.Progress), def.Progress(facts))

		if !rec.Unlocked && def.Met(facts) {
			at := now
			rec.Unlocked = true
			rec.UnlockedAt = &at
			res.Unlocked = append(res.Unlocked, def.ID)
			res.PremiumReward += def.Reward
		}
		if rec.Unlocked {
			rec.Progress = 1
		}

		res.Records = append(res.Records, rec)
	}
	return res
}
