package achievement

import (
	"time"

	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/domain"
)

// Tracker holds achievement records across evaluations. Not safe for
// concurrent use; the garden engine owns it.
type Tracker struct {
	defs    []Definition
	byID    map[domain.AchievementID]Definition
	records []domain.AchievementRecord
}

// NewTracker creates a tracker with fresh records for the given definitions
func NewTracker(defs []Definition) *Tracker {
	t := &Tracker{
		defs: defs,
		byID: make(map[domain.AchievementID]Definition, len(defs)),
	}
	for _, d := range defs {
		t.byID[d.ID] = d
	}
	t.Restore(nil)
	return t
}

// Definition looks up an achievement by id
func (t *Tracker) Definition(id domain.AchievementID) (Definition, bool) {
	d, ok := t.byID[id]
	return d, ok
}

// Observe evaluates the state and keeps the resulting records
func (t *Tracker) Observe(cat *catalog.Catalog, s *domain.State, now time.Time) Result {
	res := Evaluate(t.defs, FactsFrom(cat, s), t.records, now)
	t.records = res.Records
	return res
}

// Restore replaces the records, typically with ones loaded from a save.
// Unknown ids are dropped and missing ones start locked.
func (t *Tracker) Restore(records []domain.AchievementRecord) {
	byID := make(map[domain.AchievementID]domain.AchievementRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	t.records = make([]domain.AchievementRecord, 0, len(t.defs))
	for _, d := range t.defs {
		rec, ok := byID[d.ID]
		if !ok {
			rec = domain.AchievementRecord{ID: d.ID}
		}
		if rec.UnlockedAt != nil {
			at := *rec.UnlockedAt
			rec.UnlockedAt = &at
		}
		rec.Progress = clamp01(rec.Progress)
		if rec.Unlocked {
			rec.Progress = 1
		}
		t.records = append(t.records, rec)
	}
}

// AllRecords returns a copy of every record in definition order
func (t *Tracker) AllRecords() []domain.AchievementRecord {
	out := make([]domain.AchievementRecord, len(t.records))
	for i, r := range t.records {
		if r.UnlockedAt != nil {
			at := *r.UnlockedAt
			r.UnlockedAt = &at
		}
		out[i] = r
	}
	return out
}

// UnlockedCount counts unlocked achievements
func (t *Tracker) UnlockedCount() int {
	n := 0
	for _, r := range t.records {
		if r.Unlocked {
			n++
		}
	}
	return n
}

// TotalCount is the number of defined achievements
func (t *Tracker) TotalCount() int {
	return len(t.defs)
}
