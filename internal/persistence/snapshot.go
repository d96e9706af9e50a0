package persistence

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

// SchemaVersion is the snapshot format written by this build.
//
// Version 1 records carried no achievements and no planted-kind history.
const SchemaVersion = 2

// Snapshot is the persisted record of one garden
type Snapshot struct {
	SchemaVersion int                        `json:"schema_version" validate:"min=1"`
	SaveID        string                     `json:"save_id" validate:"omitempty,uuid"`
	SavedAt       time.Time                  `json:"saved_at"`
	State         *domain.State              `json:"state" validate:"required"`
	Achievements  []domain.AchievementRecord `json:"achievements,omitempty" validate:"dive"`

	// Revision orders snapshots taken by one writer. Zero means unordered.
	Revision uint64 `json:"-"`
}

// NewSnapshot wraps a state and its achievement records for saving
func NewSnapshot(s *domain.State, records []domain.AchievementRecord, now time.Time) Snapshot {
	return Snapshot{
		SchemaVersion: SchemaVersion,
		SaveID:        uuid.NewString(),
		SavedAt:       now.UTC().Round(0),
		State:         s,
		Achievements:  records,
	}
}

// FreshSnapshot is what Load returns when no slot holds a usable save
func FreshSnapshot(now time.Time) Snapshot {
	return NewSnapshot(domain.NewState(now.UTC().Round(0)), nil, now)
}

// Slot names a save location within a backend
type Slot string

const (
	SlotPrimary Slot = "primary"
	SlotBackup  Slot = "backup"
)

// Source reports where a loaded snapshot came from
type Source string

const (
	SourcePrimary Source = "primary"
	SourceBackup  Source = "backup"
	SourceFresh   Source = "fresh"
)
