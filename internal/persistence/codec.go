package persistence

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/economy"
	"github.com/osse101/GardenIdle_Go/internal/logger"
)

func encode(snap Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// decode parses a stored record and upgrades it to the current schema.
// Unknown fields are ignored and absent ones take their zero value.
func decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	if snap.State == nil {
		return Snapshot{}, fmt.Errorf("%w: %s", domain.ErrInvalidSnapshot, ErrMsgMissingState)
	}

	switch {
	case snap.SchemaVersion <= 1:
		migrateV1(&snap)
	case snap.SchemaVersion > SchemaVersion:
		logger.Warn(LogMsgNewerSchema, "schema_version", snap.SchemaVersion, "supported", SchemaVersion)
	}

	if snap.State.Upgrades == nil {
		snap.State.Upgrades = make(map[domain.UpgradeID]int)
	}
	return snap, nil
}

// migrateV1 derives the planted-kind history from the crops currently in the
// ground. v1 saves stored crop levels without a harvest count, so the count
// is set to the least that reaches the stored level. Achievement records
// start empty and are re-earned on the next evaluation without paying
// rewards twice for anything already recorded.
func migrateV1(snap *Snapshot) {
	s := snap.State
	for _, p := range s.Plots {
		if !p.Empty() && p.Crop.Harvests == 0 && p.Crop.Level > 1 {
			p.Crop.Harvests = int64(p.Crop.Level-1) * domain.CropHarvestsPerLevel
		}
	}
	if len(s.PlantedKinds) == 0 {
		for _, p := range s.Plots {
			if !p.Empty() {
				s.RecordPlanted(p.Crop.PlantID)
			}
		}
	}
	snap.SchemaVersion = SchemaVersion
}

// checker validates snapshots structurally and against a catalog
type checker struct {
	cat      *catalog.Catalog
	validate *validator.Validate
}

func newChecker(cat *catalog.Catalog) *checker {
	return &checker{cat: cat, validate: validator.New()}
}

func (c *checker) check(snap Snapshot) error {
	if err := c.validate.Struct(snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}

	s := snap.State
	capacity := domain.BaseCapacity
	for id, level := range s.Upgrades {
		def, ok := c.cat.Upgrade(id)
		if !ok {
			return fmt.Errorf("%w: %s %q", domain.ErrInvalidSnapshot, ErrMsgUnknownUpgrade, id)
		}
		if level < 0 || level > def.MaxLevel {
			return fmt.Errorf("%w: upgrade %q level %d outside 0..%d", domain.ErrInvalidSnapshot, id, level, def.MaxLevel)
		}
		if def.Kind == domain.UpgradeKindPlotCapacity {
			capacity += level * domain.CapacityPerLevel
		}
	}

	if len(s.Plots) < capacity || len(s.Plots) > c.cat.MaxCapacity() {
		return fmt.Errorf("%w: %d plots outside %d..%d", domain.ErrInvalidSnapshot, len(s.Plots), capacity, c.cat.MaxCapacity())
	}
	for i, p := range s.Plots {
		if p.Empty() {
			continue
		}
		if _, ok := c.cat.Plant(p.Crop.PlantID); !ok {
			return fmt.Errorf("%w: plot %d: %s %q", domain.ErrInvalidSnapshot, i, ErrMsgUnknownPlant, p.Crop.PlantID)
		}
		if want := economy.CropLevel(p.Crop.Harvests); p.Crop.Level != want {
			return fmt.Errorf("%w: plot %d: %s: level %d, %d harvests give %d",
				domain.ErrInvalidSnapshot, i, ErrMsgCropLevel, p.Crop.Level, p.Crop.Harvests, want)
		}
	}

	if !sort.SliceIsSorted(s.PlantedKinds, func(i, j int) bool { return s.PlantedKinds[i] < s.PlantedKinds[j] }) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSnapshot, ErrMsgPlantedKindsOrder)
	}
	for _, id := range s.PlantedKinds {
		if _, ok := c.cat.Plant(id); !ok {
			return fmt.Errorf("%w: %s %q", domain.ErrInvalidSnapshot, ErrMsgUnknownPlant, id)
		}
	}
	return nil
}
