package persistence

import (
	"context"
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

// GdataBackend stores slots as properties of a gdata object in the
// platform's per-application data directory.
type GdataBackend struct {
	m *gdata.Manager
}

// OpenGdataBackend opens the gdata store for the given application name
func OpenGdataBackend(appName string) (*GdataBackend, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open gdata %q: %w", appName, err)
	}
	return NewGdataBackend(m), nil
}

// NewGdataBackend wraps an already opened manager
func NewGdataBackend(m *gdata.Manager) *GdataBackend {
	return &GdataBackend{m: m}
}

// Read loads a slot property
func (b *GdataBackend) Read(_ context.Context, slot Slot) ([]byte, error) {
	if !b.m.ObjectPropExists(gdataObject, string(slot)) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotEmpty, slot)
	}
	data, err := b.m.LoadObjectProp(gdataObject, string(slot))
	if err != nil {
		return nil, fmt.Errorf("load slot %s: %w", slot, err)
	}
	return data, nil
}

// Write saves a slot property
func (b *GdataBackend) Write(_ context.Context, slot Slot, data []byte) error {
	if err := b.m.SaveObjectProp(gdataObject, string(slot), data); err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	return nil
}
