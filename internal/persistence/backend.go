package persistence

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

// Backend stores raw save bytes by slot. Read returns domain.ErrSlotEmpty
// when nothing has been written to the slot.
type Backend interface {
	Read(ctx context.Context, slot Slot) ([]byte, error)
	Write(ctx context.Context, slot Slot, data []byte) error
}

// MemoryBackend keeps slots in memory
type MemoryBackend struct {
	mu    sync.RWMutex
	slots map[Slot][]byte
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[Slot][]byte)}
}

// Read returns a copy of the slot's bytes
func (b *MemoryBackend) Read(_ context.Context, slot Slot) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.slots[slot]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotEmpty, slot)
	}
	return append([]byte(nil), data...), nil
}

// Write replaces the slot's bytes with a copy of data
func (b *MemoryBackend) Write(_ context.Context, slot Slot, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.slots[slot] = append([]byte(nil), data...)
	return nil
}
