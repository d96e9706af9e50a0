// Package persistence saves and restores garden snapshots.
//
// A Store keeps two slots on a Backend. Every save first copies the current
// primary bytes to the backup slot, so a primary corrupted by a crash can be
// recovered from the previous save. Loading never fails: unreadable slots are
// logged and skipped, and a fresh garden is returned when neither slot is
// usable.
package persistence

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/domain"
	"github.com/osse101/GardenIdle_Go/internal/logger"
)

// Observer is notified of load outcomes, typically to feed metrics
type Observer interface {
	SlotCorrupt(slot Slot)
	Loaded(source Source)
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithObserver reports load outcomes to o
func WithObserver(o Observer) StoreOption {
	return func(s *Store) { s.observer = o }
}

// WithStoreClock replaces the clock used to seed fresh snapshots
func WithStoreClock(clock func() time.Time) StoreOption {
	return func(s *Store) { s.clock = clock }
}

// Store saves snapshots to a backend with a one-deep backup. Saves are
// serialised, and a snapshot whose Revision is older than the newest one
// written is refused with domain.ErrStaleSnapshot.
type Store struct {
	backend  Backend
	checker  *checker
	observer Observer
	clock    func() time.Time

	mu           sync.Mutex
	lastRevision uint64
}

// NewStore creates a store validating snapshots against cat
func NewStore(backend Backend, cat *catalog.Catalog, opts ...StoreOption) *Store {
	s := &Store{
		backend: backend,
		checker: newChecker(cat),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save writes the snapshot as the new primary. The previous primary is
// copied to the backup slot first; failing to do so is logged, not fatal.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	if err := s.checker.check(snap); err != nil {
		return err
	}
	data, err := encode(snap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Revision != 0 && snap.Revision < s.lastRevision {
		return fmt.Errorf("%w: revision %d, last written %d", domain.ErrStaleSnapshot, snap.Revision, s.lastRevision)
	}

	log := logger.FromContext(ctx)

	prev, err := s.backend.Read(ctx, SlotPrimary)
	switch {
	case err == nil:
		if err := s.backend.Write(ctx, SlotBackup, prev); err != nil {
			log.Warn(LogMsgBackupFailed, "error", err)
		}
	case !errors.Is(err, domain.ErrSlotEmpty):
		log.Warn(LogMsgBackupFailed, "error", err)
	}

	if err := s.backend.Write(ctx, SlotPrimary, data); err != nil {
		return fmt.Errorf("write primary save: %w", err)
	}
	if snap.Revision > s.lastRevision {
		s.lastRevision = snap.Revision
	}
	log.Debug(LogMsgSaved, "save_id", snap.SaveID, "revision", snap.Revision, "bytes", len(data))
	return nil
}

// Load returns the primary snapshot, falling back to the backup and then to
// a fresh garden. The source reports which one was used.
func (s *Store) Load(ctx context.Context) (Snapshot, Source) {
	log := logger.FromContext(ctx)

	for _, slot := range []Slot{SlotPrimary, SlotBackup} {
		snap, err := s.loadSlot(ctx, slot)
		if err == nil {
			source := Source(slot)
			log.Info(LogMsgLoaded, "source", source, "save_id", snap.SaveID, "saved_at", snap.SavedAt)
			s.notifyLoaded(source)
			return snap, source
		}
		if errors.Is(err, domain.ErrSlotEmpty) {
			continue
		}
		log.Warn(LogMsgSlotCorrupt, "slot", slot, "error", err)
		if s.observer != nil {
			s.observer.SlotCorrupt(slot)
		}
	}

	log.Info(LogMsgLoadedFresh)
	s.notifyLoaded(SourceFresh)
	return FreshSnapshot(s.clock()), SourceFresh
}

// ExportPortable encodes a snapshot as base64 text for manual transfer
func (s *Store) ExportPortable(snap Snapshot) (string, error) {
	data, err := encode(snap)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// ImportPortable decodes and validates an exported blob and only then saves
// it as the primary. An invalid blob returns domain.ErrInvalidSnapshot and
// leaves every slot untouched.
//
// It writes directly, so it is only safe while nothing else saves through
// this store. A running garden loads the result of ParsePortable into its
// engine and saves from there instead.
func (s *Store) ImportPortable(ctx context.Context, blob string) (Snapshot, error) {
	snap, err := s.ParsePortable(ctx, blob)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.Save(ctx, snap); err != nil {
		return Snapshot{}, err
	}

	logger.FromContext(ctx).Info(LogMsgImportCompleted, "save_id", snap.SaveID)
	return snap, nil
}

// ParsePortable decodes and validates an exported blob without saving it
func (s *Store) ParsePortable(ctx context.Context, blob string) (Snapshot, error) {
	snap, err := s.parsePortable(blob)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgImportRejected, "error", err)
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *Store) parsePortable(blob string) (Snapshot, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(blob))
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s", domain.ErrInvalidSnapshot, ErrMsgNotBase64)
	}
	snap, err := decode(data)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.checker.check(snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *Store) loadSlot(ctx context.Context, slot Slot) (Snapshot, error) {
	data, err := s.backend.Read(ctx, slot)
	if err != nil {
		return Snapshot{}, err
	}
	snap, err := decode(data)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.checker.check(snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *Store) notifyLoaded(source Source) {
	if s.observer != nil {
		s.observer.Loaded(source)
	}
}
