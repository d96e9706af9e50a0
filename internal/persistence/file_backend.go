package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/osse101/GardenIdle_Go/internal/domain"
)

// FileBackend stores each slot as a JSON file in a directory. Writes go to a
// temporary file that is renamed over the slot, so a crash never leaves a
// half-written save.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the directory if needed
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

// Path returns the file backing a slot
func (b *FileBackend) Path(slot Slot) string {
	return filepath.Join(b.dir, string(slot)+fileSuffix)
}

// Read loads a slot file
func (b *FileBackend) Read(_ context.Context, slot Slot) ([]byte, error) {
	data, err := os.ReadFile(b.Path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotEmpty, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", slot, err)
	}
	return data, nil
}

// Write atomically replaces a slot file
func (b *FileBackend) Write(_ context.Context, slot Slot, data []byte) error {
	tmp, err := os.CreateTemp(b.dir, string(slot)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePermissions); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, b.Path(slot)); err != nil {
		return fmt.Errorf("replace slot %s: %w", slot, err)
	}
	return nil
}
