package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/config"
	"github.com/osse101/GardenIdle_Go/internal/metrics"
	"github.com/osse101/GardenIdle_Go/internal/persistence"
)

// OpenBackend opens the save backend selected by SaveBackend. The returned
// closer is nil for backends that hold no resources.
func OpenBackend(ctx context.Context, cfg *config.Config) (persistence.Backend, io.Closer, error) {
	var (
		backend persistence.Backend
		closer  io.Closer
		err     error
	)

	switch cfg.SaveBackend {
	case config.BackendMemory:
		backend = persistence.NewMemoryBackend()
	case config.BackendFile:
		backend, err = persistence.NewFileBackend(cfg.SaveDir)
	case config.BackendGdata:
		backend, err = persistence.OpenGdataBackend(cfg.GdataAppName)
	case config.BackendSQLite:
		if mkErr := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); mkErr != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgCreateSaveDir, mkErr)
		}
		var db *persistence.SQLiteBackend
		db, err = persistence.OpenSQLiteBackend(ctx, cfg.SQLitePath)
		if err == nil {
			backend, closer = db, db
		}
	default:
		return nil, nil, fmt.Errorf(ErrMsgUnknownBackend, cfg.SaveBackend)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgOpenBackend, err)
	}

	slog.Info(LogMsgBackendOpened, "backend", cfg.SaveBackend)
	return backend, closer, nil
}

// NewStore wraps the backend in a store that reports load outcomes to metrics
func NewStore(backend persistence.Backend, cat *catalog.Catalog) *persistence.Store {
	return persistence.NewStore(backend, cat, persistence.WithObserver(metrics.LoadObserver{}))
}
