package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/config"
)

// LoadCatalog returns the catalog named by CatalogPath, or the built-in one
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		cat := catalog.Default()
		slog.Info(LogMsgCatalogLoaded, "source", CatalogSourceBuiltin,
			"plants", len(cat.Plants()), "upgrades", len(cat.Upgrades()))
		return cat, nil
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded, "source", cfg.CatalogPath,
		"plants", len(cat.Plants()), "upgrades", len(cat.Upgrades()))
	return cat, nil
}
