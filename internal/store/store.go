package store

import (
	"fmt"
	"io"

	"reelcat/internal/catalog"
	"reelcat/internal/config"
)

// Open returns the catalog store selected by the configuration. The
// returned closer is nil for backends without local resources to release.
func Open(cfg *config.Config) (catalog.Store, io.Closer, error) {
	switch cfg.Store.Backend {
	case "http":
		return NewHTTPStoreFromConfig(cfg), nil, nil
	case "sqlite":
		s, err := OpenSQLiteFromConfig(cfg)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("store.backend: unsupported value %q", cfg.Store.Backend)
	}
}
