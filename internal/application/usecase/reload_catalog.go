package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tinyguard/internal/application/port"
	"github.com/bnema/tinyguard/internal/domain/tracker"
	"github.com/bnema/tinyguard/internal/logging"
)

// ReloadCatalogUseCase replaces the catalog with the content of a tracker list document.
type ReloadCatalogUseCase struct {
	catalog *tracker.Catalog
	loader  port.TrackerListLoader
	path    string
}

// NewReloadCatalogUseCase creates a new ReloadCatalogUseCase reading from path.
func NewReloadCatalogUseCase(catalog *tracker.Catalog, loader port.TrackerListLoader, path string) *ReloadCatalogUseCase {
	return &ReloadCatalogUseCase{
		catalog: catalog,
		loader:  loader,
		path:    path,
	}
}

// Path returns the document the catalog is loaded from.
func (uc *ReloadCatalogUseCase) Path() string {
	return uc.path
}

// Execute loads the document and swaps the catalog. On failure the current
// catalog stays in place.
func (uc *ReloadCatalogUseCase) Execute(ctx context.Context) (int, error) {
	log := logging.Component(ctx, "catalog")

	domains, err := uc.loader.LoadFile(ctx, uc.path)
	if err != nil {
		log.Error().Err(err).Str("path", uc.path).Int("kept", uc.catalog.Size()).Msg("catalog reload failed")
		return 0, fmt.Errorf("reload catalog: %w", err)
	}

	n := uc.catalog.Load(domains)
	log.Info().Int("trackers", n).Str("path", uc.path).Msg("detection database loaded")
	return n, nil
}
