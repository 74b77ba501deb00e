package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Mtaasisi/NEON-POS-sub021/internal/reconcile"
	"github.com/Mtaasisi/NEON-POS-sub021/internal/repo"
	"github.com/Mtaasisi/NEON-POS-sub021/pkg/models"
)

// ReconcileService runs bulk reconciliation imports against a tenant's
// live catalog. The catalog snapshot is fetched and indexed fresh per
// import, so a catalog change between imports never leaks stale matches.
type ReconcileService struct {
	catalogRepo *repo.CatalogRepository
}

// NewReconcileService creates a new reconcile service
func NewReconcileService(catalogRepo *repo.CatalogRepository) *ReconcileService {
	return &ReconcileService{catalogRepo: catalogRepo}
}

// Import parses and validates the submitted text against the tenant
// catalog. reconcile.ErrNoContent is returned as-is for the file-level
// failure case; everything else is reported on the rows.
func (s *ReconcileService) Import(tenantID uuid.UUID, content string) (*models.ReconcileImportResponse, error) {
	products, err := s.catalogRepo.ListActive(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	index := reconcile.BuildCatalogIndex(products)

	session, err := reconcile.Run(content, index)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("tenant_id", tenantID.String()).
		Int("valid", session.ValidCount).
		Int("invalid", session.InvalidCount).
		Int("dropped", session.DroppedLines).
		Msg("Reconciliation import processed")

	return &models.ReconcileImportResponse{
		Rows:         session.Rows,
		ValidCount:   session.ValidCount,
		InvalidCount: session.InvalidCount,
		DroppedLines: session.DroppedLines,
		Items:        session.ValidItems(),
	}, nil
}
