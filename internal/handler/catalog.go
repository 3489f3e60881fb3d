package handler

import (
	"context"
	"net/http"

	"github.com/scavhall/scavrack/internal/claims"
	"github.com/scavhall/scavrack/internal/domain"
	"github.com/scavhall/scavrack/internal/logger"
)

// SnapshotProvider supplies the current normalized catalog snapshot.
type SnapshotProvider interface {
	Records(ctx context.Context) ([]domain.CanonicalRecord, error)
	Reload(ctx context.Context) ([]domain.CanonicalRecord, error)
}

// CatalogResponse lists the browsable records in the current snapshot
type CatalogResponse struct {
	Count   int                      `json:"count"`
	Records []domain.CanonicalRecord `json:"records"`
}

// HandleGetCatalog returns the normalized catalog with claimed domains removed
// @Summary Browse the catalog
// @Description Returns the current normalized listing snapshot, excluding claimed domains
// @Tags catalog
// @Produce json
// @Success 200 {object} CatalogResponse
// @Failure 503 {object} ErrorResponse "Feed unavailable"
// @Router /catalog [get]
func HandleGetCatalog(snapshots SnapshotProvider, claimSvc claims.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		records, err := snapshots.Records(r.Context())
		if err != nil {
			log.Error("Failed to load catalog snapshot", "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		available := claimSvc.FilterAvailable(r.Context(), records)

		respondJSON(w, http.StatusOK, CatalogResponse{
			Count:   len(available),
			Records: available,
		})
	}
}
