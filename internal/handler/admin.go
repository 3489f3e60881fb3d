package handler

import (
	"net/http"

	"github.com/scavhall/scavrack/internal/collection"
	"github.com/scavhall/scavrack/internal/logger"
)

// ReloadResponse reports the result of an admin reload
type ReloadResponse struct {
	Message     string `json:"message"`
	RecordCount int    `json:"record_count"`
	Collections int    `json:"collections"`
}

// HandleAdminReload refreshes the listing snapshot and collection specs
// @Summary Reload catalog configuration
// @Description Drops the cached listing snapshot, refetches it, and re-reads the collection config
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 500 {object} ErrorResponse "Collection config invalid"
// @Failure 503 {object} ErrorResponse "Feed unavailable"
// @Router /admin/reload [post]
func HandleAdminReload(snapshots SnapshotProvider, registry *collection.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		records, err := snapshots.Reload(r.Context())
		if err != nil {
			log.Error("Feed reload failed", "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		if err := registry.Reload(); err != nil {
			// Previous specs stay in effect; report the config problem
			log.Error("Collection config reload failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Collection configuration is invalid; previous configuration kept")
			return
		}

		names := registry.Names()
		log.Info("Admin reload completed", "record_count", len(records), "collections", len(names))

		respondJSON(w, http.StatusOK, ReloadResponse{
			Message:     "Reload completed",
			RecordCount: len(records),
			Collections: len(names),
		})
	}
}
