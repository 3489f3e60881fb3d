package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scavhall/scavrack/internal/claims"
	"github.com/scavhall/scavrack/internal/collection"
	"github.com/scavhall/scavrack/internal/domain"
	"github.com/scavhall/scavrack/internal/logger"
	"github.com/scavhall/scavrack/internal/metrics"
)

// CollectionsResponse lists configured collection names
type CollectionsResponse struct {
	Collections []string `json:"collections"`
}

// CollectionViewResponse is an evaluated collection view
type CollectionViewResponse struct {
	Name    string                   `json:"name"`
	Count   int                      `json:"count"`
	Records []domain.CanonicalRecord `json:"records"`
}

// HandleListCollections returns the configured collection names
// @Summary List collections
// @Description Returns the names of all configured collection views
// @Tags collections
// @Produce json
// @Success 200 {object} CollectionsResponse
// @Router /collections [get]
func HandleListCollections(registry *collection.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, CollectionsResponse{
			Collections: registry.Names(),
		})
	}
}

// HandleGetCollection evaluates a named collection against the current snapshot
// @Summary Get a collection view
// @Description Evaluates the named collection's rules against the current catalog, excluding claimed domains
// @Tags collections
// @Produce json
// @Param name path string true "Collection name"
// @Success 200 {object} CollectionViewResponse
// @Failure 404 {object} ErrorResponse "Collection not found"
// @Failure 503 {object} ErrorResponse "Feed unavailable"
// @Router /collections/{name} [get]
func HandleGetCollection(registry *collection.Registry, snapshots SnapshotProvider, claimSvc claims.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		name := chi.URLParam(r, "name")

		spec, err := registry.Get(name)
		if err != nil {
			log.Warn("Collection lookup failed", "collection", name, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		records, err := snapshots.Records(r.Context())
		if err != nil {
			log.Error("Failed to load catalog snapshot", "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		available := claimSvc.FilterAvailable(r.Context(), records)
		matched := collection.Evaluate(available, spec)
		metrics.CollectionEvaluations.WithLabelValues(name).Inc()

		log.Debug("Collection evaluated", "collection", name, "matched", len(matched))

		respondJSON(w, http.StatusOK, CollectionViewResponse{
			Name:    name,
			Count:   len(matched),
			Records: matched,
		})
	}
}
