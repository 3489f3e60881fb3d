package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scavhall/scavrack/internal/domain"
)

func TestHandleGetCatalog(t *testing.T) {
	records := []domain.CanonicalRecord{
		{ID: "a1", Name: "gold-rolex.sol", Tier: domain.TierPremium, Status: domain.StatusAvailable},
		{ID: "a2", Name: "rusty-spoon.sol", Tier: domain.TierScav, Status: domain.StatusAvailable},
	}

	t.Run("returns available records", func(t *testing.T) {
		snapshots := &fakeSnapshots{records: records}

		req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
		w := httptest.NewRecorder()

		HandleGetCatalog(snapshots, newTestClaims()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp CatalogResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, "gold-rolex.sol", resp.Records[0].Name)
	})

	t.Run("claimed domains are filtered out", func(t *testing.T) {
		snapshots := &fakeSnapshots{records: records}

		req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
		w := httptest.NewRecorder()

		HandleGetCatalog(snapshots, newTestClaims("a1")).ServeHTTP(w, req)

		var resp CatalogResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "a2", resp.Records[0].ID)
	})

	t.Run("feed failure returns 503", func(t *testing.T) {
		snapshots := &fakeSnapshots{err: domain.ErrFeedUnavailable}

		req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
		w := httptest.NewRecorder()

		HandleGetCatalog(snapshots, newTestClaims()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "temporarily unavailable")
	})

	t.Run("empty snapshot returns empty list", func(t *testing.T) {
		snapshots := &fakeSnapshots{records: []domain.CanonicalRecord{}}

		req := httptest.NewRequest("GET", "/api/v1/catalog", nil)
		w := httptest.NewRecorder()

		HandleGetCatalog(snapshots, newTestClaims()).ServeHTTP(w, req)

		var resp CatalogResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Count)
		assert.NotNil(t, resp.Records)
	})
}
