package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleClaim(t *testing.T) {
	postClaim := func(t *testing.T, svc http.HandlerFunc, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest("POST", "/api/v1/claim", strings.NewReader(body))
		w := httptest.NewRecorder()
		svc.ServeHTTP(w, req)
		return w
	}

	t.Run("claims a domain", func(t *testing.T) {
		claimSvc := newTestClaims()
		w := postClaim(t, HandleClaim(claimSvc), `{"domain_id":"deadgrid.sol"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp ClaimResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "deadgrid.sol", resp.DomainID)
		assert.Equal(t, "Domain claimed", resp.Message)
		assert.True(t, claimSvc.IsClaimed(context.Background(), "deadgrid.sol"))
	})

	t.Run("repeated claim is a no-op", func(t *testing.T) {
		claimSvc := newTestClaims("deadgrid.sol")
		w := postClaim(t, HandleClaim(claimSvc), `{"domain_id":"deadgrid.sol"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp ClaimResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Domain was already claimed", resp.Message)
	})

	t.Run("missing domain id fails validation", func(t *testing.T) {
		w := postClaim(t, HandleClaim(newTestClaims()), `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Validation failed")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		w := postClaim(t, HandleClaim(newTestClaims()), `not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
