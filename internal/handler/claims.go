package handler

import (
	"encoding/json"
	"net/http"

	"github.com/scavhall/scavrack/internal/claims"
	"github.com/scavhall/scavrack/internal/logger"
)

// ClaimRequest marks a domain as claimed
type ClaimRequest struct {
	DomainID string `json:"domain_id" validate:"required,max=255,excludesall=\x00\n\r\t"`
}

// ClaimResponse confirms a claim
type ClaimResponse struct {
	DomainID string `json:"domain_id"`
	Message  string `json:"message"`
}

// HandleClaim marks a domain as claimed
// @Summary Claim a domain
// @Description Marks a domain as claimed. Claims are terminal; repeating a claim is a no-op.
// @Tags claims
// @Accept json
// @Produce json
// @Param request body ClaimRequest true "Claim details"
// @Success 200 {object} ClaimResponse
// @Failure 400 {object} ErrorResponse
// @Router /claim [post]
func HandleClaim(claimSvc claims.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ClaimRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode claim request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":   "Validation failed",
				"details": FormatValidationError(err),
			})
			return
		}

		alreadyClaimed := claimSvc.IsClaimed(r.Context(), req.DomainID)

		if err := claimSvc.Claim(r.Context(), req.DomainID); err != nil {
			log.Error("Failed to claim domain", "domain_id", req.DomainID, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		message := "Domain claimed"
		if alreadyClaimed {
			message = "Domain was already claimed"
		}

		log.Info("Claim processed", "domain_id", req.DomainID, "already_claimed", alreadyClaimed)

		respondJSON(w, http.StatusOK, ClaimResponse{
			DomainID: req.DomainID,
			Message:  message,
		})
	}
}
