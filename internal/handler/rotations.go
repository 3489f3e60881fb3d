package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/scavhall/scavrack/internal/domain"
	"github.com/scavhall/scavrack/internal/logger"
	"github.com/scavhall/scavrack/internal/metrics"
	"github.com/scavhall/scavrack/internal/rotation"
)

// RotationEntry is one active assignment with its live countdown
type RotationEntry struct {
	DomainID   string             `json:"domain_id"`
	AssignedAt time.Time          `json:"assigned_at"`
	ExpiresAt  time.Time          `json:"expires_at"`
	Remaining  rotation.Countdown `json:"remaining"`
}

// RotationResponse lists a group's active assignments
type RotationResponse struct {
	Group   string          `json:"group"`
	Count   int             `json:"count"`
	Entries []RotationEntry `json:"entries"`
}

// AssignRotationRequest places a domain into a rotation group
type AssignRotationRequest struct {
	DomainID string `json:"domain_id" validate:"required,max=255,excludesall=\x00\n\r\t"`
	Group    string `json:"group" validate:"required,rotation_group"`
}

// AssignRotationResponse confirms an assignment
type AssignRotationResponse struct {
	DomainID   string    `json:"domain_id"`
	Group      string    `json:"group"`
	AssignedAt time.Time `json:"assigned_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// HandleGetRotation returns a group's active assignments with remaining time
// @Summary Get a rotation group
// @Description Returns the group's unexpired assignments with display-ready countdowns
// @Tags rotations
// @Produce json
// @Param group path string true "Rotation group (daily, weekly, mythic)"
// @Success 200 {object} RotationResponse
// @Failure 400 {object} ErrorResponse "Unknown group"
// @Router /rotations/{group} [get]
func HandleGetRotation(manager *rotation.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		group := domain.RotationGroup(chi.URLParam(r, "group"))
		if !domain.IsValidRotationGroup(string(group)) {
			respondError(w, http.StatusBadRequest, ErrMsgUnknownGroupError)
			return
		}

		active := manager.Active(group)
		entries := make([]RotationEntry, 0, len(active))
		for _, a := range active {
			entries = append(entries, RotationEntry{
				DomainID:   a.DomainID,
				AssignedAt: a.AssignedAt,
				ExpiresAt:  a.ExpiresAt,
				Remaining:  manager.Remaining(a),
			})
		}

		respondJSON(w, http.StatusOK, RotationResponse{
			Group:   string(group),
			Count:   len(entries),
			Entries: entries,
		})
	}
}

// HandleAssignRotation (re)assigns a domain to a rotation group
// @Summary Assign a domain to a rotation
// @Description Opens a fresh rotation window for the domain; replaces any previous assignment
// @Tags rotations
// @Accept json
// @Produce json
// @Param request body AssignRotationRequest true "Assignment details"
// @Success 200 {object} AssignRotationResponse
// @Failure 400 {object} ErrorResponse
// @Router /rotations/assign [post]
func HandleAssignRotation(manager *rotation.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AssignRotationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode rotation assign request", "error", err)
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

		assignment, err := manager.Assign(req.DomainID, domain.RotationGroup(req.Group))
		if err != nil {
			log.Warn("Rotation assignment failed", "domain_id", req.DomainID, "group", req.Group, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		metrics.RotationAssignments.WithLabelValues(req.Group).Inc()
		log.Info("Domain assigned to rotation",
			"domain_id", req.DomainID,
			"group", req.Group,
			"expires_at", assignment.ExpiresAt)

		respondJSON(w, http.StatusOK, AssignRotationResponse{
			DomainID:   assignment.DomainID,
			Group:      string(assignment.Group),
			AssignedAt: assignment.AssignedAt,
			ExpiresAt:  assignment.ExpiresAt,
		})
	}
}
