package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
	"github.com/dgrollins/monsterdash/pkg/models"
	"github.com/dgrollins/monsterdash/pkg/services"
)

// HitPointsHandler handles hit point override requests.
type HitPointsHandler struct {
	hitPointsService services.HitPointsService
	logger           *zap.Logger
}

// NewHitPointsHandler creates a new hit points handler.
func NewHitPointsHandler(hitPointsService services.HitPointsService, logger *zap.Logger) *HitPointsHandler {
	return &HitPointsHandler{
		hitPointsService: hitPointsService,
		logger:           logger,
	}
}

// RegisterRoutes registers the hit points handler's routes on the given mux.
func (h *HitPointsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/hit-points", h.GetByMonster)
	mux.HandleFunc("POST /api/hit-points", h.Upsert)
}

// GetByMonster handles GET /api/hit-points?monsterName=...
// The hitPoints field is null when no override is stored.
func (h *HitPointsHandler) GetByMonster(w http.ResponseWriter, r *http.Request) {
	monsterName := r.URL.Query().Get("monsterName")

	hp, err := h.hitPointsService.GetByMonster(r.Context(), monsterName)
	if err != nil {
		if apperrors.IsValidation(err) {
			if err := ErrorResponse(w, http.StatusBadRequest, err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Failed to fetch hit points", zap.Error(err))
		if werr := ErrorResponseDetails(w, http.StatusInternalServerError, "Failed to fetch hit points", err.Error()); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]*models.HitPoints{"hitPoints": hp}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Upsert handles POST /api/hit-points
// The hitPoints value is decoded leniently: anything that is not a JSON
// number fails validation rather than request decoding, so the caller sees
// the field-level message.
func (h *HitPointsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		MonsterName string          `json:"monsterName"`
		HitPoints   json.RawMessage `json:"hitPoints"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	// json.Unmarshal treats a JSON null as a no-op on a float64, so a
	// missing or null field must be rejected before decoding.
	var value float64
	if len(payload.HitPoints) == 0 || string(payload.HitPoints) == "null" {
		if err := ErrorResponse(w, http.StatusBadRequest, "hitPoints must be a number"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(payload.HitPoints, &value); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "hitPoints must be a number"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	hp, err := h.hitPointsService.Upsert(r.Context(), payload.MonsterName, value)
	if err != nil {
		if apperrors.IsValidation(err) {
			if err := ErrorResponse(w, http.StatusBadRequest, err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Failed to save hit points", zap.Error(err))
		if werr := ErrorResponseDetails(w, http.StatusInternalServerError, "Failed to save hit points", err.Error()); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]*models.HitPoints{"hitPoints": hp}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
