package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
	"github.com/dgrollins/monsterdash/pkg/services"
)

// MonstersHandler handles monster lookup requests.
type MonstersHandler struct {
	monsterService services.MonsterService
	logger         *zap.Logger
}

// NewMonstersHandler creates a new monsters handler.
func NewMonstersHandler(monsterService services.MonsterService, logger *zap.Logger) *MonstersHandler {
	return &MonstersHandler{
		monsterService: monsterService,
		logger:         logger,
	}
}

// RegisterRoutes registers the monsters handler's routes on the given mux.
func (h *MonstersHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/monsters", h.Lookup)
	mux.HandleFunc("GET /api/monsters/view", h.View)
}

// Lookup handles GET /api/monsters
// Without a name parameter it passes the full upstream index through; with a
// name it resolves the monster and passes its detail record through.
func (h *MonstersHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	raw, err := h.monsterService.Lookup(r.Context(), name)
	if err != nil {
		h.writeLookupError(w, name, err)
		return
	}

	if err := WriteRawJSON(w, http.StatusOK, raw); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// View handles GET /api/monsters/view
// Returns the formatted statblock for one monster; name is required.
func (h *MonstersHandler) View(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "name is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	statblock, err := h.monsterService.LookupStatblock(r.Context(), name)
	if err != nil {
		h.writeLookupError(w, name, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, statblock); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeLookupError maps lookup failures onto the response taxonomy:
// not-found stays distinct from upstream failure, which stays distinct from
// everything else.
func (h *MonstersHandler) writeLookupError(w http.ResponseWriter, name string, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		if err := ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("Monster %q not found", name)); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if ue, ok := apperrors.IsUpstream(err); ok {
		if err := ErrorResponse(w, http.StatusBadGateway, fmt.Sprintf("Upstream error: %s", ue.Status)); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	h.logger.Error("Monster lookup failed",
		zap.String("name", name),
		zap.Error(err))
	if err := ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch monsters"); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
