package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
	"github.com/dgrollins/monsterdash/pkg/models"
	"github.com/dgrollins/monsterdash/pkg/services"
)

// LogsHandler handles encounter log requests.
type LogsHandler struct {
	logService services.LogService
	logger     *zap.Logger
}

// NewLogsHandler creates a new logs handler.
func NewLogsHandler(logService services.LogService, logger *zap.Logger) *LogsHandler {
	return &LogsHandler{
		logService: logService,
		logger:     logger,
	}
}

// RegisterRoutes registers the logs handler's routes on the given mux.
func (h *LogsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/logs", h.List)
	mux.HandleFunc("POST /api/logs", h.Create)
}

// List handles GET /api/logs?monsterName=...
// Entries come back newest-first.
func (h *LogsHandler) List(w http.ResponseWriter, r *http.Request) {
	monsterName := r.URL.Query().Get("monsterName")

	logs, err := h.logService.List(r.Context(), monsterName)
	if err != nil {
		h.logger.Error("Failed to fetch logs", zap.Error(err))
		if werr := ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch logs"); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}
	if logs == nil {
		logs = []*models.Log{}
	}

	if err := WriteJSON(w, http.StatusOK, map[string][]*models.Log{"logs": logs}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Create handles POST /api/logs
func (h *LogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		MonsterName string `json:"monsterName"`
		Text        string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	entry, err := h.logService.Create(r.Context(), payload.MonsterName, payload.Text)
	if err != nil {
		if apperrors.IsValidation(err) {
			if err := ErrorResponse(w, http.StatusBadRequest, err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Failed to create log", zap.Error(err))
		if werr := ErrorResponse(w, http.StatusInternalServerError, "Failed to create log"); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, map[string]*models.Log{"log": entry}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
