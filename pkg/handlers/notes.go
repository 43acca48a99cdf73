package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
	"github.com/dgrollins/monsterdash/pkg/models"
	"github.com/dgrollins/monsterdash/pkg/services"
)

// NotesHandler handles monster note requests.
type NotesHandler struct {
	noteService services.NoteService
	logger      *zap.Logger
}

// NewNotesHandler creates a new notes handler.
func NewNotesHandler(noteService services.NoteService, logger *zap.Logger) *NotesHandler {
	return &NotesHandler{
		noteService: noteService,
		logger:      logger,
	}
}

// RegisterRoutes registers the notes handler's routes on the given mux.
func (h *NotesHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/notes", h.GetByMonster)
	mux.HandleFunc("POST /api/notes", h.Upsert)
	mux.HandleFunc("GET /api/notes/all", h.List)
	mux.HandleFunc("POST /api/notes/all", h.Create)
	mux.HandleFunc("GET /api/notes/{id}", h.GetByID)
	mux.HandleFunc("PUT /api/notes/{id}", h.Update)
	mux.HandleFunc("DELETE /api/notes/{id}", h.Delete)
}

type notePayload struct {
	MonsterName string `json:"monsterName"`
	Text        string `json:"text"`
}

// GetByMonster handles GET /api/notes?monsterName=...
// The note field is null when the monster has no note.
func (h *NotesHandler) GetByMonster(w http.ResponseWriter, r *http.Request) {
	monsterName := r.URL.Query().Get("monsterName")

	note, err := h.noteService.GetByMonster(r.Context(), monsterName)
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch note")
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]*models.Note{"note": note}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Upsert handles POST /api/notes
// Creates or replaces the single note of a monster.
func (h *NotesHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var payload notePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	note, err := h.noteService.Upsert(r.Context(), payload.MonsterName, payload.Text)
	if err != nil {
		h.writeServiceError(w, err, "Failed to save note")
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]*models.Note{"note": note}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// List handles GET /api/notes/all?monsterName=...
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	monsterName := r.URL.Query().Get("monsterName")

	notes, err := h.noteService.List(r.Context(), monsterName)
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch notes")
		return
	}
	if notes == nil {
		notes = []*models.Note{}
	}

	if err := WriteJSON(w, http.StatusOK, map[string][]*models.Note{"notes": notes}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Create handles POST /api/notes/all
// A second note for the same monster name is a conflict.
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload notePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	note, err := h.noteService.Create(r.Context(), payload.MonsterName, payload.Text)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			if err := ErrorResponse(w, http.StatusConflict, "A note already exists for this monster"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.writeServiceError(w, err, "Failed to create note")
		return
	}

	if err := WriteJSON(w, http.StatusCreated, map[string]*models.Note{"note": note}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// GetByID handles GET /api/notes/{id}
func (h *NotesHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	note, err := h.noteService.GetByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, "Failed to fetch note")
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]*models.Note{"note": note}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Update handles PUT /api/notes/{id}
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	note, err := h.noteService.UpdateText(r.Context(), id, payload.Text)
	if err != nil {
		h.writeServiceError(w, err, "Failed to update note")
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]*models.Note{"note": note}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /api/notes/{id}
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.noteService.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, err, "Failed to delete note")
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]bool{"ok": true}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *NotesHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid id"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return 0, false
	}
	return id, true
}

func (h *NotesHandler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		if err := ErrorResponse(w, http.StatusNotFound, "Not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if apperrors.IsValidation(err) {
		if err := ErrorResponse(w, http.StatusBadRequest, err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	h.logger.Error(fallback, zap.Error(err))
	if err := ErrorResponse(w, http.StatusInternalServerError, fallback); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
