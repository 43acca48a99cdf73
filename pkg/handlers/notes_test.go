package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/models"
)

func newNotesMux(svc *mockNoteService) *http.ServeMux {
	mux := http.NewServeMux()
	NewNotesHandler(svc, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestNotesHandler_GetByMonster_AbsentIsNull(t *testing.T) {
	mux := newNotesMux(newMockNoteService())

	req := httptest.NewRequest(http.MethodGet, "/api/notes?monsterName=Goblin", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var body map[string]*models.Note
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if note, ok := body["note"]; !ok || note != nil {
		t.Errorf("expected explicit null note, got %+v", body)
	}
}

func TestNotesHandler_UpsertThenGet(t *testing.T) {
	mux := newNotesMux(newMockNoteService())

	req := httptest.NewRequest(http.MethodPost, "/api/notes",
		strings.NewReader(`{"monsterName":"Goblin","text":"weak to fire"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/notes?monsterName=Goblin", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var body map[string]*models.Note
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["note"] == nil || body["note"].Text != "weak to fire" {
		t.Errorf("unexpected note: %+v", body["note"])
	}
}

func TestNotesHandler_Upsert_ValidationMessage(t *testing.T) {
	mux := newNotesMux(newMockNoteService())

	req := httptest.NewRequest(http.MethodPost, "/api/notes",
		strings.NewReader(`{"monsterName":"Goblin","text":"   "}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error"] != "Content is required" {
		t.Errorf("unexpected error message: %q", body["error"])
	}
}

func TestNotesHandler_Upsert_MalformedBody(t *testing.T) {
	mux := newNotesMux(newMockNoteService())

	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestNotesHandler_Create_ReturnsCreated(t *testing.T) {
	mux := newNotesMux(newMockNoteService())

	req := httptest.NewRequest(http.MethodPost, "/api/notes/all",
		strings.NewReader(`{"monsterName":"Mimic","text":"it was the chest"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var body map[string]*models.Note
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["note"] == nil || body["note"].MonsterName != "Mimic" {
		t.Errorf("unexpected note: %+v", body["note"])
	}
}

func TestNotesHandler_Create_DuplicateConflicts(t *testing.T) {
	mux := newNotesMux(newMockNoteService())

	payload := `{"monsterName":"Mimic","text":"first"}`
	req := httptest.NewRequest(http.MethodPost, "/api/notes/all", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/notes/all", strings.NewReader(payload))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestNotesHandler_List_EmptyIsArray(t *testing.T) {
	mux := newNotesMux(newMockNoteService())

	req := httptest.NewRequest(http.MethodGet, "/api/notes/all", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"notes":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

func TestNotesHandler_UpdateAndDeleteByID(t *testing.T) {
	svc := newMockNoteService()
	mux := newNotesMux(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/notes/all",
		strings.NewReader(`{"monsterName":"Ogre","text":"angry"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup create failed: %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/notes/1", strings.NewReader(`{"text":"very angry"}`))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var body map[string]*models.Note
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["note"].Text != "very angry" {
		t.Errorf("unexpected text after update: %q", body["note"].Text)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/notes/1", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("unexpected delete body: %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/notes/1", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestNotesHandler_InvalidID(t *testing.T) {
	mux := newNotesMux(newMockNoteService())

	req := httptest.NewRequest(http.MethodGet, "/api/notes/abc", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error"] != "Invalid id" {
		t.Errorf("unexpected error message: %q", body["error"])
	}
}
