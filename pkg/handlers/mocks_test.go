package handlers

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
	"github.com/dgrollins/monsterdash/pkg/format"
	"github.com/dgrollins/monsterdash/pkg/models"
)

// mockMonsterService returns canned payloads or errors per call.
type mockMonsterService struct {
	lookupRaw json.RawMessage
	lookupErr error
	statblock *format.Statblock
}

func (m *mockMonsterService) Lookup(ctx context.Context, name string) (json.RawMessage, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	return m.lookupRaw, nil
}

func (m *mockMonsterService) LookupStatblock(ctx context.Context, name string) (*format.Statblock, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	return m.statblock, nil
}

// mockNoteService keeps notes in memory with service-level semantics.
type mockNoteService struct {
	byName map[string]*models.Note
	byID   map[int64]*models.Note
	nextID int64
	err    error
}

func newMockNoteService() *mockNoteService {
	return &mockNoteService{byName: map[string]*models.Note{}, byID: map[int64]*models.Note{}}
}

func (m *mockNoteService) GetByMonster(ctx context.Context, monsterName string) (*models.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byName[strings.TrimSpace(monsterName)], nil
}

func (m *mockNoteService) Upsert(ctx context.Context, monsterName, text string) (*models.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	monsterName = strings.TrimSpace(monsterName)
	text = strings.TrimSpace(text)
	if monsterName == "" {
		return nil, apperrors.NewValidationError("monsterName", "monsterName is required")
	}
	if text == "" {
		return nil, apperrors.NewValidationError("text", "Content is required")
	}
	note, ok := m.byName[monsterName]
	if !ok {
		m.nextID++
		note = &models.Note{ID: m.nextID, MonsterName: monsterName}
		m.byName[monsterName] = note
		m.byID[note.ID] = note
	}
	note.Text = text
	return note, nil
}

func (m *mockNoteService) List(ctx context.Context, monsterName string) ([]*models.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	notes := []*models.Note{}
	for _, n := range m.byName {
		if monsterName == "" || n.MonsterName == monsterName {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

func (m *mockNoteService) Create(ctx context.Context, monsterName, text string) (*models.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.byName[strings.TrimSpace(monsterName)]; ok {
		return nil, apperrors.ErrConflict
	}
	return m.Upsert(ctx, monsterName, text)
}

func (m *mockNoteService) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	note, ok := m.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return note, nil
}

func (m *mockNoteService) UpdateText(ctx context.Context, id int64, text string) (*models.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("text", "Content is required")
	}
	note, ok := m.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	note.Text = text
	return note, nil
}

func (m *mockNoteService) Delete(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	note, ok := m.byID[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	delete(m.byID, id)
	delete(m.byName, note.MonsterName)
	return nil
}

// mockHitPointsService stores one override per monster name.
type mockHitPointsService struct {
	stored map[string]*models.HitPoints
	nextID int64
	err    error
}

func newMockHitPointsService() *mockHitPointsService {
	return &mockHitPointsService{stored: map[string]*models.HitPoints{}}
}

func (m *mockHitPointsService) GetByMonster(ctx context.Context, monsterName string) (*models.HitPoints, error) {
	if m.err != nil {
		return nil, m.err
	}
	if strings.TrimSpace(monsterName) == "" {
		return nil, apperrors.NewValidationError("monsterName", "monsterName is required")
	}
	return m.stored[monsterName], nil
}

func (m *mockHitPointsService) Upsert(ctx context.Context, monsterName string, value float64) (*models.HitPoints, error) {
	if m.err != nil {
		return nil, m.err
	}
	monsterName = strings.TrimSpace(monsterName)
	if monsterName == "" {
		return nil, apperrors.NewValidationError("monsterName", "monsterName is required")
	}
	hp, ok := m.stored[monsterName]
	if !ok {
		m.nextID++
		hp = &models.HitPoints{ID: m.nextID, MonsterName: monsterName}
		m.stored[monsterName] = hp
	}
	if value < 0 {
		value = 0
	}
	hp.HitPoints = int(value)
	return hp, nil
}

// mockLogService appends entries in memory.
type mockLogService struct {
	entries []*models.Log
	nextID  int64
	err     error
}

func (m *mockLogService) List(ctx context.Context, monsterName string) ([]*models.Log, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*models.Log{}
	for i := len(m.entries) - 1; i >= 0; i-- {
		if monsterName == "" || m.entries[i].MonsterName == monsterName {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

func (m *mockLogService) Create(ctx context.Context, monsterName, text string) (*models.Log, error) {
	if m.err != nil {
		return nil, m.err
	}
	monsterName = strings.TrimSpace(monsterName)
	text = strings.TrimSpace(text)
	if monsterName == "" {
		return nil, apperrors.NewValidationError("monsterName", "monsterName is required")
	}
	if text == "" {
		return nil, apperrors.NewValidationError("text", "Content is required")
	}
	m.nextID++
	entry := &models.Log{ID: m.nextID, MonsterName: monsterName, Text: text, CreatedAt: time.Now()}
	m.entries = append(m.entries, entry)
	return entry, nil
}
