package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
	"github.com/dgrollins/monsterdash/pkg/models"
	"github.com/dgrollins/monsterdash/pkg/repositories"
)

// NoteService provides operations for monster notes.
type NoteService interface {
	// GetByMonster returns the note for a monster, or nil when none exists.
	GetByMonster(ctx context.Context, monsterName string) (*models.Note, error)
	// Upsert inserts or replaces the single note of a monster.
	Upsert(ctx context.Context, monsterName, text string) (*models.Note, error)
	// List returns notes newest-first, optionally filtered by monster name.
	List(ctx context.Context, monsterName string) ([]*models.Note, error)
	// Create appends a new note row; a second note for the same monster
	// name fails with ErrConflict.
	Create(ctx context.Context, monsterName, text string) (*models.Note, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	UpdateText(ctx context.Context, id int64, text string) (*models.Note, error)
	Delete(ctx context.Context, id int64) error
}

type noteService struct {
	repo   repositories.NoteRepository
	logger *zap.Logger
}

// NewNoteService creates a new NoteService.
func NewNoteService(repo repositories.NoteRepository, logger *zap.Logger) NoteService {
	return &noteService{
		repo:   repo,
		logger: logger.Named("note-service"),
	}
}

var _ NoteService = (*noteService)(nil)

func (s *noteService) GetByMonster(ctx context.Context, monsterName string) (*models.Note, error) {
	monsterName = strings.TrimSpace(monsterName)
	if monsterName == "" {
		return nil, apperrors.NewValidationError("monsterName", "monsterName is required")
	}

	note, err := s.repo.GetByMonsterName(ctx, monsterName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.logger.Error("Failed to get note",
			zap.String("monster_name", monsterName),
			zap.Error(err))
		return nil, err
	}
	return note, nil
}

func (s *noteService) Upsert(ctx context.Context, monsterName, text string) (*models.Note, error) {
	monsterName = strings.TrimSpace(monsterName)
	text = strings.TrimSpace(text)
	if monsterName == "" {
		return nil, apperrors.NewValidationError("monsterName", "monsterName is required")
	}
	if text == "" {
		return nil, apperrors.NewValidationError("text", "Content is required")
	}

	note, err := s.repo.Upsert(ctx, monsterName, text)
	if err != nil {
		s.logger.Error("Failed to upsert note",
			zap.String("monster_name", monsterName),
			zap.Error(err))
		return nil, err
	}
	return note, nil
}

func (s *noteService) List(ctx context.Context, monsterName string) ([]*models.Note, error) {
	notes, err := s.repo.List(ctx, strings.TrimSpace(monsterName))
	if err != nil {
		s.logger.Error("Failed to list notes", zap.Error(err))
		return nil, err
	}
	return notes, nil
}

func (s *noteService) Create(ctx context.Context, monsterName, text string) (*models.Note, error) {
	monsterName = strings.TrimSpace(monsterName)
	text = strings.TrimSpace(text)
	if monsterName == "" {
		return nil, apperrors.NewValidationError("monsterName", "monsterName is required")
	}
	if text == "" {
		return nil, apperrors.NewValidationError("text", "Content is required")
	}

	note, err := s.repo.Create(ctx, monsterName, text)
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.logger.Error("Failed to create note",
				zap.String("monster_name", monsterName),
				zap.Error(err))
		}
		return nil, err
	}
	return note, nil
}

func (s *noteService) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *noteService) UpdateText(ctx context.Context, id int64, text string) (*models.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("text", "Content is required")
	}

	note, err := s.repo.UpdateText(ctx, id, text)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("Failed to update note", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Error("Failed to delete note", zap.Int64("id", id), zap.Error(err))
	}
	return err
}
