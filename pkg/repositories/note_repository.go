package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
	"github.com/dgrollins/monsterdash/pkg/database"
	"github.com/dgrollins/monsterdash/pkg/models"
)

// NoteRepository provides data access for monster notes.
type NoteRepository interface {
	GetByMonsterName(ctx context.Context, monsterName string) (*models.Note, error)
	Upsert(ctx context.Context, monsterName, text string) (*models.Note, error)
	Create(ctx context.Context, monsterName, text string) (*models.Note, error)
	List(ctx context.Context, monsterName string) ([]*models.Note, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	UpdateText(ctx context.Context, id int64, text string) (*models.Note, error)
	Delete(ctx context.Context, id int64) error
}

type noteRepository struct {
	db *database.DB
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(db *database.DB) NoteRepository {
	return &noteRepository{db: db}
}

var _ NoteRepository = (*noteRepository)(nil)

func (r *noteRepository) GetByMonsterName(ctx context.Context, monsterName string) (*models.Note, error) {
	query := `SELECT id, monster_name, text FROM notes WHERE monster_name = $1`

	var note models.Note
	err := r.db.QueryRow(ctx, query, monsterName).Scan(&note.ID, &note.MonsterName, &note.Text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// Upsert inserts a note for the monster or replaces the text of the existing
// one. The unique constraint on monster_name makes concurrent upserts
// last-writer-wins at the row level.
func (r *noteRepository) Upsert(ctx context.Context, monsterName, text string) (*models.Note, error) {
	query := `
		INSERT INTO notes (monster_name, text)
		VALUES ($1, $2)
		ON CONFLICT (monster_name) DO UPDATE SET text = EXCLUDED.text
		RETURNING id, monster_name, text`

	var note models.Note
	err := r.db.QueryRow(ctx, query, monsterName, text).Scan(&note.ID, &note.MonsterName, &note.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert note: %w", err)
	}

	return &note, nil
}

func (r *noteRepository) Create(ctx context.Context, monsterName, text string) (*models.Note, error) {
	query := `
		INSERT INTO notes (monster_name, text)
		VALUES ($1, $2)
		RETURNING id, monster_name, text`

	var note models.Note
	err := r.db.QueryRow(ctx, query, monsterName, text).Scan(&note.ID, &note.MonsterName, &note.Text)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &note, nil
}

// List returns notes newest-first, optionally filtered by monster name.
func (r *noteRepository) List(ctx context.Context, monsterName string) ([]*models.Note, error) {
	query := `SELECT id, monster_name, text FROM notes ORDER BY id DESC`
	args := []any{}
	if monsterName != "" {
		query = `SELECT id, monster_name, text FROM notes WHERE monster_name = $1 ORDER BY id DESC`
		args = append(args, monsterName)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := []*models.Note{}
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.MonsterName, &note.Text); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	return notes, nil
}

func (r *noteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	query := `SELECT id, monster_name, text FROM notes WHERE id = $1`

	var note models.Note
	err := r.db.QueryRow(ctx, query, id).Scan(&note.ID, &note.MonsterName, &note.Text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get note by id: %w", err)
	}

	return &note, nil
}

func (r *noteRepository) UpdateText(ctx context.Context, id int64, text string) (*models.Note, error) {
	query := `
		UPDATE notes SET text = $2
		WHERE id = $1
		RETURNING id, monster_name, text`

	var note models.Note
	err := r.db.QueryRow(ctx, query, id, text).Scan(&note.ID, &note.MonsterName, &note.Text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &note, nil
}

func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM notes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
