package repositories

import (
	"context"
	"fmt"

	"github.com/dgrollins/monsterdash/pkg/database"
	"github.com/dgrollins/monsterdash/pkg/models"
)

// LogRepository provides data access for the append-only log.
type LogRepository interface {
	List(ctx context.Context, monsterName string) ([]*models.Log, error)
	Create(ctx context.Context, monsterName, text string) (*models.Log, error)
}

type logRepository struct {
	db *database.DB
}

// NewLogRepository creates a new LogRepository.
func NewLogRepository(db *database.DB) LogRepository {
	return &logRepository{db: db}
}

var _ LogRepository = (*logRepository)(nil)

// List returns log entries ordered by creation time descending, optionally
// filtered by monster name.
func (r *logRepository) List(ctx context.Context, monsterName string) ([]*models.Log, error) {
	query := `SELECT id, monster_name, text, created_at FROM logs ORDER BY created_at DESC`
	args := []any{}
	if monsterName != "" {
		query = `SELECT id, monster_name, text, created_at FROM logs WHERE monster_name = $1 ORDER BY created_at DESC`
		args = append(args, monsterName)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	logs := []*models.Log{}
	for rows.Next() {
		var entry models.Log
		if err := rows.Scan(&entry.ID, &entry.MonsterName, &entry.Text, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read logs: %w", err)
	}

	return logs, nil
}

func (r *logRepository) Create(ctx context.Context, monsterName, text string) (*models.Log, error) {
	query := `
		INSERT INTO logs (monster_name, text)
		VALUES ($1, $2)
		RETURNING id, monster_name, text, created_at`

	var entry models.Log
	err := r.db.QueryRow(ctx, query, monsterName, text).Scan(&entry.ID, &entry.MonsterName, &entry.Text, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}

	return &entry, nil
}
