package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
	"github.com/dgrollins/monsterdash/pkg/database"
	"github.com/dgrollins/monsterdash/pkg/models"
)

// HitPointsRepository provides data access for hit point overrides.
type HitPointsRepository interface {
	GetByMonsterName(ctx context.Context, monsterName string) (*models.HitPoints, error)
	Upsert(ctx context.Context, monsterName string, hitPoints int) (*models.HitPoints, error)
}

type hitPointsRepository struct {
	db *database.DB
}

// NewHitPointsRepository creates a new HitPointsRepository.
func NewHitPointsRepository(db *database.DB) HitPointsRepository {
	return &hitPointsRepository{db: db}
}

var _ HitPointsRepository = (*hitPointsRepository)(nil)

func (r *hitPointsRepository) GetByMonsterName(ctx context.Context, monsterName string) (*models.HitPoints, error) {
	query := `SELECT id, monster_name, hit_points FROM hit_points WHERE monster_name = $1`

	var hp models.HitPoints
	err := r.db.QueryRow(ctx, query, monsterName).Scan(&hp.ID, &hp.MonsterName, &hp.HitPoints)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hit points: %w", err)
	}

	return &hp, nil
}

func (r *hitPointsRepository) Upsert(ctx context.Context, monsterName string, hitPoints int) (*models.HitPoints, error) {
	query := `
		INSERT INTO hit_points (monster_name, hit_points)
		VALUES ($1, $2)
		ON CONFLICT (monster_name) DO UPDATE SET hit_points = EXCLUDED.hit_points
		RETURNING id, monster_name, hit_points`

	var hp models.HitPoints
	err := r.db.QueryRow(ctx, query, monsterName, hitPoints).Scan(&hp.ID, &hp.MonsterName, &hp.HitPoints)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert hit points: %w", err)
	}

	return &hp, nil
}
