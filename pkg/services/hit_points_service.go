package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
	"github.com/dgrollins/monsterdash/pkg/models"
	"github.com/dgrollins/monsterdash/pkg/repositories"
)

// HitPointsService provides operations for hit point overrides.
type HitPointsService interface {
	// GetByMonster returns the stored override, or nil when none exists.
	GetByMonster(ctx context.Context, monsterName string) (*models.HitPoints, error)
	// Upsert stores a hit point value for a monster. The value is floored
	// and clamped to a minimum of 0; non-finite input is rejected.
	Upsert(ctx context.Context, monsterName string, value float64) (*models.HitPoints, error)
}

type hitPointsService struct {
	repo   repositories.HitPointsRepository
	logger *zap.Logger
}

// NewHitPointsService creates a new HitPointsService.
func NewHitPointsService(repo repositories.HitPointsRepository, logger *zap.Logger) HitPointsService {
	return &hitPointsService{
		repo:   repo,
		logger: logger.Named("hit-points-service"),
	}
}

var _ HitPointsService = (*hitPointsService)(nil)

func (s *hitPointsService) GetByMonster(ctx context.Context, monsterName string) (*models.HitPoints, error) {
	monsterName = strings.TrimSpace(monsterName)
	if monsterName == "" {
		return nil, apperrors.NewValidationError("monsterName", "monsterName is required")
	}

	hp, err := s.repo.GetByMonsterName(ctx, monsterName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.logger.Error("Failed to get hit points",
			zap.String("monster_name", monsterName),
			zap.Error(err))
		return nil, err
	}
	return hp, nil
}

func (s *hitPointsService) Upsert(ctx context.Context, monsterName string, value float64) (*models.HitPoints, error) {
	monsterName = strings.TrimSpace(monsterName)
	if monsterName == "" {
		return nil, apperrors.NewValidationError("monsterName", "monsterName is required")
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, apperrors.NewValidationError("hitPoints", "hitPoints must be a number")
	}

	coerced := int(math.Max(0, math.Floor(value)))

	hp, err := s.repo.Upsert(ctx, monsterName, coerced)
	if err != nil {
		s.logger.Error("Failed to upsert hit points",
			zap.String("monster_name", monsterName),
			zap.Int("hit_points", coerced),
			zap.Error(err))
		return nil, err
	}
	return hp, nil
}
