package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
	"github.com/dgrollins/monsterdash/pkg/models"
	"github.com/dgrollins/monsterdash/pkg/repositories"
)

// LogService provides operations for the append-only log.
type LogService interface {
	// List returns entries newest-first, optionally filtered by monster.
	List(ctx context.Context, monsterName string) ([]*models.Log, error)
	Create(ctx context.Context, monsterName, text string) (*models.Log, error)
}

type logService struct {
	repo   repositories.LogRepository
	logger *zap.Logger
}

// NewLogService creates a new LogService.
func NewLogService(repo repositories.LogRepository, logger *zap.Logger) LogService {
	return &logService{
		repo:   repo,
		logger: logger.Named("log-service"),
	}
}

var _ LogService = (*logService)(nil)

func (s *logService) List(ctx context.Context, monsterName string) ([]*models.Log, error) {
	logs, err := s.repo.List(ctx, strings.TrimSpace(monsterName))
	if err != nil {
		s.logger.Error("Failed to list logs", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

func (s *logService) Create(ctx context.Context, monsterName, text string) (*models.Log, error) {
	monsterName = strings.TrimSpace(monsterName)
	text = strings.TrimSpace(text)
	if monsterName == "" {
		return nil, apperrors.NewValidationError("monsterName", "monsterName is required")
	}
	if text == "" {
		return nil, apperrors.NewValidationError("text", "Content is required")
	}

	entry, err := s.repo.Create(ctx, monsterName, text)
	if err != nil {
		s.logger.Error("Failed to create log",
			zap.String("monster_name", monsterName),
			zap.Error(err))
		return nil, err
	}
	return entry, nil
}
