package services

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
	"github.com/dgrollins/monsterdash/pkg/dnd5e"
	"github.com/dgrollins/monsterdash/pkg/format"
	"github.com/dgrollins/monsterdash/pkg/models"
)

// MonsterService looks up monsters against the upstream reference API.
type MonsterService interface {
	// Lookup returns the raw upstream index listing when name is empty, or
	// the raw detail record of the best-matching monster otherwise. The
	// upstream body passes through unmodified.
	Lookup(ctx context.Context, name string) (json.RawMessage, error)

	// LookupStatblock resolves a monster like Lookup and returns its
	// display-ready statblock projection.
	LookupStatblock(ctx context.Context, name string) (*format.Statblock, error)
}

type monsterService struct {
	client dnd5e.Client
	logger *zap.Logger
}

// NewMonsterService creates a new MonsterService.
func NewMonsterService(client dnd5e.Client, logger *zap.Logger) MonsterService {
	return &monsterService{
		client: client,
		logger: logger.Named("monster-service"),
	}
}

var _ MonsterService = (*monsterService)(nil)

func (s *monsterService) Lookup(ctx context.Context, name string) (json.RawMessage, error) {
	if name == "" {
		return s.client.ListMonsters(ctx)
	}
	return s.resolveDetail(ctx, name)
}

func (s *monsterService) LookupStatblock(ctx context.Context, name string) (*format.Statblock, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}

	raw, err := s.resolveDetail(ctx, name)
	if err != nil {
		return nil, err
	}

	var detail models.MonsterDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode monster detail: %w", err)
	}

	return format.NewStatblock(&detail), nil
}

// resolveDetail performs the two-step fetch: index listing, name resolution,
// then detail fetch for the resolved index. Both fetches are fresh on every
// call; the second depends on the first, so they run sequentially.
func (s *monsterService) resolveDetail(ctx context.Context, name string) (json.RawMessage, error) {
	rawList, err := s.client.ListMonsters(ctx)
	if err != nil {
		return nil, err
	}

	var list models.MonsterList
	if err := json.Unmarshal(rawList, &list); err != nil {
		return nil, fmt.Errorf("failed to decode monster index: %w", err)
	}

	entry, ok := dnd5e.Resolve(name, list.Results)
	if !ok {
		s.logger.Debug("No monster matched query", zap.String("query", name))
		return nil, apperrors.ErrNotFound
	}

	return s.client.GetMonster(ctx, entry.Index)
}
