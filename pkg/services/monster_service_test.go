package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
)

// mockDnd5eClient is a canned-response upstream client.
type mockDnd5eClient struct {
	listBody    string
	listErr     error
	detailBody  string
	detailErr   error
	detailCalls []string
}

func (m *mockDnd5eClient) ListMonsters(ctx context.Context) (json.RawMessage, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return json.RawMessage(m.listBody), nil
}

func (m *mockDnd5eClient) GetMonster(ctx context.Context, index string) (json.RawMessage, error) {
	m.detailCalls = append(m.detailCalls, index)
	if m.detailErr != nil {
		return nil, m.detailErr
	}
	return json.RawMessage(m.detailBody), nil
}

const goblinIndex = `{"count":2,"results":[
	{"index":"goblin","name":"Goblin","url":"/api/2014/monsters/goblin"},
	{"index":"hobgoblin","name":"Hobgoblin","url":"/api/2014/monsters/hobgoblin"}
]}`

func TestMonsterService_Lookup_EmptyNameReturnsListing(t *testing.T) {
	client := &mockDnd5eClient{listBody: goblinIndex}
	svc := NewMonsterService(client, zap.NewNop())

	raw, err := svc.Lookup(context.Background(), "")
	require.NoError(t, err)
	assert.JSONEq(t, goblinIndex, string(raw))
	assert.Empty(t, client.detailCalls, "empty query must not fetch a detail record")
}

func TestMonsterService_Lookup_ResolvesAndFetchesDetail(t *testing.T) {
	detail := `{"index":"goblin","name":"Goblin","hit_points":7,"unknown_field":true}`
	client := &mockDnd5eClient{listBody: goblinIndex, detailBody: detail}
	svc := NewMonsterService(client, zap.NewNop())

	raw, err := svc.Lookup(context.Background(), "goblin")
	require.NoError(t, err)

	require.Len(t, client.detailCalls, 1)
	assert.Equal(t, "goblin", client.detailCalls[0])
	// verbatim passthrough, unknown fields intact
	assert.JSONEq(t, detail, string(raw))
}

func TestMonsterService_Lookup_NotFound(t *testing.T) {
	client := &mockDnd5eClient{listBody: goblinIndex}
	svc := NewMonsterService(client, zap.NewNop())

	_, err := svc.Lookup(context.Background(), "nonexistent-xyz")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, client.detailCalls)
}

func TestMonsterService_Lookup_UpstreamErrorPropagates(t *testing.T) {
	client := &mockDnd5eClient{listErr: &apperrors.UpstreamError{StatusCode: 503, Status: "503 Service Unavailable"}}
	svc := NewMonsterService(client, zap.NewNop())

	_, err := svc.Lookup(context.Background(), "goblin")
	require.Error(t, err)

	ue, ok := apperrors.IsUpstream(err)
	require.True(t, ok)
	assert.Equal(t, 503, ue.StatusCode)
}

func TestMonsterService_Lookup_MalformedIndex(t *testing.T) {
	client := &mockDnd5eClient{listBody: `not json`}
	svc := NewMonsterService(client, zap.NewNop())

	_, err := svc.Lookup(context.Background(), "goblin")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestMonsterService_LookupStatblock(t *testing.T) {
	detail := `{"index":"goblin","name":"Goblin","armor_class":[{"value":15,"type":"leather armor, shield"}],"hit_points":7}`
	client := &mockDnd5eClient{listBody: goblinIndex, detailBody: detail}
	svc := NewMonsterService(client, zap.NewNop())

	sb, err := svc.LookupStatblock(context.Background(), "Goblin")
	require.NoError(t, err)
	assert.Equal(t, "Goblin", sb.Name)
	assert.Equal(t, "15 (leather armor, shield)", sb.ArmorClass)
	require.NotNil(t, sb.Vitals)
	assert.Equal(t, 7, *sb.Vitals.HitPoints)
}

func TestMonsterService_LookupStatblock_EmptyName(t *testing.T) {
	svc := NewMonsterService(&mockDnd5eClient{}, zap.NewNop())

	_, err := svc.LookupStatblock(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err), "expected a validation error, got %v", err)
}
