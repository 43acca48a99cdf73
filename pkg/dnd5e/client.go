// Package dnd5e talks to the public D&D 5e reference API and resolves
// free-text monster names against its index.
package dnd5e

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dgrollins/monsterdash/pkg/apperrors"
)

// Client defines the read-only interface to the upstream monster data API.
type Client interface {
	// ListMonsters fetches the full monster index and returns the response
	// body verbatim.
	ListMonsters(ctx context.Context) (json.RawMessage, error)

	// GetMonster fetches the full stat block for one monster index and
	// returns the response body verbatim.
	GetMonster(ctx context.Context, index string) (json.RawMessage, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Client for the API rooted at baseURL. Each fetch is
// bounded by timeout; there are no retries and no caching between calls.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) Client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.Named("dnd5e-client"),
	}
}

var _ Client = (*client)(nil)

func (c *client) ListMonsters(ctx context.Context) (json.RawMessage, error) {
	return c.fetch(ctx, c.baseURL+"/monsters")
}

func (c *client) GetMonster(ctx context.Context, index string) (json.RawMessage, error) {
	return c.fetch(ctx, c.baseURL+"/monsters/"+index)
}

func (c *client) fetch(ctx context.Context, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream fetch failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Upstream returned non-success status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		return nil, &apperrors.UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	c.logger.Debug("Upstream fetch completed",
		zap.String("url", url),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)))

	return json.RawMessage(body), nil
}
