// Package client sends search tasks to a remote search node and verifies the returned result
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/docker/distribution/uuid"
	"github.com/rs/zerolog"
)

const (
	pingTimeout   = 5 * time.Second
	searchTimeout = 1 * time.Minute
)

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func New(baseURL string, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: baseURL, http: httpClient, log: log}
}

// Ping - GET /ping, anything but 200 means the node is unavailable
func (c *Client) Ping(ctx context.Context) error {
	rCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(rCtx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrNodeUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrNodeUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: ping returned %d", model.ErrNodeUnavailable, resp.StatusCode)
	}
	return nil
}

// Search posts the task and returns matched lines once their hash is confirmed
func (c *Client) Search(ctx context.Context, task model.SearchTask) ([]string, error) {
	if task.TaskID == "" {
		task.TaskID = uuid.Generate().String()
	}

	raw, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to MARSHAL task: %w", err)
	}

	rCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(rCtx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to build request to search node %q: %w", c.baseURL, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to SEND task to search node %q: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("search node %q answered %d: %s", c.baseURL, resp.StatusCode, bytes.TrimSpace(body))
	}

	var result model.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to UNMARSHAL result from search node %q: %w", c.baseURL, err)
	}

	if result.TaskID != task.TaskID {
		return nil, fmt.Errorf("search node %q answered for task %q instead of %q", c.baseURL, result.TaskID, task.TaskID)
	}
	if got := processor.Hash(result.Lines); got != result.HashSumm {
		return nil, fmt.Errorf("%w: node sent %d, lines give %d", model.ErrHashMismatch, result.HashSumm, got)
	}

	c.log.Debug().Str("tid", result.TaskID).Int("matches", len(result.Lines)).Msg("remote search done")

	if result.Lines == nil {
		result.Lines = []string{}
	}
	return result.Lines, nil
}
