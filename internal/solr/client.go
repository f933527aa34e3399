package solr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/helix-bio/graphdex/internal/metrics"
	"github.com/helix-bio/graphdex/pkg/model"
)

// Config holds connection parameters for the search backend.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks to the search backend over its JSON select API. It does no
// retries; transient failures surface as ErrBackendUnavailable and the caller
// owns any backoff policy.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient creates a backend client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		log:     log,
	}, nil
}

// Get fetches one document by exact id through the real-time get handler.
// Missing documents return model.ErrNotFound.
func (c *Client) Get(ctx context.Context, core, id string) (json.RawMessage, error) {
	u := c.baseURL + "/" + core + "/get?" + url.Values{"id": {id}}.Encode()

	var body struct {
		Doc json.RawMessage `json:"doc"`
	}
	if err := c.do(ctx, OpGet, core, u, &body); err != nil {
		return nil, err
	}
	if len(body.Doc) == 0 || string(body.Doc) == "null" {
		return nil, &Error{Op: OpGet, Core: core, Err: fmt.Errorf("%w: %s", model.ErrNotFound, id)}
	}
	return body.Doc, nil
}

// Query runs one select call against a core.
func (c *Client) Query(ctx context.Context, core string, q *Query) (*QueryResult, error) {
	params := q.Params()
	params.Set("wt", "json")
	u := c.baseURL + "/" + core + "/select?" + params.Encode()

	var result QueryResult
	if err := c.do(ctx, OpSelect, core, u, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping checks backend reachability through the entity core.
func (c *Client) Ping(ctx context.Context) error {
	u := c.baseURL + "/" + CoreEntity + "/admin/ping"

	var body struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, OpPing, CoreEntity, u, &body); err != nil {
		return err
	}
	if body.Status != "OK" {
		return &Error{Op: OpPing, Core: CoreEntity, Err: fmt.Errorf("status %q", body.Status)}
	}
	return nil
}

// WaitForReady polls Ping until the backend responds or the timeout expires.
func (c *Client) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for search backend: %w", ctx.Err())
		case <-ticker.C:
			if err := c.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

func (c *Client) do(ctx context.Context, op, core, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &Error{Op: op, Core: core, Err: err}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.SolrRequestsTotal.WithLabelValues(core, op, "error").Inc()
		return &Error{Op: op, Core: core, Err: fmt.Errorf("%w: %s", model.ErrBackendUnavailable, err)}
	}
	defer resp.Body.Close()

	took := time.Since(start)
	metrics.SolrRequestDuration.WithLabelValues(core, op).Observe(took.Seconds())
	metrics.SolrRequestsTotal.WithLabelValues(core, op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &Error{Op: op, Core: core, Err: fmt.Errorf("status %d: %s", resp.StatusCode, snippet)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Core: core, Err: fmt.Errorf("decode response: %w", err)}
	}

	c.log.Debug("backend call",
		zap.String("op", op),
		zap.String("core", core),
		zap.Duration("took", took))
	return nil
}
