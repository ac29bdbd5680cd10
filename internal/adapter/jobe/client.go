package jobe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gitlab.com/code-review-relay.net/internal/core/ports/primary"
	"gitlab.com/code-review-relay.net/internal/core/ports/secondary"
	"gitlab.com/code-review-relay.net/internal/domain"
	"gitlab.com/code-review-relay.net/internal/static/errs"
)

var _ secondary.CodeExecutor = (*Client)(nil)

// Client talks to a Jobe compatible sandbox over its REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     primary.Logger
}

// NewClient creates a new sandbox client. The http client is shared and
// carries the per call timeout.
func NewClient(baseURL string, httpClient *http.Client, logger primary.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Execute submits one run and returns its stdout and compile diagnostics.
// An unusable body degrades to empty values with a warning; only transport
// failures and non-2xx answers are errors.
func (c *Client) Execute(ctx context.Context, req domain.ExecutionRequest) (*domain.ExecutionOutcome, error) {
	cpuTime, memoryLimit := req.Limits.Resolve()
	body, err := json.Marshal(runRequest{
		RunSpec: runSpec{
			LanguageID: req.LanguageID,
			SourceCode: req.SourceCode,
			Input:      req.Input,
			Parameters: runParameters{
				CPUTime:     cpuTime,
				MemoryLimit: memoryLimit,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run request: %w", err)
	}

	raw, _, err := c.do(ctx, http.MethodPost, c.baseURL+"/runs", body)
	if err != nil {
		return nil, err
	}

	var resp *runResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return &domain.ExecutionOutcome{
			Warning: fmt.Errorf("%w: %v", errs.ErrMalformedResponse, err),
		}, nil
	}
	if resp == nil {
		return &domain.ExecutionOutcome{
			Warning: fmt.Errorf("%w: null body", errs.ErrMalformedResponse),
		}, nil
	}

	c.logger.Debug("Sandbox run finished",
		"outcome", resp.Outcome,
		"stdoutBytes", len(resp.Stdout),
		"cmpinfo", resp.CmpInfo)

	return &domain.ExecutionOutcome{
		Stdout:      resp.Stdout,
		CompileInfo: resp.CmpInfo,
	}, nil
}

// Languages returns the sandbox's language listing without decoding it
func (c *Client) Languages(ctx context.Context) (*domain.LanguageList, error) {
	raw, header, err := c.do(ctx, http.MethodGet, c.baseURL+"/languages", nil)
	if err != nil {
		return nil, err
	}

	return &domain.LanguageList{
		ContentType: header.Get("Content-Type"),
		Body:        raw,
	}, nil
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) ([]byte, http.Header, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build sandbox request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s %s: %v", errs.ErrTransport, method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading sandbox response: %v", errs.ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, fmt.Errorf("%w: %s %s returned %d: %s", errs.ErrTransport, method, url, resp.StatusCode, truncate(raw, 200))
	}

	return raw, resp.Header, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
