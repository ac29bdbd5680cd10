package reviewagent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gitlab.com/code-review-relay.net/internal/core/ports/primary"
	"gitlab.com/code-review-relay.net/internal/core/ports/secondary"
	"gitlab.com/code-review-relay.net/internal/domain"
	"gitlab.com/code-review-relay.net/internal/static/errs"
)

var _ secondary.Reviewer = (*Client)(nil)

// Client posts run results to the review service
type Client struct {
	url        string
	httpClient *http.Client
	logger     primary.Logger
}

// NewClient creates a new review service client
func NewClient(url string, httpClient *http.Client, logger primary.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Review posts the payload and decodes the verdict. A null or empty body
// yields a nil verdict. A body that is not a verdict yields an empty one;
// only transport failures and non-2xx answers are errors.
func (c *Client) Review(ctx context.Context, payload *domain.ReviewPayload) (*domain.ReviewVerdict, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal review payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build review request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: POST %s: %v", errs.ErrTransport, c.url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading review response: %v", errs.ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: POST %s returned %d", errs.ErrTransport, c.url, resp.StatusCode)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var verdict *domain.ReviewVerdict
	if err := json.Unmarshal(raw, &verdict); err != nil {
		c.logger.Warn("Review service answered without a usable body",
			"error", fmt.Errorf("%w: %v", errs.ErrMalformedResponse, err),
			"body", truncate(raw, 200))
		return &domain.ReviewVerdict{}, nil
	}

	return verdict, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
