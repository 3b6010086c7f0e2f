// Package upstream implements the gateway ports against the remote
// QuillBoard HTTP API. The client is stateless: every privileged call takes
// the bearer token explicitly, and nothing is cached or retried.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/quillboard/quillboard-web/internal/core/domain"
	"github.com/quillboard/quillboard-web/internal/core/ports"
	"github.com/quillboard/quillboard-web/internal/metrics"
)

const defaultTimeout = 10 * time.Second

// Client talks to the remote QuillBoard API at a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client for baseURL. A default timeout is applied when none
// is provided. Any trailing slash on baseURL is trimmed.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// errorEnvelope is the failure body shape of the remote API. Only the
// message is of interest; missing messages fall back to a fixed string.
type errorEnvelope struct {
	Message string `json:"message"`
}

// do issues one HTTP call and decodes the JSON response into out.
//
//   - token, when non-empty, is attached as an Authorization bearer header.
//   - query, when non-empty, is appended to the path; callers only include
//     defined values, so nothing is ever sent as a literal empty parameter.
//   - Non-2xx responses become *domain.APIError with the server message.
//   - Transport failures are wrapped and returned as-is, with no retry.
func (c *Client) do(ctx context.Context, operation, method, path string, token string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(operation, "transport_error").Inc()
		return fmt.Errorf("quillboard api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.UpstreamRequestsTotal.WithLabelValues(operation, "api_error").Inc()
		return c.apiError(operation, resp)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(operation, "ok").Inc()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError turns a non-2xx response into *domain.APIError, extracting the
// server-provided message when the body carries one.
func (c *Client) apiError(operation string, resp *http.Response) error {
	apiErr := &domain.APIError{
		StatusCode: resp.StatusCode,
		Message:    domain.FallbackErrorMessage,
	}

	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Message != "" {
		apiErr.Message = env.Message
	}

	c.log.Debug().
		Str("operation", operation).
		Int("status", resp.StatusCode).
		Str("message", apiErr.Message).
		Msg("upstream call failed")

	return apiErr
}

// listQuery builds the query string for list operations, omitting every
// unset option rather than sending empty values.
func listQuery(opts ports.ListOptions) url.Values {
	q := url.Values{}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	return q
}
