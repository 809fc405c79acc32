package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/AndresYusty/cat-frontend/internal/common"
	"github.com/AndresYusty/cat-frontend/internal/logging"
	"github.com/google/uuid"
)

// maxErrorBody caps how much of a failed response is kept in HTTPError.Body.
const maxErrorBody = 64 << 10

// Option customizes an HTTP client.
type Option func(*restClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *restClient) { c.httpClient = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logging.Logger) Option {
	return func(c *restClient) { c.logger = l }
}

type restClient struct {
	baseURL    string
	httpClient *http.Client
	header     http.Header
	logger     logging.Logger
}

func newRestClient(baseURL string, opts []Option) *restClient {
	c := &restClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		header:     http.Header{},
		logger:     logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// get issues GET {baseURL}{path}?{query}. A 2xx body is decoded into out
// unless out is nil. Query strings are never logged since they may carry
// credentials.
func (c *restClient) get(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return &RequestError{Err: err}
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &RequestError{Err: err}
	}
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("Accept", "application/json")
	ctx = logging.WithRequestID(ctx, reqID)

	log := c.logger.With("method", http.MethodGet, "path", u.Path)
	log.Debug(ctx, "outbound request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Debug(ctx, "no response", "error", err)
		return &HTTPError{Method: http.MethodGet, Path: u.Path, Status: 0, Err: err}
	}
	defer resp.Body.Close()

	log.Debug(ctx, "response received", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{Method: http.MethodGet, Path: u.Path, Status: resp.StatusCode, Body: body}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &HTTPError{Method: http.MethodGet, Path: u.Path, Status: 0, Err: err}
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("decode %s: %w", u.Path, errors.Join(ErrEmptyResponse, err))
	}
	return nil
}
