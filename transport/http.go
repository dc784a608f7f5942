package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// responseBodyLimit caps how much of a backend response is read; receipts
// and error envelopes are tiny.
const responseBodyLimit = 1 << 20

// HTTPTransport submits payloads as JSON over HTTP.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
}

// HTTPOption configures an HTTPTransport.
type HTTPOption func(*HTTPTransport)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(t *HTTPTransport) {
		if c != nil {
			t.client = c
		}
	}
}

// NewHTTPTransport creates a transport posting to endpoint.
func NewHTTPTransport(endpoint string, opts ...HTTPOption) *HTTPTransport {
	t := &HTTPTransport{
		endpoint: endpoint,
		client:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Submit posts the payload and decodes the backend's response. Non-2xx
// responses are returned as *StructuredError; an undecodable error body
// degrades to a generic StructuredError with the response status.
func (t *HTTPTransport) Submit(ctx context.Context, p Payload) (*Receipt, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		var receipt Receipt
		if err := json.Unmarshal(raw, &receipt); err != nil {
			return nil, fmt.Errorf("decode receipt: %w", err)
		}
		return &receipt, nil
	}

	serr := &StructuredError{Status: resp.StatusCode}
	if err := json.Unmarshal(raw, serr); err != nil || serr.Message == "" {
		serr.Code = "unexpected_response"
		serr.Message = fmt.Sprintf("backend returned status %d", resp.StatusCode)
		serr.Fields = nil
	}
	return nil, serr
}
