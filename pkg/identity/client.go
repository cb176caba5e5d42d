// Package identity talks to the user service, the system of record for
// accounts, monitor definitions and incident history. The gateway owns none of
// that data; it forwards requests with the caller's bearer credential and
// relays whatever the user service answers.
package identity

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Client is an HTTP client for the user service.
type Client struct {
	baseURL        string
	client         *retryablehttp.Client
	requestTimeout time.Duration
}

// Response carries a relayed upstream answer. Body is the raw bytes so 4xx
// error payloads reach the dashboard unchanged.
type Response struct {
	Status int
	Body   []byte
}

// NewClient creates a user service client. Retries apply to connection-level
// failures only; an HTTP response, whatever its status, is never retried so it
// can be relayed verbatim.
func NewClient(baseURL string, retryMax int, retryWaitMin, retryWaitMax, requestTimeout time.Duration) *Client {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.RetryWaitMin = retryWaitMin
	client.RetryWaitMax = retryWaitMax
	client.Logger = nil // Disable retryablehttp logging
	client.CheckRetry = connectionErrorRetryPolicy

	return &Client{
		baseURL:        baseURL,
		client:         client,
		requestTimeout: requestTimeout,
	}
}

// Forward sends a request to the user service. The authorization value is
// forwarded verbatim when present; the user service is responsible for
// rejecting unauthenticated access. A nil body sends no payload.
func (c *Client) Forward(ctx context.Context, method, path, authorization string, body []byte) (*Response, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	var payload interface{}
	if len(body) > 0 {
		payload = body
	}

	req, err := retryablehttp.NewRequestWithContext(reqCtx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, err
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{Status: resp.StatusCode, Body: respBody}, nil
}

// connectionErrorRetryPolicy only retries on connection/timeout errors, never
// on HTTP status errors. Upstream 4xx/5xx responses must be forwarded as-is
// instead of being retried into a generic failure.
func connectionErrorRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	// Do not retry if context is cancelled
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	// If we got a response, don't retry - forward the response as-is
	if resp != nil {
		return false, nil
	}

	// Only retry if there's a connection/timeout error (no response received)
	if err != nil {
		return true, nil //nolint:nilerr // retryablehttp handles the final error
	}

	return false, nil
}
