// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/atlanticwave-sdx/sdxlib-go/pkg/constants"
	logging "github.com/atlanticwave-sdx/sdxlib-go/pkg/log"
	"github.com/google/uuid"
)

// Client represents a generic HTTP client with retry logic
type Client struct {
	config     Config
	httpClient *http.Client
}

// Request represents an HTTP request configuration. The body is held as
// bytes, not a reader, so every retry attempt can resend the full payload.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// Response represents an HTTP response
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// StatusError is returned when the server answers with a >= 400 status.
// 5xx and 429 statuses are considered retryable.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Do executes an HTTP request with retry logic
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	// One request id per logical call, resent on every attempt, so retried
	// requests correlate to a single controller-side trace. The id is also
	// carried on the context so log lines below include it.
	requestID := req.Headers[constants.RequestIDHeader]
	if requestID == "" {
		requestID = uuid.New().String()
	}
	ctx = logging.AppendCtx(ctx, slog.String("request_id", requestID))

	var (
		lastResp *Response
		lastErr  error
	)

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.config.RetryDelay
			if c.config.RetryBackoff {
				delay = time.Duration(int64(delay) * int64(1<<(attempt-1)))
			}

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		response, err := c.doRequest(ctx, req, requestID)
		if err == nil {
			return response, nil
		}

		lastResp = response
		lastErr = err

		if !c.shouldRetry(err) {
			break
		}
	}

	slog.ErrorContext(ctx, "request failed",
		"method", req.Method,
		"url", req.URL,
		"error", lastErr,
	)

	return lastResp, lastErr
}

// doRequest performs a single HTTP request
func (c *Client) doRequest(ctx context.Context, reqConfig Request, requestID string) (*Response, error) {
	var body io.Reader
	if len(reqConfig.Body) > 0 {
		body = bytes.NewReader(reqConfig.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, reqConfig.Method, reqConfig.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	if c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}

	for key, value := range reqConfig.Headers {
		httpReq.Header.Set(key, value)
	}

	httpReq.Header.Set(constants.RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return response, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
	}

	return response, nil
}

// shouldRetry determines if a request should be retried based on the error
func (c *Client) shouldRetry(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError ||
			statusErr.StatusCode == http.StatusTooManyRequests
	}

	// Network-level failures are worth another attempt.
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection") ||
		strings.Contains(errStr, "network")
}

// Request performs an HTTP request with the specified verb
func (c *Client) Request(ctx context.Context, verb, url string, body []byte, headers map[string]string) (*Response, error) {
	req := Request{
		Method:  verb,
		URL:     url,
		Headers: headers,
		Body:    body,
	}
	return c.Do(ctx, req)
}

// RequestJSON marshals payload as a JSON body (when non-nil) and performs
// the request with the Content-Type header set.
func (c *Client) RequestJSON(ctx context.Context, verb, url string, payload any, headers map[string]string) (*Response, error) {
	var body []byte
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = encoded
	}

	merged := map[string]string{
		"Content-Type": constants.ContentTypeJSON,
	}
	for key, value := range headers {
		merged[key] = value
	}

	return c.Do(ctx, Request{
		Method:  verb,
		URL:     url,
		Headers: merged,
		Body:    body,
	})
}

// NewClient creates a new HTTP client with the given configuration
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}
