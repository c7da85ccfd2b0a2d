// Copyright The AtlanticWave-SDX contributors.
// SPDX-License-Identifier: MIT

package sdx

import (
	"fmt"
	"strings"
	"time"
)

const (
	// defaultVersion is the controller API version segment.
	defaultVersion = "1.0"

	defaultTimeout    = 120 * time.Second
	defaultMaxRetries = 2
	defaultRetryDelay = 1 * time.Second
)

// Config holds the configuration for the SDX controller client
type Config struct {
	// BaseURL is the controller base URL, e.g.
	// https://sdxapi.atlanticwave-sdx.ai/api/test
	BaseURL string

	// Version is the API version path segment (default: 1.0)
	Version string

	// Timeout is the HTTP client timeout for controller requests
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts for failed requests
	MaxRetries int

	// RetryDelay is the delay between retry attempts
	RetryDelay time.Duration

	// Source identifies the requesting platform on session login
	// (default: fabric)
	Source string
}

// DefaultConfig returns a Config with sensible defaults; BaseURL must still
// be provided by the caller.
func DefaultConfig() Config {
	return Config{
		Version:    defaultVersion,
		Timeout:    defaultTimeout,
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
		Source:     "fabric",
	}
}

// NewConfig creates a new controller client configuration with the provided
// parameters.
func NewConfig(baseURL, version, timeout string, maxRetries int, retryDelay string) (Config, error) {
	if strings.TrimSpace(baseURL) == "" {
		return Config{}, fmt.Errorf("base URL is required for SDX configuration")
	}

	if version == "" {
		version = defaultVersion
	}

	if timeout == "" {
		timeout = "120s"
	}
	timeoutDuration, err := time.ParseDuration(timeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid timeout duration: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	if retryDelay == "" {
		retryDelay = "1s"
	}
	retryDelayDuration, err := time.ParseDuration(retryDelay)
	if err != nil {
		return Config{}, fmt.Errorf("invalid retry delay duration: %w", err)
	}

	return Config{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Version:    version,
		Timeout:    timeoutDuration,
		MaxRetries: maxRetries,
		RetryDelay: retryDelayDuration,
		Source:     "fabric",
	}, nil
}
