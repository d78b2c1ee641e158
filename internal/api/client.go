// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// client.go - HTTP client for the Zulip server endpoints used at startup.

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the Zulip client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeAuthFailed
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrTimeout    = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrAuthFailed = &ClientError{Type: ErrTypeAuthFailed, Message: "authentication failed"}
)

// ServerConnectionFailure reports that the Zulip server could not be
// reached or refused the connection during session startup. The Detail is
// shown to the user verbatim.
type ServerConnectionFailure struct {
	Detail string
	Cause  error
}

func (e *ServerConnectionFailure) Error() string {
	return e.Detail
}

func (e *ServerConnectionFailure) Unwrap() error {
	return e.Cause
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the Zulip client.
type ClientConfig struct {
	// ServerURL is the Zulip realm base URL, e.g. https://chat.zulip.org
	ServerURL string

	// Timeout for requests (default: 30s)
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration for a server.
func DefaultConfig(serverURL string) *ClientConfig {
	return &ClientConfig{
		ServerURL: strings.TrimRight(serverURL, "/"),
		Timeout:   30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with a Zulip server.
//
// The Client is thread-safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new Zulip client for the given server URL.
func NewClient(serverURL string) *Client {
	return NewClientWithConfig(DefaultConfig(serverURL))
}

// NewClientWithConfig creates a new Zulip client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig("")
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	config.ServerURL = strings.TrimRight(config.ServerURL, "/")

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// ServerURL returns the realm base URL this client talks to.
func (c *Client) ServerURL() string {
	return c.config.ServerURL
}

// =============================================================================
// SERVER SETTINGS
// =============================================================================

// ServerSettings is the subset of /api/v1/server_settings the bootstrap
// cares about. Fields absent from the response decode as false.
type ServerSettings struct {
	RequireEmailFormatUsernames bool `json:"require_email_format_usernames"`
	EmailAuthEnabled            bool `json:"email_auth_enabled"`
}

// GetServerSettings fetches the realm's authentication settings.
// This endpoint requires no authentication.
func (c *Client) GetServerSettings(ctx context.Context) (ServerSettings, error) {
	var settings ServerSettings

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.config.ServerURL+"/api/v1/server_settings", nil)
	if err != nil {
		return settings, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return settings, ErrTimeout
		}
		return settings, &ClientError{Type: ErrTypeConnection, Message: "could not reach server", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return settings, &ClientError{
			Type:    ErrTypeConnection,
			Message: "unexpected status from server: " + resp.Status,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(&settings); err != nil {
		return settings, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode server settings", Cause: err}
	}

	return settings, nil
}

// =============================================================================
// API KEY EXCHANGE
// =============================================================================

type fetchAPIKeyResponse struct {
	Result string `json:"result"`
	Msg    string `json:"msg"`
	APIKey string `json:"api_key"`
	Email  string `json:"email"`
}

// FetchAPIKey exchanges a login identifier and password for an API key.
// ErrAuthFailed is returned when the server rejects the credentials, so
// callers can offer a retry instead of aborting.
func (c *Client) FetchAPIKey(ctx context.Context, loginID, password string) (string, error) {
	form := url.Values{}
	form.Set("username", loginID)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.ServerURL+"/api/v1/fetch_api_key",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", &ClientError{Type: ErrTypeConnection, Message: "could not reach server", Cause: err}
	}
	defer resp.Body.Close()

	// The server answers 401/403 for bad credentials with a JSON body
	// explaining why; anything else non-200 is a transport-level problem.
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrAuthFailed
	default:
		return "", &ClientError{
			Type:    ErrTypeConnection,
			Message: "unexpected status from server: " + resp.Status,
		}
	}

	var body fetchAPIKeyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	if body.Result != "success" || body.APIKey == "" {
		return "", ErrAuthFailed
	}

	return body.APIKey, nil
}
